package model

import "time"

// Employee mirrors one row of the employees table. Read-only to this API;
// records are provisioned by HR tooling outside this service.
type Employee struct {
	ID         string     `json:"id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Email      string     `json:"email"`
	Department string     `json:"department"`
	Position   string     `json:"position"`
	HireDate   time.Time  `json:"hire_date"`
	Status     string     `json:"status"`
	ManagerID  *string    `json:"manager_id,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
}

// EmployeeQuery carries list filters. Limit defaults to 50, matching the
// dashboard's page size.
type EmployeeQuery struct {
	Department string
	Status     string
	Limit      int
	Offset     int
}

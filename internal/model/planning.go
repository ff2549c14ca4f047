package model

import "time"

// Shift is one planned work slot on the team calendar.
type Shift struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Employee   string    `json:"employee"`
	ShiftDate  time.Time `json:"shift_date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Location   string    `json:"location"`
}

// PlanningQuery bounds the calendar window. Zero times mean "current week".
type PlanningQuery struct {
	From       time.Time
	To         time.Time
	EmployeeID string
}

package model

import "strings"

// Role is the closed set of roles a user can hold. Authorization checks go
// through the capability table below rather than comparing role strings at
// call sites.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleRH       Role = "rh"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Capability names a single gated operation.
type Capability string

const (
	CapEmployeesRead Capability = "employees:read"
	CapJobOffersRead Capability = "job_offers:read"
	CapPlanningRead  Capability = "planning:read"
	CapDashboardRead Capability = "dashboard:read"
	CapAuditRead     Capability = "audit:read"
)

var roleCapabilities = map[Role]map[Capability]struct{}{
	RoleAdmin: {
		CapEmployeesRead: {},
		CapJobOffersRead: {},
		CapPlanningRead:  {},
		CapDashboardRead: {},
		CapAuditRead:     {},
	},
	RoleRH: {
		CapEmployeesRead: {},
		CapJobOffersRead: {},
		CapPlanningRead:  {},
		CapDashboardRead: {},
	},
	RoleManager: {
		CapEmployeesRead: {},
		CapPlanningRead:  {},
		CapDashboardRead: {},
	},
	RoleEmployee: {
		CapPlanningRead: {},
	},
}

// ParseRole normalizes raw input to a known role. Unrecognized values are
// rejected rather than defaulted so a tampered or stale role claim can never
// widen into a valid one.
func ParseRole(raw string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(raw)))
	_, known := roleCapabilities[role]
	return role, known
}

func (r Role) Valid() bool {
	_, known := roleCapabilities[r]
	return known
}

func (r Role) Can(cap Capability) bool {
	caps, known := roleCapabilities[r]
	if !known {
		return false
	}
	_, allowed := caps[cap]
	return allowed
}

func (r Role) String() string {
	return string(r)
}

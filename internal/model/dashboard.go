package model

// DashboardKPIs backs the KPI cards on the dashboard landing page.
type DashboardKPIs struct {
	Headcount             int            `json:"headcount"`
	ActiveJobOffers       int            `json:"active_job_offers"`
	NewHiresThisMonth     int            `json:"new_hires_this_month"`
	ShiftsPlannedThisWeek int            `json:"shifts_planned_this_week"`
	HeadcountByDepartment map[string]int `json:"headcount_by_department"`
}

package model

// AuditEntry records one authentication event: a login attempt, a token
// refresh, or a rejected bearer credential. Security reviews read these
// through GET /audit.
type AuditEntry struct {
	Action     string `json:"action"`
	OccurredAt string `json:"occurred_at"`
	Username   string `json:"username"`
	Role       string `json:"role,omitempty"`
	ClientIP   string `json:"client_ip,omitempty"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
}

const (
	AuditActionLogin   = "login"
	AuditActionRefresh = "refresh"

	AuditStatusSuccess = "success"
	AuditStatusDenied  = "denied"
)

type AuditQuery struct {
	Action   string
	Username string
	Status   string
	From     string
	To       string
	Page     int
	Limit    int
}

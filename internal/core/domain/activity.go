package domain

import "time"

// ActivityEvent identifies the kind of session or directory change recorded
// in the activity log.
type ActivityEvent string

const (
	EventLogin      ActivityEvent = "LOGIN"
	EventLogout     ActivityEvent = "LOGOUT"
	EventRegistered ActivityEvent = "REGISTRO"
	EventRoleChange ActivityEvent = "ALTERACAO_PAPEL"
)

// ActivityLog is one audit entry. Entries are write-once; the portal exposes
// them read-only on the HR logs view.
type ActivityLog struct {
	ID          string        `json:"id"`
	Timestamp   time.Time     `json:"timestamp"`
	Username    string        `json:"username"`
	UserID      string        `json:"user_id"`
	Event       ActivityEvent `json:"event"`
	Description string        `json:"description"`
}

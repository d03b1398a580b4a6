package entity

import "time"

// Acciones registradas en la bitácora.
const (
	ActionSentFeedback         = "sent_feedback"
	ActionRequestedFeedback    = "requested_feedback"
	ActionAcknowledgedFeedback = "acknowledged_feedback"
)

// ActivityLog entrada append-only de la bitácora de actividad. Nunca se
// edita ni se borra.
type ActivityLog struct {
	ID        int64
	UserID    int64
	ManagerID *int64
	Action    string
	Target    string
	Details   map[string]any
	Timestamp time.Time
}

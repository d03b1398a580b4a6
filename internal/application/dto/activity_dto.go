package dto

import "time"

// ActivityLogCreateRequest cuerpo de POST /activity-log.
type ActivityLogCreateRequest struct {
	UserID    int64          `json:"user_id"`
	ManagerID *int64         `json:"manager_id"`
	Action    string         `json:"action"`
	Target    string         `json:"target"`
	Details   map[string]any `json:"details"`
}

// ActivityLogResponse entrada de bitácora.
type ActivityLogResponse struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"user_id"`
	ManagerID *int64         `json:"manager_id"`
	Action    string         `json:"action"`
	Target    string         `json:"target"`
	Details   map[string]any `json:"details"`
	Timestamp time.Time      `json:"timestamp"`
}

// ManagerActivityResponse entrada de bitácora con el nombre del actor,
// para el panel del manager.
type ManagerActivityResponse struct {
	ActivityLogResponse
	UserName string `json:"user_name"`
}

package repository

import "github.com/jhoicas/workvibe-api/internal/domain/entity"

// ActivityWithActor entrada de bitácora con el nombre del usuario que la originó.
type ActivityWithActor struct {
	Log      entity.ActivityLog
	UserName string
}

// ActivityLogRepository puerto de persistencia para la bitácora (append-only).
type ActivityLogRepository interface {
	// Create persiste la entrada y asigna ID y Timestamp generados.
	Create(l *entity.ActivityLog) error
	// ListRecentByManager devuelve las últimas entradas asociadas a un manager,
	// más recientes primero, con el nombre del actor resuelto.
	ListRecentByManager(managerID int64, limit int) ([]ActivityWithActor, error)
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/workvibe-api/internal/domain/entity"
	"github.com/jhoicas/workvibe-api/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// ActivityLogRepo implementación del puerto ActivityLogRepository sobre
// PostgreSQL. La tabla es append-only: no hay UPDATE ni DELETE.
type ActivityLogRepo struct {
	q Querier
}

// NewActivityLogRepository construye el adaptador de bitácora. Pasar pool o tx (Querier).
func NewActivityLogRepository(q Querier) *ActivityLogRepo {
	return &ActivityLogRepo{q: q}
}

// Create persiste la entrada y asigna ID y Timestamp generados.
func (r *ActivityLogRepo) Create(l *entity.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (user_id, manager_id, action, target, details)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, timestamp`
	err := r.q.QueryRow(context.Background(), query,
		l.UserID, l.ManagerID, l.Action, l.Target, l.Details,
	).Scan(&l.ID, &l.Timestamp)
	if err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}
	return nil
}

// ListRecentByManager últimas entradas del manager, más recientes primero,
// con el nombre del actor resuelto en el mismo query.
func (r *ActivityLogRepo) ListRecentByManager(managerID int64, limit int) ([]repository.ActivityWithActor, error) {
	query := `
		SELECT l.id, l.user_id, l.manager_id, l.action, COALESCE(l.target, ''), l.details, l.timestamp, u.name
		FROM activity_logs l
		JOIN users u ON u.id = l.user_id
		WHERE l.manager_id = $1
		ORDER BY l.timestamp DESC
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, managerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()
	var list []repository.ActivityWithActor
	for rows.Next() {
		var a repository.ActivityWithActor
		if err := rows.Scan(
			&a.Log.ID, &a.Log.UserID, &a.Log.ManagerID, &a.Log.Action, &a.Log.Target,
			&a.Log.Details, &a.Log.Timestamp, &a.UserName,
		); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/workvibe-api/internal/domain/entity"
	"github.com/jhoicas/workvibe-api/internal/domain/repository"
)

var _ repository.FeedbackRequestRepository = (*FeedbackRequestRepo)(nil)

// FeedbackRequestRepo implementación del puerto FeedbackRequestRepository sobre PostgreSQL.
type FeedbackRequestRepo struct {
	q Querier
}

// NewFeedbackRequestRepository construye el adaptador de solicitudes. Pasar pool o tx (Querier).
func NewFeedbackRequestRepository(q Querier) *FeedbackRequestRepo {
	return &FeedbackRequestRepo{q: q}
}

// Create persiste la solicitud y asigna el ID generado.
func (r *FeedbackRequestRepo) Create(req *entity.FeedbackRequest) error {
	query := `
		INSERT INTO feedback_requests (employee_id, manager_id, status)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		req.EmployeeID, req.ManagerID, req.Status,
	).Scan(&req.ID)
	if err != nil {
		return fmt.Errorf("insert feedback request: %w", err)
	}
	return nil
}

// ListPending solicitudes pendientes del par (empleado, manager), id ascendente.
func (r *FeedbackRequestRepo) ListPending(employeeID, managerID int64) ([]*entity.FeedbackRequest, error) {
	query := `
		SELECT id, employee_id, manager_id, status
		FROM feedback_requests
		WHERE employee_id = $1 AND manager_id = $2 AND status = 'pending'
		ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, employeeID, managerID)
	if err != nil {
		return nil, fmt.Errorf("list pending requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.FeedbackRequest
	for rows.Next() {
		var req entity.FeedbackRequest
		if err := rows.Scan(&req.ID, &req.EmployeeID, &req.ManagerID, &req.Status); err != nil {
			return nil, fmt.Errorf("scan feedback request: %w", err)
		}
		list = append(list, &req)
	}
	return list, rows.Err()
}

// Update actualiza la solicitud (transición de estado).
func (r *FeedbackRequestRepo) Update(req *entity.FeedbackRequest) error {
	query := `UPDATE feedback_requests SET status = $2 WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, req.ID, req.Status); err != nil {
		return fmt.Errorf("update feedback request: %w", err)
	}
	return nil
}

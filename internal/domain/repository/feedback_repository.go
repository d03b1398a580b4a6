package repository

import "github.com/jhoicas/workvibe-api/internal/domain/entity"

// FeedbackRepository puerto de persistencia para feedbacks.
type FeedbackRepository interface {
	// Create persiste el feedback y asigna ID y CreatedAt generados.
	Create(f *entity.Feedback) error
	GetByID(id int64) (*entity.Feedback, error)
	// ListByMember devuelve los feedbacks de un empleado (por nombre),
	// ordenados por id ascendente.
	ListByMember(member string) ([]*entity.Feedback, error)
	// ListByManager devuelve los feedbacks dados por un manager,
	// más recientes primero.
	ListByManager(managerID int64) ([]*entity.Feedback, error)
	Update(f *entity.Feedback) error
}

// FeedbackRequestRepository puerto de persistencia para solicitudes de feedback.
type FeedbackRequestRepository interface {
	Create(r *entity.FeedbackRequest) error
	// ListPending devuelve las solicitudes pendientes para el par
	// (empleado, manager), ordenadas por id ascendente.
	ListPending(employeeID, managerID int64) ([]*entity.FeedbackRequest, error)
	Update(r *entity.FeedbackRequest) error
}

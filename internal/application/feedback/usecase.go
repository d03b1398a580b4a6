package feedback

import (
	"context"
	"strconv"

	"github.com/jhoicas/workvibe-api/internal/application/dto"
	"github.com/jhoicas/workvibe-api/internal/domain"
	"github.com/jhoicas/workvibe-api/internal/domain/entity"
	"github.com/jhoicas/workvibe-api/internal/domain/repository"
)

// UseCase ciclo de vida del feedback: creación, listado, solicitudes,
// acuse de recibo y edición.
type UseCase struct {
	tx        TxRunner
	users     repository.UserRepository
	feedbacks repository.FeedbackRepository
	requests  repository.FeedbackRequestRepository
	logs      repository.ActivityLogRepository
}

// NewUseCase construye el caso de uso de feedback.
func NewUseCase(
	tx TxRunner,
	users repository.UserRepository,
	feedbacks repository.FeedbackRepository,
	requests repository.FeedbackRequestRepository,
	logs repository.ActivityLogRepository,
) *UseCase {
	return &UseCase{tx: tx, users: users, feedbacks: feedbacks, requests: requests, logs: logs}
}

// Create registra un feedback y su entrada sent_feedback en la bitácora.
// Ambas escrituras van en la MISMA transacción: el sistema anterior las
// confirmaba por separado y podía quedar feedback sin bitácora.
func (uc *UseCase) Create(ctx context.Context, in dto.FeedbackCreateRequest) (*dto.FeedbackResponse, error) {
	if in.Member == "" || in.Strengths == "" || in.Improvement == "" || in.Sentiment == "" || in.GivenBy == 0 {
		return nil, domain.ErrInvalidInput
	}
	f := &entity.Feedback{
		Member:       in.Member,
		Strengths:    in.Strengths,
		Improvement:  in.Improvement,
		Sentiment:    in.Sentiment,
		Tags:         in.Tags,
		GivenBy:      in.GivenBy,
		Acknowledged: in.Acknowledged,
	}
	err := uc.tx.Run(ctx, func(
		fbRepo repository.FeedbackRepository,
		_ repository.FeedbackRequestRepository,
		logRepo repository.ActivityLogRepository,
	) error {
		if err := fbRepo.Create(f); err != nil {
			return err
		}
		managerID := in.GivenBy
		return logRepo.Create(&entity.ActivityLog{
			UserID:    in.GivenBy,
			ManagerID: &managerID,
			Action:    entity.ActionSentFeedback,
			Target:    in.Member,
			Details:   map[string]any{"feedback_id": f.ID},
		})
	})
	if err != nil {
		return nil, err
	}
	return toFeedbackResponse(f), nil
}

// ListForMember devuelve los feedbacks de un empleado por nombre, id ascendente.
func (uc *UseCase) ListForMember(member string) ([]dto.FeedbackResponse, error) {
	rows, err := uc.feedbacks.ListByMember(member)
	if err != nil {
		return nil, err
	}
	return toFeedbackResponses(rows), nil
}

// ListGivenByManager devuelve los feedbacks dados por un manager, más
// recientes primero.
func (uc *UseCase) ListGivenByManager(managerID int64) ([]dto.FeedbackResponse, error) {
	rows, err := uc.feedbacks.ListByManager(managerID)
	if err != nil {
		return nil, err
	}
	return toFeedbackResponses(rows), nil
}

// Request crea una solicitud de feedback: resuelve el empleado por nombre y
// el manager de su empresa, y registra requested_feedback en la bitácora
// dentro de la misma transacción.
func (uc *UseCase) Request(ctx context.Context, member string) (*dto.FeedbackRequestResponse, error) {
	emp, err := uc.users.GetEmployeeByName(member)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	mgr, err := uc.users.GetManagerByCompany(emp.Company)
	if err != nil {
		return nil, err
	}
	if mgr == nil {
		return nil, domain.ErrManagerNotFound
	}
	req := &entity.FeedbackRequest{
		EmployeeID: emp.ID,
		ManagerID:  mgr.ID,
		Status:     entity.RequestPending,
	}
	err = uc.tx.Run(ctx, func(
		_ repository.FeedbackRepository,
		reqRepo repository.FeedbackRequestRepository,
		logRepo repository.ActivityLogRepository,
	) error {
		if err := reqRepo.Create(req); err != nil {
			return err
		}
		managerID := mgr.ID
		return logRepo.Create(&entity.ActivityLog{
			UserID:    emp.ID,
			ManagerID: &managerID,
			Action:    entity.ActionRequestedFeedback,
			Target:    strconv.FormatInt(mgr.ID, 10),
			Details:   map[string]any{"request_id": req.ID},
		})
	})
	if err != nil {
		return nil, err
	}
	return toRequestResponse(req), nil
}

// Acknowledge marca un feedback como recibido. Es idempotente. La entrada
// acknowledged_feedback de la bitácora es best-effort: si el nombre del
// empleado no resuelve a un usuario, se omite sin error.
func (uc *UseCase) Acknowledge(ctx context.Context, feedbackID int64) error {
	f, err := uc.feedbacks.GetByID(feedbackID)
	if err != nil {
		return err
	}
	if f == nil {
		return domain.ErrFeedbackNotFound
	}
	f.Acknowledged = true
	if err := uc.feedbacks.Update(f); err != nil {
		return err
	}
	emp, err := uc.users.GetByName(f.Member)
	if err != nil || emp == nil {
		return nil
	}
	managerID := f.GivenBy
	return uc.logs.Create(&entity.ActivityLog{
		UserID:    emp.ID,
		ManagerID: &managerID,
		Action:    entity.ActionAcknowledgedFeedback,
		Target:    strconv.FormatInt(f.ID, 10),
		Details:   map[string]any{"feedback_id": f.ID},
	})
}

// CompleteRequest marca como completada la solicitud pendiente más antigua
// (menor id) del par (empleado, manager).
func (uc *UseCase) CompleteRequest(ctx context.Context, employee string, managerID int64) (*dto.FeedbackRequestResponse, error) {
	emp, err := uc.users.GetEmployeeByName(employee)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	pending, err := uc.requests.ListPending(emp.ID, managerID)
	if err != nil {
		return nil, err
	}
	if len(pending) == 0 {
		return nil, domain.ErrNoPendingRequest
	}
	oldest := pending[0]
	for _, r := range pending[1:] {
		if r.ID < oldest.ID {
			oldest = r
		}
	}
	oldest.Status = entity.RequestCompleted
	if err := uc.requests.Update(oldest); err != nil {
		return nil, err
	}
	return toRequestResponse(oldest), nil
}

// Edit aplica una edición parcial. Si editorID está presente y no coincide
// con el autor original, devuelve ErrForbidden sin tocar la fila.
func (uc *UseCase) Edit(ctx context.Context, feedbackID int64, patch dto.FeedbackEditRequest, editorID *int64) (*dto.FeedbackResponse, error) {
	f, err := uc.feedbacks.GetByID(feedbackID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrFeedbackNotFound
	}
	if editorID != nil && *editorID != f.GivenBy {
		return nil, domain.ErrForbidden
	}
	applyPatch(f, entity.FeedbackPatch{
		Strengths:    patch.Strengths,
		Improvement:  patch.Improvement,
		Sentiment:    patch.Sentiment,
		Tags:         patch.Tags,
		Acknowledged: patch.Acknowledged,
	})
	if err := uc.feedbacks.Update(f); err != nil {
		return nil, err
	}
	return toFeedbackResponse(f), nil
}

// applyPatch aplica la máscara de campos: solo los no-nil pisan la fila.
func applyPatch(f *entity.Feedback, p entity.FeedbackPatch) {
	if p.Strengths != nil {
		f.Strengths = *p.Strengths
	}
	if p.Improvement != nil {
		f.Improvement = *p.Improvement
	}
	if p.Sentiment != nil {
		f.Sentiment = *p.Sentiment
	}
	if p.Tags != nil {
		f.Tags = *p.Tags
	}
	if p.Acknowledged != nil {
		f.Acknowledged = *p.Acknowledged
	}
}

func toFeedbackResponse(f *entity.Feedback) *dto.FeedbackResponse {
	tags := f.Tags
	if tags == nil {
		tags = []string{}
	}
	return &dto.FeedbackResponse{
		ID:           f.ID,
		Member:       f.Member,
		Strengths:    f.Strengths,
		Improvement:  f.Improvement,
		Sentiment:    f.Sentiment,
		Tags:         tags,
		GivenBy:      f.GivenBy,
		Acknowledged: f.Acknowledged,
	}
}

func toFeedbackResponses(rows []*entity.Feedback) []dto.FeedbackResponse {
	out := make([]dto.FeedbackResponse, 0, len(rows))
	for _, f := range rows {
		out = append(out, *toFeedbackResponse(f))
	}
	return out
}

func toRequestResponse(r *entity.FeedbackRequest) *dto.FeedbackRequestResponse {
	return &dto.FeedbackRequestResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		ManagerID:  r.ManagerID,
		Status:     r.Status,
	}
}

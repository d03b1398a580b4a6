package report

import (
	"context"
	"fmt"

	"github.com/jhoicas/workvibe-api/internal/domain"
	"github.com/jhoicas/workvibe-api/internal/domain/entity"
	"github.com/jhoicas/workvibe-api/internal/domain/repository"
)

// FeedbackPDFGenerator puerto de render del reporte de un feedback.
type FeedbackPDFGenerator interface {
	GenerateFeedbackPDF(ctx context.Context, f *entity.Feedback, manager *entity.User) ([]byte, error)
}

// UseCase exporta un feedback como documento PDF descargable.
type UseCase struct {
	feedbacks repository.FeedbackRepository
	users     repository.UserRepository
	pdf       FeedbackPDFGenerator
}

// NewUseCase construye el caso de uso de exportación.
func NewUseCase(feedbacks repository.FeedbackRepository, users repository.UserRepository, pdf FeedbackPDFGenerator) *UseCase {
	return &UseCase{feedbacks: feedbacks, users: users, pdf: pdf}
}

// Export resuelve el feedback y su autor y genera el PDF. Devuelve los bytes
// y el nombre de archivo para el Content-Disposition.
func (uc *UseCase) Export(ctx context.Context, feedbackID int64) (data []byte, filename string, err error) {
	f, err := uc.feedbacks.GetByID(feedbackID)
	if err != nil {
		return nil, "", err
	}
	if f == nil {
		return nil, "", domain.ErrFeedbackNotFound
	}
	manager, err := uc.users.GetByID(f.GivenBy)
	if err != nil {
		return nil, "", err
	}
	if manager == nil {
		return nil, "", domain.ErrManagerNotFound
	}
	data, err = uc.pdf.GenerateFeedbackPDF(ctx, f, manager)
	if err != nil {
		return nil, "", err
	}
	filename = fmt.Sprintf("feedback_from_%s_to_%s.pdf", manager.Name, f.Member)
	return data, filename, nil
}

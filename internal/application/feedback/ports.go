package feedback

import (
	"context"

	"github.com/jhoicas/workvibe-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a ella.
// Se usa para que la escritura de la entidad y su entrada de bitácora
// queden en un único commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		fbRepo repository.FeedbackRepository,
		reqRepo repository.FeedbackRequestRepository,
		logRepo repository.ActivityLogRepository,
	) error) error
}

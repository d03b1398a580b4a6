package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/workvibe-api/internal/application/feedback"
	"github.com/jhoicas/workvibe-api/internal/domain/repository"
)

var _ feedback.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. La entidad y su entrada de bitácora se confirman juntas.
func (r *TxRunner) Run(ctx context.Context, fn func(
	fbRepo repository.FeedbackRepository,
	reqRepo repository.FeedbackRequestRepository,
	logRepo repository.ActivityLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	fbRepo := NewFeedbackRepository(tx)
	reqRepo := NewFeedbackRequestRepository(tx)
	logRepo := NewActivityLogRepository(tx)

	if err := fn(fbRepo, reqRepo, logRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/workvibe-api/internal/domain/entity"
	"github.com/jhoicas/workvibe-api/internal/domain/repository"
)

var _ repository.FeedbackRepository = (*FeedbackRepo)(nil)

// FeedbackRepo implementación del puerto FeedbackRepository sobre PostgreSQL.
type FeedbackRepo struct {
	q Querier
}

// NewFeedbackRepository construye el adaptador de feedbacks. Pasar pool o tx (Querier).
func NewFeedbackRepository(q Querier) *FeedbackRepo {
	return &FeedbackRepo{q: q}
}

const feedbackColumns = `id, member, strengths, improvement, sentiment, tags, given_by, acknowledged, created_at`

// Create persiste el feedback y asigna ID y CreatedAt generados.
func (r *FeedbackRepo) Create(f *entity.Feedback) error {
	tags := f.Tags
	if tags == nil {
		tags = []string{}
	}
	query := `
		INSERT INTO feedbacks (member, strengths, improvement, sentiment, tags, given_by, acknowledged)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		f.Member, f.Strengths, f.Improvement, f.Sentiment, tags, f.GivenBy, f.Acknowledged,
	).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

// GetByID obtiene un feedback por ID.
func (r *FeedbackRepo) GetByID(id int64) (*entity.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedbacks WHERE id = $1`
	var f entity.Feedback
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.Member, &f.Strengths, &f.Improvement, &f.Sentiment, &f.Tags,
		&f.GivenBy, &f.Acknowledged, &f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get feedback by id: %w", err)
	}
	return &f, nil
}

// ListByMember lista los feedbacks de un empleado (por nombre), id ascendente.
func (r *FeedbackRepo) ListByMember(member string) ([]*entity.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedbacks WHERE member = $1 ORDER BY id`
	return r.list(query, "list feedbacks by member", member)
}

// ListByManager lista los feedbacks dados por un manager, más recientes primero.
func (r *FeedbackRepo) ListByManager(managerID int64) ([]*entity.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedbacks WHERE given_by = $1 ORDER BY created_at DESC`
	return r.list(query, "list feedbacks by manager", managerID)
}

// Update actualiza un feedback completo.
func (r *FeedbackRepo) Update(f *entity.Feedback) error {
	tags := f.Tags
	if tags == nil {
		tags = []string{}
	}
	query := `
		UPDATE feedbacks
		SET strengths = $2, improvement = $3, sentiment = $4, tags = $5, acknowledged = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.Strengths, f.Improvement, f.Sentiment, tags, f.Acknowledged,
	)
	if err != nil {
		return fmt.Errorf("update feedback: %w", err)
	}
	return nil
}

func (r *FeedbackRepo) list(query, op string, args ...any) ([]*entity.Feedback, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Feedback
	for rows.Next() {
		var f entity.Feedback
		if err := rows.Scan(
			&f.ID, &f.Member, &f.Strengths, &f.Improvement, &f.Sentiment, &f.Tags,
			&f.GivenBy, &f.Acknowledged, &f.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

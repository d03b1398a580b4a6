package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/workvibe-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para las estadísticas de feedback.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// CountFeedbackGiven total de feedbacks dados por un manager.
func (r *StatsRepo) CountFeedbackGiven(ctx context.Context, managerID int64) (int64, error) {
	return r.count(ctx, "stats.CountFeedbackGiven",
		`SELECT COUNT(*) FROM feedbacks WHERE given_by = $1`, managerID)
}

// CountFeedbackGivenTo feedbacks de un manager hacia un empleado concreto.
func (r *StatsRepo) CountFeedbackGivenTo(ctx context.Context, managerID int64, member string) (int64, error) {
	return r.count(ctx, "stats.CountFeedbackGivenTo",
		`SELECT COUNT(*) FROM feedbacks WHERE given_by = $1 AND member = $2`, managerID, member)
}

// CountFeedbackForMember total de feedbacks recibidos por un empleado (por nombre).
func (r *StatsRepo) CountFeedbackForMember(ctx context.Context, member string) (int64, error) {
	return r.count(ctx, "stats.CountFeedbackForMember",
		`SELECT COUNT(*) FROM feedbacks WHERE member = $1`, member)
}

// CountAcknowledgedForMember feedbacks del empleado con acuse de recibo.
func (r *StatsRepo) CountAcknowledgedForMember(ctx context.Context, member string) (int64, error) {
	return r.count(ctx, "stats.CountAcknowledgedForMember",
		`SELECT COUNT(*) FROM feedbacks WHERE member = $1 AND acknowledged`, member)
}

// CountPendingAckByManager feedbacks del manager sin acuse de recibo.
func (r *StatsRepo) CountPendingAckByManager(ctx context.Context, managerID int64) (int64, error) {
	return r.count(ctx, "stats.CountPendingAckByManager",
		`SELECT COUNT(*) FROM feedbacks WHERE given_by = $1 AND NOT acknowledged`, managerID)
}

// CountPendingAckForMember feedbacks del empleado sin acuse de recibo.
func (r *StatsRepo) CountPendingAckForMember(ctx context.Context, member string) (int64, error) {
	return r.count(ctx, "stats.CountPendingAckForMember",
		`SELECT COUNT(*) FROM feedbacks WHERE member = $1 AND NOT acknowledged`, member)
}

// CountRequests total y completadas de las solicitudes dirigidas a un manager,
// en un solo query.
func (r *StatsRepo) CountRequests(ctx context.Context, managerID int64) (total, completed int64, err error) {
	const query = `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'completed')
		FROM feedback_requests
		WHERE manager_id = $1`
	if err := r.q.QueryRow(ctx, query, managerID).Scan(&total, &completed); err != nil {
		return 0, 0, fmt.Errorf("stats.CountRequests: %w", err)
	}
	return total, completed, nil
}

// CountPendingRequests solicitudes pendientes del par (empleado, manager).
func (r *StatsRepo) CountPendingRequests(ctx context.Context, employeeID, managerID int64) (int64, error) {
	return r.count(ctx, "stats.CountPendingRequests",
		`SELECT COUNT(*) FROM feedback_requests WHERE employee_id = $1 AND manager_id = $2 AND status = 'pending'`,
		employeeID, managerID)
}

// sentimentScoreSQL puntaje 1-5 por etiqueta. El CASE compara exacto
// (sensible a mayúsculas): cualquier etiqueta no reconocida, "positive" en
// minúscula incluida, puntúa como neutral.
const sentimentScoreSQL = `CASE sentiment
	WHEN 'Positive' THEN 5
	WHEN 'Neutral' THEN 3
	WHEN 'Negative' THEN 1
	ELSE 3
END`

// AverageSentimentByManager promedio 1-5 de los feedbacks dados por el
// manager. AVG devuelve NUMERIC y se escanea como decimal.Decimal (codec
// registrado en el pool); sin filas, COALESCE lo deja en cero.
func (r *StatsRepo) AverageSentimentByManager(ctx context.Context, managerID int64) (decimal.Decimal, error) {
	return r.average(ctx, "stats.AverageSentimentByManager",
		`SELECT COALESCE(AVG(`+sentimentScoreSQL+`), 0) FROM feedbacks WHERE given_by = $1`, managerID)
}

// AverageSentimentForMember promedio 1-5 de los feedbacks recibidos por el
// empleado (por nombre).
func (r *StatsRepo) AverageSentimentForMember(ctx context.Context, member string) (decimal.Decimal, error) {
	return r.average(ctx, "stats.AverageSentimentForMember",
		`SELECT COALESCE(AVG(`+sentimentScoreSQL+`), 0) FROM feedbacks WHERE member = $1`, member)
}

// MonthlySentimentCounts conteos por mes (YYYY-MM) y sentimiento de los
// feedbacks del manager desde fromMonth inclusive.
func (r *StatsRepo) MonthlySentimentCounts(ctx context.Context, managerID int64, fromMonth string) ([]repository.MonthSentimentCount, error) {
	const query = `
		SELECT to_char(created_at, 'YYYY-MM') AS month, sentiment, COUNT(*)
		FROM feedbacks
		WHERE given_by = $1
		  AND to_char(created_at, 'YYYY-MM') >= $2
		GROUP BY month, sentiment
		ORDER BY month`
	rows, err := r.q.Query(ctx, query, managerID, fromMonth)
	if err != nil {
		return nil, fmt.Errorf("stats.MonthlySentimentCounts: %w", err)
	}
	defer rows.Close()
	var results []repository.MonthSentimentCount
	for rows.Next() {
		var row repository.MonthSentimentCount
		if err := rows.Scan(&row.Month, &row.Sentiment, &row.Count); err != nil {
			return nil, fmt.Errorf("stats.MonthlySentimentCounts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

func (r *StatsRepo) count(ctx context.Context, op, query string, args ...any) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

func (r *StatsRepo) average(ctx context.Context, op, query string, args ...any) (decimal.Decimal, error) {
	var avg decimal.Decimal
	if err := r.q.QueryRow(ctx, query, args...).Scan(&avg); err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s: %w", op, err)
	}
	return avg, nil
}

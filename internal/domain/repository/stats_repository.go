package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// MonthSentimentCount conteo de feedbacks por mes (YYYY-MM) y sentimiento.
type MonthSentimentCount struct {
	Month     string
	Sentiment string
	Count     int64
}

// StatsRepository consultas de solo lectura para las estadísticas.
type StatsRepository interface {
	CountFeedbackGiven(ctx context.Context, managerID int64) (int64, error)
	// CountFeedbackGivenTo feedbacks de un manager hacia un empleado concreto.
	CountFeedbackGivenTo(ctx context.Context, managerID int64, member string) (int64, error)
	CountFeedbackForMember(ctx context.Context, member string) (int64, error)
	CountAcknowledgedForMember(ctx context.Context, member string) (int64, error)
	CountPendingAckByManager(ctx context.Context, managerID int64) (int64, error)
	CountPendingAckForMember(ctx context.Context, member string) (int64, error)
	// CountRequests total y completadas de las solicitudes dirigidas a un manager.
	CountRequests(ctx context.Context, managerID int64) (total, completed int64, err error)
	CountPendingRequests(ctx context.Context, employeeID, managerID int64) (int64, error)
	// AverageSentimentByManager promedio 1-5 del sentimiento de los feedbacks
	// dados por el manager, agregado en la base. Sin feedbacks → cero.
	AverageSentimentByManager(ctx context.Context, managerID int64) (decimal.Decimal, error)
	// AverageSentimentForMember promedio 1-5 de los feedbacks recibidos por el
	// empleado (por nombre).
	AverageSentimentForMember(ctx context.Context, member string) (decimal.Decimal, error)
	// MonthlySentimentCounts conteos agrupados por mes y sentimiento para los
	// feedbacks de un manager desde el mes fromMonth (inclusive, 'YYYY-MM').
	MonthlySentimentCounts(ctx context.Context, managerID int64, fromMonth string) ([]MonthSentimentCount, error)
}

package dto

// EmployeeOverviewDTO fila del roster del manager con sus contadores.
type EmployeeOverviewDTO struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	PendingFeedbacks int64  `json:"pending_feedbacks"`
	GivenFeedbacks   int64  `json:"given_feedbacks"`
}

// TotalFeedbackGivenDTO respuesta de /manager/{id}/feedbacks/count.
type TotalFeedbackGivenDTO struct {
	TotalFeedbackGiven int64 `json:"total_feedback_given"`
}

// ResponseRateDTO porcentaje de solicitudes completadas (2 decimales).
type ResponseRateDTO struct {
	ResponseRate float64 `json:"response_rate"`
}

// AverageSentimentDTO promedio de sentimiento en escala 1-5 (2 decimales).
type AverageSentimentDTO struct {
	AverageSentiment float64 `json:"average_sentiment"`
}

// PendingAckDTO feedbacks sin acuse de recibo.
type PendingAckDTO struct {
	PendingAcknowledgments int64 `json:"pending_acknowledgments"`
}

// FeedbackReceivedDTO total de feedbacks recibidos por un empleado.
type FeedbackReceivedDTO struct {
	FeedbackReceived int64 `json:"feedback_received"`
}

// AckRateDTO porcentaje de feedbacks con acuse de recibo (2 decimales).
type AckRateDTO struct {
	AcknowledgmentRate float64 `json:"acknowledgment_rate"`
}

// SentimentTrendDTO bucket mensual de la tendencia de sentimiento.
type SentimentTrendDTO struct {
	Month    string `json:"month"`
	Positive int64  `json:"positive"`
	Neutral  int64  `json:"neutral"`
	Negative int64  `json:"negative"`
}

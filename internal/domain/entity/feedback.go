package entity

import "time"

// Sentimientos conocidos. Se almacenan como texto libre: valores fuera de
// esta lista cuentan como neutrales al calcular promedios.
const (
	SentimentPositive = "Positive"
	SentimentNeutral  = "Neutral"
	SentimentNegative = "Negative"
)

// Estados de una solicitud de feedback. completed es terminal.
const (
	RequestPending   = "pending"
	RequestCompleted = "completed"
)

// Feedback entrada de retroalimentación de un manager hacia un empleado.
// Member es el NOMBRE del empleado, no una FK; es una decisión heredada del
// modelo de datos original que la API mantiene por compatibilidad.
type Feedback struct {
	ID           int64
	Member       string
	Strengths    string
	Improvement  string
	Sentiment    string
	Tags         []string
	GivenBy      int64
	Acknowledged bool
	CreatedAt    time.Time
}

// FeedbackPatch máscara de campos para edición parcial: solo los campos
// no-nil se aplican sobre la fila existente.
type FeedbackPatch struct {
	Strengths    *string
	Improvement  *string
	Sentiment    *string
	Tags         *[]string
	Acknowledged *bool
}

// FeedbackRequest solicitud de un empleado pidiendo feedback al manager de
// su empresa. pending → completed, sin vuelta atrás.
type FeedbackRequest struct {
	ID         int64
	EmployeeID int64
	ManagerID  int64
	Status     string
}

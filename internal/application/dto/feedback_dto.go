package dto

// FeedbackCreateRequest cuerpo de POST /feedback.
type FeedbackCreateRequest struct {
	Member       string   `json:"member"`
	Strengths    string   `json:"strengths"`
	Improvement  string   `json:"improvement"`
	Sentiment    string   `json:"sentiment"`
	Tags         []string `json:"tags"`
	GivenBy      int64    `json:"given_by"`
	Acknowledged bool     `json:"acknowledged"`
}

// FeedbackResponse forma pública de un feedback. No expone created_at:
// el contrato original nunca lo incluyó y el frontend no lo espera.
type FeedbackResponse struct {
	ID           int64    `json:"id"`
	Member       string   `json:"member"`
	Strengths    string   `json:"strengths"`
	Improvement  string   `json:"improvement"`
	Sentiment    string   `json:"sentiment"`
	Tags         []string `json:"tags"`
	GivenBy      int64    `json:"given_by"`
	Acknowledged bool     `json:"acknowledged"`
}

// FeedbackEditRequest edición parcial (PATCH semántico aunque la ruta sea PUT):
// solo los campos presentes en el cuerpo se aplican.
type FeedbackEditRequest struct {
	Strengths    *string   `json:"strengths"`
	Improvement  *string   `json:"improvement"`
	Sentiment    *string   `json:"sentiment"`
	Tags         *[]string `json:"tags"`
	Acknowledged *bool     `json:"acknowledged"`
}

// RequestFeedbackRequest cuerpo de POST /feedback/request.
type RequestFeedbackRequest struct {
	Member string `json:"member"`
}

// FeedbackRequestResponse forma pública de una solicitud de feedback.
type FeedbackRequestResponse struct {
	ID         int64  `json:"id"`
	EmployeeID int64  `json:"employee_id"`
	ManagerID  int64  `json:"manager_id"`
	Status     string `json:"status"`
}

// CompleteRequestRequest cuerpo de PUT /feedback_request/complete.
type CompleteRequestRequest struct {
	Employee  string `json:"employee"`
	ManagerID int64  `json:"manager_id"`
}

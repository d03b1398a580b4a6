package dto

// ErrorResponse cuerpo de error HTTP. El frontend espera siempre {"detail": ...}.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse respuesta simple con mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}

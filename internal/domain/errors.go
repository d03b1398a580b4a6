package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidRole        = errors.New("rol inválido")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrEmployeeNotFound   = errors.New("empleado no encontrado")
	ErrManagerNotFound    = errors.New("manager no encontrado")
	ErrFeedbackNotFound   = errors.New("feedback no encontrado")
	ErrNoPendingRequest   = errors.New("sin solicitudes pendientes")
	// ErrAmbiguousName: dos usuarios comparten nombre. Los feedbacks referencian
	// empleados por nombre, así que la búsqueda no puede elegir uno en silencio.
	ErrAmbiguousName = errors.New("nombre de usuario ambiguo")
)

package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/workvibe-api/internal/application/dto"
	"github.com/jhoicas/workvibe-api/internal/domain"
)

// respondError mapea errores de dominio a status + {"detail": ...}.
// internalPrefix se antepone al mensaje del error en los 500, igual que
// hacía el sistema anterior (herramienta interna: el mensaje no se redacta).
func respondError(c *fiber.Ctx, err error, internalPrefix string) error {
	switch {
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return detail(c, fiber.StatusNotFound, "Employee not found")
	case errors.Is(err, domain.ErrManagerNotFound):
		return detail(c, fiber.StatusNotFound, "Manager not found")
	case errors.Is(err, domain.ErrFeedbackNotFound):
		return detail(c, fiber.StatusNotFound, "Feedback not found")
	case errors.Is(err, domain.ErrNoPendingRequest):
		return detail(c, fiber.StatusNotFound, "Pending feedback request not found")
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrNotFound):
		return detail(c, fiber.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return detail(c, fiber.StatusConflict, "Email already registered")
	case errors.Is(err, domain.ErrAmbiguousName):
		return detail(c, fiber.StatusConflict, "Multiple users share this name")
	case errors.Is(err, domain.ErrInvalidRole):
		return detail(c, fiber.StatusBadRequest, "Role must be 'manager' or 'employee'")
	case errors.Is(err, domain.ErrInvalidInput):
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	case errors.Is(err, domain.ErrUnauthorized):
		return detail(c, fiber.StatusUnauthorized, "Incorrect email or password")
	case errors.Is(err, domain.ErrForbidden):
		return detail(c, fiber.StatusForbidden, "Not authorized to edit this feedback")
	default:
		return detail(c, fiber.StatusInternalServerError, fmt.Sprintf("%s: %v", internalPrefix, err))
	}
}

func detail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Detail: msg})
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/workvibe-api/internal/application/activity"
	"github.com/jhoicas/workvibe-api/internal/application/dto"
)

// ActivityHandler maneja la bitácora de actividad.
type ActivityHandler struct {
	uc *activity.UseCase
}

// NewActivityHandler construye el handler de bitácora.
func NewActivityHandler(uc *activity.UseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// Append godoc
// @Summary      Registrar una entrada de bitácora
// @Tags         activity
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ActivityLogCreateRequest  true  "entrada"
// @Success      201   {object}  dto.ActivityLogResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /activity-log [post]
func (h *ActivityHandler) Append(c *fiber.Ctx) error {
	var in dto.ActivityLogCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	out, err := h.uc.Append(in)
	if err != nil {
		return respondError(c, err, "Failed to record activity")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/workvibe-api/internal/application/feedback"
	"github.com/jhoicas/workvibe-api/internal/application/stats"
)

// EmployeeHandler expone las métricas individuales del empleado.
type EmployeeHandler struct {
	stats    *stats.UseCase
	feedback *feedback.UseCase
}

// NewEmployeeHandler construye el handler de métricas de empleado.
func NewEmployeeHandler(statsUC *stats.UseCase, feedbackUC *feedback.UseCase) *EmployeeHandler {
	return &EmployeeHandler{stats: statsUC, feedback: feedbackUC}
}

// FeedbackCount godoc
// @Summary      Total de feedbacks recibidos por el empleado
// @Tags         employee
// @Produce      json
// @Param        id  path  int  true  "employee id"
// @Success      200  {object}  dto.FeedbackReceivedDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /employee/{id}/feedbacks/count [get]
func (h *EmployeeHandler) FeedbackCount(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid employee id")
	}
	out, err := h.stats.FeedbackReceived(c.Context(), id)
	if err != nil {
		return respondError(c, err, "Failed to count feedback")
	}
	return c.JSON(out)
}

// PendingAck feedbacks recibidos aún sin acuse de recibo.
func (h *EmployeeHandler) PendingAck(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid employee id")
	}
	out, err := h.stats.PendingAckByEmployee(c.Context(), id)
	if err != nil {
		return respondError(c, err, "Failed to count pending acknowledgments")
	}
	return c.JSON(out)
}

// AckRate porcentaje de feedbacks recibidos con acuse de recibo.
func (h *EmployeeHandler) AckRate(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid employee id")
	}
	out, err := h.stats.AcknowledgmentRate(c.Context(), id)
	if err != nil {
		return respondError(c, err, "Failed to compute acknowledgment rate")
	}
	return c.JSON(out)
}

// AverageSentiment promedio 1-5 del sentimiento de los feedbacks recibidos.
func (h *EmployeeHandler) AverageSentiment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid employee id")
	}
	out, err := h.stats.AverageSentimentByEmployee(c.Context(), id)
	if err != nil {
		return respondError(c, err, "Failed to compute average sentiment")
	}
	return c.JSON(out)
}

// FeedbacksByName feedbacks recibidos por nombre, id ascendente.
// La ruta usa el nombre (no el id) porque el feedback guarda al miembro
// por nombre.
func (h *EmployeeHandler) FeedbacksByName(c *fiber.Ctx) error {
	// Los nombres llevan espacios; el parámetro llega escapado.
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil || name == "" {
		return detail(c, fiber.StatusBadRequest, "Employee name is required")
	}
	out, err := h.feedback.ListForMember(name)
	if err != nil {
		return respondError(c, err, "Failed to fetch feedback")
	}
	return c.JSON(out)
}

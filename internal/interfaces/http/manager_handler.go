package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/workvibe-api/internal/application/activity"
	"github.com/jhoicas/workvibe-api/internal/application/feedback"
	"github.com/jhoicas/workvibe-api/internal/application/stats"
)

// ManagerHandler expone el panel del manager: roster, métricas agregadas,
// tendencia de sentimiento y actividad reciente del equipo.
type ManagerHandler struct {
	stats    *stats.UseCase
	feedback *feedback.UseCase
	activity *activity.UseCase
}

// NewManagerHandler construye el handler del panel de manager.
func NewManagerHandler(statsUC *stats.UseCase, feedbackUC *feedback.UseCase, activityUC *activity.UseCase) *ManagerHandler {
	return &ManagerHandler{stats: statsUC, feedback: feedbackUC, activity: activityUC}
}

// Employees godoc
// @Summary      Roster del equipo con contadores por empleado
// @Tags         manager
// @Produce      json
// @Param        id  path  int  true  "manager id"
// @Success      200  {array}  dto.EmployeeOverviewDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /manager/{id}/employees [get]
func (h *ManagerHandler) Employees(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid manager id")
	}
	out, err := h.stats.EmployeesOverview(c.Context(), id)
	if err != nil {
		return respondError(c, err, "Failed to fetch employees")
	}
	return c.JSON(out)
}

// FeedbackCount total de feedbacks dados por el manager.
func (h *ManagerHandler) FeedbackCount(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid manager id")
	}
	out, err := h.stats.TotalGiven(c.Context(), id)
	if err != nil {
		return respondError(c, err, "Failed to count feedback")
	}
	return c.JSON(out)
}

// TeamResponseRate porcentaje de solicitudes de feedback completadas.
func (h *ManagerHandler) TeamResponseRate(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid manager id")
	}
	out, err := h.stats.TeamResponseRate(c.Context(), id)
	if err != nil {
		return respondError(c, err, "Failed to compute response rate")
	}
	return c.JSON(out)
}

// AverageSentiment promedio 1-5 del sentimiento de los feedbacks dados.
func (h *ManagerHandler) AverageSentiment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid manager id")
	}
	out, err := h.stats.AverageSentimentByManager(c.Context(), id)
	if err != nil {
		return respondError(c, err, "Failed to compute average sentiment")
	}
	return c.JSON(out)
}

// PendingAck feedbacks del manager aún sin acuse de recibo.
func (h *ManagerHandler) PendingAck(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid manager id")
	}
	out, err := h.stats.PendingAckByManager(c.Context(), id)
	if err != nil {
		return respondError(c, err, "Failed to count pending acknowledgments")
	}
	return c.JSON(out)
}

// SentimentTrends godoc
// @Summary      Tendencia mensual de sentimiento (últimos 12 buckets)
// @Tags         manager
// @Produce      json
// @Param        id  path  int  true  "manager id"
// @Success      200  {array}  dto.SentimentTrendDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /manager/{id}/feedbacks/sentiment-trends [get]
func (h *ManagerHandler) SentimentTrends(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid manager id")
	}
	out, err := h.stats.SentimentTrends(c.Context(), id)
	if err != nil {
		return respondError(c, err, "Failed to compute sentiment trends")
	}
	return c.JSON(out)
}

// FeedbacksGiven listado completo de feedbacks dados por el manager,
// más reciente primero.
func (h *ManagerHandler) FeedbacksGiven(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid manager id")
	}
	out, err := h.feedback.ListGivenByManager(id)
	if err != nil {
		return respondError(c, err, "Failed to fetch feedback")
	}
	return c.JSON(out)
}

// Activities últimas entradas de bitácora del equipo del manager.
func (h *ManagerHandler) Activities(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid manager id")
	}
	out, err := h.activity.RecentByManager(id)
	if err != nil {
		return respondError(c, err, "Failed to fetch activities")
	}
	return c.JSON(out)
}

package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/workvibe-api/internal/application/dto"
	"github.com/jhoicas/workvibe-api/internal/application/feedback"
	"github.com/jhoicas/workvibe-api/internal/application/report"
	"github.com/jhoicas/workvibe-api/internal/domain"
)

// FeedbackHandler maneja el ciclo de vida del feedback y sus solicitudes.
type FeedbackHandler struct {
	uc     *feedback.UseCase
	report *report.UseCase
}

// NewFeedbackHandler construye el handler de feedback.
func NewFeedbackHandler(uc *feedback.UseCase, reportUC *report.UseCase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc, report: reportUC}
}

// Create godoc
// @Summary      Crear feedback para un miembro del equipo
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FeedbackCreateRequest  true  "feedback"
// @Success      201   {object}  dto.FeedbackResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /feedback [post]
func (h *FeedbackHandler) Create(c *fiber.Ctx) error {
	var in dto.FeedbackCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err, "Failed to load feedback into database")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Feedbacks recibidos por un miembro (por nombre)
// @Tags         feedback
// @Produce      json
// @Param        user  query  string  true  "nombre del miembro"
// @Success      200  {array}  dto.FeedbackResponse
// @Router       /feedback [get]
func (h *FeedbackHandler) List(c *fiber.Ctx) error {
	member := c.Query("user")
	if member == "" {
		return detail(c, fiber.StatusBadRequest, "user query parameter is required")
	}
	out, err := h.uc.ListForMember(member)
	if err != nil {
		return respondError(c, err, "Failed to fetch feedback")
	}
	return c.JSON(out)
}

// Edit godoc
// @Summary      Editar un feedback (parcial; solo el autor puede editar)
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        id       path   int  true   "feedback id"
// @Param        user_id  query  int  false  "id del usuario que edita"
// @Success      200  {object}  dto.FeedbackResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /feedback/{id} [put]
func (h *FeedbackHandler) Edit(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid feedback id")
	}
	var editorID *int64
	if raw := c.Query("user_id"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return detail(c, fiber.StatusBadRequest, "Invalid user_id")
		}
		editorID = &v
	}
	var in dto.FeedbackEditRequest
	if err := c.BodyParser(&in); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	out, err := h.uc.Edit(c.Context(), id, in, editorID)
	if err != nil {
		return respondError(c, err, "Failed to edit feedback")
	}
	return c.JSON(out)
}

// Acknowledge godoc
// @Summary      Marcar un feedback como recibido
// @Tags         feedback
// @Produce      json
// @Param        id  path  int  true  "feedback id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /feedback/{id}/acknowledge [put]
func (h *FeedbackHandler) Acknowledge(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid feedback id")
	}
	if err := h.uc.Acknowledge(c.Context(), id); err != nil {
		return respondError(c, err, "Failed to acknowledge feedback")
	}
	return c.JSON(dto.MessageResponse{Message: "Feedback acknowledged"})
}

// Request godoc
// @Summary      Solicitar feedback al manager de la empresa del empleado
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RequestFeedbackRequest  true  "member"
// @Success      201   {object}  dto.FeedbackRequestResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /feedback/request [post]
func (h *FeedbackHandler) Request(c *fiber.Ctx) error {
	var in dto.RequestFeedbackRequest
	if err := c.BodyParser(&in); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if in.Member == "" {
		return detail(c, fiber.StatusBadRequest, "member is required")
	}
	out, err := h.uc.Request(c.Context(), in.Member)
	if err != nil {
		// Esta ruta distingue al manager ausente con su propio mensaje.
		if errors.Is(err, domain.ErrManagerNotFound) {
			return detail(c, fiber.StatusNotFound, "Manager not found for this company")
		}
		return respondError(c, err, "Failed to create feedback request")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CompleteRequest godoc
// @Summary      Marcar como completada la solicitud pendiente más antigua
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CompleteRequestRequest  true  "employee, manager_id"
// @Success      200   {object}  dto.FeedbackRequestResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /feedback_request/complete [put]
func (h *FeedbackHandler) CompleteRequest(c *fiber.Ctx) error {
	var in dto.CompleteRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if in.Employee == "" || in.ManagerID == 0 {
		return detail(c, fiber.StatusBadRequest, "employee and manager_id are required")
	}
	out, err := h.uc.CompleteRequest(c.Context(), in.Employee, in.ManagerID)
	if err != nil {
		return respondError(c, err, "Failed to complete feedback request")
	}
	return c.JSON(out)
}

// ExportPDF godoc
// @Summary      Descargar un feedback como PDF
// @Tags         feedback
// @Produce      application/pdf
// @Param        id  path  int  true  "feedback id"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /feedback/{id}/export-pdf [get]
func (h *FeedbackHandler) ExportPDF(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid feedback id")
	}
	data, filename, err := h.report.Export(c.Context(), id)
	if err != nil {
		return respondError(c, err, "Failed to generate PDF")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.Send(data)
}

// parseID lee un parámetro de ruta como entero positivo.
func parseID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/workvibe-api/internal/application/auth"
	"github.com/jhoicas/workvibe-api/internal/application/dto"
)

// AuthHandler maneja registro y login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Signup godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "name, email, password, company, role"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Company == "" || in.Role == "" {
		return detail(c, fiber.StatusBadRequest, "name, email, password, company and role are required")
	}
	user, err := h.uc.Signup(in)
	if err != nil {
		return respondError(c, err, "Failed to register user")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login godoc
// @Summary      Iniciar sesión (formulario OAuth2: username = email)
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "email"
// @Param        password  formData  string  true  "password"
// @Success      200  {object}  dto.LoginResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if in.Username == "" || in.Password == "" {
		return detail(c, fiber.StatusBadRequest, "username and password are required")
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err, "Failed to log in")
	}
	return c.JSON(out)
}

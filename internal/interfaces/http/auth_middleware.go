package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/workvibe-api/internal/application/dto"
	"github.com/jhoicas/workvibe-api/pkg/jwt"
)

// LocalUserEmail key del email autenticado en c.Locals.
const LocalUserEmail = "user_email"

// publicPrefixes rutas exentas del gate de autenticación.
var publicPrefixes = []string{"/login", "/signup", "/docs", "/health"}

// AuthGate middleware global: toda petición salvo las rutas públicas y los
// preflight OPTIONS debe traer Authorization: Bearer <token>. El subject
// (email) del token queda en c.Locals para los handlers.
func AuthGate(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodOptions {
			return c.Next()
		}
		path := c.Path()
		for _, p := range publicPrefixes {
			if strings.HasPrefix(path, p) {
				return c.Next()
			}
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Detail: "Not authenticated"})
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		email, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Detail: "Invalid token"})
		}
		c.Locals(LocalUserEmail, email)
		return c.Next()
	}
}

// GetUserEmail devuelve el email autenticado del contexto (después del gate).
func GetUserEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalUserEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

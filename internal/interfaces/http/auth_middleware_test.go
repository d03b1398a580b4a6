package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/workvibe-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/workvibe-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testEmail     = "ana.gomez@acme.test"
	testIssuer    = "workvibe-test"
	testExpMin    = 60
)

// buildGateApp construye una app Fiber mínima con el gate global y un par de
// rutas: una pública (/login) y una protegida.
func buildGateApp() *fiber.App {
	app := fiber.New()
	app.Use(apphttp.AuthGate(testJWTSecret))
	app.Post("/login", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/feedback", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"email": apphttp.GetUserEmail(c)})
	})
	return app
}

func validToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testEmail, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, method, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthGate
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: ruta pública sin token → pasa el gate.
func TestAuthGate_RutaPublicaSinToken_Pasa(t *testing.T) {
	app := buildGateApp()
	resp := doRequest(t, app, http.MethodPost, "/login", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"/login es público y no debe exigir token")
}

// Caso 2: preflight OPTIONS → pasa el gate aunque la ruta sea protegida.
func TestAuthGate_Preflight_Pasa(t *testing.T) {
	app := buildGateApp()
	app.Options("/feedback", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusNoContent) })

	resp := doRequest(t, app, http.MethodOptions, "/feedback", "")
	defer resp.Body.Close()

	assert.NotEqual(t, http.StatusUnauthorized, resp.StatusCode,
		"el preflight CORS no debe ser bloqueado por el gate")
}

// Caso 3: ruta protegida sin header → 401 "Not authenticated".
func TestAuthGate_SinHeader_Retorna401(t *testing.T) {
	app := buildGateApp()
	resp := doRequest(t, app, http.MethodGet, "/feedback", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Not authenticated",
		"el cuerpo debe ser {\"detail\": \"Not authenticated\"}")
}

// Caso 3b: header sin esquema Bearer → 401 "Not authenticated".
func TestAuthGate_EsquemaNoBearer_Retorna401(t *testing.T) {
	app := buildGateApp()
	resp := doRequest(t, app, http.MethodGet, "/feedback", "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Not authenticated")
}

// Caso 4: token inválido → 401 "Invalid token".
func TestAuthGate_TokenInvalido_Retorna401(t *testing.T) {
	app := buildGateApp()
	resp := doRequest(t, app, http.MethodGet, "/feedback", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Invalid token",
		"token inválido y token ausente tienen mensajes distintos")
}

// Caso 5: token expirado → 401 "Invalid token".
func TestAuthGate_TokenExpirado_Retorna401(t *testing.T) {
	app := buildGateApp()
	tok, err := pkgjwt.Generate(testJWTSecret, testEmail, testIssuer, -1)
	require.NoError(t, err)

	resp := doRequest(t, app, http.MethodGet, "/feedback", "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 6: token válido → pasa y el handler ve el email en locals.
func TestAuthGate_TokenValido_CargaEmail(t *testing.T) {
	app := buildGateApp()
	resp := doRequest(t, app, http.MethodGet, "/feedback", validToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testEmail, body["email"], "el email del token debe quedar en locals")
}

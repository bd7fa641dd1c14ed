package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/Onboarding-api/internal/interfaces/http"
	"github.com/jhoicas/Onboarding-api/pkg/logger"
)

func newLoggedApp(buf *bytes.Buffer) *fiber.App {
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: buf})
	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var line map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &line))
	return line
}

func TestRequestLogger_RegistraUsuarioAutenticado(t *testing.T) {
	var buf bytes.Buffer
	app := newLoggedApp(&buf)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "recruiter"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	line := lastLine(t, &buf)
	assert.Equal(t, "http", line["component"])
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, testUserID, line["user_id"])
	assert.Equal(t, float64(http.StatusNoContent), line["status"])
}

func TestRequestLogger_SinTokenNoIncluyeUsuario(t *testing.T) {
	var buf bytes.Buffer
	app := newLoggedApp(&buf)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/me", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	line := lastLine(t, &buf)
	assert.Equal(t, "warn", line["level"])
	assert.NotContains(t, line, "user_id")
}

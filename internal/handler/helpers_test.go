package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Body       json.RawMessage `json:"body"`
}

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: ErrorHandler(zap.NewNop())})
}

// asUser fakes what the auth middleware leaves behind.
func asUser(id uuid.UUID) fiber.Handler {
	return asRole(id, "user")
}

func asRole(id uuid.UUID, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", id)
		c.Locals("userRole", role)
		return c.Next()
	}
}

func doJSON(t *testing.T, app *fiber.App, method, target string, payload interface{}) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	switch p := payload.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(p)
	default:
		raw, err := json.Marshal(p)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && json.Valid(raw) {
		require.NoError(t, json.Unmarshal(raw, &env))
	}
	return resp, env
}

func message(t *testing.T, env envelope) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(env.Body, &body))
	return body.Message
}

package jwt

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(gen *Generator) *fiber.App {
	app := fiber.New()
	app.Get("/whoami", NewAuthMiddleware(gen), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId":   c.Locals("userId"),
			"username": c.Locals("username"),
		})
	})
	return app
}

func TestAuthMiddlewareAllowsValidToken(t *testing.T) {
	gen := NewGenerator("test-secret", "tasks-service", time.Hour)
	user := testUser()
	token, err := gen.Generate(context.Background(), user)
	require.NoError(t, err)

	app := newProtectedApp(gen)

	for _, header := range []string{"Bearer " + token, token} {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), user.ID.String())
		assert.Contains(t, string(body), user.Username)
	}
}

func TestAuthMiddlewareRejects(t *testing.T) {
	gen := NewGenerator("test-secret", "tasks-service", time.Hour)
	app := newProtectedApp(gen)

	cases := map[string]string{
		"missing header": "",
		"empty bearer":   "Bearer ",
		"garbage":        "Bearer not.a.token",
		"foreign key": func() string {
			other := NewGenerator("other-secret", "tasks-service", time.Hour)
			token, _ := other.Generate(context.Background(), testUser())
			return "Bearer " + token
		}(),
	}
	for name, header := range cases {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, name)
	}
}

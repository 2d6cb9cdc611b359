package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(RequestContext())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"requestId":  RequestID(c),
			"apiVersion": c.Locals(LocalAPIVersion),
		})
	})
	return app
}

func TestRequestContextAssignsID(t *testing.T) {
	resp, err := newApp().Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	id := resp.Header.Get(RequestIDHeader)
	_, err = uuid.Parse(id)
	assert.NoError(t, err, "request id %q should be a uuid", id)
}

func TestRequestContextKeepsCallerID(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "trace-123")
	req.Header.Set("X-Api-Version", "1.0")

	resp, err := newApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, "trace-123", resp.Header.Get(RequestIDHeader))
}

func TestRequestIDOutsideMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(RequestID(c))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.ContentLength)
}

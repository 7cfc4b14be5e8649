package middleware

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDGenerated(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	var seen string
	app.Get("/", func(c *fiber.Ctx) error {
		seen = GetRequestID(c)
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	header := resp.Header.Get(RequestIDHeader)
	assert.Equal(t, seen, header)
	_, err = uuid.Parse(header)
	assert.NoError(t, err)
}

func TestRequestIDPropagated(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestID(c))
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "trace-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "trace-123", resp.Header.Get(RequestIDHeader))
}

func TestPrometheusPassesThroughErrors(t *testing.T) {
	app := fiber.New()
	app.Use(Prometheus("test"))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/bad", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "bad")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/bad", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRequestContextDeadline(t *testing.T) {
	app := fiber.New()
	app.Use(RequestContext(20 * time.Millisecond))

	var ctxErr error
	var hasDeadline bool
	app.Get("/", func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		_, hasDeadline = ctx.Deadline()
		select {
		case <-ctx.Done():
			ctxErr = ctx.Err()
		case <-time.After(2 * time.Second):
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.True(t, hasDeadline)
	assert.ErrorIs(t, ctxErr, context.DeadlineExceeded)
}

func TestRequestContextCanceledAfterHandler(t *testing.T) {
	app := fiber.New()
	app.Use(RequestContext(0))

	var captured context.Context
	app.Get("/", func(c *fiber.Ctx) error {
		captured = c.UserContext()
		_, hasDeadline := captured.Deadline()
		assert.False(t, hasDeadline)
		assert.NoError(t, captured.Err())
		return c.SendStatus(fiber.StatusNoContent)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.ErrorIs(t, captured.Err(), context.Canceled)
}

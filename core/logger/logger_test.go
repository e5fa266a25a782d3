package logger_test

import (
	"net/http/httptest"
	"testing"

	"storage-gateway/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Run("ProductionJSON", func(t *testing.T) {
		l, err := logger.New(&logger.Config{Level: "info", Format: "json"})
		require.NoError(t, err)
		assert.NotNil(t, l)
	})

	t.Run("DevelopmentConsole", func(t *testing.T) {
		l, err := logger.New(&logger.Config{Level: "debug", Format: "console"})
		require.NoError(t, err)
		assert.NotNil(t, l)
	})
}

func TestWithRayID(t *testing.T) {
	app := fiber.New()

	base := zap.NewNop()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals("ray_id", "abc-123")
		l := logger.WithRayID(base, c)
		// A ray id produces a child logger; without one we get the original.
		assert.NotSame(t, base, l)

		c.Locals("ray_id", "")
		assert.Same(t, base, logger.WithRayID(base, c))
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

// Package httperr converts storage-layer failures into HTTP responses.
//
// Every failure path in the API answers with the same JSON shape:
//
//	{"message": "...", "statusCode": 404}
//
// The status code comes from the underlying ProviderError, defaulting to 500
// when the failure carried none.
package httperr

import (
	"storage-gateway/core/storage"

	"github.com/gofiber/fiber/v2"
)

// Respond writes err as a JSON error response on c.
func Respond(c *fiber.Ctx, err error) error {
	perr := storage.MapError(err)
	return c.Status(perr.StatusCode).JSON(fiber.Map{
		"message":    perr.Message,
		"statusCode": perr.StatusCode,
	})
}

// BadRequest writes a 400 response with the given message.
func BadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message":    message,
		"statusCode": fiber.StatusBadRequest,
	})
}

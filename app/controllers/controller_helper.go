package controllers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const (
	// msgInternalError is what clients see on storage failures. Internal
	// error text never reaches the response body.
	msgInternalError = "Error interno del servidor."

	msgInvalidBody  = "La solicitud debe ser de tipo JSON."
	msgInvalidInput = "Datos de entrada inválidos."
)

// respondError writes the shared error envelope. Every error response of the
// API carries {success:false, error:<message>} with the class in the status.
func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// isValidationError reports whether err comes from struct validation rather
// than from storage.
func isValidationError(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}

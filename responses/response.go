package responses

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// Error is an error carrying the HTTP status code it should be answered
// with. Handlers return it and let the app-level ErrorHandler render the
// response.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

// ErrorHandler renders every error escaping a handler as the uniform
// {success: false, message} body. Unknown errors become a 500 and are
// logged; their details are not leaked to the client.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return c.Status(appErr.Code).JSON(fiber.Map{
			"success": false,
			"message": appErr.Message,
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"success": false,
			"message": fiberErr.Message,
		})
	}

	log.Printf("unhandled error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Internal Server Error",
	})
}

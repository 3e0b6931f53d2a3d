package result

import "github.com/gofiber/fiber/v2"

// ErrorBody is the JSON envelope every failure response uses.
type ErrorBody struct {
	Message string    `json:"message"`
	Code    ErrorCode `json:"code"`
}

// Error writes the failure envelope with the status mapped from code.
func Error(c *fiber.Ctx, code ErrorCode, message string) error {
	return c.Status(StatusFor(code)).JSON(ErrorBody{Message: message, Code: code})
}

// Respond translates a Result into an HTTP response: failures go through
// the status mapper, successes are serialized as the raw payload with 200
// unless an explicit status override is given.
func Respond[T any](c *fiber.Ctx, r Result[T], status ...int) error {
	if r.Failed() {
		return Error(c, r.Code, r.Message)
	}
	return JSON(c, r.Data, status...)
}

// JSON writes data with 200 unless an explicit status override is given.
// A 204 override sends no body.
func JSON(c *fiber.Ctx, data any, status ...int) error {
	st := fiber.StatusOK
	if len(status) > 0 {
		st = status[0]
	}
	if st == fiber.StatusNoContent {
		return c.SendStatus(st)
	}
	return c.Status(st).JSON(data)
}

// ValidationFailed writes the 400 validation envelope. Validation errors
// never enter the status table; the payload validators produce them
// before any service runs.
func ValidationFailed(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorBody{Message: message, Code: ValidationError})
}

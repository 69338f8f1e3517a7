package httpx

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Envelope is the uniform response body for status/error results:
// {"status": "success"|"error", "message": "..."}.
type Envelope struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func requestID(c *fiber.Ctx) string {
	if v := c.Locals("requestid"); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func Error(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "Request failed"
	}
	return c.Status(status).JSON(Envelope{
		Status:    "error",
		Message:   message,
		RequestID: requestID(c),
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, message)
}

func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

func Internal(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

func Success(c *fiber.Ctx, message string) error {
	return c.JSON(Envelope{Status: "success", Message: message})
}

// LocalIdentity reads the caller identity stored by the identity middleware.
func LocalIdentity(c *fiber.Ctx) (string, error) {
	v := c.Locals("identity")
	if v == nil {
		return "", fmt.Errorf("missing local identity")
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("invalid local identity")
	}
	return s, nil
}

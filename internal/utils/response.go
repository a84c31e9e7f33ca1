package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/localnerve/truckerdb/internal/types"
)

// SuccessResponse sends a standard success response
func SuccessResponse(c *fiber.Ctx, data interface{}, status int) error {
	return c.Status(status).JSON(data)
}

// ErrorResponse sends a standard error response
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":    status,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, message, fiber.StatusNotFound, types.KindNotFound)
}

// ConflictResponse sends a 409 for duplicate-key violations
func ConflictResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, message, fiber.StatusConflict, types.KindConflict)
}

// FileMissingResponse sends a 404 when a document row exists but its file is
// gone from disk
func FileMissingResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, message, fiber.StatusNotFound, types.KindFileMissing)
}

// FieldViolation is one failed validation rule on a request body field
type FieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationErrorResponse sends a 422 carrying the full set of field violations
func ValidationErrorResponse(c *fiber.Ctx, message string, fields []FieldViolation) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"status":    fiber.StatusUnprocessableEntity,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      types.KindValidation,
		"fields":    fields,
	})
}

// MessageResponse sends a success acknowledgement for mutations (POST/PUT/DELETE)
func MessageResponse(c *fiber.Ctx, message string, status int) error {
	return c.Status(status).JSON(fiber.Map{
		"message":   message,
		"ok":        true,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int              `json:"status"`
	Message   string           `json:"message"`
	Ok        bool             `json:"ok"`
	Timestamp string           `json:"timestamp"`
	URL       string           `json:"url"`
	Type      string           `json:"type,omitempty"`
	Fields    []FieldViolation `json:"fields,omitempty"`
}

// MessageResponseStruct defines the schema for mutation acknowledgements
type MessageResponseStruct struct {
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
}

package types

import "fmt"

// Error kinds surfaced in the "type" field of error responses.
const (
	KindNotFound    = "not_found"
	KindValidation  = "validation"
	KindConflict    = "conflict"
	KindFileMissing = "file_missing"
)

type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "validation failed", Fields: fields}
}

// StockError is the envelope for insufficient-stock rejections. It carries
// the stock the delta was checked against so callers can diagnose and retry.
type StockError struct {
	Detail         string `json:"detail"`
	CurrentStock   int    `json:"current_stock"`
	AttemptedDelta int    `json:"attempted_delta"`
}

func NewStock(current, attempted int) *StockError {
	return &StockError{
		Detail:         "insufficient stock",
		CurrentStock:   current,
		AttemptedDelta: attempted,
	}
}

// Package apierror defines the two domain error kinds raised by the services
// (NotFound, BusinessRule) and the standardized error envelope returned to
// clients. All 4xx/5xx responses go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"fmt"
	"time"
)

// NotFoundError signals that a requested entity (or one of a batch) does not
// exist. The HTTP boundary maps it to 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NotFound builds a NotFoundError naming what was missing.
func NotFound(format string, args ...interface{}) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// BusinessRuleError signals a structurally valid operation that violates a
// domain constraint: duplicate name, referenced entity in use, empty required
// collection. The HTTP boundary maps it to 400.
type BusinessRuleError struct {
	Message string
}

func (e *BusinessRuleError) Error() string { return e.Message }

// BusinessRule builds a BusinessRuleError with a human-readable message.
func BusinessRule(format string, args ...interface{}) error {
	return &BusinessRuleError{Message: fmt.Sprintf(format, args...)}
}

// Response is the canonical error envelope for every error response.
type Response struct {
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func NewResponse(status int, message string) Response {
	return Response{Status: status, Message: message, Timestamp: time.Now().UTC()}
}

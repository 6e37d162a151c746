package shared

import "errors"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrUnauthorized = NewDomainError("UNAUTHORIZED", "Log in required")
	ErrForbidden    = NewDomainError("FORBIDDEN", "Shop accounts only")
	ErrNotFound     = NewDomainError("NOT_FOUND", "Resource not found")
	ErrValidation   = NewDomainError("VALIDATION_ERROR", "Invalid input provided")
	ErrParse        = NewDomainError("PARSE_ERROR", "Malformed document")
	ErrFetch        = NewDomainError("FETCH_ERROR", "Document could not be fetched")
	ErrIntegrity    = NewDomainError("INTEGRITY_ERROR", "Uniqueness constraint violated")
)

// IsCode reports whether err carries a DomainError with the given code.
func IsCode(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

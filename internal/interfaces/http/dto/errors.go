package dto

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/procure/backend/internal/domain/shared"
)

// HTTPStatus maps a domain error to its response status. Validation
// and lookup failures keep HTTP 200: the envelope's Status field is
// the real signal, and only auth failures change the transport
// status.
func HTTPStatus(err error) int {
	if shared.IsCode(err, "UNAUTHORIZED") || shared.IsCode(err, "FORBIDDEN") {
		return http.StatusForbidden
	}
	return http.StatusOK
}

// ErrorsPayload renders the Errors field for an error: a field map
// for binding failures, the domain message otherwise.
func ErrorsPayload(err error) any {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		fields := make(map[string]string, len(vErrs))
		for _, fe := range vErrs {
			fields[strings.ToLower(fe.Field())] = bindingMessage(fe)
		}
		return fields
	}

	var de *shared.DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}

func bindingMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "A valid email is required"
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	}
	return "Invalid value"
}

package dto

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/procure/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unauthorized", shared.ErrUnauthorized, http.StatusForbidden},
		{"forbidden", shared.ErrForbidden, http.StatusForbidden},
		{"wrapped unauthorized", errors.Join(shared.ErrUnauthorized, errors.New("cause")), http.StatusForbidden},
		{"validation", shared.NewDomainError("VALIDATION_ERROR", "bad input"), http.StatusOK},
		{"not found", shared.ErrNotFound, http.StatusOK},
		{"plain error", errors.New("boom"), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorsPayloadDomainError(t *testing.T) {
	err := shared.NewDomainError("VALIDATION_ERROR", "Quantity must be positive")
	assert.Equal(t, "Quantity must be positive", ErrorsPayload(err))
}

func TestErrorsPayloadPlainError(t *testing.T) {
	assert.Equal(t, "boom", ErrorsPayload(errors.New("boom")))
}

func TestErrorsPayloadBindingErrors(t *testing.T) {
	type form struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=8"`
	}
	v := validator.New()
	err := v.Struct(form{Email: "nope", Password: "short"})
	require.Error(t, err)

	payload := ErrorsPayload(err)
	fields, ok := payload.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "A valid email is required", fields["email"])
	assert.Equal(t, "Value is too short", fields["password"])
}

func TestEnvelopes(t *testing.T) {
	ok := OK(Envelope{"Basket": 1})
	assert.Equal(t, true, ok["Status"])
	assert.Equal(t, 1, ok["Basket"])

	fail := Fail("nope")
	assert.Equal(t, false, fail["Status"])
	assert.Equal(t, "nope", fail["Errors"])
}

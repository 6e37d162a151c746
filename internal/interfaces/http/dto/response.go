// Package dto defines the wire envelope and the error mapping for the
// HTTP surface.
package dto

// Envelope is the response body shape every endpoint uses: Status
// plus operation-specific fields on success, Status plus Errors on
// failure.
type Envelope map[string]any

// OK builds a success envelope, merging the given fields.
func OK(fields Envelope) Envelope {
	body := Envelope{"Status": true}
	for k, v := range fields {
		body[k] = v
	}
	return body
}

// Fail builds a failure envelope. Errors is either a plain message or
// a field-to-message map.
func Fail(errs any) Envelope {
	return Envelope{"Status": false, "Errors": errs}
}

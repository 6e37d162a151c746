package pricelist

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/procure/backend/internal/domain/shared"
)

// Parse decodes a YAML price-list document and validates it. Any
// syntax or structural problem comes back as a PARSE_ERROR so callers
// can report it without inspecting YAML internals.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseJSONUnmarshaler()); err != nil {
		return nil, errors.Join(shared.ErrParse, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Encode renders the document back to YAML.
func Encode(doc *Document) ([]byte, error) {
	data, err := yaml.MarshalWithOptions(doc, yaml.UseJSONMarshaler())
	if err != nil {
		return nil, fmt.Errorf("encode price list: %w", err)
	}
	return data, nil
}

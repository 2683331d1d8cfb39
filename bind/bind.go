// Package bind assembles named struct types from validated field mappings.
package bind

import (
	"context"

	"github.com/mitchellh/mapstructure"

	schema "github.com/fullgream/schema-validator"
)

// As builds a value of type T from a validated field mapping. It is a
// second, coarser pass over the mapping: when any field required by T is
// absent or carries the wrong embedded type, it fails with a structural
// Type error rather than a field-level one.
func As[T any](fields map[string]any) (T, error) {
	var out T
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:   &out,
		Metadata: &md,
	})
	if err != nil {
		return out, err
	}
	if err := dec.Decode(fields); err != nil || len(md.Unset) > 0 {
		var zero T
		return zero, schema.TypeError("Object with required fields", "Object with missing or invalid fields", nil)
	}
	return out, nil
}

// ValidateAs validates v against an object schema and assembles the
// resulting mapping into T.
func ValidateAs[T any](ctx context.Context, s schema.Schema[map[string]any], v any) (T, error) {
	fields, err := s.Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, err
	}
	return As[T](fields)
}

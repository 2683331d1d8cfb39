// Package json normalizes JSON documents into the field mapping consumed by
// object schemas.
package json

import (
	"context"
	"fmt"

	gojson "github.com/goccy/go-json"

	schema "github.com/fullgream/schema-validator"
)

// Decode parses a JSON document and normalizes it into a field mapping:
// numbers become float64, null becomes absent (nil). The top level must be
// a JSON object; nested arrays and objects are rejected with a Type error.
func Decode(data []byte) (map[string]any, error) {
	var doc any
	if err := gojson.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	m, ok := doc.(map[string]any)
	if !ok {
		return nil, schema.TypeError("Object", schema.TypeName(doc), nil)
	}
	return Normalize(m)
}

// Normalize checks a decoded mapping against the dynamic value set. Scalar
// and null leaves pass through; containers are unsupported field values.
func Normalize(m map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch v.(type) {
		case nil, string, float64, bool:
			out[k] = v
		default:
			return nil, schema.TypeError("String, Number, Boolean or Null", "Array or Object", nil)
		}
	}
	return out, nil
}

// Parse decodes data and validates the resulting field mapping against s.
func Parse[T any](ctx context.Context, s schema.Schema[T], data []byte) (T, error) {
	m, err := Decode(data)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.Parse(ctx, m)
}

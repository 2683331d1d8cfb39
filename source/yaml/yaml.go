// Package yaml normalizes YAML documents into the field mapping consumed by
// object schemas.
package yaml

import (
	"context"
	"fmt"

	goyaml "gopkg.in/yaml.v3"

	schema "github.com/fullgream/schema-validator"
)

// Decode parses a YAML document and normalizes it into a field mapping:
// integers stay integral (int64), floats stay float64, null becomes absent
// (nil). The top level must be a mapping; nested sequences and mappings are
// rejected with a Type error.
func Decode(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := goyaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if doc == nil {
		return nil, schema.TypeError("Object", "None", nil)
	}
	return Normalize(doc)
}

// Normalize checks a decoded mapping against the dynamic value set. Scalar
// and null leaves pass through, integer widths collapse to int64; containers
// are unsupported field values.
func Normalize(m map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch t := v.(type) {
		case nil, string, float64, bool, int64:
			out[k] = t
		case int:
			out[k] = int64(t)
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

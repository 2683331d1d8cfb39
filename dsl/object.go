package dsl

import (
	"context"
	"maps"

	schema "github.com/fullgream/schema-validator"
)

// ObjectSchema composes named field schemas. Validation is exhaustive:
// every declared field is evaluated and independent failures are aggregated
// into a single Object error carrying the full name-to-error detail map.
type ObjectSchema struct {
	fields map[string]AnyAdapter
	coerce bool
	cfg    *schema.ErrorConfig
}

// Object returns a new object schema with no fields.
func Object() *ObjectSchema {
	return &ObjectSchema{fields: map[string]AnyAdapter{}}
}

func (o *ObjectSchema) clone() *ObjectSchema {
	c := *o
	c.fields = maps.Clone(o.fields)
	return &c
}

// Field declares a named child schema. Field names are unique within one
// object; re-declaring a name replaces the previous child.
func (o *ObjectSchema) Field(name string, ad AnyAdapter) *ObjectSchema {
	c := o.clone()
	c.fields[name] = ad
	return c
}

// Coerce enables per-field coercion: raw values are converted toward each
// child's expected primitive before the child validates. Children whose
// target is not inferable receive the raw value unchanged.
func (o *ObjectSchema) Coerce() *ObjectSchema {
	c := o.clone()
	c.coerce = true
	return c
}

// SetMessage attaches a custom (code, message) pair replacing the
// aggregate's default code and message. Child errors inside the detail map
// keep their own codes and messages.
func (o *ObjectSchema) SetMessage(code, message string) *ObjectSchema {
	c := o.clone()
	c.cfg = &schema.ErrorConfig{Code: code, Message: message}
	return c
}

// Parse validates v against every declared field and returns the validated
// field mapping. It never short-circuits on the first field failure.
func (o *ObjectSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, schema.TypeError("Object", schema.TypeName(v), o.cfg)
	}

	out := make(map[string]any, len(o.fields))
	var errs map[string]*schema.ValidationError
	fail := func(name string, ve *schema.ValidationError) {
		if errs == nil {
			errs = make(map[string]*schema.ValidationError)
		}
		errs[name] = ve
	}

	for name, ad := range o.fields {
		raw, present := m[name]
		if !present && !ad.optional {
			fail(name, schema.MissingFieldError(name))
			continue
		}
		if o.coerce && raw != nil && ad.primitive != schema.PrimitiveUnknown {
			coerced, ok := schema.CoerceTo(raw, ad.primitive)
			if !ok {
				fail(name, schema.CoercionError(schema.TypeName(raw), ad.primitive.String(), nil))
				continue
			}
			raw = coerced
		}
		res, err := ad.parse(ctx, raw)
		if err != nil {
			fail(name, asFieldError(err))
			continue
		}
		out[name] = res
	}

	if errs != nil {
		return nil, schema.ObjectError(errs, o.cfg)
	}
	return out, nil
}

// Assemble applies f to the validated field mapping, producing a typed
// output. It is the last step of the chain; field-level failures surface
// before f ever runs.
func Assemble[T any](o *ObjectSchema, f func(map[string]any) T) schema.Schema[T] {
	return Transform[map[string]any, T](o, f)
}

func asFieldError(err error) *schema.ValidationError {
	if ve, ok := schema.AsValidationError(err); ok {
		return ve
	}
	return &schema.ValidationError{Kind: schema.KindType, Code: schema.CodeType, Message: err.Error()}
}

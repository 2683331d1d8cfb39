package bind_test

import (
	"context"
	"testing"

	schema "github.com/fullgream/schema-validator"
	"github.com/fullgream/schema-validator/bind"
	"github.com/fullgream/schema-validator/dsl"
)

type user struct {
	Name string
	Age  float64
}

func TestAs_BuildsStruct(t *testing.T) {
	u, err := bind.As[user](map[string]any{"name": "Jo", "age": 30.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Name != "Jo" || u.Age != 30 {
		t.Fatalf("unexpected struct: %+v", u)
	}
}

func TestAs_MissingFieldFailsStructurally(t *testing.T) {
	_, err := bind.As[user](map[string]any{"name": "Jo"})
	ve, ok := schema.AsValidationError(err)
	if !ok || ve.Kind != schema.KindType {
		t.Fatalf("want structural type error, got %v", err)
	}
	if ve.Message != "Type error: expected Object with required fields, got Object with missing or invalid fields" {
		t.Fatalf("unexpected message: %q", ve.Message)
	}
}

func TestAs_MistypedFieldFailsStructurally(t *testing.T) {
	_, err := bind.As[user](map[string]any{"name": "Jo", "age": "thirty"})
	ve, ok := schema.AsValidationError(err)
	if !ok || ve.Kind != schema.KindType {
		t.Fatalf("want structural type error, got %v", err)
	}
}

func TestValidateAs_ComposesObjectParse(t *testing.T) {
	ctx := context.Background()
	s := dsl.Object().
		Field("name", dsl.SchemaOf[string](dsl.String().Min(2))).
		Field("age", dsl.SchemaOf[float64](dsl.Number()))

	u, err := bind.ValidateAs[user](ctx, s, map[string]any{"name": "Jo", "age": float64(30)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Name != "Jo" || u.Age != 30 {
		t.Fatalf("unexpected struct: %+v", u)
	}

	// Field-level failures surface before assembly.
	_, err = bind.ValidateAs[user](ctx, s, map[string]any{"name": "J", "age": float64(30)})
	ve, ok := schema.AsValidationError(err)
	if !ok || ve.Kind != schema.KindObject {
		t.Fatalf("want object error, got %v", err)
	}
}

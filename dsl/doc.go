// Package dsl provides the fluent builder surface for constructing schemas.
//
// Builders are immutable: every configuration call returns an extended copy,
// so a schema handed to a caller never changes underneath it and concurrent
// Parse calls against one schema need no synchronization.
//
//	user := dsl.Object().
//		Field("name", dsl.SchemaOf[string](dsl.String().Min(2))).
//		Field("age", dsl.SchemaOf[schema.Optional[float64]](dsl.Number().Optional()))
package dsl

// Package schema provides runtime validation of dynamically typed values.
//
// A Schema checks a dynamic value against a declared shape, optionally
// coerces it toward a target primitive type, optionally applies a chain of
// transformations, and returns either the typed result or a
// *ValidationError describing exactly what failed and why.
//
// The root package holds the shared contracts: the Schema interface, the
// error taxonomy, the coercion rules, and the built-in pattern table. The
// fluent builder surface lives in the dsl subpackage; document ingestion
// adapters live under source/, and struct assembly lives in bind.
package schema

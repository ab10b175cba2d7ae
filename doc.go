// Package aison maps statically declared Go types to and from a JSON-like
// tree value (node.Node), collecting path-located issues instead of stopping
// at the first failure.
//
// - Descriptors are declared with the dsl package (scalars, Object, Enum,
//   Variant, Custom, Optional, Slice) against a Schema.
// - Encode and Decode walk values in declaration order, so error paths are
//   deterministic ("$", "$.shapes[1].kind").
// - Introspect renders the reachable descriptor graph as a metadata snapshot
//   for external tools; the jsonschema package projects it to JSON Schema.
//
// Design policy:
// - Keep only public APIs in the root package; builders live under dsl/.
// - Errors are values: every engine failure is an Issue, never a panic,
//   unless the schema was constructed with PanicPolicy.
// - Prefer black-box testing against public APIs.
package aison

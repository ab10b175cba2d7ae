// Package dsl declares the descriptor builders: scalar descriptors for every
// integer width, Object with closure field accessors, Enum with decode-only
// aliases, Variant with ordered tagged alternatives, Custom with a
// user-supplied codec pair, and the Optional/Slice wrappers.
//
// Builders validate their declarations as they go (duplicate field names,
// duplicate members, duplicate enum values); what happens on a violation is
// decided by the schema's ViolationPolicy.
package dsl

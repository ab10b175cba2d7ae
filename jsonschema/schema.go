package jsonschema

// Schema is a minimal JSON Schema representation used for export.
// Keep this struct small and extend incrementally.
type Schema struct {
	// Core
	Type   string `json:"type,omitempty"`
	Format string `json:"format,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`

	// String enumeration
	Enum []string `json:"enum,omitempty"`

	// Union
	OneOf         []*Schema `json:"oneOf,omitempty"`
	Discriminator string    `json:"discriminator,omitempty"`

	// Wrappers
	Nullable bool `json:"nullable,omitempty"`

	// References
	Ref  string             `json:"$ref,omitempty"`
	Defs map[string]*Schema `json:"$defs,omitempty"`
}

// Package jsonschema holds a minimal JSON Schema representation used for
// export and for the structural validator in the root package.
package jsonschema

// Draft202012 is the dialect the exported theme schema declares.
const Draft202012 = "https://json-schema.org/draft/2020-12/schema"

// Schema is a minimal JSON Schema representation. Keep this struct small
// and extend incrementally.
type Schema struct {
	// Document header (set on the root schema only).
	Dialect string `json:"$schema,omitempty"`
	Title   string `json:"title,omitempty"`

	// Core
	Type string `json:"type,omitempty"`

	// Object
	Properties map[string]*Schema `json:"properties,omitempty"`
	// AdditionalProperties is nil (unset), a bool, or a *Schema fragment.
	AdditionalProperties any `json:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`
}

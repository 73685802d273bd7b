package themespec

// Package themespec models a design-token theme as a typed value tree and
// provides:
//
// - Mapping from untyped JSON/YAML input into the typed Theme (FromJSON/FromYAML/FromValue)
// - A generated JSON Schema describing the Theme's static shape (ThemeSchema)
// - A recursive schema validator with a stable error model via Issues (JSON Pointer, code, message)
// - Deterministic flattening into CSS custom-property declarations (CSSVariables)
//
// Design policy:
// - Keep only public APIs in the root package; the schema document type lives
//   under jsonschema/ and violation messages under i18n/.
// - A single slot/fragment table (fragments.go) drives the mapper, the
//   encoder, the schema generator, and the CSS flattener, so the generated
//   schema never drifts from what the mapper accepts.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  t, err := themespec.FromJSON(data)
//  if _, err := themespec.ValidateTheme(t); err != nil { ... }
//  css := themespec.CSSVariables(t)
//

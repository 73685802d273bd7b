package themespec

import (
	json "github.com/goccy/go-json"

	js "github.com/ryotow/themespec/jsonschema"
)

// ThemeSchema generates the JSON Schema describing the Theme's static
// shape. It is a pure, input-independent function: the document depends
// only on the slot tables in fragments.go, never on an instance.
//
// The root is the one place extra keys are rejected
// (additionalProperties: false); every group schema accepts extra keys as
// long as they satisfy the group's value fragment.
func ThemeSchema() *js.Schema {
	props := make(map[string]*js.Schema)
	for _, gs := range groupSpecs {
		props[gs.key] = groupSchema(gs)
	}
	for _, ss := range scaleSpecs {
		props[ss.key] = scaleSchema(ss.kind)
	}
	for _, os := range openMapSpecs {
		props[os.key] = openMapSchema()
	}
	return &js.Schema{
		Dialect:              js.Draft202012,
		Title:                "Theme",
		Type:                 "object",
		Properties:           props,
		AdditionalProperties: false,
	}
}

// ThemeSchemaJSON marshals the generated schema for consumption by
// external JSON Schema validators.
func ThemeSchemaJSON() ([]byte, error) {
	return json.MarshalIndent(ThemeSchema(), "", "  ")
}

// fragmentSchema projects a value fragment into its oneOf form.
func fragmentSchema(f fragment) *js.Schema {
	switch f {
	case fragStringOrList:
		return &js.Schema{OneOf: []*js.Schema{
			{Type: "string"},
			{Type: "array", Items: &js.Schema{Type: "string"}},
		}}
	default: // fragNumberOrString
		return &js.Schema{OneOf: []*js.Schema{
			{Type: "number"},
			{Type: "string"},
		}}
	}
}

func groupSchema(gs groupSpec) *js.Schema {
	s := &js.Schema{
		Type:                 "object",
		AdditionalProperties: fragmentSchema(gs.frag),
	}
	if gs.fixedProps {
		s.Properties = make(map[string]*js.Schema, len(gs.slots)+1)
		for _, name := range gs.slots {
			s.Properties[name] = fragmentSchema(gs.frag)
		}
	}
	if gs.key == "colors" {
		// modes is an open mapping of mode overlays, not validated slot-by-slot.
		s.Properties["modes"] = openMapSchema()
	}
	return s
}

func scaleSchema(kind scaleKind) *js.Schema {
	switch kind {
	case scaleNumber:
		return &js.Schema{Type: "array", Items: &js.Schema{Type: "number"}}
	case scaleString:
		return &js.Schema{Type: "array", Items: &js.Schema{Type: "string"}}
	default: // scaleMixed
		return &js.Schema{Type: "array", Items: fragmentSchema(fragNumberOrString)}
	}
}

func openMapSchema() *js.Schema {
	return &js.Schema{Type: "object", AdditionalProperties: true}
}

package themespec

import (
	"sort"
	"strconv"

	"github.com/ryotow/themespec/i18n"
	js "github.com/ryotow/themespec/jsonschema"
)

// ValidateValue checks a generic JSON value against a schema document and
// returns every violation found. An empty result means valid.
//
// The traversal is depth-first and deterministic: object properties in
// sorted key order, then undeclared keys in sorted order, array elements
// in source order. Keys declared in the schema but absent from the value
// are skipped — absence is never a violation. A oneOf succeeds as soon as
// one alternative yields zero violations; sub-violations of failed
// branches are discarded.
func ValidateValue(v any, s *js.Schema) Issues {
	return walkSchema("", v, s, nil)
}

// ValidateTheme converts the theme back to its generic value (absent
// fields are never serialized) and validates it against ThemeSchema().
// On success it returns the theme unchanged.
func ValidateTheme(t *Theme) (*Theme, error) {
	if iss := walkSchema("", ThemeValue(t), ThemeSchema(), nil); len(iss) > 0 {
		return nil, iss
	}
	return t, nil
}

func walkSchema(path string, v any, s *js.Schema, iss Issues) Issues {
	if s == nil {
		return iss
	}
	switch s.Type {
	case "object":
		m, ok := v.(map[string]any)
		if !ok {
			return AppendIssues(iss, typeIssue(path, "object"))
		}
		declared := make([]string, 0, len(s.Properties))
		for name := range s.Properties {
			declared = append(declared, name)
		}
		sort.Strings(declared)
		for _, name := range declared {
			pv, present := m[name]
			if !present {
				continue
			}
			iss = walkSchema(path+"/"+name, pv, s.Properties[name], iss)
		}
		return walkExtraKeys(path, m, s, iss)
	case "array":
		arr, ok := v.([]any)
		if !ok {
			return AppendIssues(iss, typeIssue(path, "array"))
		}
		for i, el := range arr {
			iss = walkSchema(path+"/"+strconv.Itoa(i), el, s.Items, iss)
		}
		return iss
	case "":
		if len(s.OneOf) > 0 {
			for _, alt := range s.OneOf {
				if len(walkSchema(path, v, alt, nil)) == 0 {
					return iss
				}
			}
			return AppendIssues(iss, Issue{
				Path:    pointer(path),
				Code:    CodeNoMatch,
				Message: i18n.T(CodeNoMatch, nil),
			})
		}
		return iss
	default:
		if !isType(v, s.Type) {
			return AppendIssues(iss, typeIssue(path, s.Type))
		}
		return iss
	}
}

// walkExtraKeys applies the schema's additionalProperties to keys not
// declared under properties: a fragment validates them, false rejects
// them, absent or true skips them.
func walkExtraKeys(path string, m map[string]any, s *js.Schema, iss Issues) Issues {
	if s.AdditionalProperties == nil {
		return iss
	}
	var extra []string
	for k := range m {
		if _, declared := s.Properties[k]; !declared {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	switch ap := s.AdditionalProperties.(type) {
	case bool:
		if ap {
			return iss
		}
		for _, k := range extra {
			iss = AppendIssues(iss, Issue{
				Path:    pointer(path + "/" + k),
				Code:    CodeUnknownKey,
				Message: i18n.T(CodeUnknownKey, nil),
				Hint:    "not declared in schema properties",
			})
		}
	case *js.Schema:
		for _, k := range extra {
			iss = walkSchema(path+"/"+k, m[k], ap, iss)
		}
	}
	return iss
}

func typeIssue(path, expected string) Issue {
	return Issue{
		Path:    pointer(path),
		Code:    CodeInvalidType,
		Message: i18n.T(CodeInvalidType, map[string]string{"expected": expected}),
	}
}

// pointer renders a traversal path as a JSON Pointer; the root is "/".
func pointer(path string) string {
	if path == "" {
		return "/"
	}
	return path
}

func isType(v any, typ string) bool {
	switch typ {
	case "string":
		_, ok := v.(string)
		return ok
	case "number":
		switch v.(type) {
		case float64, float32, int, int64:
			return true
		}
		return false
	case "boolean":
		_, ok := v.(bool)
		return ok
	case "null":
		return v == nil
	case "object":
		_, ok := v.(map[string]any)
		return ok
	case "array":
		_, ok := v.([]any)
		return ok
	}
	return false
}

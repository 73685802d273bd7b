package themespec

import (
	"io"
	"sort"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// FromJSON decodes JSON text and maps it into a Theme. A decoder failure
// surfaces as *ParseError; a shape mismatch during mapping as *MappingError.
func FromJSON(data []byte) (*Theme, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, &ParseError{Err: err}
	}
	return FromValue(v)
}

// FromReader decodes JSON text from r and maps it into a Theme.
func FromReader(r io.Reader) (*Theme, error) {
	var v any
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return nil, &ParseError{Err: err}
	}
	return FromValue(v)
}

// FromYAML decodes a YAML document and maps it into a Theme. The YAML node
// tree is normalized to the generic JSON shape (string-keyed maps, float64
// numbers) before mapping, so JSON and YAML inputs map identically.
func FromYAML(data []byte) (*Theme, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, &ParseError{Err: err}
	}
	if node == nil {
		node = map[string]any{}
	}
	return FromValue(yamlNormalize(node))
}

// FromValue maps a generic JSON value into a Theme.
//
// The mapper performs structural coercion only: for each known group key
// present in the input it binds the group's object keys to the matching
// slots and routes unmatched keys into Custom; scale elements and
// pass-through mappings are carried over without element-type checking.
// It fails with *MappingError only where the model requires an object or a
// sequence and the input holds something else. Missing keys never fail.
func FromValue(v any) (*Theme, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &MappingError{Path: "/", Value: v}
	}
	t := &Theme{}

	for _, gs := range groupSpecs {
		raw, present := obj[gs.key]
		if !present {
			continue
		}
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, &MappingError{Path: "/" + gs.key, Value: raw}
		}
		g := groupOf(t, gs.key, true)
		for _, k := range sortedKeys(m) {
			if gs.key == "colors" && k == "modes" {
				modes, err := mapModes(m[k])
				if err != nil {
					return nil, err
				}
				t.Colors.Modes = modes
				continue
			}
			val := coerceValue(m[k])
			if !g.setSlot(k, val) {
				g.putCustom(k, val)
			}
		}
	}

	for _, ss := range scaleSpecs {
		raw, present := obj[ss.key]
		if !present {
			continue
		}
		arr, ok := raw.([]any)
		if !ok {
			return nil, &MappingError{Path: "/" + ss.key, Value: raw}
		}
		vals := make([]Value, len(arr))
		for i, el := range arr {
			vals[i] = coerceValue(el)
		}
		ss.set(t, vals)
	}

	for _, os := range openMapSpecs {
		raw, present := obj[os.key]
		if !present {
			continue
		}
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, &MappingError{Path: "/" + os.key, Value: raw}
		}
		cp := make(map[string]any, len(m))
		for k, v := range m {
			cp[k] = v
		}
		os.set(t, cp)
	}

	return t, nil
}

// mapModes destructures colors.modes: a mapping from mode name to an open
// slot->value overlay. Both levels must be object-shaped.
func mapModes(raw any) (map[string]map[string]any, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, &MappingError{Path: "/colors/modes", Value: raw}
	}
	out := make(map[string]map[string]any, len(m))
	for name, inner := range m {
		im, ok := inner.(map[string]any)
		if !ok {
			return nil, &MappingError{Path: "/colors/modes/" + name, Value: inner}
		}
		cp := make(map[string]any, len(im))
		for k, v := range im {
			cp[k] = v
		}
		out[name] = cp
	}
	return out, nil
}

// coerceValue wraps a generic leaf in its Value form. No type checking
// happens here: kinds the token model cannot express are preserved as
// Opaque so that validation can report them later.
func coerceValue(v any) Value {
	switch x := v.(type) {
	case string:
		return String(x)
	case float64:
		return Number(x)
	case float32:
		return Number(float64(x))
	case int:
		return Number(float64(x))
	case int64:
		return Number(float64(x))
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return Number(f)
		}
		return Opaque{V: x.String()}
	case []any:
		l := make(List, len(x))
		for i, el := range x {
			s, ok := el.(string)
			if !ok {
				return Opaque{V: x}
			}
			l[i] = s
		}
		return l
	default:
		return Opaque{V: v}
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// yamlNormalize converts a yaml.v3 node tree to the generic JSON shape:
// string-keyed maps (non-string keys are dropped), float64 numbers.
func yamlNormalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalize(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalize(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = yamlNormalize(vv)
		}
		return out
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case uint64:
		return float64(t)
	default:
		return v
	}
}

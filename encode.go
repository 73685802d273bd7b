package themespec

import (
	json "github.com/goccy/go-json"
)

// ThemeValue converts a Theme back to its generic JSON value. Absent
// fields are never serialized; a present-but-empty group or scale keeps
// its empty object/array form.
func ThemeValue(t *Theme) map[string]any {
	out := map[string]any{}
	if t == nil {
		return out
	}
	for _, gs := range groupSpecs {
		g := groupOf(t, gs.key, false)
		if g == nil {
			continue
		}
		m := map[string]any{}
		for _, name := range gs.slots {
			if v := g.slot(name); v != nil {
				m[name] = v.JSON()
			}
		}
		for k, v := range g.customSlots() {
			m[k] = v.JSON()
		}
		if gs.key == "colors" && t.Colors.Modes != nil {
			modes := make(map[string]any, len(t.Colors.Modes))
			for name, overlay := range t.Colors.Modes {
				inner := make(map[string]any, len(overlay))
				for k, v := range overlay {
					inner[k] = v
				}
				modes[name] = inner
			}
			m["modes"] = modes
		}
		out[gs.key] = m
	}
	for _, ss := range scaleSpecs {
		vals := ss.get(t)
		if vals == nil {
			continue
		}
		arr := make([]any, 0, len(vals))
		for _, v := range vals {
			if v == nil {
				continue
			}
			arr = append(arr, v.JSON())
		}
		out[ss.key] = arr
	}
	for _, os := range openMapSpecs {
		m := os.get(t)
		if m == nil {
			continue
		}
		cp := make(map[string]any, len(m))
		for k, v := range m {
			cp[k] = v
		}
		out[os.key] = cp
	}
	return out
}

// MarshalJSON serializes the theme through its generic value, so absent
// fields are dropped rather than emitted as null.
func (t *Theme) MarshalJSON() ([]byte, error) {
	return json.Marshal(ThemeValue(t))
}

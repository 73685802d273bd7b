package themespec

import (
	"strconv"
	"strings"
)

// CSSVariables flattens a theme into a deterministic block of CSS
// custom-property declarations:
//
//	:root {
//	  --theme-<category>-<key>: <value>;
//	}
//
// The four named groups come first (colors, fonts, fontWeights,
// lineHeights), each emitting its non-absent slots in reverse of declared
// slot order; colors.modes and every Custom map are never flattened. The
// scales follow (fontSizes, space, sizes, radii, shadows, breakpoints),
// one variable per element with the zero-based index as the key, in
// ascending order. List values join their elements with ", ". A theme
// with no declarations renders exactly ":root {\n\n}".
//
// Values are emitted verbatim, with no quoting or escaping; callers are
// responsible for pre-sanitizing untrusted theme values.
func CSSVariables(t *Theme) string {
	var decls []string
	if t != nil {
		for _, gs := range groupSpecs {
			g := groupOf(t, gs.key, false)
			if g == nil {
				continue
			}
			for i := len(gs.slots) - 1; i >= 0; i-- {
				if v := g.slot(gs.slots[i]); v != nil {
					decls = append(decls, declaration(gs.key, gs.slots[i], v))
				}
			}
		}
		for _, ss := range scaleSpecs {
			for i, v := range ss.get(t) {
				if v == nil {
					continue
				}
				decls = append(decls, declaration(ss.key, strconv.Itoa(i), v))
			}
		}
	}
	return ":root {\n" + strings.Join(decls, "\n") + "\n}"
}

func declaration(category, key string, v Value) string {
	return "  --theme-" + category + "-" + key + ": " + v.CSS() + ";"
}

package themespec

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is a single design-token leaf. Exactly one of the concrete types
// below backs any non-nil Value; a nil Value means the slot is absent.
//
//   - String: a scalar token ("#0af", "bold", "1.5rem")
//   - Number: a numeric token (16, 1.25)
//   - List:   an ordered scale of strings (font stack, color scale)
//   - Opaque: a value with no token form, preserved for validation
type Value interface {
	// CSS renders the token the way it appears on the right-hand side of a
	// custom-property declaration.
	CSS() string
	// JSON returns the generic JSON form of the token.
	JSON() any
}

// String is a scalar string token.
type String string

func (s String) CSS() string { return string(s) }
func (s String) JSON() any   { return string(s) }

// Number is a numeric token. CSS output uses the shortest decimal form.
type Number float64

func (n Number) CSS() string { return formatFloat(float64(n)) }
func (n Number) JSON() any   { return float64(n) }

// List is an ordered scale of strings. Position is meaningful.
type List []string

func (l List) CSS() string { return strings.Join(l, ", ") }

func (l List) JSON() any {
	out := make([]any, len(l))
	for i, s := range l {
		out[i] = s
	}
	return out
}

// Opaque wraps a value the mapper could not express as a token (an object
// where a scalar was expected, a mixed array, ...). It survives the
// round-trip to a generic value so that validation can report it.
type Opaque struct{ V any }

func (o Opaque) CSS() string { return fmt.Sprint(o.V) }
func (o Opaque) JSON() any   { return o.V }

// formatFloat renders a float64 using the shortest JSON-compatible representation.
func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// Values builds a scale slice from scalar tokens. Strings become String,
// numeric arguments become Number.
func Values(vs ...any) []Value {
	out := make([]Value, 0, len(vs))
	for _, v := range vs {
		out = append(out, coerceValue(v))
	}
	return out
}

// Numbers builds a numeric scale.
func Numbers(ns ...float64) []Value {
	out := make([]Value, 0, len(ns))
	for _, n := range ns {
		out = append(out, Number(n))
	}
	return out
}

// Strings builds a string scale.
func Strings(ss ...string) []Value {
	out := make([]Value, 0, len(ss))
	for _, s := range ss {
		out = append(out, String(s))
	}
	return out
}

// Theme is the root design-token aggregate. Every field is independently
// optional; the zero Theme is valid. Instances are never mutated after
// construction — derived artifacts (schema, CSS text, generic values) are
// fresh values.
type Theme struct {
	Colors      *Colors
	Fonts       *Fonts
	FontWeights *FontWeights
	LineHeights *LineHeights

	// Scales. Source order is preserved; position indexes into CSS
	// variable names (fontSizes[2] -> --theme-fontSizes-2).
	FontSizes   []Value // numbers
	Space       []Value // numbers or strings
	Sizes       []Value // numbers or strings
	Radii       []Value // numbers or strings
	Shadows     []Value // strings
	Breakpoints []Value // strings

	// Opaque pass-through mappings. Not interpreted and never flattened
	// into CSS variables.
	ZIndices map[string]any
	Styles   map[string]any
	Variants map[string]any
}

// Colors is the semantic color palette. Each slot holds a single color or
// an ordered color scale.
type Colors struct {
	Text       Value
	Background Value
	Primary    Value
	Secondary  Value
	Accent     Value
	Highlight  Value
	Muted      Value
	Success    Value
	Warning    Value
	Error      Value
	Info       Value
	Border     Value
	Surface    Value

	// Modes maps a mode name ("dark") to an open slot->value overlay.
	// Modes are not validated slot-by-slot and never emit CSS variables.
	Modes map[string]map[string]any

	// Custom collects keys outside the fixed slot list.
	Custom map[string]Value
}

// Fonts holds the named font-stack slots.
type Fonts struct {
	Body      Value
	Heading   Value
	Monospace Value
	Sans      Value
	Serif     Value
	Display   Value

	Custom map[string]Value
}

// FontWeights holds the named weight slots; each is a number or a string.
type FontWeights struct {
	Body     Value
	Heading  Value
	Bold     Value
	Normal   Value
	Light    Value
	Medium   Value
	Semibold Value
	Black    Value

	Custom map[string]Value
}

// LineHeights holds the named line-height slots; each is a number or a string.
type LineHeights struct {
	Body    Value
	Heading Value
	Solid   Value
	Title   Value
	Copy    Value

	Custom map[string]Value
}

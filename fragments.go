package themespec

// This file is the single source of truth for the theme's shape. The slot
// tables and field descriptors below drive the mapper (decode.go), the
// encoder (encode.go), the schema generator (schema.go), and the CSS
// flattener (cssvars.go). Because all four consume the same tables, the
// generated schema cannot drift from what the mapper accepts.

// fragment enumerates the leaf shapes a theme slot can take.
type fragment int

const (
	fragStringOrList   fragment = iota // string | ordered list of strings
	fragNumberOrString                 // number | string
)

// Slot names in declared order. The CSS flattener emits each group in
// reverse of this order; the schema generator lists them under properties.
var (
	colorSlots = []string{
		"text", "background", "primary", "secondary", "accent", "highlight",
		"muted", "success", "warning", "error", "info", "border", "surface",
	}
	fontSlots   = []string{"body", "heading", "monospace", "sans", "serif", "display"}
	weightSlots = []string{"body", "heading", "bold", "normal", "light", "medium", "semibold", "black"}
	heightSlots = []string{"body", "heading", "solid", "title", "copy"}
)

// slotGroup is the shared access surface of the four named-slot structs.
type slotGroup interface {
	slot(name string) Value
	setSlot(name string, v Value) bool
	putCustom(name string, v Value)
	customSlots() map[string]Value
}

// groupSpec describes one named-slot group for the generators.
type groupSpec struct {
	key   string // JSON key, e.g. "colors"
	slots []string
	frag  fragment
	// fixedProps controls whether the slots are listed under the schema's
	// properties. Colors/Fonts list every slot; FontWeights/LineHeights
	// constrain all keys via additionalProperties alone.
	fixedProps bool
}

var groupSpecs = []groupSpec{
	{key: "colors", slots: colorSlots, frag: fragStringOrList, fixedProps: true},
	{key: "fonts", slots: fontSlots, frag: fragStringOrList, fixedProps: true},
	{key: "fontWeights", slots: weightSlots, frag: fragNumberOrString, fixedProps: false},
	{key: "lineHeights", slots: heightSlots, frag: fragNumberOrString, fixedProps: false},
}

// scaleKind enumerates the element shapes of the ordered scale fields.
type scaleKind int

const (
	scaleNumber scaleKind = iota // numbers only
	scaleMixed                   // numbers or strings
	scaleString                  // strings only
)

// scaleSpec describes one ordered scale field. The order of scaleSpecs is
// the category order of the CSS flattener.
type scaleSpec struct {
	key  string
	kind scaleKind
	get  func(*Theme) []Value
	set  func(*Theme, []Value)
}

var scaleSpecs = []scaleSpec{
	{"fontSizes", scaleNumber,
		func(t *Theme) []Value { return t.FontSizes },
		func(t *Theme, v []Value) { t.FontSizes = v }},
	{"space", scaleMixed,
		func(t *Theme) []Value { return t.Space },
		func(t *Theme, v []Value) { t.Space = v }},
	{"sizes", scaleMixed,
		func(t *Theme) []Value { return t.Sizes },
		func(t *Theme, v []Value) { t.Sizes = v }},
	{"radii", scaleMixed,
		func(t *Theme) []Value { return t.Radii },
		func(t *Theme, v []Value) { t.Radii = v }},
	{"shadows", scaleString,
		func(t *Theme) []Value { return t.Shadows },
		func(t *Theme, v []Value) { t.Shadows = v }},
	{"breakpoints", scaleString,
		func(t *Theme) []Value { return t.Breakpoints },
		func(t *Theme, v []Value) { t.Breakpoints = v }},
}

// openMapSpec describes one opaque pass-through mapping field.
type openMapSpec struct {
	key string
	get func(*Theme) map[string]any
	set func(*Theme, map[string]any)
}

var openMapSpecs = []openMapSpec{
	{"zIndices",
		func(t *Theme) map[string]any { return t.ZIndices },
		func(t *Theme, m map[string]any) { t.ZIndices = m }},
	{"styles",
		func(t *Theme) map[string]any { return t.Styles },
		func(t *Theme, m map[string]any) { t.Styles = m }},
	{"variants",
		func(t *Theme) map[string]any { return t.Variants },
		func(t *Theme, m map[string]any) { t.Variants = m }},
}

// ---- slotGroup implementations ----

func (c *Colors) slot(name string) Value {
	switch name {
	case "text":
		return c.Text
	case "background":
		return c.Background
	case "primary":
		return c.Primary
	case "secondary":
		return c.Secondary
	case "accent":
		return c.Accent
	case "highlight":
		return c.Highlight
	case "muted":
		return c.Muted
	case "success":
		return c.Success
	case "warning":
		return c.Warning
	case "error":
		return c.Error
	case "info":
		return c.Info
	case "border":
		return c.Border
	case "surface":
		return c.Surface
	}
	return nil
}

func (c *Colors) setSlot(name string, v Value) bool {
	switch name {
	case "text":
		c.Text = v
	case "background":
		c.Background = v
	case "primary":
		c.Primary = v
	case "secondary":
		c.Secondary = v
	case "accent":
		c.Accent = v
	case "highlight":
		c.Highlight = v
	case "muted":
		c.Muted = v
	case "success":
		c.Success = v
	case "warning":
		c.Warning = v
	case "error":
		c.Error = v
	case "info":
		c.Info = v
	case "border":
		c.Border = v
	case "surface":
		c.Surface = v
	default:
		return false
	}
	return true
}

func (c *Colors) putCustom(name string, v Value) {
	if c.Custom == nil {
		c.Custom = make(map[string]Value)
	}
	c.Custom[name] = v
}

func (c *Colors) customSlots() map[string]Value { return c.Custom }

func (f *Fonts) slot(name string) Value {
	switch name {
	case "body":
		return f.Body
	case "heading":
		return f.Heading
	case "monospace":
		return f.Monospace
	case "sans":
		return f.Sans
	case "serif":
		return f.Serif
	case "display":
		return f.Display
	}
	return nil
}

func (f *Fonts) setSlot(name string, v Value) bool {
	switch name {
	case "body":
		f.Body = v
	case "heading":
		f.Heading = v
	case "monospace":
		f.Monospace = v
	case "sans":
		f.Sans = v
	case "serif":
		f.Serif = v
	case "display":
		f.Display = v
	default:
		return false
	}
	return true
}

func (f *Fonts) putCustom(name string, v Value) {
	if f.Custom == nil {
		f.Custom = make(map[string]Value)
	}
	f.Custom[name] = v
}

func (f *Fonts) customSlots() map[string]Value { return f.Custom }

func (w *FontWeights) slot(name string) Value {
	switch name {
	case "body":
		return w.Body
	case "heading":
		return w.Heading
	case "bold":
		return w.Bold
	case "normal":
		return w.Normal
	case "light":
		return w.Light
	case "medium":
		return w.Medium
	case "semibold":
		return w.Semibold
	case "black":
		return w.Black
	}
	return nil
}

func (w *FontWeights) setSlot(name string, v Value) bool {
	switch name {
	case "body":
		w.Body = v
	case "heading":
		w.Heading = v
	case "bold":
		w.Bold = v
	case "normal":
		w.Normal = v
	case "light":
		w.Light = v
	case "medium":
		w.Medium = v
	case "semibold":
		w.Semibold = v
	case "black":
		w.Black = v
	default:
		return false
	}
	return true
}

func (w *FontWeights) putCustom(name string, v Value) {
	if w.Custom == nil {
		w.Custom = make(map[string]Value)
	}
	w.Custom[name] = v
}

func (w *FontWeights) customSlots() map[string]Value { return w.Custom }

func (h *LineHeights) slot(name string) Value {
	switch name {
	case "body":
		return h.Body
	case "heading":
		return h.Heading
	case "solid":
		return h.Solid
	case "title":
		return h.Title
	case "copy":
		return h.Copy
	}
	return nil
}

func (h *LineHeights) setSlot(name string, v Value) bool {
	switch name {
	case "body":
		h.Body = v
	case "heading":
		h.Heading = v
	case "solid":
		h.Solid = v
	case "title":
		h.Title = v
	case "copy":
		h.Copy = v
	default:
		return false
	}
	return true
}

func (h *LineHeights) putCustom(name string, v Value) {
	if h.Custom == nil {
		h.Custom = make(map[string]Value)
	}
	h.Custom[name] = v
}

func (h *LineHeights) customSlots() map[string]Value { return h.Custom }

// groupOf returns the slot group for key, allocating it on the theme when
// create is set.
func groupOf(t *Theme, key string, create bool) slotGroup {
	switch key {
	case "colors":
		if t.Colors == nil {
			if !create {
				return nil
			}
			t.Colors = &Colors{}
		}
		return t.Colors
	case "fonts":
		if t.Fonts == nil {
			if !create {
				return nil
			}
			t.Fonts = &Fonts{}
		}
		return t.Fonts
	case "fontWeights":
		if t.FontWeights == nil {
			if !create {
				return nil
			}
			t.FontWeights = &FontWeights{}
		}
		return t.FontWeights
	case "lineHeights":
		if t.LineHeights == nil {
			if !create {
				return nil
			}
			t.LineHeights = &LineHeights{}
		}
		return t.LineHeights
	}
	return nil
}

package themespec_test

import (
	"strings"
	"testing"

	themespec "github.com/ryotow/themespec"
)

func TestCSSVariables_EmptyTheme(t *testing.T) {
	// The blank line between the braces is part of the contract.
	want := ":root {\n\n}"
	if got := themespec.CSSVariables(&themespec.Theme{}); got != want {
		t.Fatalf("empty theme CSS = %q, want %q", got, want)
	}
	if got := themespec.CSSVariables(nil); got != want {
		t.Fatalf("nil theme CSS = %q, want %q", got, want)
	}
}

func TestCSSVariables_ScaleIndexing(t *testing.T) {
	th := &themespec.Theme{FontSizes: themespec.Numbers(12, 14, 16, 20)}
	want := ":root {\n" +
		"  --theme-fontSizes-0: 12;\n" +
		"  --theme-fontSizes-1: 14;\n" +
		"  --theme-fontSizes-2: 16;\n" +
		"  --theme-fontSizes-3: 20;\n" +
		"}"
	if got := themespec.CSSVariables(th); got != want {
		t.Fatalf("CSS mismatch\n got=%q\nwant=%q", got, want)
	}
}

func TestCSSVariables_FontStackJoin(t *testing.T) {
	th := &themespec.Theme{
		Fonts: &themespec.Fonts{Body: themespec.List{"Helvetica Neue", "Arial", "sans-serif"}},
	}
	want := ":root {\n  --theme-fonts-body: Helvetica Neue, Arial, sans-serif;\n}"
	if got := themespec.CSSVariables(th); got != want {
		t.Fatalf("CSS mismatch\n got=%q\nwant=%q", got, want)
	}
}

func TestCSSVariables_GroupOrderIsReversedSlotOrder(t *testing.T) {
	th := &themespec.Theme{
		Colors: &themespec.Colors{
			Text:    themespec.String("#111"),
			Primary: themespec.String("#07c"),
			Surface: themespec.String("#fafafa"),
		},
	}
	want := ":root {\n" +
		"  --theme-colors-surface: #fafafa;\n" +
		"  --theme-colors-primary: #07c;\n" +
		"  --theme-colors-text: #111;\n" +
		"}"
	if got := themespec.CSSVariables(th); got != want {
		t.Fatalf("CSS mismatch\n got=%q\nwant=%q", got, want)
	}
}

func TestCSSVariables_CategoryOrderAndExclusions(t *testing.T) {
	th := &themespec.Theme{
		Colors: &themespec.Colors{
			Background: themespec.String("#fff"),
			Modes: map[string]map[string]any{
				"dark": {"background": "#000"},
			},
			Custom: map[string]themespec.Value{"brand": themespec.String("#f0a")},
		},
		Fonts:       &themespec.Fonts{Monospace: themespec.String("Menlo")},
		FontWeights: &themespec.FontWeights{Bold: themespec.Number(700)},
		LineHeights: &themespec.LineHeights{Body: themespec.Number(1.5)},
		Space:       themespec.Values(0, "0.25rem"),
		Shadows:     themespec.Strings("0 1px 2px rgba(0,0,0,.2)"),
		ZIndices:    map[string]any{"modal": 100.0},
	}
	want := ":root {\n" +
		"  --theme-colors-background: #fff;\n" +
		"  --theme-fonts-monospace: Menlo;\n" +
		"  --theme-fontWeights-bold: 700;\n" +
		"  --theme-lineHeights-body: 1.5;\n" +
		"  --theme-space-0: 0;\n" +
		"  --theme-space-1: 0.25rem;\n" +
		"  --theme-shadows-0: 0 1px 2px rgba(0,0,0,.2);\n" +
		"}"
	got := themespec.CSSVariables(th)
	if got != want {
		t.Fatalf("CSS mismatch\n got=%q\nwant=%q", got, want)
	}
	// modes, custom keys and zIndices never flatten
	for _, banned := range []string{"modes", "brand", "zIndices", "modal"} {
		if strings.Contains(got, banned) {
			t.Fatalf("output must not mention %q:\n%s", banned, got)
		}
	}
}

func TestCSSVariables_Deterministic(t *testing.T) {
	th := &themespec.Theme{
		Colors:    &themespec.Colors{Primary: themespec.List{"#fdd", "#f99", "#f55"}},
		FontSizes: themespec.Numbers(12, 14),
	}
	a, b := themespec.CSSVariables(th), themespec.CSSVariables(th)
	if a != b {
		t.Fatalf("CSSVariables must be pure: %q vs %q", a, b)
	}
}

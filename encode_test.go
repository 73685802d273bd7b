package themespec_test

import (
	"encoding/json"
	"reflect"
	"testing"

	themespec "github.com/ryotow/themespec"
)

func TestThemeValue_DropsAbsentFields(t *testing.T) {
	if got := themespec.ThemeValue(&themespec.Theme{}); len(got) != 0 {
		t.Fatalf("all-absent theme must serialize to an empty object, got %v", got)
	}
}

func TestThemeValue_EmptyIsNotAbsent(t *testing.T) {
	// present-but-empty keeps its empty form
	th := &themespec.Theme{
		Colors:    &themespec.Colors{},
		FontSizes: []themespec.Value{},
	}
	got := themespec.ThemeValue(th)
	if !reflect.DeepEqual(got["colors"], map[string]any{}) {
		t.Fatalf("colors = %#v", got["colors"])
	}
	if !reflect.DeepEqual(got["fontSizes"], []any{}) {
		t.Fatalf("fontSizes = %#v", got["fontSizes"])
	}
}

func TestThemeValue_RoundTrip(t *testing.T) {
	in := map[string]any{
		"colors": map[string]any{
			"primary": "#07c",
			"accent":  []any{"#fdd", "#f99"},
			"brand":   "#f0a",
			"modes":   map[string]any{"dark": map[string]any{"text": "#eee"}},
		},
		"fontWeights": map[string]any{"bold": 700.0, "display": 900.0},
		"fontSizes":   []any{12.0, 14.0},
		"styles":      map[string]any{"h1": map[string]any{"fontSize": 5.0}},
	}
	th, err := themespec.FromValue(in)
	if err != nil {
		t.Fatalf("FromValue err: %v", err)
	}
	out := themespec.ThemeValue(th)
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("round trip mismatch\n got=%#v\nwant=%#v", out, in)
	}
}

func TestTheme_MarshalJSON(t *testing.T) {
	th := &themespec.Theme{
		Colors:    &themespec.Colors{Text: themespec.String("#111")},
		FontSizes: themespec.Numbers(12),
	}
	data, err := json.Marshal(th)
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	var got any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	want := map[string]any{
		"colors":    map[string]any{"text": "#111"},
		"fontSizes": []any{12.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("json = %s", data)
	}
}

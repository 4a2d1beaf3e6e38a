// Package theme owns the light/dark preference and the colours derived from it.
package theme

import "strings"

// Theme is the active colour scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// PreferenceKey is the key the theme is persisted under.
const PreferenceKey = "theme"

// Default is used when nothing has been persisted.
const Default = Light

// Parse accepts the persisted spelling, case-insensitively.
func Parse(value string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(value))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string { return string(t) }

// Icon is shown on the toggle control and depicts the theme a press switches to.
func (t Theme) Icon() string {
	if t == Dark {
		return "☀"
	}
	return "☾"
}

// Hint is the toggle control's tooltip.
func (t Theme) Hint() string {
	if t == Dark {
		return "Switch to light mode"
	}
	return "Switch to dark mode"
}

// Palette holds the colours rendered for a theme, as hex strings.
type Palette struct {
	Name       string
	Foreground string
	Background string
	Border     string
	Primary    string
	Secondary  string
	Success    string
	Danger     string
	Info       string
	Muted      string
	StatusFg   string
	StatusBg   string
	KeyFg      string
	KeyBg      string
	// GlamourStyle is the glamour standard style used for result panes.
	GlamourStyle string
}

var (
	lightPalette = Palette{
		Name:         "light",
		Foreground:   "#1f2937",
		Background:   "#ffffff",
		Border:       "#d1d5db",
		Primary:      "#dc2626",
		Secondary:    "#4b5563",
		Success:      "#059669",
		Danger:       "#b91c1c",
		Info:         "#2563eb",
		Muted:        "#6b7280",
		StatusFg:     "#ffffff",
		StatusBg:     "#dc2626",
		KeyFg:        "#111827",
		KeyBg:        "#fde68a",
		GlamourStyle: "light",
	}
	darkPalette = Palette{
		Name:         "dark",
		Foreground:   "#e5e7eb",
		Background:   "#111827",
		Border:       "#374151",
		Primary:      "#f87171",
		Secondary:    "#9ca3af",
		Success:      "#34d399",
		Danger:       "#f87171",
		Info:         "#60a5fa",
		Muted:        "#6b7280",
		StatusFg:     "#0f0f0f",
		StatusBg:     "#8ecae6",
		KeyFg:        "#0f0f0f",
		KeyBg:        "#ffd166",
		GlamourStyle: "dark",
	}
)

// PaletteFor returns the palette of t. Unknown values get the default.
func PaletteFor(t Theme) Palette {
	if t == Dark {
		return darkPalette
	}
	return lightPalette
}

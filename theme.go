package chipmd

import (
	"sort"
	"strings"

	"pkt.systems/chipmd/internal/palette"
)

const ansiReset = palette.Reset

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles used by the terminal writer.
type Styles struct {
	Text          Style
	Heading       [6]Style
	Bold          Style
	Italic        Style
	Strikethrough Style
	Underline     Style
	CodeInline    Style
	CodeBlock     Style
	ListMarker    Style
	Chip          Style
	ChipURL       Style
	Comment       Style
	String        Style
	Keyword       Style
	Number        Style
}

// Theme provides named styles for terminal rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

func combineStyles(base Style, extra Style) Style {
	if base.Prefix == "" {
		return extra
	}
	if extra.Prefix == "" {
		return base
	}
	return Style{Prefix: base.Prefix + extra.Prefix}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Text:          style(p.Text),
		Heading:       [6]Style{style(p.H1), style(p.H2), style(p.H3), style(p.H4), style(p.H5), style(p.H6)},
		Bold:          style(palette.Bold, p.Strong),
		Italic:        style(palette.Italic, p.Emphasis),
		Strikethrough: style(palette.Strikethrough, p.Strike),
		Underline:     style(palette.Underline, p.Underline),
		CodeInline:    style(p.CodeInline),
		CodeBlock:     style(p.CodeBlock),
		ListMarker:    style(p.ListMarker),
		Chip:          style(p.Chip),
		ChipURL:       style(p.ChipURL),
		Comment:       style(p.Comment),
		String:        style(p.String),
		Keyword:       style(p.Keyword),
		Number:        style(p.Number),
	}
}

var builtinThemes = map[string]Theme{
	"default":         theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"dracula":         theme{name: "dracula", styles: stylesFromPalette(palette.PaletteDracula)},
	"nord":            theme{name: "nord", styles: stylesFromPalette(palette.PaletteNord)},
	"gruvbox":         theme{name: "gruvbox", styles: stylesFromPalette(palette.PaletteGruvbox)},
	"tokyo-night":     theme{name: "tokyo-night", styles: stylesFromPalette(palette.PaletteTokyoNight)},
	"solarized-light": theme{name: "solarized-light", styles: stylesFromPalette(palette.PaletteSolarizedLight)},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// BoringTheme returns a theme without any styling.
func BoringTheme() Theme {
	return NewTheme("boring", Styles{})
}

package term

import (
	"sort"
	"strings"
)

// SGR sequences the built-in themes are assembled from.
const (
	sgrReset     = "\x1b[0m"
	sgrBold      = "\x1b[1m"
	sgrDim       = "\x1b[2m"
	sgrItalic    = "\x1b[3m"
	sgrUnderline = "\x1b[4m"
	sgrStrike    = "\x1b[9m"
	sgrCyan      = "\x1b[36m"
	sgrMagenta   = "\x1b[35m"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the styles a Sink selects from. Fonts chosen by the
// renderer map onto Normal, Bold, Italic, BoldItalic, and Code; Rule and
// Bullet style the drawing primitives.
type Styles struct {
	Normal     Style
	Bold       Style
	Italic     Style
	BoldItalic Style
	Code       Style
	Rule       Style
	Bullet     Style
}

// forFont classifies a font name into one of the style slots. Monospace
// family names select Code; Bold/Italic/Oblique name parts combine.
func (st Styles) forFont(name string) Style {
	lower := strings.ToLower(name)
	if strings.Contains(lower, "courier") || strings.Contains(lower, "mono") {
		return st.Code
	}
	bold := strings.Contains(lower, "bold")
	italic := strings.Contains(lower, "italic") || strings.Contains(lower, "oblique")
	switch {
	case bold && italic:
		return st.BoldItalic
	case bold:
		return st.Bold
	case italic:
		return st.Italic
	default:
		return st.Normal
	}
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

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: Styles{
		Normal:     style(),
		Bold:       style(sgrBold),
		Italic:     style(sgrItalic),
		BoldItalic: style(sgrBold, sgrItalic),
		Code:       style(sgrCyan),
		Rule:       style(sgrDim),
		Bullet:     style(sgrBold),
	}},
	"vivid": theme{name: "vivid", styles: Styles{
		Normal:     style(),
		Bold:       style(sgrBold, sgrMagenta),
		Italic:     style(sgrItalic),
		BoldItalic: style(sgrBold, sgrItalic, sgrMagenta),
		Code:       style(sgrCyan),
		Rule:       style(sgrMagenta),
		Bullet:     style(sgrBold, sgrMagenta),
	}},
	"plain": theme{name: "plain", styles: Styles{}},
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

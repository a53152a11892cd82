package term

// Config controls the terminal geometry and styling.
//
// Width is the writable width in columns. CellWidth and LineHeight define
// the point size of one grid cell, which is how canvas coordinates from
// the renderer land on columns and rows; the defaults keep the renderer's
// default indents on whole columns.
type Config struct {
	Width      int
	CellWidth  float64
	LineHeight float64
	Theme      string
	Styles     Styles
	OSC8       bool
}

// DefaultConfig returns an 80 column grid with the default theme.
func DefaultConfig() Config {
	return Config{
		Width:      80,
		CellWidth:  7,
		LineHeight: 12,
		Styles:     DefaultTheme().Styles(),
	}
}

func applyConfig(dst *Config, src Config) {
	if src.Width > 0 {
		dst.Width = src.Width
	}
	if src.CellWidth > 0 {
		dst.CellWidth = src.CellWidth
	}
	if src.LineHeight > 0 {
		dst.LineHeight = src.LineHeight
	}
	if src.Theme != "" {
		dst.Theme = src.Theme
	}
	if src.Styles != (Styles{}) {
		dst.Styles = src.Styles
	}
	dst.OSC8 = src.OSC8
}

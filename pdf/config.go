package pdf

// Config holds PDF page settings.
type Config struct {
	// PageSize is an fpdf page format: "A4", "Letter", "Legal", "A3",
	// "A5", "Tabloid".
	PageSize string
	// Orientation is "P" (portrait) or "L" (landscape).
	Orientation string
	// Margin applies to all four page edges, in points.
	Margin float64
	// LineHeight is the line box height as a multiple of the font size.
	LineHeight float64

	TextRGB           [3]int
	BackgroundEnabled bool
	BackgroundRGB     [3]int

	// FontDir is the directory fpdf loads font files from. FontFiles maps
	// font names, as used in RenderSettings, to TrueType files inside
	// FontDir; every name not listed here must resolve to a PDF core
	// font.
	FontDir   string
	FontFiles map[string]string
}

// DefaultConfig returns a baseline configuration: A4 portrait, half-inch
// margins, black text on plain pages.
func DefaultConfig() Config {
	return Config{
		PageSize:    "A4",
		Orientation: "P",
		Margin:      36,
		LineHeight:  1.4,
		TextRGB:     [3]int{0, 0, 0},
	}
}

func applyConfig(dst *Config, src Config) {
	if src.PageSize != "" {
		dst.PageSize = src.PageSize
	}
	if src.Orientation != "" {
		dst.Orientation = src.Orientation
	}
	if src.Margin > 0 {
		dst.Margin = src.Margin
	}
	if src.LineHeight > 0 {
		dst.LineHeight = src.LineHeight
	}
	if src.TextRGB != [3]int{} {
		dst.TextRGB = src.TextRGB
	}
	if src.BackgroundEnabled {
		dst.BackgroundEnabled = true
	}
	if src.BackgroundRGB != [3]int{} {
		dst.BackgroundRGB = src.BackgroundRGB
	}
	if src.FontDir != "" {
		dst.FontDir = src.FontDir
	}
	if len(src.FontFiles) > 0 {
		dst.FontFiles = src.FontFiles
	}
}

package mdpage

// Default configuration values. Fonts are PDF core font names; sinks map
// them to whatever their backend understands.
const (
	DefaultFontNormal     = "Helvetica"
	DefaultFontBold       = "Helvetica-Bold"
	DefaultFontItalic     = "Helvetica-Oblique"
	DefaultFontBoldItalic = "Helvetica-BoldOblique"
	DefaultFontCode       = "Courier"

	DefaultFontSize         = 10.0
	DefaultBlockQuoteIndent = 7.0
	DefaultParagraphGap     = 8.0
	DefaultListItemGap      = 4.0
	DefaultListIndent       = 14.0
	DefaultListIndentOffset = 7.0
	DefaultBulletRadius     = 2.0
	DefaultMaxDepth         = 512
)

// RenderSettings configures a Renderer. It is read once at construction and
// never mutated afterwards; every field can be overridden independently,
// starting from DefaultSettings.
//
// The depth functions may be nil: nil HeadingFont selects FontBold, nil
// HeadingSize computes 20 - 1.5*depth, and nil gap functions scale the
// resolved heading size by 0.35 (before) and 0.25 (after).
type RenderSettings struct {
	FontNormal     string
	FontBold       string
	FontItalic     string
	FontBoldItalic string
	FontCode       string

	// FontSize is the base body size in points.
	FontSize float64

	HeadingFont      func(depth int) string
	HeadingSize      func(depth int) float64
	HeadingGapBefore func(depth int) float64
	HeadingGapAfter  func(depth int) float64

	// BlockQuoteIndent is the horizontal offset added per quote depth.
	BlockQuoteIndent float64

	// ParagraphGap separates standalone blocks; ListItemGap separates
	// blocks inside list items. Closing the outermost list adds
	// ParagraphGap-ListItemGap so list spacing reconciles with paragraph
	// spacing.
	ParagraphGap float64
	ListItemGap  float64

	// ListIndent is the per-depth indent unit shared by ordered and
	// unordered lists; ListIndentOffset shifts item markers inside the
	// current indent level.
	ListIndent       float64
	ListIndentOffset float64

	// BulletRadius is the radius of the unordered list marker circle.
	BulletRadius float64

	// MaxDepth caps tree nesting; a deeper tree aborts the pass with
	// ErrMaxDepth.
	MaxDepth int

	// ReportUnsupported selects the policy for node kinds without a
	// handler: report as *UnsupportedKindError instead of skipping
	// silently.
	ReportUnsupported bool
}

// DefaultSettings returns the baseline configuration.
func DefaultSettings() RenderSettings {
	return RenderSettings{
		FontNormal:       DefaultFontNormal,
		FontBold:         DefaultFontBold,
		FontItalic:       DefaultFontItalic,
		FontBoldItalic:   DefaultFontBoldItalic,
		FontCode:         DefaultFontCode,
		FontSize:         DefaultFontSize,
		BlockQuoteIndent: DefaultBlockQuoteIndent,
		ParagraphGap:     DefaultParagraphGap,
		ListItemGap:      DefaultListItemGap,
		ListIndent:       DefaultListIndent,
		ListIndentOffset: DefaultListIndentOffset,
		BulletRadius:     DefaultBulletRadius,
		MaxDepth:         DefaultMaxDepth,
	}
}

// normalize fills the fields without which no output is expressible. Zero
// spacing and indent values are meaningful and kept as given.
func (s *RenderSettings) normalize() {
	if s.FontNormal == "" {
		s.FontNormal = DefaultFontNormal
	}
	if s.FontBold == "" {
		s.FontBold = DefaultFontBold
	}
	if s.FontItalic == "" {
		s.FontItalic = DefaultFontItalic
	}
	if s.FontBoldItalic == "" {
		s.FontBoldItalic = DefaultFontBoldItalic
	}
	if s.FontCode == "" {
		s.FontCode = DefaultFontCode
	}
	if s.FontSize <= 0 {
		s.FontSize = DefaultFontSize
	}
	if s.BulletRadius <= 0 {
		s.BulletRadius = DefaultBulletRadius
	}
	if s.MaxDepth <= 0 {
		s.MaxDepth = DefaultMaxDepth
	}
}

package pdf

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"codeberg.org/go-pdf/fpdf"

	"pkt.systems/mdpage"
)

// Sink renders canvas operations onto fpdf pages. Horizontal anchoring
// maps to the fpdf left margin, so wrapped and broken lines return to the
// most recent SetX position, and automatic page breaks keep the anchor.
//
// fpdf collects errors internally; they surface from Output.
type Sink struct {
	doc *fpdf.Fpdf
	tr  func(string) string
	cfg Config

	family string
	style  string
	core   bool
	size   float64

	left   float64
	right  float64
	bottom float64
	pageW  float64
	pageH  float64

	custom map[string]bool
}

// NewSink builds an fpdf document with one open page. Unlisted font names
// resolve to PDF core fonts; names in cfg.FontFiles are registered as
// embedded TrueType fonts.
func NewSink(cfg Config) (*Sink, error) {
	base := DefaultConfig()
	applyConfig(&base, cfg)
	cfg = base

	doc := fpdf.New(cfg.Orientation, "pt", cfg.PageSize, cfg.FontDir)

	names := make([]string, 0, len(cfg.FontFiles))
	for name := range cfg.FontFiles {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		doc.AddUTF8Font(name, "", cfg.FontFiles[name])
	}

	pageW, pageH := doc.GetPageSize()
	s := &Sink{
		doc:    doc,
		tr:     doc.UnicodeTranslatorFromDescriptor(""),
		cfg:    cfg,
		left:   cfg.Margin,
		right:  cfg.Margin,
		bottom: cfg.Margin,
		pageW:  pageW,
		pageH:  pageH,
		custom: make(map[string]bool, len(cfg.FontFiles)),
	}
	for _, name := range names {
		s.custom[name] = true
	}

	if cfg.BackgroundEnabled {
		doc.SetHeaderFunc(func() {
			doc.SetFillColor(cfg.BackgroundRGB[0], cfg.BackgroundRGB[1], cfg.BackgroundRGB[2])
			doc.Rect(0, 0, pageW, pageH, "F")
		})
	}
	doc.SetMargins(cfg.Margin, cfg.Margin, cfg.Margin)
	doc.SetAutoPageBreak(true, cfg.Margin)
	doc.SetTextColor(cfg.TextRGB[0], cfg.TextRGB[1], cfg.TextRGB[2])
	doc.SetDrawColor(cfg.TextRGB[0], cfg.TextRGB[1], cfg.TextRGB[2])
	doc.AddPage()

	s.size = mdpage.DefaultFontSize
	s.SetFont(mdpage.DefaultFontNormal)
	if doc.Err() {
		return nil, fmt.Errorf("pdf sink: %w", doc.Error())
	}
	return s, nil
}

// Output finalizes the document and writes it, reporting any error fpdf
// accumulated along the way.
func (s *Sink) Output(w io.Writer) error {
	return s.doc.Output(w)
}

func (s *Sink) SetFont(name string) {
	family, style, core := s.resolveFont(name)
	s.family, s.style, s.core = family, style, core
	s.doc.SetFont(family, style, s.size)
}

func (s *Sink) SetFontSize(pts float64) {
	s.size = pts
	s.doc.SetFontSize(pts)
}

func (s *Sink) WriteText(text string, opts mdpage.TextOptions) {
	h := s.lineHeight()
	if text != "" {
		style := s.style
		if opts.Underline && !strings.Contains(style, "U") {
			style += "U"
		}
		if opts.Strike && !strings.Contains(style, "S") {
			style += "S"
		}
		if style != s.style {
			s.doc.SetFont(s.family, style, s.size)
		}
		out := text
		if s.core {
			out = s.tr(text)
		}
		if opts.Link != "" {
			s.doc.WriteLinkString(h, out, opts.Link)
		} else {
			s.doc.Write(h, out)
		}
		if style != s.style {
			s.doc.SetFont(s.family, s.style, s.size)
		}
	}
	if !opts.Continued && !opts.NoBreak {
		s.doc.Ln(h + opts.ParagraphGap)
	}
}

func (s *Sink) MoveTo(x, y float64) {
	s.doc.SetLeftMargin(x)
	s.doc.SetXY(x, y)
}

func (s *Sink) X() float64 { return s.doc.GetX() }
func (s *Sink) Y() float64 { return s.doc.GetY() }

func (s *Sink) SetX(x float64) {
	s.doc.SetLeftMargin(x)
	s.doc.SetX(x)
}

// SetY moves the cursor vertically without disturbing the abscissa; the
// underlying fpdf SetY would snap it back to the margin.
func (s *Sink) SetY(y float64) {
	x := s.doc.GetX()
	s.doc.SetY(y)
	s.doc.SetX(x)
}

func (s *Sink) LeftMargin() float64  { return s.left }
func (s *Sink) RightMargin() float64 { return s.right }
func (s *Sink) PageWidth() float64   { return s.pageW }

func (s *Sink) DrawLine(x1, y1, x2, y2 float64) {
	s.doc.Line(x1, y1, x2, y2)
}

func (s *Sink) FillCircle(x, y, r float64) {
	s.doc.SetFillColor(s.cfg.TextRGB[0], s.cfg.TextRGB[1], s.cfg.TextRGB[2])
	s.doc.Circle(x, y, r, "F")
}

func (s *Sink) EnsureSpace(pts float64) {
	if s.doc.GetY()+pts > s.pageH-s.bottom {
		s.doc.AddPage()
	}
}

func (s *Sink) lineHeight() float64 {
	return s.size * s.cfg.LineHeight
}

func (s *Sink) resolveFont(name string) (family, style string, core bool) {
	if s.custom[name] {
		return name, "", false
	}
	return coreFontSelector(name)
}

// coreFontSelector maps a PostScript-style font name like
// "Helvetica-BoldOblique" or "Times-Roman" to an fpdf core family and
// style string. Names outside the core set pass through as custom family
// names.
func coreFontSelector(name string) (string, string, bool) {
	base, variant, _ := strings.Cut(name, "-")
	var family string
	switch base {
	case "Helvetica", "Arial":
		family = "Helvetica"
	case "Courier":
		family = "Courier"
	case "Times":
		family = "Times"
	case "Symbol":
		family = "Symbol"
	case "ZapfDingbats":
		family = "ZapfDingbats"
	default:
		return name, "", false
	}
	var style string
	switch variant {
	case "", "Roman", "Regular":
		style = ""
	case "Bold":
		style = "B"
	case "Oblique", "Italic":
		style = "I"
	case "BoldOblique", "BoldItalic":
		style = "BI"
	}
	return family, style, true
}

package mdpage

import "testing"

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	s := DefaultSettings()
	if s.FontNormal != "Helvetica" || s.FontCode != "Courier" {
		t.Fatalf("default fonts = %q / %q", s.FontNormal, s.FontCode)
	}
	if s.FontSize != 10 {
		t.Fatalf("default font size = %g, want 10", s.FontSize)
	}
	if s.BlockQuoteIndent != 7 || s.ListIndent != 14 || s.ListIndentOffset != 7 {
		t.Fatalf("default indents = %g/%g/%g", s.BlockQuoteIndent, s.ListIndent, s.ListIndentOffset)
	}
	if s.ParagraphGap != 8 || s.ListItemGap != 4 {
		t.Fatalf("default gaps = %g/%g", s.ParagraphGap, s.ListItemGap)
	}
	if s.MaxDepth != 512 {
		t.Fatalf("default depth ceiling = %d, want 512", s.MaxDepth)
	}
	if s.ReportUnsupported {
		t.Fatal("unsupported kinds must be skipped by default")
	}
}

func TestNewNormalizesSettings(t *testing.T) {
	t.Parallel()

	// A zero value must still be renderable: fonts, size, radius, and the
	// depth ceiling get defaults. Spacing stays zero; zero gaps and indents
	// are legitimate configurations.
	s := New(RenderSettings{}).Settings()
	if s.FontNormal != DefaultFontNormal || s.FontBoldItalic != DefaultFontBoldItalic {
		t.Fatalf("fonts not defaulted: %q / %q", s.FontNormal, s.FontBoldItalic)
	}
	if s.FontSize != DefaultFontSize || s.BulletRadius != DefaultBulletRadius {
		t.Fatalf("size/radius not defaulted: %g / %g", s.FontSize, s.BulletRadius)
	}
	if s.MaxDepth != DefaultMaxDepth {
		t.Fatalf("depth ceiling not defaulted: %d", s.MaxDepth)
	}
	if s.ParagraphGap != 0 || s.ListIndent != 0 || s.BlockQuoteIndent != 0 {
		t.Fatalf("zero spacing was overridden: %g/%g/%g", s.ParagraphGap, s.ListIndent, s.BlockQuoteIndent)
	}
}

func TestNewKeepsOverrides(t *testing.T) {
	t.Parallel()

	in := DefaultSettings()
	in.FontNormal = "Times-Roman"
	in.FontSize = 12
	in.ListIndentOffset = 0

	s := New(in).Settings()
	if s.FontNormal != "Times-Roman" || s.FontSize != 12 {
		t.Fatalf("overrides lost: %q %g", s.FontNormal, s.FontSize)
	}
	if s.ListIndentOffset != 0 {
		t.Fatalf("explicit zero offset overridden to %g", s.ListIndentOffset)
	}
}

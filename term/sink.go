package term

import (
	"io"
	"strings"

	"github.com/muesli/reflow/ansi"

	"pkt.systems/mdpage"
)

// Sink renders canvas operations as styled terminal lines. The point
// coordinates of the canvas contract map onto a character grid: CellWidth
// points per column and LineHeight points per row. Horizontal anchors
// become hanging indents, vertical gaps become blank lines, and fills and
// strokes become glyphs.
//
// Write errors are sticky and surface from Flush.
type Sink struct {
	w      io.Writer
	cfg    Config
	styles Styles

	style Style

	line       []byte
	openPrefix string
	col        int
	width      int
	anchor     int
	yPts       float64
	pending    float64
	err        error
}

// NewSink wraps w. Zero Config fields fall back to DefaultConfig; a
// Theme name in cfg overrides cfg.Styles when it resolves.
func NewSink(w io.Writer, cfg Config) *Sink {
	base := DefaultConfig()
	applyConfig(&base, cfg)
	cfg = base

	styles := cfg.Styles
	if cfg.Theme != "" {
		if t, ok := ThemeByName(cfg.Theme); ok {
			styles = t.Styles()
		}
	}
	return &Sink{w: w, cfg: cfg, styles: styles, style: styles.Normal}
}

// Flush writes any open line and reports the first write error.
func (s *Sink) Flush() error {
	if s.width > 0 {
		s.breakLine()
	}
	return s.err
}

func (s *Sink) SetFont(name string) { s.style = s.styles.forFont(name) }

// SetFontSize is a no-op: glyphs on a character grid have one size.
func (s *Sink) SetFontSize(pts float64) {}

func (s *Sink) WriteText(text string, opts mdpage.TextOptions) {
	prefix := s.style.Prefix
	if opts.Underline {
		prefix += sgrUnderline
	}
	if opts.Strike {
		prefix += sgrStrike
	}

	if text != "" {
		linked := opts.Link != "" && s.cfg.OSC8
		if linked {
			s.appendRaw(osc8Start + opts.Link + "\x1b\\")
		}
		display := text
		if opts.Link != "" && !s.cfg.OSC8 && opts.Link != text {
			display = text + " (" + opts.Link + ")"
		}
		s.appendStyled(display, prefix)
		if linked {
			s.appendRaw(osc8End)
		}
	}
	if !opts.Continued && !opts.NoBreak {
		// A literal ending in a newline has already flushed its last
		// line; an empty buffer needs no row of its own.
		if s.width > 0 {
			s.breakLine()
		}
		s.yPts += s.cfg.LineHeight + opts.ParagraphGap
		s.pending += opts.ParagraphGap
	}
}

func (s *Sink) MoveTo(x, y float64) {
	s.SetX(x)
	s.SetY(y)
}

func (s *Sink) X() float64 { return float64(s.col) * s.cfg.CellWidth }
func (s *Sink) Y() float64 { return s.yPts }

func (s *Sink) SetX(x float64) {
	s.anchor = s.colFor(x)
	if s.anchor > s.col || s.width == 0 {
		s.col = s.anchor
	}
}

func (s *Sink) SetY(y float64) {
	if d := y - s.yPts; d > 0 {
		s.pending += d
	}
	s.yPts = y
}

func (s *Sink) LeftMargin() float64  { return 0 }
func (s *Sink) RightMargin() float64 { return 0 }

func (s *Sink) PageWidth() float64 {
	return float64(s.cfg.Width) * s.cfg.CellWidth
}

func (s *Sink) DrawLine(x1, y1, x2, y2 float64) {
	cols := s.colFor(x2) - s.colFor(x1)
	if cols < 1 {
		cols = 1
	}
	if target := s.colFor(x1); target < s.col && s.width <= target {
		s.col = target
	}
	s.appendRun(strings.Repeat("─", cols), cols, s.styles.Rule.Prefix)
}

func (s *Sink) FillCircle(x, y, r float64) {
	cur := s.col
	if target := s.colFor(x - r); target < cur && s.width <= target {
		s.col = target
	}
	s.appendRun("•", 1, s.styles.Bullet.Prefix)
	if cur > s.col {
		s.col = cur
	}
}

// EnsureSpace is a no-op: terminals scroll.
func (s *Sink) EnsureSpace(pts float64) {}

func (s *Sink) colFor(x float64) int {
	col := int(x/s.cfg.CellWidth + 0.5)
	if col < 0 {
		col = 0
	}
	return col
}

// appendStyled flows text into the open line, honoring forced newlines
// and wrapping at word boundaries back to the anchor column.
func (s *Sink) appendStyled(text, prefix string) {
	for {
		nl := strings.IndexByte(text, '\n')
		seg := text
		if nl >= 0 {
			seg = text[:nl]
		}
		s.appendWrapped(seg, prefix)
		if nl < 0 {
			return
		}
		s.breakLine()
		s.yPts += s.cfg.LineHeight
		text = text[nl+1:]
	}
}

func (s *Sink) appendWrapped(seg, prefix string) {
	limit := s.cfg.Width
	for i, word := range strings.Split(seg, " ") {
		w := ansi.PrintableRuneWidth(word)
		if i > 0 {
			if s.col+1+w > limit && s.col > s.anchor {
				s.wrap()
			} else {
				s.appendRun(" ", 1, prefix)
			}
		} else if s.col+w > limit && s.col > s.anchor {
			s.wrap()
		}
		if word == "" {
			continue
		}
		if w > limit-s.anchor {
			s.appendOverlong(word, prefix, limit)
			continue
		}
		s.appendRun(word, w, prefix)
	}
}

// appendOverlong hard-splits a word wider than the writable area.
func (s *Sink) appendOverlong(word, prefix string, limit int) {
	for _, r := range word {
		w := ansi.PrintableRuneWidth(string(r))
		if s.col+w > limit && s.col > s.anchor {
			s.wrap()
		}
		s.appendRun(string(r), w, prefix)
	}
}

func (s *Sink) appendRun(g string, w int, prefix string) {
	s.pad()
	s.setPrefix(prefix)
	s.line = append(s.line, g...)
	s.col += w
	s.width = s.col
}

func (s *Sink) appendRaw(esc string) {
	s.pad()
	s.line = append(s.line, esc...)
}

// pad fills the gap between buffered content and the cursor with
// unstyled spaces.
func (s *Sink) pad() {
	if s.col <= s.width {
		return
	}
	s.setPrefix("")
	for i := s.width; i < s.col; i++ {
		s.line = append(s.line, ' ')
	}
	s.width = s.col
}

func (s *Sink) setPrefix(p string) {
	if s.openPrefix == p {
		return
	}
	if s.openPrefix != "" {
		s.line = append(s.line, sgrReset...)
	}
	if p != "" {
		s.line = append(s.line, p...)
	}
	s.openPrefix = p
}

func (s *Sink) wrap() {
	s.breakLine()
	s.yPts += s.cfg.LineHeight
}

// breakLine emits pending blank rows and the buffered line, returning the
// cursor to the anchor column.
func (s *Sink) breakLine() {
	s.setPrefix("")
	rows := int(s.pending/s.cfg.LineHeight + 0.5)
	s.pending = 0
	out := make([]byte, 0, rows+len(s.line)+1)
	for i := 0; i < rows; i++ {
		out = append(out, '\n')
	}
	out = append(out, s.line...)
	out = append(out, '\n')
	s.writeBytes(out)
	s.line = s.line[:0]
	s.width = 0
	s.col = s.anchor
}

func (s *Sink) writeBytes(p []byte) {
	if s.err != nil {
		return
	}
	if _, err := s.w.Write(p); err != nil {
		s.err = err
	}
}

package mdpage

// TextOptions control a single text emission.
type TextOptions struct {
	// Continued keeps the current line open: the cursor stays at the end
	// of the emitted text and later emissions append to the same line.
	Continued bool

	// NoBreak ends the emission without the trailing line break. Unlike
	// Continued it does not promise more text on the line; the caller
	// repositions the cursor itself.
	NoBreak bool

	// Link makes the emitted text a hyperlink to the given target.
	Link string

	Underline bool
	Strike    bool

	// ParagraphGap is extra vertical space, in points, added after the
	// line break of a non-continued emission.
	ParagraphGap float64
}

// DocumentSink is the paginated output canvas. It owns font metrics, text
// shaping, line wrapping, and page breaks; the renderer only issues
// instructions and positioning hints and never reads back emitted content,
// only cursor position and page geometry.
//
// Horizontal positions are anchors: SetX establishes the column that
// wrapped and broken lines return to (a sink may implement this by
// mutating its own left margin). A WriteText call without Continued or
// NoBreak always finalizes the current line, even for empty text: the
// cursor returns to the anchor and advances one line plus ParagraphGap
// points.
type DocumentSink interface {
	// SetFont selects a font by name. Names come from RenderSettings.
	SetFont(name string)

	// SetFontSize sets the active font size in points.
	SetFontSize(pts float64)

	// WriteText emits text at the cursor using the active font and size.
	WriteText(text string, opts TextOptions)

	// MoveTo places the cursor at an absolute position.
	MoveTo(x, y float64)

	X() float64
	Y() float64
	SetX(x float64)
	SetY(y float64)

	LeftMargin() float64
	RightMargin() float64
	PageWidth() float64

	// DrawLine draws a straight line between two points.
	DrawLine(x1, y1, x2, y2 float64)

	// FillCircle draws a filled circle centered at (x, y).
	FillCircle(x, y, r float64)

	// EnsureSpace guarantees at least pts points of vertical space remain
	// on the current page, starting a new page otherwise. Unpaged sinks
	// may ignore it.
	EnsureSpace(pts float64)
}

package mdpage

import (
	"testing"
	"unicode/utf8"
)

// sinkOp records one canvas operation. atX/atY snapshot the cursor before
// the operation applied.
type sinkOp struct {
	name string
	text string
	opts TextOptions
	font string
	size float64
	x    float64
	y    float64
	x2   float64
	y2   float64
	r    float64
	atX  float64
	atY  float64
}

// recordingSink is an in-memory DocumentSink with fixed fake metrics:
// every rune advances the cursor charWidth points and every line is
// lineHeight points tall, so op sequences are fully deterministic.
type recordingSink struct {
	ops []sinkOp

	x      float64
	y      float64
	anchor float64

	left       float64
	right      float64
	width      float64
	charWidth  float64
	lineHeight float64
}

func newRecordingSink() *recordingSink {
	s := &recordingSink{
		left:       72,
		right:      72,
		width:      612,
		charWidth:  3.5,
		lineHeight: 12,
	}
	s.x = s.left
	s.anchor = s.left
	s.y = 72
	return s
}

func (s *recordingSink) record(op sinkOp) {
	op.atX = s.x
	op.atY = s.y
	s.ops = append(s.ops, op)
}

func (s *recordingSink) SetFont(name string) { s.record(sinkOp{name: "font", font: name}) }

func (s *recordingSink) SetFontSize(pts float64) { s.record(sinkOp{name: "size", size: pts}) }

func (s *recordingSink) WriteText(text string, opts TextOptions) {
	s.record(sinkOp{name: "text", text: text, opts: opts})
	s.x += s.charWidth * float64(utf8.RuneCountInString(text))
	if !opts.Continued && !opts.NoBreak {
		s.x = s.anchor
		s.y += s.lineHeight + opts.ParagraphGap
	}
}

func (s *recordingSink) MoveTo(x, y float64) {
	s.record(sinkOp{name: "moveto", x: x, y: y})
	s.x = x
	s.anchor = x
	s.y = y
}

func (s *recordingSink) X() float64 { return s.x }
func (s *recordingSink) Y() float64 { return s.y }

func (s *recordingSink) SetX(x float64) {
	s.record(sinkOp{name: "setx", x: x})
	s.x = x
	s.anchor = x
}

func (s *recordingSink) SetY(y float64) {
	s.record(sinkOp{name: "sety", y: y})
	s.y = y
}

func (s *recordingSink) LeftMargin() float64  { return s.left }
func (s *recordingSink) RightMargin() float64 { return s.right }
func (s *recordingSink) PageWidth() float64   { return s.width }

func (s *recordingSink) DrawLine(x1, y1, x2, y2 float64) {
	s.record(sinkOp{name: "line", x: x1, y: y1, x2: x2, y2: y2})
}

func (s *recordingSink) FillCircle(x, y, r float64) {
	s.record(sinkOp{name: "circle", x: x, y: y, r: r})
}

func (s *recordingSink) EnsureSpace(pts float64) {
	s.record(sinkOp{name: "ensure", size: pts})
}

// reset rewinds the sink for another pass, keeping op capacity.
func (s *recordingSink) reset() {
	s.ops = s.ops[:0]
	s.x = s.left
	s.anchor = s.left
	s.y = 72
}

func (s *recordingSink) opNames() []string {
	names := make([]string, len(s.ops))
	for i, op := range s.ops {
		names[i] = op.name
	}
	return names
}

func (s *recordingSink) opsNamed(name string) []sinkOp {
	var out []sinkOp
	for _, op := range s.ops {
		if op.name == name {
			out = append(out, op)
		}
	}
	return out
}

func (s *recordingSink) textOps() []sinkOp { return s.opsNamed("text") }

// joinContinuedText concatenates the continued text emissions, the flowing
// content a reader would see on one line.
func (s *recordingSink) joinContinuedText() string {
	var out string
	for _, op := range s.textOps() {
		if op.opts.Continued {
			out += op.text
		}
	}
	return out
}

func renderOps(t *testing.T, settings RenderSettings, tree *Node) *recordingSink {
	t.Helper()
	sink := newRecordingSink()
	if err := New(settings).Render(sink, tree); err != nil {
		t.Fatalf("render: %v", err)
	}
	return sink
}

func docTree(children ...*Node) *Node {
	return (&Node{Kind: KindRoot}).Append(children...)
}

func paraNode(children ...*Node) *Node {
	return (&Node{Kind: KindParagraph}).Append(children...)
}

func textNode(value string) *Node {
	return &Node{Kind: KindText, Value: value}
}

func headingNode(depth int, children ...*Node) *Node {
	return (&Node{Kind: KindHeading, Depth: depth}).Append(children...)
}

func strongNode(children ...*Node) *Node {
	return (&Node{Kind: KindStrong}).Append(children...)
}

func emphNode(children ...*Node) *Node {
	return (&Node{Kind: KindEmphasis}).Append(children...)
}

func delNode(children ...*Node) *Node {
	return (&Node{Kind: KindDelete}).Append(children...)
}

func linkNode(url string, children ...*Node) *Node {
	return (&Node{Kind: KindLink, URL: url}).Append(children...)
}

func listNode(ordered bool, start int, items ...*Node) *Node {
	return (&Node{Kind: KindList, Ordered: ordered, Start: start}).Append(items...)
}

func itemNode(children ...*Node) *Node {
	return (&Node{Kind: KindListItem}).Append(children...)
}

func quoteNode(children ...*Node) *Node {
	return (&Node{Kind: KindBlockquote}).Append(children...)
}

func codeNode(value string) *Node {
	return &Node{Kind: KindCode, Value: value}
}

func inlineCodeNode(value string) *Node {
	return &Node{Kind: KindInlineCode, Value: value}
}

func breakNode() *Node {
	return &Node{Kind: KindBreak}
}

func hrNode() *Node {
	return &Node{Kind: KindThematicBreak}
}

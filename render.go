package mdpage

import (
	"errors"
	"fmt"
)

// ErrMaxDepth reports a tree nested deeper than RenderSettings.MaxDepth.
var ErrMaxDepth = errors.New("maximum nesting depth exceeded")

// UnsupportedKindError reports a node kind with no registered handler,
// raised only under the report policy. It aborts the whole pass at the
// point of dispatch; output already written to the sink stays written.
type UnsupportedKindError struct {
	Kind Kind
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("unsupported node kind %q", e.Kind)
}

// HandlerFunc renders one node, recursing into children through
// Pass.RenderChildren.
type HandlerFunc func(p *Pass, n *Node) error

// Renderer converts document trees into DocumentSink operations. It holds
// immutable settings and the kind dispatch table; all per-pass state lives
// in a Pass, so one Renderer may serve concurrent Render calls as long as
// each call gets its own sink.
type Renderer struct {
	settings RenderSettings
	handlers map[Kind]HandlerFunc
}

// New returns a Renderer with the built-in handlers installed. Empty font
// names, a non-positive font size, and a non-positive depth ceiling in
// settings fall back to defaults; spacing and indent values are kept as
// given.
func New(settings RenderSettings) *Renderer {
	settings.normalize()
	r := &Renderer{
		settings: settings,
		handlers: make(map[Kind]HandlerFunc, 16),
	}
	r.Register(KindRoot, renderRoot)
	r.Register(KindParagraph, renderParagraph)
	r.Register(KindHeading, renderHeading)
	r.Register(KindText, renderText)
	r.Register(KindStrong, renderStrong)
	r.Register(KindEmphasis, renderEmphasis)
	r.Register(KindDelete, renderDelete)
	r.Register(KindBreak, renderBreak)
	r.Register(KindInlineCode, renderInlineCode)
	r.Register(KindCode, renderCode)
	r.Register(KindLink, renderLink)
	r.Register(KindList, renderList)
	r.Register(KindListItem, renderListItem)
	r.Register(KindBlockquote, renderBlockquote)
	r.Register(KindThematicBreak, renderThematicBreak)
	return r
}

// Register installs or replaces the handler for a kind. Not safe for use
// concurrently with Render.
func (r *Renderer) Register(kind Kind, fn HandlerFunc) {
	r.handlers[kind] = fn
}

// Settings returns the normalized settings the Renderer was built with.
func (r *Renderer) Settings() RenderSettings {
	return r.settings
}

// Render walks the tree depth-first, pre-order, left to right, emitting
// canvas operations to sink. A nil tree renders nothing. The tree is not
// validated: malformed nodes render best-effort. The only failures are
// *UnsupportedKindError under the report policy and ErrMaxDepth; both
// abort the pass immediately, leaving whatever was already emitted.
func (r *Renderer) Render(sink DocumentSink, root *Node) error {
	if sink == nil {
		return fmt.Errorf("render: nil sink")
	}
	p := &Pass{r: r, sink: sink, settings: &r.settings}
	return p.dispatch(root)
}

// Pass carries the state of one render pass: the sink, the settings, and
// the style context (emphasis counters, link target, list and quote
// nesting). Handlers must leave the context exactly as they found it on
// every successful exit path.
type Pass struct {
	r        *Renderer
	sink     DocumentSink
	settings *RenderSettings

	bold   int
	italic int
	strike int
	link   string
	lists  []listScope
	quote  int
	depth  int
}

// listScope tracks one open list: its ordering and the next item label.
type listScope struct {
	ordered bool
	next    int
}

// Sink returns the pass's canvas.
func (p *Pass) Sink() DocumentSink { return p.sink }

// Settings returns the pass's settings. Shared with the Renderer; treat
// as read-only.
func (p *Pass) Settings() *RenderSettings { return p.settings }

// ListDepth returns the current list nesting depth, 0 outside lists.
func (p *Pass) ListDepth() int { return len(p.lists) }

// QuoteDepth returns the current quote nesting depth, 0 outside quotes.
func (p *Pass) QuoteDepth() int { return p.quote }

// RenderChildren dispatches each child of n in document order, stopping
// at the first error.
func (p *Pass) RenderChildren(n *Node) error {
	for _, c := range n.Children {
		if err := p.dispatch(c); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pass) dispatch(n *Node) error {
	if n == nil {
		return nil
	}
	fn, ok := p.r.handlers[n.Kind]
	if !ok {
		if p.settings.ReportUnsupported {
			return &UnsupportedKindError{Kind: n.Kind}
		}
		return nil
	}
	if p.depth >= p.settings.MaxDepth {
		return ErrMaxDepth
	}
	p.depth++
	err := fn(p, n)
	p.depth--
	return err
}

// currentFont derives the active font name from the emphasis counters:
// bold and italic combine, strike-through and links are per-emission
// options rather than font state.
func (p *Pass) currentFont() string {
	switch {
	case p.bold > 0 && p.italic > 0:
		return p.settings.FontBoldItalic
	case p.bold > 0:
		return p.settings.FontBold
	case p.italic > 0:
		return p.settings.FontItalic
	default:
		return p.settings.FontNormal
	}
}

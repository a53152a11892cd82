package mdpage

import (
	"strconv"
	"strings"
	"unicode"
)

// bulletCenterScale places the bullet circle center vertically within the
// first content line, as a fraction of the base font size.
const bulletCenterScale = 0.4

func renderRoot(p *Pass, n *Node) error {
	p.sink.SetFont(p.settings.FontNormal)
	p.sink.SetFontSize(p.settings.FontSize)
	return p.RenderChildren(n)
}

func renderParagraph(p *Pass, n *Node) error {
	if err := p.RenderChildren(n); err != nil {
		return err
	}
	p.sink.WriteText("", TextOptions{ParagraphGap: p.settings.blockGap(len(p.lists))})
	return nil
}

func renderHeading(p *Pass, n *Node) error {
	s := p.settings
	sink := p.sink
	depth := clampHeadingDepth(n.Depth)
	sink.SetY(sink.Y() + s.headingGapBeforeAt(depth))
	sink.SetFont(s.headingFontAt(depth))
	sink.SetFontSize(s.headingSizeAt(depth))
	if err := p.RenderChildren(n); err != nil {
		return err
	}
	sink.WriteText("", TextOptions{})
	sink.SetFont(p.currentFont())
	sink.SetFontSize(s.FontSize)
	sink.SetY(sink.Y() + s.headingGapAfterAt(depth))
	return nil
}

func renderText(p *Pass, n *Node) error {
	text := collapseWhitespace(n.Value)
	if text == "" {
		return nil
	}
	p.sink.WriteText(text, TextOptions{
		Continued: true,
		Link:      p.link,
		Underline: p.link != "",
		Strike:    p.strike > 0,
	})
	return nil
}

func renderStrong(p *Pass, n *Node) error {
	p.bold++
	p.sink.SetFont(p.currentFont())
	err := p.RenderChildren(n)
	p.bold--
	if err != nil {
		return err
	}
	p.sink.SetFont(p.currentFont())
	return nil
}

func renderEmphasis(p *Pass, n *Node) error {
	p.italic++
	p.sink.SetFont(p.currentFont())
	err := p.RenderChildren(n)
	p.italic--
	if err != nil {
		return err
	}
	p.sink.SetFont(p.currentFont())
	return nil
}

// renderDelete toggles strike-through. Strike is a per-emission option,
// not a font selection, so no font change is emitted.
func renderDelete(p *Pass, n *Node) error {
	p.strike++
	err := p.RenderChildren(n)
	p.strike--
	return err
}

func renderLink(p *Pass, n *Node) error {
	prev := p.link
	p.link = n.URL
	err := p.RenderChildren(n)
	p.link = prev
	return err
}

func renderBreak(p *Pass, n *Node) error {
	p.sink.WriteText("", TextOptions{})
	return nil
}

func renderInlineCode(p *Pass, n *Node) error {
	p.sink.SetFont(p.settings.FontCode)
	p.sink.WriteText(n.Value, TextOptions{Continued: true})
	p.sink.SetFont(p.currentFont())
	return nil
}

func renderCode(p *Pass, n *Node) error {
	p.sink.SetFont(p.settings.FontCode)
	p.sink.WriteText(n.Value, TextOptions{ParagraphGap: p.settings.blockGap(len(p.lists))})
	p.sink.SetFont(p.currentFont())
	return nil
}

func renderBlockquote(p *Pass, n *Node) error {
	sink := p.sink
	p.quote++
	sink.SetX(sink.LeftMargin() + p.settings.quoteIndentAt(p.quote))
	err := p.RenderChildren(n)
	p.quote--
	if err != nil {
		return err
	}
	sink.SetX(sink.LeftMargin() + p.settings.quoteIndentAt(p.quote))
	return nil
}

func renderList(p *Pass, n *Node) error {
	start := n.Start
	if !n.Ordered || start < 1 {
		start = 1
	}
	p.lists = append(p.lists, listScope{ordered: n.Ordered, next: start})
	err := p.RenderChildren(n)
	p.lists = p.lists[:len(p.lists)-1]
	if err != nil {
		return err
	}
	if len(p.lists) == 0 {
		p.sink.SetY(p.sink.Y() + p.settings.listCloseGap())
	}
	return nil
}

func renderListItem(p *Pass, n *Node) error {
	depth := len(p.lists)
	if depth == 0 {
		// Item outside any list: malformed, render the content as-is.
		return p.RenderChildren(n)
	}
	s := p.settings
	sink := p.sink
	scope := &p.lists[depth-1]
	indent := sink.LeftMargin() + s.listItemIndentAt(depth)
	if scope.ordered {
		label := strconv.Itoa(scope.next) + ". "
		scope.next++
		sink.EnsureSpace(s.FontSize)
		sink.SetX(indent)
		sink.WriteText(label, TextOptions{Continued: true})
		// Content starts past the label or one indent unit in, whichever
		// is wider; the label's rendered width is read back from the
		// cursor.
		if contentX := indent + s.ListIndent; sink.X() < contentX {
			sink.SetX(contentX)
		}
	} else {
		sink.SetX(indent + s.ListIndent)
		sink.FillCircle(indent+s.BulletRadius, sink.Y()+s.FontSize*bulletCenterScale, s.BulletRadius)
	}
	if err := p.RenderChildren(n); err != nil {
		return err
	}
	sink.SetX(sink.LeftMargin())
	return nil
}

func renderThematicBreak(p *Pass, n *Node) error {
	sink := p.sink
	y := sink.Y()
	sink.DrawLine(sink.LeftMargin(), y, sink.PageWidth()-sink.RightMargin(), y)
	sink.WriteText("", TextOptions{})
	return nil
}

// collapseWhitespace folds every whitespace run, including newlines, to a
// single space: the soft line break rule of the source markup. Runs at the
// edges collapse to one space as well; this is a fold, not a trim.
func collapseWhitespace(s string) string {
	if !needsCollapse(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteRune(r)
	}
	if space {
		b.WriteByte(' ')
	}
	return b.String()
}

func needsCollapse(s string) bool {
	prevSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if r != ' ' || prevSpace {
				return true
			}
			prevSpace = true
			continue
		}
		prevSpace = false
	}
	return false
}

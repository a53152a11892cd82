package mdpage

// Layout rules: indentation and spacing as pure functions of nesting depth
// and configuration.

const (
	defaultHeadingSizeBase  = 20.0
	defaultHeadingSizeSlope = 1.5
	headingGapBeforeScale   = 0.35
	headingGapAfterScale    = 0.25
)

// clampHeadingDepth forces a heading depth into 1..6. Out-of-range depths
// come from malformed trees and render best-effort.
func clampHeadingDepth(depth int) int {
	if depth < 1 {
		return 1
	}
	if depth > 6 {
		return 6
	}
	return depth
}

func (s *RenderSettings) headingFontAt(depth int) string {
	if s.HeadingFont != nil {
		return s.HeadingFont(depth)
	}
	return s.FontBold
}

func (s *RenderSettings) headingSizeAt(depth int) float64 {
	if s.HeadingSize != nil {
		return s.HeadingSize(depth)
	}
	return defaultHeadingSizeBase - defaultHeadingSizeSlope*float64(depth)
}

func (s *RenderSettings) headingGapBeforeAt(depth int) float64 {
	if s.HeadingGapBefore != nil {
		return s.HeadingGapBefore(depth)
	}
	return headingGapBeforeScale * s.headingSizeAt(depth)
}

func (s *RenderSettings) headingGapAfterAt(depth int) float64 {
	if s.HeadingGapAfter != nil {
		return s.HeadingGapAfter(depth)
	}
	return headingGapAfterScale * s.headingSizeAt(depth)
}

// quoteIndentAt is the horizontal anchor offset from the left margin at
// the given quote depth. Additive and reversible: depth 0 is the margin.
func (s *RenderSettings) quoteIndentAt(depth int) float64 {
	return float64(depth) * s.BlockQuoteIndent
}

// listItemIndentAt is the marker position offset from the left margin for
// an item at the given list depth (1 = outermost).
func (s *RenderSettings) listItemIndentAt(depth int) float64 {
	return float64(depth-1)*s.ListIndent + s.ListIndentOffset
}

// blockGap is the spacing carried by a block-closing line break:
// ListItemGap inside any list, ParagraphGap for standalone blocks. This is
// the single rule distinguishing a paragraph inside a list item from a
// paragraph as its own block.
func (s *RenderSettings) blockGap(listDepth int) float64 {
	if listDepth > 0 {
		return s.ListItemGap
	}
	return s.ParagraphGap
}

// listCloseGap reconciles list-item spacing with paragraph spacing when
// the outermost list closes.
func (s *RenderSettings) listCloseGap() float64 {
	return s.ParagraphGap - s.ListItemGap
}

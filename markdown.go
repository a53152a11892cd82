package mdpage

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

// Parse builds a document tree from Markdown source. Input must be UTF-8
// text; a leading front matter block is stripped before parsing. Markdown
// constructs outside the built-in kind set (tables, images, raw HTML)
// become minted kinds named after the construct, so they hit the
// unsupported-kind policy during rendering instead of being half-drawn.
func Parse(src []byte) (*Node, error) {
	if err := ValidateInput(src); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	src = stripFrontMatter(src)
	doc := parser.NewWithExtensions(parser.CommonExtensions).Parse(src)
	return convertNode(doc), nil
}

func convertNode(node ast.Node) *Node {
	n := nodeFor(node)
	for _, c := range node.GetChildren() {
		n.Children = append(n.Children, convertNode(c))
	}
	return n
}

func nodeFor(node ast.Node) *Node {
	switch v := node.(type) {
	case *ast.Document:
		return &Node{Kind: KindRoot}
	case *ast.Paragraph:
		return &Node{Kind: KindParagraph}
	case *ast.Heading:
		return &Node{Kind: KindHeading, Depth: v.Level}
	case *ast.Text:
		return &Node{Kind: KindText, Value: string(v.Literal)}
	case *ast.Strong:
		return &Node{Kind: KindStrong}
	case *ast.Emph:
		return &Node{Kind: KindEmphasis}
	case *ast.Del:
		return &Node{Kind: KindDelete}
	case *ast.Hardbreak:
		return &Node{Kind: KindBreak}
	case *ast.Softbreak:
		// Soft line breaks fold to a space.
		return &Node{Kind: KindText, Value: " "}
	case *ast.Code:
		return &Node{Kind: KindInlineCode, Value: string(v.Literal)}
	case *ast.CodeBlock:
		return &Node{Kind: KindCode, Value: string(v.Literal)}
	case *ast.Link:
		return &Node{Kind: KindLink, URL: string(v.Destination)}
	case *ast.List:
		return &Node{
			Kind:    KindList,
			Ordered: v.ListFlags&ast.ListTypeOrdered != 0,
			Start:   v.Start,
		}
	case *ast.ListItem:
		return &Node{Kind: KindListItem}
	case *ast.BlockQuote:
		return &Node{Kind: KindBlockquote}
	case *ast.HorizontalRule:
		return &Node{Kind: KindThematicBreak}
	default:
		return &Node{Kind: NewKind(kindNameFor(node))}
	}
}

// kindNameFor derives a kind registry name from the gomarkdown node type,
// e.g. *ast.Table becomes "table".
func kindNameFor(node ast.Node) string {
	name := fmt.Sprintf("%T", node)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.ToLower(name)
}

package mdpage

import "sync"

// Kind identifies what a syntax tree node represents.
type Kind int

var kindRegistry = struct {
	sync.RWMutex
	names  []string
	byName map[string]Kind
}{
	names:  []string{"invalid"},
	byName: map[string]Kind{},
}

// NewKind returns the Kind registered under name, minting it on first use.
// Safe for concurrent use.
func NewKind(name string) Kind {
	kindRegistry.Lock()
	defer kindRegistry.Unlock()
	if k, ok := kindRegistry.byName[name]; ok {
		return k
	}
	kindRegistry.names = append(kindRegistry.names, name)
	k := Kind(len(kindRegistry.names) - 1)
	kindRegistry.byName[name] = k
	return k
}

// String returns the name the Kind was registered under.
func (k Kind) String() string {
	kindRegistry.RLock()
	defer kindRegistry.RUnlock()
	if k <= 0 || int(k) >= len(kindRegistry.names) {
		return "invalid"
	}
	return kindRegistry.names[k]
}

// Built-in node kinds. KindOther is declared but has no handler; like any
// unhandled kind it is skipped or reported per RenderSettings.
var (
	KindRoot          = NewKind("root")
	KindParagraph     = NewKind("paragraph")
	KindHeading       = NewKind("heading")
	KindText          = NewKind("text")
	KindStrong        = NewKind("strong")
	KindEmphasis      = NewKind("emphasis")
	KindDelete        = NewKind("delete")
	KindBreak         = NewKind("break")
	KindInlineCode    = NewKind("inlineCode")
	KindCode          = NewKind("code")
	KindLink          = NewKind("link")
	KindList          = NewKind("list")
	KindListItem      = NewKind("listItem")
	KindBlockquote    = NewKind("blockquote")
	KindThematicBreak = NewKind("thematicBreak")
	KindOther         = NewKind("other")
)

// Node is one node of a parsed document tree. Children are in document
// order. The renderer never mutates nodes; the caller owns the tree for
// the duration of a render pass.
type Node struct {
	Kind     Kind
	Children []*Node

	// Value holds the literal for text, inlineCode, and code nodes.
	Value string

	// Depth is the heading depth, 1 through 6.
	Depth int

	// URL is the link target.
	URL string

	// Ordered and Start describe a list node. Start is the first item
	// label of an ordered list; values below 1 mean 1.
	Ordered bool
	Start   int
}

// Append adds children to n and returns n.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

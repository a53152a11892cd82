package mdpage

import "testing"

func TestNewKindMintsOnce(t *testing.T) {
	t.Parallel()

	a := NewKind("aside")
	b := NewKind("aside")
	if a != b {
		t.Fatalf("NewKind minted two kinds for one name: %d and %d", a, b)
	}
	if c := NewKind("figcaption"); c == a {
		t.Fatalf("distinct names share kind %d", c)
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		kind Kind
		want string
	}{
		{KindRoot, "root"},
		{KindParagraph, "paragraph"},
		{KindInlineCode, "inlineCode"},
		{KindThematicBreak, "thematicBreak"},
		{KindOther, "other"},
		{Kind(0), "invalid"},
		{Kind(-7), "invalid"},
		{Kind(1 << 20), "invalid"},
	} {
		if got := tt.kind.String(); got != tt.want {
			t.Fatalf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestNodeAppend(t *testing.T) {
	t.Parallel()

	n := &Node{Kind: KindParagraph}
	a, b := textNode("a"), textNode("b")
	if got := n.Append(a).Append(b); got != n {
		t.Fatal("Append did not return the receiver")
	}
	if len(n.Children) != 2 || n.Children[0] != a || n.Children[1] != b {
		t.Fatalf("children = %v, want [a b] in order", n.Children)
	}
}

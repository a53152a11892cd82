package mdpage

import (
	"os"
	"strconv"
	"testing"
)

func BenchmarkParse(b *testing.B) {
	data := mustReadSample(b, "testdata/manual.md")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(data); err != nil {
			b.Fatalf("parse: %v", err)
		}
	}
}

func BenchmarkRender(b *testing.B) {
	samples := map[string]*Node{
		"manual": mustParseSample(b, "testdata/manual.md"),
		"lists":  deepListTree(6, 4),
		"inline": inlineHeavyTree(200),
	}
	r := New(DefaultSettings())
	for name, tree := range samples {
		tree := tree
		b.Run(name, func(b *testing.B) {
			sink := newRecordingSink()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sink.reset()
				if err := r.Render(sink, tree); err != nil {
					b.Fatalf("render: %v", err)
				}
			}
		})
	}
}

func BenchmarkParseAndRender(b *testing.B) {
	data := mustReadSample(b, "testdata/manual.md")
	r := New(DefaultSettings())
	sink := newRecordingSink()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree, err := Parse(data)
		if err != nil {
			b.Fatalf("parse: %v", err)
		}
		sink.reset()
		if err := r.Render(sink, tree); err != nil {
			b.Fatalf("render: %v", err)
		}
	}
}

func mustReadSample(b *testing.B, path string) []byte {
	b.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		b.Fatalf("read %s: %v", path, err)
	}
	return data
}

func mustParseSample(b *testing.B, path string) *Node {
	b.Helper()
	tree, err := Parse(mustReadSample(b, path))
	if err != nil {
		b.Fatalf("parse %s: %v", path, err)
	}
	return tree
}

// deepListTree nests unordered lists depth levels deep with width items
// per level.
func deepListTree(depth, width int) *Node {
	var build func(level int) *Node
	build = func(level int) *Node {
		list := &Node{Kind: KindList}
		for i := 0; i < width; i++ {
			item := itemNode(paraNode(textNode("item " + strconv.Itoa(level) + "." + strconv.Itoa(i))))
			if level < depth && i == 0 {
				item.Append(build(level + 1))
			}
			list.Append(item)
		}
		return list
	}
	return docTree(build(1))
}

// inlineHeavyTree builds one paragraph alternating plain, bold, italic,
// and linked runs.
func inlineHeavyTree(runs int) *Node {
	p := &Node{Kind: KindParagraph}
	for i := 0; i < runs; i++ {
		switch i % 4 {
		case 0:
			p.Append(textNode("plain run "))
		case 1:
			p.Append(strongNode(textNode("bold run ")))
		case 2:
			p.Append(emphNode(textNode("italic run ")))
		case 3:
			p.Append(linkNode("https://example.com", textNode("linked run ")))
		}
	}
	return docTree(p)
}

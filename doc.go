// Package mdpage renders parsed document trees onto paginated canvases.
//
// The input is a tree of Nodes (headings, paragraphs, emphasis, lists,
// links, code, quotes, rules), usually built by Parse from Markdown
// source. The output side is a DocumentSink: an abstract canvas that owns
// font metrics, line wrapping, and page breaks while the renderer issues
// font selections, text emissions, cursor moves, and rule/bullet draws.
//
// Core properties:
//   - Single-pass depth-first traversal, no intermediate representation
//   - Kind-keyed handler dispatch; unknown kinds skip or report per policy
//   - Nested style state restored exactly on every subtree exit
//   - Indents, gaps, and heading scale derived from RenderSettings
//
// Example:
//
//	tree, err := mdpage.Parse(source)
//	if err != nil {
//		log.Fatal(err)
//	}
//	r := mdpage.New(mdpage.DefaultSettings())
//	if err := r.Render(sink, tree); err != nil {
//		log.Fatal(err)
//	}
//
// The pdf and term subpackages provide ready-made sinks for PDF documents
// and ANSI terminals.
package mdpage

// Package term renders parsed markdown as styled lines for ANSI
// terminals.
//
// Sink implements mdpage.DocumentSink on a character grid. The canvas
// point coordinates used by the renderer are quantized to columns and
// rows (CellWidth points per column, LineHeight points per row), so the
// same layout arithmetic that indents a blockquote in a PDF indents it
// on screen. Inline styles map to SGR sequences through a Theme, links
// can use OSC 8 hyperlinks where the terminal supports them, and
// paragraph gaps turn into blank lines.
//
// Render is the turnkey entry point:
//
//	err := term.Render(term.RenderRequest{
//		Reader: file,
//		Writer: os.Stdout,
//		Config: term.Config{Width: 72, OSC8: term.DetectOSC8Support()},
//	})
package term

// Package pdf renders document trees onto paginated PDF pages.
//
// Sink adapts an fpdf document to the mdpage.DocumentSink contract:
// SetX maps to the fpdf left margin so wrapped lines and page breaks
// return to the current anchor, and EnsureSpace opens a fresh page when
// the remaining vertical space runs short. Render is the turnkey entry
// point from Markdown bytes to a finished PDF:
//
//	err := pdf.Render(pdf.RenderRequest{
//		Reader: file,
//		Writer: out,
//	})
//
// Core PDF fonts cover the default settings; Config.FontFiles embeds
// TrueType fonts for anything beyond them.
package pdf

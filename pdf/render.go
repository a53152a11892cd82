package pdf

import (
	"fmt"
	"io"

	"pkt.systems/mdpage"
)

// RenderRequest contains inputs for PDF rendering.
type RenderRequest struct {
	Reader   io.Reader
	Writer   io.Writer
	Settings mdpage.RenderSettings
	Config   Config
}

// Render reads Markdown from req.Reader and writes a paginated PDF to
// req.Writer.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("pdf render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("pdf render: writer is nil")
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("pdf render: read input: %w", err)
	}
	tree, err := mdpage.Parse(src)
	if err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	sink, err := NewSink(req.Config)
	if err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	if err := mdpage.New(req.Settings).Render(sink, tree); err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	if err := sink.Output(req.Writer); err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	return nil
}

package term

import (
	"fmt"
	"io"

	"pkt.systems/mdpage"
)

// RenderRequest bundles the inputs for a one-shot markdown to terminal
// render.
type RenderRequest struct {
	Reader   io.Reader
	Writer   io.Writer
	Settings mdpage.RenderSettings
	Config   Config
}

// Render reads markdown from req.Reader and writes styled lines to
// req.Writer.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("term render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("term render: writer is nil")
	}
	if req.Config.Theme != "" {
		if _, ok := ThemeByName(req.Config.Theme); !ok {
			return fmt.Errorf("term render: unknown theme %q", req.Config.Theme)
		}
	}

	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("term render: %w", err)
	}
	root, err := mdpage.Parse(src)
	if err != nil {
		return fmt.Errorf("term render: %w", err)
	}

	sink := NewSink(req.Writer, req.Config)
	if err := mdpage.New(req.Settings).Render(sink, root); err != nil {
		return fmt.Errorf("term render: %w", err)
	}
	if err := sink.Flush(); err != nil {
		return fmt.Errorf("term render: %w", err)
	}
	return nil
}

package term

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"pkt.systems/mdpage"
)

const sampleDoc = `# Release notes

The **first** cut of the [renderer](https://pkt.systems/mdpage) is out.

- wraps words
- styles inline code like ` + "`x.y`" + `

> quoted remark
`

func TestRenderWritesStyledLines(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader: strings.NewReader(sampleDoc),
		Writer: &out,
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "\x1b[1mRelease notes\x1b[0m") {
		t.Errorf("heading not bold: %q", text)
	}
	if !strings.Contains(text, "\x1b[1m•\x1b[0m wraps words") {
		t.Errorf("bullet line missing: %q", text)
	}
	if !strings.Contains(text, "renderer (https://pkt.systems/mdpage)") {
		t.Errorf("link fallback missing: %q", text)
	}
	if !strings.Contains(text, " quoted remark") {
		t.Errorf("quote indent missing: %q", text)
	}
}

func TestRenderNilArgs(t *testing.T) {
	t.Parallel()
	if err := Render(RenderRequest{Writer: &bytes.Buffer{}}); err == nil {
		t.Error("nil reader accepted")
	}
	if err := Render(RenderRequest{Reader: strings.NewReader("x")}); err == nil {
		t.Error("nil writer accepted")
	}
}

func TestRenderUnknownTheme(t *testing.T) {
	t.Parallel()
	err := Render(RenderRequest{
		Reader: strings.NewReader("hello\n"),
		Writer: &bytes.Buffer{},
		Config: Config{Theme: "neon"},
	})
	if err == nil || !strings.Contains(err.Error(), `unknown theme "neon"`) {
		t.Fatalf("Render = %v, want unknown theme error", err)
	}
}

func TestRenderRejectsBinaryInput(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader: bytes.NewReader(bytes.Repeat([]byte{0x01}, 128)),
		Writer: &out,
	})
	if !errors.Is(err, mdpage.ErrBinaryInput) {
		t.Fatalf("Render = %v, want ErrBinaryInput", err)
	}
	if out.Len() != 0 {
		t.Fatalf("rejected input still produced %d bytes", out.Len())
	}
}

func TestApplyConfig(t *testing.T) {
	t.Parallel()
	base := DefaultConfig()
	applyConfig(&base, Config{})
	if base.Width != 80 || base.CellWidth != 7 || base.LineHeight != 12 {
		t.Fatalf("zero overlay changed defaults: %+v", base)
	}
	if base.OSC8 {
		t.Fatal("zero overlay enabled OSC8")
	}

	base = DefaultConfig()
	applyConfig(&base, Config{Width: 120, Theme: "vivid", OSC8: true})
	if base.Width != 120 {
		t.Fatalf("Width = %d, want 120", base.Width)
	}
	if base.Theme != "vivid" {
		t.Fatalf("Theme = %q, want vivid", base.Theme)
	}
	if !base.OSC8 {
		t.Fatal("OSC8 flag dropped")
	}
	if base.CellWidth != 7 {
		t.Fatalf("CellWidth = %v, want default 7", base.CellWidth)
	}
}

package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	xterm "golang.org/x/term"
	"pkt.systems/mdpage"
	"pkt.systems/mdpage/pdf"
	"pkt.systems/mdpage/term"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
)

func init() {
	version.SetDefaultModule("pkt.systems/mdpage")
}

func main() {
	var (
		themeName      string
		widthFlag      int
		osc8Flag       string
		listThemes     bool
		outPath        string
		strict         bool
		verbose        bool
		showVersion    bool
		pdfMode        bool
		pdfPageSize    string
		pdfLandscape   bool
		pdfMargin      float64
		pdfLineHeight  float64
		pdfFontSize    float64
		regularFont    string
		boldFont       string
		italicFont     string
		boldItalicFont string
		codeFont       string
		headingFont    string
	)

	pdfDefaults := pdf.DefaultConfig()
	flags := pflag.NewFlagSet("mdpage", pflag.ExitOnError)
	flags.StringVarP(&themeName, "theme", "t", defaultThemeName, "Terminal theme name")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.StringVarP(&osc8Flag, "osc8", "8", "auto", "OSC8 hyperlinks: auto|on|off")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVar(&strict, "strict", false, "Fail on Markdown constructs the renderer does not support")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Debug logging on stderr")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")
	flags.BoolVar(&pdfMode, "pdf", false, "Generate a PDF instead of ANSI output")
	flags.StringVar(&pdfPageSize, "pdf-page-size", pdfDefaults.PageSize, "PDF page size")
	flags.BoolVar(&pdfLandscape, "pdf-landscape", false, "Landscape page orientation")
	flags.Float64Var(&pdfMargin, "pdf-margin", pdfDefaults.Margin, "Page margin in points")
	flags.Float64Var(&pdfLineHeight, "pdf-line-height", pdfDefaults.LineHeight, "Line height multiplier")
	flags.Float64Var(&pdfFontSize, "pdf-font-size", mdpage.DefaultFontSize, "Base font size in points")
	flags.StringVar(&regularFont, "pdf-regular-font", "", "TTF path for regular font")
	flags.StringVar(&boldFont, "pdf-bold-font", "", "TTF path for bold font")
	flags.StringVar(&italicFont, "pdf-italic-font", "", "TTF path for italic font")
	flags.StringVar(&boldItalicFont, "pdf-bold-italic-font", "", "TTF path for bold-italic font (defaults to the bold font)")
	flags.StringVar(&codeFont, "pdf-code-font", "", "TTF path for code font")
	flags.StringVar(&headingFont, "pdf-heading-font", "", "TTF path for heading font (overrides the bold font)")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: mdpage [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nRenders Markdown as styled terminal lines, or as a paginated PDF with --pdf.")
		fmt.Fprintln(os.Stderr, "If no input is provided, Markdown is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if showVersion {
		fmt.Println(version.Module(), version.Current())
		return
	}
	if listThemes {
		printThemes()
		return
	}

	args := flags.Args()
	reader, closer, err := openInputs(args)
	if err != nil {
		logger.Fatal("open input", "err", err)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	logger.Debug("reading markdown", "inputs", len(args))

	if !pdfMode && outPath != "" && strings.HasSuffix(strings.ToLower(outPath), ".pdf") {
		logger.Warn("output ends with .pdf, generating a PDF", "output", outPath)
		pdfMode = true
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		logger.Fatal("open output", "err", err)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	settings := mdpage.DefaultSettings()
	settings.ReportUnsupported = strict

	if pdfMode {
		if isTerminal(writer) {
			fmt.Fprintln(os.Stderr, "refusing to write PDF to terminal; use -o/--output")
			os.Exit(2)
		}
		if pdfFontSize > 0 {
			settings.FontSize = pdfFontSize
		}
		cfg := pdf.Config{
			PageSize:   pdfPageSize,
			Margin:     pdfMargin,
			LineHeight: pdfLineHeight,
		}
		if pdfLandscape {
			cfg.Orientation = "L"
		}
		if err := wireFonts(&settings, &cfg, fontPaths{
			regular:    regularFont,
			bold:       boldFont,
			italic:     italicFont,
			boldItalic: boldItalicFont,
			code:       codeFont,
			heading:    headingFont,
		}); err != nil {
			logger.Fatal("pdf fonts", "err", err)
		}
		logger.Debug("rendering pdf", "page-size", cfg.PageSize, "margin", cfg.Margin)
		start := time.Now()
		if err := pdf.Render(pdf.RenderRequest{
			Reader:   reader,
			Writer:   writer,
			Settings: settings,
			Config:   cfg,
		}); err != nil {
			logger.Fatal("render pdf", "err", err)
		}
		logger.Debug("rendered pdf", "in", time.Since(start).Round(time.Microsecond))
		return
	}

	if _, ok := term.ThemeByName(themeName); !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q\n\n", themeName)
		printThemes()
		os.Exit(2)
	}
	osc8, err := resolveOSC8(osc8Flag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --osc8 %q: %v\n", osc8Flag, err)
		os.Exit(2)
	}
	width := resolveWidth(widthFlag)
	logger.Debug("rendering terminal output", "width", width, "theme", themeName, "osc8", osc8)
	start := time.Now()
	if err := term.Render(term.RenderRequest{
		Reader:   reader,
		Writer:   writer,
		Settings: settings,
		Config: term.Config{
			Width: width,
			Theme: themeName,
			OSC8:  osc8,
		},
	}); err != nil {
		logger.Fatal("render", "err", err)
	}
	logger.Debug("rendered", "in", time.Since(start).Round(time.Microsecond))
}

// fontPaths carries TTF override paths from the flag set. Regular, bold,
// and italic come as a trio; the rest are optional refinements.
type fontPaths struct {
	regular    string
	bold       string
	italic     string
	boldItalic string
	code       string
	heading    string
}

func wireFonts(settings *mdpage.RenderSettings, cfg *pdf.Config, paths fontPaths) error {
	reg := strings.TrimSpace(paths.regular)
	bold := strings.TrimSpace(paths.bold)
	italic := strings.TrimSpace(paths.italic)
	if reg == "" && bold == "" && italic == "" && paths.code == "" && paths.heading == "" {
		return nil
	}

	files := map[string]string{}
	add := func(slot, path string) (string, error) {
		path = normalizePath(path)
		if err := ensureFont(path); err != nil {
			return "", fmt.Errorf("%s font: %w", slot, err)
		}
		name := "mdpage-" + slot
		files[name] = path
		return name, nil
	}

	if reg != "" || bold != "" || italic != "" {
		if reg == "" || bold == "" || italic == "" {
			return fmt.Errorf("regular, bold, and italic fonts must all be provided")
		}
		var err error
		if settings.FontNormal, err = add("regular", reg); err != nil {
			return err
		}
		if settings.FontBold, err = add("bold", bold); err != nil {
			return err
		}
		if settings.FontItalic, err = add("italic", italic); err != nil {
			return err
		}
		settings.FontBoldItalic = settings.FontBold
		if paths.boldItalic != "" {
			if settings.FontBoldItalic, err = add("bold-italic", paths.boldItalic); err != nil {
				return err
			}
		}
	}
	if paths.code != "" {
		name, err := add("code", paths.code)
		if err != nil {
			return err
		}
		settings.FontCode = name
	}
	if paths.heading != "" {
		name, err := add("heading", paths.heading)
		if err != nil {
			return err
		}
		settings.HeadingFont = func(int) string { return name }
	}

	cfg.FontFiles = files
	return nil
}

func printThemes() {
	for _, name := range term.AvailableThemes() {
		fmt.Fprintln(os.Stdout, name)
	}
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if xterm.IsTerminal(fd) {
		if w, _, err := xterm.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return term.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

// multiInputReader concatenates inputs, opening each lazily so a missing
// file surfaces only once the stream reaches it.
type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, err
			}
			m.cur = reader
			m.curCloser = closer
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

func openInputs(args []string) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return os.Stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	return &multiInputReader{sources: sources}, nil, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	clean := normalizePath(path)
	f, err := os.Open(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func ensureFont(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory")
	}
	if !strings.HasSuffix(strings.ToLower(info.Name()), ".ttf") {
		return fmt.Errorf("expected .ttf font file")
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return xterm.IsTerminal(int(f.Fd()))
}

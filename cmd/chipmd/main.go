package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/chipmd"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
)

func init() {
	version.SetDefaultModule("pkt.systems/chipmd")
}

type options struct {
	themeName  string
	width      int
	osc8       string
	softWrap   bool
	listThemes bool
	outPath    string
	boring     bool
	color      string
	format     string
	plain      bool
	marker     string
	highlight  string
	strict     bool
	verbose    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	flags := pflag.NewFlagSet("chipmd", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.IntVarP(&opts.width, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.StringVarP(&opts.osc8, "osc8", "8", "auto", "OSC8 hyperlinks on chips: auto|on|off")
	flags.BoolVar(&opts.softWrap, "soft-wrap", false, "Break words longer than the output width")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "List available themes")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&opts.boring, "boring", "b", false, "Generate non-ANSI output")
	flags.StringVar(&opts.color, "color", "auto", "Styled output: auto|always|never (auto follows the output terminal, NO_COLOR and CLICOLOR_FORCE)")
	flags.StringVarP(&opts.format, "format", "f", "ansi", "Output format: ansi|html|tree")
	flags.BoolVar(&opts.plain, "plain", false, "Skip block parsing and render the input as one inline run")
	flags.StringVarP(&opts.marker, "marker", "m", defaultMarker, "Chip marker that splits the input into segments")
	flags.StringVar(&opts.highlight, "highlight", "", "Highlight the input as code in this language instead of rendering Markdown")
	flags.BoolVar(&opts.strict, "strict", false, "Fail when a segment already contains the placeholder sentinel")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Print render statistics to stderr")
	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: chipmd [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nIf no input is provided, Markdown is read from stdin.")
		fmt.Fprintln(stderr, "Front matter may list chips (chips: [{name, label, url}]); each marker in")
		fmt.Fprintln(stderr, "the body is replaced by the next chip.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.listThemes {
		printThemes(stdout)
		return 0
	}

	theme, ok := chipmd.ThemeByName(opts.themeName)
	if !ok {
		fmt.Fprintf(stderr, "unknown theme %q\n\n", opts.themeName)
		printThemes(stderr)
		return 2
	}
	osc8, err := resolveOSC8(opts.osc8)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --osc8 %q: %v\n", opts.osc8, err)
		return 2
	}
	switch opts.format {
	case "ansi", "html", "tree":
	default:
		fmt.Fprintf(stderr, "invalid --format %q: expected ansi|html|tree\n", opts.format)
		return 2
	}
	switch strings.ToLower(strings.TrimSpace(opts.color)) {
	case "", "auto", "always", "on", "never", "off":
	default:
		fmt.Fprintf(stderr, "invalid --color %q: expected auto|always|never\n", opts.color)
		return 2
	}

	src, err := readInputs(flags.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "read input: %v\n", err)
		return 1
	}
	if err := chipmd.ValidateInput(src); err != nil {
		fmt.Fprintf(stderr, "read input: %v\n", err)
		return 1
	}
	src = chipmd.SanitizeInput(src)

	var tree *chipmd.Node
	if opts.highlight != "" {
		b := chipmd.NodeBuilder{}
		tree = b.Element(chipmd.Tag{}, b.Element(chipmd.Tag{Name: "pre"}, chipmd.HighlightCode(string(src), opts.highlight)))
	} else {
		tree, err = renderDocument(src, opts, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "render: %v\n", err)
			return 1
		}
	}

	writer, closeOut, err := resolveOutput(opts.outPath, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "open output: %v\n", err)
		return 1
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}
	if opts.boring || !resolveColor(opts.color, writer) {
		theme = chipmd.BoringTheme()
	}

	switch opts.format {
	case "tree":
		_, err = fmt.Fprintln(writer, tree.String())
	case "html":
		err = chipmd.WriteHTML(writer, tree)
	default:
		err = chipmd.WriteANSI(chipmd.ANSIRequest{
			Writer:  writer,
			Tree:    tree,
			Width:   resolveWidth(opts.width),
			Theme:   theme,
			Options: []chipmd.RenderOption{chipmd.WithOSC8(osc8), chipmd.WithSoftWrap(opts.softWrap)},
		})
	}
	if err != nil {
		fmt.Fprintf(stderr, "write: %v\n", err)
		return 1
	}
	return 0
}

// renderDocument splits src into segments, renders them and splices the
// declared chips into the resulting insertion points.
func renderDocument(src []byte, opts options, stderr io.Writer) (*chipmd.Node, error) {
	doc, err := parseDocument(src, opts.marker)
	if err != nil {
		return nil, err
	}
	if err := chipmd.ValidateSegments(doc.Segments); err != nil {
		if opts.strict {
			return nil, err
		}
		fmt.Fprintf(stderr, "warning: %v; insertion points may not line up with chips\n", err)
	}
	text := chipmd.PrepareText(doc.Segments)
	var res chipmd.Result[*chipmd.Node]
	if opts.plain {
		res = chipmd.RenderPlainText(text)
	} else {
		res = chipmd.Render(text)
	}
	filled := spliceChips(res.InsertionPoints, doc.Chips)
	if opts.verbose {
		fmt.Fprintf(stderr, "segments=%d insertion_points=%d chips=%d filled=%d\n",
			len(doc.Segments), len(res.InsertionPoints), len(doc.Chips), filled)
	}
	return res.Tree, nil
}

func printThemes(w io.Writer) {
	names := chipmd.AvailableThemes()
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(w, name)
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
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
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
		return chipmd.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

// resolveColor reports whether styled output should be written to w.
func resolveColor(mode string, w io.Writer) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "always", "on":
		return true
	case "never", "off":
		return false
	default:
		return termenv.NewOutput(w).EnvColorProfile() != termenv.Ascii
	}
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

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

// readInputs reads and concatenates all inputs, or stdin when none are
// given.
func readInputs(args []string, stdin io.Reader) ([]byte, error) {
	reader, closer, err := openInputs(args, stdin)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	return io.ReadAll(reader)
}

func openInputs(args []string, stdin io.Reader) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	m := &multiInputReader{sources: sources}
	return m, m, nil
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

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return stdout, nil, nil
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

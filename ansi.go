package chipmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/reflow/ansi"
)

var hashStringsWithSpace = [...]string{
	"",
	"# ",
	"## ",
	"### ",
	"#### ",
	"##### ",
	"###### ",
}

const bulletMarker = "- "

// ANSIRequest configures WriteANSI.
type ANSIRequest struct {
	Writer  io.Writer
	Tree    *Node
	Width   int
	Theme   Theme
	Options []RenderOption
}

// WriteANSI writes a rendered tree to a terminal. Paragraphs, headings and
// list items are word wrapped to Width (0 disables wrapping); code blocks
// are never wrapped. Headings keep their # markers.
func WriteANSI(req ANSIRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("write ansi: writer is nil")
	}
	if req.Tree == nil {
		return fmt.Errorf("write ansi: tree is nil")
	}
	theme := req.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	w := ansiWriter{
		styles: theme.Styles(),
		width:  req.Width,
		cfg:    newRenderConfig(req.Options),
	}
	w.document(req.Tree)
	if _, err := io.WriteString(req.Writer, w.out.String()); err != nil {
		return fmt.Errorf("write ansi: %w", err)
	}
	return nil
}

type ansiWriter struct {
	styles Styles
	width  int
	cfg    renderConfig
	out    strings.Builder
	blocks int
}

func (w *ansiWriter) document(tree *Node) {
	if tree.Kind == NodeElement && tree.Tag.IsFragment() && allBlocks(tree.Children) {
		for _, c := range tree.Children {
			w.block(c)
		}
		return
	}
	if isBlock(tree) {
		w.block(tree)
		return
	}
	// Inline-only trees come from RenderPlainText.
	w.block(&Node{Kind: NodeElement, Tag: tagParagraph, Children: []*Node{tree}})
}

func (w *ansiWriter) block(n *Node) {
	if w.blocks > 0 {
		w.out.WriteByte('\n')
	}
	w.blocks++
	switch name := n.Tag.Name; {
	case name == "pre":
		w.out.WriteString(w.inlineString(n.Children, w.styles.CodeBlock))
		w.out.WriteByte('\n')
	case name == "ul" || name == "ol":
		w.list(n, name == "ol")
	case headingLevel(name) > 0:
		level := headingLevel(name)
		st := w.styles.Heading[level-1]
		marker := hashStringsWithSpace[level]
		writeStyled(&w.out, marker, st)
		w.writeWrapped(w.inlineString(n.Children, st), len(marker))
	default:
		w.writeWrapped(w.inlineString(n.Children, w.styles.Text), 0)
	}
}

func (w *ansiWriter) list(n *Node, ordered bool) {
	for i, item := range n.Children {
		marker := bulletMarker
		if ordered {
			marker = strconv.Itoa(i+1) + ". "
		}
		writeStyled(&w.out, marker, w.styles.ListMarker)
		w.writeWrapped(w.inlineString(item.Children, w.styles.Text), ansi.PrintableRuneWidth(marker))
	}
}

func (w *ansiWriter) writeWrapped(text string, prefixWidth int) {
	w.out.WriteString(wrapHanging(text, w.width, prefixWidth, w.cfg.softWrap))
	w.out.WriteByte('\n')
}

func (w *ansiWriter) inlineString(nodes []*Node, st Style) string {
	var b strings.Builder
	for _, n := range nodes {
		w.inline(&b, n, st)
	}
	return b.String()
}

func (w *ansiWriter) inline(b *strings.Builder, n *Node, st Style) {
	switch n.Kind {
	case NodeText:
		writeStyled(b, n.Text, st)
	case NodeLineBreak:
		b.WriteByte('\n')
	case NodeSlot:
		for _, c := range n.Children {
			w.inline(b, c, st)
		}
	default:
		if n.Tag.Class == ClassChip {
			w.chip(b, n)
			return
		}
		next := w.styleFor(n.Tag, st)
		for _, c := range n.Children {
			w.inline(b, c, next)
		}
	}
}

func (w *ansiWriter) styleFor(tag Tag, base Style) Style {
	switch tag.Name {
	case "strong":
		return combineStyles(base, w.styles.Bold)
	case "em":
		return combineStyles(base, w.styles.Italic)
	case "s":
		return combineStyles(base, w.styles.Strikethrough)
	case "u":
		return combineStyles(base, w.styles.Underline)
	case "code":
		if tag.Class == "" {
			return combineStyles(base, w.styles.CodeInline)
		}
	case "span":
		switch tag.Class {
		case ClassComment:
			return combineStyles(base, w.styles.Comment)
		case ClassString:
			return combineStyles(base, w.styles.String)
		case ClassKeyword:
			return combineStyles(base, w.styles.Keyword)
		case ClassNumber:
			return combineStyles(base, w.styles.Number)
		}
	}
	return base
}

// chip writes a chip label. Linked chips become OSC 8 hyperlinks when
// enabled, otherwise the URL follows the label in parentheses.
func (w *ansiWriter) chip(b *strings.Builder, n *Node) {
	label := n.PlainText()
	href := n.Tag.Href
	switch {
	case href == "":
		writeStyled(b, label, w.styles.Chip)
	case w.cfg.osc8:
		b.WriteString(osc8Start + href + "\x1b\\")
		writeStyled(b, label, w.styles.Chip)
		b.WriteString(osc8End)
	default:
		writeStyled(b, label, w.styles.Chip)
		b.WriteString(" (")
		writeStyled(b, fitURL(href, w.width), w.styles.ChipURL)
		b.WriteByte(')')
	}
}

func writeStyled(b *strings.Builder, text string, st Style) {
	if text == "" {
		return
	}
	if st.Prefix == "" {
		b.WriteString(text)
		return
	}
	b.WriteString(st.Prefix)
	b.WriteString(text)
	b.WriteString(ansiReset)
}

func headingLevel(name string) int {
	if len(name) == 2 && name[0] == 'h' && name[1] >= '1' && name[1] <= '6' {
		return int(name[1] - '0')
	}
	return 0
}

func isBlock(n *Node) bool {
	if n == nil || n.Kind != NodeElement {
		return false
	}
	switch n.Tag.Name {
	case "p", "pre", "ul", "ol":
		return true
	}
	return headingLevel(n.Tag.Name) > 0
}

func allBlocks(nodes []*Node) bool {
	for _, n := range nodes {
		if !isBlock(n) {
			return false
		}
	}
	return true
}

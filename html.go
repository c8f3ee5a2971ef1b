package chipmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	escapeHTML = strings.NewReplacer(
		"&", "&amp;", `"`, "&quot;", "<", "&lt;", ">", "&gt;",
		// Attributes are always double-quoted, so single quotes stay.
	).Replace
	escapeURL = strings.NewReplacer(
		`"`, "%22", `\`, "%5C", " ", "%20", "`", "%60",
		"<", "%3C", ">", "%3E").Replace
)

// Block-level elements are followed by a newline in HTML output.
var htmlBlockTags = map[string]bool{
	"p": true, "pre": true, "ul": true, "ol": true, "li": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// WriteHTML writes a rendered tree as an HTML fragment. Slots become
// <span class="slot" data-index="N"> wrappers around their children.
func WriteHTML(w io.Writer, tree *Node) error {
	if w == nil {
		return fmt.Errorf("write html: writer is nil")
	}
	var sb strings.Builder
	writeHTMLNode(&sb, tree)
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	return nil
}

func writeHTMLNode(sb *strings.Builder, n *Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case NodeText:
		sb.WriteString(escapeHTML(n.Text))
	case NodeLineBreak:
		sb.WriteString("<br />")
	case NodeSlot:
		fmt.Fprintf(sb, `<span class="slot" data-index="%s">`, strconv.Itoa(n.Index))
		writeHTMLChildren(sb, n)
		sb.WriteString("</span>")
	default:
		if n.Tag.IsFragment() {
			writeHTMLChildren(sb, n)
			return
		}
		var attrs attrBuilder
		if n.Tag.Class != "" {
			attrs.set("class", n.Tag.Class)
		}
		if n.Tag.Href != "" {
			attrs.set("href", escapeURL(n.Tag.Href))
		}
		fmt.Fprintf(sb, "<%s%s>", n.Tag.Name, &attrs)
		if n.Tag.Name == "ul" || n.Tag.Name == "ol" {
			sb.WriteByte('\n')
		}
		writeHTMLChildren(sb, n)
		fmt.Fprintf(sb, "</%s>", n.Tag.Name)
		if htmlBlockTags[n.Tag.Name] {
			sb.WriteByte('\n')
		}
	}
}

func writeHTMLChildren(sb *strings.Builder, n *Node) {
	for _, c := range n.Children {
		writeHTMLNode(sb, c)
	}
}

type attrBuilder struct{ strings.Builder }

func (a *attrBuilder) set(k, v string) {
	fmt.Fprintf(a, ` %s="%s"`, k, escapeHTML(v))
}

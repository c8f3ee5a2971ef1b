package chipmd

import (
	"strconv"
	"strings"
)

// NodeKind identifies the type of a Node.
type NodeKind uint8

const (
	// NodeText is a run of literal text.
	NodeText NodeKind = iota
	// NodeElement is a tagged container.
	NodeElement
	// NodeLineBreak is an explicit line break.
	NodeLineBreak
	// NodeSlot is an insertion point; it is empty until filled.
	NodeSlot
)

// Node is the default rendered tree. Nodes are plain data: callers may walk
// and modify them freely once Render returns.
type Node struct {
	Kind     NodeKind
	Tag      Tag
	Text     string
	Index    int
	Children []*Node
}

// NodeBuilder builds *Node trees.
type NodeBuilder struct{}

var _ Builder[*Node] = NodeBuilder{}

func (NodeBuilder) Text(s string) *Node {
	return &Node{Kind: NodeText, Text: s}
}

func (NodeBuilder) Element(tag Tag, children ...*Node) *Node {
	return &Node{Kind: NodeElement, Tag: tag, Children: children}
}

func (NodeBuilder) LineBreak() *Node {
	return &Node{Kind: NodeLineBreak}
}

func (NodeBuilder) Slot(index int) *Node {
	return &Node{Kind: NodeSlot, Index: index}
}

// Fill replaces the children of a slot node and reports whether n is a
// slot. Other node kinds are left untouched.
func (n *Node) Fill(children ...*Node) bool {
	if n == nil || n.Kind != NodeSlot {
		return false
	}
	n.Children = children
	return true
}

// Walk visits n and its descendants in document order. Children of a node
// are skipped when fn returns false for it.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// PlainText returns the text of n with all styling removed. Line breaks
// become newlines; filled slots contribute their children.
func (n *Node) PlainText() string {
	var b strings.Builder
	n.writePlain(&b)
	return b.String()
}

func (n *Node) writePlain(b *strings.Builder) {
	if n == nil {
		return
	}
	switch n.Kind {
	case NodeText:
		b.WriteString(n.Text)
	case NodeLineBreak:
		b.WriteByte('\n')
	default:
		for _, c := range n.Children {
			c.writePlain(b)
		}
	}
}

// String dumps n as an s-expression. A top-level fragment prints one child
// per line.
func (n *Node) String() string {
	var b strings.Builder
	if n != nil && n.Kind == NodeElement && n.Tag.IsFragment() {
		for i, c := range n.Children {
			if i > 0 {
				b.WriteByte('\n')
			}
			c.dump(&b)
		}
		return b.String()
	}
	n.dump(&b)
	return b.String()
}

func (n *Node) dump(b *strings.Builder) {
	if n == nil {
		b.WriteString("nil")
		return
	}
	switch n.Kind {
	case NodeText:
		b.WriteString(strconv.Quote(n.Text))
		return
	case NodeLineBreak:
		b.WriteString("(br)")
		return
	case NodeSlot:
		b.WriteString("(slot ")
		b.WriteString(strconv.Itoa(n.Index))
	default:
		b.WriteByte('(')
		b.WriteString(tagLabel(n.Tag))
	}
	for _, c := range n.Children {
		b.WriteByte(' ')
		c.dump(b)
	}
	b.WriteByte(')')
}

func tagLabel(t Tag) string {
	if t.IsFragment() {
		return "fragment"
	}
	label := t.Name
	if t.Class != "" {
		label += "." + t.Class
	}
	if t.Href != "" {
		label += " " + strconv.Quote(t.Href)
	}
	return label
}

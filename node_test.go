package chipmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeFill(t *testing.T) {
	b := NodeBuilder{}
	res := Render("Hi \uE000!")
	chip := b.Element(ChipTag("https://example.com/u/ada"), b.Text("@ada"))

	require.Len(t, res.InsertionPoints, 1)
	require.True(t, res.InsertionPoints[0].Node.Fill(chip))
	require.Equal(t, "Hi @ada!", res.Tree.PlainText())
	require.Equal(t, `(p "Hi " (slot 0 (a.chip "https://example.com/u/ada" "@ada")) "!")`, res.Tree.String())

	require.False(t, b.Text("x").Fill(chip))
	var missing *Node
	require.False(t, missing.Fill(chip))
}

func TestNodeWalkSkipsChildren(t *testing.T) {
	res := Render("# *a* b\n\n- c")
	var visited []string
	res.Tree.Walk(func(n *Node) bool {
		if n.Kind == NodeElement && !n.Tag.IsFragment() {
			visited = append(visited, n.Tag.Name)
		}
		return n.Tag.Name != "ul"
	})
	require.Equal(t, []string{"h1", "strong", "ul"}, visited)
}

func TestNodePlainTextLineBreaks(t *testing.T) {
	res := Render("a\nb")
	require.Equal(t, "a\nb", res.Tree.PlainText())
}

func TestNodeStringNested(t *testing.T) {
	b := NodeBuilder{}
	n := b.Element(tagParagraph, b.Element(Tag{}, b.Text("x")), b.LineBreak())
	require.Equal(t, `(p (fragment "x") (br))`, n.String())
	var missing *Node
	require.Equal(t, "nil", missing.String())
}

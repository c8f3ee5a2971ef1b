package chipmd

import (
	"sort"
	"strings"
)

// Result is the output of a render call.
type Result[N any] struct {
	Tree N
	// InsertionPoints holds one entry per placeholder, ascending by Index.
	InsertionPoints []InsertionPoint[N]
}

// InsertionPoint pairs a placeholder index with the slot node standing in
// for it.
type InsertionPoint[N any] struct {
	Index int
	Node  N
}

// Render parses text as blocks and builds a *Node tree.
func Render(text string) Result[*Node] {
	return RenderWith[*Node](NodeBuilder{}, text)
}

// RenderPlainText is Render without block parsing: the whole input is one
// inline run.
func RenderPlainText(text string) Result[*Node] {
	return RenderPlainTextWith[*Node](NodeBuilder{}, text)
}

// RenderBlocks builds a *Node tree from already parsed blocks.
func RenderBlocks(blocks []Block) Result[*Node] {
	return RenderBlocksWith[*Node](NodeBuilder{}, blocks)
}

// RenderWith parses text as blocks and builds the tree with b.
func RenderWith[N any](b Builder[N], text string) Result[N] {
	blocks, _ := parseBlocks(text, 0)
	return RenderBlocksWith(b, blocks)
}

// RenderPlainTextWith treats text as one inline run and builds the tree
// with b.
func RenderPlainTextWith[N any](b Builder[N], text string) Result[N] {
	tokens, _ := parseInline(text, 0)
	t := treeBuilder[N]{b: b}
	tree := b.Element(Tag{}, t.inline(tokens)...)
	return t.result(tree)
}

// RenderBlocksWith builds the tree for blocks with b. The root is a
// fragment holding one element per block.
func RenderBlocksWith[N any](b Builder[N], blocks []Block) Result[N] {
	t := treeBuilder[N]{b: b}
	children := make([]N, 0, len(blocks))
	for _, blk := range blocks {
		children = append(children, t.block(blk))
	}
	return t.result(b.Element(Tag{}, children...))
}

type treeBuilder[N any] struct {
	b      Builder[N]
	points []InsertionPoint[N]
}

func (t *treeBuilder[N]) result(tree N) Result[N] {
	// Traversal already yields ascending indices; the sort keeps the
	// ordering guarantee independent of builder order.
	sort.SliceStable(t.points, func(i, j int) bool {
		return t.points[i].Index < t.points[j].Index
	})
	return Result[N]{Tree: tree, InsertionPoints: t.points}
}

func (t *treeBuilder[N]) slot(index int) N {
	n := t.b.Slot(index)
	t.points = append(t.points, InsertionPoint[N]{Index: index, Node: n})
	return n
}

func (t *treeBuilder[N]) block(blk Block) N {
	switch blk.Kind {
	case BlockHeading:
		return t.b.Element(headingTags[clampLevel(blk.Level)], t.inline(blk.Content)...)
	case BlockCodeFence:
		return t.fence(blk)
	case BlockList:
		tag := tagBulletList
		if blk.Ordered {
			tag = tagOrderedList
		}
		items := make([]N, 0, len(blk.Items))
		for _, item := range blk.Items {
			items = append(items, t.b.Element(tagListItem, t.inline(item.Content)...))
		}
		return t.b.Element(tag, items...)
	default:
		return t.b.Element(tagParagraph, t.inline(blk.Content)...)
	}
}

func (t *treeBuilder[N]) inline(tokens []Token) []N {
	out := make([]N, 0, len(tokens))
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenText:
			out = t.appendText(out, tok.Content)
		case TokenPlaceholder:
			out = append(out, t.slot(tok.Index))
		default:
			out = append(out, t.b.Element(inlineTags[tok.Kind], t.b.Text(tok.Content)))
		}
	}
	return out
}

// appendText splits s on newlines into runs separated by line breaks.
func (t *treeBuilder[N]) appendText(out []N, s string) []N {
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			out = append(out, t.b.LineBreak())
		}
		if line != "" {
			out = append(out, t.b.Text(line))
		}
	}
	return out
}

// fence builds a pre element around the highlighted body. Sentinels inside
// the body become slots in place; any left over from the closing line are
// appended after the code.
func (t *treeBuilder[N]) fence(blk Block) N {
	pending := blk.Placeholders
	split := func(s string) []N {
		parts := strings.Split(s, sentinelString)
		if len(parts) == 1 {
			return []N{t.b.Text(s)}
		}
		out := make([]N, 0, 2*len(parts)-1)
		for i, part := range parts {
			if i > 0 && len(pending) > 0 {
				out = append(out, t.slot(pending[0]))
				pending = pending[1:]
			}
			if part != "" {
				out = append(out, t.b.Text(part))
			}
		}
		return out
	}
	var children []N
	if SupportsHighlight(blk.Language) {
		spans := Highlight(blk.Code, blk.Language)
		code := t.b.Element(codeTag(normalizeLanguage(blk.Language)), highlightChildren(t.b, blk.Code, spans, split)...)
		children = append(children, code)
	} else {
		children = split(blk.Code)
	}
	for _, index := range pending {
		children = append(children, t.slot(index))
	}
	return t.b.Element(preTag(blk.Language), children...)
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}

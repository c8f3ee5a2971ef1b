package chipmd

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseBlocks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Block
	}{
		{
			name: "heading then paragraph",
			in:   "# Title\n\nSome text",
			want: []Block{
				{Kind: BlockHeading, Level: 1, Content: []Token{text("Title")}},
				{Kind: BlockParagraph, Content: []Token{text("Some text")}},
			},
		},
		{
			name: "list then paragraph",
			in:   "- a\n- b\n\nPara",
			want: []Block{
				{Kind: BlockList, Items: []ListItem{{Content: []Token{text("a")}}, {Content: []Token{text("b")}}}},
				{Kind: BlockParagraph, Content: []Token{text("Para")}},
			},
		},
		{
			name: "ordered list with both markers",
			in:   "1. one\n  2) two",
			want: []Block{
				{Kind: BlockList, Ordered: true, Items: []ListItem{{Content: []Token{text("one")}}, {Content: []Token{text("two")}}}},
			},
		},
		{
			name: "star bullets",
			in:   "* x",
			want: []Block{
				{Kind: BlockList, Items: []ListItem{{Content: []Token{text("x")}}}},
			},
		},
		{
			name: "bullet list does not absorb ordered items",
			in:   "- a\n1. b",
			want: []Block{
				{Kind: BlockList, Items: []ListItem{{Content: []Token{text("a")}}}},
				{Kind: BlockList, Ordered: true, Items: []ListItem{{Content: []Token{text("b")}}}},
			},
		},
		{
			name: "paragraph joins lines",
			in:   "one\ntwo",
			want: []Block{
				{Kind: BlockParagraph, Content: []Token{text("one\ntwo")}},
			},
		},
		{
			name: "heading interrupts paragraph",
			in:   "para\n## Sub",
			want: []Block{
				{Kind: BlockParagraph, Content: []Token{text("para")}},
				{Kind: BlockHeading, Level: 2, Content: []Token{text("Sub")}},
			},
		},
		{
			name: "list interrupts paragraph",
			in:   "para\n- item",
			want: []Block{
				{Kind: BlockParagraph, Content: []Token{text("para")}},
				{Kind: BlockList, Items: []ListItem{{Content: []Token{text("item")}}}},
			},
		},
		{
			name: "fence does not interrupt paragraph",
			in:   "para\n```",
			want: []Block{
				{Kind: BlockParagraph, Content: []Token{text("para\n"), text("`"), text("`"), text("`")}},
			},
		},
		{
			name: "not headings",
			in:   "#nospace\n####### seven",
			want: []Block{
				{Kind: BlockParagraph, Content: []Token{text("#nospace\n####### seven")}},
			},
		},
		{
			name: "six hashes",
			in:   "###### deep",
			want: []Block{
				{Kind: BlockHeading, Level: 6, Content: []Token{text("deep")}},
			},
		},
		{
			name: "fence with language",
			in:   "```js\nlet a = 1;\n\nlet b;\n```\nafter",
			want: []Block{
				{Kind: BlockCodeFence, Language: "js", Code: "let a = 1;\n\nlet b;"},
				{Kind: BlockParagraph, Content: []Token{text("after")}},
			},
		},
		{
			name: "fence keeps markdown verbatim",
			in:   "```\n# not a heading\n- nor a list\n```",
			want: []Block{
				{Kind: BlockCodeFence, Code: "# not a heading\n- nor a list"},
			},
		},
		{
			name: "unterminated fence",
			in:   "```go\nfmt.Println()",
			want: []Block{
				{Kind: BlockCodeFence, Language: "go", Code: "fmt.Println()"},
			},
		},
		{
			name: "closing line only needs the prefix",
			in:   "```\nx\n```trailing\ny",
			want: []Block{
				{Kind: BlockCodeFence, Code: "x"},
				{Kind: BlockParagraph, Content: []Token{text("y")}},
			},
		},
		{
			name: "info string with spaces is not a fence",
			in:   "```js extra",
			want: []Block{
				{Kind: BlockParagraph, Content: []Token{text("`"), text("`"), text("`"), text("js extra")}},
			},
		},
		{
			name: "blank input",
			in:   " \n\t\n",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBlocks(tt.in)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("ParseBlocks(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseBlocksPlaceholderIndicesAreGlobal(t *testing.T) {
	in := "\uE000 one\n\n# two \uE000\n- \uE000\n- x\uE000\n```\n\uE000\n```\uE000\nend \uE000"
	want := []Block{
		{Kind: BlockParagraph, Content: []Token{placeholder(0), text(" one")}},
		{Kind: BlockHeading, Level: 1, Content: []Token{text("two "), placeholder(1)}},
		{Kind: BlockList, Items: []ListItem{
			{Content: []Token{placeholder(2)}},
			{Content: []Token{text("x"), placeholder(3)}},
		}},
		{Kind: BlockCodeFence, Code: "\uE000", Placeholders: []int{4, 5}},
		{Kind: BlockParagraph, Content: []Token{text("end "), placeholder(6)}},
	}
	blocks, next := parseBlocks(in, 0)
	if diff := cmp.Diff(want, blocks, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("blocks mismatch (-want +got):\n%s", diff)
	}
	if next != 7 {
		t.Fatalf("next = %d, want 7", next)
	}
}

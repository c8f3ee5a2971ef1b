package chipmd

import (
	"regexp"
	"strings"
)

// BlockKind identifies the type of a block.
type BlockKind uint8

const (
	// BlockParagraph is a run of plain lines.
	BlockParagraph BlockKind = iota
	// BlockHeading is a single # to ###### line.
	BlockHeading
	// BlockCodeFence is a ``` delimited code block.
	BlockCodeFence
	// BlockList is a run of ordered or unordered items.
	BlockList
)

// Block is one top-level element of a document.
//
// Which fields are set depends on Kind: Content for paragraphs and headings,
// Level for headings, Language, Code and Placeholders for code fences,
// Ordered and Items for lists.
type Block struct {
	Kind     BlockKind
	Level    int
	Content  []Token
	Language string
	Code     string
	// Placeholders holds the indices of sentinels found in a fence, in
	// order. Code keeps the raw sentinels; sentinels on the closing fence
	// line are listed last.
	Placeholders []int
	Ordered      bool
	Items        []ListItem
}

// ListItem is one entry of a list block.
type ListItem struct {
	Content []Token
}

var (
	// Capture group 1: info string
	fenceOpenRegexp = regexp.MustCompile("^```(\\w*)$")
	// Capture groups: 1. hashes 2. content
	headingRegexp = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	// Capture group 1: item content
	bulletItemRegexp  = regexp.MustCompile(`^\s*[-*]\s+(.+)$`)
	orderedItemRegexp = regexp.MustCompile(`^\s*\d+[.)]\s+(.+)$`)
)

const fenceMarker = "```"

// ParseBlocks groups text into blocks. Placeholders are numbered across the
// whole document in source order.
func ParseBlocks(text string) []Block {
	blocks, _ := parseBlocks(text, 0)
	return blocks
}

func parseBlocks(text string, next int) ([]Block, int) {
	p := blockParser{lines: strings.Split(text, "\n"), next: next}
	for p.i < len(p.lines) {
		p.parseBlock()
	}
	return p.blocks, p.next
}

type blockParser struct {
	lines  []string
	i      int
	next   int
	blocks []Block
}

// parseBlock applies the first matching rule to the current line and
// consumes one or more lines.
func (p *blockParser) parseBlock() {
	line := p.lines[p.i]
	if isBlankLine(line) {
		p.i++
		return
	}
	if m := fenceOpenRegexp.FindStringSubmatch(line); m != nil {
		p.parseFence(m[1])
		return
	}
	if m := headingRegexp.FindStringSubmatch(line); m != nil {
		var content []Token
		content, p.next = parseInline(m[2], p.next)
		p.blocks = append(p.blocks, Block{Kind: BlockHeading, Level: len(m[1]), Content: content})
		p.i++
		return
	}
	if bulletItemRegexp.MatchString(line) {
		p.parseList(bulletItemRegexp, false)
		return
	}
	if orderedItemRegexp.MatchString(line) {
		p.parseList(orderedItemRegexp, true)
		return
	}
	p.parseParagraph()
}

func (p *blockParser) parseFence(language string) {
	p.i++
	start := p.i
	for p.i < len(p.lines) && !strings.HasPrefix(p.lines[p.i], fenceMarker) {
		p.i++
	}
	code := strings.Join(p.lines[start:p.i], "\n")
	count := strings.Count(code, sentinelString)
	if p.i < len(p.lines) {
		count += strings.Count(p.lines[p.i], sentinelString)
		p.i++
	}
	p.blocks = append(p.blocks, Block{
		Kind:         BlockCodeFence,
		Language:     language,
		Code:         code,
		Placeholders: p.take(count),
	})
}

func (p *blockParser) parseList(re *regexp.Regexp, ordered bool) {
	block := Block{Kind: BlockList, Ordered: ordered}
	for p.i < len(p.lines) {
		m := re.FindStringSubmatch(p.lines[p.i])
		if m == nil {
			break
		}
		var content []Token
		content, p.next = parseInline(m[1], p.next)
		block.Items = append(block.Items, ListItem{Content: content})
		p.i++
	}
	p.blocks = append(p.blocks, block)
}

func (p *blockParser) parseParagraph() {
	start := p.i
	p.i++
	for p.i < len(p.lines) && !interruptsParagraph(p.lines[p.i]) {
		p.i++
	}
	var content []Token
	content, p.next = parseInline(strings.Join(p.lines[start:p.i], "\n"), p.next)
	p.blocks = append(p.blocks, Block{Kind: BlockParagraph, Content: content})
}

// take reserves count consecutive placeholder indices.
func (p *blockParser) take(count int) []int {
	if count == 0 {
		return nil
	}
	out := make([]int, count)
	for i := range out {
		out[i] = p.next
		p.next++
	}
	return out
}

func interruptsParagraph(line string) bool {
	return isBlankLine(line) ||
		headingRegexp.MatchString(line) ||
		bulletItemRegexp.MatchString(line) ||
		orderedItemRegexp.MatchString(line)
}

func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

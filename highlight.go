package chipmd

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// SpanKind identifies the lexical class of a highlight span.
type SpanKind uint8

const (
	SpanComment SpanKind = iota
	SpanString
	SpanKeyword
	SpanNumber
)

func (k SpanKind) String() string {
	switch k {
	case SpanComment:
		return "comment"
	case SpanString:
		return "string"
	case SpanKeyword:
		return "keyword"
	case SpanNumber:
		return "number"
	default:
		return "unknown"
	}
}

// Span is a highlighted byte range [Start, End) of a code string.
type Span struct {
	Start int
	End   int
	Kind  SpanKind
}

var highlightLanguages = map[string]struct{}{
	"js":         {},
	"javascript": {},
	"ts":         {},
	"typescript": {},
}

var keywords = []string{
	"abstract", "as", "async", "await", "break", "case", "catch", "class",
	"const", "continue", "debugger", "declare", "default", "delete", "do",
	"else", "enum", "export", "extends", "false", "finally", "for", "from",
	"function", "get", "if", "implements", "import", "in", "instanceof",
	"interface", "let", "namespace", "new", "null", "of", "private",
	"protected", "public", "readonly", "return", "set", "static", "super",
	"switch", "this", "throw", "true", "try", "type", "typeof", "undefined",
	"var", "void", "while", "with", "yield",
}

// Passes run in this order; spans starting at the same offset keep it.
var highlightPasses = [...]struct {
	kind SpanKind
	re   *regexp.Regexp
}{
	{SpanComment, regexp.MustCompile(`//[^\n]*|/\*[\s\S]*?\*/`)},
	{SpanString, regexp.MustCompile(`"(?:[^"\\]|\\[\s\S])*"|'(?:[^'\\]|\\[\s\S])*'|` +
		"`(?:[^`\\\\]|\\\\[\\s\\S])*`")},
	{SpanKeyword, regexp.MustCompile(`\b(?:` + strings.Join(keywords, "|") + `)\b`)},
	{SpanNumber, regexp.MustCompile(`\b(?:0[xX][0-9a-fA-F]+|0[bB][01]+|0[oO][0-7]+|\d+(?:\.\d+)?(?:[eE][+-]?\d+)?)\b`)},
}

// normalizeLanguage folds a fence info string for lookup.
func normalizeLanguage(language string) string {
	return cases.Fold().String(strings.TrimSpace(language))
}

// SupportsHighlight reports whether language gets syntax highlighting.
func SupportsHighlight(language string) bool {
	_, ok := highlightLanguages[normalizeLanguage(language)]
	return ok
}

// Highlight returns the accepted spans of code in ascending order. It
// returns nil for languages without highlighting.
//
// Each pass collects its matches independently. After a stable sort by
// start, a span is kept only if it starts at or after the end of the last
// kept span; overlapping spans are dropped whole, never clipped.
func Highlight(code, language string) []Span {
	if !SupportsHighlight(language) {
		return nil
	}
	var spans []Span
	for _, pass := range highlightPasses {
		for _, loc := range pass.re.FindAllStringIndex(code, -1) {
			spans = append(spans, Span{Start: loc[0], End: loc[1], Kind: pass.kind})
		}
	}
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].Start < spans[j].Start
	})
	accepted := spans[:0]
	lastEnd := 0
	for _, span := range spans {
		if span.Start < lastEnd {
			continue
		}
		accepted = append(accepted, span)
		lastEnd = span.End
	}
	return accepted
}

// HighlightCode highlights code into a *Node tree.
func HighlightCode(code, language string) *Node {
	return HighlightCodeWith[*Node](NodeBuilder{}, code, language)
}

// HighlightCodeWith highlights code using b. Unsupported languages yield a
// single text node holding code verbatim; supported ones yield a code
// element whose children alternate plain runs and styled spans.
func HighlightCodeWith[N any](b Builder[N], code, language string) N {
	if !SupportsHighlight(language) {
		return b.Text(code)
	}
	plain := func(s string) []N {
		return []N{b.Text(s)}
	}
	return b.Element(codeTag(normalizeLanguage(language)), highlightChildren(b, code, Highlight(code, language), plain)...)
}

// highlightChildren lays out code around the accepted spans. text turns a
// raw stretch of code into nodes.
func highlightChildren[N any](b Builder[N], code string, spans []Span, text func(string) []N) []N {
	out := make([]N, 0, 2*len(spans)+1)
	lastEnd := 0
	for _, span := range spans {
		if span.Start > lastEnd {
			out = append(out, text(code[lastEnd:span.Start])...)
		}
		out = append(out, b.Element(spanTags[span.Kind], text(code[span.Start:span.End])...))
		lastEnd = span.End
	}
	if lastEnd < len(code) {
		out = append(out, text(code[lastEnd:])...)
	}
	return out
}

package chipmd

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"
)

func TestHighlightScenario(t *testing.T) {
	got := Highlight("const x = 1; // hi", "js")
	want := []Span{
		{Start: 0, End: 5, Kind: SpanKeyword},
		{Start: 10, End: 11, Kind: SpanNumber},
		{Start: 13, End: 18, Kind: SpanComment},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("spans mismatch (-want +got):\n%s", diff)
	}
}

func TestHighlight(t *testing.T) {
	tests := []struct {
		name string
		code string
		lang string
		want []Span
	}{
		{
			name: "comment inside string is rejected",
			code: `x = "// not a comment"`,
			lang: "ts",
			want: []Span{{Start: 4, End: 22, Kind: SpanString}},
		},
		{
			name: "overlapping span is dropped whole",
			code: `"a//b" + c`,
			lang: "javascript",
			want: []Span{{Start: 0, End: 6, Kind: SpanString}},
		},
		{
			name: "keywords and numbers inside comments",
			code: "// return 1",
			lang: "js",
			want: []Span{{Start: 0, End: 11, Kind: SpanComment}},
		},
		{
			name: "block comment",
			code: "/* a\nb */ let",
			lang: "js",
			want: []Span{{Start: 0, End: 9, Kind: SpanComment}, {Start: 10, End: 13, Kind: SpanKeyword}},
		},
		{
			name: "escaped quote",
			code: `'it\'s'`,
			lang: "js",
			want: []Span{{Start: 0, End: 7, Kind: SpanString}},
		},
		{
			name: "template string",
			code: "`a${b}`",
			lang: "js",
			want: []Span{{Start: 0, End: 7, Kind: SpanString}},
		},
		{
			name: "number forms",
			code: "0xFF 0b10 0o7 1.5e-3",
			lang: "js",
			want: []Span{
				{Start: 0, End: 4, Kind: SpanNumber},
				{Start: 5, End: 9, Kind: SpanNumber},
				{Start: 10, End: 13, Kind: SpanNumber},
				{Start: 14, End: 20, Kind: SpanNumber},
			},
		},
		{
			name: "identifiers are not keywords",
			code: "iffy x1 constant",
			lang: "js",
			want: nil,
		},
		{
			name: "language is case-insensitive",
			code: "null",
			lang: " TypeScript ",
			want: []Span{{Start: 0, End: 4, Kind: SpanKeyword}},
		},
		{
			name: "unsupported language",
			code: "func main() {}",
			lang: "go",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Highlight(tt.code, tt.lang)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Highlight(%q, %q) mismatch (-want +got):\n%s", tt.code, tt.lang, diff)
			}
		})
	}
}

func TestHighlightCode(t *testing.T) {
	tests := []struct {
		code string
		lang string
		want string
	}{
		{
			code: "const x = 1; // hi",
			lang: "js",
			want: `(code.language-js (span.hl-keyword "const") " x = " (span.hl-number "1") "; " (span.hl-comment "// hi"))`,
		},
		{
			code: "let a",
			lang: "JS",
			want: `(code.language-js (span.hl-keyword "let") " a")`,
		},
		{
			code: "plain <text>",
			lang: "python",
			want: `"plain <text>"`,
		},
		{
			code: "x",
			lang: "",
			want: `"x"`,
		},
	}
	for _, tt := range tests {
		if got := HighlightCode(tt.code, tt.lang).String(); got != tt.want {
			t.Fatalf("HighlightCode(%q, %q) = %s, want %s", tt.code, tt.lang, got, tt.want)
		}
	}
}

func TestSupportsHighlight(t *testing.T) {
	for _, lang := range []string{"js", "javascript", "ts", "typescript", "JavaScript", "TS"} {
		if !SupportsHighlight(lang) {
			t.Fatalf("expected %q to be supported", lang)
		}
	}
	for _, lang := range []string{"", "go", "jsx", "java"} {
		if SupportsHighlight(lang) {
			t.Fatalf("expected %q to be unsupported", lang)
		}
	}
}

func TestHighlightNonOverlapProperty(t *testing.T) {
	alphabet := rapid.SampledFrom([]string{
		"const", "let", " ", "\n", "x", "1", "0x1f", "'", `"`, "`", `\`, "/", "*", "//", "/*", "*/", ";", "return",
	})
	rapid.Check(t, func(t *rapid.T) {
		parts := rapid.SliceOfN(alphabet, 0, 40).Draw(t, "parts")
		code := ""
		for _, p := range parts {
			code += p
		}
		lang := rapid.SampledFrom([]string{"js", "javascript", "ts", "typescript"}).Draw(t, "lang")
		spans := Highlight(code, lang)
		for i, s := range spans {
			if s.Start >= s.End || s.End > len(code) {
				t.Fatalf("span %d out of range: %+v in %q", i, s, code)
			}
			if i > 0 && s.Start < spans[i-1].End {
				t.Fatalf("span %d overlaps previous: %+v after %+v in %q", i, s, spans[i-1], code)
			}
		}
		if got := HighlightCode(code, lang).PlainText(); got != code {
			t.Fatalf("highlighted text = %q, want %q", got, code)
		}
	})
}

package chipmd

// Token is an inline segment of a block.
type Token struct {
	Kind    TokenKind
	Content string
	// Index is the placeholder number for TokenPlaceholder and zero otherwise.
	Index int
}

// TokenKind identifies the type of an inline token.
type TokenKind uint8

const (
	// TokenText represents plain text.
	TokenText TokenKind = iota
	// TokenBold represents *bold* text.
	TokenBold
	// TokenItalic represents /italic/ text.
	TokenItalic
	// TokenStrikethrough represents ~struck~ text.
	TokenStrikethrough
	// TokenUnderline represents _underlined_ text.
	TokenUnderline
	// TokenCode represents `inline code`.
	TokenCode
	// TokenPlaceholder marks a sentinel position.
	TokenPlaceholder
)

var tokenKindNames = [...]string{
	TokenText:          "text",
	TokenBold:          "bold",
	TokenItalic:        "italic",
	TokenStrikethrough: "strikethrough",
	TokenUnderline:     "underline",
	TokenCode:          "code",
	TokenPlaceholder:   "placeholder",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "unknown"
}

func textToken(s string) Token {
	return Token{Kind: TokenText, Content: s}
}

package chipmd

import "strings"

// ParseInline tokenizes a single inline run. Placeholders are numbered from
// zero; Render threads one counter through every run of a document instead.
func ParseInline(text string) []Token {
	tokens, _ := parseInline(text, 0)
	return tokens
}

// parseInline scans text left to right and returns its tokens together with
// the next unused placeholder index.
func parseInline(text string, next int) ([]Token, int) {
	var tokens []Token
	pos := 0
	for pos < len(text) {
		if strings.HasPrefix(text[pos:], sentinelString) {
			tokens = append(tokens, Token{Kind: TokenPlaceholder, Index: next})
			next++
			pos += len(sentinelString)
			continue
		}
		if kind, ok := delimiterKind(text[pos]); ok {
			if end := closingDelimiter(text, pos); end > 0 {
				tokens = append(tokens, Token{Kind: kind, Content: text[pos+1 : end]})
				pos = end + 1
				continue
			}
			// Unmatched delimiters are literal, one byte at a time.
			tokens = append(tokens, textToken(text[pos:pos+1]))
			pos++
			continue
		}
		end := nextSpecial(text, pos)
		tokens = append(tokens, textToken(text[pos:end]))
		pos = end
	}
	return tokens, next
}

func delimiterKind(b byte) (TokenKind, bool) {
	switch b {
	case '`':
		return TokenCode, true
	case '*':
		return TokenBold, true
	case '/':
		return TokenItalic, true
	case '~':
		return TokenStrikethrough, true
	case '_':
		return TokenUnderline, true
	}
	return TokenText, false
}

// closingDelimiter returns the offset of the delimiter closing the one at
// pos, or -1. The interior must be non-empty and must not contain a
// sentinel, so a styled span can never swallow a placeholder.
func closingDelimiter(text string, pos int) int {
	i := strings.IndexByte(text[pos+1:], text[pos])
	if i <= 0 {
		return -1
	}
	if strings.Contains(text[pos+1:pos+1+i], sentinelString) {
		return -1
	}
	return pos + 1 + i
}

// nextSpecial returns the offset of the first delimiter or sentinel at or
// after pos, or len(text).
func nextSpecial(text string, pos int) int {
	for i := pos; i < len(text); i++ {
		if _, ok := delimiterKind(text[i]); ok {
			return i
		}
		if text[i] == sentinelString[0] && strings.HasPrefix(text[i:], sentinelString) {
			return i
		}
	}
	return len(text)
}

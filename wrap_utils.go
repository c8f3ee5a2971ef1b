package chipmd

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

var spaceString = strings.Repeat(" ", 256)

func spaces(count int) string {
	if count <= 0 {
		return ""
	}
	if count <= len(spaceString) {
		return spaceString[:count]
	}
	return strings.Repeat(" ", count)
}

// wrapHanging wraps text to width after a first-line prefix of
// prefixWidth columns and indents continuation lines to match.
func wrapHanging(text string, width, prefixWidth int, softWrap bool) string {
	limit := width - prefixWidth
	if width <= 0 || limit <= 0 {
		return text
	}
	wrapped := wordwrap.String(text, limit)
	if softWrap {
		wrapped = wrap.String(wrapped, limit)
	}
	if prefixWidth == 0 {
		return wrapped
	}
	return strings.ReplaceAll(wrapped, "\n", "\n"+spaces(prefixWidth))
}

func truncateWithEllipsis(text string, limit int) string {
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	if limit == 1 {
		return "…"
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + "…"
}

func fitURL(url string, limit int) string {
	if limit <= 0 || ansi.PrintableRuneWidth(url) <= limit {
		return url
	}
	if idx := strings.Index(url, "://"); idx != -1 {
		trimmed := url[idx+3:]
		if ansi.PrintableRuneWidth(trimmed) <= limit {
			return trimmed
		}
	}
	return truncateWithEllipsis(url, limit)
}

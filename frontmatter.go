package chipmd

import "bytes"

// SplitFrontMatter separates a leading front-matter block from src. The
// block opens with a "---" (YAML) or ";;;" (JSON) line whose next line looks
// like metadata, and closes with the same delimiter. meta excludes both
// delimiter lines. When there is no complete block, ok is false and body is
// src unchanged.
func SplitFrontMatter(src []byte) (meta, body []byte, ok bool) {
	openLine, openNext := nextLine(src, 0)
	delim, isFrontMatter := parseOpeningFrontMatterDelimiter(openLine)
	if !isFrontMatter || openNext >= len(src) {
		return nil, src, false
	}
	secondLine, _ := nextLine(src, openNext)
	if !frontMatterMetadataLikely(secondLine) {
		return nil, src, false
	}
	closeStart, closeNext, found := findClosingFrontMatterDelimiter(src, openNext, delim)
	if !found {
		return nil, src, false
	}
	return src[openNext:closeStart], src[closeNext:], true
}

// nextLine returns the line starting at start without its terminator, and
// the offset of the following line.
func nextLine(src []byte, start int) ([]byte, int) {
	if start >= len(src) {
		return nil, len(src)
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src)
	}
	lineEnd := start + i
	return trimCR(src[start:lineEnd]), lineEnd + 1
}

func parseOpeningFrontMatterDelimiter(line []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(trimBOM(line))
	switch {
	case bytes.Equal(trimmed, []byte("---")):
		return []byte("---"), true
	case bytes.Equal(trimmed, []byte(";;;")):
		return []byte(";;;"), true
	default:
		return nil, false
	}
}

func frontMatterMetadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("[")) {
		return true
	}
	return bytes.Contains(trimmed, []byte(":"))
}

// findClosingFrontMatterDelimiter returns the start and end offsets of the
// closing delimiter line.
func findClosingFrontMatterDelimiter(src []byte, start int, delim []byte) (int, int, bool) {
	for idx := start; idx < len(src); {
		line, next := nextLine(src, idx)
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return idx, next, true
		}
		idx = next
	}
	return 0, 0, false
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}

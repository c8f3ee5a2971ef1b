package chipmd

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
	// ErrSentinelInSegment reports a segment that already contains the
	// placeholder sentinel. Rendering such input yields extra insertion
	// points; callers decide whether that is acceptable.
	ErrSentinelInSegment = errors.New("segment contains placeholder sentinel")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ValidateInput returns an error if the input is not valid UTF-8 or appears binary.
func ValidateInput(src []byte) error {
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	var total, control int
	for _, b := range src {
		total++
		if b == 0x00 {
			return ErrBinaryInput
		}
		if isControlByte(b) {
			control++
		}
	}
	if total >= minBinarySample && control*100 >= total*maxControlPct {
		return ErrBinaryInput
	}
	return nil
}

// ValidateSegments returns ErrSentinelInSegment if any segment contains
// Sentinel. It only reports the collision; PrepareText and Render do not
// escape or reject such input.
func ValidateSegments(segments []string) error {
	for _, s := range segments {
		if strings.ContainsRune(s, Sentinel) {
			return ErrSentinelInSegment
		}
	}
	return nil
}

// SanitizeInput drops invalid UTF-8 and control runes other than newline,
// carriage return and tab.
func SanitizeInput(src []byte) []byte {
	dst := make([]byte, 0, len(src))
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		if isControlRune(r) {
			i += size
			continue
		}
		dst = append(dst, src[i:i+size]...)
		i += size
	}
	return dst
}

func isControlByte(b byte) bool {
	if b < 0x09 {
		return true
	}
	if b > 0x0D && b < 0x20 {
		return true
	}
	if b == 0x7F {
		return true
	}
	return false
}

func isControlRune(r rune) bool {
	if r == '\n' || r == '\r' || r == '\t' {
		return false
	}
	if r < 0x20 || r == 0x7F {
		return true
	}
	return false
}

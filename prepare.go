package chipmd

import "strings"

// Sentinel marks a splice point between two segments. It is a private-use
// rune and is assumed never to occur in message text.
const Sentinel rune = '\uE000'

const sentinelString = string(Sentinel)

// PrepareText joins segments with one Sentinel between each adjacent pair.
// Empty segments are kept, so adjacent sentinels are possible.
func PrepareText(segments []string) string {
	switch len(segments) {
	case 0:
		return ""
	case 1:
		return segments[0]
	}
	return strings.Join(segments, sentinelString)
}

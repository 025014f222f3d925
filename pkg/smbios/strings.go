package smbios

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"unicode/utf8"
)

// parseStrings extracts the NUL-terminated strings in buf[start:end].
// A NUL at the scan position closes the pool (an empty pool starts with
// its terminator). A final string cut off by the end of the span is kept.
func parseStrings(buf []byte, start, end int) []string {
	if start < 0 {
		start = 0
	}
	if end > len(buf) {
		end = len(buf)
	}

	var strings []string
	cur := start
	for cur < end {
		idx := bytes.IndexByte(buf[cur:end], 0)
		if idx == 0 {
			break
		}
		if idx < 0 {
			// Truncated pool: no terminator before the span ends.
			strings = append(strings, decodeString(buf[cur:end]))
			break
		}
		strings = append(strings, decodeString(buf[cur:cur+idx]))
		cur += idx + 1
	}
	return strings
}

// decodeString renders string bytes as text, falling back to hex when the
// bytes are not valid UTF-8. Decoding never fails.
func decodeString(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return hex.EncodeToString(b)
}

// ResolveString looks up a 1-based string reference from a formatted
// field. Index 0 is the "no string" sentinel, not a lookup failure. An
// index past the pool yields a diagnostic placeholder; ResolveString
// never panics or indexes out of bounds.
func ResolveString(strings []string, index int) string {
	if index == 0 {
		return "None"
	}
	if index > 0 && index <= len(strings) {
		return strings[index-1]
	}
	return fmt.Sprintf("<Bad String Index: %d>", index)
}

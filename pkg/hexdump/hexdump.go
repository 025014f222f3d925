// Package hexdump renders byte buffers as offset/hex/ASCII rows for raw
// table display.
package hexdump

import (
	"fmt"
	"strings"
)

// BytesPerRow is the number of bytes rendered per output row.
const BytesPerRow = 16

// Dump formats data as rows of "OFFSET  HEX  ASCII", 16 bytes per row.
// Non-printable bytes render as '.' in the ASCII column.
func Dump(data []byte) string {
	var sb strings.Builder
	for i := 0; i < len(data); i += BytesPerRow {
		end := i + BytesPerRow
		if end > len(data) {
			end = len(data)
		}
		chunk := data[i:end]

		hexParts := make([]string, len(chunk))
		ascii := make([]byte, len(chunk))
		for j, b := range chunk {
			hexParts[j] = fmt.Sprintf("%02X", b)
			if b >= 0x20 && b < 0x7F {
				ascii[j] = b
			} else {
				ascii[j] = '.'
			}
		}

		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%04X  %-*s  %s", i, BytesPerRow*3-1, strings.Join(hexParts, " "), ascii)
	}
	return sb.String()
}

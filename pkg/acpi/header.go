// Package acpi decodes the fixed 36-byte ACPI system description header
// that every ACPI table starts with.
package acpi

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// HeaderSize is the size of the system description header in bytes.
const HeaderSize = 36

// ErrTooShort reports a buffer too small to hold the fixed header. It is
// scoped to the single ParseHeader call; callers decide how to present it.
var ErrTooShort = errors.New("buffer too short for ACPI table header")

// Header is the decoded system description header. Values are immutable
// once decoded; text tags are cleaned best-effort and never fail.
type Header struct {
	Signature       string // 4-character table signature, e.g. "FACP"
	Length          uint32 // total table length, header included
	Revision        uint8
	Checksum        uint8
	OEMID           string // 6-character OEM identifier
	OEMTableID      string // 8-character OEM table identifier
	OEMRevision     uint32
	CreatorID       string // 4-character creator identifier
	CreatorRevision uint32
}

// ParseHeader decodes the fixed header at the start of buf. Layout
// (little-endian, offsets in bytes):
//
//	signature@0(4) length@4(u32) revision@8(u8) checksum@9(u8)
//	oemId@10(6) oemTableId@16(8) oemRevision@24(u32)
//	creatorId@28(4) creatorRevision@32(u32)
func ParseHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, fmt.Errorf("%w: need %d bytes, have %d", ErrTooShort, HeaderSize, len(buf))
	}
	return Header{
		Signature:       cleanTag(buf[0:4]),
		Length:          binary.LittleEndian.Uint32(buf[4:8]),
		Revision:        buf[8],
		Checksum:        buf[9],
		OEMID:           cleanTag(buf[10:16]),
		OEMTableID:      cleanTag(buf[16:24]),
		OEMRevision:     binary.LittleEndian.Uint32(buf[24:28]),
		CreatorID:       cleanTag(buf[28:32]),
		CreatorRevision: binary.LittleEndian.Uint32(buf[32:36]),
	}, nil
}

// cleanTag renders a fixed-width tag field as text. Bytes outside the
// printable ASCII range are dropped and trailing padding trimmed; tag
// decoding never fails, firmware vendors put all sorts of junk here.
func cleanTag(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		if c >= 0x20 && c < 0x7F {
			sb.WriteByte(c)
		}
	}
	return strings.TrimSpace(sb.String())
}

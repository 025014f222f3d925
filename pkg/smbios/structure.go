package smbios

import "encoding/binary"

// HeaderSize is the size of the fixed structure header in bytes.
const HeaderSize = 4

// minStructureLength is the smallest valid declared length. The declared
// length includes the header itself, so anything below 4 is malformed.
const minStructureLength = 4

// StructureHeader is the fixed 4-byte header of one SMBIOS structure.
type StructureHeader struct {
	Type   uint8  // structure type code
	Length uint8  // formatted section size in bytes, header included
	Handle uint16 // opaque identifier
}

// Structure is one structure produced by a table walk: its header, the
// position of its formatted section in the table buffer, and the strings
// from its unformatted section.
type Structure struct {
	Header StructureHeader

	// Offset is the start of the formatted section in the table buffer.
	Offset int

	// Strings holds the unformatted section in order. Formatted fields
	// reference entries by 1-based index; see ResolveString.
	Strings []string

	// NextOffset is where the following structure starts (past the
	// double-NUL terminator), or the buffer length if the table ended.
	NextOffset int
}

// parseStructureHeader decodes the 4-byte header at offset. The second
// return value is false if the buffer does not hold 4 bytes there.
func parseStructureHeader(buf []byte, offset int) (StructureHeader, bool) {
	if offset < 0 || offset+HeaderSize > len(buf) {
		return StructureHeader{}, false
	}
	return StructureHeader{
		Type:   buf[offset],
		Length: buf[offset+1],
		Handle: binary.LittleEndian.Uint16(buf[offset+2 : offset+4]),
	}, true
}

// typeNames maps the structure types this package decodes to their
// SMBIOS names. Presentation only; decoding dispatches via the registry
// in decode.go.
var typeNames = map[uint8]string{
	0:  "BIOS Information",
	1:  "System Information",
	2:  "Baseboard Information",
	3:  "Chassis Information",
	4:  "Processor Information",
	17: "Memory Device",
}

// TypeName returns the human name for a structure type code, and whether
// the type is one this package knows.
func TypeName(typeCode uint8) (string, bool) {
	name, ok := typeNames[typeCode]
	return name, ok
}

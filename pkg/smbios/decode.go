package smbios

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// DecodedField is one decoded (label, value) pair. A structure's decoded
// output is an ordered slice of these, in declaration order.
type DecodedField struct {
	Label string
	Value string
}

// fieldDecoder decodes the formatted section of one structure type.
// Decoders are total: a field that cannot be read becomes a diagnostic
// entry in the result, never an error or a panic.
type fieldDecoder func(buf []byte, offset, length int, strings []string) []DecodedField

// decoders is the closed registry mapping structure type codes to their
// decoders. Built once; adding a type means adding an entry here.
var decoders = map[uint8]fieldDecoder{
	0:  decodeBIOSInfo,
	1:  decodeSystemInfo,
	2:  decodeBaseboard,
	3:  decodeChassis,
	4:  decodeProcessor,
	17: decodeMemoryDevice,
}

// DecodeFields decodes the formatted section of the structure of the given
// type at buf[offset:offset+length], resolving string references against
// strings. It returns nil when no decoder is registered for the type; the
// caller then falls back to a raw length plus string-pool display.
func DecodeFields(typeCode uint8, buf []byte, offset, length int, strings []string) []DecodedField {
	decode, ok := decoders[typeCode]
	if !ok {
		return nil
	}
	return decode(buf, offset, length, strings)
}

// fieldReader reads individual fields out of one formatted section. Every
// read is guarded twice: the field must lie inside the declared length
// (shorter structure revisions omit trailing fields) and inside the
// buffer. A failed read trips the reader; callers report it as a single
// diagnostic entry and stop decoding further fields, mirroring how a
// partially present structure is handled everywhere else: keep what
// decoded, never abort the walk.
type fieldReader struct {
	buf    []byte
	offset int
	length int
	failed bool
}

// byteAt reads the u8 field at the given offset within the formatted
// section.
func (r *fieldReader) byteAt(rel int) (uint8, bool) {
	if r.failed || rel >= r.length || r.offset+rel >= len(r.buf) {
		r.failed = true
		return 0, false
	}
	return r.buf[r.offset+rel], true
}

// wordAt reads the little-endian u16 field at the given offset within the
// formatted section.
func (r *fieldReader) wordAt(rel int) (uint16, bool) {
	if r.failed || rel+2 > r.length || r.offset+rel+2 > len(r.buf) {
		r.failed = true
		return 0, false
	}
	return binary.LittleEndian.Uint16(r.buf[r.offset+rel : r.offset+rel+2]), true
}

// has reports whether the field at the given offset is present per the
// declared length. Used for optional trailing fields, where absence is
// normal and silently skipped rather than diagnosed.
func (r *fieldReader) has(rel int) bool {
	return rel < r.length && r.offset+rel < len(r.buf)
}

func parseError(fields []DecodedField) []DecodedField {
	return append(fields, DecodedField{"Parse Error", "field data out of range"})
}

// Type 0: BIOS Information.
//
// 0x04 vendor, 0x05 version, 0x08 release date (string indexes),
// 0x09 ROM size byte: size = (byte+1) * 64 KB. The 0xFF sentinel points
// at the extended ROM size field, which this decoder does not handle.
func decodeBIOSInfo(buf []byte, offset, length int, strings []string) []DecodedField {
	r := &fieldReader{buf: buf, offset: offset, length: length}
	var fields []DecodedField

	vendor, ok := r.byteAt(0x04)
	if !ok {
		return parseError(fields)
	}
	version, ok := r.byteAt(0x05)
	if !ok {
		return parseError(fields)
	}
	date, ok := r.byteAt(0x08)
	if !ok {
		return parseError(fields)
	}
	romSize, ok := r.byteAt(0x09)
	if !ok {
		return parseError(fields)
	}

	fields = append(fields,
		DecodedField{"Vendor", ResolveString(strings, int(vendor))},
		DecodedField{"Version", ResolveString(strings, int(version))},
		DecodedField{"Release Date", ResolveString(strings, int(date))},
	)
	if romSize == 0xFF {
		fields = append(fields, DecodedField{"ROM Size", "Extended ROM size (not supported)"})
	} else {
		fields = append(fields, DecodedField{"ROM Size", fmt.Sprintf("%d KB", (int(romSize)+1)*64)})
	}
	return fields
}

// Type 1: System Information.
//
// 0x04 manufacturer, 0x05 product, 0x06 version, 0x07 serial (string
// indexes); 0x08..0x17 UUID, present only when the declared length
// extends past 0x08.
func decodeSystemInfo(buf []byte, offset, length int, strings []string) []DecodedField {
	r := &fieldReader{buf: buf, offset: offset, length: length}
	var fields []DecodedField

	manufacturer, ok := r.byteAt(0x04)
	if !ok {
		return parseError(fields)
	}
	product, ok := r.byteAt(0x05)
	if !ok {
		return parseError(fields)
	}
	version, ok := r.byteAt(0x06)
	if !ok {
		return parseError(fields)
	}
	serial, ok := r.byteAt(0x07)
	if !ok {
		return parseError(fields)
	}

	fields = append(fields,
		DecodedField{"Manufacturer", ResolveString(strings, int(manufacturer))},
		DecodedField{"Product Name", ResolveString(strings, int(product))},
		DecodedField{"Version", ResolveString(strings, int(version))},
		DecodedField{"Serial Number", ResolveString(strings, int(serial))},
	)

	if length > 0x08 {
		end := offset + 0x18
		if end > len(buf) {
			end = len(buf)
		}
		fields = append(fields, DecodedField{"UUID", formatUUID(buf[offset+0x08 : end])})
	}
	return fields
}

// formatUUID renders the 16 UUID bytes of a System Information structure.
// The first three groups are little-endian and the last two big-endian,
// the GUID byte order Windows displays for this field. That convention
// predates the SMBIOS 2.6 clarification of the field's byte order and is
// kept as-is for output compatibility with the original tool; anything
// other than exactly 16 bytes falls back to plain hex.
func formatUUID(b []byte) string {
	if len(b) != 16 {
		return hex.EncodeToString(b)
	}
	return fmt.Sprintf("%02X%02X%02X%02X-%02X%02X-%02X%02X-%02X%02X-%02X%02X%02X%02X%02X%02X",
		b[3], b[2], b[1], b[0],
		b[5], b[4],
		b[7], b[6],
		b[8], b[9],
		b[10], b[11], b[12], b[13], b[14], b[15])
}

// Type 2: Baseboard Information.
//
// 0x04 manufacturer, 0x05 product, 0x06 version, 0x07 serial; 0x08 asset
// tag when present (index 0, "no string", when the structure is too short).
func decodeBaseboard(buf []byte, offset, length int, strings []string) []DecodedField {
	r := &fieldReader{buf: buf, offset: offset, length: length}
	var fields []DecodedField

	manufacturer, ok := r.byteAt(0x04)
	if !ok {
		return parseError(fields)
	}
	product, ok := r.byteAt(0x05)
	if !ok {
		return parseError(fields)
	}
	version, ok := r.byteAt(0x06)
	if !ok {
		return parseError(fields)
	}
	serial, ok := r.byteAt(0x07)
	if !ok {
		return parseError(fields)
	}
	assetTag := uint8(0)
	if r.has(0x08) {
		assetTag, _ = r.byteAt(0x08)
	}

	return append(fields,
		DecodedField{"Manufacturer", ResolveString(strings, int(manufacturer))},
		DecodedField{"Product Name", ResolveString(strings, int(product))},
		DecodedField{"Version", ResolveString(strings, int(version))},
		DecodedField{"Serial Number", ResolveString(strings, int(serial))},
		DecodedField{"Asset Tag", ResolveString(strings, int(assetTag))},
	)
}

// Type 3: Chassis Information.
//
// 0x04 manufacturer, 0x06 version, 0x07 serial (string indexes); 0x05 is
// the chassis type code, reported numeric.
func decodeChassis(buf []byte, offset, length int, strings []string) []DecodedField {
	r := &fieldReader{buf: buf, offset: offset, length: length}
	var fields []DecodedField

	manufacturer, ok := r.byteAt(0x04)
	if !ok {
		return parseError(fields)
	}
	typeCode, ok := r.byteAt(0x05)
	if !ok {
		return parseError(fields)
	}
	version, ok := r.byteAt(0x06)
	if !ok {
		return parseError(fields)
	}
	serial, ok := r.byteAt(0x07)
	if !ok {
		return parseError(fields)
	}

	return append(fields,
		DecodedField{"Manufacturer", ResolveString(strings, int(manufacturer))},
		DecodedField{"Type", fmt.Sprintf("0x%02X", typeCode)},
		DecodedField{"Version", ResolveString(strings, int(version))},
		DecodedField{"Serial Number", ResolveString(strings, int(serial))},
	)
}

// Type 4: Processor Information.
//
// 0x04 socket designator, 0x07 manufacturer, 0x10 version (string
// indexes); 0x05 processor type code, reported numeric; 0x23 core count
// and 0x25 thread count, each present only when the declared length
// reaches past it.
func decodeProcessor(buf []byte, offset, length int, strings []string) []DecodedField {
	r := &fieldReader{buf: buf, offset: offset, length: length}
	var fields []DecodedField

	socket, ok := r.byteAt(0x04)
	if !ok {
		return parseError(fields)
	}
	typeCode, ok := r.byteAt(0x05)
	if !ok {
		return parseError(fields)
	}
	manufacturer, ok := r.byteAt(0x07)
	if !ok {
		return parseError(fields)
	}
	version, ok := r.byteAt(0x10)
	if !ok {
		return parseError(fields)
	}

	fields = append(fields,
		DecodedField{"Socket Designator", ResolveString(strings, int(socket))},
		DecodedField{"Processor Type", fmt.Sprintf("0x%02X", typeCode)},
		DecodedField{"Manufacturer", ResolveString(strings, int(manufacturer))},
		DecodedField{"Version", ResolveString(strings, int(version))},
	)

	if r.has(0x23) {
		coreCount, _ := r.byteAt(0x23)
		fields = append(fields, DecodedField{"Core Count", fmt.Sprintf("%d", coreCount)})
	}
	if r.has(0x25) {
		threadCount, _ := r.byteAt(0x25)
		fields = append(fields, DecodedField{"Thread Count", fmt.Sprintf("%d", threadCount)})
	}
	return fields
}

// Type 17: Memory Device.
func decodeMemoryDevice(buf []byte, offset, length int, strings []string) []DecodedField {
	r := &fieldReader{buf: buf, offset: offset, length: length}
	var fields []DecodedField

	totalWidth, ok := r.wordAt(0x08)
	if !ok {
		return parseError(fields)
	}
	dataWidth, ok := r.wordAt(0x0A)
	if !ok {
		return parseError(fields)
	}
	size, ok := r.wordAt(0x0C)
	if !ok {
		return parseError(fields)
	}
	deviceLocator, ok := r.byteAt(0x10)
	if !ok {
		return parseError(fields)
	}
	bankLocator, ok := r.byteAt(0x11)
	if !ok {
		return parseError(fields)
	}
	speed, ok := r.wordAt(0x15)
	if !ok {
		return parseError(fields)
	}
	manufacturer, ok := r.byteAt(0x17)
	if !ok {
		return parseError(fields)
	}
	serial, ok := r.byteAt(0x18)
	if !ok {
		return parseError(fields)
	}
	assetTag, ok := r.byteAt(0x19)
	if !ok {
		return parseError(fields)
	}
	part, ok := r.byteAt(0x1A)
	if !ok {
		return parseError(fields)
	}

	fields = append(fields,
		DecodedField{"Device Locator", ResolveString(strings, int(deviceLocator))},
		DecodedField{"Bank Locator", ResolveString(strings, int(bankLocator))},
		DecodedField{"Size", formatMemorySize(size)},
	)

	if speed != 0 {
		fields = append(fields, DecodedField{"Speed", fmt.Sprintf("%d MT/s", speed)})
	} else {
		fields = append(fields, DecodedField{"Speed", "Unknown"})
	}

	return append(fields,
		DecodedField{"Manufacturer", ResolveString(strings, int(manufacturer))},
		DecodedField{"Serial Number", ResolveString(strings, int(serial))},
		DecodedField{"Asset Tag", ResolveString(strings, int(assetTag))},
		DecodedField{"Part Number", ResolveString(strings, int(part))},
		DecodedField{"Total Width", fmt.Sprintf("%d bits", totalWidth)},
		DecodedField{"Data Width", fmt.Sprintf("%d bits", dataWidth)},
	)
}

// formatMemorySize renders the type 17 Size word. 0xFFFF means the size is
// unknown or lives in the extended size field; 0 means the socket is
// empty. Bit 15 set makes the low 15 bits a count of kilobytes, otherwise
// the value is megabytes.
func formatMemorySize(size uint16) string {
	switch {
	case size == 0xFFFF:
		return "Unknown / Extended"
	case size == 0:
		return "No Module Installed"
	case size&0x8000 != 0:
		return fmt.Sprintf("%d KB", size&0x7FFF)
	default:
		return fmt.Sprintf("%d MB", size)
	}
}

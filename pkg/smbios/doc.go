// Package smbios decodes SMBIOS/DMI structure tables from raw byte buffers.
//
// An SMBIOS table is a sequence of variable-length structures. Each structure
// starts with a fixed 4-byte header:
//
//	[Type(1)][Length(1)][Handle(2)]
//
// Fields:
//   - Type: structure type code (0 = BIOS Information, 1 = System Information, ...)
//   - Length: size of the formatted section in bytes, including the header;
//     values below 4 are invalid and end the table walk
//   - Handle: opaque 16-bit identifier (little-endian)
//
// The formatted section spans [offset, offset+Length). It is followed by the
// unformatted section: zero or more NUL-terminated strings, closed by two
// consecutive NUL bytes. Fields in the formatted section reference these
// strings by 1-based index; index 0 means "no string".
//
// On Windows the table as returned by GetSystemFirmwareTable is prefixed by
// an 8-byte RawSMBIOSData header; ParseEntryHeader recognizes it. Raw table
// dumps (for example Linux /sys/firmware/dmi/tables/DMI) carry no such
// prefix and start directly at the first structure.
//
// # Error Handling
//
// The decoder never panics or terminates the process on malformed input.
// Buffers come from firmware and are not trusted: a truncated final
// structure is still produced with whatever string pool exists, a declared
// length below 4 ends the walk while keeping every structure already
// produced, and a field that cannot be decoded becomes a diagnostic entry
// in the decoded output rather than an error.
//
// # Thread Safety
//
// Decoding is pure computation over a caller-owned, read-only buffer; the
// package holds no global mutable state. Independent buffers may be decoded
// concurrently. A single Walker is not safe for concurrent stepping.
package smbios

package smbios

import "encoding/binary"

// EntryHeaderSize is the size of the Windows RawSMBIOSData prefix.
const EntryHeaderSize = 8

// EntryHeader is the RawSMBIOSData header that GetSystemFirmwareTable
// prepends to the structure table on Windows:
//
//	struct RawSMBIOSData {
//	  BYTE  Used20CallingMethod;
//	  BYTE  SMBIOSMajorVersion;
//	  BYTE  SMBIOSMinorVersion;
//	  BYTE  DmiRevision;
//	  DWORD Length;
//	  BYTE  SMBIOSTableData[];
//	};
type EntryHeader struct {
	Used20CallingMethod uint8
	MajorVersion        uint8
	MinorVersion        uint8
	DMIRevision         uint8
	TableLength         uint32 // declared length of the structure table
}

// ParseEntryHeader decodes the optional RawSMBIOSData prefix. On success it
// returns the header and the offset where the structure table begins (8).
// A buffer too short to hold the prefix yields (nil, 0): the table is taken
// to start at offset 0. Absence of the wrapper is not an error.
func ParseEntryHeader(buf []byte) (*EntryHeader, int) {
	if len(buf) < EntryHeaderSize {
		return nil, 0
	}
	return &EntryHeader{
		Used20CallingMethod: buf[0],
		MajorVersion:        buf[1],
		MinorVersion:        buf[2],
		DMIRevision:         buf[3],
		TableLength:         binary.LittleEndian.Uint32(buf[4:8]),
	}, EntryHeaderSize
}

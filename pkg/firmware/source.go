// Package firmware acquires raw firmware table buffers for the decoders.
//
// A TableSource abstracts where tables come from: the live system (sysfs
// on Linux) or a directory of saved dumps. Decoding itself never does I/O;
// sources hand the decoders caller-owned byte buffers and nothing more.
package firmware

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Provider tags understood by sources, matching the firmware table
// provider signatures of the Windows firmware API.
const (
	ProviderACPI   = "ACPI"
	ProviderSMBIOS = "RSMB"
)

// ErrNotFound reports that a source has no table for the requested
// provider/id pair.
var ErrNotFound = errors.New("firmware table not found")

// TableSource enumerates and fetches raw firmware tables.
//
// EnumTables returns the ordered table identifiers available for a
// provider; an access failure yields an empty list, not an error, since a
// locked-down environment is an expected condition. GetTable returns the
// raw bytes of one table; the returned buffer is owned by the caller.
type TableSource interface {
	EnumTables(provider string) ([]string, error)
	GetTable(provider, id string) ([]byte, error)
}

// ProviderSignature converts a 4-character provider tag to the numeric
// signature the Windows firmware API expects. The value is the big-endian
// reading of the tag: "ACPI" is 0x41435049. The little-endian reading
// makes GetSystemFirmwareTable fail with ERROR_INVALID_FUNCTION.
func ProviderSignature(tag string) (uint32, error) {
	if len(tag) != 4 {
		return 0, fmt.Errorf("provider signature must be 4 characters, got %q", tag)
	}
	return binary.BigEndian.Uint32([]byte(tag)), nil
}

package api

import "github.com/ssargent/fwtab/pkg/smbios"

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port   int
	Bind   string
	APIKey string // when empty, authentication is disabled
	Raw    bool   // skip the RawSMBIOSData wrapper probe (sysfs-style dumps)
}

// ACPIHeaderResponse is the decoded system description header plus the
// raw bytes of one ACPI table.
type ACPIHeaderResponse struct {
	Signature       string `json:"signature"`
	Length          uint32 `json:"length"`
	Revision        uint8  `json:"revision"`
	Checksum        uint8  `json:"checksum"`
	OEMID           string `json:"oem_id"`
	OEMTableID      string `json:"oem_table_id"`
	OEMRevision     uint32 `json:"oem_revision"`
	CreatorID       string `json:"creator_id"`
	CreatorRevision uint32 `json:"creator_revision"`
	TableSize       int    `json:"table_size"`
	Raw             []byte `json:"raw"` // base64 in JSON
}

// StructureResponse is one decoded SMBIOS structure.
type StructureResponse struct {
	Type     uint8           `json:"type"`
	TypeName string          `json:"type_name,omitempty"`
	Handle   uint16          `json:"handle"`
	Length   uint8           `json:"length"`
	Fields   []FieldResponse `json:"fields,omitempty"`
	Strings  []string        `json:"strings,omitempty"`
}

// FieldResponse is one decoded (label, value) pair.
type FieldResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SMBIOSResponse is the decoded structure table, with the wrapper version
// fields when the dump carried a RawSMBIOSData header.
type SMBIOSResponse struct {
	MajorVersion uint8               `json:"major_version,omitempty"`
	MinorVersion uint8               `json:"minor_version,omitempty"`
	DMIRevision  uint8               `json:"dmi_revision,omitempty"`
	Structures   []StructureResponse `json:"structures"`
}

func fieldResponses(fields []smbios.DecodedField) []FieldResponse {
	if len(fields) == 0 {
		return nil
	}
	out := make([]FieldResponse, len(fields))
	for i, f := range fields {
		out[i] = FieldResponse{Label: f.Label, Value: f.Value}
	}
	return out
}

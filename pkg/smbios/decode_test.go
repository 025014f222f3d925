package smbios

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeStructure runs one synthetic structure through the walker and the
// field decoder registry, the way callers consume the package.
func decodeStructure(t *testing.T, typ uint8, body []byte, strs []string) []DecodedField {
	t.Helper()
	table := structureBytes(typ, 0x0001, body, strs)
	s, ok := NewWalker(table, 0).Next()
	require.True(t, ok)
	return DecodeFields(typ, table, s.Offset, int(s.Header.Length), s.Strings)
}

func fieldValue(t *testing.T, fields []DecodedField, label string) string {
	t.Helper()
	for _, f := range fields {
		if f.Label == label {
			return f.Value
		}
	}
	t.Fatalf("no field %q in %v", label, fields)
	return ""
}

func TestDecodeFieldsUnknownType(t *testing.T) {
	assert.Nil(t, DecodeFields(99, []byte{99, 4, 0, 0, 0, 0}, 0, 4, nil))
	assert.Nil(t, DecodeFields(5, nil, 0, 0, nil))
}

func TestBIOSInfo(t *testing.T) {
	// rel: 0x04 vendor, 0x05 version, 0x08 release date, 0x09 ROM size
	body := []byte{1, 2, 0, 0, 3, 0x07}
	strs := []string{"American Megatrends", "F.42", "01/01/2020"}

	fields := decodeStructure(t, 0, body, strs)
	assert.Equal(t, []DecodedField{
		{"Vendor", "American Megatrends"},
		{"Version", "F.42"},
		{"Release Date", "01/01/2020"},
		{"ROM Size", "512 KB"},
	}, fields)
}

func TestBIOSInfoROMSize(t *testing.T) {
	tests := []struct {
		romByte uint8
		want    string
	}{
		{0x00, "64 KB"},
		{0x07, "512 KB"},
		{0x1F, "2048 KB"},
	}
	for _, tt := range tests {
		body := []byte{0, 0, 0, 0, 0, tt.romByte}
		fields := decodeStructure(t, 0, body, nil)
		assert.Equal(t, tt.want, fieldValue(t, fields, "ROM Size"))
	}
}

func TestBIOSInfoExtendedROMSize(t *testing.T) {
	body := []byte{0, 0, 0, 0, 0, 0xFF}
	fields := decodeStructure(t, 0, body, nil)
	assert.Equal(t, "Extended ROM size (not supported)", fieldValue(t, fields, "ROM Size"))
}

func TestSystemInfoUUID(t *testing.T) {
	// UUID 00112233-4455-6677-8899-AABBCCDDEEFF in the mixed-endian wire
	// order: first three groups little-endian, last two as stored.
	uuid := []byte{
		0x33, 0x22, 0x11, 0x00,
		0x55, 0x44,
		0x77, 0x66,
		0x88, 0x99, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF,
	}
	body := append([]byte{1, 2, 0, 3}, uuid...)
	strs := []string{"LENOVO", "20042", "2677240001087"}

	fields := decodeStructure(t, 1, body, strs)
	assert.Equal(t, "LENOVO", fieldValue(t, fields, "Manufacturer"))
	assert.Equal(t, "20042", fieldValue(t, fields, "Product Name"))
	assert.Equal(t, "None", fieldValue(t, fields, "Version"))
	assert.Equal(t, "2677240001087", fieldValue(t, fields, "Serial Number"))
	assert.Equal(t, "00112233-4455-6677-8899-AABBCCDDEEFF", fieldValue(t, fields, "UUID"))
}

func TestSystemInfoShortRevisionOmitsUUID(t *testing.T) {
	// Declared length 8: the UUID field is absent, not an error.
	body := []byte{1, 1, 1, 1}
	fields := decodeStructure(t, 1, body, []string{"X"})
	require.Len(t, fields, 4)
	for _, f := range fields {
		assert.NotEqual(t, "UUID", f.Label)
	}
}

func TestBaseboard(t *testing.T) {
	t.Run("with asset tag", func(t *testing.T) {
		body := []byte{1, 2, 3, 4, 5}
		strs := []string{"ASUSTeK", "PRIME B550", "Rev X.0x", "123", "Case-1"}
		fields := decodeStructure(t, 2, body, strs)
		assert.Equal(t, "Case-1", fieldValue(t, fields, "Asset Tag"))
	})

	t.Run("short revision defaults asset tag to no string", func(t *testing.T) {
		body := []byte{1, 2, 3, 4}
		strs := []string{"ASUSTeK", "PRIME B550", "Rev X.0x", "123"}
		fields := decodeStructure(t, 2, body, strs)
		assert.Equal(t, "None", fieldValue(t, fields, "Asset Tag"))
	})
}

func TestChassisTypeStaysNumeric(t *testing.T) {
	body := []byte{1, 0x0A, 2, 3}
	strs := []string{"LENOVO", "Lenovo G560", "2677240001087"}
	fields := decodeStructure(t, 3, body, strs)
	assert.Equal(t, []DecodedField{
		{"Manufacturer", "LENOVO"},
		{"Type", "0x0A"},
		{"Version", "Lenovo G560"},
		{"Serial Number", "2677240001087"},
	}, fields)
}

func TestProcessor(t *testing.T) {
	// Formatted section out to rel 0x27 so both counts are present.
	body := make([]byte, 0x28-HeaderSize)
	body[0x04-HeaderSize] = 1    // socket designator
	body[0x05-HeaderSize] = 0x03 // processor type code
	body[0x07-HeaderSize] = 2    // manufacturer
	body[0x10-HeaderSize] = 3    // version
	body[0x23-HeaderSize] = 8    // core count
	body[0x25-HeaderSize] = 16   // thread count
	strs := []string{"CPU 1", "GenuineIntel", "Intel(R) Core(TM) i7"}

	fields := decodeStructure(t, 4, body, strs)
	assert.Equal(t, "CPU 1", fieldValue(t, fields, "Socket Designator"))
	assert.Equal(t, "0x03", fieldValue(t, fields, "Processor Type"))
	assert.Equal(t, "GenuineIntel", fieldValue(t, fields, "Manufacturer"))
	assert.Equal(t, "Intel(R) Core(TM) i7", fieldValue(t, fields, "Version"))
	assert.Equal(t, "8", fieldValue(t, fields, "Core Count"))
	assert.Equal(t, "16", fieldValue(t, fields, "Thread Count"))
}

func TestProcessorShortRevisionOmitsCounts(t *testing.T) {
	// Formatted section ends at rel 0x23: neither count is present.
	body := make([]byte, 0x23-HeaderSize)
	body[0] = 1
	fields := decodeStructure(t, 4, body, []string{"CPU 1"})
	for _, f := range fields {
		assert.NotEqual(t, "Core Count", f.Label)
		assert.NotEqual(t, "Thread Count", f.Label)
	}
}

func TestMemoryDevice(t *testing.T) {
	body := make([]byte, 0x1B-HeaderSize)
	put16 := func(rel int, v uint16) {
		body[rel-HeaderSize] = byte(v)
		body[rel-HeaderSize+1] = byte(v >> 8)
	}
	put16(0x08, 72)     // total width
	put16(0x0A, 64)     // data width
	put16(0x0C, 0x0010) // size: 16 MB
	body[0x10-HeaderSize] = 1
	body[0x11-HeaderSize] = 2
	put16(0x15, 3200) // speed
	body[0x17-HeaderSize] = 3
	body[0x18-HeaderSize] = 4
	body[0x19-HeaderSize] = 0
	body[0x1A-HeaderSize] = 5
	strs := []string{"DIMM_A1", "BANK 0", "Samsung", "0xDEAD", "M378A1K43EB2"}

	fields := decodeStructure(t, 17, body, strs)
	assert.Equal(t, []DecodedField{
		{"Device Locator", "DIMM_A1"},
		{"Bank Locator", "BANK 0"},
		{"Size", "16 MB"},
		{"Speed", "3200 MT/s"},
		{"Manufacturer", "Samsung"},
		{"Serial Number", "0xDEAD"},
		{"Asset Tag", "None"},
		{"Part Number", "M378A1K43EB2"},
		{"Total Width", "72 bits"},
		{"Data Width", "64 bits"},
	}, fields)
}

func TestMemorySize(t *testing.T) {
	tests := []struct {
		size uint16
		want string
	}{
		{0x8010, "16 KB"},
		{0x0010, "16 MB"},
		{0xFFFF, "Unknown / Extended"},
		{0x0000, "No Module Installed"},
		{0x7FFF, "32767 MB"},
		{0x8001, "1 KB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatMemorySize(tt.size), "size 0x%04X", tt.size)
	}
}

func TestMemoryDeviceUnknownSpeed(t *testing.T) {
	body := make([]byte, 0x1B-HeaderSize)
	fields := decodeStructure(t, 17, body, nil)
	assert.Equal(t, "Unknown", fieldValue(t, fields, "Speed"))
	assert.Equal(t, "No Module Installed", fieldValue(t, fields, "Size"))
}

func TestDecoderTruncatedRecordDiagnostic(t *testing.T) {
	// Type 17 declaring a full-size formatted section inside a buffer
	// that ends early: a single diagnostic, never a panic.
	buf := []byte{17, 0x1B, 0, 0, 0, 0}
	fields := DecodeFields(17, buf, 0, 0x1B, nil)
	require.Len(t, fields, 1)
	assert.Equal(t, "Parse Error", fields[0].Label)
}

func TestDecoderShortDeclaredLengthDiagnostic(t *testing.T) {
	// Declared length 4 puts every type 0 field outside the formatted
	// section; the decoder reports it instead of reading the string pool.
	table := structureBytes(0, 1, nil, []string{"not a field"})
	fields := DecodeFields(0, table, 0, 4, []string{"not a field"})
	require.Len(t, fields, 1)
	assert.Equal(t, "Parse Error", fields[0].Label)
}

func TestTypeName(t *testing.T) {
	name, ok := TypeName(0)
	assert.True(t, ok)
	assert.Equal(t, "BIOS Information", name)

	name, ok = TypeName(17)
	assert.True(t, ok)
	assert.Equal(t, "Memory Device", name)

	_, ok = TypeName(42)
	assert.False(t, ok)
}

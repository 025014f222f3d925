package smbios

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStrings(t *testing.T) {
	tests := []struct {
		name string
		span []byte
		want []string
	}{
		{
			name: "empty pool starts with terminator",
			span: []byte{0, 0},
			want: nil,
		},
		{
			name: "single string",
			span: []byte("LENOVO\x00\x00"),
			want: []string{"LENOVO"},
		},
		{
			name: "multiple strings",
			span: []byte("LENOVO\x0020042\x00Lenovo G560\x00\x00"),
			want: []string{"LENOVO", "20042", "Lenovo G560"},
		},
		{
			name: "truncated final string kept",
			span: []byte("ABC\x00DE"),
			want: []string{"ABC", "DE"},
		},
		{
			name: "invalid utf8 falls back to hex",
			span: []byte{0xFF, 0xFE, 0x41, 0x00, 0x00},
			want: []string{"fffe41"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseStrings(tt.span, 0, len(tt.span))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStringsSpanBounds(t *testing.T) {
	buf := []byte("AA\x00BB\x00\x00CC")
	// Only the [0, 6) span belongs to the pool.
	assert.Equal(t, []string{"AA", "BB"}, parseStrings(buf, 0, 6))
	// Out-of-range bounds clamp instead of panicking; the pool still
	// closes at its own terminator.
	assert.Equal(t, []string{"AA", "BB"}, parseStrings(buf, 0, len(buf)+10))
	assert.Nil(t, parseStrings(buf, -3, 0))
}

func TestResolveString(t *testing.T) {
	pool := []string{"first", "second"}

	tests := []struct {
		name  string
		pool  []string
		index int
		want  string
	}{
		{"zero is the no-string sentinel", pool, 0, "None"},
		{"zero on empty pool", nil, 0, "None"},
		{"first entry", pool, 1, "first"},
		{"last entry", pool, 2, "second"},
		{"past the pool", pool, 3, "<Bad String Index: 3>"},
		{"far past the pool", pool, 200, "<Bad String Index: 200>"},
		{"negative index", pool, -1, "<Bad String Index: -1>"},
		{"any index on empty pool", nil, 1, "<Bad String Index: 1>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveString(tt.pool, tt.index))
		})
	}
}

package firmware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderSignature(t *testing.T) {
	tests := []struct {
		tag  string
		want uint32
	}{
		{"ACPI", 0x41435049},
		{"RSMB", 0x52534D42},
		{"FIRM", 0x4649524D},
	}
	for _, tt := range tests {
		got, err := ProviderSignature(tt.tag)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "tag %s", tt.tag)
	}
}

func TestProviderSignatureBadLength(t *testing.T) {
	for _, tag := range []string{"", "ACP", "ACPI2"} {
		_, err := ProviderSignature(tag)
		assert.Error(t, err, "tag %q", tag)
	}
}

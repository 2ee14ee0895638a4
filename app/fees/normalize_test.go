package fees

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUTR(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"literal undefined", "undefined", ""},
		{"literal null", "null", ""},
		{"case sensitive guard", "Undefined", "Undefined"},
		{"trims surrounding whitespace", "  ABC 123  ", "ABC 123"},
		{"keeps internal characters", " UTR/2024-08 #1 ", "UTR/2024-08 #1"},
		{"plain reference", "N123456789012", "N123456789012"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeUTR(tt.raw))
		})
	}
}

func TestNormalizeUTRIdempotent(t *testing.T) {
	inputs := []string{
		"", "   ", "undefined", "null", " undefined ", "NULL",
		"  ABC 123  ", "ref with  spaces", "\tpadded\n",
	}
	for _, raw := range inputs {
		once := NormalizeUTR(raw)
		assert.Equal(t, once, NormalizeUTR(once), "normalize must be idempotent for %q", raw)
	}
}

func TestNormalizeCasteCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"sc", "SC"},
		{"SC", "SC"},
		{" St ", "ST"},
		{"obc", "OBC"},
		{"OBC", "OBC"},
		{"general", "Open"},
		{"open", "Open"},
		{"Open", "Open"},
		{"", "Open"},
		{"ews", "Open"}, // unmapped values default to Open
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCasteCategory(tt.raw), "input %q", tt.raw)
	}
}

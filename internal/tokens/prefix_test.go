package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePrefix(t *testing.T) {
	tests := []struct {
		name  string
		brand string
		want  string
	}{
		{"initials of four words", "B&M Dak-Totaal", "bmdt"},
		{"single long word", "Resultaatmakers", "res"},
		{"single short word", "Acme", "ac"},
		{"stop words dropped", "The House of Brands Ltd", "hb"},
		{"initials capped at four", "Alpha Beta Gamma Delta Epsilon", "abgd"},
		{"only stop words kept", "The Company", "tc"},
		{"leading digit falls back to default", "123 Go", DefaultPrefix},
		{"reserved chrome namespace", "SG", DefaultPrefix},
		{"empty name", "", DefaultPrefix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GeneratePrefix(tt.brand)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, `^[a-z][a-z0-9]{1,3}$`, got)
		})
	}
}

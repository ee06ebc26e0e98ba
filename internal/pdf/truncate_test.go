package pdf

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateCutsOnRuneBoundaries(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"ascii under limit", "Widget", 22, "Widget"},
		{"ascii over limit", "A very long product name indeed", 10, "A very lon"},
		{"multibyte over limit", "Café au lait crème brûlée supérieure", 12, "Café au lait"},
		{"cyrillic over limit", "Широкоформатный принтер", 7, "Широкоф"},
		{"cut lands on multibyte rune", "ééééé", 3, "ééé"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := truncate(tc.in, tc.n)
			assert.Equal(t, tc.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

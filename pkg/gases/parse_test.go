package gases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		text string
		want Gas
	}{
		{"Air", Air},
		{"air", Air},
		{"oxygen", Oxygen},
		{"EAN32", EAN32},
		{"ean28", New(0.28, 0)},
		{"36", EAN36},
		{"18/45", New(0.18, 0.45)},
		{" 21/35 ", New(0.21, 0.35)},
		{"0/100", New(0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := Parse(tt.text)
			require.NoError(t, err)
			assert.True(t, tt.want.CompositionEquals(got), "got %v", got)
		})
	}
}

func TestParse_invalid(t *testing.T) {
	for _, text := range []string{"", "nitrox", "0", "EAN", "60/50", "18/x", "120"} {
		_, err := Parse(text)
		assert.ErrorIs(t, err, ErrUnknownGas, text)
	}
}

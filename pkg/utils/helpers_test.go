package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGroupedInt(t *testing.T) {
	cases := map[string]int{
		"0":         0,
		"500":       500,
		"1,000":     1000,
		"45,000":    45000,
		"1,234,567": 1234567,
		" 12 ":      12,
	}
	for in, want := range cases {
		got, err := ParseGroupedInt(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseGroupedInt_Invalid(t *testing.T) {
	for _, in := range []string{"", ",", "abc", "1.5", "-10", "12km"} {
		_, err := ParseGroupedInt(in)
		assert.Error(t, err, in)
	}
}

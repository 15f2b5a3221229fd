package pipeline

import (
	"testing"

	"cablestats/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLength(t *testing.T) {
	tests := []struct {
		raw  string
		km   int
		unit string
	}{
		{"1,000 km", 1000, "km"},
		{"45,000 km", 45000, "km"},
		{"7 km", 7, "km"},
		{"500 mi", 500, "mi"},
		{"12 ", 12, ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			km, unit, err := ParseLength(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.km, km)
			assert.Equal(t, tt.unit, unit)
		})
	}
}

func TestParseLength_Malformed(t *testing.T) {
	for _, raw := range []string{"", "1000", "1000km", "n/a km", " km", "-5 km", "1.5 km", "1,000 km approx", "1,000  km", "1,234 nautical miles"} {
		t.Run(raw, func(t *testing.T) {
			_, _, err := ParseLength(raw)
			assert.Error(t, err)
		})
	}
}

func TestNormalizeLength(t *testing.T) {
	t.Run("nil length stays unset", func(t *testing.T) {
		rec := model.CableRecord{ID: "c1"}
		unit, err := NormalizeLength(&rec)
		require.NoError(t, err)
		assert.Empty(t, unit)
		assert.Nil(t, rec.LengthKM)
	})

	t.Run("derives km", func(t *testing.T) {
		rec := model.CableRecord{ID: "c1", LengthRaw: strPtr("2,500 km")}
		unit, err := NormalizeLength(&rec)
		require.NoError(t, err)
		assert.Equal(t, LengthUnitKM, unit)
		require.NotNil(t, rec.LengthKM)
		assert.Equal(t, 2500, *rec.LengthKM)
	})

	t.Run("malformed", func(t *testing.T) {
		rec := model.CableRecord{ID: "c9", LengthRaw: strPtr("unknown")}
		_, err := NormalizeLength(&rec)

		var merr *MalformedLengthError
		require.ErrorAs(t, err, &merr)
		assert.Equal(t, "c9", merr.CableID)
		assert.Contains(t, err.Error(), `"unknown"`)
		assert.Nil(t, rec.LengthKM)
	})
}

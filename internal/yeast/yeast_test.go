package yeast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/doughlab/internal/domain"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		from, to domain.YeastType
		want     float64
	}{
		{"idy to ady", 4, domain.YeastInstantDry, domain.YeastActiveDry, 5},
		{"idy to fresh", 4, domain.YeastInstantDry, domain.YeastFresh, 12},
		{"ady to idy", 5, domain.YeastActiveDry, domain.YeastInstantDry, 4},
		{"fresh to idy", 9, domain.YeastFresh, domain.YeastInstantDry, 3},
		{"fresh to ady", 9, domain.YeastFresh, domain.YeastActiveDry, 3.75},
		{"identity", 7, domain.YeastFresh, domain.YeastFresh, 7},
		{"zero", 0, domain.YeastActiveDry, domain.YeastFresh, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.amount, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestConvertRoundTrip(t *testing.T) {
	for _, x := range []float64{0, 0.1, 1, 3.3, 7, 12.5, 1000} {
		ady, err := Convert(x, domain.YeastInstantDry, domain.YeastActiveDry)
		require.NoError(t, err)
		back, err := Convert(ady, domain.YeastActiveDry, domain.YeastInstantDry)
		require.NoError(t, err)
		assert.InDelta(t, x, back, 1e-9, "IDY<->ADY for %v", x)

		fresh, err := Convert(x, domain.YeastInstantDry, domain.YeastFresh)
		require.NoError(t, err)
		back, err = Convert(fresh, domain.YeastFresh, domain.YeastInstantDry)
		require.NoError(t, err)
		assert.InDelta(t, x, back, 1e-9, "IDY<->fresh for %v", x)
	}
}

func TestConvertRejectsStarters(t *testing.T) {
	for _, yt := range []domain.YeastType{domain.YeastSourdoughStarter, domain.YeastUserLevain} {
		_, err := Convert(10, yt, domain.YeastInstantDry)
		assert.ErrorIs(t, err, domain.ErrNotConvertible)

		_, err = Convert(10, domain.YeastInstantDry, yt)
		assert.ErrorIs(t, err, domain.ErrNotConvertible)
	}
}

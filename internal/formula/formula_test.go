package formula

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/doughlab/internal/domain"
)

func baseConfig() domain.DoughConfig {
	return domain.DoughConfig{
		NumUnits:              4,
		UnitWeight:            250,
		Scale:                 1,
		Hydration:             62,
		Salt:                  2.5,
		Oil:                   0,
		YeastType:             domain.YeastInstantDry,
		YeastPercentage:       0.3,
		FermentationTechnique: domain.TechniqueDirect,
	}
}

func TestCalculateDirect(t *testing.T) {
	res := Calculate(baseConfig())

	assert.Equal(t, 1000.0, res.TotalDough)
	assert.Equal(t, 164.5, res.TotalPercentage)
	assert.InDelta(t, 607.9, res.TotalFlour, 0.05)
	assert.InDelta(t, 376.9, res.TotalWater, 0.05)
	assert.InDelta(t, 15.2, res.TotalSalt, 0.05)
	assert.Zero(t, res.TotalOil)
	assert.InDelta(t, 1.82, res.TotalYeast, 0.01)

	assert.Nil(t, res.Preferment)
	assert.Nil(t, res.FinalDough)
}

func TestCalculateBiga(t *testing.T) {
	cfg := baseConfig()
	cfg.FermentationTechnique = domain.TechniqueBiga
	cfg.PrefermentFlourPercentage = 50

	res := Calculate(cfg)
	require.NotNil(t, res.Preferment)
	require.NotNil(t, res.FinalDough)

	assert.InDelta(t, 303.95, res.Preferment.Flour, 0.01)
	assert.InDelta(t, 182.37, res.Preferment.Water, 0.01)
	assert.InDelta(t, res.Preferment.Flour*0.6, res.Preferment.Water, 1e-9)
	assert.InDelta(t, res.Preferment.Flour*0.002, res.Preferment.Yeast, 1e-9)
	assert.InDelta(t, res.TotalWater-res.Preferment.Water, res.FinalDough.Water, 1e-9)
	assert.Equal(t, res.TotalSalt, res.FinalDough.Salt)
	assert.Equal(t, res.TotalOil, res.FinalDough.Oil)
}

func TestCalculatePoolishHydration(t *testing.T) {
	cfg := baseConfig()
	cfg.FermentationTechnique = domain.TechniquePoolish
	cfg.PrefermentFlourPercentage = 30

	res := Calculate(cfg)
	require.NotNil(t, res.Preferment)
	assert.InDelta(t, res.Preferment.Flour, res.Preferment.Water, 1e-9)
}

func TestCalculateConservation(t *testing.T) {
	techniques := []domain.FermentationTechnique{domain.TechniqueBiga, domain.TechniquePoolish}
	for _, tech := range techniques {
		for _, share := range []float64{0, 10, 33.3, 50, 100} {
			cfg := baseConfig()
			cfg.Oil = 3
			cfg.Sugar = 1.5
			cfg.FermentationTechnique = tech
			cfg.PrefermentFlourPercentage = share

			res := Calculate(cfg)
			require.NotNil(t, res.Preferment, "%s/%v", tech, share)

			tol := func(v float64) float64 { return math.Max(1e-6*math.Abs(v), 1e-9) }
			assert.InDelta(t, res.TotalFlour, res.Preferment.Flour+res.FinalDough.Flour, tol(res.TotalFlour))
			assert.InDelta(t, res.TotalWater, res.Preferment.Water+res.FinalDough.Water, tol(res.TotalWater))
			assert.InDelta(t, res.TotalYeast, res.Preferment.Yeast+res.FinalDough.Yeast, tol(res.TotalYeast))
		}
	}
}

func TestCalculateScaleLinearity(t *testing.T) {
	cfg := baseConfig()
	cfg.Oil = 2
	cfg.FermentationTechnique = domain.TechniquePoolish
	cfg.PrefermentFlourPercentage = 40
	single := Calculate(cfg)

	doubled := cfg
	doubled.Scale = 2
	res := Calculate(doubled)

	assert.InDelta(t, 2*single.TotalFlour, res.TotalFlour, 1e-9)
	assert.InDelta(t, 2*single.TotalWater, res.TotalWater, 1e-9)
	assert.InDelta(t, 2*single.TotalSalt, res.TotalSalt, 1e-9)
	assert.InDelta(t, 2*single.TotalOil, res.TotalOil, 1e-9)
	assert.InDelta(t, 2*single.TotalYeast, res.TotalYeast, 1e-9)
	assert.InDelta(t, 2*single.TotalDough, res.TotalDough, 1e-9)
	assert.InDelta(t, 2*single.Preferment.Flour, res.Preferment.Flour, 1e-9)
	assert.InDelta(t, 2*single.FinalDough.Water, res.FinalDough.Water, 1e-9)

	// Percentages are untouched by scaling.
	assert.Equal(t, single.TotalPercentage, res.TotalPercentage)
	assert.Equal(t, cfg.Hydration, doubled.Hydration)
}

func TestCalculateSugarInWeightBasis(t *testing.T) {
	cfg := baseConfig()
	cfg.Oil = 3
	cfg.Sugar = 2

	res := Calculate(cfg)
	sum := res.TotalFlour + res.TotalWater + res.TotalSalt + res.TotalOil + res.TotalSugar
	assert.InDelta(t, res.TotalDough, sum, 1e-9)
	assert.Equal(t, 169.5, res.TotalPercentage)
}

func TestCalculateZeroScaleMeansOne(t *testing.T) {
	cfg := baseConfig()
	cfg.Scale = 0
	assert.Equal(t, 1000.0, Calculate(cfg).TotalDough)
}

func TestCalculateDegenerateDoesNotPanic(t *testing.T) {
	cfg := baseConfig()
	cfg.Hydration = -102.5 // total percentage becomes 0

	assert.NotPanics(t, func() {
		res := Calculate(cfg)
		assert.True(t, math.IsInf(res.TotalFlour, 0) || math.IsNaN(res.TotalFlour))
	})
}

func TestCalculateIdempotent(t *testing.T) {
	cfg := baseConfig()
	cfg.FermentationTechnique = domain.TechniqueBiga
	cfg.PrefermentFlourPercentage = 25

	assert.Equal(t, Calculate(cfg), Calculate(cfg))
}

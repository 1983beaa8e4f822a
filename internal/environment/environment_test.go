package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/doughlab/internal/domain"
)

func ptr(v float64) *float64 { return &v }

func TestWaterTemperature(t *testing.T) {
	// The heuristic is intentionally crude; these values pin it exactly.
	assert.Equal(t, 28.0, WaterTemperature(25, 22, 22))
	assert.Equal(t, 40.0, WaterTemperature(25, 16, 16))
	assert.Equal(t, 16.0, WaterTemperature(25, 28, 28))
	assert.Equal(t, 20.0, WaterTemperature(24, 25, 24))
}

func TestAdviseWaterOnlyWithFlourTemp(t *testing.T) {
	adv := Advise(domain.EnvironmentInput{
		OvenType:     domain.OvenHomeElectric,
		Surface:      domain.SurfaceSteel,
		Style:        domain.StyleNewYork,
		AmbientTempC: 22,
	})
	assert.Nil(t, adv.RecommendedWaterTempC)

	adv = Advise(domain.EnvironmentInput{
		OvenType:     domain.OvenHomeElectric,
		Surface:      domain.SurfaceSteel,
		Style:        domain.StyleNewYork,
		AmbientTempC: 22,
		FlourTempC:   ptr(22),
		TargetDDTC:   25,
	})
	require.NotNil(t, adv.RecommendedWaterTempC)
	assert.Equal(t, 28.0, *adv.RecommendedWaterTempC)
}

func TestAdviseDefaultTarget(t *testing.T) {
	adv := Advise(domain.EnvironmentInput{AmbientTempC: 20, FlourTempC: ptr(20)})
	require.NotNil(t, adv.RecommendedWaterTempC)
	assert.Equal(t, WaterTemperature(DefaultTargetDDTC, 20, 20), *adv.RecommendedWaterTempC)
}

func TestAdviseSteelInLiveFireOven(t *testing.T) {
	for _, oven := range []domain.OvenType{domain.OvenWoodFired, domain.OvenPortableHighTemp} {
		adv := Advise(domain.EnvironmentInput{
			OvenType:     oven,
			Surface:      domain.SurfaceSteel,
			Style:        domain.StyleNewYork,
			AmbientTempC: 22,
		})
		assert.Equal(t, domain.SurfaceBiscotto, adv.RecommendedSurfaceOverride, oven.String())
		assert.True(t, adv.HasFlag(FlagSteelBurnRisk))
		assert.NotEmpty(t, adv.Warnings)
	}
}

func TestAdviseHomeOvenSuggestsSteel(t *testing.T) {
	tests := []struct {
		style       domain.RecipeStyle
		wantSurface domain.SurfaceType
	}{
		{domain.StyleNewYork, domain.SurfaceSteel},
		{domain.StyleBaguette, domain.SurfaceSteel},
		{domain.StyleDetroit, domain.SurfaceNone},
		{domain.StyleFocaccia, domain.SurfaceNone},
		{domain.StylePanPizza, domain.SurfaceNone},
	}

	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			adv := Advise(domain.EnvironmentInput{
				OvenType:     domain.OvenHomeGas,
				Style:        tt.style,
				AmbientTempC: 22,
			})
			assert.Equal(t, tt.wantSurface, adv.RecommendedSurfaceOverride)
		})
	}
}

func TestAdviseProfileFollowsSuggestedSurface(t *testing.T) {
	// The suggested steel wins over the home oven's pan default.
	ny := Advise(domain.EnvironmentInput{OvenType: domain.OvenHomeElectric, Style: domain.StyleNewYork, AmbientTempC: 22})
	assert.Equal(t, 280.0, ny.RecommendedBakeTempC)
	assert.Equal(t, &[2]int{300, 420}, ny.RecommendedBakeTimeSeconds)

	detroit := Advise(domain.EnvironmentInput{OvenType: domain.OvenHomeElectric, Style: domain.StyleDetroit, AmbientTempC: 22})
	assert.Equal(t, 250.0, detroit.RecommendedBakeTempC)
	assert.Equal(t, &[2]int{720, 900}, detroit.RecommendedBakeTimeSeconds)
}

func TestAdviseNeapolitanProfiles(t *testing.T) {
	wood := Advise(domain.EnvironmentInput{
		OvenType:     domain.OvenWoodFired,
		Surface:      domain.SurfaceStone,
		Style:        domain.StyleNeapolitan,
		AmbientTempC: 22,
	})
	assert.Equal(t, 485.0, wood.RecommendedBakeTempC)
	assert.Equal(t, &[2]int{60, 90}, wood.RecommendedBakeTimeSeconds)
	assert.Equal(t, domain.SurfaceBiscotto, wood.RecommendedSurfaceOverride)
	assert.True(t, wood.HasFlag(FlagStrictAVPN))

	home := Advise(domain.EnvironmentInput{
		OvenType:     domain.OvenHomeElectric,
		MaxOvenTempC: 250,
		Style:        domain.StyleNeapolitan,
		AmbientTempC: 22,
	})
	assert.Equal(t, 290.0, home.RecommendedBakeTempC)
	assert.Equal(t, &[2]int{360, 480}, home.RecommendedBakeTimeSeconds)
	assert.Equal(t, domain.SurfaceSteel, home.RecommendedSurfaceOverride)
	assert.True(t, home.HasFlag(FlagHomeOvenCompromise))
	assert.NotEmpty(t, home.Warnings)
}

func TestAdviseFallbackProfile(t *testing.T) {
	tests := []struct {
		name     string
		in       domain.EnvironmentInput
		wantTemp float64
		wantTime [2]int
	}{
		{
			name:     "home oven pan style defaults to pan",
			in:       domain.EnvironmentInput{OvenType: domain.OvenHomeElectric, Style: domain.StyleDetroit},
			wantTemp: 250, wantTime: [2]int{720, 900},
		},
		{
			name:     "portable oven defaults to stone",
			in:       domain.EnvironmentInput{OvenType: domain.OvenPortableHighTemp, Style: domain.StyleNewYork},
			wantTemp: 430, wantTime: [2]int{60, 120},
		},
		{
			name:     "explicit surface",
			in:       domain.EnvironmentInput{OvenType: domain.OvenHomeGas, Surface: domain.SurfaceStone, Style: domain.StyleNewYork},
			wantTemp: 265, wantTime: [2]int{420, 600},
		},
		{
			name:     "suggested steel drives the profile",
			in:       domain.EnvironmentInput{OvenType: domain.OvenHomeElectric, Style: domain.StyleNewYork},
			wantTemp: 280, wantTime: [2]int{300, 420},
		},
		{
			name:     "burn-risk override drives the profile",
			in:       domain.EnvironmentInput{OvenType: domain.OvenWoodFired, Surface: domain.SurfaceSteel, Style: domain.StyleNewYork},
			wantTemp: 450, wantTime: [2]int{60, 120},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.AmbientTempC = 22
			adv := Advise(tt.in)
			assert.Equal(t, tt.wantTemp, adv.RecommendedBakeTempC)
			require.NotNil(t, adv.RecommendedBakeTimeSeconds)
			assert.Equal(t, tt.wantTime, *adv.RecommendedBakeTimeSeconds)
		})
	}
}

func TestAdviseCapsTableProfileToOven(t *testing.T) {
	adv := Advise(domain.EnvironmentInput{
		OvenType:     domain.OvenHomeElectric,
		MaxOvenTempC: 240,
		Surface:      domain.SurfaceSteel,
		Style:        domain.StyleNewYork,
		AmbientTempC: 22,
	})
	assert.Equal(t, 240.0, adv.RecommendedBakeTempC)
	assert.Len(t, adv.Warnings, 1)
}

func TestAdviseAmbientNotes(t *testing.T) {
	base := domain.EnvironmentInput{OvenType: domain.OvenHomeElectric, Surface: domain.SurfaceSteel, Style: domain.StyleNewYork}

	hot := base
	hot.AmbientTempC = 28
	assert.Contains(t, Advise(hot).Notes, "Warm room: shorten the bulk ferment or reduce the yeast to avoid over-proofing.")

	cold := base
	cold.AmbientTempC = 18
	assert.Contains(t, Advise(cold).Notes, "Cool room: extend the bulk ferment; the dough will need more time to rise.")

	mild := base
	mild.AmbientTempC = 22
	assert.Empty(t, Advise(mild).Notes)
}

func TestRoomAdviceIgnoresOven(t *testing.T) {
	in := domain.EnvironmentInput{
		OvenType:     domain.OvenHomeElectric,
		Style:        domain.StyleNeapolitan,
		AmbientTempC: 28,
		FlourTempC:   ptr(22),
	}

	adv := RoomAdvice(in)
	require.NotNil(t, adv.RecommendedWaterTempC)
	assert.InDelta(t, 22, *adv.RecommendedWaterTempC, 1e-9)
	assert.Len(t, adv.Notes, 2)
	assert.Empty(t, adv.Warnings)
	assert.Empty(t, adv.Flags)
	assert.Zero(t, adv.RecommendedBakeTempC)
	assert.Nil(t, adv.RecommendedBakeTimeSeconds)
	assert.Equal(t, domain.SurfaceNone, adv.RecommendedSurfaceOverride)

	full := Advise(in)
	assert.True(t, full.HasFlag(FlagHomeOvenCompromise))
	assert.Subset(t, full.Notes, adv.Notes)
}

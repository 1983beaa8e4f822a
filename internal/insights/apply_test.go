package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/doughlab/internal/domain"
)

func TestApplyNoRecommendation(t *testing.T) {
	cfg := domain.DefaultConfig()

	for _, rec := range []string{"", "no-such-preset"} {
		next, changes := Apply(cfg, domain.AutoStyleInsightsResult{RecommendedStyle: rec}, catalog())
		assert.Equal(t, cfg, next)
		assert.NotNil(t, changes)
		assert.Empty(t, changes)
	}

	next, changes := Apply(cfg, domain.AutoStyleInsightsResult{RecommendedStyle: "new-york"}, nil)
	assert.Equal(t, cfg, next)
	assert.Empty(t, changes)
}

func TestApplyRecommendation(t *testing.T) {
	cfg := domain.DefaultConfig()

	next, changes := Apply(cfg, domain.AutoStyleInsightsResult{RecommendedStyle: "roman-teglia"}, catalog())

	assert.Equal(t, domain.StyleRomanTeglia, next.RecipeStyle)
	assert.Equal(t, "roman-teglia", next.StylePresetID)
	assert.Equal(t, 80.0, next.Hydration)
	assert.Equal(t, 2.5, next.Salt)
	assert.Equal(t, 3.0, next.Oil)
	assert.Equal(t, 0.3, next.YeastPercentage)
	assert.Equal(t, "manitoba", next.FlourID)
	assert.Equal(t, cfg.NumUnits, next.NumUnits)
	assert.Equal(t, cfg.YeastType, next.YeastType)

	keys := make([]domain.ConfigField, 0, len(changes))
	for _, c := range changes {
		keys = append(keys, c.Key)
	}
	assert.Equal(t, []domain.ConfigField{
		domain.FieldRecipeStyle,
		domain.FieldStylePresetID,
		domain.FieldHydration,
		domain.FieldSalt,
		domain.FieldOil,
		domain.FieldYeastPercentage,
		domain.FieldFlourID,
	}, keys)

	require.NotEmpty(t, changes)
	assert.Equal(t, domain.ConfigChange{
		Key: domain.FieldRecipeStyle, Label: "Style", From: "neapolitan", To: "roman_teglia",
	}, changes[0])
	assert.Equal(t, domain.ConfigChange{
		Key: domain.FieldHydration, Label: "Hydration", From: "62", To: "80",
	}, changes[2])

	// The original config is untouched.
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestApplyKeepsStarterPercentage(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.YeastType = domain.YeastSourdoughStarter
	cfg.YeastPercentage = 20

	next, changes := Apply(cfg, domain.AutoStyleInsightsResult{RecommendedStyle: "new-york"}, catalog())

	assert.Equal(t, 20.0, next.YeastPercentage)
	for _, c := range changes {
		assert.NotEqual(t, domain.FieldYeastPercentage, c.Key)
	}
}

func TestApplyKeepsFlourWhenPresetHasNone(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.FlourID = "my-flour"

	preset := domain.StylePreset{ID: "plain", Style: domain.StyleNewYork, Hydration: 62, Salt: 2.8, YeastPercentage: 0.15}
	next := FromPreset(cfg, preset)
	assert.Equal(t, "my-flour", next.FlourID)
}

func TestDiffTolerance(t *testing.T) {
	a := domain.DefaultConfig()
	b := a
	b.Hydration += 0.005
	assert.Empty(t, Diff(a, b))

	b.Oil = 0.02
	changes := Diff(a, b)
	require.Len(t, changes, 1)
	assert.Equal(t, domain.FieldOil, changes[0].Key)
	assert.Equal(t, "0", changes[0].From)
	assert.Equal(t, "0.02", changes[0].To)
}

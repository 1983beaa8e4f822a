package styles

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/doughlab/internal/domain"
	"github.com/hammamikhairi/doughlab/internal/logger"
)

func newSource() *MemorySource {
	return NewMemorySource(logger.New(logger.LevelOff, nil))
}

func TestMemorySourcePresets(t *testing.T) {
	src := newSource()

	presets := src.Presets()
	require.GreaterOrEqual(t, len(presets), 12)
	for i := 1; i < len(presets); i++ {
		assert.Less(t, presets[i-1].ID, presets[i].ID, "presets must be ordered by id")
	}
	for _, p := range presets {
		assert.NotEmpty(t, p.Name, p.ID)
		assert.LessOrEqual(t, p.Profile.HydrationBand.Min, p.Profile.HydrationBand.Max, p.ID)
		assert.Positive(t, p.Profile.BakeTempC, p.ID)
	}
}

func TestMemorySourcePreset(t *testing.T) {
	src := newSource()

	tests := []struct {
		id    string
		found bool
		style domain.RecipeStyle
	}{
		{"neapolitan-avpn", true, domain.StyleNeapolitan},
		{"new-york", true, domain.StyleNewYork},
		{"baguette", true, domain.StyleBaguette},
		{"deep-dish", false, domain.StyleCustom},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			p, ok := src.Preset(tt.id)
			require.Equal(t, tt.found, ok)
			if ok {
				assert.Equal(t, tt.style, p.Style)
			}
		})
	}
}

func TestMemorySourceForStyle(t *testing.T) {
	src := newSource()

	for _, style := range []domain.RecipeStyle{
		domain.StyleNeapolitan, domain.StyleNewYork, domain.StyleRomanTeglia,
		domain.StyleDetroit, domain.StyleFocaccia, domain.StylePanPizza,
		domain.StyleCiabatta, domain.StyleBaguette, domain.StyleCountryLoaf,
		domain.StyleSandwichLoaf, domain.StyleBrioche,
	} {
		p, ok := src.ForStyle(style)
		require.True(t, ok, style.String())
		assert.Equal(t, style, p.Style)
	}

	p, _ := src.ForStyle(domain.StyleNeapolitan)
	assert.Equal(t, "neapolitan-avpn", p.ID, "the first registered preset is the default")

	_, ok := src.ForStyle(domain.StyleCustom)
	assert.False(t, ok)
}

func TestMemorySourceSearch(t *testing.T) {
	src := newSource()

	tests := []struct {
		query    string
		minCount int
	}{
		{"neapolitan", 2},
		{"PAN", 3},
		{"poolish", 2},
		{"sourdough", 1},
		{"nonexistent-query-xyz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			results := src.Search(tt.query)
			assert.GreaterOrEqual(t, len(results), tt.minCount)
			if tt.minCount == 0 {
				assert.Empty(t, results)
			}
		})
	}
}

func TestMemorySourceMerge(t *testing.T) {
	src := newSource()

	custom := domain.StylePreset{
		ID:        "house-ny",
		Name:      "House New York",
		Style:     domain.StyleNewYork,
		Hydration: 65, Salt: 2.4, Oil: 3,
		Profile: domain.StyleProfile{HydrationBand: domain.Range{Min: 62, Max: 68}, BakeTempC: 300},
	}
	require.NoError(t, src.Merge(custom))

	got, ok := src.Preset("house-ny")
	require.True(t, ok)
	assert.Equal(t, 65.0, got.Hydration)

	def, _ := src.ForStyle(domain.StyleNewYork)
	assert.Equal(t, "new-york", def.ID, "merging must not steal an existing default")

	custom.Hydration = 66
	require.NoError(t, src.Merge(custom))
	got, _ = src.Preset("house-ny")
	assert.Equal(t, 66.0, got.Hydration)

	err := src.Merge(domain.StylePreset{Name: "nameless"})
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))

	err = src.Merge(domain.StylePreset{ID: "upside-down", Profile: domain.StyleProfile{
		HydrationBand: domain.Range{Min: 70, Max: 60},
	}})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	_, ok = src.Preset("upside-down")
	assert.False(t, ok)
}

func TestMemorySourceMergeCustomDefault(t *testing.T) {
	src := newSource()
	require.NoError(t, src.Merge(domain.StylePreset{ID: "mine", Name: "Mine", Style: domain.StyleCustom}))

	p, ok := src.ForStyle(domain.StyleCustom)
	require.True(t, ok)
	assert.Equal(t, "mine", p.ID)
}

package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/doughlab/internal/domain"
	"github.com/hammamikhairi/doughlab/internal/logger"
	"github.com/hammamikhairi/doughlab/internal/styles"
)

func catalog() *styles.MemorySource {
	return styles.NewMemorySource(logger.New(logger.LevelOff, nil))
}

func TestBand(t *testing.T) {
	tests := []struct {
		score float64
		want  domain.StyleFitBand
	}{
		{0, domain.FitLow},
		{39.9, domain.FitLow},
		{40, domain.FitMedium},
		{74.9, domain.FitMedium},
		{75, domain.FitHigh},
		{100, domain.FitHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Band(tt.score), "score %v", tt.score)
	}
}

func TestAnalyzeOnStyle(t *testing.T) {
	res := Analyze(domain.DefaultConfig(), 22, 0, nil, catalog())

	assert.Equal(t, 100.0, res.StyleFitScore)
	assert.Equal(t, domain.FitHigh, res.Band)
	assert.Empty(t, res.RecommendedStyle)
	assert.Empty(t, res.MismatchWarnings)
	assert.Equal(t, "58–65%", res.IdealHydrationRange)
	assert.Equal(t, "8–24 h", res.IdealFermentationRange)
	assert.NotEmpty(t, res.ProfessionalNotes)
}

func TestAnalyzeRecommendsCloserStyle(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Hydration = 78

	res := Analyze(cfg, 22, 0, nil, catalog())

	assert.Equal(t, 50.0, res.StyleFitScore)
	assert.Equal(t, domain.FitMedium, res.Band)
	assert.Equal(t, "roman-teglia", res.RecommendedStyle)
	require.Len(t, res.MismatchWarnings, 1)
	assert.Contains(t, res.MismatchWarnings[0], "above")
}

func TestAnalyzeStaysPutWithoutClearGain(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Hydration = 95

	// Every pizza preset is equally far off, so no switch is worth it.
	res := Analyze(cfg, 40, 0, nil, catalog())

	assert.Equal(t, 30.0, res.StyleFitScore)
	assert.Equal(t, domain.FitLow, res.Band)
	assert.Empty(t, res.RecommendedStyle)
	assert.Len(t, res.MismatchWarnings, 2)
}

func TestAnalyzeOnlyRecommendsSameBakeType(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Hydration = 78

	p, ok := catalog().Preset(Analyze(cfg, 22, 0, nil, catalog()).RecommendedStyle)
	require.True(t, ok)
	assert.Equal(t, domain.BakePizza, p.BakeType())
}

func TestAnalyzeFlourAndOvenPenalties(t *testing.T) {
	cfg := domain.DefaultConfig()
	oven := &domain.Oven{Type: domain.OvenHomeElectric, MaxTemperature: 250}

	assert.Equal(t, 90.0, Analyze(cfg, 22, 200, nil, catalog()).StyleFitScore)
	assert.Equal(t, 82.0, Analyze(cfg, 22, 0, oven, catalog()).StyleFitScore)

	res := Analyze(cfg, 22, 200, oven, catalog())
	assert.Equal(t, 72.0, res.StyleFitScore)
	assert.Equal(t, domain.FitMedium, res.Band)
	assert.Len(t, res.MismatchWarnings, 2)
	assert.Empty(t, res.RecommendedStyle)
}

func TestScoreIsMonotonic(t *testing.T) {
	p, ok := catalog().Preset("neapolitan-avpn")
	require.True(t, ok)

	cfg := domain.DefaultConfig()
	prev := 101.0
	for h := 65.0; h <= 90; h += 0.5 {
		cfg.Hydration = h
		s := Score(cfg, p.Profile, 22, 0, nil)
		assert.LessOrEqual(t, s, prev, "hydration %v", h)
		prev = s
	}

	cfg = domain.DefaultConfig()
	prev = 101.0
	for w := 250.0; w >= 0.5; w -= 10 {
		s := Score(cfg, p.Profile, 22, w, nil)
		assert.LessOrEqual(t, s, prev, "W %v", w)
		assert.GreaterOrEqual(t, s, 0.0)
		prev = s
	}
}

func TestIdealRangesFollowContext(t *testing.T) {
	cfg := domain.DefaultConfig()

	assert.Equal(t, "58–60%", Analyze(cfg, 22, 150, nil, catalog()).IdealHydrationRange)
	assert.Equal(t, "6–18 h", Analyze(cfg, 30, 0, nil, catalog()).IdealFermentationRange)
	assert.Equal(t, "10–30 h", Analyze(cfg, 16, 0, nil, catalog()).IdealFermentationRange)
}

func TestAnalyzeWithoutPreset(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.RecipeStyle = domain.StyleCustom
	cfg.StylePresetID = ""

	res := Analyze(cfg, 22, 0, nil, catalog())
	assert.Equal(t, "58–70%", res.IdealHydrationRange)
	assert.Equal(t, 100.0, res.StyleFitScore)

	res = Analyze(cfg, 22, 0, nil, nil)
	assert.Equal(t, 100.0, res.StyleFitScore)
	assert.Empty(t, res.RecommendedStyle)
}

func TestAnalyzeTechniqueNote(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.StylePresetID = "neapolitan-contemporary"
	cfg.Hydration = 70

	res := Analyze(cfg, 22, 0, nil, catalog())
	assert.Contains(t, res.ProfessionalNotes, "Contemporary Neapolitan is usually made with the biga method.")
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Hydration = 78
	oven := &domain.Oven{Type: domain.OvenHomeGas, MaxTemperature: 270}
	assert.Equal(t, Analyze(cfg, 25, 260, oven, catalog()), Analyze(cfg, 25, 260, oven, catalog()))
}

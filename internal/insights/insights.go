// Package insights scores how well a dough config fits its declared style
// and, when the fit is poor, proposes a better matching style preset.
//
// The score starts at 100 and loses points for each mismatch:
//
//	hydration  5 per point outside the style band, at most 50
//	room       2 per °C outside 16-28 °C, at most 20
//	flour      1 per 5 W outside the style band, at most 30 (W known only)
//	oven       1 per 10 °C below the style minimum, at most 20 (oven known only)
//
// Every penalty grows with the distance, so the score is monotonic in each
// input's distance from the profile.
package insights

import (
	"fmt"
	"math"

	"github.com/hammamikhairi/doughlab/internal/domain"
)

// Scoring constants.
const (
	HydrationPenaltyPerPoint = 5.0
	HydrationPenaltyCap      = 50.0
	RoomPenaltyPerDegree     = 2.0
	RoomPenaltyCap           = 20.0
	FlourPenaltyDivisor      = 5.0
	FlourPenaltyCap          = 30.0
	OvenPenaltyDivisor       = 10.0
	OvenPenaltyCap           = 20.0
)

// Recommendation thresholds.
const (
	RecommendBelowScore = 60.0
	RecommendMinGain    = 15.0
)

// Band thresholds.
const (
	BandMediumFrom = 40.0
	BandHighFrom   = 75.0
)

// ComfortableRoom is the room temperature range fermentation schedules assume.
var ComfortableRoom = domain.Range{Min: 16, Max: 28}

// genericProfiles stand in when a config has no preset to compare against.
var genericProfiles = map[domain.BakeType]domain.StyleProfile{
	domain.BakePizza: {
		HydrationBand:     domain.Range{Min: 58, Max: 70},
		FermentationHours: domain.Range{Min: 8, Max: 48},
	},
	domain.BakeBread: {
		HydrationBand:     domain.Range{Min: 62, Max: 80},
		FermentationHours: domain.Range{Min: 3, Max: 24},
	},
	domain.BakePastry: {
		HydrationBand:     domain.Range{Min: 50, Max: 65},
		FermentationHours: domain.Range{Min: 2, Max: 16},
	},
}

// Band maps a score to its display band.
func Band(score float64) domain.StyleFitBand {
	switch {
	case score >= BandHighFrom:
		return domain.FitHigh
	case score >= BandMediumFrom:
		return domain.FitMedium
	default:
		return domain.FitLow
	}
}

// Analyze scores cfg against its active style preset. flourW of 0 and a
// nil oven mean unknown; the matching penalties are skipped. presets may
// be nil, in which case a generic profile for the bake type is used and no
// alternative is recommended.
func Analyze(cfg domain.DoughConfig, ambientC, flourW float64, oven *domain.Oven, presets domain.StyleCatalog) domain.AutoStyleInsightsResult {
	active, hasPreset := ActivePreset(cfg, presets)
	profile := active.Profile
	if !hasPreset {
		profile = genericProfiles[cfg.BakeType]
	}

	score := Score(cfg, profile, ambientC, flourW, oven)
	res := domain.AutoStyleInsightsResult{
		IdealHydrationRange:    formatRange(idealHydration(profile, flourW), "%"),
		IdealFermentationRange: formatRange(idealFermentation(profile, ambientC), " h"),
		StyleFitScore:          score,
		Band:                   Band(score),
		MismatchWarnings:       mismatches(cfg, active.Name, profile, ambientC, flourW, oven),
		ProfessionalNotes:      notes(cfg, active, hasPreset),
	}

	if presets != nil && score < RecommendBelowScore {
		if best, ok := bestAlternative(cfg, active.ID, score, ambientC, flourW, oven, presets); ok {
			res.RecommendedStyle = best.ID
			res.ProfessionalNotes = append(res.ProfessionalNotes, fmt.Sprintf(
				"This formula is closer to %s; apply the recommendation to switch.", best.Name))
		}
	}
	return res
}

// ActivePreset resolves the preset a config is judged against: its explicit
// preset id first, then the default preset of its style.
func ActivePreset(cfg domain.DoughConfig, presets domain.StyleCatalog) (domain.StylePreset, bool) {
	if presets == nil {
		return domain.StylePreset{}, false
	}
	if cfg.StylePresetID != "" {
		if p, ok := presets.Preset(cfg.StylePresetID); ok {
			return p, true
		}
	}
	return presets.ForStyle(cfg.RecipeStyle)
}

// Score returns the 0-100 fit of cfg against profile.
func Score(cfg domain.DoughConfig, profile domain.StyleProfile, ambientC, flourW float64, oven *domain.Oven) float64 {
	penalty := math.Min(HydrationPenaltyPerPoint*profile.HydrationBand.Distance(cfg.Hydration), HydrationPenaltyCap)
	penalty += math.Min(RoomPenaltyPerDegree*ComfortableRoom.Distance(ambientC), RoomPenaltyCap)

	if flourW > 0 && hasRange(profile.FlourStrengthW) {
		penalty += math.Min(profile.FlourStrengthW.Distance(flourW)/FlourPenaltyDivisor, FlourPenaltyCap)
	}
	if oven != nil && profile.MinOvenTempC > 0 && oven.MaxTemperature < profile.MinOvenTempC {
		penalty += math.Min((profile.MinOvenTempC-oven.MaxTemperature)/OvenPenaltyDivisor, OvenPenaltyCap)
	}

	return math.Max(0, math.Min(100, 100-penalty))
}

// bestAlternative finds the highest scoring other preset of the same bake
// type. Ties go to the first in catalog order, and the winner must beat
// the current score by at least RecommendMinGain.
func bestAlternative(cfg domain.DoughConfig, activeID string, current, ambientC, flourW float64, oven *domain.Oven, presets domain.StyleCatalog) (domain.StylePreset, bool) {
	var (
		best      domain.StylePreset
		bestScore = -1.0
	)
	for _, p := range presets.Presets() {
		if p.ID == activeID || p.BakeType() != cfg.BakeType {
			continue
		}
		if s := Score(cfg, p.Profile, ambientC, flourW, oven); s > bestScore {
			best, bestScore = p, s
		}
	}
	if bestScore < 0 || bestScore-current < RecommendMinGain {
		return domain.StylePreset{}, false
	}
	return best, true
}

func hasRange(r domain.Range) bool { return r.Min > 0 || r.Max > 0 }

// idealHydration narrows the top of the band for a flour weaker than the
// style wants: one point per 20 W short, at most 5.
func idealHydration(profile domain.StyleProfile, flourW float64) domain.Range {
	band := profile.HydrationBand
	if flourW > 0 && flourW < profile.FlourStrengthW.Min {
		band.Max = math.Max(band.Min, band.Max-math.Min(5, (profile.FlourStrengthW.Min-flourW)/20))
	}
	return band
}

// idealFermentation shortens the window in a hot room and stretches it in
// a cold one.
func idealFermentation(profile domain.StyleProfile, ambientC float64) domain.Range {
	window := profile.FermentationHours
	factor := 1.0
	switch {
	case ambientC >= ComfortableRoom.Max:
		factor = 0.75
	case ambientC <= 18:
		factor = 1.25
	}
	return domain.Range{Min: window.Min * factor, Max: window.Max * factor}
}

func formatRange(r domain.Range, unit string) string {
	return fmt.Sprintf("%.0f–%.0f%s", r.Min, r.Max, unit)
}

func mismatches(cfg domain.DoughConfig, name string, profile domain.StyleProfile, ambientC, flourW float64, oven *domain.Oven) []string {
	if name == "" {
		name = "this " + cfg.BakeType.String()
	}
	out := []string{}

	band := profile.HydrationBand
	switch {
	case cfg.Hydration > band.Max:
		out = append(out, fmt.Sprintf("Hydration %.1f%% is above the %.0f–%.0f%% range for %s.", cfg.Hydration, band.Min, band.Max, name))
	case cfg.Hydration < band.Min:
		out = append(out, fmt.Sprintf("Hydration %.1f%% is below the %.0f–%.0f%% range for %s.", cfg.Hydration, band.Min, band.Max, name))
	}

	if d := ComfortableRoom.Distance(ambientC); d > 0 {
		out = append(out, fmt.Sprintf("A %.0f°C room is outside the %.0f–%.0f°C range fermentation schedules assume.",
			ambientC, ComfortableRoom.Min, ComfortableRoom.Max))
	}

	if flourW > 0 && hasRange(profile.FlourStrengthW) && !profile.FlourStrengthW.Contains(flourW) {
		out = append(out, fmt.Sprintf("Flour strength W%.0f is outside the W%.0f–%.0f range for %s.",
			flourW, profile.FlourStrengthW.Min, profile.FlourStrengthW.Max, name))
	}

	if oven != nil && profile.MinOvenTempC > 0 && oven.MaxTemperature < profile.MinOvenTempC {
		out = append(out, fmt.Sprintf("%s needs at least %.0f°C; the oven reaches %.0f°C.",
			name, profile.MinOvenTempC, oven.MaxTemperature))
	}
	return out
}

func notes(cfg domain.DoughConfig, active domain.StylePreset, hasPreset bool) []string {
	out := []string{}
	if hasPreset && active.Profile.Note != "" {
		out = append(out, active.Profile.Note)
	}
	if hasPreset && active.Technique != cfg.FermentationTechnique {
		out = append(out, fmt.Sprintf("%s is usually made with the %s method.", active.Name, active.Technique))
	}
	if cfg.YeastType.IsStarter() {
		out = append(out, "With a sourdough culture, plan for the long end of the fermentation window.")
	}
	return out
}

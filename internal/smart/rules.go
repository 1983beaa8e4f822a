package smart

import (
	"fmt"
	"math"

	"github.com/hammamikhairi/doughlab/internal/domain"
	"github.com/hammamikhairi/doughlab/internal/environment"
)

// TargetDDTC is the fixed desired dough temperature used by the water rule.
const TargetDDTC = 25.0

// Levain freshness windows, in hours since the last feeding.
const (
	LevainStaleHours   = 24.0
	LevainYoungHours   = 4.0
	LevainPeakEndHours = 12.0
	WeakOvenMaxTempC   = 300.0
	HotOvenMinTempC    = 400.0
	WeakFlourW         = 240.0
	WeakFlourHydration = 65.0
	WeakOvenOilPercent = 2.0
)

type ambientYeast struct {
	multiplier float64
	guidance   string
}

// ambientYeastTable scales commercial yeast by room temperature.
var ambientYeastTable = map[domain.AmbientTemperature]ambientYeast{
	domain.AmbientCold: {1.25, "Cold room: fermentation will be sluggish, so increase the yeast or give the dough a warmer spot."},
	domain.AmbientMild: {1.0, ""},
	domain.AmbientHot:  {0.7, "Hot room: fermentation will race, so cut the yeast and watch the dough rather than the clock."},
}

func ddtWaterRule(cfg domain.DoughConfig, _ Context) domain.SmartAdjustmentResult {
	room := cfg.AmbientTemperature.Celsius()
	water := environment.WaterTemperature(TargetDDTC, room, room)
	return domain.SmartAdjustmentResult{
		Messages: []string{fmt.Sprintf(
			"Use water at about %.0f°C (room and flour at %.0f°C) to reach a %.0f°C dough.",
			water, room, TargetDDTC)},
	}
}

func authenticityRule(cfg domain.DoughConfig, _ Context) domain.SmartAdjustmentResult {
	var out domain.SmartAdjustmentResult
	if cfg.RecipeStyle != domain.StyleNeapolitan || (cfg.Oil <= 0 && cfg.Sugar <= 0) {
		return out
	}

	out.RiskWarnings = append(out.RiskWarnings,
		"Authentic Neapolitan dough is flour, water, salt and yeast only; oil and sugar change the bake and the texture.")
	if cfg.Oil > 0 {
		out.Suggestions = append(out.Suggestions, domain.Suggestion{
			Key: domain.FieldOil, Value: 0,
			Message: "Remove the oil for an authentic Neapolitan dough.",
		})
	}
	if cfg.Sugar > 0 {
		out.Suggestions = append(out.Suggestions, domain.Suggestion{
			Key: domain.FieldSugar, Value: 0,
			Message: "Remove the sugar; at Neapolitan oven temperatures it only burns.",
		})
	}
	return out
}

func levainFreshnessRule(cfg domain.DoughConfig, sc Context) domain.SmartAdjustmentResult {
	var out domain.SmartAdjustmentResult
	if cfg.YeastType != domain.YeastUserLevain || sc.Levain == nil || sc.Now.IsZero() {
		return out
	}

	hours := sc.Levain.HoursSinceFeeding(sc.Now)
	if hours < 0 {
		// Fed after now: the feeding time or the clock is wrong.
		return out
	}
	switch {
	case hours > LevainStaleHours:
		out.RiskWarnings = append(out.RiskWarnings, fmt.Sprintf(
			"%s was last fed %.0f hours ago and may be weak; refresh it before mixing.", levainName(sc.Levain), hours))
	case hours < LevainYoungHours:
		out.Messages = append(out.Messages, fmt.Sprintf(
			"%s was fed %.1f hours ago: still young, so expect a slower rise and a milder, more complex flavor.", levainName(sc.Levain), hours))
	case hours <= LevainPeakEndHours:
		out.Messages = append(out.Messages, fmt.Sprintf(
			"%s is at peak activity (%.0f hours since feeding).", levainName(sc.Levain), hours))
	}
	return out
}

func levainName(l *domain.Levain) string {
	if l.Name != "" {
		return l.Name
	}
	return "Your levain"
}

func weakOvenRule(cfg domain.DoughConfig, sc Context) domain.SmartAdjustmentResult {
	var out domain.SmartAdjustmentResult
	if sc.Oven == nil || !sc.Oven.Type.IsHome() || sc.Oven.MaxTemperature > WeakOvenMaxTempC ||
		cfg.RecipeStyle != domain.StyleNeapolitan {
		return out
	}

	out.Messages = append(out.Messages, fmt.Sprintf(
		"Your oven tops out at %.0f°C. A New York-style adaptation bakes more evenly at that heat than a Neapolitan.",
		sc.Oven.MaxTemperature))
	if cfg.Oil == 0 {
		out.Suggestions = append(out.Suggestions, domain.Suggestion{
			Key: domain.FieldOil, Value: WeakOvenOilPercent,
			Message: "Add 2% oil to keep the crust tender through a longer, cooler bake.",
		})
	}
	return out
}

func flourHydrationRule(cfg domain.DoughConfig, sc Context) domain.SmartAdjustmentResult {
	var out domain.SmartAdjustmentResult
	if sc.Flour == nil {
		return out
	}

	f := sc.Flour
	if f.HydrationHint != nil && cfg.Hydration > f.HydrationHint.Max {
		out.RiskWarnings = append(out.RiskWarnings, fmt.Sprintf(
			"%.0f%% hydration is above what %s handles (max %.0f%%); the dough may turn slack and sticky.",
			cfg.Hydration, f.Name, f.HydrationHint.Max))
		out.Suggestions = append(out.Suggestions, domain.Suggestion{
			Key: domain.FieldHydration, Value: f.HydrationHint.Max,
			Message: fmt.Sprintf("Lower hydration to %.0f%% to match the flour.", f.HydrationHint.Max),
		})
		return out
	}

	if f.StrengthW > 0 && f.StrengthW < WeakFlourW && cfg.Hydration > WeakFlourHydration {
		out.RiskWarnings = append(out.RiskWarnings, fmt.Sprintf(
			"%s is a weak flour (W%.0f); above %.0f%% hydration the gluten may not hold the structure.",
			f.Name, f.StrengthW, WeakFlourHydration))
	}
	return out
}

func ambientYeastRule(cfg domain.DoughConfig, _ Context) domain.SmartAdjustmentResult {
	var out domain.SmartAdjustmentResult
	entry, ok := ambientYeastTable[cfg.AmbientTemperature]
	if !ok || entry.multiplier == 1 || cfg.YeastType.IsStarter() {
		return out
	}

	proposed := math.Round(cfg.YeastPercentage*entry.multiplier*100) / 100
	change := (entry.multiplier - 1) * 100

	out.Messages = append(out.Messages, entry.guidance)
	out.Suggestions = append(out.Suggestions, domain.Suggestion{
		Key: domain.FieldYeastPercentage, Value: proposed,
		Message: fmt.Sprintf("Adjust yeast by %+.0f%% for a %s room (%.2f%% → %.2f%%).",
			change, cfg.AmbientTemperature, cfg.YeastPercentage, proposed),
	})
	return out
}

func bakingSurfaceRule(cfg domain.DoughConfig, sc Context) domain.SmartAdjustmentResult {
	var out domain.SmartAdjustmentResult
	if cfg.BakeType != domain.BakePizza || sc.Oven == nil {
		return out
	}

	switch {
	case sc.Oven.MaxTemperature <= WeakOvenMaxTempC && !sc.Oven.HasSteel:
		out.Messages = append(out.Messages,
			"A baking steel would make the most of a home oven: it conducts heat into the base far faster than stone.")
	case sc.Oven.MaxTemperature > HotOvenMinTempC && sc.Oven.HasSteel:
		out.Messages = append(out.Messages,
			"Above 400°C a steel will burn the base; bake on stone or biscotto instead.")
	}
	return out
}

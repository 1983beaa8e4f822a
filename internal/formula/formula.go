// Package formula converts baker's percentages into ingredient weights.
//
// Sugar is part of the weight basis: every ingredient except yeast is
// scaled so that flour + water + salt + oil + sugar equals the target
// dough weight. Yeast (or levain) is added on top, as it is in the
// rest of the workbench.
package formula

import "github.com/hammamikhairi/doughlab/internal/domain"

// PrefermentYeastPercentage is the flat yeast seed of every preferment,
// as a baker's percentage of the preferment flour.
const PrefermentYeastPercentage = 0.2

// PrefermentHydration returns the fixed hydration (as a fraction of
// preferment flour) of a technique. ok is false for the direct technique.
func PrefermentHydration(t domain.FermentationTechnique) (hydration float64, ok bool) {
	switch t {
	case domain.TechniqueBiga:
		return 0.6, true
	case domain.TechniquePoolish:
		return 1.0, true
	case domain.TechniqueDirect:
		return 0, false
	default:
		return 0, false
	}
}

// TotalDoughWeight returns numUnits * unitWeight * scale in grams.
func TotalDoughWeight(cfg domain.DoughConfig) float64 {
	return float64(cfg.NumUnits) * cfg.UnitWeight * cfg.EffectiveScale()
}

// TotalPercentage returns the weight-basis percentage of the formula.
func TotalPercentage(cfg domain.DoughConfig) float64 {
	return 100 + cfg.Hydration + cfg.Salt + cfg.Oil + cfg.Sugar
}

// Calculate derives every ingredient weight from cfg. It never fails:
// a non-positive total percentage yields NaN or Inf weights, and
// rejecting such configs is the caller's job.
func Calculate(cfg domain.DoughConfig) domain.DoughResult {
	totalDough := TotalDoughWeight(cfg)
	totalPct := TotalPercentage(cfg)
	flour := totalDough / totalPct * 100

	res := domain.DoughResult{
		TotalPercentage: totalPct,
		TotalFlour:      flour,
		TotalWater:      pct(flour, cfg.Hydration),
		TotalSalt:       pct(flour, cfg.Salt),
		TotalOil:        pct(flour, cfg.Oil),
		TotalSugar:      pct(flour, cfg.Sugar),
		TotalYeast:      pct(flour, cfg.YeastPercentage),
		TotalDough:      totalDough,
	}

	hydration, ok := PrefermentHydration(cfg.FermentationTechnique)
	if !ok {
		return res
	}

	pf := pct(flour, cfg.PrefermentFlourPercentage)
	pre := domain.Preferment{
		Flour: pf,
		Water: pf * hydration,
		Yeast: pct(pf, PrefermentYeastPercentage),
	}
	res.Preferment = &pre
	res.FinalDough = &domain.FinalDough{
		Flour: res.TotalFlour - pre.Flour,
		Water: res.TotalWater - pre.Water,
		Salt:  res.TotalSalt,
		Oil:   res.TotalOil,
		Sugar: res.TotalSugar,
		Yeast: res.TotalYeast - pre.Yeast,
	}
	return res
}

func pct(base, percentage float64) float64 {
	return base * percentage / 100
}

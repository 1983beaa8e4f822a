// Package smart implements the smart adjustment advisor: an ordered list
// of independent rules, each inspecting a DoughConfig plus optional
// context and contributing messages, risk warnings and suggestions.
package smart

import (
	"time"

	"github.com/hammamikhairi/doughlab/internal/domain"
)

// Context is the optional context the rules may consult. Any field may be
// nil; rules depending on a missing field do nothing. Now is supplied by
// the caller so evaluation stays deterministic; a zero Now disables the
// levain freshness rule.
type Context struct {
	Oven   *domain.Oven
	Flour  *domain.FlourDefinition
	Levain *domain.Levain
	Now    time.Time
}

// Rule is a single predicate-to-effect advisory rule.
type Rule struct {
	Name  string
	Apply func(cfg domain.DoughConfig, sc Context) domain.SmartAdjustmentResult
}

// Rules returns the ruleset in evaluation order.
func Rules() []Rule {
	return []Rule{
		{Name: "ddt_water_temperature", Apply: ddtWaterRule},
		{Name: "neapolitan_authenticity", Apply: authenticityRule},
		{Name: "levain_freshness", Apply: levainFreshnessRule},
		{Name: "weak_oven_neapolitan", Apply: weakOvenRule},
		{Name: "flour_hydration_ceiling", Apply: flourHydrationRule},
		{Name: "ambient_yeast", Apply: ambientYeastRule},
		{Name: "baking_surface", Apply: bakingSurfaceRule},
	}
}

// Evaluate runs every rule against cfg and folds the results left to right.
func Evaluate(cfg domain.DoughConfig, sc Context) domain.SmartAdjustmentResult {
	return Fold(Rules(), cfg, sc)
}

// Fold runs rules in order and merges their output. Rules never
// short-circuit one another.
func Fold(rules []Rule, cfg domain.DoughConfig, sc Context) domain.SmartAdjustmentResult {
	out := domain.SmartAdjustmentResult{
		Messages:     []string{},
		RiskWarnings: []string{},
		Suggestions:  []domain.Suggestion{},
	}
	for _, r := range rules {
		out.Merge(r.Apply(cfg, sc))
	}
	return out
}

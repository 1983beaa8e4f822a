package insights

import (
	"math"

	"github.com/hammamikhairi/doughlab/internal/domain"
)

// DiffTolerance is the smallest numeric change surfaced as a difference.
const DiffTolerance = 0.01

// appliedFields are the fields a recommendation may change, in display order.
var appliedFields = []domain.ConfigField{
	domain.FieldRecipeStyle,
	domain.FieldStylePresetID,
	domain.FieldHydration,
	domain.FieldSalt,
	domain.FieldOil,
	domain.FieldSugar,
	domain.FieldYeastPercentage,
	domain.FieldFlourID,
}

// Apply builds the config the recommendation in res leads to, and lists
// every field that would change. The caller commits the returned config
// only after the changes are confirmed. With no recommendation, or one that
// does not resolve against presets, cfg is returned unchanged with no changes.
func Apply(cfg domain.DoughConfig, res domain.AutoStyleInsightsResult, presets domain.StyleCatalog) (domain.DoughConfig, []domain.ConfigChange) {
	changes := []domain.ConfigChange{}
	if res.RecommendedStyle == "" || presets == nil {
		return cfg, changes
	}
	p, ok := presets.Preset(res.RecommendedStyle)
	if !ok {
		return cfg, changes
	}

	next := FromPreset(cfg, p)
	return next, Diff(cfg, next)
}

// FromPreset copies a preset's formula onto cfg. The yeast percentage is
// only taken when cfg is leavened with commercial yeast, and the flour only
// when the preset names one.
func FromPreset(cfg domain.DoughConfig, p domain.StylePreset) domain.DoughConfig {
	next := cfg
	next.RecipeStyle = p.Style
	next.BakeType = p.BakeType()
	next.StylePresetID = p.ID
	next.Hydration = p.Hydration
	next.Salt = p.Salt
	next.Oil = p.Oil
	next.Sugar = p.Sugar
	if p.FlourID != "" {
		next.FlourID = p.FlourID
	}
	if !cfg.YeastType.IsStarter() {
		next.YeastPercentage = p.YeastPercentage
	}
	return next
}

// Diff lists the recommendation-controlled fields that differ between
// from and to.
func Diff(from, to domain.DoughConfig) []domain.ConfigChange {
	changes := []domain.ConfigChange{}
	for _, f := range appliedFields {
		if !differs(f, from, to) {
			continue
		}
		changes = append(changes, domain.ConfigChange{
			Key:   f,
			Label: f.Label(),
			From:  from.Format(f),
			To:    to.Format(f),
		})
	}
	return changes
}

func differs(f domain.ConfigField, a, b domain.DoughConfig) bool {
	if x, ok := a.Number(f); ok {
		y, _ := b.Number(f)
		return math.Abs(x-y) > DiffTolerance
	}
	return a.Format(f) != b.Format(f)
}

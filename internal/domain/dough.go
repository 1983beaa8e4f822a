// Package domain defines the core types and interfaces for the dough
// workbench. All other packages depend on domain; domain depends on nothing.
package domain

// DoughConfig is the complete recipe specification. All percentages are
// baker's percentages, relative to 100% flour by weight.
type DoughConfig struct {
	BakeType      BakeType    `json:"bakeType" yaml:"bake_type"`
	RecipeStyle   RecipeStyle `json:"recipeStyle" yaml:"recipe_style"`
	StylePresetID string      `json:"stylePresetId,omitempty" yaml:"style_preset_id,omitempty"`

	NumUnits   int     `json:"numUnits" yaml:"num_units"`
	UnitWeight float64 `json:"unitWeight" yaml:"unit_weight"` // grams
	Scale      float64 `json:"scale" yaml:"scale"`            // 0 is read as 1

	Hydration float64 `json:"hydration" yaml:"hydration"`
	Salt      float64 `json:"salt" yaml:"salt"`
	Oil       float64 `json:"oil" yaml:"oil"`
	Sugar     float64 `json:"sugar" yaml:"sugar"`

	YeastType YeastType `json:"yeastType" yaml:"yeast_type"`
	// YeastPercentage is a levain percentage for starter types.
	YeastPercentage float64 `json:"yeastPercentage" yaml:"yeast_percentage"`
	LevainID        string  `json:"levainId,omitempty" yaml:"levain_id,omitempty"`

	FermentationTechnique     FermentationTechnique `json:"fermentationTechnique" yaml:"fermentation_technique"`
	PrefermentFlourPercentage float64               `json:"prefermentFlourPercentage" yaml:"preferment_flour_percentage"`

	FlourID            string             `json:"flourId,omitempty" yaml:"flour_id,omitempty"`
	AmbientTemperature AmbientTemperature `json:"ambientTemperature" yaml:"ambient_temperature"`
	BakingTempC        float64            `json:"bakingTempC,omitempty" yaml:"baking_temp_c,omitempty"`
	Notes              string             `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// EffectiveScale returns Scale, treating the zero value as 1.
func (c DoughConfig) EffectiveScale() float64 {
	if c.Scale == 0 {
		return 1
	}
	return c.Scale
}

// DefaultConfig returns a mild-room, direct Neapolitan-ish starting point.
func DefaultConfig() DoughConfig {
	return DoughConfig{
		BakeType:        BakePizza,
		RecipeStyle:     StyleNeapolitan,
		StylePresetID:   "neapolitan-avpn",
		NumUnits:        4,
		UnitWeight:      250,
		Scale:           1,
		Hydration:       62,
		Salt:            2.8,
		YeastType:       YeastFresh,
		YeastPercentage: 0.15,
	}
}

// DoughResult holds the gram weights derived from a DoughConfig.
// Preferment and FinalDough are nil for the direct technique.
type DoughResult struct {
	TotalPercentage float64 `json:"totalPercentage"`
	TotalFlour      float64 `json:"totalFlour"`
	TotalWater      float64 `json:"totalWater"`
	TotalSalt       float64 `json:"totalSalt"`
	TotalOil        float64 `json:"totalOil"`
	TotalSugar      float64 `json:"totalSugar"`
	TotalYeast      float64 `json:"totalYeast"`
	TotalDough      float64 `json:"totalDough"`

	Preferment *Preferment `json:"preferment,omitempty"`
	FinalDough *FinalDough `json:"finalDough,omitempty"`
}

// Preferment is the portion mixed and fermented ahead of the final dough.
type Preferment struct {
	Flour float64 `json:"flour"`
	Water float64 `json:"water"`
	Yeast float64 `json:"yeast"`
}

// FinalDough is what gets added to the preferment at mixing time.
type FinalDough struct {
	Flour float64 `json:"flour"`
	Water float64 `json:"water"`
	Salt  float64 `json:"salt"`
	Oil   float64 `json:"oil"`
	Sugar float64 `json:"sugar"`
	Yeast float64 `json:"yeast"`
}

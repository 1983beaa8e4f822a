package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ConfigField names an editable DoughConfig field.
type ConfigField int

const (
	FieldUnknown ConfigField = iota
	FieldHydration
	FieldSalt
	FieldOil
	FieldSugar
	FieldYeastPercentage
	FieldPrefermentFlourPercentage
	FieldNumUnits
	FieldUnitWeight
	FieldScale
	FieldBakingTempC
	FieldBakeType
	FieldRecipeStyle
	FieldStylePresetID
	FieldFlourID
	FieldLevainID
	FieldYeastType
	FieldFermentationTechnique
	FieldAmbientTemperature
)

var fieldNames = []string{
	"unknown",
	"hydration",
	"salt",
	"oil",
	"sugar",
	"yeast_percentage",
	"preferment_flour_percentage",
	"num_units",
	"unit_weight",
	"scale",
	"baking_temp_c",
	"bake_type",
	"recipe_style",
	"style_preset_id",
	"flour_id",
	"levain_id",
	"yeast_type",
	"fermentation_technique",
	"ambient_temperature",
}

var fieldLabels = []string{
	"Unknown",
	"Hydration",
	"Salt",
	"Oil",
	"Sugar",
	"Yeast",
	"Preferment flour",
	"Dough balls",
	"Ball weight",
	"Scale",
	"Baking temperature",
	"Bake type",
	"Style",
	"Style preset",
	"Flour",
	"Levain",
	"Yeast type",
	"Technique",
	"Room temperature",
}

var fieldAliases = map[string]ConfigField{
	"water":      FieldHydration,
	"h":          FieldHydration,
	"yeast":      FieldYeastPercentage,
	"preferment": FieldPrefermentFlourPercentage,
	"units":      FieldNumUnits,
	"balls":      FieldNumUnits,
	"weight":     FieldUnitWeight,
	"ball":       FieldUnitWeight,
	"temp":       FieldBakingTempC,
	"style":      FieldRecipeStyle,
	"preset":     FieldStylePresetID,
	"flour":      FieldFlourID,
	"levain":     FieldLevainID,
	"technique":  FieldFermentationTechnique,
	"ambient":    FieldAmbientTemperature,
	"room":       FieldAmbientTemperature,
}

func (f ConfigField) String() string { return enumString(fieldNames, f) }

// Label returns a human-readable name for the field.
func (f ConfigField) Label() string { return enumString(fieldLabels, f) }

// ParseField converts a field name or alias to a ConfigField.
func ParseField(s string) (ConfigField, error) {
	f, err := enumParse("config field", fieldNames, fieldAliases, s)
	if err != nil || f == FieldUnknown {
		return FieldUnknown, fmt.Errorf("%q: %w", s, ErrUnknownField)
	}
	return f, nil
}

func (f ConfigField) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *ConfigField) UnmarshalText(text []byte) error {
	v, err := ParseField(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// IsNumeric reports whether the field holds a number.
func (f ConfigField) IsNumeric() bool {
	return f >= FieldHydration && f <= FieldBakingTempC
}

// Number returns the numeric value of f in c. ok is false for
// non-numeric fields.
func (c DoughConfig) Number(f ConfigField) (v float64, ok bool) {
	switch f {
	case FieldHydration:
		return c.Hydration, true
	case FieldSalt:
		return c.Salt, true
	case FieldOil:
		return c.Oil, true
	case FieldSugar:
		return c.Sugar, true
	case FieldYeastPercentage:
		return c.YeastPercentage, true
	case FieldPrefermentFlourPercentage:
		return c.PrefermentFlourPercentage, true
	case FieldNumUnits:
		return float64(c.NumUnits), true
	case FieldUnitWeight:
		return c.UnitWeight, true
	case FieldScale:
		return c.Scale, true
	case FieldBakingTempC:
		return c.BakingTempC, true
	default:
		return 0, false
	}
}

// WithNumber returns a copy of c with numeric field f set to v.
func (c DoughConfig) WithNumber(f ConfigField, v float64) (DoughConfig, error) {
	switch f {
	case FieldHydration:
		c.Hydration = v
	case FieldSalt:
		c.Salt = v
	case FieldOil:
		c.Oil = v
	case FieldSugar:
		c.Sugar = v
	case FieldYeastPercentage:
		c.YeastPercentage = v
	case FieldPrefermentFlourPercentage:
		c.PrefermentFlourPercentage = v
	case FieldNumUnits:
		c.NumUnits = int(v)
	case FieldUnitWeight:
		c.UnitWeight = v
	case FieldScale:
		c.Scale = v
	case FieldBakingTempC:
		c.BakingTempC = v
	default:
		return c, fmt.Errorf("%s is not numeric: %w", f, ErrUnknownField)
	}
	return c, nil
}

// With returns a copy of c with field f parsed from raw.
func (c DoughConfig) With(f ConfigField, raw string) (DoughConfig, error) {
	raw = strings.TrimSpace(raw)
	if f.IsNumeric() {
		v, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
		if err != nil {
			return c, fmt.Errorf("%s: %q is not a number: %w", f, raw, ErrUnknownValue)
		}
		return c.WithNumber(f, v)
	}

	var err error
	switch f {
	case FieldBakeType:
		c.BakeType, err = ParseBakeType(raw)
	case FieldRecipeStyle:
		c.RecipeStyle, err = ParseRecipeStyle(raw)
	case FieldStylePresetID:
		c.StylePresetID = raw
	case FieldFlourID:
		c.FlourID = raw
	case FieldLevainID:
		c.LevainID = raw
	case FieldYeastType:
		c.YeastType, err = ParseYeastType(raw)
	case FieldFermentationTechnique:
		c.FermentationTechnique, err = ParseTechnique(raw)
	case FieldAmbientTemperature:
		c.AmbientTemperature, err = ParseAmbient(raw)
	default:
		err = fmt.Errorf("%q: %w", f.String(), ErrUnknownField)
	}
	return c, err
}

// Format renders the value of f in c for display.
func (c DoughConfig) Format(f ConfigField) string {
	if v, ok := c.Number(f); ok {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	switch f {
	case FieldBakeType:
		return c.BakeType.String()
	case FieldRecipeStyle:
		return c.RecipeStyle.String()
	case FieldStylePresetID:
		return c.StylePresetID
	case FieldFlourID:
		return c.FlourID
	case FieldLevainID:
		return c.LevainID
	case FieldYeastType:
		return c.YeastType.String()
	case FieldFermentationTechnique:
		return c.FermentationTechnique.String()
	case FieldAmbientTemperature:
		return c.AmbientTemperature.String()
	default:
		return ""
	}
}

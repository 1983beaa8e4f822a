package domain

import (
	"fmt"
	"strings"
)

// enumString returns names[v], or "unknown" when v is out of range.
func enumString[T ~int](names []string, v T) string {
	if int(v) < 0 || int(v) >= len(names) {
		return "unknown"
	}
	return names[v]
}

// normalizeName lowercases s and folds spaces and dashes to underscores.
func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ReplaceAll(s, " ", "_")
}

// enumParse resolves a name (or alias) to its enum value.
func enumParse[T ~int](kind string, names []string, aliases map[string]T, s string) (T, error) {
	n := normalizeName(s)
	for i, name := range names {
		if name == n {
			return T(i), nil
		}
	}
	if v, ok := aliases[n]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%s %q: %w", kind, s, ErrUnknownValue)
}

// ── Bake type ────────────────────────────────────────────────────

// BakeType is the broad product category.
type BakeType int

const (
	BakePizza BakeType = iota
	BakeBread
	BakePastry
)

var bakeTypeNames = []string{"pizza", "bread", "pastry"}

func (b BakeType) String() string { return enumString(bakeTypeNames, b) }

// ParseBakeType converts a name to a BakeType.
func ParseBakeType(s string) (BakeType, error) {
	return enumParse[BakeType]("bake type", bakeTypeNames, nil, s)
}

func (b BakeType) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *BakeType) UnmarshalText(text []byte) error {
	v, err := ParseBakeType(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// ── Recipe style ─────────────────────────────────────────────────

// RecipeStyle is a named dough style. StyleCustom carries no profile.
type RecipeStyle int

const (
	StyleCustom RecipeStyle = iota
	StyleNeapolitan
	StyleNewYork
	StyleRomanTeglia
	StyleDetroit
	StyleFocaccia
	StylePanPizza
	StyleCiabatta
	StyleBaguette
	StyleCountryLoaf
	StyleSandwichLoaf
	StyleBrioche
)

var recipeStyleNames = []string{
	"custom",
	"neapolitan",
	"new_york",
	"roman_teglia",
	"detroit",
	"focaccia",
	"pan_pizza",
	"ciabatta",
	"baguette",
	"country_loaf",
	"sandwich_loaf",
	"brioche",
}

var recipeStyleAliases = map[string]RecipeStyle{
	"napoletana": StyleNeapolitan,
	"ny":         StyleNewYork,
	"nyc":        StyleNewYork,
	"teglia":     StyleRomanTeglia,
	"roman":      StyleRomanTeglia,
	"pan":        StylePanPizza,
	"sourdough":  StyleCountryLoaf,
}

func (s RecipeStyle) String() string { return enumString(recipeStyleNames, s) }

// ParseRecipeStyle converts a name or common alias to a RecipeStyle.
func ParseRecipeStyle(s string) (RecipeStyle, error) {
	return enumParse("recipe style", recipeStyleNames, recipeStyleAliases, s)
}

// BakeType returns the product category the style belongs to.
func (s RecipeStyle) BakeType() BakeType {
	switch s {
	case StyleNeapolitan, StyleNewYork, StyleRomanTeglia, StyleDetroit, StylePanPizza:
		return BakePizza
	case StyleFocaccia, StyleCiabatta, StyleBaguette, StyleCountryLoaf, StyleSandwichLoaf:
		return BakeBread
	case StyleBrioche:
		return BakePastry
	default:
		return BakePizza
	}
}

// IsPanStyle reports whether the dough is baked in a pan rather than on a surface.
func (s RecipeStyle) IsPanStyle() bool {
	return s == StyleDetroit || s == StyleFocaccia || s == StylePanPizza
}

func (s RecipeStyle) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *RecipeStyle) UnmarshalText(text []byte) error {
	v, err := ParseRecipeStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ── Yeast type ───────────────────────────────────────────────────

// YeastType is the leavening agent.
type YeastType int

const (
	YeastInstantDry YeastType = iota
	YeastActiveDry
	YeastFresh
	YeastSourdoughStarter
	YeastUserLevain
)

var yeastTypeNames = []string{"instant_dry", "active_dry", "fresh", "sourdough_starter", "user_levain"}

var yeastTypeAliases = map[string]YeastType{
	"idy":       YeastInstantDry,
	"instant":   YeastInstantDry,
	"ady":       YeastActiveDry,
	"active":    YeastActiveDry,
	"cy":        YeastFresh,
	"cake":      YeastFresh,
	"starter":   YeastSourdoughStarter,
	"sourdough": YeastSourdoughStarter,
	"levain":    YeastUserLevain,
}

func (y YeastType) String() string { return enumString(yeastTypeNames, y) }

// ParseYeastType converts a name or common abbreviation to a YeastType.
func ParseYeastType(s string) (YeastType, error) {
	return enumParse("yeast type", yeastTypeNames, yeastTypeAliases, s)
}

// IsStarter reports whether the yeast percentage is a levain percentage
// rather than a commercial yeast percentage.
func (y YeastType) IsStarter() bool {
	return y == YeastSourdoughStarter || y == YeastUserLevain
}

func (y YeastType) MarshalText() ([]byte, error) { return []byte(y.String()), nil }

func (y *YeastType) UnmarshalText(text []byte) error {
	v, err := ParseYeastType(string(text))
	if err != nil {
		return err
	}
	*y = v
	return nil
}

// ── Fermentation technique ───────────────────────────────────────

// FermentationTechnique selects how the flour is split before mixing.
type FermentationTechnique int

const (
	TechniqueDirect FermentationTechnique = iota
	TechniquePoolish
	TechniqueBiga
)

var techniqueNames = []string{"direct", "poolish", "biga"}

func (t FermentationTechnique) String() string { return enumString(techniqueNames, t) }

// ParseTechnique converts a name to a FermentationTechnique.
func ParseTechnique(s string) (FermentationTechnique, error) {
	return enumParse[FermentationTechnique]("fermentation technique", techniqueNames, nil, s)
}

func (t FermentationTechnique) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *FermentationTechnique) UnmarshalText(text []byte) error {
	v, err := ParseTechnique(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ── Ambient temperature ──────────────────────────────────────────

// AmbientTemperature is a coarse room-temperature category.
type AmbientTemperature int

const (
	AmbientMild AmbientTemperature = iota
	AmbientCold
	AmbientHot
)

var ambientNames = []string{"mild", "cold", "hot"}

func (a AmbientTemperature) String() string { return enumString(ambientNames, a) }

// ParseAmbient converts a name to an AmbientTemperature.
func ParseAmbient(s string) (AmbientTemperature, error) {
	return enumParse[AmbientTemperature]("ambient temperature", ambientNames, nil, s)
}

// Celsius returns the representative room temperature for the category.
func (a AmbientTemperature) Celsius() float64 {
	switch a {
	case AmbientCold:
		return 16
	case AmbientHot:
		return 28
	default:
		return 22
	}
}

func (a AmbientTemperature) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *AmbientTemperature) UnmarshalText(text []byte) error {
	v, err := ParseAmbient(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ── Oven type ────────────────────────────────────────────────────

// OvenType classifies the baking equipment.
type OvenType int

const (
	OvenHomeElectric OvenType = iota
	OvenHomeGas
	OvenWoodFired
	OvenPortableHighTemp
)

var ovenTypeNames = []string{"home_electric", "home_gas", "wood_fired", "portable_high_temp"}

var ovenTypeAliases = map[string]OvenType{
	"electric": OvenHomeElectric,
	"gas":      OvenHomeGas,
	"wood":     OvenWoodFired,
	"portable": OvenPortableHighTemp,
	"ooni":     OvenPortableHighTemp,
}

func (o OvenType) String() string { return enumString(ovenTypeNames, o) }

// ParseOvenType converts a name or alias to an OvenType.
func ParseOvenType(s string) (OvenType, error) {
	return enumParse("oven type", ovenTypeNames, ovenTypeAliases, s)
}

// IsHome reports whether the oven is a domestic gas or electric oven.
func (o OvenType) IsHome() bool {
	return o == OvenHomeElectric || o == OvenHomeGas
}

// IsHighTemp reports whether the oven runs at live-fire temperatures.
func (o OvenType) IsHighTemp() bool {
	return o == OvenWoodFired || o == OvenPortableHighTemp
}

func (o OvenType) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *OvenType) UnmarshalText(text []byte) error {
	v, err := ParseOvenType(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// ── Surface type ─────────────────────────────────────────────────

// SurfaceType is the baking surface. SurfaceNone means "not chosen".
type SurfaceType int

const (
	SurfaceNone SurfaceType = iota
	SurfaceSteel
	SurfaceStone
	SurfaceBiscotto
	SurfacePan
)

var surfaceNames = []string{"none", "steel", "stone", "biscotto", "pan"}

func (s SurfaceType) String() string { return enumString(surfaceNames, s) }

// ParseSurface converts a name to a SurfaceType.
func ParseSurface(s string) (SurfaceType, error) {
	return enumParse[SurfaceType]("surface", surfaceNames, nil, s)
}

func (s SurfaceType) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *SurfaceType) UnmarshalText(text []byte) error {
	v, err := ParseSurface(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ── Unit system ──────────────────────────────────────────────────

// UnitSystem selects metric or US customary volumetric measures.
type UnitSystem int

const (
	UnitsMetric UnitSystem = iota
	UnitsUS
)

var unitSystemNames = []string{"metric", "us"}

func (u UnitSystem) String() string { return enumString(unitSystemNames, u) }

// ParseUnitSystem converts a name to a UnitSystem.
func ParseUnitSystem(s string) (UnitSystem, error) {
	return enumParse("unit system", unitSystemNames, map[string]UnitSystem{"imperial": UnitsUS, "us_customary": UnitsUS}, s)
}

func (u UnitSystem) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

func (u *UnitSystem) UnmarshalText(text []byte) error {
	v, err := ParseUnitSystem(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

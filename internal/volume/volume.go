// Package volume renders gram quantities as human-readable volumetric
// measures (teaspoons, tablespoons, cups) using per-ingredient densities.
package volume

import (
	"fmt"
	"math"
	"strings"

	"github.com/hammamikhairi/doughlab/internal/domain"
)

// UnitLabels are the display names used for each measure.
type UnitLabels struct {
	Teaspoon   string
	Tablespoon string
	Cup        string
}

// DefaultLabels are the English abbreviations.
var DefaultLabels = UnitLabels{Teaspoon: "tsp", Tablespoon: "tbsp", Cup: "cups"}

// Density is grams per cup in each unit system.
type Density struct {
	US     float64
	Metric float64
}

// densities maps ingredient keys to grams per cup.
var densities = map[string]Density{
	"flour":             {US: 120, Metric: 125},
	"whole_wheat_flour": {US: 128, Metric: 135},
	"semolina":          {US: 167, Metric: 175},
	"water":             {US: 236.6, Metric: 250},
	"milk":              {US: 242, Metric: 255},
	"salt":              {US: 288, Metric: 300},
	"sugar":             {US: 200, Metric: 210},
	"olive_oil":         {US: 216, Metric: 228},
	"butter":            {US: 227, Metric: 240},
	"honey":             {US: 340, Metric: 355},
	"instant_yeast":     {US: 150, Metric: 155},
	"active_dry_yeast":  {US: 150, Metric: 155},
	"fresh_yeast":       {US: 200, Metric: 210},
	"diastatic_malt":    {US: 140, Metric: 148},
}

var ingredientAliases = map[string]string{
	"oil":         "olive_oil",
	"yeast":       "instant_yeast",
	"idy":         "instant_yeast",
	"ady":         "active_dry_yeast",
	"bread_flour": "flour",
	"malt":        "diastatic_malt",
}

// measure holds the millilitre size of each unit in a system.
type measure struct {
	cup, tbsp, tsp float64
}

var measures = map[domain.UnitSystem]measure{
	domain.UnitsMetric: {cup: 250, tbsp: 15, tsp: 5},
	domain.UnitsUS:     {cup: 236.588, tbsp: 14.7868, tsp: 4.92892},
}

// LookupDensity returns the density for an ingredient key, or ok=false if unknown.
func LookupDensity(ingredient string) (Density, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(ingredient)), " ", "_")
	if alias, ok := ingredientAliases[key]; ok {
		key = alias
	}
	d, ok := densities[key]
	return d, ok
}

// GramsToVolume expresses grams of ingredient as teaspoons (below 3 tsp,
// nearest quarter), tablespoons (below 4 tbsp, nearest half) or cups
// (nearest quarter). Unknown ingredients fall back to an approximate
// gram string.
func GramsToVolume(ingredient string, grams float64, labels UnitLabels, system domain.UnitSystem) string {
	d, ok := LookupDensity(ingredient)
	if !ok {
		return fmt.Sprintf("~%.0f g", grams)
	}
	if grams <= 0 || math.IsNaN(grams) {
		return "0 " + labels.Teaspoon
	}

	m, ok := measures[system]
	if !ok {
		m = measures[domain.UnitsMetric]
	}
	perCup := d.Metric
	if system == domain.UnitsUS {
		perCup = d.US
	}

	ml := grams / perCup * m.cup
	tsp := ml / m.tsp
	tbsp := ml / m.tbsp

	switch {
	case tsp < 3:
		return render(roundTo(tsp, 0.25), labels.Teaspoon, true)
	case tbsp < 4:
		return render(roundTo(tbsp, 0.5), labels.Tablespoon, false)
	default:
		return render(roundTo(ml/m.cup, 0.25), labels.Cup, false)
	}
}

func render(qty float64, label string, smallest bool) string {
	whole, glyph := NearestFraction(qty)
	switch {
	case whole == 0 && glyph == "":
		if smallest {
			return "< ¼ " + label
		}
		return "0 " + label
	case whole == 0:
		return glyph + " " + label
	case glyph == "":
		return fmt.Sprintf("%d %s", whole, label)
	default:
		return fmt.Sprintf("%d %s %s", whole, glyph, label)
	}
}

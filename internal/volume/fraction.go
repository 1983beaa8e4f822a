package volume

import "math"

// FractionTolerance is how close a remainder must be to a supported
// fraction to be rendered as that fraction.
const FractionTolerance = 0.05

type fraction struct {
	value float64
	glyph string
}

// fractions are the vulgar fractions a measure may be rendered with.
var fractions = []fraction{
	{1.0 / 8, "⅛"},
	{1.0 / 4, "¼"},
	{1.0 / 3, "⅓"},
	{3.0 / 8, "⅜"},
	{1.0 / 2, "½"},
	{5.0 / 8, "⅝"},
	{2.0 / 3, "⅔"},
	{3.0 / 4, "¾"},
	{7.0 / 8, "⅞"},
}

// NearestFraction splits x (>= 0) into a whole part and the glyph of the
// closest supported fraction. A remainder within FractionTolerance of 0
// or 1 snaps to the whole number; a remainder that matches no supported
// fraction is dropped and glyph is empty.
func NearestFraction(x float64) (whole int, glyph string) {
	if x <= 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, ""
	}
	w := math.Floor(x)
	rem := x - w

	switch {
	case rem < FractionTolerance:
		return int(w), ""
	case rem > 1-FractionTolerance:
		return int(w) + 1, ""
	}

	best := -1
	bestDist := math.MaxFloat64
	for i, f := range fractions {
		d := math.Abs(rem - f.value)
		if d <= FractionTolerance && d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return int(w), ""
	}
	return int(w), fractions[best].glyph
}

// roundTo rounds x to the nearest multiple of step.
func roundTo(x, step float64) float64 {
	return math.Round(x/step) * step
}

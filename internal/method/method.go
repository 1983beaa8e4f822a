// Package method generates the step-by-step working method for a dough.
// The list is rebuilt from scratch on every call; the same config and
// result always produce the same steps.
package method

import (
	"fmt"
	"math"
	"strconv"

	"github.com/hammamikhairi/doughlab/internal/domain"
	"github.com/hammamikhairi/doughlab/internal/environment"
)

// TargetDDTC is the dough temperature the water temperature is chosen for.
const TargetDDTC = 25.0

// AmbientFactor stretches or shortens room-temperature fermentation.
func AmbientFactor(a domain.AmbientTemperature) float64 {
	switch a {
	case domain.AmbientCold:
		return 1.5
	case domain.AmbientHot:
		return 0.7
	default:
		return 1
	}
}

// styleBakeTempC is the bake temperature used when the config sets none.
var styleBakeTempC = map[domain.RecipeStyle]float64{
	domain.StyleNeapolitan:   485,
	domain.StyleNewYork:      290,
	domain.StyleRomanTeglia:  260,
	domain.StyleDetroit:      260,
	domain.StyleFocaccia:     230,
	domain.StylePanPizza:     250,
	domain.StyleCiabatta:     240,
	domain.StyleBaguette:     250,
	domain.StyleCountryLoaf:  245,
	domain.StyleSandwichLoaf: 200,
	domain.StyleBrioche:      180,
}

var bakeTypeTempC = map[domain.BakeType]float64{
	domain.BakePizza:  280,
	domain.BakeBread:  230,
	domain.BakePastry: 180,
}

// BakeTempC returns cfg.BakingTempC, or the style's usual temperature.
func BakeTempC(cfg domain.DoughConfig) float64 {
	if cfg.BakingTempC > 0 {
		return cfg.BakingTempC
	}
	if t, ok := styleBakeTempC[cfg.RecipeStyle]; ok {
		return t
	}
	return bakeTypeTempC[cfg.BakeType]
}

// Generate returns the working method for cfg, using the gram weights in res.
func Generate(cfg domain.DoughConfig, res domain.DoughResult) []domain.TechnicalStep {
	g := newGenerator(cfg, res)

	switch cfg.RecipeStyle {
	case domain.StyleBaguette:
		g.baguette()
	case domain.StyleCiabatta:
		g.ciabatta()
	default:
		switch {
		case cfg.YeastType.IsStarter():
			g.starter()
		case cfg.FermentationTechnique == domain.TechniqueDirect:
			g.direct()
		default:
			g.preferment()
		}
	}
	return g.steps
}

type generator struct {
	cfg    domain.DoughConfig
	res    domain.DoughResult
	factor float64
	steps  []domain.TechnicalStep
	counts map[domain.StepPhase]int
}

func newGenerator(cfg domain.DoughConfig, res domain.DoughResult) *generator {
	return &generator{
		cfg:    cfg,
		res:    res,
		factor: AmbientFactor(cfg.AmbientTemperature),
		steps:  []domain.TechnicalStep{},
		counts: make(map[domain.StepPhase]int),
	}
}

// add appends s under phase and assigns its id.
func (g *generator) add(phase domain.StepPhase, s domain.TechnicalStep) {
	g.counts[phase]++
	s.ID = fmt.Sprintf("%s-%d", phase, g.counts[phase])
	s.Phase = phase
	g.steps = append(g.steps, s)
}

// room formats a room-temperature window scaled by the ambient factor.
func (g *generator) room(lo, hi float64) string {
	return span(lo*g.factor, hi*g.factor)
}

func (g *generator) waterTempLabel() string {
	room := g.cfg.AmbientTemperature.Celsius()
	return fmt.Sprintf("Water at %.0f°C", environment.WaterTemperature(TargetDDTC, room, room))
}

func (g *generator) bakeTempLabel() string {
	return fmt.Sprintf("%.0f°C", BakeTempC(g.cfg))
}

func (g *generator) units() string {
	return fmt.Sprintf("%d × %s g", g.cfg.NumUnits, grams(g.cfg.UnitWeight*g.cfg.EffectiveScale()))
}

// span renders an hour window, switching to minutes below one hour.
func span(lo, hi float64) string {
	if hi < 1 {
		return fmt.Sprintf("%.0f–%.0f min", lo*60, hi*60)
	}
	return fmt.Sprintf("%s–%s h", halfHours(lo), halfHours(hi))
}

func halfHours(h float64) string {
	return strconv.FormatFloat(math.Round(h*2)/2, 'f', -1, 64)
}

func grams(v float64) string {
	if v < 10 {
		return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
	}
	return strconv.FormatFloat(math.Round(v), 'f', -1, 64)
}

package method

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/doughlab/internal/domain"
)

func (g *generator) weighIngredients() {
	r := g.res
	parts := []string{
		grams(r.TotalFlour) + " g flour",
		grams(r.TotalWater) + " g water",
		grams(r.TotalSalt) + " g salt",
		grams(r.TotalYeast) + " g " + yeastName(g.cfg.YeastType),
	}
	if r.TotalOil > 0 {
		parts = append(parts, grams(r.TotalOil)+" g oil")
	}
	if r.TotalSugar > 0 {
		parts = append(parts, grams(r.TotalSugar)+" g sugar")
	}
	g.add(domain.PhasePrep, domain.TechnicalStep{
		Title:              "Weigh the ingredients",
		ActionInstructions: "Weigh out " + strings.Join(parts, ", ") + ".",
		TemperatureLabel:   g.waterTempLabel(),
		TechnicalExplanation: "Water temperature is the easiest lever on final dough temperature; " +
			"the room and the flour set the rest.",
	})
}

func (g *generator) buildPreferment() {
	name := g.cfg.FermentationTechnique.String()
	step := domain.TechnicalStep{
		Title: "Build the " + name,
	}
	if p := g.res.Preferment; p != nil {
		step.ActionInstructions = fmt.Sprintf("Mix %s g flour, %s g water and %s g yeast until no dry flour remains.",
			grams(p.Flour), grams(p.Water), grams(p.Yeast))
	} else {
		step.ActionInstructions = "Mix part of the flour and water with a pinch of yeast until no dry flour remains."
	}

	switch g.cfg.FermentationTechnique {
	case domain.TechniqueBiga:
		step.DurationLabel = g.room(16, 24)
		step.TemperatureLabel = "18°C"
		step.TechnicalExplanation = "A stiff biga ferments slowly and builds acidity and gluten strength."
		step.ProTip = "Mix only until shaggy; a biga should look rough, not smooth."
	case domain.TechniquePoolish:
		step.DurationLabel = g.room(12, 16)
		step.TemperatureLabel = "20°C"
		step.TechnicalExplanation = "A liquid poolish favors enzyme activity and extensibility."
		step.ProTip = "It is ready when domed and just beginning to collapse in the center."
	default:
		return
	}
	step.CriticalPoint = "Use it at peak; an over-ripe preferment weakens the final dough."
	g.add(domain.PhasePrep, step)
}

func (g *generator) finalMix() {
	action := "Combine the remaining ingredients with the preferment."
	if f := g.res.FinalDough; f != nil {
		if f.Yeast > 0 {
			action = fmt.Sprintf("Add %s g flour, %s g water and %s g yeast to the preferment, then the %s g salt.",
				grams(f.Flour), grams(f.Water), grams(f.Yeast), grams(f.Salt))
		} else {
			action = fmt.Sprintf("Add %s g flour and %s g water to the preferment, then the %s g salt. No further yeast; the preferment carries it.",
				grams(f.Flour), grams(f.Water), grams(f.Salt))
		}
		if f.Oil > 0 {
			action += fmt.Sprintf(" Stream in %s g oil last.", grams(f.Oil))
		}
	}
	g.add(domain.PhaseMix, domain.TechnicalStep{
		Title:              "Final mix",
		ActionInstructions: action,
		TemperatureLabel:   g.waterTempLabel(),
		CriticalPoint:      "Add the salt after the preferment is dispersed so it does not stall the yeast.",
	})
}

func (g *generator) directMix() {
	action := "Dissolve the yeast in most of the water, add the flour and mix until no dry flour remains. Add the salt with the last of the water."
	if g.res.TotalOil > 0 {
		action += " Add the oil once the dough has come together."
	}
	g.add(domain.PhaseMix, domain.TechnicalStep{
		Title:              "Mix",
		ActionInstructions: action,
		DurationLabel:      "5–10 min",
		TemperatureLabel:   g.waterTempLabel(),
	})
}

func (g *generator) knead() {
	g.add(domain.PhaseKnead, domain.TechnicalStep{
		Title:                "Knead",
		ActionInstructions:   "Knead until smooth and elastic.",
		DurationLabel:        "10–15 min",
		TechnicalExplanation: "Kneading aligns the gluten network that will hold the fermentation gas.",
		CriticalPoint:        "Stop when a thin piece stretches into a translucent windowpane.",
	})
}

func (g *generator) bulk(lo, hi float64) {
	g.add(domain.PhaseBulk, domain.TechnicalStep{
		Title:              "Bulk ferment",
		ActionInstructions: "Cover the dough and leave it to rise until about 50% larger.",
		DurationLabel:      g.room(lo, hi),
		TemperatureLabel:   fmt.Sprintf("Room, about %.0f°C", g.cfg.AmbientTemperature.Celsius()),
		ProTip:             "Watch the dough, not the clock: judge by volume and bubbles at the edge.",
	})
}

func (g *generator) divide() {
	if g.cfg.RecipeStyle.IsPanStyle() {
		g.add(domain.PhaseDivide, domain.TechnicalStep{
			Title:              "Pan the dough",
			ActionInstructions: fmt.Sprintf("Divide into %s pieces, oil the pans generously and press each piece toward the corners.", g.units()),
			ProTip:             "If the dough springs back, rest it 15 minutes and stretch again.",
		})
		return
	}

	title, shape := "Divide and ball", "tight balls"
	if g.cfg.BakeType != domain.BakePizza {
		title, shape = "Divide and shape", "loaves"
	}
	g.add(domain.PhaseDivide, domain.TechnicalStep{
		Title:              title,
		ActionInstructions: fmt.Sprintf("Divide into %s pieces and shape into %s.", g.units(), shape),
		CriticalPoint:      "Build surface tension without tearing the skin.",
	})
}

func (g *generator) proof(lo, hi float64) {
	step := domain.TechnicalStep{
		Title:              "Final proof",
		ActionInstructions: "Cover and proof until the dough is relaxed and springs back slowly when pressed.",
		DurationLabel:      g.room(lo, hi),
	}
	if g.cfg.RecipeStyle.IsPanStyle() {
		step.ActionInstructions = "Proof in the pans until the dough fills the corners and looks puffy."
	}
	g.add(domain.PhaseProof, step)
}

func (g *generator) bake() {
	step := domain.TechnicalStep{
		Title:            "Bake",
		TemperatureLabel: g.bakeTempLabel(),
	}
	switch {
	case g.cfg.RecipeStyle == domain.StyleNeapolitan && BakeTempC(g.cfg) >= 430:
		step.ActionInstructions = "Stretch by hand, top lightly and bake on the hearth, turning once."
		step.DurationLabel = "60–90 s"
		step.References = []string{"AVPN International Regulations"}
	case g.cfg.RecipeStyle.IsPanStyle():
		step.ActionInstructions = "Bake on the lowest rack until the base is golden and fried."
		step.DurationLabel = "12–20 min"
	case g.cfg.BakeType == domain.BakePizza:
		step.ActionInstructions = "Stretch, top and bake on the preheated surface until the rim is well browned."
		step.DurationLabel = "5–8 min"
		step.ProTip = "Preheat the stone or steel for at least 45 minutes."
	case g.cfg.BakeType == domain.BakePastry:
		step.ActionInstructions = "Egg-wash and bake until deep golden; tent with foil if it browns too fast."
		step.DurationLabel = "25–35 min"
	default:
		step.ActionInstructions = "Score and bake with steam for the first 15 minutes, then vent and finish dry."
		step.DurationLabel = "35–45 min"
		step.CriticalPoint = "Bake until the crust is deeply colored; pale loaves taste flat."
	}
	g.add(domain.PhaseBake, step)
}

func (g *generator) direct() {
	g.weighIngredients()
	g.directMix()
	g.knead()
	g.bulk(2, 3)
	g.divide()
	g.proof(4, 6)
	g.bake()
}

func (g *generator) preferment() {
	g.weighIngredients()
	g.buildPreferment()
	g.finalMix()
	g.knead()
	g.bulk(1, 2)
	g.divide()
	g.proof(3, 5)
	g.bake()
}

func (g *generator) starter() {
	g.weighIngredients()
	g.add(domain.PhasePrep, domain.TechnicalStep{
		Title:              "Build the levain",
		ActionInstructions: fmt.Sprintf("Feed the starter so that %s g of ripe levain is ready at mixing time.", grams(g.res.TotalYeast)),
		DurationLabel:      g.room(4, 8),
		CriticalPoint:      "Use it at peak, when it has doubled and the dome is just starting to flatten.",
	})
	g.add(domain.PhaseMix, domain.TechnicalStep{
		Title:                "Autolyse",
		ActionInstructions:   "Mix the flour with the water, holding back about 5%, and rest covered.",
		DurationLabel:        "30–60 min",
		TechnicalExplanation: "Resting flour and water before the levain lets the gluten form on its own.",
	})
	g.add(domain.PhaseMix, domain.TechnicalStep{
		Title:              "Add levain and salt",
		ActionInstructions: "Add the levain, then the salt with the reserved water, and squeeze through until fully absorbed.",
		TemperatureLabel:   g.waterTempLabel(),
	})
	g.add(domain.PhaseBulk, domain.TechnicalStep{
		Title:              "Bulk ferment with folds",
		ActionInstructions: "Give 4 sets of stretch and folds 30 minutes apart, then leave undisturbed.",
		DurationLabel:      g.room(4, 6),
		CriticalPoint:      "End bulk when the dough has grown 50-75% and is domed with bubbles at the edges.",
	})
	g.divide()
	g.add(domain.PhaseProof, domain.TechnicalStep{
		Title:              "Cold retard",
		ActionInstructions: "Cover and refrigerate.",
		DurationLabel:      "8–16 h",
		TemperatureLabel:   "4°C",
		ProTip:             "A cold dough scores more cleanly and holds its shape in the oven.",
	})
	g.bake()
}

func (g *generator) baguette() {
	g.weighIngredients()
	g.buildPreferment()
	g.add(domain.PhaseMix, domain.TechnicalStep{
		Title:              "Autolyse",
		ActionInstructions: "Mix the flour with the water, leaving out yeast and salt, and rest covered.",
		DurationLabel:      "30 min",
	})
	if g.res.Preferment != nil {
		g.finalMix()
	} else {
		g.add(domain.PhaseMix, domain.TechnicalStep{
			Title:              "Final mix",
			ActionInstructions: "Add the yeast and salt and mix until the dough is smooth.",
			TemperatureLabel:   g.waterTempLabel(),
		})
	}
	g.add(domain.PhaseBulk, domain.TechnicalStep{
		Title:              "Bulk ferment with folds",
		ActionInstructions: "Fold the dough once after 30 minutes and again after an hour.",
		DurationLabel:      g.room(1.5, 2),
	})
	g.add(domain.PhaseDivide, domain.TechnicalStep{
		Title:              "Divide and pre-shape",
		ActionInstructions: fmt.Sprintf("Divide into %s pieces, pre-shape into loose cylinders and rest 20 minutes.", g.units()),
	})
	g.add(domain.PhaseDivide, domain.TechnicalStep{
		Title:              "Shape baguettes",
		ActionInstructions: "Fold each piece into a tight log, then roll it out from the center to the length of the couche.",
		CriticalPoint:      "Keep even pressure so the baguette has no thin spots.",
	})
	g.add(domain.PhaseProof, domain.TechnicalStep{
		Title:              "Proof on the couche",
		ActionInstructions: "Proof seam-side up between pleats of a floured couche.",
		DurationLabel:      g.room(0.75, 1),
	})
	g.add(domain.PhaseBake, domain.TechnicalStep{
		Title:              "Score",
		ActionInstructions: "Score 5 to 7 overlapping cuts along the length with a shallow blade angle.",
	})
	g.add(domain.PhaseBake, domain.TechnicalStep{
		Title:              "Bake with steam",
		ActionInstructions: "Bake with steam for the first 10 minutes, then vent and bake until deep golden.",
		DurationLabel:      "20–25 min",
		TemperatureLabel:   g.bakeTempLabel(),
	})
}

func (g *generator) ciabatta() {
	g.weighIngredients()
	g.buildPreferment()
	action := "Mix everything except the last 10% of the water until the dough pulls from the bowl."
	if g.res.Preferment != nil {
		action = "Mix the poolish with the remaining ingredients, holding back 10% of the water, until the dough pulls from the bowl."
	}
	g.add(domain.PhaseMix, domain.TechnicalStep{
		Title:                "Mix with bassinage",
		ActionInstructions:   action + " Then add the reserved water a splash at a time.",
		TemperatureLabel:     g.waterTempLabel(),
		TechnicalExplanation: "Adding the last water late lets the gluten develop first.",
	})
	g.add(domain.PhaseBulk, domain.TechnicalStep{
		Title:              "Bulk ferment with coil folds",
		ActionInstructions: "Give 3 to 4 coil folds 30 minutes apart in an oiled tub.",
		DurationLabel:      g.room(2, 3),
	})
	g.add(domain.PhaseDivide, domain.TechnicalStep{
		Title:              "Cut the slippers",
		ActionInstructions: fmt.Sprintf("Turn out onto a floured bench and cut %s rectangles without degassing.", g.units()),
		CriticalPoint:      "Do not shape; handling now collapses the open crumb.",
	})
	g.proof(0.5, 0.75)
	g.add(domain.PhaseBake, domain.TechnicalStep{
		Title:              "Bake with steam",
		ActionInstructions: "Flip onto the peel and bake with steam until the crust is crisp and well colored.",
		DurationLabel:      "20–25 min",
		TemperatureLabel:   g.bakeTempLabel(),
	})
}

func yeastName(t domain.YeastType) string {
	switch t {
	case domain.YeastInstantDry:
		return "instant yeast"
	case domain.YeastActiveDry:
		return "active dry yeast"
	case domain.YeastFresh:
		return "fresh yeast"
	case domain.YeastSourdoughStarter, domain.YeastUserLevain:
		return "levain"
	default:
		return "yeast"
	}
}

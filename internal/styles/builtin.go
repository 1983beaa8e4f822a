package styles

import "github.com/hammamikhairi/doughlab/internal/domain"

// builtinPresets lists the shipped presets. The first preset of each style
// is that style's default.
func builtinPresets() []domain.StylePreset {
	return []domain.StylePreset{
		{
			ID:          "neapolitan-avpn",
			Name:        "Neapolitan (AVPN)",
			Description: "Soft, leopard-spotted pizza following the AVPN disciplinare: flour, water, salt, yeast.",
			Style:       domain.StyleNeapolitan,
			Tags:        []string{"pizza", "classic", "wood-fired"},
			Hydration:   62, Salt: 2.8, YeastPercentage: 0.15,
			Technique: domain.TechniqueDirect,
			FlourID:   "caputo-pizzeria",
			Profile: domain.StyleProfile{
				HydrationBand:     domain.Range{Min: 58, Max: 65},
				FermentationHours: domain.Range{Min: 8, Max: 24},
				FlourStrengthW:    domain.Range{Min: 250, Max: 320},
				MinOvenTempC:      430,
				BakeTempC:         485,
				Note:              "Bake 60-90 seconds on the hearth; no oil, no sugar.",
			},
		},
		{
			ID:          "neapolitan-contemporary",
			Name:        "Contemporary Neapolitan",
			Description: "High-hydration canotto style with a biga for a tall, airy cornicione.",
			Style:       domain.StyleNeapolitan,
			Tags:        []string{"pizza", "canotto", "biga"},
			Hydration:   70, Salt: 2.8, YeastPercentage: 0.1,
			Technique: domain.TechniqueBiga,
			FlourID:   "caputo-nuvola",
			Profile: domain.StyleProfile{
				HydrationBand:     domain.Range{Min: 65, Max: 75},
				FermentationHours: domain.Range{Min: 24, Max: 48},
				FlourStrengthW:    domain.Range{Min: 280, Max: 360},
				MinOvenTempC:      400,
				BakeTempC:         450,
				Note:              "The biga carries the flavor; keep the final mix cool.",
			},
		},
		{
			ID:          "new-york",
			Name:        "New York",
			Description: "Large, foldable slices with a crisp-chewy crust; oil and a little sugar help browning in a home oven.",
			Style:       domain.StyleNewYork,
			Tags:        []string{"pizza", "home-oven", "cold-ferment"},
			Hydration:   63, Salt: 2.5, Oil: 2, Sugar: 1, YeastPercentage: 0.4,
			Technique: domain.TechniqueDirect,
			FlourID:   "bread-flour",
			Profile: domain.StyleProfile{
				HydrationBand:     domain.Range{Min: 60, Max: 66},
				FermentationHours: domain.Range{Min: 24, Max: 72},
				FlourStrengthW:    domain.Range{Min: 280, Max: 350},
				MinOvenTempC:      250,
				BakeTempC:         290,
				Note:              "A cold ferment of 1-3 days develops the characteristic flavor.",
			},
		},
		{
			ID:          "roman-teglia",
			Name:        "Roman Teglia",
			Description: "Pizza in teglia: very wet dough baked in a blue-steel tray for an open, crunchy crumb.",
			Style:       domain.StyleRomanTeglia,
			Tags:        []string{"pizza", "tray", "high-hydration"},
			Hydration:   80, Salt: 2.5, Oil: 3, YeastPercentage: 0.3,
			Technique: domain.TechniqueDirect,
			FlourID:   "manitoba",
			Profile: domain.StyleProfile{
				HydrationBand:     domain.Range{Min: 75, Max: 85},
				FermentationHours: domain.Range{Min: 24, Max: 72},
				FlourStrengthW:    domain.Range{Min: 300, Max: 380},
				MinOvenTempC:      230,
				BakeTempC:         260,
				Note:              "Build strength with coil folds; the dough is too wet to knead.",
			},
		},
		{
			ID:          "detroit",
			Name:        "Detroit",
			Description: "Rectangular pan pizza with a fried, cheese-walled edge.",
			Style:       domain.StyleDetroit,
			Tags:        []string{"pizza", "pan", "home-oven"},
			Hydration:   70, Salt: 2.2, Oil: 1, YeastPercentage: 0.5,
			Technique: domain.TechniqueDirect,
			FlourID:   "bread-flour",
			Profile: domain.StyleProfile{
				HydrationBand:     domain.Range{Min: 66, Max: 75},
				FermentationHours: domain.Range{Min: 4, Max: 24},
				FlourStrengthW:    domain.Range{Min: 260, Max: 330},
				MinOvenTempC:      230,
				BakeTempC:         260,
				Note:              "Push the cheese right to the pan walls to get the frico edge.",
			},
		},
		{
			ID:          "pan-pizza",
			Name:        "Pan Pizza",
			Description: "Thick, tender pan pizza with a golden, oil-fried base.",
			Style:       domain.StylePanPizza,
			Tags:        []string{"pizza", "pan", "home-oven"},
			Hydration:   65, Salt: 2.2, Oil: 4, Sugar: 1, YeastPercentage: 0.6,
			Technique: domain.TechniqueDirect,
			FlourID:   "bread-flour",
			Profile: domain.StyleProfile{
				HydrationBand:     domain.Range{Min: 60, Max: 70},
				FermentationHours: domain.Range{Min: 4, Max: 24},
				FlourStrengthW:    domain.Range{Min: 240, Max: 320},
				MinOvenTempC:      220,
				BakeTempC:         250,
			},
		},
		{
			ID:          "focaccia",
			Name:        "Focaccia",
			Description: "Dimpled, olive-oil rich flatbread baked in a pan.",
			Style:       domain.StyleFocaccia,
			Tags:        []string{"bread", "pan", "high-hydration"},
			Hydration:   80, Salt: 2.5, Oil: 5, YeastPercentage: 0.5,
			Technique: domain.TechniqueDirect,
			FlourID:   "bread-flour",
			Profile: domain.StyleProfile{
				HydrationBand:     domain.Range{Min: 75, Max: 85},
				FermentationHours: domain.Range{Min: 6, Max: 24},
				FlourStrengthW:    domain.Range{Min: 260, Max: 340},
				MinOvenTempC:      200,
				BakeTempC:         230,
				Note:              "Be generous with the oil in the pan; it fries the base.",
			},
		},
		{
			ID:          "ciabatta",
			Name:        "Ciabatta",
			Description: "Rustic slipper loaf with a wide open crumb, built on a poolish.",
			Style:       domain.StyleCiabatta,
			Tags:        []string{"bread", "poolish", "high-hydration"},
			Hydration:   78, Salt: 2.2, YeastPercentage: 0.3,
			Technique: domain.TechniquePoolish,
			FlourID:   "bread-flour",
			Profile: domain.StyleProfile{
				HydrationBand:     domain.Range{Min: 75, Max: 85},
				FermentationHours: domain.Range{Min: 12, Max: 24},
				FlourStrengthW:    domain.Range{Min: 260, Max: 340},
				MinOvenTempC:      220,
				BakeTempC:         240,
			},
		},
		{
			ID:          "baguette",
			Name:        "Baguette",
			Description: "Classic French baguette with a thin, crackling crust.",
			Style:       domain.StyleBaguette,
			Tags:        []string{"bread", "poolish", "french"},
			Hydration:   68, Salt: 2, YeastPercentage: 0.3,
			Technique: domain.TechniquePoolish,
			FlourID:   "t65",
			Profile: domain.StyleProfile{
				HydrationBand:     domain.Range{Min: 65, Max: 72},
				FermentationHours: domain.Range{Min: 3, Max: 16},
				FlourStrengthW:    domain.Range{Min: 200, Max: 260},
				MinOvenTempC:      230,
				BakeTempC:         250,
				Note:              "Steam for the first 10 minutes so the scores can open.",
			},
		},
		{
			ID:          "country-loaf",
			Name:        "Country Loaf",
			Description: "Open-crumb sourdough boule with a deeply caramelized crust.",
			Style:       domain.StyleCountryLoaf,
			Tags:        []string{"bread", "sourdough", "levain"},
			Hydration:   75, Salt: 2, YeastPercentage: 0.2,
			Technique: domain.TechniqueDirect,
			FlourID:   "bread-flour",
			Profile: domain.StyleProfile{
				HydrationBand:     domain.Range{Min: 70, Max: 80},
				FermentationHours: domain.Range{Min: 12, Max: 24},
				FlourStrengthW:    domain.Range{Min: 240, Max: 320},
				MinOvenTempC:      220,
				BakeTempC:         245,
			},
		},
		{
			ID:          "sandwich-loaf",
			Name:        "Sandwich Loaf",
			Description: "Soft, enriched tin loaf with a tight crumb.",
			Style:       domain.StyleSandwichLoaf,
			Tags:        []string{"bread", "tin", "enriched"},
			Hydration:   62, Salt: 2, Oil: 4, Sugar: 5, YeastPercentage: 1.2,
			Technique: domain.TechniqueDirect,
			FlourID:   "bread-flour",
			Profile: domain.StyleProfile{
				HydrationBand:     domain.Range{Min: 58, Max: 66},
				FermentationHours: domain.Range{Min: 2, Max: 4},
				FlourStrengthW:    domain.Range{Min: 220, Max: 300},
				MinOvenTempC:      180,
				BakeTempC:         200,
			},
		},
		{
			ID:          "brioche",
			Name:        "Brioche",
			Description: "Rich, buttery viennoiserie dough; fat and sugar need a strong flour and a slow mix.",
			Style:       domain.StyleBrioche,
			Tags:        []string{"pastry", "enriched", "butter"},
			Hydration:   55, Salt: 2, Oil: 20, Sugar: 12, YeastPercentage: 1.5,
			Technique: domain.TechniqueDirect,
			FlourID:   "manitoba",
			Profile: domain.StyleProfile{
				HydrationBand:     domain.Range{Min: 50, Max: 65},
				FermentationHours: domain.Range{Min: 2, Max: 16},
				FlourStrengthW:    domain.Range{Min: 300, Max: 380},
				MinOvenTempC:      170,
				BakeTempC:         180,
				Note:              "Add the butter only after the gluten is developed.",
			},
		},
	}
}

package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hammamikhairi/doughlab/internal/domain"
	"github.com/hammamikhairi/doughlab/internal/engine"
	"github.com/hammamikhairi/doughlab/internal/volume"
)

// DisplayName turns an enum or id name like "new_york" or
// "neapolitan-avpn" into "New York" or "Neapolitan Avpn".
func DisplayName(name string) string {
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return cases.Title(language.English).String(name)
}

// IngredientRow is one line of a rendered formula.
type IngredientRow struct {
	Name    string
	Grams   float64
	Percent float64 // baker's percentage of the total flour
	Volume  string
}

// Ingredients lists the total weights of res, skipping absent oil and sugar.
func Ingredients(cfg domain.DoughConfig, res domain.DoughResult, units domain.UnitSystem) []IngredientRow {
	rb := rowBuilder{flour: res.TotalFlour, units: units}
	rows := []IngredientRow{
		rb.row("Flour", "flour", res.TotalFlour),
		rb.row("Water", "water", res.TotalWater),
		rb.row("Salt", "salt", res.TotalSalt),
	}
	if res.TotalOil > 0 {
		rows = append(rows, rb.row("Oil", "olive_oil", res.TotalOil))
	}
	if res.TotalSugar > 0 {
		rows = append(rows, rb.row("Sugar", "sugar", res.TotalSugar))
	}
	return append(rows, rb.row(YeastLabel(cfg.YeastType), yeastKey(cfg.YeastType), res.TotalYeast))
}

// PrefermentRows splits the formula into the preferment and the final
// dough. Both are nil for the direct technique.
func PrefermentRows(cfg domain.DoughConfig, res domain.DoughResult, units domain.UnitSystem) (pre, final []IngredientRow) {
	if res.Preferment == nil || res.FinalDough == nil {
		return nil, nil
	}
	rb := rowBuilder{flour: res.TotalFlour, units: units}
	p, f := res.Preferment, res.FinalDough
	pre = []IngredientRow{
		rb.row("Flour", "flour", p.Flour),
		rb.row("Water", "water", p.Water),
		rb.row(YeastLabel(cfg.YeastType), yeastKey(cfg.YeastType), p.Yeast),
	}
	final = []IngredientRow{
		rb.row("Flour", "flour", f.Flour),
		rb.row("Water", "water", f.Water),
		rb.row("Salt", "salt", f.Salt),
	}
	if f.Oil > 0 {
		final = append(final, rb.row("Oil", "olive_oil", f.Oil))
	}
	if f.Sugar > 0 {
		final = append(final, rb.row("Sugar", "sugar", f.Sugar))
	}
	// The preferment can carry all of the yeast.
	if f.Yeast > 0 {
		final = append(final, rb.row(YeastLabel(cfg.YeastType), yeastKey(cfg.YeastType), f.Yeast))
	}
	return pre, final
}

type rowBuilder struct {
	flour float64
	units domain.UnitSystem
}

func (rb rowBuilder) row(name, key string, grams float64) IngredientRow {
	r := IngredientRow{
		Name:   name,
		Grams:  grams,
		Volume: volume.GramsToVolume(key, grams, volume.DefaultLabels, rb.units),
	}
	if rb.flour > 0 {
		r.Percent = grams / rb.flour * 100
	}
	return r
}

// YeastLabel names the leavening ingredient of a yeast type.
func YeastLabel(t domain.YeastType) string {
	switch t {
	case domain.YeastInstantDry:
		return "Instant yeast"
	case domain.YeastActiveDry:
		return "Active dry yeast"
	case domain.YeastFresh:
		return "Fresh yeast"
	case domain.YeastSourdoughStarter:
		return "Sourdough starter"
	case domain.YeastUserLevain:
		return "Levain"
	default:
		return "Yeast"
	}
}

func yeastKey(t domain.YeastType) string {
	switch t {
	case domain.YeastInstantDry:
		return "instant_yeast"
	case domain.YeastActiveDry:
		return "active_dry_yeast"
	case domain.YeastFresh:
		return "fresh_yeast"
	default:
		return "levain"
	}
}

// Formula renders the ingredient weights of rep.
func Formula(rep *engine.Report, units domain.UnitSystem) string {
	cfg, res := rep.Config, rep.Result

	var b strings.Builder
	b.WriteString(headingStyle.Render(fmt.Sprintf("%s · %d × %.0f g · %.0f g dough",
		DisplayName(cfg.RecipeStyle.String()), cfg.NumUnits, cfg.UnitWeight, res.TotalDough)))
	b.WriteByte('\n')
	writeRows(&b, Ingredients(cfg, res, units))

	if pre, final := PrefermentRows(cfg, res, units); pre != nil {
		b.WriteString(headingStyle.Render(fmt.Sprintf("%s (%.0f%% of the flour, mix ahead)",
			DisplayName(cfg.FermentationTechnique.String()), cfg.PrefermentFlourPercentage)))
		b.WriteByte('\n')
		writeRows(&b, pre)
		b.WriteString(headingStyle.Render("Final dough"))
		b.WriteByte('\n')
		writeRows(&b, final)
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeRows(b *strings.Builder, rows []IngredientRow) {
	for _, r := range rows {
		b.WriteString(primaryStyle.Render(fmt.Sprintf("  %-18s %8.1f g %7.2f%%", r.Name, r.Grams, r.Percent)))
		b.WriteString(secondaryStyle.Render("   " + r.Volume))
		b.WriteByte('\n')
	}
}

// Advice renders the smart adjustments and the oven advice of rep.
// Suggestions are numbered for "accept <n>".
func Advice(rep *engine.Report) string {
	var b strings.Builder
	line := func(style lipgloss.Style, text string) {
		b.WriteString(style.Render(text))
		b.WriteByte('\n')
	}

	line(headingStyle, "Advice")
	for _, m := range rep.Smart.Messages {
		line(primaryStyle, "  • "+m)
	}
	for _, w := range rep.Smart.RiskWarnings {
		line(warnStyle, "  ! "+w)
	}
	for _, w := range rep.ContextWarnings {
		line(warnStyle, "  ! "+w)
	}

	if len(rep.Smart.Suggestions) > 0 {
		line(headingStyle, "Suggestions")
		for i, s := range rep.Smart.Suggestions {
			line(chatStyle, fmt.Sprintf("  %d. %s", i+1, s.Message))
		}
		line(secondaryStyle, "  Type accept <n> to take one.")
	}

	env := rep.Environment
	line(headingStyle, "Oven")
	if bake := BakeLine(env); bake != "" {
		line(primaryStyle, "  "+bake)
	}
	if env.RecommendedWaterTempC != nil {
		line(primaryStyle, fmt.Sprintf("  Water temperature: %.0f°C", *env.RecommendedWaterTempC))
	}
	for _, n := range env.Notes {
		line(primaryStyle, "  • "+n)
	}
	for _, w := range env.Warnings {
		line(warnStyle, "  ! "+w)
	}
	return strings.TrimRight(b.String(), "\n")
}

// BakeLine summarises the recommended bake, or "" when there is none.
func BakeLine(env domain.EnvironmentAdvice) string {
	if env.RecommendedBakeTempC <= 0 {
		return ""
	}
	s := fmt.Sprintf("Bake at %.0f°C", env.RecommendedBakeTempC)
	if env.RecommendedBakeTimeSeconds != nil {
		s += " for " + BakeTime(*env.RecommendedBakeTimeSeconds)
	}
	if env.RecommendedSurfaceOverride != domain.SurfaceNone {
		s += " on " + strings.ReplaceAll(env.RecommendedSurfaceOverride.String(), "_", " ")
	}
	return s
}

// BakeTime formats a bake window in seconds, switching to minutes for
// anything longer than three minutes.
func BakeTime(window [2]int) string {
	lo, hi := window[0], window[1]
	if hi < 180 {
		return fmt.Sprintf("%d–%d s", lo, hi)
	}
	return fmt.Sprintf("%d–%d min", lo/60, (hi+59)/60)
}

// Insights renders the style compatibility analysis of rep.
func Insights(rep *engine.Report) string {
	in := rep.Insights

	var b strings.Builder
	title := fmt.Sprintf("Style fit %.0f/100 (%s)", in.StyleFitScore, in.Band)
	if rep.Preset != nil {
		title += " against " + rep.Preset.Name
	}
	b.WriteString(headingStyle.Render(title))
	b.WriteByte('\n')
	b.WriteString(primaryStyle.Render(fmt.Sprintf("  Ideal hydration %s, fermentation %s",
		in.IdealHydrationRange, in.IdealFermentationRange)))
	b.WriteByte('\n')
	for _, w := range in.MismatchWarnings {
		b.WriteString(warnStyle.Render("  ! " + w))
		b.WriteByte('\n')
	}
	for _, n := range in.ProfessionalNotes {
		b.WriteString(secondaryStyle.Render("  · " + n))
		b.WriteByte('\n')
	}
	if in.RecommendedStyle != "" {
		b.WriteString(chatStyle.Render(fmt.Sprintf("  %s would suit this setup better. Type apply to switch.",
			in.RecommendedStyle)))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// Method renders the working method step by step.
func Method(steps []domain.TechnicalStep) string {
	var b strings.Builder
	for i, s := range steps {
		header := fmt.Sprintf("%d. %s", i+1, s.Title)
		var meta []string
		if s.DurationLabel != "" {
			meta = append(meta, s.DurationLabel)
		}
		if s.TemperatureLabel != "" {
			meta = append(meta, s.TemperatureLabel)
		}
		b.WriteString(headingStyle.Render(header))
		if len(meta) > 0 {
			b.WriteString(secondaryStyle.Render("  [" + strings.Join(meta, " · ") + "]"))
		}
		b.WriteByte('\n')
		b.WriteString(primaryStyle.Render("   " + s.ActionInstructions))
		b.WriteByte('\n')
		if s.TechnicalExplanation != "" {
			b.WriteString(secondaryStyle.Render("   Why: " + s.TechnicalExplanation))
			b.WriteByte('\n')
		}
		if s.CriticalPoint != "" {
			b.WriteString(warnStyle.Render("   Watch: " + s.CriticalPoint))
			b.WriteByte('\n')
		}
		if s.ProTip != "" {
			b.WriteString(chatStyle.Render("   Tip: " + s.ProTip))
			b.WriteByte('\n')
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Changes renders config changes as "Label: from → to" lines.
func Changes(changes []domain.ConfigChange) string {
	lines := make([]string, 0, len(changes))
	for _, c := range changes {
		from := c.From
		if from == "" {
			from = "(none)"
		}
		lines = append(lines, primaryStyle.Render(fmt.Sprintf("  %s: %s → %s", c.Label, from, c.To)))
	}
	return strings.Join(lines, "\n")
}

// Styles renders the preset list.
func Styles(presets []domain.StylePreset) string {
	if len(presets) == 0 {
		return secondaryStyle.Render("  No style presets match.")
	}
	lines := make([]string, 0, len(presets))
	for _, p := range presets {
		lines = append(lines,
			primaryStyle.Render(fmt.Sprintf("  %-24s %-26s", p.ID, p.Name))+
				secondaryStyle.Render(fmt.Sprintf(" %.0f%% · %s · %s", p.Hydration, p.Technique, p.BakeType())))
	}
	return strings.Join(lines, "\n")
}

// Summary is the one-line digest of rep shown after every recompute.
func Summary(rep *engine.Report) string {
	cfg := rep.Config
	return fmt.Sprintf("%s · %d × %.0f g · %.0f g dough · %.0f%% water · fit %.0f (%s)",
		DisplayName(cfg.RecipeStyle.String()), cfg.NumUnits, cfg.UnitWeight,
		rep.Result.TotalDough, cfg.Hydration, rep.Insights.StyleFitScore, rep.Insights.Band)
}

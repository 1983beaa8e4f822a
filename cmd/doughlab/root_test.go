package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hammamikhairi/doughlab/internal/config"
	"github.com/hammamikhairi/doughlab/internal/domain"
	"github.com/hammamikhairi/doughlab/internal/engine"
	"github.com/hammamikhairi/doughlab/internal/storage"
)

// execute runs the command tree with logging off and returns everything
// written to stdout and stderr.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(append(args, "--quiet"))
	err := root.Execute()
	return buf.String(), err
}

func mustExecute(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, args...)
	if err != nil {
		t.Fatalf("%s failed: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func decodeReport(t *testing.T, out string) engine.Report {
	t.Helper()
	var rep engine.Report
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("decoding report: %v\n%s", err, out)
	}
	return rep
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestCalc_Default(t *testing.T) {
	out := mustExecute(t, "calc")

	for _, want := range []string{"Neapolitan · 4 × 250 g · 1000 g dough", "INGREDIENT", "Flour", "Fresh yeast"} {
		if !strings.Contains(out, want) {
			t.Errorf("calc output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Final dough") {
		t.Errorf("direct dough should not print a final dough:\n%s", out)
	}
}

func TestCalc_Preferment(t *testing.T) {
	out := mustExecute(t, "calc", "--technique", "biga", "--preferment", "50")

	if !strings.Contains(out, "Biga, 50% of the flour") {
		t.Errorf("missing preferment heading:\n%s", out)
	}
	if !strings.Contains(out, "Final dough:") {
		t.Errorf("missing final dough:\n%s", out)
	}
}

func TestCalc_JSONWithStyleAndFlags(t *testing.T) {
	out := mustExecute(t, "calc", "--style", "new-york", "--balls", "3", "--weight", "280", "--json")
	rep := decodeReport(t, out)

	if rep.Config.RecipeStyle != domain.StyleNewYork {
		t.Errorf("style = %s, want new_york", rep.Config.RecipeStyle)
	}
	if rep.Config.StylePresetID != "new-york" {
		t.Errorf("preset = %q, want new-york", rep.Config.StylePresetID)
	}
	if math.Abs(rep.Result.TotalDough-840) > 1e-9 {
		t.Errorf("total dough = %v, want 840", rep.Result.TotalDough)
	}
}

func TestCalc_YeastTypeConverts(t *testing.T) {
	rep := decodeReport(t, mustExecute(t, "calc", "--yeast-type", "instant", "--json"))
	if rep.Config.YeastType != domain.YeastInstantDry {
		t.Fatalf("yeast type = %s", rep.Config.YeastType)
	}
	if math.Abs(rep.Config.YeastPercentage-0.05) > 1e-9 {
		t.Errorf("yeast = %v, want 0.05 (0.15 fresh converted)", rep.Config.YeastPercentage)
	}

	if _, err := execute(t, "calc", "--yeast-type", "sourdough"); !errors.Is(err, domain.ErrNotConvertible) {
		t.Errorf("starter without --yeast: err = %v, want ErrNotConvertible", err)
	}

	rep = decodeReport(t, mustExecute(t, "calc", "--yeast-type", "sourdough", "--yeast", "20", "--json"))
	if rep.Config.YeastPercentage != 20 {
		t.Errorf("yeast = %v, want 20", rep.Config.YeastPercentage)
	}
}

func TestCalc_Errors(t *testing.T) {
	if _, err := execute(t, "calc", "--hydration", "lots"); !errors.Is(err, domain.ErrUnknownValue) {
		t.Errorf("bad number: err = %v, want ErrUnknownValue", err)
	}
	if _, err := execute(t, "calc", "--balls", "0"); !errors.Is(err, domain.ErrInvalidConfig) {
		t.Errorf("zero balls: err = %v, want ErrInvalidConfig", err)
	}
	if _, err := execute(t, "calc", "--style", "atlantis"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown style: err = %v, want ErrNotFound", err)
	}
	if _, err := execute(t, "calc", "--units", "imperial"); !errors.Is(err, domain.ErrUnknownValue) {
		t.Errorf("bad units: err = %v, want ErrUnknownValue", err)
	}
}

func TestCalc_RecipeFileAndSave(t *testing.T) {
	recipe := writeFile(t, "pizza.yaml", "hydration: 70\nnum_units: 2\nunit_weight: 300\n")
	saved := filepath.Join(t.TempDir(), "out.json")

	rep := decodeReport(t, mustExecute(t, "calc", "--recipe", recipe, "--salt", "3", "--save", saved, "--json"))
	if rep.Config.Hydration != 70 || rep.Config.Salt != 3 {
		t.Errorf("config = %+v", rep.Config)
	}
	if math.Abs(rep.Result.TotalDough-600) > 1e-9 {
		t.Errorf("total dough = %v, want 600", rep.Result.TotalDough)
	}

	cfg, err := config.LoadRecipe(saved)
	if err != nil {
		t.Fatalf("loading saved recipe: %v", err)
	}
	if cfg.Hydration != 70 || cfg.Salt != 3 || cfg.NumUnits != 2 {
		t.Errorf("saved recipe = %+v", cfg)
	}
}

func TestAdvise(t *testing.T) {
	out := mustExecute(t, "advise", "--oven", "wood-fired", "--flour", "caputo-pizzeria")
	for _, want := range []string{"Advice", "Bake at 485°C", "Style fit"} {
		if !strings.Contains(out, want) {
			t.Errorf("advise output missing %q:\n%s", want, out)
		}
	}
}

func TestAdvise_UnknownContextIsWarning(t *testing.T) {
	rep := decodeReport(t, mustExecute(t, "advise", "--flour", "moon-dust", "--json"))
	if len(rep.ContextWarnings) != 1 || !strings.Contains(rep.ContextWarnings[0], "moon-dust") {
		t.Errorf("context warnings = %v", rep.ContextWarnings)
	}
}

func TestAdvise_FlourTemperature(t *testing.T) {
	rep := decodeReport(t, mustExecute(t, "advise", "--ambient", "20", "--flour-temp", "20", "--json"))
	if rep.AmbientC != 20 {
		t.Errorf("ambient = %v, want 20", rep.AmbientC)
	}
	water := rep.Environment.RecommendedWaterTempC
	if water == nil || *water != 32 {
		t.Errorf("water temperature = %v, want 32", water)
	}
}

func TestMethod(t *testing.T) {
	out := mustExecute(t, "method", "--style", "ciabatta")
	if !strings.Contains(out, "1. ") {
		t.Errorf("method output has no numbered steps:\n%s", out)
	}

	var steps []domain.TechnicalStep
	if err := json.Unmarshal([]byte(mustExecute(t, "method", "--json")), &steps); err != nil {
		t.Fatalf("decoding steps: %v", err)
	}
	if len(steps) == 0 {
		t.Error("no steps")
	}
}

func TestYeast(t *testing.T) {
	var conv []yeastConversion
	out := mustExecute(t, "yeast", "0.3", "fresh", "instant_dry", "--json")
	if err := json.Unmarshal([]byte(out), &conv); err != nil {
		t.Fatalf("decoding: %v\n%s", err, out)
	}
	if len(conv) != 1 || math.Abs(conv[0].Result-0.1) > 1e-9 {
		t.Errorf("conversion = %+v, want 0.1", conv)
	}

	out = mustExecute(t, "yeast", "7", "instant")
	for _, want := range []string{"Instant yeast", "Active dry yeast", "Fresh yeast", "21.000"} {
		if !strings.Contains(out, want) {
			t.Errorf("yeast table missing %q:\n%s", want, out)
		}
	}

	if _, err := execute(t, "yeast", "20", "sourdough", "fresh"); !errors.Is(err, domain.ErrNotConvertible) {
		t.Errorf("starter: err = %v, want ErrNotConvertible", err)
	}
	if _, err := execute(t, "yeast", "x", "fresh"); !errors.Is(err, domain.ErrUnknownValue) {
		t.Errorf("bad amount: err = %v, want ErrUnknownValue", err)
	}
}

func TestVolume(t *testing.T) {
	out := mustExecute(t, "volume", "flour", "500")
	if !strings.Contains(out, "500 g flour ≈") {
		t.Errorf("volume output = %q", out)
	}
	if _, err := execute(t, "volume", "flour"); err == nil {
		t.Error("expected an argument error")
	}
}

func TestStyles(t *testing.T) {
	out := mustExecute(t, "styles")
	for _, want := range []string{"neapolitan-avpn", "new-york", "focaccia"} {
		if !strings.Contains(out, want) {
			t.Errorf("styles missing %q", want)
		}
	}

	out = mustExecute(t, "styles", "zzz-nothing")
	if !strings.Contains(out, "No style presets match.") {
		t.Errorf("empty search output = %q", out)
	}
}

func TestSettingsFile(t *testing.T) {
	settings := writeFile(t, "doughlab.yaml", `units: us
presets:
  - id: house-pie
    name: House Pie
    style: new_york
    hydration: 64
    salt: 2.5
    yeast_percentage: 0.4
    tags: [house]
`)

	out := mustExecute(t, "styles", "house", "--config", settings)
	if !strings.Contains(out, "house-pie") {
		t.Errorf("settings preset not listed:\n%s", out)
	}

	rep := decodeReport(t, mustExecute(t, "calc", "--style", "house-pie", "--config", settings, "--json"))
	if rep.Config.Hydration != 64 {
		t.Errorf("hydration = %v, want 64", rep.Config.Hydration)
	}

	if _, err := execute(t, "styles", "--config", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing settings file")
	}
}

func TestCatalog(t *testing.T) {
	out := mustExecute(t, "catalog")
	for _, want := range []string{"Flours:", "caputo-pizzeria", "Ovens:", "wood-fired"} {
		if !strings.Contains(out, want) {
			t.Errorf("catalog missing %q:\n%s", want, out)
		}
	}

	path := filepath.Join(t.TempDir(), "kitchen.yaml")
	mustExecute(t, "catalog", "export", path)
	f, err := storage.ReadCatalogFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if len(f.Flours) == 0 || len(f.Ovens) == 0 {
		t.Errorf("export = %+v", f)
	}
}

func TestCatalogFeed(t *testing.T) {
	path := writeFile(t, "kitchen.yaml", `levains:
  - id: bubbles
    name: Bubbles
    hydration: 100
    last_feeding: 2024-04-30T08:00:00Z
`)

	out := mustExecute(t, "catalog", "feed", "bubbles", "--catalog", path, "--at", "2024-05-01T08:00:00Z")
	if !strings.Contains(out, "Fed Bubbles") {
		t.Errorf("feed output = %q", out)
	}

	f, err := storage.ReadCatalogFile(path)
	if err != nil {
		t.Fatalf("reading catalog: %v", err)
	}
	if len(f.Levains) != 1 {
		t.Fatalf("levains = %+v", f.Levains)
	}
	want := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	if !f.Levains[0].LastFeeding.Equal(want) {
		t.Errorf("last feeding = %v, want %v", f.Levains[0].LastFeeding, want)
	}

	if _, err := execute(t, "catalog", "feed", "nobody", "--catalog", path); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown levain: err = %v, want ErrNotFound", err)
	}
	if _, err := execute(t, "catalog", "feed", "bubbles"); err == nil {
		t.Error("expected an error without --catalog")
	}
}

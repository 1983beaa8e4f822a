package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/doughlab/internal/config"
	"github.com/hammamikhairi/doughlab/internal/domain"
	"github.com/hammamikhairi/doughlab/internal/engine"
	"github.com/hammamikhairi/doughlab/internal/logger"
	"github.com/hammamikhairi/doughlab/internal/storage"
	"github.com/hammamikhairi/doughlab/internal/styles"
)

// cli holds the flag values and the wiring shared by every command.
type cli struct {
	configFile string
	recipeFile string
	jsonOut    bool
	verbose    bool
	quiet      bool
	logFile    string
	units      string
	oven       string
	surface    string
	catalog    string
	ambientC   float64
	flourTempC float64
	style      string
	recipe     map[string]*string

	settings config.Settings
	log      *logger.Logger
	logClose func() error
	store    *storage.MemoryCatalog
	presets  *styles.MemorySource
	eng      *engine.Engine
}

// recipeFlag binds a command-line flag to a config field.
type recipeFlag struct {
	name  string
	field domain.ConfigField
	usage string
}

var recipeFlags = []recipeFlag{
	{"balls", domain.FieldNumUnits, "number of dough balls"},
	{"weight", domain.FieldUnitWeight, "weight of each ball in grams"},
	{"scale", domain.FieldScale, "multiplier applied to the total dough weight"},
	{"hydration", domain.FieldHydration, "water as a baker's percentage"},
	{"salt", domain.FieldSalt, "salt as a baker's percentage"},
	{"oil", domain.FieldOil, "oil as a baker's percentage"},
	{"sugar", domain.FieldSugar, "sugar as a baker's percentage"},
	{"yeast", domain.FieldYeastPercentage, "yeast (or levain) as a baker's percentage"},
	{"yeast-type", domain.FieldYeastType, "instant_dry, active_dry, fresh, sourdough_starter or user_levain"},
	{"technique", domain.FieldFermentationTechnique, "direct, poolish or biga"},
	{"preferment", domain.FieldPrefermentFlourPercentage, "share of the flour in the preferment, in percent"},
	{"flour", domain.FieldFlourID, "flour id from the catalog"},
	{"levain", domain.FieldLevainID, "levain id from the catalog"},
	{"room", domain.FieldAmbientTemperature, "room category: cold, mild or hot"},
	{"bake-temp", domain.FieldBakingTempC, "baking temperature in °C"},
}

func newRootCmd() *cobra.Command {
	c := &cli{recipe: make(map[string]*string)}

	root := &cobra.Command{
		Use:   "doughlab",
		Short: "Dough calculator and baking advisor",
		Long: `doughlab turns baker's percentages into gram weights and reviews the recipe
against your room, oven, flour and levain.

Example usage:
  doughlab calc                              # Default Neapolitan, 4 x 250 g
  doughlab calc --style new-york --balls 3   # New York preset, 3 balls
  doughlab advise --oven home-electric       # Adjustments and oven advice
  doughlab method --technique biga --preferment 50
  doughlab yeast 0.3 fresh instant_dry       # Convert yeast types
  doughlab tui                               # Interactive workbench`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.close()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configFile, "config", "", "settings file (default is doughlab.yaml when present)")
	pf.StringVar(&c.recipeFile, "recipe", "", "recipe file (.yaml, .yml or .json)")
	pf.BoolVar(&c.jsonOut, "json", false, "output the full report as JSON")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose/debug logging")
	pf.BoolVarP(&c.quiet, "quiet", "q", false, "disable all logging")
	pf.StringVar(&c.logFile, "log-file", "", `file to write logs to (use "stderr" to log to console)`)
	pf.StringVar(&c.units, "units", "", "volume units: metric or us")
	pf.StringVar(&c.oven, "oven", "", "oven id from the catalog")
	pf.StringVar(&c.surface, "surface", "", "baking surface: steel, stone, biscotto or pan")
	pf.StringVar(&c.catalog, "catalog", "", "YAML catalog of flours, ovens and levains")
	pf.Float64Var(&c.ambientC, "ambient", 0, "room temperature in °C")
	pf.Float64Var(&c.flourTempC, "flour-temp", 0, "flour temperature in °C, enables the water temperature advice")
	pf.StringVar(&c.style, "style", "", "style preset id or style name to start from")
	for _, f := range recipeFlags {
		c.recipe[f.name] = pf.String(f.name, "", f.usage)
	}

	root.AddCommand(
		newCalcCmd(c),
		newAdviseCmd(c),
		newMethodCmd(c),
		newYeastCmd(c),
		newVolumeCmd(c),
		newStylesCmd(c),
		newCatalogCmd(c),
		newTUICmd(c),
	)
	return root
}

// init loads the settings, applies the global flags on top and builds the
// engine.
func (c *cli) init(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	s, err := config.Load(c.configFile)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	if err := c.applyFlags(cmd, &s); err != nil {
		return err
	}
	c.settings = s

	level, err := s.Level()
	if err != nil {
		return err
	}
	out, closeFn := openLog(level, s.LogFile)
	c.log, c.logClose = logger.New(level, out), closeFn

	c.store = storage.NewMemoryCatalog(c.log)
	if s.CatalogPath != "" {
		if err := c.store.LoadCatalogFile(cmd.Context(), s.CatalogPath); err != nil {
			return err
		}
	}

	c.presets = styles.NewMemorySource(c.log)
	if err := c.presets.Merge(s.Presets...); err != nil {
		return fmt.Errorf("settings presets: %w", err)
	}

	c.eng = engine.New(c.presets, c.store, c.log,
		engine.WithDefaultOven(s.OvenID),
		engine.WithDefaultSurface(s.Surface),
	)
	c.log.Debug("settings loaded: units=%s oven=%q catalog=%q", s.Units, s.OvenID, s.CatalogPath)
	return nil
}

func (c *cli) applyFlags(cmd *cobra.Command, s *config.Settings) error {
	changed := cmd.Flags().Changed
	switch {
	case c.quiet:
		s.LogLevel = logger.LevelOff.String()
	case c.verbose:
		s.LogLevel = logger.LevelVerbose.String()
	}
	if c.logFile != "" {
		s.LogFile = c.logFile
	}
	if c.oven != "" {
		s.OvenID = c.oven
	}
	if c.catalog != "" {
		s.CatalogPath = c.catalog
	}
	if c.units != "" {
		u, err := domain.ParseUnitSystem(c.units)
		if err != nil {
			return err
		}
		s.Units = u
	}
	if c.surface != "" {
		surf, err := domain.ParseSurface(c.surface)
		if err != nil {
			return err
		}
		s.Surface = surf
	}
	if changed("ambient") {
		v := c.ambientC
		s.AmbientC = &v
	}
	if changed("flour-temp") {
		v := c.flourTempC
		s.FlourTempC = &v
	}
	return nil
}

func (c *cli) close() error {
	if c.logClose == nil {
		return nil
	}
	return c.logClose()
}

// openLog returns the log destination. Logging off writes nowhere and
// never creates the log file.
func openLog(level logger.Level, path string) (io.Writer, func() error) {
	nop := func() error { return nil }
	switch {
	case level == logger.LevelOff:
		return io.Discard, nop
	case path == "" || path == "stderr":
		return os.Stderr, nop
	}

	if dir := filepath.Dir(path); dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		return os.Stderr, nop
	}
	return f, f.Close
}

// evalOptions builds the per-evaluation context from the settings.
func (c *cli) evalOptions() engine.EvalOptions {
	return engine.EvalOptions{
		OvenID:     c.settings.OvenID,
		Surface:    c.settings.Surface,
		AmbientC:   c.settings.AmbientC,
		FlourTempC: c.settings.FlourTempC,
	}
}

// buildRecipe starts from --recipe (or the settings' starting recipe),
// loads --style, then applies every recipe flag that was given.
func (c *cli) buildRecipe(cmd *cobra.Command) (domain.DoughConfig, error) {
	cfg := c.settings.StartingRecipe()
	if c.recipeFile != "" {
		loaded, err := config.LoadRecipe(c.recipeFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if c.style != "" {
		id, err := c.eng.ResolvePreset(c.style)
		if err != nil {
			return cfg, err
		}
		if cfg, _, err = c.eng.SelectPreset(cfg, id); err != nil {
			return cfg, err
		}
	}

	changed := cmd.Flags().Changed
	value := func(name string) string { return *c.recipe[name] }

	if changed("yeast-type") {
		t, err := domain.ParseYeastType(value("yeast-type"))
		if err != nil {
			return cfg, err
		}
		var pct float64
		if changed("yeast") {
			next, err := cfg.With(domain.FieldYeastPercentage, value("yeast"))
			if err != nil {
				return cfg, err
			}
			pct = next.YeastPercentage
		}
		if cfg, err = c.eng.SetYeast(cfg, t, pct); err != nil {
			return cfg, err
		}
	}
	if changed("technique") {
		t, err := domain.ParseTechnique(value("technique"))
		if err != nil {
			return cfg, err
		}
		cfg = c.eng.SetTechnique(cfg, t, 0)
	}

	for _, f := range recipeFlags {
		if !changed(f.name) || f.field == domain.FieldYeastType || f.field == domain.FieldFermentationTechnique {
			continue
		}
		next, err := cfg.With(f.field, value(f.name))
		if err != nil {
			return cfg, fmt.Errorf("--%s: %w", f.name, err)
		}
		cfg = next
	}
	return cfg, nil
}

// report builds the recipe and evaluates it.
func (c *cli) report(cmd *cobra.Command) (*engine.Report, error) {
	cfg, err := c.buildRecipe(cmd)
	if err != nil {
		return nil, err
	}
	return c.eng.Evaluate(cmd.Context(), cfg, c.evalOptions())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

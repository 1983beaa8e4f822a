// Package config loads the workbench settings: a YAML settings file,
// overridden by DOUGHLAB_* environment variables (optionally from a .env
// file). Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/doughlab/internal/domain"
	"github.com/hammamikhairi/doughlab/internal/logger"
)

// Environment variable names.
const (
	EnvConfig     = "DOUGHLAB_CONFIG"
	EnvLogLevel   = "DOUGHLAB_LOG_LEVEL"
	EnvLogFile    = "DOUGHLAB_LOG_FILE"
	EnvUnits      = "DOUGHLAB_UNITS"
	EnvOven       = "DOUGHLAB_OVEN"
	EnvSurface    = "DOUGHLAB_SURFACE"
	EnvAmbientC   = "DOUGHLAB_AMBIENT_C"
	EnvFlourTempC = "DOUGHLAB_FLOUR_TEMP_C"
	EnvCatalog    = "DOUGHLAB_CATALOG"
	EnvDebounce   = "DOUGHLAB_DEBOUNCE"
)

// DefaultPath is the settings file read when none is given and it exists.
const DefaultPath = "doughlab.yaml"

// DefaultDebounce is how long the workbench waits for edits to settle.
const DefaultDebounce = 250 * time.Millisecond

// Settings is the workbench configuration.
type Settings struct {
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`

	Units   domain.UnitSystem  `yaml:"units"`
	OvenID  string             `yaml:"oven,omitempty"`
	Surface domain.SurfaceType `yaml:"surface,omitempty"`

	// AmbientC overrides the Celsius value of the config's room category.
	AmbientC   *float64 `yaml:"ambient_c,omitempty"`
	FlourTempC *float64 `yaml:"flour_temp_c,omitempty"`

	CatalogPath string        `yaml:"catalog,omitempty"`
	Debounce    time.Duration `yaml:"debounce"`

	// Presets are merged into the built-in style presets.
	Presets []domain.StylePreset `yaml:"presets,omitempty"`
	// Recipe is the workbench's starting config; nil means the default.
	Recipe *domain.DoughConfig `yaml:"recipe,omitempty"`
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		LogLevel: "normal",
		LogFile:  ".doughlab/doughlab.log",
		Units:    domain.UnitsMetric,
		Debounce: DefaultDebounce,
	}
}

// Level parses LogLevel.
func (s Settings) Level() (logger.Level, error) {
	return logger.ParseLevel(s.LogLevel)
}

// StartingRecipe returns Recipe or the default config.
func (s Settings) StartingRecipe() domain.DoughConfig {
	if s.Recipe != nil {
		return *s.Recipe
	}
	return domain.DefaultConfig()
}

// LoadDotEnv loads .env style files into the process environment. Missing
// files are skipped; variables already set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// Load builds settings from the defaults, the settings file at path and
// the environment. An empty path falls back to $DOUGHLAB_CONFIG, then to
// DefaultPath if that file exists.
func Load(path string) (Settings, error) {
	s := Default()

	required := path != ""
	if path == "" {
		path = os.Getenv(EnvConfig)
		required = path != ""
	}
	if path == "" {
		path = DefaultPath
	}

	if err := s.mergeFile(path); err != nil {
		if required || !errors.Is(err, os.ErrNotExist) {
			return s, err
		}
	}

	if err := s.ApplyEnv(os.Getenv); err != nil {
		return s, err
	}
	return s, nil
}

func (s *Settings) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides settings from environment variables read with getenv.
// Unset or empty variables leave the current value alone.
func (s *Settings) ApplyEnv(getenv func(string) string) error {
	var errs []error
	str := func(key string, dst *string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	float := func(key string, dst **float64) {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			return
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %q is not a number", key, v))
			return
		}
		*dst = &f
	}

	str(EnvLogLevel, &s.LogLevel)
	str(EnvLogFile, &s.LogFile)
	str(EnvOven, &s.OvenID)
	str(EnvCatalog, &s.CatalogPath)
	float(EnvAmbientC, &s.AmbientC)
	float(EnvFlourTempC, &s.FlourTempC)

	if v := strings.TrimSpace(getenv(EnvUnits)); v != "" {
		u, err := domain.ParseUnitSystem(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvUnits, err))
		} else {
			s.Units = u
		}
	}
	if v := strings.TrimSpace(getenv(EnvSurface)); v != "" {
		surf, err := domain.ParseSurface(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSurface, err))
		} else {
			s.Surface = surf
		}
	}
	if v := strings.TrimSpace(getenv(EnvDebounce)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvDebounce, err))
		} else {
			s.Debounce = d
		}
	}
	return errors.Join(errs...)
}

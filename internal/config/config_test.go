package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/doughlab/internal/domain"
	"github.com/hammamikhairi/doughlab/internal/logger"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, domain.UnitsMetric, s.Units)
	assert.Equal(t, DefaultDebounce, s.Debounce)

	lvl, err := s.Level()
	require.NoError(t, err)
	assert.Equal(t, logger.LevelNormal, lvl)
	assert.Equal(t, domain.DefaultConfig(), s.StartingRecipe())
}

func TestLoadFile(t *testing.T) {
	t.Setenv(EnvUnits, "")
	t.Setenv(EnvOven, "")

	path := writeFile(t, "doughlab.yaml", `log_level: verbose
units: us
oven: home-gas
surface: steel
ambient_c: 24.5
debounce: 400ms
presets:
  - id: house-ny
    name: House New York
    style: new_york
    hydration: 65
    salt: 2.4
recipe:
  bake_type: pizza
  recipe_style: new_york
  num_units: 3
  unit_weight: 280
  hydration: 64
  salt: 2.5
  yeast_type: instant_dry
  yeast_percentage: 0.4
`)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.UnitsUS, s.Units)
	assert.Equal(t, "home-gas", s.OvenID)
	assert.Equal(t, domain.SurfaceSteel, s.Surface)
	require.NotNil(t, s.AmbientC)
	assert.Equal(t, 24.5, *s.AmbientC)
	assert.Equal(t, 400*time.Millisecond, s.Debounce)

	lvl, err := s.Level()
	require.NoError(t, err)
	assert.Equal(t, logger.LevelVerbose, lvl)

	require.Len(t, s.Presets, 1)
	assert.Equal(t, domain.StyleNewYork, s.Presets[0].Style)

	r := s.StartingRecipe()
	assert.Equal(t, domain.StyleNewYork, r.RecipeStyle)
	assert.Equal(t, 3, r.NumUnits)
	assert.Equal(t, domain.YeastInstantDry, r.YeastType)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvConfig, "")

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Units, s.Units)
}

func TestApplyEnv(t *testing.T) {
	s := Default()
	err := s.ApplyEnv(envMap(map[string]string{
		EnvLogLevel:   "off",
		EnvUnits:      "US",
		EnvSurface:    "biscotto",
		EnvAmbientC:   "19",
		EnvFlourTempC: "21.5",
		EnvCatalog:    "/etc/doughlab/catalog.yaml",
		EnvDebounce:   "1s",
	}))
	require.NoError(t, err)

	assert.Equal(t, "off", s.LogLevel)
	assert.Equal(t, domain.UnitsUS, s.Units)
	assert.Equal(t, domain.SurfaceBiscotto, s.Surface)
	assert.Equal(t, 19.0, *s.AmbientC)
	assert.Equal(t, 21.5, *s.FlourTempC)
	assert.Equal(t, "/etc/doughlab/catalog.yaml", s.CatalogPath)
	assert.Equal(t, time.Second, s.Debounce)
}

func TestApplyEnvErrors(t *testing.T) {
	s := Default()
	err := s.ApplyEnv(envMap(map[string]string{
		EnvUnits:    "furlongs",
		EnvAmbientC: "warm",
		EnvOven:     "wood-fired",
	}))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownValue)
	assert.Contains(t, err.Error(), EnvAmbientC)

	// Valid variables still apply.
	assert.Equal(t, "wood-fired", s.OvenID)
	assert.Equal(t, domain.UnitsMetric, s.Units)
}

func TestLoadDotEnv(t *testing.T) {
	path := writeFile(t, ".env", "DOUGHLAB_TEST_ONLY_VAR=from-dotenv\n")
	t.Setenv("DOUGHLAB_TEST_ONLY_VAR", "")
	os.Unsetenv("DOUGHLAB_TEST_ONLY_VAR")

	require.NoError(t, LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env")))
	assert.Equal(t, "from-dotenv", os.Getenv("DOUGHLAB_TEST_ONLY_VAR"))
}

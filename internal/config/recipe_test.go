package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/doughlab/internal/domain"
)

func TestLoadRecipeFormats(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"recipe.yaml", "recipe_style: focaccia\nbake_type: bread\nhydration: 80\nfermentation_technique: poolish\npreferment_flour_percentage: 30\n"},
		{"recipe.json", `{"recipeStyle":"focaccia","bakeType":"bread","hydration":80,"fermentationTechnique":"poolish","prefermentFlourPercentage":30}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadRecipe(writeFile(t, tt.name, tt.body))
			require.NoError(t, err)
			assert.Equal(t, domain.StyleFocaccia, cfg.RecipeStyle)
			assert.Equal(t, domain.BakeBread, cfg.BakeType)
			assert.Equal(t, 80.0, cfg.Hydration)
			assert.Equal(t, domain.TechniquePoolish, cfg.FermentationTechnique)
			assert.Equal(t, 30.0, cfg.PrefermentFlourPercentage)
			// Unset fields keep their defaults.
			assert.Equal(t, 4, cfg.NumUnits)
		})
	}
}

func TestLoadRecipeErrors(t *testing.T) {
	_, err := LoadRecipe(writeFile(t, "recipe.txt", "hydration: 60"))
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	_, err = LoadRecipe(writeFile(t, "bad.yaml", "yeast_type: moonbeam\n"))
	assert.Error(t, err)
}

func TestSaveRecipeRoundTrip(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.FermentationTechnique = domain.TechniqueBiga
	cfg.PrefermentFlourPercentage = 50
	cfg.Notes = "Sunday bake"

	for _, name := range []string{"out.json", "out.yaml"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, SaveRecipe(path, cfg))

		back, err := LoadRecipe(path)
		require.NoError(t, err)
		assert.Equal(t, cfg, back, name)
	}
}

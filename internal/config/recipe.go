package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/doughlab/internal/domain"
)

// LoadRecipe reads a DoughConfig from a .json, .yaml or .yml file. Fields
// the file leaves out keep their DefaultConfig value.
func LoadRecipe(path string) (domain.DoughConfig, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading recipe: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("recipe %s: unsupported extension: %w", path, domain.ErrInvalidConfig)
	}
	if err != nil {
		return cfg, fmt.Errorf("parsing recipe %s: %w", path, err)
	}
	return cfg, nil
}

// SaveRecipe writes cfg to path, choosing the format from the extension.
func SaveRecipe(path string, cfg domain.DoughConfig) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = json.MarshalIndent(cfg, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	default:
		return fmt.Errorf("recipe %s: unsupported extension: %w", path, domain.ErrInvalidConfig)
	}
	if err != nil {
		return fmt.Errorf("encoding recipe: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

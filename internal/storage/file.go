package storage

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/doughlab/internal/domain"
)

// CatalogFile is the on-disk YAML layout of a context catalog.
type CatalogFile struct {
	Flours  []domain.FlourDefinition `yaml:"flours,omitempty"`
	Ovens   []domain.Oven            `yaml:"ovens,omitempty"`
	Levains []domain.Levain          `yaml:"levains,omitempty"`
}

// ReadCatalogFile decodes a catalog document from path.
func ReadCatalogFile(path string) (*CatalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var f CatalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return &f, nil
}

// WriteCatalogFile encodes f as YAML to path.
func WriteCatalogFile(path string, f *CatalogFile) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	return nil
}

// LoadCatalogFile reads path and saves every entry into c, replacing
// entries with the same id. Nothing is saved if any entry is invalid; a
// save that fails after validation stops the load where it is.
func (c *MemoryCatalog) LoadCatalogFile(ctx context.Context, path string) error {
	f, err := ReadCatalogFile(path)
	if err != nil {
		return err
	}

	if err := f.validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	for _, fl := range f.Flours {
		if err := c.SaveFlour(ctx, fl); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	for _, o := range f.Ovens {
		if err := c.SaveOven(ctx, o); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	for _, l := range f.Levains {
		if err := c.SaveLevain(ctx, l); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	c.log.Info("loaded catalog %s: %d flours, %d ovens, %d levains", path, len(f.Flours), len(f.Ovens), len(f.Levains))
	return nil
}

// Snapshot returns the catalog's current contents as a CatalogFile.
func (c *MemoryCatalog) Snapshot(ctx context.Context) *CatalogFile {
	flours, _ := c.ListFlours(ctx)
	ovens, _ := c.ListOvens(ctx)
	levains, _ := c.ListLevains(ctx)
	return &CatalogFile{Flours: flours, Ovens: ovens, Levains: levains}
}

func (f *CatalogFile) validate() error {
	for _, fl := range f.Flours {
		if err := validateFlour(fl); err != nil {
			return err
		}
	}
	for _, o := range f.Ovens {
		if err := requireID("oven", o.ID); err != nil {
			return err
		}
	}
	for _, l := range f.Levains {
		if err := requireID("levain", l.ID); err != nil {
			return err
		}
	}
	return nil
}

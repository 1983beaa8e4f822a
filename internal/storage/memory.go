// Package storage provides context catalog implementations: the flours,
// ovens and levains a dough config refers to by id.
package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/hammamikhairi/doughlab/internal/domain"
	"github.com/hammamikhairi/doughlab/internal/logger"
)

// Compile-time interface check.
var _ domain.ContextCatalog = (*MemoryCatalog)(nil)

// MemoryCatalog is an in-memory context catalog. Safe for concurrent access.
type MemoryCatalog struct {
	mu      sync.RWMutex
	flours  map[string]domain.FlourDefinition
	ovens   map[string]domain.Oven
	levains map[string]domain.Levain
	log     *logger.Logger
}

// NewMemoryCatalog creates a catalog preloaded with common flours and ovens.
// Levains are personal and start empty.
func NewMemoryCatalog(log *logger.Logger) *MemoryCatalog {
	c := &MemoryCatalog{
		flours:  make(map[string]domain.FlourDefinition),
		ovens:   make(map[string]domain.Oven),
		levains: make(map[string]domain.Levain),
		log:     log,
	}
	c.seed()
	return c
}

// Flour returns a flour by ID.
func (c *MemoryCatalog) Flour(ctx context.Context, id string) (*domain.FlourDefinition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, ok := c.flours[id]
	if !ok {
		c.log.Debug("flour not found: %s", id)
		return nil, fmt.Errorf("flour %q: %w", id, domain.ErrNotFound)
	}
	return &f, nil
}

// Oven returns an oven by ID.
func (c *MemoryCatalog) Oven(ctx context.Context, id string) (*domain.Oven, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	o, ok := c.ovens[id]
	if !ok {
		c.log.Debug("oven not found: %s", id)
		return nil, fmt.Errorf("oven %q: %w", id, domain.ErrNotFound)
	}
	return &o, nil
}

// Levain returns a levain by ID.
func (c *MemoryCatalog) Levain(ctx context.Context, id string) (*domain.Levain, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	l, ok := c.levains[id]
	if !ok {
		c.log.Debug("levain not found: %s", id)
		return nil, fmt.Errorf("levain %q: %w", id, domain.ErrNotFound)
	}
	return &l, nil
}

// ListFlours returns all flours ordered by ID.
func (c *MemoryCatalog) ListFlours(ctx context.Context) ([]domain.FlourDefinition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedValues(c.flours), nil
}

// ListOvens returns all ovens ordered by ID.
func (c *MemoryCatalog) ListOvens(ctx context.Context) ([]domain.Oven, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedValues(c.ovens), nil
}

// ListLevains returns all levains ordered by ID.
func (c *MemoryCatalog) ListLevains(ctx context.Context) ([]domain.Levain, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedValues(c.levains), nil
}

// SaveFlour adds or replaces a flour.
func (c *MemoryCatalog) SaveFlour(ctx context.Context, f domain.FlourDefinition) error {
	if err := validateFlour(f); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.log.Debug("saving flour %s (W=%.0f)", f.ID, f.StrengthW)
	c.flours[f.ID] = f
	return nil
}

// SaveOven adds or replaces an oven.
func (c *MemoryCatalog) SaveOven(ctx context.Context, o domain.Oven) error {
	if err := requireID("oven", o.ID); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.log.Debug("saving oven %s (%s, max=%.0f)", o.ID, o.Type, o.MaxTemperature)
	c.ovens[o.ID] = o
	return nil
}

// SaveLevain adds or replaces a levain.
func (c *MemoryCatalog) SaveLevain(ctx context.Context, l domain.Levain) error {
	if err := requireID("levain", l.ID); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.log.Debug("saving levain %s (fed %s)", l.ID, l.LastFeeding.Format("2006-01-02 15:04"))
	c.levains[l.ID] = l
	return nil
}

// DeleteLevain removes a levain by ID.
func (c *MemoryCatalog) DeleteLevain(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.levains[id]; !ok {
		return fmt.Errorf("levain %q: %w", id, domain.ErrNotFound)
	}
	delete(c.levains, id)
	c.log.Debug("deleted levain %s", id)
	return nil
}

func requireID(kind, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s: missing id: %w", kind, domain.ErrInvalidConfig)
	}
	return nil
}

func validateFlour(f domain.FlourDefinition) error {
	if err := requireID("flour", f.ID); err != nil {
		return err
	}
	if f.HydrationHint != nil && f.HydrationHint.Min > f.HydrationHint.Max {
		return fmt.Errorf("flour %s: hydration hint is inverted: %w", f.ID, domain.ErrInvalidConfig)
	}
	return nil
}

func sortedValues[T any](m map[string]T) []T {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}

func (c *MemoryCatalog) seed() {
	flours := []domain.FlourDefinition{
		{ID: "caputo-pizzeria", Name: "Caputo Pizzeria 00", StrengthW: 260, HydrationHint: &domain.Range{Min: 55, Max: 65}},
		{ID: "caputo-nuvola", Name: "Caputo Nuvola Super", StrengthW: 310, HydrationHint: &domain.Range{Min: 65, Max: 78}},
		{ID: "bread-flour", Name: "Bread flour", StrengthW: 300, HydrationHint: &domain.Range{Min: 60, Max: 78}},
		{ID: "manitoba", Name: "Manitoba", StrengthW: 380, HydrationHint: &domain.Range{Min: 65, Max: 90}},
		{ID: "all-purpose", Name: "All-purpose flour", StrengthW: 200, HydrationHint: &domain.Range{Min: 55, Max: 65}},
		{ID: "t65", Name: "French T65", StrengthW: 220, HydrationHint: &domain.Range{Min: 62, Max: 72}},
		{ID: "whole-wheat", Name: "Whole wheat flour"},
	}
	for _, f := range flours {
		c.flours[f.ID] = f
	}

	ovens := []domain.Oven{
		{ID: "home-electric", Name: "Home electric oven", Type: domain.OvenHomeElectric, MaxTemperature: 250},
		{ID: "home-electric-steel", Name: "Home electric oven with steel", Type: domain.OvenHomeElectric, MaxTemperature: 290, HasSteel: true},
		{ID: "home-gas", Name: "Home gas oven", Type: domain.OvenHomeGas, MaxTemperature: 260},
		{ID: "wood-fired", Name: "Wood-fired oven", Type: domain.OvenWoodFired, MaxTemperature: 500},
		{ID: "portable", Name: "Portable pizza oven", Type: domain.OvenPortableHighTemp, MaxTemperature: 500},
	}
	for _, o := range ovens {
		c.ovens[o.ID] = o
	}

	c.log.Debug("seeded %d flours, %d ovens", len(flours), len(ovens))
}

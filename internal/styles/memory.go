// Package styles provides the style preset table.
package styles

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/hammamikhairi/doughlab/internal/domain"
	"github.com/hammamikhairi/doughlab/internal/logger"
)

// Compile-time interface check.
var _ domain.StyleCatalog = (*MemorySource)(nil)

// MemorySource holds style presets in memory. Safe for concurrent reads.
type MemorySource struct {
	mu       sync.RWMutex
	presets  map[string]domain.StylePreset
	defaults map[domain.RecipeStyle]string
	log      *logger.Logger
}

// NewMemorySource creates a preset source preloaded with the built-in presets.
func NewMemorySource(log *logger.Logger) *MemorySource {
	src := &MemorySource{
		presets:  make(map[string]domain.StylePreset),
		defaults: make(map[domain.RecipeStyle]string),
		log:      log,
	}
	src.seed()
	return src
}

// Presets returns every preset ordered by ID.
func (s *MemorySource) Presets() []domain.StylePreset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.StylePreset, 0, len(s.presets))
	for _, p := range s.presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Preset returns a preset by ID.
func (s *MemorySource) Preset(id string) (domain.StylePreset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.presets[id]
	if !ok {
		s.log.Debug("style preset not found: %s", id)
	}
	return p, ok
}

// ForStyle returns the default preset of a style: the first one registered
// for it.
func (s *MemorySource) ForStyle(style domain.RecipeStyle) (domain.StylePreset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.defaults[style]
	if !ok {
		return domain.StylePreset{}, false
	}
	return s.presets[id], true
}

// Search returns presets whose ID, name, description, style or tags contain
// the query, ordered by ID.
func (s *MemorySource) Search(query string) []domain.StylePreset {
	q := strings.ToLower(strings.TrimSpace(query))
	s.log.Debug("searching style presets for: %s", q)

	var out []domain.StylePreset
	for _, p := range s.Presets() {
		if matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p domain.StylePreset, query string) bool {
	fields := append([]string{p.ID, p.Name, p.Description, p.Style.String()}, p.Tags...)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// Merge adds presets to the source, replacing any with the same ID.
// A preset for a style that has no default becomes that style's default.
func (s *MemorySource) Merge(presets ...domain.StylePreset) error {
	for _, p := range presets {
		if strings.TrimSpace(p.ID) == "" {
			return fmt.Errorf("style preset %q: missing id: %w", p.Name, domain.ErrInvalidConfig)
		}
		if p.Profile.HydrationBand.Min > p.Profile.HydrationBand.Max {
			return fmt.Errorf("style preset %s: hydration band is inverted: %w", p.ID, domain.ErrInvalidConfig)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range presets {
		if _, ok := s.presets[p.ID]; ok {
			s.log.Info("style preset replaced: %s", p.ID)
		}
		s.presets[p.ID] = p
		if _, ok := s.defaults[p.Style]; !ok {
			s.defaults[p.Style] = p.ID
		}
	}
	return nil
}

// seed populates the source with the built-in presets.
func (s *MemorySource) seed() {
	builtin := builtinPresets()
	for _, p := range builtin {
		s.presets[p.ID] = p
		if _, ok := s.defaults[p.Style]; !ok {
			s.defaults[p.Style] = p.ID
		}
	}
	s.log.Debug("seeded %d style presets", len(builtin))
}

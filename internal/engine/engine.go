// Package engine is the evaluation facade the CLI and the workbench talk
// to. It validates a dough config, resolves its flour, oven and levain
// from the context catalog, and runs every calculator and advisor on it.
package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hammamikhairi/doughlab/internal/domain"
	"github.com/hammamikhairi/doughlab/internal/environment"
	"github.com/hammamikhairi/doughlab/internal/formula"
	"github.com/hammamikhairi/doughlab/internal/insights"
	"github.com/hammamikhairi/doughlab/internal/logger"
	"github.com/hammamikhairi/doughlab/internal/method"
	"github.com/hammamikhairi/doughlab/internal/smart"
	"github.com/hammamikhairi/doughlab/internal/yeast"
)

// Option configures the engine.
type Option func(*Engine)

// WithClock sets the time source used for levain freshness.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithDefaultOven sets the oven used when EvalOptions names none.
func WithDefaultOven(id string) Option {
	return func(e *Engine) {
		e.defaultOven = id
	}
}

// WithDefaultSurface sets the surface used when EvalOptions names none.
func WithDefaultSurface(s domain.SurfaceType) Option {
	return func(e *Engine) {
		e.defaultSurface = s
	}
}

// Engine evaluates dough configs. It depends only on interfaces and is
// fully testable with in-memory implementations.
type Engine struct {
	presets        domain.StyleCatalog
	catalog        domain.ContextCatalog
	log            *logger.Logger
	now            func() time.Time
	defaultOven    string
	defaultSurface domain.SurfaceType
}

// PresetSearcher is an optional interface that StyleCatalog implementations
// can satisfy to support free-text search.
type PresetSearcher interface {
	Search(query string) []domain.StylePreset
}

// New creates an engine with the given dependencies and options.
func New(presets domain.StyleCatalog, catalog domain.ContextCatalog, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		presets: presets,
		catalog: catalog,
		log:     log,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EvalOptions is the per-evaluation context that is not part of the config.
type EvalOptions struct {
	OvenID     string
	Surface    domain.SurfaceType
	AmbientC   *float64 // nil uses the config's room category
	FlourTempC *float64
	TargetDDTC float64
	Now        time.Time // zero uses the engine clock
}

// Report is the full evaluation of one config.
type Report struct {
	ID          string                         `json:"id"`
	GeneratedAt time.Time                      `json:"generatedAt"`
	Config      domain.DoughConfig             `json:"config"`
	Result      domain.DoughResult             `json:"result"`
	Smart       domain.SmartAdjustmentResult   `json:"smart"`
	Environment domain.EnvironmentAdvice       `json:"environment"`
	Insights    domain.AutoStyleInsightsResult `json:"insights"`
	Method      []domain.TechnicalStep         `json:"method"`

	AmbientC float64                 `json:"ambientC"`
	Preset   *domain.StylePreset     `json:"preset,omitempty"`
	Oven     *domain.Oven            `json:"oven,omitempty"`
	Flour    *domain.FlourDefinition `json:"flour,omitempty"`
	Levain   *domain.Levain          `json:"levain,omitempty"`

	// ContextWarnings lists context ids that could not be resolved.
	ContextWarnings []string `json:"contextWarnings,omitempty"`
}

// Presets returns the style preset table.
func (e *Engine) Presets() domain.StyleCatalog { return e.presets }

// Catalog returns the context catalog.
func (e *Engine) Catalog() domain.ContextCatalog { return e.catalog }

// SearchPresets returns presets matching query. Catalogs without search
// support are filtered by id and name.
func (e *Engine) SearchPresets(query string) []domain.StylePreset {
	if s, ok := e.presets.(PresetSearcher); ok {
		return s.Search(query)
	}
	q := strings.ToLower(query)
	var out []domain.StylePreset
	for _, p := range e.presets.Presets() {
		if strings.Contains(p.ID, q) || strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// ResolvePreset accepts a preset id, a style name or alias, or a search
// term matching exactly one preset, and returns the preset id.
func (e *Engine) ResolvePreset(query string) (string, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if _, ok := e.presets.Preset(q); ok {
		return q, nil
	}
	if style, err := domain.ParseRecipeStyle(q); err == nil {
		if p, ok := e.presets.ForStyle(style); ok {
			return p.ID, nil
		}
	}
	if matches := e.SearchPresets(q); len(matches) == 1 {
		return matches[0].ID, nil
	}
	return "", fmt.Errorf("no single style preset matches %q: %w", query, domain.ErrNotFound)
}

// Validate rejects configs the calculators would turn into meaningless
// numbers. The returned error wraps domain.ErrInvalidConfig and lists
// every problem found.
func (e *Engine) Validate(cfg domain.DoughConfig) error {
	var problems []string
	check := func(bad bool, format string, args ...any) {
		if bad {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	check(cfg.NumUnits <= 0, "number of dough balls must be positive (got %d)", cfg.NumUnits)
	check(cfg.UnitWeight <= 0, "ball weight must be positive (got %g)", cfg.UnitWeight)
	check(cfg.Scale < 0, "scale must not be negative (got %g)", cfg.Scale)
	check(cfg.Hydration < 0, "hydration must not be negative (got %g)", cfg.Hydration)
	check(cfg.Salt < 0, "salt must not be negative (got %g)", cfg.Salt)
	check(cfg.Oil < 0, "oil must not be negative (got %g)", cfg.Oil)
	check(cfg.Sugar < 0, "sugar must not be negative (got %g)", cfg.Sugar)
	check(cfg.YeastPercentage < 0, "yeast must not be negative (got %g)", cfg.YeastPercentage)
	check(cfg.BakingTempC < 0, "baking temperature must not be negative (got %g)", cfg.BakingTempC)

	if _, ok := formula.PrefermentHydration(cfg.FermentationTechnique); ok {
		pf := cfg.PrefermentFlourPercentage
		check(pf <= 0 || pf > 100, "%s needs a preferment flour share between 0 and 100%% (got %g)",
			cfg.FermentationTechnique, pf)
	}
	check(cfg.YeastType == domain.YeastUserLevain && cfg.LevainID == "",
		"a user levain needs a levain id")

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, strings.Join(problems, "; "))
}

// Evaluate validates cfg and runs every calculator and advisor on it.
// Context ids that do not resolve are reported in ContextWarnings and the
// matching advice is skipped; other lookup failures are returned.
func (e *Engine) Evaluate(ctx context.Context, cfg domain.DoughConfig, opts EvalOptions) (*Report, error) {
	if err := e.Validate(cfg); err != nil {
		return nil, err
	}

	now := opts.Now
	if now.IsZero() {
		now = e.now()
	}

	rep := &Report{
		ID:          reportID(now),
		GeneratedAt: now,
		Config:      cfg,
		AmbientC:    cfg.AmbientTemperature.Celsius(),
	}
	if opts.AmbientC != nil {
		rep.AmbientC = *opts.AmbientC
	}
	if err := e.resolve(ctx, cfg, opts, rep); err != nil {
		return nil, err
	}
	if p, ok := insights.ActivePreset(cfg, e.presets); ok {
		rep.Preset = &p
	}

	rep.Result = formula.Calculate(cfg)
	rep.Smart = smart.Evaluate(cfg, smart.Context{
		Oven:   rep.Oven,
		Flour:  rep.Flour,
		Levain: rep.Levain,
		Now:    now,
	})
	if rep.Oven != nil {
		rep.Environment = environment.Advise(e.environmentInput(cfg, opts, rep))
	} else {
		rep.Environment = environment.RoomAdvice(e.environmentInput(cfg, opts, rep))
	}

	var flourW float64
	if rep.Flour != nil {
		flourW = rep.Flour.StrengthW
	}
	rep.Insights = insights.Analyze(cfg, rep.AmbientC, flourW, rep.Oven, e.presets)
	rep.Method = method.Generate(cfg, rep.Result)

	e.log.Debug("evaluated %s (%s, %.0f g): fit=%.0f warnings=%d suggestions=%d",
		rep.ID, cfg.RecipeStyle, rep.Result.TotalDough, rep.Insights.StyleFitScore,
		len(rep.Smart.RiskWarnings)+len(rep.Environment.Warnings), len(rep.Smart.Suggestions))
	return rep, nil
}

func (e *Engine) resolve(ctx context.Context, cfg domain.DoughConfig, opts EvalOptions, rep *Report) error {
	soft := func(kind, id string, err error) error {
		if errors.Is(err, domain.ErrNotFound) {
			rep.ContextWarnings = append(rep.ContextWarnings, fmt.Sprintf("unknown %s %q", kind, id))
			e.log.Warn("%s %q not in catalog, skipping its advice", kind, id)
			return nil
		}
		return fmt.Errorf("resolving %s: %w", kind, err)
	}

	if cfg.FlourID != "" {
		f, err := e.catalog.Flour(ctx, cfg.FlourID)
		if err != nil {
			if err := soft("flour", cfg.FlourID, err); err != nil {
				return err
			}
		}
		rep.Flour = f
	}

	ovenID := opts.OvenID
	if ovenID == "" {
		ovenID = e.defaultOven
	}
	if ovenID != "" {
		o, err := e.catalog.Oven(ctx, ovenID)
		if err != nil {
			if err := soft("oven", ovenID, err); err != nil {
				return err
			}
		}
		rep.Oven = o
	}

	if cfg.YeastType == domain.YeastUserLevain && cfg.LevainID != "" {
		l, err := e.catalog.Levain(ctx, cfg.LevainID)
		if err != nil {
			if err := soft("levain", cfg.LevainID, err); err != nil {
				return err
			}
		}
		rep.Levain = l
	}
	return nil
}

func (e *Engine) environmentInput(cfg domain.DoughConfig, opts EvalOptions, rep *Report) domain.EnvironmentInput {
	in := domain.EnvironmentInput{
		Surface:      opts.Surface,
		Style:        cfg.RecipeStyle,
		AmbientTempC: rep.AmbientC,
		FlourTempC:   opts.FlourTempC,
		TargetDDTC:   opts.TargetDDTC,
	}
	if in.Surface == domain.SurfaceNone {
		in.Surface = e.defaultSurface
	}
	if rep.Oven != nil {
		in.OvenType = rep.Oven.Type
		in.MaxOvenTempC = rep.Oven.MaxTemperature
		if in.Surface == domain.SurfaceNone && rep.Oven.HasSteel {
			in.Surface = domain.SurfaceSteel
		}
	}
	return in
}

// ApplyRecommendation returns the config the insights recommendation leads
// to, with the list of changes for the user to confirm.
func (e *Engine) ApplyRecommendation(cfg domain.DoughConfig, res domain.AutoStyleInsightsResult) (domain.DoughConfig, []domain.ConfigChange) {
	next, changes := insights.Apply(cfg, res, e.presets)
	if len(changes) > 0 {
		e.log.Info("recommendation %s proposes %d changes", res.RecommendedStyle, len(changes))
	}
	return next, changes
}

// ApplySuggestion sets the suggested field on cfg.
func (e *Engine) ApplySuggestion(cfg domain.DoughConfig, s domain.Suggestion) (domain.DoughConfig, domain.ConfigChange, error) {
	next, err := cfg.WithNumber(s.Key, s.Value)
	if err != nil {
		return cfg, domain.ConfigChange{}, fmt.Errorf("applying suggestion: %w", err)
	}
	change := domain.ConfigChange{
		Key:   s.Key,
		Label: s.Key.Label(),
		From:  cfg.Format(s.Key),
		To:    next.Format(s.Key),
	}
	e.log.Debug("applied suggestion %s: %s -> %s", s.Key, change.From, change.To)
	return next, change, nil
}

// SelectPreset loads a preset's formula into cfg.
func (e *Engine) SelectPreset(cfg domain.DoughConfig, id string) (domain.DoughConfig, []domain.ConfigChange, error) {
	p, ok := e.presets.Preset(id)
	if !ok {
		return cfg, nil, fmt.Errorf("style preset %q: %w", id, domain.ErrNotFound)
	}
	next := insights.FromPreset(cfg, p)
	next.FermentationTechnique = p.Technique
	if _, ok := formula.PrefermentHydration(p.Technique); ok && next.PrefermentFlourPercentage <= 0 {
		next.PrefermentFlourPercentage = DefaultPrefermentFlourPercentage
	}
	changes := insights.Diff(cfg, next)
	if next.FermentationTechnique != cfg.FermentationTechnique {
		changes = append(changes, domain.ConfigChange{
			Key:   domain.FieldFermentationTechnique,
			Label: domain.FieldFermentationTechnique.Label(),
			From:  cfg.FermentationTechnique.String(),
			To:    next.FermentationTechnique.String(),
		})
	}
	return next, changes, nil
}

// DefaultPrefermentFlourPercentage is used when switching to a preferment
// technique from a config that has no preferment share.
const DefaultPrefermentFlourPercentage = 30.0

// SetTechnique switches the fermentation technique. A pct of 0 keeps the
// current preferment share, or uses the default when there is none.
func (e *Engine) SetTechnique(cfg domain.DoughConfig, t domain.FermentationTechnique, pct float64) domain.DoughConfig {
	cfg.FermentationTechnique = t
	if pct > 0 {
		cfg.PrefermentFlourPercentage = pct
	} else if _, ok := formula.PrefermentHydration(t); ok && cfg.PrefermentFlourPercentage <= 0 {
		cfg.PrefermentFlourPercentage = DefaultPrefermentFlourPercentage
	}
	return cfg
}

// SetYeast switches the yeast type. Between commercial yeasts the
// percentage is converted to keep the same leavening power unless pct is
// given; switching to or from a culture requires pct.
func (e *Engine) SetYeast(cfg domain.DoughConfig, t domain.YeastType, pct float64) (domain.DoughConfig, error) {
	if pct > 0 {
		cfg.YeastType, cfg.YeastPercentage = t, pct
		return cfg, nil
	}
	converted, err := yeast.Convert(cfg.YeastPercentage, cfg.YeastType, t)
	if err != nil {
		return cfg, fmt.Errorf("switching %s to %s needs an explicit percentage: %w", cfg.YeastType, t, err)
	}
	cfg.YeastType, cfg.YeastPercentage = t, converted
	return cfg, nil
}

package display

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hammamikhairi/doughlab/internal/domain"
	"github.com/hammamikhairi/doughlab/internal/engine"
	"github.com/hammamikhairi/doughlab/internal/logger"
)

// Workbench holds the recipe being edited and executes parsed commands
// against it. It does not recompute on edits; the caller decides when
// (the terminal UI debounces) and calls Recompute.
//
// A Workbench is not safe for concurrent use.
type Workbench struct {
	eng    *engine.Engine
	parser domain.CommandParser
	log    *logger.Logger
	opts   engine.EvalOptions
	units  domain.UnitSystem

	start  domain.DoughConfig
	cfg    domain.DoughConfig
	report *engine.Report
	err    error
	dirty  bool

	pending *pendingApply
}

// pendingApply is a multi-field change waiting for the user's yes.
type pendingApply struct {
	cfg     domain.DoughConfig
	changes []domain.ConfigChange
}

// Response is the outcome of one command.
type Response struct {
	Lines   []string
	Changed bool // the recipe changed and needs a recompute
	Quit    bool
}

// NewWorkbench starts a workbench on cfg.
func NewWorkbench(eng *engine.Engine, parser domain.CommandParser, log *logger.Logger,
	cfg domain.DoughConfig, opts engine.EvalOptions, units domain.UnitSystem) *Workbench {
	return &Workbench{
		eng:    eng,
		parser: parser,
		log:    log,
		opts:   opts,
		units:  units,
		start:  cfg,
		cfg:    cfg,
		dirty:  true,
	}
}

// Config returns the recipe being edited.
func (w *Workbench) Config() domain.DoughConfig { return w.cfg }

// Report returns the latest evaluation, or nil if the recipe is invalid
// or was never evaluated.
func (w *Workbench) Report() *engine.Report { return w.report }

// Dirty reports whether the recipe changed since the last Recompute.
func (w *Workbench) Dirty() bool { return w.dirty }

// AwaitingConfirmation reports whether a change list is waiting for a yes.
func (w *Workbench) AwaitingConfirmation() bool { return w.pending != nil }

// Recompute evaluates the current recipe. On failure the previous report
// is dropped so stale numbers are never shown.
func (w *Workbench) Recompute(ctx context.Context) error {
	w.dirty = false
	rep, err := w.eng.Evaluate(ctx, w.cfg, w.opts)
	if err != nil {
		w.report, w.err = nil, err
		w.log.Debug("recompute failed: %v", err)
		return err
	}
	w.report, w.err = rep, nil
	return nil
}

// Status is the text of the status bar.
func (w *Workbench) Status() string {
	switch {
	case w.err != nil:
		return "invalid recipe: " + strings.TrimPrefix(w.err.Error(), domain.ErrInvalidConfig.Error()+": ")
	case w.report == nil:
		return DisplayName(w.cfg.RecipeStyle.String())
	default:
		return Summary(w.report)
	}
}

// Execute parses input and applies it to the recipe.
func (w *Workbench) Execute(ctx context.Context, input string) Response {
	if w.pending != nil {
		return w.confirm(input)
	}

	intent, err := w.parser.Parse(ctx, input)
	if err != nil {
		return failed(err)
	}
	w.log.Debug("intent %s field=%s payload=%q", intent.Type, intent.Field, intent.Payload)

	switch intent.Type {
	case domain.IntentSetField:
		return w.setField(intent.Field, intent.Payload)
	case domain.IntentSelectStyle:
		return w.selectStyle(intent.Payload)
	case domain.IntentApplyRecommendation:
		return w.applyRecommendation(ctx)
	case domain.IntentAcceptSuggestion:
		return w.acceptSuggestion(ctx, intent.Payload)
	case domain.IntentShowFormula:
		return w.show(ctx, func(rep *engine.Report) string { return Formula(rep, w.units) })
	case domain.IntentShowAdvice:
		return w.show(ctx, func(rep *engine.Report) string { return Advice(rep) + "\n" + Insights(rep) })
	case domain.IntentShowMethod:
		return w.show(ctx, func(rep *engine.Report) string { return Method(rep.Method) })
	case domain.IntentListStyles:
		presets := w.eng.Presets().Presets()
		if intent.Payload != "" {
			presets = w.eng.SearchPresets(intent.Payload)
		}
		return say(Styles(presets))
	case domain.IntentReset:
		w.cfg = w.start
		w.dirty = true
		return Response{Lines: []string{chatStyle.Render("  Back to the starting recipe.")}, Changed: true}
	case domain.IntentHelp:
		return say(primaryStyle.Render(helpText))
	case domain.IntentQuit:
		return Response{Lines: []string{chatStyle.Render("  Happy baking.")}, Quit: true}
	default:
		if intent.Payload == "" {
			return Response{}
		}
		return say(chatStyle.Render(fmt.Sprintf("  Not sure what %q means. Type help for the commands.", intent.Payload)))
	}
}

func (w *Workbench) setField(f domain.ConfigField, payload string) Response {
	var (
		next domain.DoughConfig
		err  error
	)
	switch f {
	case domain.FieldFermentationTechnique:
		name, pct, perr := nameAndPercent(payload)
		if perr != nil {
			return failed(perr)
		}
		t, terr := domain.ParseTechnique(name)
		if terr != nil {
			return failed(terr)
		}
		next = w.eng.SetTechnique(w.cfg, t, pct)
	case domain.FieldYeastType:
		name, pct, perr := nameAndPercent(payload)
		if perr != nil {
			return failed(perr)
		}
		t, terr := domain.ParseYeastType(name)
		if terr != nil {
			return failed(terr)
		}
		next, err = w.eng.SetYeast(w.cfg, t, pct)
	case domain.FieldStylePresetID:
		return w.selectStyle(payload)
	default:
		next, err = w.cfg.With(f, payload)
	}
	if err != nil {
		return failed(err)
	}

	changes := diffFields(w.cfg, next)
	if len(changes) == 0 {
		return say(chatStyle.Render(fmt.Sprintf("  %s is already %s.", f.Label(), w.cfg.Format(f))))
	}
	return w.commit(next, changes)
}

func (w *Workbench) selectStyle(query string) Response {
	id, err := w.eng.ResolvePreset(query)
	if err != nil {
		return failed(fmt.Errorf("%w; type styles to list them", err))
	}
	next, changes, err := w.eng.SelectPreset(w.cfg, id)
	if err != nil {
		return failed(err)
	}
	if len(changes) == 0 {
		return say(chatStyle.Render(fmt.Sprintf("  Already on %s.", id)))
	}
	return w.commit(next, changes)
}

func (w *Workbench) applyRecommendation(ctx context.Context) Response {
	rep, resp, ok := w.fresh(ctx)
	if !ok {
		return resp
	}
	next, changes := w.eng.ApplyRecommendation(w.cfg, rep.Insights)
	if len(changes) == 0 {
		return say(chatStyle.Render("  Nothing to apply: the recipe already fits its style best."))
	}
	w.pending = &pendingApply{cfg: next, changes: changes}

	lines := []string{chatStyle.Render(fmt.Sprintf("  Switching to %s changes:", rep.Insights.RecommendedStyle))}
	lines = append(lines, Changes(changes))
	lines = append(lines, secondaryStyle.Render("  Type yes to apply, anything else to keep the current recipe."))
	return Response{Lines: lines}
}

func (w *Workbench) confirm(input string) Response {
	p := w.pending
	w.pending = nil
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes", "ok", "apply":
		w.log.Info("applied %d changes", len(p.changes))
		w.cfg = p.cfg
		w.dirty = true
		return Response{
			Lines:   []string{chatStyle.Render(fmt.Sprintf("  Applied %d changes.", len(p.changes)))},
			Changed: true,
		}
	default:
		return say(chatStyle.Render("  Kept the current recipe."))
	}
}

func (w *Workbench) acceptSuggestion(ctx context.Context, payload string) Response {
	rep, resp, ok := w.fresh(ctx)
	if !ok {
		return resp
	}
	n, err := strconv.Atoi(payload)
	if err != nil || n < 1 || n > len(rep.Smart.Suggestions) {
		return failed(fmt.Errorf("there is no suggestion %s (%d available): %w",
			payload, len(rep.Smart.Suggestions), domain.ErrUnknownValue))
	}
	next, change, err := w.eng.ApplySuggestion(w.cfg, rep.Smart.Suggestions[n-1])
	if err != nil {
		return failed(err)
	}
	return w.commit(next, []domain.ConfigChange{change})
}

func (w *Workbench) commit(next domain.DoughConfig, changes []domain.ConfigChange) Response {
	w.cfg = next
	w.dirty = true
	return Response{Lines: []string{Changes(changes)}, Changed: true}
}

// fresh returns an up-to-date report, recomputing first if an edit is
// still waiting for its debounce.
func (w *Workbench) fresh(ctx context.Context) (*engine.Report, Response, bool) {
	if w.dirty {
		if err := w.Recompute(ctx); err != nil {
			return nil, failed(err), false
		}
	}
	if w.report == nil {
		if w.err != nil {
			return nil, failed(w.err), false
		}
		return nil, say(chatStyle.Render("  Nothing evaluated yet.")), false
	}
	return w.report, Response{}, true
}

func (w *Workbench) show(ctx context.Context, render func(*engine.Report) string) Response {
	rep, resp, ok := w.fresh(ctx)
	if !ok {
		return resp
	}
	return say(render(rep))
}

// diffFields lists every field that differs between from and to.
func diffFields(from, to domain.DoughConfig) []domain.ConfigChange {
	var out []domain.ConfigChange
	for f := domain.FieldHydration; f <= domain.FieldAmbientTemperature; f++ {
		a, b := from.Format(f), to.Format(f)
		if a != b {
			out = append(out, domain.ConfigChange{Key: f, Label: f.Label(), From: a, To: b})
		}
	}
	return out
}

// nameAndPercent splits "biga 50" or "fresh 0.3%" into a name and an
// optional percentage.
func nameAndPercent(s string) (string, float64, error) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 0:
		return "", 0, fmt.Errorf("missing value: %w", domain.ErrUnknownValue)
	case 1:
		return fields[0], 0, nil
	case 2:
		v, err := strconv.ParseFloat(strings.TrimSuffix(fields[1], "%"), 64)
		if err != nil || v <= 0 {
			return "", 0, fmt.Errorf("%q is not a positive percentage: %w", fields[1], domain.ErrUnknownValue)
		}
		return fields[0], v, nil
	default:
		return "", 0, fmt.Errorf("%q: expected a name and an optional percentage: %w", s, domain.ErrUnknownValue)
	}
}

func say(lines ...string) Response { return Response{Lines: lines} }

func failed(err error) Response {
	msg := err.Error()
	if errors.Is(err, domain.ErrUnknownField) {
		msg += " (try help)"
	}
	return Response{Lines: []string{urgentOutputStyle.Render("  " + msg)}}
}

const helpText = `  set <field> <value>      change a field (hydration, salt, oil, sugar, yeast,
                           balls, weight, scale, temp, flour, levain, room)
  <field> <value>          same, e.g. "hydration 65"
  style <preset|style>     load a style preset, e.g. "style new-york"
  styles [query]           list or search style presets
  technique <name> [pct]   direct, poolish or biga, e.g. "technique biga 50"
  yeast <type> [pct]       switch yeast, converting the amount when possible
  formula                  ingredient weights and volumes
  advice                   adjustments, oven advice and style fit
  method                   step-by-step working method
  apply                    switch to the recommended style (asks first)
  accept <n>               take suggestion n from the advice
  reset                    back to the starting recipe
  quit                     leave`

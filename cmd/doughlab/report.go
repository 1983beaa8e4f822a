package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/doughlab/internal/config"
	"github.com/hammamikhairi/doughlab/internal/display"
	"github.com/hammamikhairi/doughlab/internal/engine"
)

func newCalcCmd(c *cli) *cobra.Command {
	var save string
	cmd := &cobra.Command{
		Use:     "calc",
		Aliases: []string{"formula"},
		Short:   "Calculate ingredient weights",
		Long: `Calculate the gram weight of every ingredient, with its baker's percentage
and an approximate kitchen volume. Preferment techniques also show the
preferment and the final dough separately.

Examples:
  doughlab calc --balls 6 --weight 270
  doughlab calc --style focaccia --units us
  doughlab calc --technique poolish --preferment 40 --save poolish.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := c.report(cmd)
			if err != nil {
				return err
			}
			if save != "" {
				if err := config.SaveRecipe(save, rep.Config); err != nil {
					return err
				}
				c.log.Info("saved recipe to %s", save)
			}
			if c.jsonOut {
				return writeJSON(cmd.OutOrStdout(), rep)
			}
			warnContext(cmd.ErrOrStderr(), rep)
			return c.printFormula(cmd.OutOrStdout(), rep)
		},
	}
	cmd.Flags().StringVar(&save, "save", "", "also write the resulting recipe to this file")
	return cmd
}

func (c *cli) printFormula(w io.Writer, rep *engine.Report) error {
	cfg, res, units := rep.Config, rep.Result, c.settings.Units

	fmt.Fprintf(w, "%s · %d × %.0f g · %.0f g dough\n\n",
		display.DisplayName(cfg.RecipeStyle.String()), cfg.NumUnits, cfg.UnitWeight, res.TotalDough)
	if err := ingredientTable(w, display.Ingredients(cfg, res, units)); err != nil {
		return err
	}

	pre, final := display.PrefermentRows(cfg, res, units)
	if pre == nil {
		return nil
	}
	fmt.Fprintf(w, "\n%s, %.0f%% of the flour, mixed ahead:\n",
		display.DisplayName(cfg.FermentationTechnique.String()), cfg.PrefermentFlourPercentage)
	if err := ingredientTable(w, pre); err != nil {
		return err
	}
	fmt.Fprintln(w, "\nFinal dough:")
	return ingredientTable(w, final)
}

func ingredientTable(w io.Writer, rows []display.IngredientRow) error {
	t := newTable(w, "Ingredient", "Grams", "Baker's %", "Volume")
	for _, r := range rows {
		t.add(r.Name, fmt.Sprintf("%.1f", r.Grams), fmt.Sprintf("%.2f", r.Percent), r.Volume)
	}
	return t.render()
}

func newAdviseCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "advise",
		Aliases: []string{"advice"},
		Short:   "Review a recipe against the room, oven, flour and levain",
		Long: `Run the smart adjustments, the oven and surface advice and the style
compatibility analysis on a recipe.

Examples:
  doughlab advise --oven home-electric
  doughlab advise --style neapolitan --oven wood-fired --flour caputo-pizzeria
  doughlab advise --ambient 30 --flour-temp 24`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := c.report(cmd)
			if err != nil {
				return err
			}
			if c.jsonOut {
				return writeJSON(cmd.OutOrStdout(), rep)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, display.Advice(rep))
			fmt.Fprintln(w)
			fmt.Fprintln(w, display.Insights(rep))
			return nil
		},
	}
}

func newMethodCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "method",
		Aliases: []string{"steps"},
		Short:   "Print the step-by-step working method",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := c.report(cmd)
			if err != nil {
				return err
			}
			if c.jsonOut {
				return writeJSON(cmd.OutOrStdout(), rep.Method)
			}
			fmt.Fprintln(cmd.OutOrStdout(), display.Method(rep.Method))
			return nil
		},
	}
}

// warnContext reports catalog ids that did not resolve.
func warnContext(w io.Writer, rep *engine.Report) {
	for _, msg := range rep.ContextWarnings {
		fmt.Fprintf(w, "warning: %s, its advice is skipped\n", msg)
	}
}

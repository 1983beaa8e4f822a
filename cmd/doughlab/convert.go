package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/doughlab/internal/display"
	"github.com/hammamikhairi/doughlab/internal/domain"
	"github.com/hammamikhairi/doughlab/internal/volume"
	"github.com/hammamikhairi/doughlab/internal/yeast"
)

// yeastTypes are the commercial yeasts the converter handles.
var yeastTypes = []domain.YeastType{domain.YeastInstantDry, domain.YeastActiveDry, domain.YeastFresh}

type yeastConversion struct {
	Amount float64          `json:"amount"`
	From   domain.YeastType `json:"from"`
	To     domain.YeastType `json:"to"`
	Result float64          `json:"result"`
}

func newYeastCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "yeast <amount> <from> [to]",
		Short: "Convert between commercial yeast types",
		Long: `Convert an amount (grams or baker's percentage) of one commercial yeast
into the equivalent amount of another. Without a target type, every
commercial type is listed. Sourdough starter and levain are not
convertible.

Examples:
  doughlab yeast 0.3 fresh instant_dry
  doughlab yeast 7 idy`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "%"), 64)
			if err != nil {
				return fmt.Errorf("amount %q is not a number: %w", args[0], domain.ErrUnknownValue)
			}
			from, err := domain.ParseYeastType(args[1])
			if err != nil {
				return err
			}

			targets := yeastTypes
			if len(args) == 3 {
				to, err := domain.ParseYeastType(args[2])
				if err != nil {
					return err
				}
				targets = []domain.YeastType{to}
			}

			out := make([]yeastConversion, 0, len(targets))
			for _, to := range targets {
				v, err := yeast.Convert(amount, from, to)
				if err != nil {
					return err
				}
				out = append(out, yeastConversion{Amount: amount, From: from, To: to, Result: v})
			}
			if c.jsonOut {
				return writeJSON(cmd.OutOrStdout(), out)
			}

			t := newTable(cmd.OutOrStdout(), "From", "Amount", "To", "Amount")
			for _, conv := range out {
				t.add(display.YeastLabel(conv.From), strconv.FormatFloat(conv.Amount, 'f', -1, 64),
					display.YeastLabel(conv.To), fmt.Sprintf("%.3f", conv.Result))
			}
			return t.render()
		},
	}
}

func newVolumeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "volume <ingredient> <grams>",
		Short: "Convert grams of an ingredient to kitchen volume",
		Long: `Convert a weight to teaspoons, tablespoons or cups using the ingredient's
density. Unknown ingredients are shown as an approximate weight.

Examples:
  doughlab volume flour 500
  doughlab volume salt 14 --units us`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			grams, err := strconv.ParseFloat(strings.TrimSuffix(args[1], "g"), 64)
			if err != nil {
				return fmt.Errorf("grams %q is not a number: %w", args[1], domain.ErrUnknownValue)
			}
			got := volume.GramsToVolume(args[0], grams, volume.DefaultLabels, c.settings.Units)
			if c.jsonOut {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"ingredient": args[0],
					"grams":      grams,
					"units":      c.settings.Units,
					"volume":     got,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g g %s ≈ %s\n", grams, args[0], got)
			return nil
		},
	}
}

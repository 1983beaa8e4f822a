package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/doughlab/internal/display"
)

func newStylesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "styles [query]",
		Aliases: []string{"presets"},
		Short:   "List or search the style presets",
		Long: `List the built-in style presets and any presets added in the settings file.
A query filters by id, name, description, style or tag.

Examples:
  doughlab styles
  doughlab styles pan
  doughlab styles --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := c.presets.Presets()
			if len(args) == 1 {
				presets = c.presets.Search(args[0])
			}
			if c.jsonOut {
				return writeJSON(cmd.OutOrStdout(), presets)
			}
			if len(presets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No style presets match.")
				return nil
			}

			t := newTable(cmd.OutOrStdout(), "ID", "Name", "Style", "Hydration", "Technique", "Fermentation")
			for _, p := range presets {
				band := p.Profile.HydrationBand
				ferment := p.Profile.FermentationHours
				t.add(
					p.ID,
					p.Name,
					display.DisplayName(p.Style.String()),
					fmt.Sprintf("%.0f%% (%.0f–%.0f)", p.Hydration, band.Min, band.Max),
					strings.ToLower(p.Technique.String()),
					fmt.Sprintf("%.0f–%.0f h", ferment.Min, ferment.Max),
				)
			}
			return t.render()
		},
	}
}

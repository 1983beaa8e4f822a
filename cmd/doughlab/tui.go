package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/doughlab/internal/config"
	"github.com/hammamikhairi/doughlab/internal/conversation"
	"github.com/hammamikhairi/doughlab/internal/display"
)

func newTUICmd(c *cli) *cobra.Command {
	var save string
	cmd := &cobra.Command{
		Use:     "tui",
		Aliases: []string{"workbench"},
		Short:   "Edit a recipe interactively",
		Long: `Start the interactive workbench. Every edit recomputes the formula, the
advice and the style fit once typing settles. Type help inside for the
commands.

Examples:
  doughlab tui
  doughlab tui --style focaccia --oven home-gas --save focaccia.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.buildRecipe(cmd)
			if err != nil {
				return err
			}

			wb := display.NewWorkbench(c.eng, conversation.NewKeywordParser(c.log), c.log,
				cfg, c.evalOptions(), c.settings.Units)
			ui := display.NewUI(wb, c.settings.Debounce)

			ui.Println(display.RenderBanner(0))
			ui.Println("  Type help for the commands, quit to leave.")
			c.log.Info("workbench started on %s", cfg.RecipeStyle)

			if err := ui.Run(); err != nil {
				return fmt.Errorf("workbench: %w", err)
			}

			if save != "" {
				if err := config.SaveRecipe(save, wb.Config()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved recipe to %s\n", save)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&save, "save", "", "write the final recipe to this file on exit")
	return cmd
}

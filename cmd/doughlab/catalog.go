package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/doughlab/internal/storage"
)

func newCatalogCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the flours, ovens and levains recipes can refer to",
		Long: `List the context catalog: the built-in flours and ovens plus everything
loaded from --catalog (or DOUGHLAB_CATALOG).

Examples:
  doughlab catalog
  doughlab catalog --catalog kitchen.yaml
  doughlab catalog export kitchen.yaml
  doughlab catalog feed bubbles --catalog kitchen.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := c.store.Snapshot(cmd.Context())
			if c.jsonOut {
				return writeJSON(cmd.OutOrStdout(), snap)
			}
			return printCatalog(cmd, snap)
		},
	}
	cmd.AddCommand(newCatalogExportCmd(c), newCatalogFeedCmd(c))
	return cmd
}

func printCatalog(cmd *cobra.Command, snap *storage.CatalogFile) error {
	w := cmd.OutOrStdout()

	fmt.Fprintln(w, "Flours:")
	flours := newTable(w, "ID", "Name", "W", "Hydration")
	for _, f := range snap.Flours {
		strength, hint := "-", "-"
		if f.StrengthW > 0 {
			strength = fmt.Sprintf("%.0f", f.StrengthW)
		}
		if f.HydrationHint != nil {
			hint = fmt.Sprintf("%.0f–%.0f%%", f.HydrationHint.Min, f.HydrationHint.Max)
		}
		flours.add(f.ID, f.Name, strength, hint)
	}
	if err := flours.render(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nOvens:")
	ovens := newTable(w, "ID", "Name", "Type", "Max", "Steel")
	for _, o := range snap.Ovens {
		steel := "no"
		if o.HasSteel {
			steel = "yes"
		}
		ovens.add(o.ID, o.Name, o.Type.String(), fmt.Sprintf("%.0f°C", o.MaxTemperature), steel)
	}
	if err := ovens.render(); err != nil {
		return err
	}

	if len(snap.Levains) == 0 {
		return nil
	}
	fmt.Fprintln(w, "\nLevains:")
	now := time.Now()
	levains := newTable(w, "ID", "Name", "Hydration", "Fed")
	for _, l := range snap.Levains {
		levains.add(l.ID, l.Name, fmt.Sprintf("%.0f%%", l.Hydration),
			fmt.Sprintf("%.0f h ago", l.HoursSinceFeeding(now)))
	}
	return levains.render()
}

func newCatalogExportCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the current catalog to a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := storage.WriteCatalogFile(args[0], c.store.Snapshot(cmd.Context())); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote catalog to %s\n", args[0])
			return nil
		},
	}
}

func newCatalogFeedCmd(c *cli) *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "feed <levain-id>",
		Short: "Record a levain feeding and save the catalog file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.settings.CatalogPath
			if path == "" {
				return fmt.Errorf("feed needs a catalog file to save to; pass --catalog")
			}

			fed := time.Now()
			if at != "" {
				t, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("--at: %w", err)
				}
				fed = t
			}

			ctx := cmd.Context()
			l, err := c.store.Levain(ctx, args[0])
			if err != nil {
				return err
			}
			l.LastFeeding = fed
			if err := c.store.SaveLevain(ctx, *l); err != nil {
				return err
			}
			if err := storage.WriteCatalogFile(path, c.store.Snapshot(ctx)); err != nil {
				return err
			}
			c.log.Info("levain %s fed at %s", l.ID, fed.Format(time.RFC3339))
			fmt.Fprintf(cmd.OutOrStdout(), "Fed %s at %s\n", l.Name, fed.Format("Mon 15:04"))
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "feeding time in RFC 3339 (default now)")
	return cmd
}

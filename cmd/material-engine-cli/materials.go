package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/buildfacts/material-engine/internal/catalog"
	"github.com/buildfacts/material-engine/internal/qa"
)

// newMaterialsCmd creates the materials subcommand with list and get.
func newMaterialsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "materials",
		Short: "Inspect catalog materials",
	}

	cmd.AddCommand(newMaterialsListCmd())
	cmd.AddCommand(newMaterialsGetCmd())

	return cmd
}

func newMaterialsListCmd() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog materials, optionally ranked by a search query",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(30 * time.Second)
			defer cancel()

			rt, err := openRuntime(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			records, err := rt.Store.GetAll(ctx)
			if err != nil {
				return fmt.Errorf("list materials: %w", err)
			}

			if query != "" {
				parsed := rt.Engine.Parse(query)
				records = qa.SelectMaterials(parsed, records, nil, len(records))
			}

			if outputJSON {
				printJSON(records)
				return nil
			}

			ui := NewUI(false)
			defer ui.Close()

			if len(records) == 0 {
				ui.Info("No materials in catalog")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, []string{
					rec.ID,
					rec.Classification.ProductName,
					rec.Classification.Manufacturer,
					rec.Physical.ChemistryType,
				})
			}
			ui.Table([]string{"ID", "Product", "Manufacturer", "Chemistry"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "rank results by relevance to this text")

	return cmd
}

func newMaterialsGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [material-id]",
		Short: "Show one material record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(30 * time.Second)
			defer cancel()

			rt, err := openRuntime(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			rec, err := rt.Store.Get(ctx, args[0])
			if err != nil {
				if errors.Is(err, catalog.ErrNotFound) {
					return fmt.Errorf("material %s not found", args[0])
				}
				return fmt.Errorf("get material: %w", err)
			}

			if outputJSON {
				printJSON(rec)
				return nil
			}

			ui := NewUI(false)
			defer ui.Close()

			ui.KeyValue("ID", rec.ID)
			ui.KeyValue("Product", rec.Classification.FullName)
			ui.KeyValue("Manufacturer", rec.Classification.Manufacturer)
			ui.KeyValue("Chemistry", rec.Physical.ChemistryType)
			if rec.Performance.ServiceTempMinF != nil && rec.Performance.ServiceTempMaxF != nil {
				ui.KeyValue("Service range", fmt.Sprintf("%.0fF to %.0fF",
					*rec.Performance.ServiceTempMinF, *rec.Performance.ServiceTempMaxF))
			}
			if rec.Performance.AppTempMinF != nil && rec.Performance.AppTempMaxF != nil {
				ui.KeyValue("Application range", fmt.Sprintf("%.0fF to %.0fF",
					*rec.Performance.AppTempMinF, *rec.Performance.AppTempMaxF))
			}
			ui.KeyValue("Failure modes", len(rec.Engineering.FailureModeRefs))
			ui.KeyValue("Matrix entries", len(rec.Engineering.CompatibilityMatrix))
			ui.KeyValue("Constraints", len(rec.Engineering.Constraints))
			return nil
		},
	}

	return cmd
}

// newSeedCmd creates the seed subcommand.
func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the built-in reference catalog into the configured store",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(5 * time.Minute)
			defer cancel()

			rt, err := openRuntime(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			records := catalog.SeedRecords()

			var bar *progressbar.ProgressBar
			if !outputJSON && isTerminal() {
				bar = progressbar.Default(int64(len(records)), "Seeding catalog")
			}

			for i := range records {
				if err := rt.Store.Put(ctx, records[i]); err != nil {
					return fmt.Errorf("seed %s: %w", records[i].ID, err)
				}
				if bar != nil {
					_ = bar.Add(1)
				}
			}
			if bar != nil {
				_ = bar.Finish()
			}

			if outputJSON {
				printJSON(map[string]interface{}{"seeded": len(records)})
				return nil
			}

			ui := NewUI(false)
			defer ui.Close()
			ui.Success("Seeded %d materials", len(records))
			return nil
		},
	}

	return cmd
}

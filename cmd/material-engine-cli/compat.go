package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/buildfacts/material-engine/internal/catalog"
	"github.com/buildfacts/material-engine/internal/qa"
	"github.com/buildfacts/material-engine/internal/refdata"
)

// newCompatCmd creates the compat subcommand.
func newCompatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compat [material-id-1] [material-id-2]",
		Short: "Check pairwise compatibility between two catalog materials",
		Long: `Compat merges each material's own compatibility matrix with the global
chemistry rules and reports the worst finding. Materials missing from the
catalog give an "unknown" status rather than an error.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(30 * time.Second)
			defer cancel()

			rt, err := openRuntime(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			result, err := rt.Engine.CheckCompatibility(ctx, args[0], args[1])
			if err != nil {
				return fmt.Errorf("compatibility check failed: %w", err)
			}

			if outputJSON {
				printJSON(result)
				return nil
			}

			ui := NewUI(false)
			defer ui.Close()

			switch {
			case len(result.NotFound) > 0:
				ui.Warning("Unknown materials: %v", result.NotFound)
			case result.Compatible:
				ui.Success("%s", result.Summary)
			case result.Status == string(refdata.StatusConditional):
				ui.Warning("%s", result.Summary)
			default:
				ui.Warning("INCOMPATIBLE: %s", result.Summary)
			}

			if len(result.Issues) > 0 {
				ui.Section("Findings")
				for _, issue := range result.Issues {
					ui.Bullet("%s × %s: %s", issue.MaterialName, issue.OtherType, issue.Status)
					if issue.Reason != "" {
						fmt.Printf("      %s\n", issue.Reason)
					}
					if issue.Requirement != "" {
						fmt.Printf("      Requirement: %s\n", issue.Requirement)
					}
				}
			}
			return nil
		},
	}

	return cmd
}

// newPredictCmd creates the predict subcommand.
func newPredictCmd() *cobra.Command {
	var (
		tempF    float64
		moisture string
		uv       string
	)

	cmd := &cobra.Command{
		Use:   "predict [material-id]",
		Short: "Predict failure modes for a material under site conditions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(30 * time.Second)
			defer cancel()

			rt, err := openRuntime(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			cond := &qa.Conditions{
				Moisture:   moisture,
				UVExposure: uv,
			}
			if cmd.Flags().Changed("temp") {
				cond.TemperatureF = catalog.Float64Ptr(tempF)
			}

			predictions, err := rt.Engine.PredictFailures(ctx, args[0], cond)
			if err != nil {
				return fmt.Errorf("prediction failed: %w", err)
			}

			if outputJSON {
				printJSON(predictions)
				return nil
			}

			ui := NewUI(false)
			defer ui.Close()

			if len(predictions) == 0 {
				ui.Info("No failure modes on record for %s", args[0])
				return nil
			}

			rows := make([][]string, 0, len(predictions))
			for _, p := range predictions {
				rows = append(rows, []string{
					p.Mode.ID,
					p.Mode.Name,
					string(p.Mode.Category),
					string(p.Mode.Severity),
					fmt.Sprintf("%.2f", p.Probability),
				})
			}
			ui.Table([]string{"ID", "Mode", "Category", "Severity", "Probability"}, rows)

			for _, p := range predictions {
				if len(p.Factors) == 0 {
					continue
				}
				fmt.Println()
				ui.KeyValue(p.Mode.Name, "")
				for _, f := range p.Factors {
					ui.Bullet("%s", f)
				}
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&tempF, "temp", 0, "site temperature in Fahrenheit")
	cmd.Flags().StringVar(&moisture, "moisture", "", "site moisture state (dry, damp, wet, submerged)")
	cmd.Flags().StringVar(&uv, "uv", "", "UV exposure (none, partial, full)")

	return cmd
}

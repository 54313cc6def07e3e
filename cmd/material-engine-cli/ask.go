package main

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/buildfacts/material-engine/internal/catalog"
	"github.com/buildfacts/material-engine/internal/qa"
)

// newAskCmd creates the ask subcommand.
func newAskCmd() *cobra.Command {
	var (
		materials []string
		tempF     float64
		moisture  string
		uv        string
	)

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask an engineering question about catalog materials",
		Long: `Ask classifies the question, selects the relevant materials, and
generates a structured engineering answer with recommendations and warnings.

Site conditions can be supplied with --temp, --moisture, and --uv. Use
--materials to pin the answer to specific catalog IDs instead of letting
relevance scoring choose.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(30 * time.Second)
			defer cancel()

			question := args[0]

			rt, err := openRuntime(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			qctx := &qa.QuestionContext{
				MaterialIDs: materials,
				Moisture:    moisture,
				UVExposure:  uv,
			}
			if cmd.Flags().Changed("temp") {
				qctx.TemperatureF = catalog.Float64Ptr(tempF)
			}

			var spin *spinner.Spinner
			if !outputJSON && isTerminal() {
				spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
				spin.Suffix = " Answering..."
				spin.Writer = os.Stderr
				spin.Start()
			}

			answer, err := rt.Engine.Answer(ctx, question, qctx)

			if spin != nil {
				spin.Stop()
			}
			if err != nil {
				return fmt.Errorf("answer failed: %w", err)
			}

			if outputJSON {
				printJSON(answer)
				return nil
			}

			ui := NewUI(false)
			defer ui.Close()
			printAnswer(ui, answer)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&materials, "materials", nil, "catalog material IDs to answer about")
	cmd.Flags().Float64Var(&tempF, "temp", 0, "site temperature in Fahrenheit")
	cmd.Flags().StringVar(&moisture, "moisture", "", "site moisture state (dry, damp, wet, submerged)")
	cmd.Flags().StringVar(&uv, "uv", "", "UV exposure (none, partial, full)")

	return cmd
}

// printAnswer renders a structured answer for terminal output.
func printAnswer(ui *UI, answer qa.EngineeringAnswer) {
	ui.KeyValue("Intent", string(answer.Intent))
	ui.KeyValue("Confidence", fmt.Sprintf("%.2f", answer.Confidence))
	fmt.Println()
	fmt.Println(answer.Answer)
	if answer.Explanation != "" {
		fmt.Println()
		fmt.Println(answer.Explanation)
	}

	if len(answer.Warnings) > 0 {
		ui.Section("Warnings")
		for _, w := range answer.Warnings {
			ui.Warning("%s", w)
		}
	}

	if len(answer.Recommendations) > 0 {
		ui.Section("Recommendations")
		for _, r := range answer.Recommendations {
			ui.Bullet("%s", r)
		}
	}

	if len(answer.ConstraintViolations) > 0 {
		ui.Section("Constraint Violations")
		for _, v := range answer.ConstraintViolations {
			ui.Bullet("[%s] %s (%s)", v.Severity, v.Description, v.MaterialID)
		}
	}

	if len(answer.CompatibilityIssues) > 0 {
		ui.Section("Compatibility Issues")
		for _, issue := range answer.CompatibilityIssues {
			ui.Bullet("%s × %s: %s - %s", issue.MaterialName, issue.OtherType, issue.Status, issue.Reason)
		}
	}

	if len(answer.Sources) > 0 {
		ui.Section("Sources")
		for _, s := range answer.Sources {
			ui.Bullet("%s", s)
		}
	}
}

// newParseCmd creates the parse subcommand.
func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [question]",
		Short: "Show how a question is classified and what entities it yields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := qa.NewParser()
			parsed := parser.Parse(args[0])

			if outputJSON {
				printJSON(parsed)
				return nil
			}

			ui := NewUI(false)
			defer ui.Close()

			ui.KeyValue("Intent", string(parsed.Intent))
			ui.KeyValue("Confidence", fmt.Sprintf("%.2f", parsed.Confidence))
			ui.KeyValue("Keywords", parsed.Keywords)
			if len(parsed.Entities.Chemistries) > 0 {
				ui.KeyValue("Chemistries", parsed.Entities.Chemistries)
			}
			if len(parsed.Entities.Materials) > 0 {
				ui.KeyValue("Materials", parsed.Entities.Materials)
			}
			if len(parsed.Entities.Temperatures) > 0 {
				temps := make([]string, 0, len(parsed.Entities.Temperatures))
				for _, t := range parsed.Entities.Temperatures {
					temps = append(temps, fmt.Sprintf("%.1f%s", t.Value, t.Unit))
				}
				ui.KeyValue("Temperatures", temps)
			}
			if len(parsed.Entities.Conditions) > 0 {
				ui.KeyValue("Conditions", parsed.Entities.Conditions)
			}
			if len(parsed.Entities.Failures) > 0 {
				ui.KeyValue("Failures", parsed.Entities.Failures)
			}
			return nil
		},
	}

	return cmd
}

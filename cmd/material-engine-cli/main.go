// Package main provides the Material Engine CLI entrypoint.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/buildfacts/material-engine/internal/config"
	"github.com/buildfacts/material-engine/internal/observability"
	"github.com/buildfacts/material-engine/pkg/engine"
)

var (
	// Global flags
	cfgFile    string
	outputJSON bool
	verbose    bool

	// Configuration and logger
	cfg    *config.Config
	logger *observability.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "material-engine-cli",
	Short: "Material Engine CLI for catalog management and engineering Q&A",
	Long: `Material Engine CLI provides commands for querying the construction
materials catalog and its engineering knowledge.

Use this tool to:
- Ask engineering questions in natural language
- Inspect how a question is classified and parsed
- Check pairwise material compatibility
- Predict failure modes under site conditions
- List, inspect, and seed catalog materials

All commands support --json for automation.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logFormat := "console"
		if outputJSON {
			logFormat = "json"
		}

		level := cfg.Observability.LogLevel
		if !verbose {
			// CLI output stays clean unless asked otherwise
			level = "warn"
		}

		logger = observability.NewLogger(observability.LogConfig{
			Level:       level,
			Format:      logFormat,
			ServiceName: "material-engine-cli",
		})
		logger = logger.WithField("run_id", uuid.New().String())

		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default: uses env vars)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(newAskCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newCompatCmd())
	rootCmd.AddCommand(newPredictCmd())
	rootCmd.AddCommand(newMaterialsCmd())
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newVersionCmd creates the version subcommand.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			if outputJSON {
				printJSON(map[string]string{
					"version": "0.1.0",
					"go":      "1.23",
				})
				return
			}
			fmt.Println("material-engine-cli v0.1.0")
		},
	}
}

// openRuntime builds the catalog store, cache, and Q&A engine from the
// loaded configuration. Callers must Close the runtime.
func openRuntime(ctx context.Context) (*engine.Runtime, error) {
	rt, err := engine.Open(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open engine: %w", err)
	}
	return rt, nil
}

// commandContext returns a bounded context for a CLI invocation.
func commandContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

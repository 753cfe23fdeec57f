package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/launchdash/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "launchdash",
	Short: "Interactive dashboard for SpaceX launch records",
	Long: `launchdash serves an interactive dashboard over the SpaceX launch records
dataset: mission success by launch site and payload mass against outcome.

Configuration is read from LAUNCHDASH_* environment variables; flags override them.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

var (
	cfg        *app.Config
	sourceFlag string
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sourceFlag, "source", "", "Dataset source: CSV path, s3://bucket/key or libsql (overrides LAUNCHDASH_DATA_SOURCE)")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	if sourceFlag != "" {
		if err := os.Setenv(app.EnvPrefix+"_DATA_SOURCE", sourceFlag); err != nil {
			return err
		}
	}
	c, err := app.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg = c
	app.InitLogging(cfg)
	return nil
}

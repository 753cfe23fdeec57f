package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/launchdash/internal/analytics"
	"github.com/emiliopalmerini/launchdash/internal/app"
	"github.com/emiliopalmerini/launchdash/internal/logging"
	"github.com/emiliopalmerini/launchdash/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web dashboard",
	Long: `Load the launch dataset and start the web dashboard server.

Examples:
  launchdash serve                                   # Serve spacex_launch_dash.csv on :8050
  launchdash serve --addr :3000                      # Listen on port 3000
  launchdash serve --source s3://launch-data/launches.csv`,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (overrides LAUNCHDASH_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Cancel on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ds, err := app.LoadDataset(ctx, cfg)
	if err != nil {
		return err
	}

	exporter := app.NewMetricsExporter(ctx, cfg)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := exporter.Close(closeCtx); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to flush metrics: %v\n", err)
		}
	}()

	addr := cfg.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	svc := analytics.NewService(ds, exporter, logging.New("analytics"))
	server := web.NewServer(svc, addr, cfg.ShutdownTimeout)
	return server.Start(ctx)
}

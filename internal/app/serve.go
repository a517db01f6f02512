package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/greencloud/gcrs/internal/config"
	"github.com/greencloud/gcrs/internal/server"
)

var serveFlagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose scanning over a JSON HTTP API",
	Long: `Serve starts an HTTP server with scan endpoints:

  GET  /              service banner
  GET  /health        health check
  POST /scan          scan a repository, returning records and summary
  POST /scan/summary  scan and persist a summary file`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlagAddr, "addr", "", "Listen address (default: config server.addr)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	opts, err := scanOptions(cfg)
	if err != nil {
		return err
	}

	addr := serveFlagAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, opts.Tables, appVersion)
	return srv.ListenAndServe(ctx, addr)
}

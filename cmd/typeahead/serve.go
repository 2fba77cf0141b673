// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pdiddy/typeahead/internal/history"
	"github.com/pdiddy/typeahead/internal/server"
	"github.com/pdiddy/typeahead/internal/source"
	"github.com/pdiddy/typeahead/internal/suggest"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve suggestions and query history over HTTP",
	Long: `Serve runs the HTTP API: GET /suggest for lookups, POST /submit and
POST /select to record search activity, GET /recent for query history, and
GET /healthz. The candidate list is fetched on the first lookup and cached
for the life of the process.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	applySourceFlags(cmd, &cfg.Source)
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	store, err := history.NewStore(cfg.History)
	if err != nil {
		return err
	}
	defer store.Close()

	catalog := suggest.NewCatalog(source.FromConfig(cfg.Source), cfg.Match)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.New(catalog, store, cfg.Match).Run(ctx, cfg.Server)
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides config)")
	serveCmd.Flags().String("url", "", "candidate list URL (overrides config)")
	serveCmd.Flags().String("file", "", "candidate list file (overrides config)")
	serveCmd.Flags().String("format", "", "candidate list format: json or lines")

	rootCmd.AddCommand(serveCmd)
}

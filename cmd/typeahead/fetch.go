// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/typeahead/internal/source"
	"github.com/pdiddy/typeahead/internal/suggest"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the candidate list and report its size",
	Long: `Fetch forces one load of the candidate list and prints the candidate
count. A failed fetch is reported as zero candidates, matching what lookups
would see; it is not an error.`,
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	applySourceFlags(cmd, &cfg.Source)

	catalog := suggest.NewCatalog(source.FromConfig(cfg.Source), cfg.Match)
	n := catalog.Size(context.Background())
	fmt.Printf("%d candidates from %s source\n", n, catalog.SourceName())
	return nil
}

func init() {
	fetchCmd.Flags().String("url", "", "candidate list URL (overrides config)")
	fetchCmd.Flags().String("file", "", "candidate list file (overrides config)")
	fetchCmd.Flags().String("format", "", "candidate list format: json or lines")

	rootCmd.AddCommand(fetchCmd)
}

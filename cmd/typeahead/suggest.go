// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/typeahead/internal/history"
	"github.com/pdiddy/typeahead/internal/source"
	"github.com/pdiddy/typeahead/internal/suggest"
	"github.com/pdiddy/typeahead/pkg/types"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [term]",
	Short: "Look up suggestions for a partial search term",
	Long: `Suggest fetches the candidate list (once), filters it against the given
term, and prints matches in list order with their stable IDs. A fetch
failure yields an empty result set, not an error.

Use --save to write the lookup to a YAML file, or --from-file to reprint a
saved lookup without touching the source.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSuggest,
}

func runSuggest(cmd *cobra.Command, args []string) error {
	fromFile, _ := cmd.Flags().GetString("from-file")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if fromFile != "" {
		rf, err := suggest.ReadResultFile(fromFile)
		if err != nil {
			return err
		}
		return printSuggestions(rf.Results, jsonOutput)
	}

	if len(args) == 0 {
		return fmt.Errorf("term required: typeahead suggest <term>")
	}
	term := args[0]

	cfg := loadConfig()
	applySourceFlags(cmd, &cfg.Source)
	if mode, _ := cmd.Flags().GetString("mode"); mode != "" {
		cfg.Match.Mode = types.MatchMode(mode)
	}
	limit, _ := cmd.Flags().GetInt("limit")
	if limit == 0 {
		limit = cfg.Match.MaxResults
	}

	catalog := suggest.NewCatalog(source.FromConfig(cfg.Source), cfg.Match)
	results := catalog.Lookup(context.Background(), term, limit)

	if record, _ := cmd.Flags().GetBool("record"); record {
		store, err := history.NewStore(cfg.History)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.RecordQuery(context.Background(), term); err != nil {
			return err
		}
	}

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		params := suggest.LookupParams{Term: term, Limit: limit, Mode: cfg.Match.Mode}
		if err := suggest.WriteResultFile(savePath, params, catalog.SourceName(), results); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Saved lookup to", savePath)
	}

	return printSuggestions(results, jsonOutput)
}

func printSuggestions(results []types.Suggestion, jsonOutput bool) error {
	if jsonOutput {
		return suggest.FormatJSON(results, os.Stdout)
	}
	suggest.FormatTable(results, os.Stdout)
	return nil
}

// applySourceFlags lets one-shot invocations point at a different list
// without editing the config file.
func applySourceFlags(cmd *cobra.Command, cfg *types.SourceConfig) {
	if url, _ := cmd.Flags().GetString("url"); url != "" {
		cfg.URL = url
		cfg.File = ""
	}
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		cfg.File = file
	}
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		cfg.Format = types.SourceFormat(format)
	}
}

func init() {
	suggestCmd.Flags().Int("limit", 0, "maximum results (0 = config default)")
	suggestCmd.Flags().String("mode", "", "match mode: substring or prefix")
	suggestCmd.Flags().Bool("json", false, "output results as JSON")
	suggestCmd.Flags().Bool("record", false, "record the term in query history")
	suggestCmd.Flags().String("save", "", "write the lookup and results to a YAML file")
	suggestCmd.Flags().String("from-file", "", "reprint a saved lookup instead of querying")
	suggestCmd.Flags().String("url", "", "candidate list URL (overrides config)")
	suggestCmd.Flags().String("file", "", "candidate list file (overrides config)")
	suggestCmd.Flags().String("format", "", "candidate list format: json or lines")

	rootCmd.AddCommand(suggestCmd)
}

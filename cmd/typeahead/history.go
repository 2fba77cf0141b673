// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/typeahead/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect or clear recorded queries and selections",
}

var historyRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently submitted search terms",
	RunE:  runHistoryRecent,
}

func runHistoryRecent(cmd *cobra.Command, args []string) error {
	prefix, _ := cmd.Flags().GetString("prefix")
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	store, err := history.NewStore(loadConfig().History)
	if err != nil {
		return err
	}
	defer store.Close()

	recent, err := store.Recent(context.Background(), prefix, limit)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(recent)
	}

	if len(recent) == 0 {
		fmt.Println("No recorded queries.")
		return nil
	}
	fmt.Printf("%-30s  %-5s  %s\n", "Term", "Hits", "Last used")
	fmt.Println(strings.Repeat("-", 60))
	for _, q := range recent {
		fmt.Printf("%-30s  %-5d  %s\n", q.Term, q.Hits, q.LastUsed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

var historySelectionsCmd = &cobra.Command{
	Use:   "selections",
	Short: "List recently picked suggestions",
	RunE:  runHistorySelections,
}

func runHistorySelections(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := history.NewStore(loadConfig().History)
	if err != nil {
		return err
	}
	defer store.Close()

	selections, err := store.Selections(context.Background(), limit)
	if err != nil {
		return err
	}

	if len(selections) == 0 {
		fmt.Println("No recorded selections.")
		return nil
	}
	fmt.Printf("%-6s  %-30s  %-20s  %s\n", "ID", "Suggestion", "Term", "At")
	fmt.Println(strings.Repeat("-", 75))
	for _, sel := range selections {
		fmt.Printf("%-6d  %-30s  %-20s  %s\n",
			sel.SuggestionID, sel.Text, sel.Term, sel.At.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded queries and selections",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.NewStore(loadConfig().History)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Clear(context.Background()); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	},
}

func init() {
	historyRecentCmd.Flags().String("prefix", "", "only terms starting with this prefix")
	historyRecentCmd.Flags().Int("limit", 20, "maximum terms to list")
	historyRecentCmd.Flags().Bool("json", false, "output as JSON")

	historySelectionsCmd.Flags().Int("limit", 20, "maximum selections to list")

	historyCmd.AddCommand(historyRecentCmd)
	historyCmd.AddCommand(historySelectionsCmd)
	historyCmd.AddCommand(historyClearCmd)

	rootCmd.AddCommand(historyCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the typeahead CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/typeahead/internal/logger"
	"github.com/pdiddy/typeahead/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the typeahead CLI.
var rootCmd = &cobra.Command{
	Use:   "typeahead",
	Short: "Search-as-you-type suggestions backed by a remote candidate list",
	Long: `typeahead serves search suggestions drawn from a flat candidate list
fetched once from a remote endpoint and cached in memory. Lookups filter the
cached list case- and diacritic-insensitively, preserving list order.

Use suggest for one-shot lookups, serve for the HTTP API, fetch to warm the
cache, and history to inspect recorded queries and selections.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger.SetVerbose(verbose)

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./typeahead.yaml or ~/.config/typeahead/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("typeahead")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "typeahead"))
		}
	}

	viper.SetEnvPrefix("TYPEAHEAD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

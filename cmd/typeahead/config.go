// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/typeahead/pkg/types"
)

// loadConfig assembles the runtime configuration from viper (config file,
// environment) with project defaults. The source API token falls back to
// the .secrets/ directory when the config does not set one.
func loadConfig() types.Config {
	cfg := types.Config{
		Source: types.SourceConfig{
			URL:        viper.GetString("source.url"),
			File:       viper.GetString("source.file"),
			Format:     types.SourceFormat(viper.GetString("source.format")),
			APIToken:   viper.GetString("source.api_token"),
			MaxRetries: viper.GetInt("source.max_retries"),
		},
		Match: types.MatchConfig{
			Mode:       types.MatchMode(viper.GetString("match.mode")),
			MaxResults: viper.GetInt("match.max_results"),
		},
		History: types.HistoryConfig{
			Path:       viper.GetString("history.path"),
			MaxEntries: viper.GetInt("history.max_entries"),
		},
		Server: types.ServerConfig{
			Addr:          viper.GetString("server.addr"),
			ShutdownGrace: viper.GetDuration("server.shutdown_grace"),
		},
	}

	cfg.Source.Timeout = viper.GetDuration("source.timeout")
	if cfg.Source.Timeout <= 0 {
		cfg.Source.Timeout = 10 * time.Second
	}
	cfg.Source.UserAgent = viper.GetString("source.user_agent")
	if cfg.Source.UserAgent == "" {
		cfg.Source.UserAgent = "typeahead/" + version
	}
	if cfg.Source.APIToken == "" {
		cfg.Source.APIToken = loadedSecrets["source-api-token"]
	}
	if cfg.Match.Mode == "" {
		cfg.Match.Mode = types.MatchSubstring
	}
	if cfg.Match.MaxResults <= 0 {
		cfg.Match.MaxResults = 10
	}
	if cfg.History.Path == "" {
		cfg.History.Path = "typeahead.db"
	}
	if cfg.History.MaxEntries == 0 {
		cfg.History.MaxEntries = 200
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}

	return cfg
}

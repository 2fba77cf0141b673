// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "typeahead/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SourceFormat identifies how the candidate list payload is encoded.
type SourceFormat string

const (
	// FormatJSON expects a JSON array of strings.
	FormatJSON SourceFormat = "json"

	// FormatLines expects newline-delimited plain text, one candidate per line.
	FormatLines SourceFormat = "lines"
)

// SourceConfig holds settings for the candidate list source.
type SourceConfig struct {
	HTTPConfig `yaml:",inline"`

	// URL is the endpoint the candidate list is fetched from.
	URL string `json:"url" yaml:"url"`

	// File is a local path used instead of URL when set.
	File string `json:"file,omitempty" yaml:"file,omitempty"`

	// Format selects the payload encoding: json or lines.
	Format SourceFormat `json:"format" yaml:"format"`

	// APIToken is an optional bearer token sent with the fetch request.
	APIToken string `json:"api_token,omitempty" yaml:"api_token,omitempty"`

	// MaxRetries bounds retry attempts on transient HTTP statuses.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// MatchMode selects how lookup terms are matched against candidates.
type MatchMode string

const (
	// MatchSubstring matches the term anywhere in the candidate.
	MatchSubstring MatchMode = "substring"

	// MatchPrefix matches the term at the start of any word in the candidate.
	MatchPrefix MatchMode = "prefix"
)

// MatchConfig holds settings for the lookup stage.
type MatchConfig struct {
	// Mode selects substring or prefix matching (default substring).
	Mode MatchMode `json:"mode" yaml:"mode"`

	// MaxResults is the default result limit when the caller passes none.
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// HistoryConfig holds settings for the recent-query history store.
type HistoryConfig struct {
	// Path is the SQLite database file (default "typeahead.db").
	Path string `json:"path" yaml:"path"`

	// MaxEntries bounds how many recent queries are kept; older entries
	// are pruned on write. Zero keeps everything.
	MaxEntries int `json:"max_entries" yaml:"max_entries"`
}

// ServerConfig holds settings for the HTTP serving surface.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// ShutdownGrace bounds how long in-flight requests may finish on shutdown.
	ShutdownGrace time.Duration `json:"shutdown_grace" yaml:"shutdown_grace"`
}

// Config groups all component configurations.
type Config struct {
	Source  SourceConfig  `json:"source" yaml:"source"`
	Match   MatchConfig   `json:"match" yaml:"match"`
	History HistoryConfig `json:"history" yaml:"history"`
	Server  ServerConfig  `json:"server" yaml:"server"`
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pdiddy/typeahead/internal/httputil"
	"github.com/pdiddy/typeahead/pkg/types"
)

const defaultTimeout = 10 * time.Second

// HTTPSource fetches the candidate list with a blocking GET against a fixed
// URL. The endpoint returns the full list in one response; there is no
// paging and no query parameter.
type HTTPSource struct {
	Client *http.Client
	Config types.SourceConfig
}

// NewHTTPSource builds an HTTPSource with a timeout-bounded client.
func NewHTTPSource(cfg types.SourceConfig) *HTTPSource {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPSource{
		Client: &http.Client{Timeout: timeout},
		Config: cfg,
	}
}

// Name returns the source identifier.
func (s *HTTPSource) Name() string { return "http" }

// Fetch downloads and parses the candidate list. Transient statuses are
// retried; any other failure is returned to the caller (the catalog decides
// what to surface).
func (s *HTTPSource) Fetch(ctx context.Context) ([]string, error) {
	if s.Config.URL == "" {
		return nil, fmt.Errorf("no source URL configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Config.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if s.Config.UserAgent != "" {
		req.Header.Set("User-Agent", s.Config.UserAgent)
	}
	if s.Config.APIToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.Config.APIToken)
	}

	resp, err := httputil.DoWithRetry(ctx, s.Client, req, s.Config.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("fetching candidate list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("candidate list endpoint returned HTTP %d", resp.StatusCode)
	}

	return decode(resp.Body, s.Config.Format)
}

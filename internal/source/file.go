// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"fmt"
	"os"

	"github.com/pdiddy/typeahead/pkg/types"
)

// FileSource reads the candidate list from a local file in the same formats
// the HTTP source accepts. Operators use it to pin a list without a network
// dependency.
type FileSource struct {
	Path   string
	Format types.SourceFormat
}

// Name returns the source identifier.
func (s *FileSource) Name() string { return "file" }

// Fetch reads and parses the candidate list file.
func (s *FileSource) Fetch(ctx context.Context) ([]string, error) {
	if s.Path == "" {
		return nil, fmt.Errorf("no source file configured")
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("opening candidate list file: %w", err)
	}
	defer f.Close()

	return decode(f, s.Format)
}

// FromConfig selects the configured source: a file path wins over a URL.
func FromConfig(cfg types.SourceConfig) Source {
	if cfg.File != "" {
		return &FileSource{Path: cfg.File, Format: cfg.Format}
	}
	return NewHTTPSource(cfg)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source delivers the flat candidate list the suggestion catalog is
// built from. Each source (HTTP endpoint, local file) implements the Source
// interface per the Strategy pattern.
package source

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/typeahead/pkg/types"
)

// Source fetches the candidate list once. Implementations return the
// candidates in source order; the position of a candidate becomes its
// stable suggestion ID.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]string, error)
}

// decode parses a candidate list payload in the configured format. Blank
// entries are dropped; order is preserved.
func decode(r io.Reader, format types.SourceFormat) ([]string, error) {
	switch format {
	case types.FormatLines:
		return decodeLines(r)
	case types.FormatJSON, "":
		return decodeJSON(r)
	default:
		return nil, fmt.Errorf("unsupported source format %q: use json or lines", format)
	}
}

// decodeJSON parses a JSON array of strings (`["Santos", "São Paulo", ...]`).
func decodeJSON(r io.Reader) ([]string, error) {
	var raw []string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing candidate list: %w", err)
	}

	candidates := make([]string, 0, len(raw))
	for _, c := range raw {
		if s := strings.TrimSpace(c); s != "" {
			candidates = append(candidates, s)
		}
	}
	return candidates, nil
}

// decodeLines parses newline-delimited plain text, one candidate per line.
func decodeLines(r io.Reader) ([]string, error) {
	var candidates []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if s := strings.TrimSpace(scanner.Text()); s != "" {
			candidates = append(candidates, s)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading candidate list: %w", err)
	}
	return candidates, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package suggest

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/typeahead/pkg/types"
)

// FormatTable writes suggestions as a human-readable table to w.
func FormatTable(results []types.Suggestion, w io.Writer) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No suggestions.")
		return
	}

	fmt.Fprintf(w, "%-6s  %s\n", "ID", "Suggestion")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	for _, s := range results {
		fmt.Fprintf(w, "%-6d  %s\n", s.ID, s.Text)
	}
	fmt.Fprintf(w, "\n%d suggestions\n", len(results))
}

// FormatJSON writes suggestions as indented JSON to w.
func FormatJSON(results []types.Suggestion, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

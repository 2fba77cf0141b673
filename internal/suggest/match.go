// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package suggest

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold normalizes a string for matching: NFD decomposition, combining marks
// stripped, then upper-cased. Folding both sides makes lookups insensitive
// to case and diacritics, so "sa" matches "São Paulo".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		// Fold is best-effort; an untransformable string still matches itself.
		folded = s
	}
	return strings.ToUpper(folded)
}

// wordStarts returns every word-start suffix of a folded candidate, so a
// prefix query can match any word ("PAU" finds "SAO PAULO").
func wordStarts(folded string) []string {
	fields := strings.Fields(folded)
	starts := make([]string, 0, len(fields))
	for i := range fields {
		starts = append(starts, strings.Join(fields[i:], " "))
	}
	return starts
}

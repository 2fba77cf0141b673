// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the typeahead service.
package types

import "time"

// Suggestion is one candidate matched against a lookup term. The ID is the
// candidate's position in the source list; it is stable for the life of the
// process and doubles as a row key and as selection-routing data.
type Suggestion struct {
	// ID is the zero-based position of the candidate in the source list.
	ID int64 `json:"id" yaml:"id"`

	// Text is the candidate string exactly as the source delivered it.
	Text string `json:"text" yaml:"text"`
}

// RecentQuery is a previously submitted search term kept in the history
// store, most recent first.
type RecentQuery struct {
	// Term is the submitted search text.
	Term string `json:"term" yaml:"term"`

	// Hits counts how many times the term was submitted.
	Hits int `json:"hits" yaml:"hits"`

	// LastUsed is the time of the most recent submission.
	LastUsed time.Time `json:"last_used" yaml:"last_used"`
}

// Selection records that the user picked one suggestion for a term.
type Selection struct {
	// SuggestionID is the picked candidate's position in the source list.
	SuggestionID int64 `json:"suggestion_id" yaml:"suggestion_id"`

	// Text is the picked candidate's text.
	Text string `json:"text" yaml:"text"`

	// Term is the partial search text that produced the suggestion.
	Term string `json:"term" yaml:"term"`

	// At is the time of the selection.
	At time.Time `json:"at" yaml:"at"`
}

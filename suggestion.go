// Copyright (c) 2026 The symdelete Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symdelete

import "strings"

// Suggestion is a single spelling correction candidate: the corrected term,
// its edit distance from the input, and its frequency in the dictionary.
type Suggestion struct {
	Term     string
	Distance int
	Count    int
}

// Equal reports whether two suggestions name the same term. Distance and
// Count are ignored, matching the "equality and hash by term only" rule
// used to merge candidates during lookup.
func (s Suggestion) Equal(other Suggestion) bool {
	return s.Term == other.Term
}

// SuggestionList is a slice of Suggestion with the default total order:
// distance ascending, then count descending.
type SuggestionList []Suggestion

func (s SuggestionList) Len() int      { return len(s) }
func (s SuggestionList) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s SuggestionList) Less(i, j int) bool {
	if s[i].Distance != s[j].Distance {
		return s[i].Distance < s[j].Distance
	}
	return s[i].Count > s[j].Count
}

// Terms returns the Term field of every suggestion, in order.
func (s SuggestionList) Terms() []string {
	terms := make([]string, 0, len(s))
	for _, suggestion := range s {
		terms = append(terms, suggestion.Term)
	}
	return terms
}

// String renders the list as "[term1, term2, ...]".
func (s SuggestionList) String() string {
	return "[" + strings.Join(s.Terms(), ", ") + "]"
}

// Copyright (c) 2026 The symdelete Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symdelete

import "strings"

type lookupParams struct {
	maxEditDistance    int
	maxEditDistanceSet bool
	includeUnknown     bool
	ignoreToken        string
	hasIgnoreToken     bool
	transferCasing     bool
}

// LookupOption configures a single Lookup call.
type LookupOption func(*lookupParams)

// WithMaxEditDistance caps this lookup's edit distance below the engine's
// MaxDictionaryEditDistance. It is an error for it to exceed that bound.
func WithMaxEditDistance(d int) LookupOption {
	return func(p *lookupParams) {
		p.maxEditDistance = d
		p.maxEditDistanceSet = true
	}
}

// WithIncludeUnknown makes Lookup synthesize a placeholder suggestion
// (phrase itself, at distance maxEditDistance+1, count 0) when no real
// suggestion is found.
func WithIncludeUnknown() LookupOption {
	return func(p *lookupParams) { p.includeUnknown = true }
}

// WithIgnoreToken makes Lookup treat phrase as correct - with a synthetic
// (phrase, 0, 1) suggestion - when it matches token exactly. The check runs
// after the length short-circuit, so a phrase longer than the longest
// dictionary term plus the max edit distance still gets no suggestion. For
// Top and Closest the lookup stops there without consulting the dictionary;
// All goes on to the exact-match and candidate steps as usual.
func WithIgnoreToken(token string) LookupOption {
	return func(p *lookupParams) {
		p.ignoreToken = token
		p.hasIgnoreToken = true
	}
}

// WithTransferCasing performs the lookup on the lowercased phrase and
// reapplies the original casing to every surviving suggestion's term after
// ranking.
func WithTransferCasing() LookupOption {
	return func(p *lookupParams) { p.transferCasing = true }
}

// Lookup returns spelling suggestions for phrase. See spec.md §4.4 for the
// full branch order this implements.
func (s *Speller) Lookup(phrase string, verbosity Verbosity, opts ...LookupOption) (SuggestionList, error) {
	params := lookupParams{maxEditDistance: s.opts.MaxDictionaryEditDistance}
	for _, opt := range opts {
		opt(&params)
	}
	if params.maxEditDistanceSet && params.maxEditDistance > s.opts.MaxDictionaryEditDistance {
		return nil, invalidArgument(
			"max edit distance %d exceeds the engine's max dictionary edit distance %d",
			params.maxEditDistance, s.opts.MaxDictionaryEditDistance)
	}
	maxEditDistance := params.maxEditDistance

	original := phrase
	if params.transferCasing {
		phrase = strings.ToLower(phrase)
	}

	suggestions := s.lookupCore(phrase, verbosity, maxEditDistance, params)

	if params.includeUnknown && len(suggestions) == 0 {
		suggestions = append(suggestions, Suggestion{Term: phrase, Distance: maxEditDistance + 1, Count: 0})
	}

	suggestions = s.ranker.rank(phrase, suggestions, verbosity)

	if params.transferCasing {
		cased := make(SuggestionList, len(suggestions))
		for i, suggestion := range suggestions {
			cased[i] = suggestion
			cased[i].Term = transferCasing(original, suggestion.Term)
		}
		suggestions = cased
	}

	return suggestions, nil
}

// lookupCore runs steps 1-5 of spec.md §4.4 (everything up to, but not
// including, finalize) and returns the raw, unranked suggestion list.
func (s *Speller) lookupCore(phrase string, verbosity Verbosity, maxEditDistance int, params lookupParams) SuggestionList {
	var suggestions SuggestionList

	phraseLen := len([]rune(phrase))

	// Step 1: short-circuit by length.
	if phraseLen-maxEditDistance > s.dict.longestTerm() {
		return suggestions
	}

	// Step 2: ignore-token.
	if params.hasIgnoreToken && params.ignoreToken == phrase {
		suggestions = append(suggestions, Suggestion{Term: phrase, Distance: 0, Count: 1})
		if verbosity != All {
			return suggestions
		}
	}

	// Step 3: exact match.
	if count, ok := s.dict.count(phrase); ok {
		suggestions = append(suggestions, Suggestion{Term: phrase, Distance: 0, Count: count})
		if verbosity != All {
			return suggestions
		}
	}

	// Step 4: zero-distance mode.
	if maxEditDistance == 0 {
		return suggestions
	}

	// Step 5: candidate enumeration.
	prefixLength := s.opts.PrefixLength
	consideredCandidates := make(map[string]struct{})
	consideredSuggestions := make(map[string]struct{})
	consideredSuggestions[phrase] = struct{}{}

	phrasePrefixLen := phraseLen
	var candidates []string
	if phrasePrefixLen > prefixLength {
		phrasePrefixLen = prefixLength
		candidates = append(candidates, string([]rune(phrase)[:phrasePrefixLen]))
	} else {
		candidates = append(candidates, phrase)
	}

	maxEditDistance2 := maxEditDistance

	for ci := 0; ci < len(candidates); ci++ {
		candidate := candidates[ci]
		candidateLen := len([]rune(candidate))
		lengthDiff := phrasePrefixLen - candidateLen

		// Prune A.
		if lengthDiff > maxEditDistance2 {
			if verbosity == All {
				continue
			}
			break
		}

		if bucket, found := s.index.lookup(stringHash(candidate)); found {
			for _, suggestionTerm := range bucket {
				suggestionLen := len([]rune(suggestionTerm))
				if suggestionTerm == phrase {
					continue
				}
				if abs(suggestionLen-phraseLen) > maxEditDistance2 ||
					suggestionLen < candidateLen ||
					(suggestionLen == candidateLen && suggestionTerm != candidate) {
					continue
				}
				suggPrefixLen := min(suggestionLen, prefixLength)
				if suggPrefixLen > phrasePrefixLen && (suggPrefixLen-candidateLen) > maxEditDistance2 {
					continue
				}

				var distance int
				switch {
				case candidateLen == 0:
					distance = max(phraseLen, suggestionLen)
					if distance > maxEditDistance2 || !addOnce(consideredSuggestions, suggestionTerm) {
						continue
					}
				case suggestionLen == 1:
					if strings.ContainsRune(phrase, []rune(suggestionTerm)[0]) {
						distance = phraseLen - 1
					} else {
						distance = phraseLen
					}
					if distance > maxEditDistance2 || !addOnce(consideredSuggestions, suggestionTerm) {
						continue
					}
				default:
					if !addOnce(consideredSuggestions, suggestionTerm) {
						continue
					}
					distance = s.distanceFunc(phrase, suggestionTerm, maxEditDistance2)
					if distance < 0 {
						continue
					}
				}

				if distance > maxEditDistance2 {
					continue
				}

				count, _ := s.dict.count(suggestionTerm)
				candidateSuggestion := Suggestion{Term: suggestionTerm, Distance: distance, Count: count}

				switch verbosity {
				case Top:
					if len(suggestions) > 0 {
						if distance < maxEditDistance2 || count > suggestions[0].Count {
							maxEditDistance2 = distance
							suggestions[0] = candidateSuggestion
						}
						continue
					}
					maxEditDistance2 = distance
					suggestions = append(suggestions, candidateSuggestion)
				case Closest:
					if len(suggestions) > 0 && distance < maxEditDistance2 {
						suggestions = suggestions[:0]
					}
					maxEditDistance2 = distance
					suggestions = append(suggestions, candidateSuggestion)
				case All:
					suggestions = append(suggestions, candidateSuggestion)
				}
			}
		}

		// Expand candidate: enqueue its one-character deletes.
		if lengthDiff < maxEditDistance && candidateLen <= prefixLength {
			if verbosity != All && lengthDiff >= maxEditDistance2 {
				continue
			}
			candidateRunes := []rune(candidate)
			for i := range candidateRunes {
				deleted := string(candidateRunes[:i]) + string(candidateRunes[i+1:])
				if _, seen := consideredCandidates[deleted]; !seen {
					consideredCandidates[deleted] = struct{}{}
					candidates = append(candidates, deleted)
				}
			}
		}
	}

	return suggestions
}

func addOnce(set map[string]struct{}, key string) bool {
	if _, exists := set[key]; exists {
		return false
	}
	set[key] = struct{}{}
	return true
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Copyright (c) 2026 The symdelete Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symdelete

import (
	"math"
	"strings"
)

// LookupCompound corrects a whitespace-separated phrase token by token,
// sliding a two-token window that also considers combining adjacent tokens
// and splitting a single token, and returns exactly one aggregate
// Suggestion.
func (s *Speller) LookupCompound(phrase string, maxEditDistance int) (SuggestionList, error) {
	tokens := strings.Fields(phrase)
	n := float64(s.dict.corpusSize())

	var parts SuggestionList
	lastCombined := false

	for i, token := range tokens {
		best, err := s.Lookup(token, Top, WithMaxEditDistance(maxEditDistance))
		if err != nil {
			return nil, err
		}

		if i > 0 && !lastCombined {
			combinedTerm := tokens[i-1] + token
			combined, err := s.Lookup(combinedTerm, Top, WithMaxEditDistance(maxEditDistance))
			if err != nil {
				return nil, err
			}
			if len(combined) > 0 {
				prior := parts[len(parts)-1]
				current := fallbackSuggestion(best, token, maxEditDistance)

				splitDistance := prior.Distance + current.Distance
				splitLogProb := logProb(prior.Count, n) + logProb(current.Count, n)
				combinedLogProb := logProb(combined[0].Count, n)

				if combined[0].Distance+1 < splitDistance ||
					(combined[0].Distance+1 == splitDistance && combinedLogProb > splitLogProb) {
					merged := combined[0]
					merged.Distance++
					parts[len(parts)-1] = merged
					lastCombined = true
					continue
				}
			}
		}
		lastCombined = false

		if len(best) > 0 && (best[0].Distance == 0 || len([]rune(token)) == 1) {
			parts = append(parts, best[0])
			continue
		}

		parts = append(parts, s.bestSplit(token, best, maxEditDistance, n))
	}

	aggregateTerm := strings.Join(parts.Terms(), " ")
	aggregateCount := aggregateCount(parts, n)
	aggregateDistance := s.distanceFunc(phrase, aggregateTerm, math.MaxInt32)
	if aggregateDistance < 0 {
		aggregateDistance = osaDistance(phrase, aggregateTerm, math.MaxInt32)
	}

	result := SuggestionList{{Term: aggregateTerm, Distance: aggregateDistance, Count: aggregateCount}}
	return s.ranker.rank(phrase, result, Top), nil
}

// bestSplit finds the best two-way split of token, scoring each split
// candidate by its Naive-Bayes log-probability and preferring lower total
// edit distance, falling back to the original term's own best correction
// (or the unknown-word estimate) if no split beats it.
func (s *Speller) bestSplit(token string, original SuggestionList, maxEditDistance int, n float64) Suggestion {
	best := fallbackSuggestion(original, token, maxEditDistance)

	runes := []rune(token)
	for j := 1; j < len(runes); j++ {
		left, right := string(runes[:j]), string(runes[j:])

		leftBest, _ := s.Lookup(left, Top, WithMaxEditDistance(maxEditDistance))
		if len(leftBest) == 0 {
			continue
		}
		rightBest, _ := s.Lookup(right, Top, WithMaxEditDistance(maxEditDistance))
		if len(rightBest) == 0 {
			continue
		}

		splitTerm := leftBest[0].Term + " " + rightBest[0].Term
		splitDistance := s.distanceFunc(token, splitTerm, maxEditDistance)
		if splitDistance < 0 {
			splitDistance = maxEditDistance + 1
		}
		splitLogProb := logProb(leftBest[0].Count, n) + logProb(rightBest[0].Count, n)

		candidate := Suggestion{
			Term:     splitTerm,
			Distance: splitDistance,
			Count:    naiveBayesCount(leftBest[0].Count, rightBest[0].Count, n),
		}

		bestLogProb := logProb(best.Count, n)
		if splitDistance < best.Distance || (splitDistance == best.Distance && splitLogProb > bestLogProb) {
			best = candidate
		}
	}

	return best
}

// fallbackSuggestion returns original's best correction, or an
// unknown-word estimate (distance = maxEditDistance+1, the SymSpell
// convention for an out-of-vocabulary term) if there is none.
func fallbackSuggestion(original SuggestionList, token string, maxEditDistance int) Suggestion {
	if len(original) > 0 {
		return original[0]
	}
	return Suggestion{
		Term:     token,
		Distance: maxEditDistance + 1,
		Count:    int(10 / math.Pow(10, float64(len([]rune(token))))),
	}
}

// logProb returns log10(count/n), the per-token term of the Naive-Bayes
// score. A zero count is scored as log10(1/(n*10^10)), a floor well below
// any counted term's probability, rather than -Inf, so a missing term
// doesn't poison a whole comparison.
func logProb(count int, n float64) float64 {
	if count <= 0 || n <= 0 {
		return math.Log10(1 / (n * 1e10))
	}
	return math.Log10(float64(count) / n)
}

// naiveBayesCount estimates a combined term's occurrence count as
// n * P(A) * P(B), the Naive-Bayes independence assumption P(AB)=P(A)P(B).
func naiveBayesCount(countA, countB int, n float64) int {
	estimate := n * (float64(countA) / n) * (float64(countB) / n)
	if estimate < 0 {
		estimate = 0
	}
	return int(estimate)
}

// aggregateCount multiplies the corpus size by the product of each part's
// relative frequency, per spec.md §4.6's count(AB...) = N·∏(count_k/N).
func aggregateCount(parts SuggestionList, n float64) int {
	if n <= 0 {
		return 0
	}
	product := n
	for _, part := range parts {
		product *= float64(part.Count) / n
	}
	if product < 0 {
		product = 0
	}
	return int(product)
}

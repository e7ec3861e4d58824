// Copyright (c) 2026 The symdelete Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symdelete

import "github.com/eskriett/strmet"

// distanceFunc computes the edit distance between two strings, returning -1
// if the true distance exceeds maxDistance. Implementations must be pure,
// deterministic and symmetric in their two string arguments.
type distanceFunc func(a, b string, maxDistance int) int

// pickDistanceFunc chooses the default distance comparer for an engine
// configured with the given maximum dictionary edit distance: optimal
// string alignment for the common case, true Damerau-Levenshtein (which
// allows unrestricted transpositions) once the dictionary is built for
// distances beyond what OSA's adjacent-transposition restriction models
// well.
func pickDistanceFunc(maxDictionaryEditDistance int) distanceFunc {
	if maxDictionaryEditDistance <= 2 {
		return osaDistance
	}
	return strmet.DamerauLevenshtein
}

// osaComparer holds the cost-row buffers for a single osaDistance call.
// Each call gets its own comparer, so concurrent lookups never share
// buffers.
type osaComparer struct {
	char1Costs     []int
	prevChar1Costs []int
}

// osaDistance computes the optimal-string-alignment variant of
// Damerau-Levenshtein distance: insertions, deletions, substitutions, and
// transposition of two adjacent characters with no further edits on the
// transposed pair. It returns -1 if the distance exceeds maxDistance.
func osaDistance(a, b string, maxDistance int) int {
	return (&osaComparer{}).distance(a, b, maxDistance)
}

func (d *osaComparer) distance(s1, s2 string, maxDistance int) int {
	if s1 == "" || s2 == "" {
		return nullDistance(s1, s2, maxDistance)
	}
	if maxDistance <= 0 {
		if s1 == s2 {
			return 0
		}
		return -1
	}

	r1 := []rune(s1)
	r2 := []rune(s2)

	if len(r1) > len(r2) {
		r1, r2 = r2, r1
	}
	if len(r2)-len(r1) > maxDistance {
		return -1
	}

	len1, len2, start := commonPrefixSuffix(r1, r2)
	if len1 == 0 {
		if len2 <= maxDistance {
			return len2
		}
		return -1
	}

	if len2 > len(d.char1Costs) {
		d.char1Costs = make([]int, len2)
		d.prevChar1Costs = make([]int, len2)
	}

	if maxDistance < len2 {
		return osaDistanceBounded(r1, r2, len1, len2, start, maxDistance, d.char1Costs, d.prevChar1Costs)
	}
	return osaDistanceFull(r1, r2, len1, len2, start, d.char1Costs, d.prevChar1Costs)
}

func osaDistanceFull(r1, r2 []rune, len1, len2, start int, char1Costs, prevChar1Costs []int) int {
	for j := 0; j < len2; j++ {
		char1Costs[j] = j + 1
	}

	var char1, prevChar1 rune
	var currentCost int
	for i := 0; i < len1; i++ {
		prevChar1 = char1
		char1 = r1[start+i]

		var char2, prevChar2 rune
		leftCharCost := i
		aboveCharCost := i
		nextTransCost := 0

		for j := 0; j < len2; j++ {
			thisTransCost := nextTransCost
			nextTransCost = prevChar1Costs[j]
			prevChar1Costs[j] = leftCharCost
			currentCost = leftCharCost
			leftCharCost = char1Costs[j]
			prevChar2 = char2
			char2 = r2[start+j]

			if char1 != char2 {
				if aboveCharCost < currentCost {
					currentCost = aboveCharCost
				}
				if leftCharCost < currentCost {
					currentCost = leftCharCost
				}
				currentCost++
				if i != 0 && j != 0 && char1 == prevChar2 && prevChar1 == char2 && thisTransCost+1 < currentCost {
					currentCost = thisTransCost + 1
				}
			}
			char1Costs[j] = currentCost
			aboveCharCost = currentCost
		}
	}
	return currentCost
}

func osaDistanceBounded(r1, r2 []rune, len1, len2, start, maxDistance int, char1Costs, prevChar1Costs []int) int {
	for j := 0; j < maxDistance; j++ {
		char1Costs[j] = j + 1
	}
	for j := maxDistance; j < len2; j++ {
		char1Costs[j] = maxDistance + 1
	}

	lenDiff := len2 - len1
	jStartOffset := maxDistance - lenDiff
	jStart := 0
	jEnd := maxDistance

	var char1, prevChar1 rune
	var currentCost int
	for i := 0; i < len1; i++ {
		prevChar1 = char1
		char1 = r1[start+i]

		var char2, prevChar2 rune
		leftCharCost := i
		aboveCharCost := i
		nextTransCost := 0

		if i > jStartOffset {
			jStart++
		}
		if jEnd < len2 {
			jEnd++
		}

		for j := jStart; j < jEnd; j++ {
			thisTransCost := nextTransCost
			nextTransCost = prevChar1Costs[j]
			prevChar1Costs[j] = leftCharCost
			currentCost = leftCharCost
			leftCharCost = char1Costs[j]
			prevChar2 = char2
			char2 = r2[start+j]

			if char1 != char2 {
				if aboveCharCost < currentCost {
					currentCost = aboveCharCost
				}
				if leftCharCost < currentCost {
					currentCost = leftCharCost
				}
				currentCost++
				if i != 0 && j != 0 && char1 == prevChar2 && prevChar1 == char2 && thisTransCost+1 < currentCost {
					currentCost = thisTransCost + 1
				}
			}
			char1Costs[j] = currentCost
			aboveCharCost = currentCost
		}

		if char1Costs[i+lenDiff] > maxDistance {
			return -1
		}
	}

	if currentCost <= maxDistance {
		return currentCost
	}
	return -1
}

func nullDistance(s1, s2 string, maxDistance int) int {
	if s1 == s2 {
		return 0
	}
	n1 := len([]rune(s1))
	n2 := len([]rune(s2))
	distance := n1
	if n2 > n1 {
		distance = n2
	}
	if distance > maxDistance {
		return -1
	}
	return distance
}

// commonPrefixSuffix strips the common leading and trailing runs between two
// rune slices, returning the remaining lengths to compare and the offset at
// which they start.
func commonPrefixSuffix(r1, r2 []rune) (len1, len2, start int) {
	len1 = len(r1)
	len2 = len(r2)

	for start < len1 && start < len2 && r1[start] == r2[start] {
		start++
	}
	len1 -= start
	len2 -= start

	for len1 > 0 && len2 > 0 && r1[start+len1-1] == r2[start+len2-1] {
		len1--
		len2--
	}
	return len1, len2, start
}

// Copyright (c) 2026 The symdelete Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symdelete

import (
	"math"
	"strings"
	"unicode"
)

type segmentParams struct {
	maxEditDistance        int
	maxEditDistanceSet     bool
	maxSegmentationWordLen int
}

// SegmentOption configures a single WordSegmentation call.
type SegmentOption func(*segmentParams)

// WithSegmentMaxEditDistance caps the edit distance used for each
// per-position dictionary lookup during segmentation.
func WithSegmentMaxEditDistance(d int) SegmentOption {
	return func(p *segmentParams) {
		p.maxEditDistance = d
		p.maxEditDistanceSet = true
	}
}

// WithMaxSegmentationWordLength caps how long a single segmented word may
// be; it defaults to the dictionary's longest known term.
func WithMaxSegmentationWordLength(n int) SegmentOption {
	return func(p *segmentParams) { p.maxSegmentationWordLen = n }
}

// Composition is the result of WordSegmentation.
type Composition struct {
	SegmentedString string
	CorrectedString string
	DistanceSum     int
	LogProbSum      float64
}

// WordSegmentation recovers word boundaries in unsegmented text via a
// triangular dynamic program over dictionary lookups. It does not itself
// call the ranker dispatch - the inner Lookup calls already do.
func (s *Speller) WordSegmentation(phrase string, opts ...SegmentOption) (*Composition, error) {
	params := segmentParams{maxEditDistance: s.opts.MaxDictionaryEditDistance}
	for _, opt := range opts {
		opt(&params)
	}
	if params.maxEditDistanceSet && params.maxEditDistance > s.opts.MaxDictionaryEditDistance {
		return nil, invalidArgument(
			"max edit distance %d exceeds the engine's max dictionary edit distance %d",
			params.maxEditDistance, s.opts.MaxDictionaryEditDistance)
	}

	longest := params.maxSegmentationWordLen
	if longest == 0 {
		longest = s.dict.longestTerm()
	}

	runes := []rune(phrase)
	phraseLen := len(runes)
	n := float64(s.dict.corpusSize())

	arraySize := min(phraseLen, longest)
	if arraySize == 0 {
		return &Composition{}, nil
	}

	compositions := make([]Composition, arraySize)
	circularIdx := -1

	for i := 0; i < phraseLen; i++ {
		jMax := min(phraseLen-i, longest)

		for j := 1; j <= jMax; j++ {
			part := string(runes[i : i+j])

			separatorLength := 0
			if unicode.IsSpace(runes[i]) {
				part = string(runes[i+1 : i+j])
			} else {
				separatorLength = 1
			}

			partRuneLen := len([]rune(part))
			part = strings.ReplaceAll(part, " ", "")
			topEd := partRuneLen - len([]rune(part))

			topResult, err := s.Lookup(strings.ToLower(part), Top, withSegmentDistance(params)...)
			if err != nil {
				return nil, err
			}

			var topWord string
			var topLogProb float64
			if len(topResult) > 0 {
				topWord = topResult[0].Term
				topEd += topResult[0].Distance
				topLogProb = math.Log10(float64(topResult[0].Count) / n)
			} else {
				topWord = part
				topEd += len([]rune(part))
				topLogProb = math.Log10(1.0 / (n * math.Pow(10.0, float64(len([]rune(part))))))
			}

			destIdx := mod(j+circularIdx, arraySize)

			switch {
			case i == 0:
				compositions[destIdx] = Composition{
					SegmentedString: part,
					CorrectedString: topWord,
					DistanceSum:     topEd,
					LogProbSum:      topLogProb,
				}
			case j == longest ||
				isBetterComposition(compositions[circularIdx], compositions[destIdx], topEd, separatorLength, topLogProb):
				compositions[destIdx] = Composition{
					SegmentedString: compositions[circularIdx].SegmentedString + " " + part,
					CorrectedString: compositions[circularIdx].CorrectedString + " " + topWord,
					DistanceSum:     compositions[circularIdx].DistanceSum + separatorLength + topEd,
					LogProbSum:      compositions[circularIdx].LogProbSum + topLogProb,
				}
			}
		}

		circularIdx++
		if circularIdx == arraySize {
			circularIdx = 0
		}
	}

	result := compositions[mod(phraseLen-1, arraySize)]
	return &result, nil
}

func withSegmentDistance(p segmentParams) []LookupOption {
	return []LookupOption{WithMaxEditDistance(p.maxEditDistance)}
}

// isBetterComposition decides whether extending prev by a part with cost
// (ed, separatorLength, logProb) improves the composition currently stored
// at dest: lower total distance wins outright; a tie on distance is broken
// by higher cumulative log-probability.
func isBetterComposition(prev, dest Composition, ed, separatorLength int, logProb float64) bool {
	candidateDistance := prev.DistanceSum + separatorLength + ed
	if candidateDistance < dest.DistanceSum {
		return true
	}
	candidateDistanceNoSep := prev.DistanceSum + ed
	if candidateDistanceNoSep == dest.DistanceSum || candidateDistance == dest.DistanceSum {
		return dest.LogProbSum < prev.LogProbSum+logProb
	}
	return false
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

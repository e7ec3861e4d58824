// Copyright (c) 2026 The symdelete Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symdelete

import (
	"strings"
	"unicode"

	"github.com/eskriett/confusables"
)

// normalizeTerm applies the dictionary store's key normalization: lowercase
// plus leading/trailing whitespace trimming, per the data model. When fold
// is true the normalized term is additionally passed through a
// confusable-skeleton transform so that visually-confusable spellings
// collapse onto the same dictionary entry.
func normalizeTerm(term string, fold bool) string {
	normalized := strings.ToLower(strings.TrimSpace(term))
	if fold {
		normalized = confusables.Skeleton(normalized)
	}
	return normalized
}

// transferCasing reapplies the casing pattern observed in original onto
// corrected, word by word. If a word in original is fully uppercase, the
// matching word in corrected is uppercased; if it is title-cased, the
// matching word is title-cased; otherwise corrected's own casing is left
// untouched.
func transferCasing(original, corrected string) string {
	originalWords := strings.Fields(original)
	correctedWords := strings.Fields(corrected)

	for i := range correctedWords {
		if i >= len(originalWords) {
			break
		}
		correctedWords[i] = transferWordCasing(originalWords[i], correctedWords[i])
	}
	return strings.Join(correctedWords, " ")
}

func transferWordCasing(original, corrected string) string {
	switch {
	case isAllUpper(original):
		return strings.ToUpper(corrected)
	case isTitleCase(original):
		return titleCase(corrected)
	default:
		return corrected
	}
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func isTitleCase(s string) bool {
	runes := []rune(s)
	if len(runes) == 0 {
		return false
	}
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func titleCase(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

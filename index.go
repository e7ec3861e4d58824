// Copyright (c) 2026 The symdelete Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symdelete

import "sync"

// deleteIndex maps the FNV-1a hash of a delete-variant to the set of
// original dictionary terms that variant was derived from.
type deleteIndex struct {
	mu   sync.RWMutex
	data map[uint32][]string
}

func newDeleteIndex() *deleteIndex {
	return &deleteIndex{data: make(map[uint32][]string)}
}

func (idx *deleteIndex) lookup(hash uint32) ([]string, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	terms, ok := idx.data[hash]
	return terms, ok
}

// add associates term with the bucket for hash, skipping duplicate
// insertion if term is already present (can happen if two distinct
// delete-variants of different lengths hash to the same bucket).
func (idx *deleteIndex) add(hash uint32, term string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	for _, existing := range idx.data[hash] {
		if existing == term {
			return
		}
	}
	idx.data[hash] = append(idx.data[hash], term)
}

// index computes every delete-variant of term[:prefixLength] up to depth
// maxDictionaryEditDistance (including the identity, zero-delete variant)
// and adds term to each variant's bucket.
func (idx *deleteIndex) index(term string, prefixLength, maxDictionaryEditDistance int) {
	for variant := range editsPrefix(term, prefixLength, maxDictionaryEditDistance) {
		idx.add(stringHash(variant), term)
	}
}

// editsPrefix returns the deduplicated set of delete-variants of
// term[:prefixLength], including term[:prefixLength] itself, obtained by
// deleting up to maxDictionaryEditDistance characters.
func editsPrefix(term string, prefixLength, maxDictionaryEditDistance int) map[string]struct{} {
	out := make(map[string]struct{})

	prefix := term
	if len([]rune(prefix)) > prefixLength {
		prefix = string([]rune(prefix)[:prefixLength])
	}
	out[prefix] = struct{}{}

	edits(prefix, 0, maxDictionaryEditDistance, out)
	return out
}

// edits recursively generates every string obtained by deleting one
// character from word, stopping once depth reaches
// maxDictionaryEditDistance or word has at most one character left. A
// variant is recursed into only the first time it is discovered, which is
// what makes repeated deletion paths to the same variant free.
func edits(word string, depth, maxDictionaryEditDistance int, out map[string]struct{}) {
	runes := []rune(word)
	if depth >= maxDictionaryEditDistance || len(runes) <= 1 {
		return
	}
	nextDepth := depth + 1
	for i := range runes {
		variant := string(runes[:i]) + string(runes[i+1:])
		if _, seen := out[variant]; seen {
			continue
		}
		out[variant] = struct{}{}
		if nextDepth < maxDictionaryEditDistance {
			edits(variant, nextDepth, maxDictionaryEditDistance, out)
		}
	}
}

// stringHash is the FNV-1a hash used to key delete-index buckets.
func stringHash(s string) uint32 {
	var h uint32 = 2166136261
	for _, b := range []byte(s) {
		h ^= uint32(b)
		h *= 16777619
	}
	return h
}

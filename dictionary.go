// Copyright (c) 2026 The symdelete Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symdelete

import (
	"math"
	"sync"
)

// defaultCorpusSize is the corpus-size prior used for N until any entry has
// been added, per the data model's default.
const defaultCorpusSize = 1024 * 1024 * 1024 * 1024

// dictionary is the authoritative term -> count map, plus the scalar
// bookkeeping (N, maxLength) lookups and scoring depend on.
type dictionary struct {
	mu sync.RWMutex

	countThreshold  int
	words           map[string]int
	belowThreshold  map[string]int
	n               int64
	maxLength       int
}

func newDictionary(countThreshold int) *dictionary {
	return &dictionary{
		countThreshold: countThreshold,
		words:          make(map[string]int),
		belowThreshold: make(map[string]int),
		n:              defaultCorpusSize,
	}
}

// add increments or inserts term's count, returning true if term is newly
// present in the main store (i.e. this call promoted it past the
// countThreshold, or it was created directly at or above threshold).
func (d *dictionary) add(term string, count int) (bool, error) {
	if count < 0 {
		return false, invalidArgument("count must be non-negative, got %d", count)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.firstEntry() {
		d.n = 0
	}

	if existing, ok := d.words[term]; ok {
		d.words[term] = saturatingAdd(existing, count)
		d.n = saturatingAdd64(d.n, int64(count))
		return false, nil
	}

	if d.countThreshold > 0 {
		if pending, ok := d.belowThreshold[term]; ok {
			total := saturatingAdd(pending, count)
			if total >= d.countThreshold {
				delete(d.belowThreshold, term)
				d.words[term] = total
				d.promote(term, total)
				return true, nil
			}
			d.belowThreshold[term] = total
			return false, nil
		}
		if count < d.countThreshold {
			d.belowThreshold[term] = count
			return false, nil
		}
	}

	d.words[term] = count
	d.promote(term, count)
	return true, nil
}

// promote updates maxLength/N for a term that has just entered the main
// store. Callers must hold d.mu.
func (d *dictionary) promote(term string, count int) {
	if length := len([]rune(term)); length > d.maxLength {
		d.maxLength = length
	}
	d.n = saturatingAdd64(d.n, int64(count))
}

func (d *dictionary) firstEntry() bool {
	return len(d.words) == 0 && len(d.belowThreshold) == 0
}

func (d *dictionary) remove(term string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if count, ok := d.words[term]; ok {
		delete(d.words, term)
		d.n = saturatingAdd64(d.n, -int64(count))
		if d.n < 0 {
			d.n = 0
		}
		return true
	}
	if _, ok := d.belowThreshold[term]; ok {
		delete(d.belowThreshold, term)
		return true
	}
	return false
}

func (d *dictionary) count(term string) (int, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	count, ok := d.words[term]
	return count, ok
}

func (d *dictionary) corpusSize() int64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.n
}

func (d *dictionary) longestTerm() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.maxLength
}

func saturatingAdd(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func saturatingAdd64(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	if b < 0 && a < math.MinInt64-b {
		return math.MinInt64
	}
	return a + b
}

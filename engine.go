// Copyright (c) 2026 The symdelete Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symdelete

// Verbosity controls how many suggestions a Lookup returns.
type Verbosity int

const (
	// Top returns only the single best suggestion.
	Top Verbosity = iota
	// Closest returns every suggestion tied at the minimum distance found.
	Closest
	// All returns every suggestion within the requested edit distance.
	All
)

// Speller is the engine handle: a dictionary store, its delete-index, and
// an optional ranker hook, all independent of any other Speller instance.
type Speller struct {
	opts Options

	dict         *dictionary
	index        *deleteIndex
	distanceFunc distanceFunc
	ranker       rankerHandle
}

// New creates a Speller configured by opts. Defaults match spec.md §6:
// MaxDictionaryEditDistance=2, PrefixLength=7, CountThreshold=1, no ranker.
func New(opts ...Option) *Speller {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Speller{
		opts:         o,
		dict:         newDictionary(o.CountThreshold),
		index:        newDeleteIndex(),
		distanceFunc: pickDistanceFunc(o.MaxDictionaryEditDistance),
	}
	if o.ranker != nil {
		s.ranker.set(o.ranker)
	}
	return s
}

// CreateDictionaryEntry inserts term with count, or increments its existing
// count if term is already present (saturating rather than overflowing).
// It returns true if term was newly inserted into the dictionary.
func (s *Speller) CreateDictionaryEntry(term string, count int) (bool, error) {
	key := normalizeTerm(term, s.opts.ConfusableFolding)

	inserted, err := s.dict.add(key, count)
	if err != nil {
		return false, err
	}
	if inserted {
		s.index.index(key, s.opts.PrefixLength, s.opts.MaxDictionaryEditDistance)
	}
	return inserted, nil
}

// DeleteDictionaryEntry removes term from the dictionary. It returns false,
// not an error, if term was not present - absence is not an error
// condition per spec.md §7.
func (s *Speller) DeleteDictionaryEntry(term string) bool {
	key := normalizeTerm(term, s.opts.ConfusableFolding)
	return s.dict.remove(key)
}

// SetRanker attaches (or, with a nil argument, detaches) the ranker hook.
// It may be called concurrently with in-flight Lookup/LookupCompound/
// WordSegmentation calls; an in-flight call may observe either the old or
// new ranker but will remain memory-safe either way.
func (s *Speller) SetRanker(r Ranker) {
	s.ranker.set(r)
}

// Ranker returns the currently attached ranker, or nil if none is set.
func (s *Speller) Ranker() Ranker {
	return s.ranker.get()
}

// MaxDictionaryEditDistance returns the index depth this Speller was built
// with.
func (s *Speller) MaxDictionaryEditDistance() int {
	return s.opts.MaxDictionaryEditDistance
}

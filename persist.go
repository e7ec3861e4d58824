// Copyright (c) 2026 The symdelete Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symdelete

import (
	"compress/gzip"
	"encoding/json"
	"io"

	"github.com/tidwall/gjson"
)

// snapshot is the on-disk representation written by Save and read by
// LoadInto. It is an optional, non-normative serialization format - spec.md
// leaves persistence format unspecified - provided as the "surrounding
// collaborator" the spec anticipates. The ranker is never part of it.
type snapshot struct {
	Options   Options          `json:"options"`
	Words     map[string]int   `json:"words"`
	Deletes   map[uint32][]string `json:"deletes"`
	MaxLength int              `json:"maxLength"`
	N         int64            `json:"n"`
}

// Save writes a gzip-compressed JSON snapshot of the dictionary store and
// delete-index to w.
func (s *Speller) Save(w io.Writer) error {
	s.dict.mu.RLock()
	words := make(map[string]int, len(s.dict.words))
	for term, count := range s.dict.words {
		words[term] = count
	}
	maxLength := s.dict.maxLength
	n := s.dict.n
	s.dict.mu.RUnlock()

	s.index.mu.RLock()
	deletes := make(map[uint32][]string, len(s.index.data))
	for hash, terms := range s.index.data {
		deletes[hash] = append([]string(nil), terms...)
	}
	s.index.mu.RUnlock()

	snap := snapshot{
		Options:   s.opts,
		Words:     words,
		Deletes:   deletes,
		MaxLength: maxLength,
		N:         n,
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	gz := gzip.NewWriter(w)
	if _, err := gz.Write(raw); err != nil {
		return err
	}
	return gz.Close()
}

// LoadInto reads a snapshot written by Save and returns a ready-to-use
// Speller. The ranker is never serialized, so the returned Speller always
// starts with no ranker attached.
func LoadInto(r io.Reader) (*Speller, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer gz.Close()

	raw, err := io.ReadAll(gz)
	if err != nil {
		return nil, err
	}

	parsed := gjson.ParseBytes(raw)

	var opts Options
	if err := json.Unmarshal([]byte(parsed.Get("options").Raw), &opts); err != nil {
		return nil, err
	}

	s := New(
		WithMaxDictionaryEditDistance(opts.MaxDictionaryEditDistance),
		WithPrefixLength(opts.PrefixLength),
		WithCountThreshold(opts.CountThreshold),
	)
	if opts.ConfusableFolding {
		s.opts.ConfusableFolding = true
	}

	var words map[string]int
	if err := json.Unmarshal([]byte(parsed.Get("words").Raw), &words); err != nil {
		return nil, err
	}
	var deletes map[uint32][]string
	if err := json.Unmarshal([]byte(parsed.Get("deletes").Raw), &deletes); err != nil {
		return nil, err
	}

	s.dict.mu.Lock()
	s.dict.words = words
	s.dict.maxLength = int(parsed.Get("maxLength").Int())
	s.dict.n = parsed.Get("n").Int()
	s.dict.mu.Unlock()

	s.index.mu.Lock()
	s.index.data = deletes
	s.index.mu.Unlock()

	return s, nil
}

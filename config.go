// Copyright (c) 2026 The symdelete Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symdelete

import "github.com/mitchellh/mapstructure"

const (
	defaultMaxDictionaryEditDistance = 2
	defaultPrefixLength              = 7
	defaultCountThreshold            = 1
)

// Options holds the configuration recognized at engine construction time.
type Options struct {
	// MaxDictionaryEditDistance is the index depth and the hard upper bound
	// on any Lookup's max edit distance.
	MaxDictionaryEditDistance int `mapstructure:"max_dictionary_edit_distance"`
	// PrefixLength is how many leading characters of each term are used
	// for delete-index generation.
	PrefixLength int `mapstructure:"prefix_length"`
	// CountThreshold is the minimum accumulated count for a term to be
	// considered a "real" dictionary entry.
	CountThreshold int `mapstructure:"count_threshold"`
	// ConfusableFolding enables confusable-skeleton folding of dictionary
	// terms before they're used as store/index keys.
	ConfusableFolding bool `mapstructure:"confusable_folding"`

	// ranker is set by WithRankerOption; it has no mapstructure mapping
	// since a callable can't come from a decoded config map.
	ranker Ranker
}

func defaultOptions() Options {
	return Options{
		MaxDictionaryEditDistance: defaultMaxDictionaryEditDistance,
		PrefixLength:              defaultPrefixLength,
		CountThreshold:            defaultCountThreshold,
	}
}

// Option configures a Speller at construction time.
type Option func(*Options)

// WithMaxDictionaryEditDistance overrides the default index depth (2).
func WithMaxDictionaryEditDistance(d int) Option {
	return func(o *Options) { o.MaxDictionaryEditDistance = d }
}

// WithPrefixLength overrides the default delete-index prefix length (7).
func WithPrefixLength(n int) Option {
	return func(o *Options) { o.PrefixLength = n }
}

// WithCountThreshold overrides the default count threshold (1).
func WithCountThreshold(n int) Option {
	return func(o *Options) { o.CountThreshold = n }
}

// WithConfusableFolding enables confusable-skeleton folding of dictionary
// terms; off by default.
func WithConfusableFolding() Option {
	return func(o *Options) { o.ConfusableFolding = true }
}

// WithRankerOption attaches a ranker at construction time, equivalent to
// calling SetRanker immediately after New.
func WithRankerOption(r Ranker) Option {
	return func(o *Options) { o.ranker = r }
}

// DecodeOptions decodes an arbitrary configuration map - as would arrive
// from a parsed YAML/JSON/env-derived config one layer above this package -
// into a typed Options value, applying this package's defaults to any field
// the map doesn't mention.
func DecodeOptions(raw map[string]interface{}) (Options, error) {
	opts := defaultOptions()
	if raw == nil {
		return opts, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &opts,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return opts, err
	}
	if err := decoder.Decode(raw); err != nil {
		return opts, err
	}
	return opts, nil
}

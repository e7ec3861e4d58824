// Copyright (c) 2026 The symdelete Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symdelete

import (
	"sort"
	"sync/atomic"
)

// Ranker replaces the default suggestion ordering. It is only ever invoked
// with a non-empty suggestion list and may reorder, filter, or rebuild it
// entirely - the engine does not validate what comes back, so downstream
// consumers (case transfer, LookupCompound, WordSegmentation) treat the
// returned list at face value. Implementations must be deterministic and
// side-effect-free.
type Ranker func(phrase string, suggestions SuggestionList, verbosity Verbosity) SuggestionList

// rankerHandle is a process-local, nullable, atomically-swappable reference
// to a Ranker.
type rankerHandle struct {
	v atomic.Value // holds rankerBox
}

type rankerBox struct {
	fn Ranker
}

func (h *rankerHandle) set(r Ranker) {
	h.v.Store(rankerBox{fn: r})
}

func (h *rankerHandle) get() Ranker {
	v := h.v.Load()
	if v == nil {
		return nil
	}
	return v.(rankerBox).fn
}

// rank is the single choke point through which every non-empty suggestion
// list passes before being returned to a caller. An empty list is returned
// as is; the ranker is never invoked on it.
func (h *rankerHandle) rank(phrase string, suggestions SuggestionList, verbosity Verbosity) SuggestionList {
	if len(suggestions) == 0 {
		return suggestions
	}
	if r := h.get(); r != nil {
		return r(phrase, suggestions, verbosity)
	}
	if len(suggestions) > 1 {
		sort.Sort(suggestions)
	}
	return suggestions
}

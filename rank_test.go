// Copyright (c) 2026 The symdelete Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symdelete

import "testing"

func TestRankerHandleDefaultsToNil(t *testing.T) {
	var h rankerHandle
	if h.get() != nil {
		t.Fatal("zero-value rankerHandle should report no ranker attached")
	}
}

func TestRankerHandleSetAndClear(t *testing.T) {
	var h rankerHandle
	r := func(phrase string, suggestions SuggestionList, v Verbosity) SuggestionList { return suggestions }
	h.set(r)
	if h.get() == nil {
		t.Fatal("expected ranker to be set")
	}
	h.set(nil)
	if h.get() != nil {
		t.Fatal("expected ranker to be cleared")
	}
}

func TestRankerHandleRankDefaultsToSort(t *testing.T) {
	var h rankerHandle
	in := SuggestionList{{Term: "b", Distance: 1, Count: 1}, {Term: "a", Distance: 0, Count: 1}}
	out := h.rank("phrase", in, All)
	if out[0].Term != "a" {
		t.Fatalf("expected default sort to put the closer suggestion first, got %v", out.Terms())
	}
}

func TestRankerHandleRankSkipsEmpty(t *testing.T) {
	var h rankerHandle
	called := false
	h.set(func(phrase string, suggestions SuggestionList, v Verbosity) SuggestionList {
		called = true
		return suggestions
	})
	h.rank("phrase", nil, Top)
	if called {
		t.Fatal("rank must not invoke the ranker on an empty suggestion list")
	}
}

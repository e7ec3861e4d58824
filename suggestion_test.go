// Copyright (c) 2026 The symdelete Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symdelete

import (
	"sort"
	"testing"
)

func TestSuggestionListDefaultOrder(t *testing.T) {
	list := SuggestionList{
		{Term: "axc", Distance: 1, Count: 1},
		{Term: "xbc", Distance: 1, Count: 3},
		{Term: "abx", Distance: 1, Count: 2},
		{Term: "heap", Distance: 2, Count: 5},
	}
	sort.Sort(list)

	want := []string{"xbc", "abx", "axc", "heap"}
	got := list.Terms()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: want %s, got %s (%v)", i, want[i], got[i], got)
		}
	}
}

func TestSuggestionEqualByTermOnly(t *testing.T) {
	a := Suggestion{Term: "hello", Distance: 1, Count: 10}
	b := Suggestion{Term: "hello", Distance: 2, Count: 20}
	if !a.Equal(b) {
		t.Fatal("suggestions with the same term should be equal regardless of distance/count")
	}
	c := Suggestion{Term: "help", Distance: 1, Count: 10}
	if a.Equal(c) {
		t.Fatal("suggestions with different terms should not be equal")
	}
}

func TestSuggestionListString(t *testing.T) {
	list := SuggestionList{{Term: "a"}, {Term: "b"}}
	if got, want := list.String(), "[a, b]"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

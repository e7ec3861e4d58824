// Copyright (c) 2026 The symdelete Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symdelete

import (
	"strings"
	"testing"
)

// Scenario 4: a long garbled phrase corrected token-by-token should yield
// exactly one aggregate suggestion whose term contains spaces and whose
// distance equals the distance comparer's measurement between the original
// phrase and the corrected term.
func TestLookupCompoundReturnsSingleAggregateSuggestion(t *testing.T) {
	s := buildSpeller(t, map[string]int{
		"where": 100, "is": 100, "the": 200, "love": 50, "he": 100, "had": 80,
		"dated": 10, "for": 100, "much": 20, "of": 100, "past": 20, "who": 50,
		"could": 40, "not": 100, "read": 30, "in": 100, "sixth": 5, "grade": 5,
	})

	phrase := "whereis th elove hehad dated forImuch of thepast who couqdn'tread in sixtgrade"
	got, err := s.LookupCompound(phrase, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("expected exactly one aggregate suggestion, got %d: %v", len(got), got)
	}
	if !strings.Contains(got[0].Term, " ") {
		t.Fatalf("expected aggregate term to contain spaces, got %q", got[0].Term)
	}
	want := s.distanceFunc(phrase, got[0].Term, 1<<30)
	if want < 0 {
		want = osaDistance(phrase, got[0].Term, 1<<30)
	}
	if got[0].Distance != want {
		t.Fatalf("distance %d does not match distance comparer's %d", got[0].Distance, want)
	}
}

func TestLookupCompoundCombinesAdjacentTokens(t *testing.T) {
	s := buildSpeller(t, map[string]int{"icecream": 5})
	got, err := s.LookupCompound("ice cream", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Term != "icecream" {
		t.Fatalf("expected tokens combined into icecream, got %v", got.Terms())
	}
}

func TestLookupCompoundSplitsSingleToken(t *testing.T) {
	s := buildSpeller(t, map[string]int{"ice": 10, "cream": 10})
	got, err := s.LookupCompound("icecream", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Term != "ice cream" {
		t.Fatalf("expected token split into 'ice cream', got %v", got.Terms())
	}
}

func TestLookupCompoundEmptyPhrase(t *testing.T) {
	s := buildSpeller(t, map[string]int{"hello": 1})
	got, err := s.LookupCompound("", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Term != "" {
		t.Fatalf("expected a single empty-term suggestion for an empty phrase, got %v", got)
	}
}

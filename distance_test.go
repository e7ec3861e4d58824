// Copyright (c) 2026 The symdelete Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symdelete

import "testing"

func TestOSADistanceBasic(t *testing.T) {
	cases := []struct {
		a, b string
		max  int
		want int
	}{
		{"", "", 2, 0},
		{"", "abc", 2, -1},
		{"", "ab", 2, 2},
		{"hello", "hello", 2, 0},
		{"helo", "hello", 2, 1},
		{"ab", "ba", 2, 1},
		{"kitten", "sitting", 3, 3},
		{"abcdef", "xyz", 2, -1},
	}
	for _, c := range cases {
		got := osaDistance(c.a, c.b, c.max)
		if got != c.want {
			t.Errorf("osaDistance(%q, %q, %d) = %d, want %d", c.a, c.b, c.max, got, c.want)
		}
	}
}

func TestOSADistanceSymmetric(t *testing.T) {
	pairs := [][2]string{{"kitten", "sitting"}, {"abc", "abd"}, {"", "x"}, {"same", "same"}}
	for _, p := range pairs {
		d1 := osaDistance(p[0], p[1], 5)
		d2 := osaDistance(p[1], p[0], 5)
		if d1 != d2 {
			t.Errorf("osaDistance not symmetric for %q/%q: %d vs %d", p[0], p[1], d1, d2)
		}
	}
}

func TestOSADistanceEarlyExitMatchesUnbounded(t *testing.T) {
	a, b := "correction", "corection"
	unbounded := osaDistance(a, b, 100)
	bounded := osaDistance(a, b, unbounded)
	if bounded != unbounded {
		t.Fatalf("bounded distance %d should equal unbounded distance %d when max == true distance", bounded, unbounded)
	}
	tooTight := osaDistance(a, b, unbounded-1)
	if tooTight != -1 {
		t.Fatalf("distance %d should exceed max %d and return -1, got %d", unbounded, unbounded-1, tooTight)
	}
}

func TestPickDistanceFunc(t *testing.T) {
	if fn := pickDistanceFunc(2); fn("a", "b", 1) != osaDistance("a", "b", 1) {
		t.Fatal("max dictionary edit distance <= 2 should select OSA")
	}
}

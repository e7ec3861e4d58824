// Copyright (c) 2026 The symdelete Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symdelete

import "testing"

func TestEditsPrefixIncludesIdentity(t *testing.T) {
	variants := editsPrefix("hello", 7, 2)
	if _, ok := variants["hello"]; !ok {
		t.Fatal("identity term (zero deletes) must be indexed")
	}
}

func TestEditsPrefixRespectsDepth(t *testing.T) {
	variants := editsPrefix("abcd", 7, 1)
	// depth 1: every single-character delete of "abcd" plus itself.
	want := []string{"abcd", "bcd", "acd", "abd", "abc"}
	for _, w := range want {
		if _, ok := variants[w]; !ok {
			t.Errorf("expected variant %q at depth 1, missing", w)
		}
	}
	// depth-2 deletes (e.g. "cd" from "bcd" minus 'b') must not appear.
	if _, ok := variants["cd"]; ok {
		t.Error("depth-2 variant should not appear when maxDictionaryEditDistance=1")
	}
}

func TestEditsPrefixTruncatesToPrefixLength(t *testing.T) {
	variants := editsPrefix("abcdefgh", 3, 1)
	for variant := range variants {
		if len([]rune(variant)) > 3 {
			t.Errorf("variant %q exceeds prefix length 3", variant)
		}
	}
}

func TestDeleteIndexAddDeduplicates(t *testing.T) {
	idx := newDeleteIndex()
	h := stringHash("xyz")
	idx.add(h, "term")
	idx.add(h, "term")
	bucket, ok := idx.lookup(h)
	if !ok || len(bucket) != 1 {
		t.Fatalf("expected exactly one entry after duplicate add, got %v", bucket)
	}
}

func TestIndexInvariant(t *testing.T) {
	idx := newDeleteIndex()
	idx.index("hello", 7, 2)

	for variant := range editsPrefix("hello", 7, 2) {
		bucket, ok := idx.lookup(stringHash(variant))
		if !ok {
			t.Fatalf("variant %q missing from index", variant)
		}
		found := false
		for _, term := range bucket {
			if term == "hello" {
				found = true
			}
		}
		if !found {
			t.Fatalf("bucket for variant %q does not contain original term", variant)
		}
	}
}

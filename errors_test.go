// Copyright (c) 2026 The symdelete Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symdelete

import "testing"

func TestInvalidArgumentErrorKindAndMessage(t *testing.T) {
	err := invalidArgument("bad value %d", 7)
	spellErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if spellErr.Kind != InvalidArgument {
		t.Errorf("Kind = %v, want InvalidArgument", spellErr.Kind)
	}
	if spellErr.Error() == "" {
		t.Error("expected a non-empty error message")
	}
}

func TestErrorKindString(t *testing.T) {
	cases := map[ErrorKind]string{
		InvalidArgument: "invalid_argument",
		NotFound:        "not_found",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", int(kind), got, want)
		}
	}
}

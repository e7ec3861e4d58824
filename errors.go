// Copyright (c) 2026 The symdelete Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symdelete

import "fmt"

// ErrorKind classifies the errors this package returns.
type ErrorKind int

const (
	// InvalidArgument means a caller-supplied value violates a documented
	// precondition (e.g. a max edit distance larger than the dictionary was
	// built with).
	InvalidArgument ErrorKind = iota
	// NotFound is never returned as an error - DeleteDictionaryEntry reports
	// a missing term via its bool return, not an error. Kept for symmetry
	// with the error-kind table callers may want to switch on.
	NotFound
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid_argument"
	case NotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned by this package's operations.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("symdelete: %s: %s", e.Kind, e.Msg)
}

func invalidArgument(format string, args ...interface{}) error {
	return &Error{Kind: InvalidArgument, Msg: fmt.Sprintf(format, args...)}
}

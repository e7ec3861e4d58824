// Copyright (c) 2026 The symdelete Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

// Package symdelete provides fast, frequency-weighted spelling correction and
// word segmentation built on a symmetric-delete index, with a pluggable
// ranker hook for replacing the default suggestion ordering.
package symdelete

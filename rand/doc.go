// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rand implements a deterministic pseudo-random number generator
// driven by a pluggable entropy Source.
//
// A Generator produces uniform values for every fixed-width integer type,
// float32, float64, *decimal.Big and the 64-bit Value union. Bounded draws
// use rejection sampling and carry no modulo bias. Bulk operations fill
// whole slices or sub-ranges of them, and a Cursor streams values lazily.
//
// Two Generators built from equal seeds over equal sources produce equal
// output. Unpredictability, if any, comes from the Source alone.
//
// A Generator is not safe for concurrent use. Confine each instance to one
// goroutine, or TryClone it and hand the clone to another.
package rand

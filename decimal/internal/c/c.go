// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package c holds constants shared by the decimal packages.
package c

import "math"

const (
	// Inflated is the compact value used to mark a Big decimal whose
	// mantissa lives in its big.Int.
	Inflated int64 = math.MinInt64

	// BadScale is the largest power of ten that fits in an int64.
	BadScale = 18
)

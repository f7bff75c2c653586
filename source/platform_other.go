// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux

package source

import "crypto/rand"

// platformReader reads from crypto/rand.
type platformReader struct{}

func (platformReader) Read(p []byte) (int, error) {
	return rand.Read(p)
}

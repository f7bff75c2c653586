// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"golang.org/x/crypto/blake2b"

	"github.com/itsmanjeet/xrand/rand"
)

// Hash is a deterministic source built on Blake2b-512. Its 64-byte state
// starts as the hash of the seed and is rehashed whenever its bytes have
// all been read.
type Hash struct {
	data [blake2b.Size]byte
	pos  int
}

// NewHash returns a Hash whose first 64 bytes of output are the Blake2b-512
// digest of seed.
func NewHash(seed []byte) *Hash {
	return &Hash{data: blake2b.Sum512(seed)}
}

// NextByte returns the next byte of output.
func (h *Hash) NextByte() byte {
	if h.pos >= len(h.data) {
		h.data = blake2b.Sum512(h.data[:])
		h.pos = 0
	}
	b := h.data[h.pos]
	h.pos++
	return b
}

// Clone returns an independent copy of h.
func (h *Hash) Clone() (rand.Source, bool) {
	c := *h
	return &c, true
}

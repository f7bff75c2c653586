// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"encoding/binary"

	"github.com/itsmanjeet/xrand/rand"
)

// Shift is a xorshift128+ shift-register generator. It is fast and
// deterministic but predictable from its output.
type Shift struct {
	s   [2]uint64
	buf wordBuffer
}

// NewShift returns a Shift whose state is expanded from seed.
func NewShift(seed uint64) *Shift {
	r := new(Shift)
	r.Seed(seed)
	return r
}

// NewShiftBytes returns a Shift whose state is the first 16 bytes of seed,
// read as two little-endian words. Shorter seeds are zero-padded.
func NewShiftBytes(seed []byte) *Shift {
	var full [16]byte
	copy(full[:], seed)
	r := &Shift{s: [2]uint64{
		binary.LittleEndian.Uint64(full[:8]),
		binary.LittleEndian.Uint64(full[8:]),
	}}
	if r.s == [2]uint64{} {
		// The all-zero state is a fixed point.
		r.Seed(0)
	}
	return r
}

// Seed resets r to a deterministic state derived from seed.
func (r *Shift) Seed(seed uint64) {
	r.s[0] = splitmix64(seed)
	r.s[1] = splitmix64(seed ^ 0xda942042e4dd58b5)
	r.buf = wordBuffer{}
}

// Uint64 returns the next 64-bit word.
func (r *Shift) Uint64() uint64 {
	x := r.s[0]
	y := r.s[1]
	r.s[0] = y
	x ^= x << 23
	x ^= y ^ (x >> 17) ^ (y >> 26)
	r.s[1] = x
	return x + y
}

// NextByte returns the next byte of output.
func (r *Shift) NextByte() byte {
	return r.buf.nextByte(r.Uint64)
}

// Clone returns an independent copy of r.
func (r *Shift) Clone() (rand.Source, bool) {
	c := *r
	return &c, true
}

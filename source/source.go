// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package source provides entropy sources for package rand.
//
// Shift, PCG and Hash are deterministic: equal seeds give equal byte
// streams, and each can clone itself. Reader wraps an io.Reader and cannot
// be cloned; NewPlatform returns one over the operating system's random
// number generator.
package source

import "github.com/itsmanjeet/xrand/rand"

var (
	_ rand.Cloner = (*Shift)(nil)
	_ rand.Cloner = (*PCG)(nil)
	_ rand.Cloner = (*Hash)(nil)
	_ rand.Source = (*Reader)(nil)
)

// wordBuffer serves the bytes of 64-bit words, low byte first.
type wordBuffer struct {
	word uint64
	n    uint
}

func (b *wordBuffer) nextByte(next func() uint64) byte {
	if b.n == 0 {
		b.word = next()
		b.n = 8
	}
	out := byte(b.word)
	b.word >>= 8
	b.n--
	return out
}

// splitmix64 scrambles x; it expands small seeds into well-mixed state.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

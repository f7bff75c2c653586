// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import "testing"

// testSource is a clonable splitmix64 byte stream that counts its reads.
type testSource struct {
	x    uint64
	word uint64
	n    uint
	read int
}

func newTestSource(seed uint64) *testSource { return &testSource{x: seed} }

func (s *testSource) NextByte() byte {
	if s.n == 0 {
		s.x += 0x9e3779b97f4a7c15
		z := s.x
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		s.word = z ^ (z >> 31)
		s.n = 8
	}
	b := byte(s.word)
	s.word >>= 8
	s.n--
	s.read++
	return b
}

func (s *testSource) Clone() (Source, bool) {
	c := *s
	return &c, true
}

// opaqueSource hides the Clone method of the source it wraps.
type opaqueSource struct {
	s Source
}

func (o opaqueSource) NextByte() byte { return o.s.NextByte() }

// refusingSource has a Clone method that always declines.
type refusingSource struct {
	testSource
}

func (*refusingSource) Clone() (Source, bool) { return nil, false }

func newGen(t testing.TB, seed string) *Generator {
	t.Helper()
	g, err := NewSeeded(newTestSource(1), []byte(seed))
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func mustClone(t testing.TB, g *Generator) *Generator {
	t.Helper()
	c, ok := g.TryClone()
	if !ok {
		t.Fatal("TryClone failed")
	}
	return c
}

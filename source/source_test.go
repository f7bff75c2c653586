// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/crypto/blake2b"

	"github.com/itsmanjeet/xrand/rand"
)

func take(s rand.Source, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = s.NextByte()
	}
	return out
}

func TestDeterministic(t *testing.T) {
	tests := []struct {
		name string
		new  func(seed uint64) rand.Source
	}{
		{"Shift", func(seed uint64) rand.Source { return NewShift(seed) }},
		{"PCG", func(seed uint64) rand.Source { return NewPCG(seed) }},
		{"Hash", func(seed uint64) rand.Source { return NewHash([]byte{byte(seed)}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := take(tt.new(1), 200), take(tt.new(1), 200)
			if diff := cmp.Diff(a, b); diff != "" {
				t.Errorf("same seed diverged (-want, +got):\n%s", diff)
			}
			if bytes.Equal(a, take(tt.new(2), 200)) {
				t.Error("different seeds produced the same bytes")
			}
		})
	}
}

func TestClone(t *testing.T) {
	for _, s := range []rand.Cloner{NewShift(7), NewPCG(7), NewHash([]byte("seven"))} {
		// Leave each source partway through a word or block.
		take(s, 75)
		c, ok := s.Clone()
		if !ok {
			t.Fatalf("%T: Clone declined", s)
		}
		want := take(s, 300)
		if diff := cmp.Diff(want, take(c, 300)); diff != "" {
			t.Errorf("%T: clone diverged (-want, +got):\n%s", s, diff)
		}
	}
}

func TestWordBytesLittleEndian(t *testing.T) {
	s, ref := NewShift(3), NewShift(3)
	w := ref.Uint64()
	for i := 0; i < 8; i++ {
		if got, want := s.NextByte(), byte(w>>(8*i)); got != want {
			t.Errorf("byte %d = %#x, want %#x", i, got, want)
		}
	}
}

func TestShiftBytes(t *testing.T) {
	if diff := cmp.Diff(take(NewShift(0), 64), take(NewShiftBytes(nil), 64)); diff != "" {
		t.Errorf("zero state not reseeded (-want, +got):\n%s", diff)
	}
	a := take(NewShiftBytes([]byte("0123456789abcdef")), 64)
	b := take(NewShiftBytes([]byte("0123456789abcdefIGNORED")), 64)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("bytes past 16 changed the stream (-want, +got):\n%s", diff)
	}
}

func TestPCGReseed(t *testing.T) {
	p := NewPCG(42)
	want := take(p, 13)
	p.Seed(42)
	if diff := cmp.Diff(want, take(p, 13)); diff != "" {
		t.Errorf("Seed did not reset the stream (-want, +got):\n%s", diff)
	}
}

func TestHashBlocks(t *testing.T) {
	seed := []byte("hash source")
	h := NewHash(seed)
	first := blake2b.Sum512(seed)
	second := blake2b.Sum512(first[:])
	want := append(first[:], second[:]...)
	if diff := cmp.Diff(want, take(h, 2*blake2b.Size)); diff != "" {
		t.Errorf("Hash stream (-want, +got):\n%s", diff)
	}
}

func TestReader(t *testing.T) {
	data := []byte("entropy bytes from somewhere")
	r := NewReader(bytes.NewReader(data))
	if _, ok := rand.Source(r).(rand.Cloner); ok {
		t.Error("Reader should not be clonable")
	}
	if diff := cmp.Diff(data, take(r, len(data))); diff != "" {
		t.Errorf("Reader bytes (-want, +got):\n%s", diff)
	}
	defer func() {
		if recover() == nil {
			t.Error("NextByte on an exhausted reader did not panic")
		}
	}()
	r.NextByte()
}

func TestPlatform(t *testing.T) {
	a, b := take(NewPlatform(), 64), take(NewPlatform(), 64)
	if bytes.Equal(a, b) {
		t.Error("two platform sources produced identical output")
	}

	g, err := rand.New(NewPlatform())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := g.TryClone(); ok {
		t.Error("generator over the platform source cloned")
	}
	if _, err := rand.NewCopy(g); err == nil {
		t.Error("NewCopy over the platform source succeeded")
	}
}

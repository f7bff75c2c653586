// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"io"

	"golang.org/x/xerrors"
)

// readerBufferSize is the number of bytes a Reader requests at a time.
const readerBufferSize = 256

// Reader adapts an io.Reader to rand.Source. It buffers reads, may block
// inside the underlying reader, and cannot be cloned.
//
// NextByte panics if the reader fails: rand.Source has no error path.
type Reader struct {
	r   io.Reader
	buf [readerBufferSize]byte
	off int
	n   int
}

// NewReader returns a Reader drawing from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// NewPlatform returns a Reader over the operating system's random number
// generator.
func NewPlatform() *Reader {
	return NewReader(platformReader{})
}

// NextByte returns the next byte read from the underlying reader.
func (s *Reader) NextByte() byte {
	if s.off >= s.n {
		s.refill()
	}
	b := s.buf[s.off]
	s.off++
	return b
}

func (s *Reader) refill() {
	n, err := io.ReadAtLeast(s.r, s.buf[:], 1)
	if err != nil {
		panic(xerrors.Errorf("source: read entropy: %w", err))
	}
	s.off, s.n = 0, n
}

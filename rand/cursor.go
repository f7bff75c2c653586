// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

// A Cursor is an infinite stream of draws from one Generator. Each call to
// Next is equivalent to the matching scalar call on the Generator and
// advances it; the stream cannot be rewound or restarted.
//
// A Cursor shares its Generator's state. Two Cursors over one Generator,
// or a Cursor used alongside direct calls, interleave their draws; using
// them from different goroutines without synchronization is a data race.
type Cursor[T Element] struct {
	g    *Generator
	next func() T
}

// Stream returns a Cursor of unbounded draws, as Next produces. It fails
// only if g is nil.
func Stream[T Element](g *Generator) (*Cursor[T], error) {
	if g == nil {
		return nil, argError("Stream", "generator")
	}
	return &Cursor[T]{g: g, next: sampler[T](g)}, nil
}

// StreamN returns a Cursor of draws in [0, n). The bound is validated
// here, not on the first pull.
func StreamN[T Bounded](g *Generator, n T) (*Cursor[T], error) {
	if g == nil {
		return nil, argError("StreamN", "generator")
	}
	f, err := samplerN(g, "StreamN", n)
	if err != nil {
		return nil, err
	}
	return &Cursor[T]{g: g, next: f}, nil
}

// StreamRange returns a Cursor of draws in [min, min+n).
func StreamRange[T Bounded](g *Generator, min, n T) (*Cursor[T], error) {
	if g == nil {
		return nil, argError("StreamRange", "generator")
	}
	f, err := samplerRange(g, "StreamRange", min, n)
	if err != nil {
		return nil, err
	}
	return &Cursor[T]{g: g, next: f}, nil
}

// Next pulls one value.
func (c *Cursor[T]) Next() T { return c.next() }

// Take pulls k values. It returns nil if k <= 0.
func (c *Cursor[T]) Take(k int) []T {
	if k <= 0 {
		return nil
	}
	out := make([]T, k)
	fill(out, c.next)
	return out
}

// Generator returns the Generator c draws from.
func (c *Cursor[T]) Generator() *Generator { return c.g }

// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import (
	"fmt"

	"github.com/go-logr/logr"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/xerrors"
)

// A Generator produces pseudo-random values from its state and Source.
// It is not safe for concurrent use.
type Generator struct {
	src   Source
	state []byte
	block [blockSize]byte
	idx   int
	log   logr.Logger
}

// An Option configures a Generator.
type Option func(*Generator)

// WithLogger directs the Generator's diagnostics to l. Records are
// emitted at V(1).
func WithLogger(l logr.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// New returns a Generator whose state is read entirely from src.
func New(src Source, opts ...Option) (*Generator, error) {
	return newGenerator("New", src, nil, opts)
}

// NewSeeded returns a Generator whose state is derived from seed mixed
// with bytes from src. seed must not be nil; an empty seed is valid.
func NewSeeded(src Source, seed []byte, opts ...Option) (*Generator, error) {
	if seed == nil {
		return nil, argError("NewSeeded", "seed")
	}
	return newGenerator("NewSeeded", src, seed, opts)
}

// NewFromText is like NewSeeded with the seed given as text. The text is
// converted to Unicode normalization form C and encoded as UTF-8, so
// canonically equivalent strings seed equal Generators.
func NewFromText(src Source, seed string, opts ...Option) (*Generator, error) {
	b := norm.NFC.Bytes([]byte(seed))
	if b == nil {
		b = []byte{}
	}
	return newGenerator("NewFromText", src, b, opts)
}

func newGenerator(op string, src Source, seed []byte, opts []Option) (*Generator, error) {
	if src == nil {
		return nil, argError(op, "source")
	}
	g := &Generator{
		src:   src,
		state: make([]byte, stateSize),
		idx:   blockSize,
		log:   logr.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := createState(op, src, seed, g.state); err != nil {
		return nil, err
	}
	g.log.V(1).Info("generator created", "seeded", seed != nil, "stateBytes", len(g.state))
	return g, nil
}

// TryClone returns an independent copy of g whose output repeats g's
// from this point on. It reports false if g is nil or g's Source cannot
// be cloned.
func (g *Generator) TryClone() (*Generator, bool) {
	if g == nil {
		return nil, false
	}
	src, ok := cloneSource(g.src)
	if !ok {
		g.log.V(1).Info("source not clonable", "source", typeName(g.src))
		return nil, false
	}
	c := &Generator{
		src:   src,
		state: append([]byte(nil), g.state...),
		block: g.block,
		idx:   g.idx,
		log:   g.log,
	}
	g.log.V(1).Info("generator cloned")
	return c, true
}

// NewCopy is TryClone for callers that want an error: it fails with
// ErrUnclonable where TryClone reports false.
func NewCopy(g *Generator) (*Generator, error) {
	if g == nil {
		return nil, argError("NewCopy", "generator")
	}
	c, ok := g.TryClone()
	if !ok {
		return nil, xerrors.Errorf("rand: NewCopy: %s: %w", typeName(g.src), ErrUnclonable)
	}
	return c, nil
}

func typeName(v interface{}) string {
	return fmt.Sprintf("%T", v)
}

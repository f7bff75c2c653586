// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/itsmanjeet/xrand/decimal"
)

func TestFillMatchesScalar(t *testing.T) {
	g := newGen(t, "fill")
	c := mustClone(t, g)

	buf := make([]uint16, 100)
	if err := Fill(g, buf); err != nil {
		t.Fatal(err)
	}
	want := make([]uint16, len(buf))
	for i := range want {
		want[i] = c.Uint16()
	}
	if diff := cmp.Diff(want, buf); diff != "" {
		t.Errorf("Fill mismatch (-want, +got):\n%s", diff)
	}
}

func TestFillRangeBounds(t *testing.T) {
	g := newGen(t, "fill range")
	buf := make([]int32, boundedDraws)
	if err := FillN(g, 50, buf); err != nil {
		t.Fatal(err)
	}
	lo, hi := buf[0], buf[0]
	for _, v := range buf {
		if v < 0 || v >= 50 {
			t.Fatalf("FillN(50) produced %d", v)
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo >= 5 || hi < 45 {
		t.Errorf("FillN(50) spans [%d, %d]", lo, hi)
	}

	f := make([]float64, 1000)
	if err := FillRange(g, -10, 20, f); err != nil {
		t.Fatal(err)
	}
	for _, v := range f {
		if v < -10 || v >= 10 {
			t.Fatalf("FillRange(-10, 20) produced %v", v)
		}
	}
}

func TestFillSpan(t *testing.T) {
	g := newGen(t, "span")
	buf := make([]uint64, 10)
	if err := FillSpan(g, buf, 3, 4); err != nil {
		t.Fatal(err)
	}
	for i, v := range buf {
		inside := i >= 3 && i < 7
		if !inside && v != 0 {
			t.Errorf("buf[%d] = %d outside the span", i, v)
		}
		if inside && v == 0 {
			t.Errorf("buf[%d] not written", i)
		}
	}

	b := make([]int8, 8)
	if err := FillRangeSpan(g, -4, 8, b, 6, 2); err != nil {
		t.Fatal(err)
	}
	if err := FillNSpan(g, 3, b, 0, 2); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if b[i] < 0 || b[i] >= 3 {
			t.Errorf("b[%d] = %d, want [0, 3)", i, b[i])
		}
	}
	for i := 2; i < 6; i++ {
		if b[i] != 0 {
			t.Errorf("b[%d] = %d outside the spans", i, b[i])
		}
	}
	for i := 6; i < 8; i++ {
		if b[i] < -4 || b[i] >= 4 {
			t.Errorf("b[%d] = %d, want [-4, 4)", i, b[i])
		}
	}
}

func TestFillEmpty(t *testing.T) {
	g := newGen(t, "empty")
	c := mustClone(t, g)
	buf := []uint32{7, 7, 7}
	if err := FillSpan(g, buf, 0, 0); err != nil {
		t.Fatal(err)
	}
	if err := FillSpan(g, buf, 3, 0); err != nil {
		t.Fatal(err)
	}
	if err := Fill(g, []uint32{}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]uint32{7, 7, 7}, buf); diff != "" {
		t.Errorf("count 0 wrote (-want, +got):\n%s", diff)
	}
	if g.Uint64() != c.Uint64() {
		t.Error("empty fill consumed randomness")
	}
}

func TestFillErrors(t *testing.T) {
	buf := make([]uint8, 4)
	tests := []struct {
		name string
		fill func(g *Generator) error
		want error
	}{
		{"nil generator", func(*Generator) error { return Fill(nil, buf) }, ErrInvalidArgument},
		{"nil buffer", func(g *Generator) error { return Fill[uint8](g, nil) }, ErrInvalidArgument},
		{"nil buffer with span", func(g *Generator) error { return FillSpan[uint8](g, nil, 0, 0) }, ErrInvalidArgument},
		{"negative offset", func(g *Generator) error { return FillSpan(g, buf, -1, 1) }, ErrIndexOutOfRange},
		{"offset past end", func(g *Generator) error { return FillSpan(g, buf, 5, 0) }, ErrIndexOutOfRange},
		{"negative count", func(g *Generator) error { return FillSpan(g, buf, 0, -1) }, ErrIndexOutOfRange},
		{"count past end", func(g *Generator) error { return FillSpan(g, buf, 2, 3) }, ErrIndexOutOfRange},
		{"zero bound", func(g *Generator) error { return FillN(g, 0, buf) }, ErrInvalidRange},
		{"zero bound, zero count", func(g *Generator) error { return FillNSpan(g, 0, buf, 0, 0) }, ErrInvalidRange},
		{"range overflow", func(g *Generator) error { return FillRange(g, 200, 100, buf) }, ErrInvalidRange},
		{"span before bound", func(g *Generator) error { return FillRangeSpan(g, 0, 0, buf, 9, 1) }, ErrIndexOutOfRange},
		{"float bound", func(g *Generator) error { return FillN(g, -1.5, make([]float64, 2)) }, ErrInvalidRange},
		{"nil decimal bound", func(g *Generator) error { return FillN[*decimal.Big](g, nil, make([]*decimal.Big, 2)) }, ErrInvalidArgument},
		{"any nil", func(g *Generator) error { return FillAny(g, nil) }, ErrInvalidArgument},
		{"any unsupported", func(g *Generator) error { return FillAny(g, []string{"x"}) }, ErrUnsupportedType},
		{"any not a slice", func(g *Generator) error { return FillAny(g, uint8(1)) }, ErrUnsupportedType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGen(t, "errors")
			c := mustClone(t, g)
			if err := tt.fill(g); !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
			if g.Uint64() != c.Uint64() {
				t.Error("failed fill consumed randomness")
			}
			if diff := cmp.Diff(make([]uint8, 4), buf); diff != "" {
				t.Errorf("failed fill wrote (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestFillKinds(t *testing.T) {
	g := newGen(t, "kinds")
	vals := make([]Value, 4)
	decs := make([]*decimal.Big, 4)
	floats := make([]float32, 4)
	for _, buf := range []interface{}{vals, decs, floats, make([]int64, 4)} {
		if err := FillAny(g, buf); err != nil {
			t.Fatalf("FillAny(%T): %v", buf, err)
		}
	}
	one := decimal.New(1, 0)
	for i, d := range decs {
		if d == nil || d.Sign() < 0 || d.Cmp(one) >= 0 {
			t.Errorf("decs[%d] = %v, want [0, 1)", i, d)
		}
	}
	for i, f := range floats {
		if f < 0 || f >= 1 {
			t.Errorf("floats[%d] = %v, want [0, 1)", i, f)
		}
	}
	if vals[0] == vals[1] && vals[1] == vals[2] {
		t.Errorf("Value fill repeated %v", vals[0])
	}

	lo, n := decimal.New(-5, 1), decimal.New(1, 0)
	if err := FillRange(g, lo, n, decs); err != nil {
		t.Fatal(err)
	}
	hi := decimal.New(5, 1)
	for i, d := range decs {
		if d.Cmp(lo) < 0 || d.Cmp(hi) >= 0 {
			t.Errorf("decs[%d] = %s, want [-0.5, 0.5)", i, d)
		}
	}
}

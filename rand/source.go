// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

// A Source supplies the raw bytes a Generator consumes.
//
// NextByte must always return a byte; a source that cannot deliver one
// should panic rather than return a made-up value.
type Source interface {
	NextByte() byte
}

// A Cloner is a Source that can produce an independent deep copy of
// itself. Clone reports false if this particular instance cannot be copied.
type Cloner interface {
	Source
	Clone() (Source, bool)
}

// cloneSource returns a copy of src, if src supports it.
func cloneSource(src Source) (Source, bool) {
	c, ok := src.(Cloner)
	if !ok {
		return nil, false
	}
	s, ok := c.Clone()
	if !ok || s == nil {
		return nil, false
	}
	return s, true
}

// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import "golang.org/x/xerrors"

// Errors returned by this package are wrapped around one of these values;
// test for them with errors.Is.
var (
	// ErrInvalidArgument reports a nil source, seed, generator or buffer.
	ErrInvalidArgument = xerrors.New("invalid argument")

	// ErrInvalidRange reports a bound n <= 0, or a min and n whose
	// range does not fit the element type.
	ErrInvalidRange = xerrors.New("invalid range")

	// ErrIndexOutOfRange reports an offset or count outside a buffer.
	ErrIndexOutOfRange = xerrors.New("index out of range")

	// ErrUnsupportedType reports an element type outside the supported set.
	ErrUnsupportedType = xerrors.New("unsupported element type")

	// ErrUnclonable reports a copy requested over a source that cannot clone.
	ErrUnclonable = xerrors.New("source is not clonable")
)

func argError(op, what string) error {
	return xerrors.Errorf("rand: %s: nil %s: %w", op, what, ErrInvalidArgument)
}

func rangeError(op string, min, n interface{}) error {
	return xerrors.Errorf("rand: %s(min=%v, n=%v): %w", op, min, n, ErrInvalidRange)
}

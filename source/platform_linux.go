// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

package source

import (
	"golang.org/x/sys/unix"
)

// platformReader reads from getrandom(2), blocking until the kernel pool
// is initialized.
type platformReader struct{}

func (platformReader) Read(p []byte) (int, error) {
	for {
		n, err := unix.Getrandom(p, 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, err
		}
		return n, nil
	}
}

// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import "golang.org/x/crypto/chacha20"

const (
	// stateSize is the length of a Generator's state: a ChaCha20 key
	// followed by a nonce.
	stateSize = chacha20.KeySize + chacha20.NonceSize

	// blockSize is the number of keystream bytes expanded per refill.
	blockSize = 256

	// stirSize is the number of source bytes folded into the key before
	// each refill.
	stirSize = 8
)

// refill stirs fresh source bytes into the key, expands one keystream
// block and rekeys from the head of that block. The head is never handed
// out, so a captured state cannot be run backwards.
func (g *Generator) refill() {
	for i := 0; i < stirSize; i++ {
		g.state[i] ^= g.src.NextByte()
	}
	c, err := chacha20.NewUnauthenticatedCipher(g.state[:chacha20.KeySize], g.state[chacha20.KeySize:])
	if err != nil {
		// Key and nonce lengths are constant.
		panic("rand: " + err.Error())
	}
	g.block = [blockSize]byte{}
	c.XORKeyStream(g.block[:], g.block[:])
	g.idx = copy(g.state, g.block[:])
}

// next returns the following n bytes of output. Bytes left in the block
// when a word does not fit are discarded.
func (g *Generator) next(n int) []byte {
	if g.idx+n > blockSize {
		g.refill()
	}
	b := g.block[g.idx : g.idx+n]
	g.idx += n
	return b
}

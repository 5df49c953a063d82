// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"fmt"
)

// Decode walks t for each bit of bits, emitting a symbol every time a leaf is reached, and expects exactly
// want symbols.  With a single-leaf tree each symbol is the one-bit codeword 0.
//
// Running out of bits partway through a codeword, or before want symbols, yields ErrTruncatedStream.  Bits
// left over after want symbols, or a 1 bit under a single-leaf tree, yield a *ContainerError.
func (t *Tree) Decode(bits BitString, want uint64) ([]byte, error) {
	// Every codeword is at least one bit long.
	capacity := want
	if limit := uint64(bits.BitLength); capacity > limit {
		capacity = limit
	}
	out := make([]byte, 0, capacity)

	br := newBitReader(bits)
	root := t.nodes[t.root]
	current := t.root
	for {
		if uint64(len(out)) == want && current == t.root {
			break
		}

		bit, ok := br.readBit()
		if !ok {
			break
		}

		if root.leaf() {
			if bit != 0 {
				return nil, &ContainerError{ContainerBadCode, fmt.Sprintf("bit 1 at offset %d", br.pos-1)}
			}
			out = append(out, root.symbol)
			continue
		}

		node := t.nodes[current]
		if bit == 0 {
			current = node.left
		} else {
			current = node.right
		}

		if t.nodes[current].leaf() {
			out = append(out, t.nodes[current].symbol)
			current = t.root
		}
	}

	switch {
	case current != t.root:
		return nil, fmt.Errorf("%w: bits end inside a codeword after %d symbols", ErrTruncatedStream, len(out))
	case uint64(len(out)) < want:
		return nil, fmt.Errorf("%w: decoded %d of %d symbols", ErrTruncatedStream, len(out), want)
	case br.remaining() > 0:
		return nil, &ContainerError{ContainerExcessData, fmt.Sprintf("%d bits after %d symbols", br.remaining(), want)}
	}

	log.Debugf("decoded %d bits into %d octets", bits.BitLength, len(out))
	return out, nil
}

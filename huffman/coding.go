// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

// CodeTable maps each octet value to its codeword.  Octets absent from the tree have an empty codeword.
type CodeTable [TotalSymbols]BitString

// DeriveCodes walks t from the root, labeling left edges 0 and right edges 1, and records the path to each
// leaf as that leaf's codeword.  A tree consisting of a single leaf gets the one-bit codeword 0.  A nil tree
// yields an empty table.
func DeriveCodes(t *Tree) (codes CodeTable) {
	if t == nil {
		return
	}

	type frame struct {
		index  int
		prefix BitString
	}

	stack := []frame{{t.root, BitString{}}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := t.nodes[top.index]
		if node.leaf() {
			code := top.prefix
			if code.BitLength == 0 {
				code = code.appendBit(0)
			}
			codes[node.symbol] = code
			continue
		}

		// Push right first so the left subtree is visited first.
		stack = append(stack,
			frame{node.right, top.prefix.appendBit(1)},
			frame{node.left, top.prefix.appendBit(0)})
	}

	return
}

// Has returns true iff sym has a codeword.
func (codes *CodeTable) Has(sym uint8) bool {
	return codes[sym].BitLength != 0
}

// Len returns the codeword length of sym in bits, or 0 if it has none.
func (codes *CodeTable) Len(sym uint8) int {
	return codes[sym].BitLength
}

// EncodedBits returns the number of payload bits needed to encode input with the given frequencies.
func (codes *CodeTable) EncodedBits(ft *FrequencyTable) (bits uint64) {
	for sym, f := range ft {
		bits += uint64(f) * uint64(codes.Len(uint8(sym)))
	}
	return
}

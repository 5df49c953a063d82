// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

/*
Package huffman implements a whole-buffer Huffman compressor for 256-symbol (octet) alphabets.

Compress counts octet frequencies, builds a Huffman tree from them, and writes a self-describing container:

	offset 0     1024 bytes  256 big-endian uint32 frequency counters, indexed by octet value
	offset 1024  1 byte      number of filler bits (0-7) at the end of the last payload octet
	offset 1025  remainder   packed codewords, most significant bit first

Decompress reads the frequency counters back, rebuilds the identical tree, and walks it bit by bit.  The tree
is rebuilt rather than stored, so tree construction must be deterministic; see BuildTree for the tie-break
order.
*/
package huffman

import (
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("huffman")

// Debug tracing stays off until a program installs its own backend and asks for it.
func init() {
	logging.SetLevel(logging.WARNING, "huffman")
}

// TotalSymbols is the size of the alphabet: one symbol per octet value.
const TotalSymbols = 256

// HeaderSize is the number of container bytes that precede the payload.
const HeaderSize = TotalSymbols*4 + 1

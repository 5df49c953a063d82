// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"fmt"
)

// Encode concatenates the codewords for each octet of data.  An octet without a codeword means codes was not
// derived from data's own frequencies; ErrUnknownByte is returned and no partial output is produced.
func Encode(data []byte, codes *CodeTable) (BitString, error) {
	bwr := newBitWriter(len(data) / 2)

	for i, sym := range data {
		code := codes[sym]
		if code.BitLength == 0 {
			return BitString{}, fmt.Errorf("%w: 0x%02x at offset %d", ErrUnknownByte, sym, i)
		}
		if err := bwr.writeBits(code); err != nil {
			return BitString{}, err
		}
	}

	bits, padding, err := bwr.finish()
	if err != nil {
		return BitString{}, err
	}
	log.Debugf("encoded %d octets into %d bits, %d filler", len(data), bits.BitLength, padding)
	return bits, nil
}

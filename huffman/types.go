// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

// BitString represents a packed bit string.  Within each octet, bits are addressed most significant first.
//
// Invariants:
//   - 0 <= BitLength <= len(Packed)*8
//   - if BitLength%8 != 0, the low (8 - BitLength%8) bits of Packed[BitLength/8] are zero
type BitString struct {
	Packed    []uint8
	BitLength int
}

// Bit returns bit i of bs as 0 or 1.
func (bs BitString) Bit(i int) uint8 {
	return (bs.Packed[i/8] >> uint(7-i%8)) & 1
}

// extract extracts req bits starting from offset, where 0 <= req <= 8 and 0 <= offset.  The bits are returned
// in the high end of packed.  offset may point outside the BitString.
func (bs BitString) extract(offset int, req int) (packed uint8, n int) {
	avail := bs.BitLength - offset
	switch {
	case offset < 0:
		panic("huffman: extract from invalid negative offset")
	case req < 0:
		panic("huffman: extract invalid negative number of bits")
	case 8 < req:
		panic("huffman: extract too many bits")
	case req == 0 || avail <= 0:
		return
	case req < avail:
		n = req
	default:
		n = avail
	}

	octetOffset := offset / 8
	// Conversion safety: 0 <= offset above, so 1 <= shift <= 8.
	shift := uint(8 - offset%8)
	packed = bs.Packed[octetOffset] << (8 - shift)
	if uint(n) > shift {
		packed |= bs.Packed[octetOffset+1] >> shift
	}

	// Clear anything past the n requested bits.
	packed &^= 0xff >> uint(n)
	return
}

// appendBit returns a new BitString holding bs followed by bit.  bs is not modified.
func (bs BitString) appendBit(bit uint8) BitString {
	packed := make([]byte, (bs.BitLength+8)/8)
	copy(packed, bs.Packed)
	packed[bs.BitLength/8] |= (bit & 1) << uint(7-bs.BitLength%8)
	return BitString{packed, bs.BitLength + 1}
}

// HasPrefix reports whether prefix is a prefix of bs.
func (bs BitString) HasPrefix(prefix BitString) bool {
	if prefix.BitLength > bs.BitLength {
		return false
	}

	for i := 0; i < prefix.BitLength; i += 8 {
		a, n := bs.extract(i, 8)
		b, m := prefix.extract(i, 8)
		if m < n {
			a &^= 0xff >> uint(m)
		}
		if a != b {
			return false
		}
	}
	return true
}

// check panics if any of the invariants are invalid for bs.
func (bs BitString) check() {
	switch {
	case !(0 <= bs.BitLength):
		panic("huffman: bit string with negative length")
	case !(bs.BitLength <= len(bs.Packed)*8):
		panic("huffman: bit string with insufficient octets to represent it")
	}

	if bs.BitLength%8 != 0 {
		// Conversion safety: 0 < bs.BitLength%8 <= 7.
		shift := uint(8 - bs.BitLength%8)
		lowBits := bs.Packed[bs.BitLength/8] & (uint8(1)<<shift - 1)
		if lowBits != 0 {
			panic("huffman: bit string with extraneous nonzero bits in representation")
		}
	}
}

func (bs BitString) String() string {
	bitRunes := make([]rune, bs.BitLength)
	for i := range bitRunes {
		if bs.Bit(i) == 0 {
			bitRunes[i] = '0'
		} else {
			bitRunes[i] = '1'
		}
	}

	return string(bitRunes)
}

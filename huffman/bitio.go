// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// bitWriter appends codewords to an octet buffer, most significant bit first.
type bitWriter struct {
	buf  *bytes.Buffer
	w    *bitio.Writer
	bits int
}

func newBitWriter(capacity int) *bitWriter {
	buf := bytes.NewBuffer(make([]byte, 0, capacity))
	return &bitWriter{buf: buf, w: bitio.NewWriter(buf)}
}

// writeBits appends all of src.
func (bwr *bitWriter) writeBits(src BitString) error {
	for si := 0; si < src.BitLength; si += 8 {
		packed, n := src.extract(si, 8)
		// Conversion safety: 0 < n <= 8, and extract clears the bits past n.
		if err := bwr.w.WriteBits(uint64(packed>>uint(8-n)), uint8(n)); err != nil {
			return err
		}
		bwr.bits += n
	}
	return nil
}

// finish pads the last octet with zero bits and returns everything written, along with the number of filler
// bits.  The writer must not be used afterwards.
func (bwr *bitWriter) finish() (bits BitString, padding uint8, err error) {
	if padding, err = bwr.w.Align(); err != nil {
		return
	}
	if err = bwr.w.Close(); err != nil {
		return
	}

	bits = BitString{bwr.buf.Bytes(), bwr.bits}
	bits.check()
	return
}

// bitReader reads a BitString one bit at a time, stopping at its BitLength.
type bitReader struct {
	r     *bitio.Reader
	pos   int
	limit int
}

func newBitReader(src BitString) *bitReader {
	return &bitReader{
		r:     bitio.NewReader(bytes.NewReader(src.Packed)),
		limit: src.BitLength,
	}
}

func (br *bitReader) readBit() (bit uint8, ok bool) {
	if br.pos >= br.limit {
		return 0, false
	}

	set, err := br.r.ReadBool()
	if err != nil {
		return 0, false
	}
	br.pos++
	if set {
		bit = 1
	}
	return bit, true
}

func (br *bitReader) remaining() int {
	return br.limit - br.pos
}

// Pack returns the octets holding bits and the number of filler bits at the end of the last octet.  The
// padding is 0 exactly when the bit count is a multiple of 8.
func Pack(bits BitString) (payload []byte, padding uint8) {
	octets := (bits.BitLength + 7) / 8
	payload = bits.Packed[:octets]
	padding = uint8((8 - bits.BitLength%8) % 8)
	return
}

// Unpack reverses Pack.  The filler bits of payload are ignored; payload itself is not modified.
func Unpack(payload []byte, padding uint8) (BitString, error) {
	if padding > 7 {
		return BitString{}, &ContainerError{ContainerBadPadding, fmt.Sprintf("%d", padding)}
	}

	bitLength := len(payload)*8 - int(padding)
	if bitLength < 0 {
		return BitString{}, fmt.Errorf("%w: %d filler bits declared for an empty payload",
			ErrTruncatedStream, padding)
	}

	packed := make([]byte, len(payload))
	copy(packed, payload)
	if padding != 0 {
		packed[len(packed)-1] &^= uint8(1)<<padding - 1
	}

	bits := BitString{packed, bitLength}
	bits.check()
	return bits, nil
}

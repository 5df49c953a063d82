// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"encoding/binary"
	"fmt"
)

// Container is the parsed form of a compressed file.
type Container struct {
	Frequencies FrequencyTable
	Padding     uint8
	Payload     []byte
}

// NewContainer packs bits behind the frequency table they were encoded with.
func NewContainer(ft *FrequencyTable, bits BitString) *Container {
	payload, padding := Pack(bits)
	return &Container{
		Frequencies: *ft,
		Padding:     padding,
		Payload:     payload,
	}
}

// Size returns the length of the serialized container in bytes.
func (c *Container) Size() int {
	return HeaderSize + len(c.Payload)
}

// MarshalBinary serializes c as the frequency header, the padding count and the payload, with nothing in
// between.
func (c *Container) MarshalBinary() ([]byte, error) {
	if c.Padding > 7 {
		return nil, &ContainerError{ContainerBadPadding, fmt.Sprintf("%d", c.Padding)}
	}

	out := make([]byte, c.Size())
	for sym, f := range c.Frequencies {
		binary.BigEndian.PutUint32(out[sym*4:], f)
	}
	out[HeaderSize-1] = c.Padding
	copy(out[HeaderSize:], c.Payload)
	return out, nil
}

// ParseContainer parses the serialized form produced by MarshalBinary.  The returned Payload aliases b.
func ParseContainer(b []byte) (*Container, error) {
	if len(b) < HeaderSize {
		return nil, &ContainerError{ContainerTooShort, fmt.Sprintf("%d bytes, need at least %d", len(b), HeaderSize)}
	}

	c := &Container{}
	for sym := range c.Frequencies {
		c.Frequencies[sym] = binary.BigEndian.Uint32(b[sym*4:])
	}

	c.Padding = b[HeaderSize-1]
	if c.Padding > 7 {
		return nil, &ContainerError{ContainerBadPadding, fmt.Sprintf("%d", c.Padding)}
	}

	c.Payload = b[HeaderSize:]
	return c, nil
}

// Bits returns the payload as a bit string with the filler bits removed.
func (c *Container) Bits() (BitString, error) {
	return Unpack(c.Payload, c.Padding)
}

// Stats summarizes how much a container saved over its original input.
type Stats struct {
	OriginalSize   uint64
	CompressedSize uint64
}

func (c *Container) Stats() Stats {
	return Stats{c.Frequencies.Total(), uint64(c.Size())}
}

// Reduction returns the size saved as a percentage of the original size.  It is negative when the container
// is larger than the original, and 0 for an empty original.
func (s Stats) Reduction() float64 {
	if s.OriginalSize == 0 {
		return 0
	}
	return (1 - float64(s.CompressedSize)/float64(s.OriginalSize)) * 100
}

func (s Stats) String() string {
	return fmt.Sprintf("%d -> %d bytes (reduced size by %.2f%%)", s.OriginalSize, s.CompressedSize, s.Reduction())
}

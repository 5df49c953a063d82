// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"fmt"
	"math"
	"os"
)

// CompressContainer builds the container for data without serializing it.
func CompressContainer(data []byte) (*Container, error) {
	switch {
	case len(data) == 0:
		return nil, ErrEmptyInput
	case uint64(len(data)) > math.MaxUint32:
		return nil, ErrInputTooLarge
	}

	ft := Count(data)
	tree := BuildTree(&ft)
	codes := DeriveCodes(tree)

	bits, err := Encode(data, &codes)
	if err != nil {
		return nil, err
	}

	c := NewContainer(&ft, bits)
	log.Debugf("container: %d payload octets, %d filler bits", len(c.Payload), c.Padding)
	return c, nil
}

// Compress returns the serialized container for data.  Empty data yields ErrEmptyInput and no container.
func Compress(data []byte) ([]byte, error) {
	c, err := CompressContainer(data)
	if err != nil {
		return nil, err
	}
	return c.MarshalBinary()
}

// Decompress parses a serialized container and returns the original data.  A container whose frequency
// table is all zero decodes to empty output.
func Decompress(container []byte) ([]byte, error) {
	c, err := ParseContainer(container)
	if err != nil {
		return nil, err
	}

	bits, err := c.Bits()
	if err != nil {
		return nil, err
	}

	tree := BuildTree(&c.Frequencies)
	if tree == nil {
		log.Debugf("empty frequency table; ignoring %d payload bits", bits.BitLength)
		return []byte{}, nil
	}

	return tree.Decode(bits, c.Frequencies.Total())
}

// CompressFile reads the whole file at path and compresses it.
func CompressFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("huffman: reading input: %w", err)
	}
	return Compress(data)
}

// DecompressFile reads the whole container file at path and decompresses it.
func DecompressFile(path string) ([]byte, error) {
	container, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("huffman: reading container: %w", err)
	}
	return Decompress(container)
}

// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../../LICENSE.md.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Arshpreet07/File-compressor/digest"
	"github.com/Arshpreet07/File-compressor/huffman"
)

var ErrVerifyMismatch = errors.New("huffpack: round trip does not reproduce the input")

type options struct {
	force  bool
	verify bool
}

// writeOutput writes data to path in one go, refusing to replace an existing file unless forced.
func writeOutput(path string, data []byte, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return err
	}

	if _, err = f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// roundTrip decompresses packed and checks it against the digest of original.
func roundTrip(original, packed []byte) (digest.Digest, error) {
	want := digest.Sum(original)

	unpacked, err := huffman.Decompress(packed)
	if err != nil {
		return want, err
	}

	if got := digest.Sum(unpacked); !got.Equal(want) {
		return want, fmt.Errorf("%w: digest %v, want %v", ErrVerifyMismatch, got, want)
	}
	return want, nil
}

func compressCommand(inPath, outPath string, opts options) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	c, err := huffman.CompressContainer(data)
	if err != nil {
		return err
	}

	packed, err := c.MarshalBinary()
	if err != nil {
		return err
	}

	if opts.verify {
		d, err := roundTrip(data, packed)
		if err != nil {
			return err
		}
		log.Infof("verified %s (skein %v)", inPath, d)
	}

	if err = writeOutput(outPath, packed, opts.force); err != nil {
		return err
	}

	log.Infof("compressed %s to %s: %v", inPath, outPath, c.Stats())
	return nil
}

func decompressCommand(inPath, outPath string, opts options) error {
	data, err := huffman.DecompressFile(inPath)
	if err != nil {
		return err
	}

	if err = writeOutput(outPath, data, opts.force); err != nil {
		return err
	}

	log.Infof("decompressed %s to %s: %d bytes", inPath, outPath, len(data))
	return nil
}

func verifyCommand(inPath string, w io.Writer) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	c, err := huffman.CompressContainer(data)
	if err != nil {
		return err
	}

	packed, err := c.MarshalBinary()
	if err != nil {
		return err
	}

	d, err := roundTrip(data, packed)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s: ok skein=%v %v\n", inPath, d, c.Stats())
	return nil
}

func showCommand(inPath string, w io.Writer) error {
	raw, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	c, err := huffman.ParseContainer(raw)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s: %d symbols, %d distinct, %d payload bytes, %d filler bits\n",
		inPath, c.Frequencies.Total(), c.Frequencies.Distinct(), len(c.Payload), c.Padding)
	fmt.Fprintf(&buf, "%v\n", c.Frequencies)
	if tree := huffman.BuildTree(&c.Frequencies); tree != nil {
		fmt.Fprintf(&buf, "%v\n", tree)
	}

	_, err = w.Write(buf.Bytes())
	return err
}

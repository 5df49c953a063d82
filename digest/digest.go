// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

/*
Package digest computes fixed-size Skein digests of whole buffers, for checking that a decompressed buffer
matches its original.
*/
package digest

import (
	"crypto/subtle"
	"encoding/hex"

	"github.com/dchest/skein"
)

// Size is the digest length in bytes.
const Size = 32

type Digest [Size]byte

// Sum returns the Skein-512-256 digest of data.
func Sum(data []byte) (d Digest) {
	h := skein.New(Size, nil)
	h.Write(data)
	n, err := h.OutputReader().Read(d[:])
	if n != Size || err != nil {
		panic("pure Skein should never fail a read")
	}
	return
}

// Equal compares two digests in constant time.
func (d Digest) Equal(other Digest) bool {
	return subtle.ConstantTimeCompare(d[:], other[:]) == 1
}

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Parse decodes the hexadecimal form returned by String.
func Parse(s string) (d Digest, err error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return
	}
	if len(raw) != Size {
		err = hex.ErrLength
		return
	}
	copy(d[:], raw)
	return
}

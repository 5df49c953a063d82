// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"fmt"
	"strings"
)

// FrequencyTable holds the number of occurrences of each octet value.
type FrequencyTable [TotalSymbols]uint32

// Count tallies the octets of data.  Counters wrap past 2^32-1; Compress refuses such inputs up front.
func Count(data []byte) (ft FrequencyTable) {
	for _, b := range data {
		ft[b]++
	}
	return
}

// Total returns the sum of all counters, which is the length of the counted input.
func (ft *FrequencyTable) Total() (total uint64) {
	for _, f := range ft {
		total += uint64(f)
	}
	return
}

// Distinct returns the number of octet values with a nonzero count.
func (ft *FrequencyTable) Distinct() (n int) {
	for _, f := range ft {
		if f != 0 {
			n++
		}
	}
	return
}

// Empty returns true iff every counter is zero.
func (ft *FrequencyTable) Empty() bool {
	return ft.Distinct() == 0
}

func symbolLabel(sym int) string {
	switch {
	case sym == '\n':
		return `'\n'`
	case sym == '\t':
		return `'\t'`
	case sym < 32 || sym >= 127:
		return fmt.Sprintf("0x%02x", sym)
	default:
		return "'" + string(rune(sym)) + "'"
	}
}

func (ft FrequencyTable) String() string {
	var parts []string

	for sym, f := range ft {
		if f != 0 {
			parts = append(parts, fmt.Sprintf("\t%s: %d\n", symbolLabel(sym), f))
		}
	}

	return "FREQ{\n" + strings.Join(parts, "") + "}"
}

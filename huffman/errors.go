// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"errors"
)

var (
	ErrEmptyInput         = errors.New("huffman: empty input")
	ErrInputTooLarge      = errors.New("huffman: input too large for 32-bit frequency counters")
	ErrMalformedContainer = errors.New("huffman: malformed container")
	ErrTruncatedStream    = errors.New("huffman: truncated bit stream")
	ErrUnknownByte        = errors.New("huffman: octet has no assigned code")
)

// ContainerErrorHow describes which part of a container failed validation.
type ContainerErrorHow int

const (
	ContainerErrorUnknown ContainerErrorHow = iota
	ContainerTooShort
	ContainerBadPadding
	ContainerBadCode
	ContainerExcessData
)

// ContainerError describes a malformed container.  It matches ErrMalformedContainer under errors.Is.
type ContainerError struct {
	How    ContainerErrorHow
	Detail string
}

func (ce *ContainerError) Error() string {
	var str string
	switch ce.How {
	case ContainerErrorUnknown:
		str = "unknown problem"
	case ContainerTooShort:
		str = "container too short"
	case ContainerBadPadding:
		str = "invalid padding count"
	case ContainerBadCode:
		str = "invalid codeword"
	case ContainerExcessData:
		str = "payload longer than header allows"
	}

	str = ErrMalformedContainer.Error() + ": " + str
	if ce.Detail != "" {
		str += " (" + ce.Detail + ")"
	}
	return str
}

func (ce *ContainerError) Is(target error) bool {
	return target == ErrMalformedContainer
}

package huffman

import (
	"errors"
)

var (
	// ErrInvalidBit is returned when a bit-string contains a character
	// other than '0' or '1'.
	ErrInvalidBit = errors.New("invalid bit")

	// ErrTruncated is returned when a bit-string ends in the middle of a
	// code.
	ErrTruncated = errors.New("truncated bit-string")

	// ErrUnknownCode is returned when a bit-string contains a sequence of
	// bits that is not the prefix of any code.
	ErrUnknownCode = errors.New("unknown code")

	// ErrEmptyCode is returned when a code table assigns the empty code to
	// a symbol.
	ErrEmptyCode = errors.New("empty code")

	// ErrNotPrefixFree is returned when one code in a code table is a
	// prefix of another.
	ErrNotPrefixFree = errors.New("code table is not prefix-free")
)

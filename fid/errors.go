package fid

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is wrapped by the panic value of any query addressing a
	// position outside [0, Len()).
	ErrOutOfRange = errors.New("fid: position out of range")

	// ErrInvalidBit is wrapped by ParseError.
	ErrInvalidBit = errors.New("fid: invalid bit character")
)

// OutOfRangeError is the panic value raised by Access, Rank and Rank0.
type OutOfRangeError struct {
	Op    string
	Index uint64
	Len   uint64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("fid: %s(%d) out of range [0, %d)", e.Op, e.Index, e.Len)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// ParseError reports a character other than '0' or '1' in a bit string.
type ParseError struct {
	Pos  int
	Char rune
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fid: invalid bit %q at position %d", e.Char, e.Pos)
}

func (e *ParseError) Unwrap() error { return ErrInvalidBit }

package louds

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is wrapped by MalformedError.
	ErrMalformed = errors.New("louds: malformed bit string")

	// ErrInvalidNode is wrapped by the panic value of navigation calls given a
	// node number or index that does not address a node.
	ErrInvalidNode = errors.New("louds: invalid node")
)

// MalformedError reports a bit string that does not encode a LOUDS tree.
type MalformedError struct {
	Pos    uint64
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("louds: malformed bit string at position %d: %s", e.Pos, e.Reason)
}

func (e *MalformedError) Unwrap() error { return ErrMalformed }

// InvalidNodeError is the panic value raised for arguments outside the tree.
type InvalidNodeError struct {
	Op       string
	Arg      uint64
	NumNodes uint64
}

func (e *InvalidNodeError) Error() string {
	return fmt.Sprintf("louds: %s(%d) does not address a node (tree has %d nodes)", e.Op, e.Arg, e.NumNodes)
}

func (e *InvalidNodeError) Unwrap() error { return ErrInvalidNode }

package succinct

import (
	"github.com/hupe1980/succinct/fid"
	"github.com/hupe1980/succinct/louds"
)

// Errors surfaced by the lower layers, re-exported so callers can match them
// with errors.Is without importing fid or louds.
var (
	// ErrOutOfRange is wrapped by panics for bit positions past the end.
	ErrOutOfRange = fid.ErrOutOfRange

	// ErrInvalidBit is wrapped by errors parsing '0'/'1' strings.
	ErrInvalidBit = fid.ErrInvalidBit

	// ErrMalformed is wrapped by errors for bit strings that are not LOUDS trees.
	ErrMalformed = louds.ErrMalformed

	// ErrInvalidNode is wrapped by panics for node numbers outside the tree.
	ErrInvalidNode = louds.ErrInvalidNode
)

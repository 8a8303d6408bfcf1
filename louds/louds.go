package louds

import (
	"iter"

	"github.com/hupe1980/succinct/fid"
)

// NodeNum is the 1-based ordinal of a node in breadth-first order.
// NodeNum 1 is the tree root; 0 denotes the super-root placeholder.
type NodeNum uint64

// Index is the position of a node's incoming 1-bit in the LBS.
type Index uint64

// LOUDS is an immutable ordered tree encoded as a LOUDS bit string.
//
// A LOUDS is safe for concurrent use by multiple goroutines.
type LOUDS struct {
	lbs *fid.FID
}

// New wraps lbs, which must be a well-formed LOUDS bit string.
//
// Validation is a single pass over the bits: the string must start with "10",
// no proper prefix may contain more zeros than ones, and the whole string must
// contain exactly one more zero than ones.
func New(lbs *fid.FID) (*LOUDS, error) {
	if err := validate(lbs); err != nil {
		return nil, err
	}
	return &LOUDS{lbs: lbs}, nil
}

// Parse creates a LOUDS from a string of '0' and '1' characters.
func Parse(s string) (*LOUDS, error) {
	lbs, err := fid.Parse(s)
	if err != nil {
		return nil, err
	}
	return New(lbs)
}

// FromBits creates a LOUDS from a boolean sequence.
func FromBits(bits []bool) (*LOUDS, error) {
	return New(fid.New(bits))
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) *LOUDS {
	l, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return l
}

func validate(lbs *fid.FID) error {
	n := lbs.Len()
	if n < 2 || !lbs.Access(0) || lbs.Access(1) {
		return &MalformedError{Pos: 0, Reason: `must start with "10"`}
	}

	ones, zeros := uint64(1), uint64(1)
	for i := uint64(2); i < n; i++ {
		// Every block of children belongs to a node that already exists.
		if zeros > ones {
			return &MalformedError{Pos: i, Reason: "trailing bits after the last node"}
		}
		if lbs.Access(i) {
			ones++
		} else {
			zeros++
		}
	}
	if zeros != ones+1 {
		return &MalformedError{Pos: n, Reason: "unterminated nodes"}
	}
	return nil
}

// NumNodes returns the number of tree nodes, the root included.
func (l *LOUDS) NumNodes() uint64 {
	return l.lbs.Ones()
}

// Bits returns the wrapped LOUDS bit string.
func (l *LOUDS) Bits() *fid.FID {
	return l.lbs
}

// NodeNumToIndex returns the position of node n's incoming bit.
func (l *LOUDS) NodeNumToIndex(n NodeNum) Index {
	l.checkNodeNum("NodeNumToIndex", n)
	i, _ := l.lbs.Select(uint64(n))
	return Index(i)
}

// IndexToNodeNum returns the node whose incoming bit sits at i.
func (l *LOUDS) IndexToNodeNum(i Index) NodeNum {
	l.checkIndex("IndexToNodeNum", i)
	return NodeNum(l.lbs.Rank(uint64(i)))
}

// ChildToParent returns the parent of the node whose incoming bit sits at i.
// The parent of the root is the super-root, NodeNum 0.
func (l *LOUDS) ChildToParent(i Index) NodeNum {
	l.checkIndex("ChildToParent", i)
	return NodeNum(l.lbs.Rank0(uint64(i)))
}

// ChildRange returns the half-open index range [first, end) holding the
// incoming bits of n's children. The range is empty for a leaf.
func (l *LOUDS) ChildRange(n NodeNum) (first, end Index) {
	l.checkNodeNum("ChildRange", n)
	start, _ := l.lbs.Select0(uint64(n))
	stop, _ := l.lbs.Select0(uint64(n) + 1)
	return Index(start + 1), Index(stop)
}

// Degree returns the number of children of n.
func (l *LOUDS) Degree(n NodeNum) uint64 {
	first, end := l.ChildRange(n)
	return uint64(end - first)
}

// ParentToChildren returns the indices of n's children in order.
// The sequence may be iterated more than once.
func (l *LOUDS) ParentToChildren(n NodeNum) iter.Seq[Index] {
	first, end := l.ChildRange(n)
	return func(yield func(Index) bool) {
		for i := first; i < end; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

func (l *LOUDS) checkNodeNum(op string, n NodeNum) {
	if n == 0 || uint64(n) > l.NumNodes() {
		panic(&InvalidNodeError{Op: op, Arg: uint64(n), NumNodes: l.NumNodes()})
	}
}

// checkIndex lets fid report positions past the end and rejects 0-bits.
func (l *LOUDS) checkIndex(op string, i Index) {
	if !l.lbs.Access(uint64(i)) {
		panic(&InvalidNodeError{Op: op, Arg: uint64(i), NumNodes: l.NumNodes()})
	}
}

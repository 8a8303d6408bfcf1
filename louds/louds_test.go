package louds

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/succinct/fid"
	"github.com/hupe1980/succinct/testutil"
)

// Tree from the package documentation:
//
//	  1
//	 / \
//	2   3
//	|
//	4
const docLBS = "101101000"

func TestLOUDS_Navigation(t *testing.T) {
	l := MustParse(docLBS)

	assert.Equal(t, uint64(4), l.NumNodes())

	assert.Equal(t, Index(0), l.NodeNumToIndex(1))
	assert.Equal(t, Index(2), l.NodeNumToIndex(2))
	assert.Equal(t, Index(3), l.NodeNumToIndex(3))
	assert.Equal(t, Index(5), l.NodeNumToIndex(4))

	assert.Equal(t, NodeNum(4), l.IndexToNodeNum(5))

	assert.Equal(t, NodeNum(0), l.ChildToParent(0))
	assert.Equal(t, NodeNum(1), l.ChildToParent(2))
	assert.Equal(t, NodeNum(1), l.ChildToParent(3))
	assert.Equal(t, NodeNum(2), l.ChildToParent(5))

	assert.Equal(t, []Index{2, 3}, slices.Collect(l.ParentToChildren(1)))
	assert.Equal(t, []Index{5}, slices.Collect(l.ParentToChildren(2)))
	assert.Empty(t, slices.Collect(l.ParentToChildren(3)))
	assert.Empty(t, slices.Collect(l.ParentToChildren(4)))

	assert.Equal(t, uint64(2), l.Degree(1))
	assert.Equal(t, uint64(0), l.Degree(4))
}

func TestLOUDS_SingleNode(t *testing.T) {
	l := MustParse("100")

	assert.Equal(t, uint64(1), l.NumNodes())
	assert.Equal(t, Index(0), l.NodeNumToIndex(1))
	first, end := l.ChildRange(1)
	assert.Equal(t, first, end)
}

func TestLOUDS_ParentToChildrenRestartable(t *testing.T) {
	l := MustParse(docLBS)
	seq := l.ParentToChildren(1)

	assert.Equal(t, slices.Collect(seq), slices.Collect(seq))

	for i := range seq {
		assert.Equal(t, Index(2), i)
		break
	}
}

func TestNew_Malformed(t *testing.T) {
	for _, s := range []string{
		"",
		"1",
		"0",
		"10",
		"01",
		"110",
		"1010",      // node 2 never terminated
		"10010",     // bits after the tree is complete
		"100100",    // ditto
		"101101001", // extra child after the last block
	} {
		_, err := Parse(s)
		require.Error(t, err, s)
		assert.ErrorIs(t, err, ErrMalformed, s)
	}
}

func TestNew_InvalidCharacter(t *testing.T) {
	_, err := Parse("10a")
	assert.ErrorIs(t, err, fid.ErrInvalidBit)
}

func TestFromBits(t *testing.T) {
	l, err := FromBits([]bool{true, false, true, false, false})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), l.NumNodes())
	assert.Equal(t, "10100", l.Bits().String())
}

func TestLOUDS_InvalidArguments(t *testing.T) {
	l := MustParse(docLBS)

	assert.PanicsWithError(t, "louds: NodeNumToIndex(0) does not address a node (tree has 4 nodes)", func() {
		l.NodeNumToIndex(0)
	})
	assert.PanicsWithError(t, "louds: ChildRange(5) does not address a node (tree has 4 nodes)", func() {
		l.ParentToChildren(5)
	})
	assert.PanicsWithError(t, "louds: IndexToNodeNum(1) does not address a node (tree has 4 nodes)", func() {
		l.IndexToNodeNum(1)
	})

	// Positions past the end are reported by the bit-vector verbatim.
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, fid.ErrOutOfRange)
	}()
	l.ChildToParent(100)
}

// TestLOUDS_Identities checks index/node round trips and parent consistency
// on random well-formed bit strings.
func TestLOUDS_Identities(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for sample := 0; sample < 200; sample++ {
		s := rng.LBS(0.6)
		l, err := Parse(s)
		require.NoError(t, err, s)
		require.Equal(t, uint64(len(s)/2), l.NumNodes(), s)

		var children uint64
		for n := NodeNum(1); uint64(n) <= l.NumNodes(); n++ {
			i := l.NodeNumToIndex(n)
			require.Equal(t, n, l.IndexToNodeNum(i), "lbs=%s node=%d", s, n)

			for c := range l.ParentToChildren(n) {
				require.Equal(t, n, l.ChildToParent(c), "lbs=%s node=%d child=%d", s, n, c)
				children++
			}
		}
		// Every node but the root is somebody's child.
		require.Equal(t, l.NumNodes()-1, children, s)
	}
}

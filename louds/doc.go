// Package louds implements Level-Order Unary Degree Sequence tree navigation
// over a fid.FID.
//
// The LOUDS bit string (LBS) of an ordered tree starts with "10" for a
// super-root whose only child is the tree root, then lists every node in
// breadth-first order as one 1-bit per child followed by a 0-bit:
//
//	      1            LBS: 10 110 10 0 0
//	     / \           node 1 (root): children 2, 3
//	    2   3          node 2: child 4
//	    |              nodes 3, 4: leaves
//	    4
//
// Nodes are identified by NodeNum, the 1-based rank of their incoming 1-bit,
// and located by Index, the position of that bit. All navigation is rank and
// select arithmetic on the wrapped bit-vector:
//
//	NodeNumToIndex(n)   = Select(n)
//	IndexToNodeNum(i)   = Rank(i)
//	ChildToParent(i)    = Rank0(i)
//	ParentToChildren(n) = [Select0(n)+1, Select0(n+1))
package louds

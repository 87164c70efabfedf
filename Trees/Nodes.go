package Trees

// Node is a node in the BSTree.
// A Node exclusively owns its two subtrees; there is no parent link and
// nothing is cached, so a Node obtained from a tree is only meaningful
// until the next mutation of that tree.
type Node[T any] struct {
	v    T
	l, r *Node[T]
}

// Value held by n.
func (n *Node[T]) Value() T {
	return n.v
}

// Left child of n, nil if absent.
func (n *Node[T]) Left() *Node[T] {
	return n.l
}

// Right child of n, nil if absent.
func (n *Node[T]) Right() *Node[T] {
	return n.r
}

// minNode returns the leftmost node of the subtree rooting at n. n mustn't be nil.
// Time: O(D); Space: O(1)
func minNode[T any](n *Node[T]) *Node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// maxNode returns the rightmost node of the subtree rooting at n. n mustn't be nil.
// Time: O(D); Space: O(1)
func maxNode[T any](n *Node[T]) *Node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// buildNodes builds a height balanced subtree from s recursively. s must be sorted
// in ascending order without repeated elements. The root of each subtree is the
// element at floor((start+end)/2), which is (len(s)-1)>>1 relative to s.
// Time: O(n)
func buildNodes[T any](s []T) *Node[T] {
	if len(s) == 0 {
		return nil
	}
	mid := (len(s) - 1) >> 1
	return &Node[T]{s[mid], buildNodes(s[:mid]), buildNodes(s[mid+1:])}
}

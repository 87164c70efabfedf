package Trees

// Height of the subtree rooting at n, counted in edges. A nil node has height
// -1 and a leaf has height 0. Recursive.
// Time: O(size of the subtree)
func (u *BSTree[T]) Height(n *Node[T]) int {
	if n == nil {
		return -1
	}
	return max(u.Height(n.l), u.Height(n.r)) + 1
}

// Depth of n, the number of edges from the root to the node found by searching
// for n's value. The search is by value, not by identity: a node taken from
// another tree, or from this tree before it was modified, reports the depth of
// whichever node currently holds an equal value. Returns -1 if n is nil or no
// node holds its value.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Depth(n *Node[T]) int {
	if n == nil {
		return -1
	}
	d := 0
	for cur := u.root; cur != nil; d++ {
		if c := u.cmp(n.v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return d
		}
	}
	return -1
}

// balancedHeight returns the number of nodes on the longest downward path of
// the subtree rooting at cur, or -1 as soon as any subtree has children whose
// heights differ by more than one.
func balancedHeight[T any](cur *Node[T]) int {
	if cur == nil {
		return 0
	}
	lh := balancedHeight(cur.l)
	if lh == -1 {
		return -1
	}
	rh := balancedHeight(cur.r)
	if rh == -1 || lh-rh > 1 || rh-lh > 1 {
		return -1
	}
	return max(lh, rh) + 1
}

// IsBalanced reports whether, for every node, the heights of its two subtrees
// differ by at most one. An empty tree is balanced. Recursive.
// Time: O(n)
func (u *BSTree[T]) IsBalanced() bool {
	return balancedHeight(u.root) != -1
}

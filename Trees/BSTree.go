package Trees

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
)

// BSTree is a binary search tree with no repeated values. It is balanced when
// built and after Rebalance, but Insert and Delete never rotate, so a sequence
// of skewed insertions degrades the height D towards n. Callers that need
// O(log n) operations after bulk insertions must call Rebalance.
// The zero value isn't usable; create a BSTree with New or NewFunc.
// A BSTree isn't safe for concurrent use.
type BSTree[T any] struct {
	root *Node[T]
	cmp  func(a, b T) int
	sz   uint
}

// New builds a balanced BSTree holding the distinct elements of vs.
// vs isn't modified.
// Time: O(n log n)
func New[T constraints.Ordered](vs ...T) *BSTree[T] {
	return NewFunc(cmp.Compare[T], vs...)
}

// NewFunc is like New but orders elements with compare, which must return a
// negative number when a<b, zero when a==b and a positive number when a>b.
func NewFunc[T any](compare func(a, b T) int, vs ...T) *BSTree[T] {
	u := &BSTree[T]{cmp: compare}
	s := slices.Clone(vs)
	slices.SortFunc(s, compare)
	s = slices.CompactFunc(s, func(a, b T) bool { return compare(a, b) == 0 })
	u.build(s)
	return u
}

// build replaces all nodes of u with a balanced tree made from s, which must
// be sorted and free of duplicates.
func (u *BSTree[T]) build(s []T) {
	u.root = buildNodes(s)
	u.sz = uint(len(s))
}

// Root of the tree, nil if the tree is empty.
func (u *BSTree[T]) Root() *Node[T] {
	return u.root
}

// Size returns the number of elements in the tree.
// Time: O(1); Space: O(1)
func (u *BSTree[T]) Size() uint {
	return u.sz
}

// Clear the tree.
func (u *BSTree[T]) Clear() {
	u.root, u.sz = nil, 0
}

// insert the value v to the subtree rooting at cur recursively. cur is
// passed by reference. A successful insertion returns true. A failed insertion
// happens when the value is already in u, in which case it returns false.
func (u *BSTree[T]) insert(curPtr **Node[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		*curPtr = &Node[T]{v: v}
		return true
	}
	if c := u.cmp(v, cur.v); c < 0 {
		return u.insert(&cur.l, v)
	} else if c > 0 {
		return u.insert(&cur.r, v)
	}
	return false
}

// Insert [Tree.Insert]. Recursive. Doesn't rebalance.
// Time: O(D)
func (u *BSTree[T]) Insert(v T) bool {
	if u.insert(&u.root, v) {
		u.sz++
		return true
	}
	return false
}

// remove an element v from the subtree rooting at cur recursively. cur is
// passed by reference. Returns false if v doesn't exist in the subtree. A node
// with two children takes the value of its in-order successor, which is then
// removed from the right subtree.
// Time: O(D)
func (u *BSTree[T]) remove(curPtr **Node[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		return false
	}
	if c := u.cmp(v, cur.v); c < 0 {
		return u.remove(&cur.l, v)
	} else if c > 0 {
		return u.remove(&cur.r, v)
	}
	if cur.l == nil {
		*curPtr = cur.r
	} else if cur.r == nil {
		*curPtr = cur.l
	} else {
		cur.v = minNode(cur.r).v
		return u.remove(&cur.r, cur.v)
	}
	return true
}

// Delete [Tree.Delete]. Recursive.
// Deleting a value that isn't in the tree leaves the tree unchanged.
// Time: O(D)
func (u *BSTree[T]) Delete(v T) bool {
	if u.remove(&u.root, v) {
		u.sz--
		return true
	}
	return false
}

// Find the node holding v. Returns nil if v isn't in the tree.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Find(v T) *Node[T] {
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Has(v T) bool {
	return u.Find(v) != nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return minNode(u.root).v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return maxNode(u.root).v, true
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Predecessor(v T) (T, bool) {
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) <= 0 {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Successor(v T) (T, bool) {
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) < 0 {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// SortedSlice [Tree.SortedSlice]. Recursive.
// Time: O(n)
func (u *BSTree[T]) SortedSlice() []T {
	s := make([]T, 0, u.sz)
	inOrder(u.root, func(n *Node[T]) {
		s = append(s, n.v)
	})
	return s
}

// Rebalance discards every node and rebuilds a balanced tree from the sorted
// elements. Afterwards IsBalanced is true and D is floor(log2(n)).
// Time: O(n)
func (u *BSTree[T]) Rebalance() {
	u.build(u.SortedSlice())
}

// corrupt reports whether some value in the subtree rooting at cur is outside
// of the open interval (lo, hi). A nil bound is unbounded.
func (u *BSTree[T]) corrupt(cur *Node[T], lo, hi *T) bool {
	if cur == nil {
		return false
	}
	if (lo != nil && u.cmp(cur.v, *lo) <= 0) || (hi != nil && u.cmp(cur.v, *hi) >= 0) {
		return true
	}
	return u.corrupt(cur.l, lo, &cur.v) || u.corrupt(cur.r, &cur.v, hi)
}

// Corrupt [Tree.Corrupt]. Recursive.
// Time: O(n)
func (u *BSTree[T]) Corrupt() bool {
	return u.corrupt(u.root, nil, nil)
}

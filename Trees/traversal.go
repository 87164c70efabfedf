package Trees

import "github.com/g-m-twostay/go-bst/Queues"

// LevelOrder calls visit on every node breadth first, left child before right.
// Returns an *InvalidArgumentError when visit is nil.
// Time: O(n); Space: O(w) where w is the widest level.
func (u *BSTree[T]) LevelOrder(visit func(*Node[T])) error {
	if visit == nil {
		return nilVisitor("LevelOrder")
	}
	if u.root == nil {
		return nil
	}
	q := Queues.MakeArrayQueue[*Node[T]](u.sz/2 + 1)
	q.Push(u.root)
	for !q.Empty() {
		cur, err := q.Pop()
		if err != nil {
			return err
		}
		visit(cur)
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
	return nil
}

// PreOrder calls visit on a node before its left and then right subtree. Recursive.
// Returns an *InvalidArgumentError when visit is nil.
func (u *BSTree[T]) PreOrder(visit func(*Node[T])) error {
	if visit == nil {
		return nilVisitor("PreOrder")
	}
	preOrder(u.root, visit)
	return nil
}

// InOrder calls visit on every node in ascending order. Recursive.
// Returns an *InvalidArgumentError when visit is nil.
func (u *BSTree[T]) InOrder(visit func(*Node[T])) error {
	if visit == nil {
		return nilVisitor("InOrder")
	}
	inOrder(u.root, visit)
	return nil
}

// PostOrder calls visit on a node after its left and then right subtree. Recursive.
// Returns an *InvalidArgumentError when visit is nil.
func (u *BSTree[T]) PostOrder(visit func(*Node[T])) error {
	if visit == nil {
		return nilVisitor("PostOrder")
	}
	postOrder(u.root, visit)
	return nil
}

func preOrder[T any](cur *Node[T], visit func(*Node[T])) {
	if cur == nil {
		return
	}
	visit(cur)
	preOrder(cur.l, visit)
	preOrder(cur.r, visit)
}

func inOrder[T any](cur *Node[T], visit func(*Node[T])) {
	if cur == nil {
		return
	}
	inOrder(cur.l, visit)
	visit(cur)
	inOrder(cur.r, visit)
}

func postOrder[T any](cur *Node[T], visit func(*Node[T])) {
	if cur == nil {
		return
	}
	postOrder(cur.l, visit)
	postOrder(cur.r, visit)
	visit(cur)
}

// Values [Tree.Values]
// The iterator keeps a stack of at most D+1 nodes and never writes to the tree.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *BSTree[T]) Values() func() (T, bool) {
	var st []*Node[T]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for next := cur.r; next != nil; next = next.l {
			st = append(st, next)
		}
		return cur.v, true
	}
}

package Trees

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/xlab/treeprint"
)

// fprint writes the subtree rooting at cur rotated by 90 degrees: the right
// subtree above cur and the left subtree below it.
func fprint[T any](w *bufio.Writer, cur *Node[T], prefix string, isLeft bool) {
	if cur.r != nil {
		if isLeft {
			fprint(w, cur.r, prefix+"│   ", false)
		} else {
			fprint(w, cur.r, prefix+"    ", false)
		}
	}
	w.WriteString(prefix)
	if isLeft {
		w.WriteString("└── ")
	} else {
		w.WriteString("┌── ")
	}
	fmt.Fprintln(w, cur.v)
	if cur.l != nil {
		if isLeft {
			fprint(w, cur.l, prefix+"    ", true)
		} else {
			fprint(w, cur.l, prefix+"│   ", true)
		}
	}
}

// Fprint writes a sideways drawing of the tree to w, one value per line.
// The format is meant for people and may change.
func (u *BSTree[T]) Fprint(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if u.root != nil {
		fprint(bw, u.root, "", true)
	}
	return bw.Flush()
}

func (u *BSTree[T]) String() string {
	var sb strings.Builder
	u.Fprint(&sb)
	return sb.String()
}

func addBranches[T any](t treeprint.Tree, cur *Node[T]) {
	if cur.l != nil {
		addBranches(t.AddMetaBranch("L", cur.l.v), cur.l)
	}
	if cur.r != nil {
		addBranches(t.AddMetaBranch("R", cur.r.v), cur.r)
	}
}

// TreePrint renders the tree top down, each child labelled with the side it
// hangs from. Recursive.
func (u *BSTree[T]) TreePrint() treeprint.Tree {
	if u.root == nil {
		return treeprint.New()
	}
	t := treeprint.NewWithRoot(u.root.v)
	addBranches(t, u.root)
	return t
}

package orgtree

import (
	"fmt"
	"iter"
)

// Order is one of the three depth-first visiting orders.
type Order int

const (
	// PreOrder visits a node before either subtree (supervisor first).
	PreOrder Order = iota

	// InOrder visits the left subtree, the node, then the right subtree.
	InOrder

	// PostOrder visits both subtrees before the node (reports first).
	PostOrder
)

// Orders lists every traversal order in presentation order.
var Orders = []Order{PreOrder, InOrder, PostOrder}

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "preorder"
	case InOrder:
		return "inorder"
	case PostOrder:
		return "postorder"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder accepts "pre", "in", "post" or their "...order" spellings.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "pre", "preorder":
		return PreOrder, nil
	case "in", "inorder":
		return InOrder, nil
	case "post", "postorder":
		return PostOrder, nil
	}
	return 0, fmt.Errorf("%w: got %q", ErrInvalidOrder, s)
}

// Preorder returns the names of the subtree rooted at n, each node before its
// left and right subtrees. A nil node yields an empty slice.
func Preorder(n *Node) []string {
	return Traverse(n, PreOrder)
}

// Inorder returns the names of the subtree rooted at n: left subtree, node,
// right subtree.
func Inorder(n *Node) []string {
	return Traverse(n, InOrder)
}

// Postorder returns the names of the subtree rooted at n, each node after both
// of its subtrees.
func Postorder(n *Node) []string {
	return Traverse(n, PostOrder)
}

// Traverse returns the names of the subtree rooted at n in the given order.
func Traverse(n *Node, o Order) []string {
	return collect(n, o, 0)
}

// Preorder traverses the whole tree from its root.
func (t *Tree) Preorder() []string {
	return collect(t.root, PreOrder, t.size)
}

// Inorder traverses the whole tree from its root.
func (t *Tree) Inorder() []string {
	return collect(t.root, InOrder, t.size)
}

// Postorder traverses the whole tree from its root.
func (t *Tree) Postorder() []string {
	return collect(t.root, PostOrder, t.size)
}

// Walk returns an iterator over the tree's names in the given order.
// Breaking out of the loop stops the walk.
func (t *Tree) Walk(o Order) iter.Seq[string] {
	return func(yield func(string) bool) {
		visit(t.root, o, func(n *Node) bool {
			return yield(n.name)
		})
	}
}

func collect(n *Node, o Order, sizeHint int) []string {
	names := make([]string, 0, sizeHint)
	visit(n, o, func(n *Node) bool {
		names = append(names, n.name)
		return true
	})
	return names
}

// visit calls fn for each node of the subtree in order until fn returns false.
// An explicit stack bounds memory by tree height without using the call
// stack, so skewed chains of any length are safe.
func visit(n *Node, o Order, fn func(*Node) bool) {
	if n == nil {
		return
	}
	switch o {
	case PreOrder:
		visitPre(n, fn)
	case InOrder:
		visitIn(n, fn)
	case PostOrder:
		visitPost(n, fn)
	}
}

func visitPre(n *Node, fn func(*Node) bool) {
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(cur) {
			return
		}
		if cur.right != nil {
			stack = append(stack, cur.right)
		}
		if cur.left != nil {
			stack = append(stack, cur.left)
		}
	}
}

func visitIn(n *Node, fn func(*Node) bool) {
	var stack []*Node
	cur := n
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(cur) {
			return
		}
		cur = cur.right
	}
}

func visitPost(n *Node, fn func(*Node) bool) {
	var stack []*Node
	var last *Node
	cur := n
	for cur != nil || len(stack) > 0 {
		if cur != nil {
			stack = append(stack, cur)
			cur = cur.left
			continue
		}
		top := stack[len(stack)-1]
		if top.right != nil && top.right != last {
			cur = top.right
			continue
		}
		if !fn(top) {
			return
		}
		last = top
		stack = stack[:len(stack)-1]
	}
}

package orgtree

// Lookup returns the first node named name in pre-order, left subtree before
// right subtree, and whether one was found.
func (t *Tree) Lookup(name string) (*Node, bool) {
	n := t.find(name)
	return n, n != nil
}

// Contains reports whether any node is named name.
func (t *Tree) Contains(name string) bool {
	return t.find(name) != nil
}

// find is the parent lookup used by Insert.
func (t *Tree) find(name string) *Node {
	return findFrom(t.root, name)
}

// findFrom searches the subtree rooted at n. The whole left subtree is
// exhausted before any node of the right subtree is checked.
func findFrom(n *Node, name string) *Node {
	if n == nil {
		return nil
	}

	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur.name == name {
			return cur
		}

		// Right is pushed first so the left child pops first.
		if cur.right != nil {
			stack = append(stack, cur.right)
		}
		if cur.left != nil {
			stack = append(stack, cur.left)
		}
	}
	return nil
}

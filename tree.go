package orgtree

import "fmt"

// Tree is a reporting hierarchy. The zero value is an empty tree.
//
// A Tree is not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves.
type Tree struct {
	root *Node
	size int
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

// NewWithRoot creates a tree whose root is named name.
func NewWithRoot(name string) *Tree {
	t := New()
	t.root = newNode(name)
	t.size = 1
	return t
}

// SetRoot establishes the root node. It fails with ErrRootAlreadySet if the
// tree already has one; an existing root is never replaced.
func (t *Tree) SetRoot(name string) error {
	if t.root != nil {
		return fmt.Errorf("%w: %q", ErrRootAlreadySet, t.root.name)
	}
	t.root = newNode(name)
	t.size = 1
	return nil
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree) Root() *Node {
	return t.root
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return t.size
}

// Insert attaches a new node named child under the node named parent, in the
// given slot. Checks run in order: the side token, the parent lookup, then
// the slot. On error the tree is unchanged.
//
// The parent is the first node named parent in pre-order, left before right,
// so duplicate names always resolve to the leftmost-topmost match.
func (t *Tree) Insert(parent, child string, side Side) error {
	if !side.Valid() {
		return fmt.Errorf("%w: got %q", ErrInvalidSide, string(side))
	}

	p := t.find(parent)
	if p == nil {
		return fmt.Errorf("%w: %q", ErrParentNotFound, parent)
	}

	if !p.attach(side, newNode(child)) {
		return fmt.Errorf("%w: %q already has a %s report", ErrSlotOccupied, parent, side)
	}
	t.size++
	return nil
}

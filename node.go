package orgtree

import "fmt"

// Side selects one of a node's two report slots.
type Side string

const (
	// Left is the left report slot.
	Left Side = "left"

	// Right is the right report slot.
	Right Side = "right"
)

// Valid reports whether s is one of the two accepted side tokens.
func (s Side) Valid() bool {
	return s == Left || s == Right
}

// ParseSide converts an exact "left" or "right" token into a Side.
func ParseSide(s string) (Side, error) {
	side := Side(s)
	if !side.Valid() {
		return "", fmt.Errorf("%w: got %q", ErrInvalidSide, s)
	}
	return side, nil
}

// Node is a named member of the reporting tree.
// A node is owned by exactly one parent (or by the tree, for the root) and
// its slots only ever change from empty to occupied.
type Node struct {
	name  string
	left  *Node
	right *Node
}

func newNode(name string) *Node {
	return &Node{name: name}
}

// Name returns the node's name.
func (n *Node) Name() string {
	return n.name
}

// Left returns the left report, or nil.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right report, or nil.
func (n *Node) Right() *Node {
	return n.right
}

// Child returns the report on the given side, or nil if the slot is empty
// or the side is invalid.
func (n *Node) Child(side Side) *Node {
	switch side {
	case Left:
		return n.left
	case Right:
		return n.right
	}
	return nil
}

// IsLeaf reports whether the node has no reports.
func (n *Node) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// attach places child in the given slot. The caller has validated side.
func (n *Node) attach(side Side, child *Node) bool {
	slot := &n.left
	if side == Right {
		slot = &n.right
	}
	if *slot != nil {
		return false
	}
	*slot = child
	return true
}

// Package orgtree models a strict reporting hierarchy as a binary-branching tree
// of named nodes, with left/right report slots and the three canonical traversals.
package orgtree

import "errors"

// Insertion errors
var (
	// ErrInvalidSide indicates that a side token was neither "left" nor "right".
	ErrInvalidSide = errors.New("side must be left or right")

	// ErrParentNotFound indicates that no node carries the requested parent name.
	ErrParentNotFound = errors.New("parent not found")

	// ErrSlotOccupied indicates that the parent already has a report on the requested side.
	ErrSlotOccupied = errors.New("slot already occupied")
)

// Root errors
var (
	// ErrRootAlreadySet indicates that the tree already has a root node.
	ErrRootAlreadySet = errors.New("root already set")
)

// Traversal errors
var (
	// ErrInvalidOrder indicates that a traversal order name was not recognized.
	ErrInvalidOrder = errors.New("order must be pre, in or post")
)

package chart

import (
	"github.com/xlab/treeprint"

	"github.com/phroun/orgtree"
)

// Diagram renders the tree as an indented diagram with each report labelled
// by its side, left before right. An empty tree renders as "(empty)".
func Diagram(t *orgtree.Tree) string {
	root := t.Root()
	if root == nil {
		return "(empty)\n"
	}
	out := treeprint.NewWithRoot(root.Name())
	addReports(out, root)
	return out.String()
}

func addReports(branch treeprint.Tree, n *orgtree.Node) {
	for _, side := range []orgtree.Side{orgtree.Left, orgtree.Right} {
		child := n.Child(side)
		if child == nil {
			continue
		}
		if child.IsLeaf() {
			branch.AddMetaNode(side, child.Name())
			continue
		}
		addReports(branch.AddMetaBranch(side, child.Name()), child)
	}
}

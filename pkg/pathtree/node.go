// Package pathtree builds the navigable display tree for matched dataset
// files. Matched paths are truncated to a caller-chosen ancestor depth,
// collapsed into a prefix-sharing forest, and reconstructed back into
// absolute paths when the user accepts a selection.
package pathtree

// Node is a single entry in the display tree. Children keep first-seen
// insertion order; the name index enforces sibling uniqueness.
type Node struct {
	Name     string
	Parent   *Node
	Children []*Node

	// Checkable marks nodes that were the final component of at least one
	// input path. Only checkable nodes can be checked or labeled.
	Checkable bool
	Checked   bool
	Label     string

	byName map[string]*Node
}

// child returns the existing child with the given name, or nil.
func (n *Node) child(name string) *Node {
	if n.byName == nil {
		return nil
	}
	return n.byName[name]
}

// addChild creates and attaches a new child node, preserving sibling order.
func (n *Node) addChild(name string) *Node {
	c := &Node{Name: name, Parent: n}
	if n.byName == nil {
		n.byName = make(map[string]*Node)
	}
	n.byName[name] = c
	n.Children = append(n.Children, c)
	return c
}

// SetChecked toggles the checked state. Non-checkable nodes stay unchecked.
func (n *Node) SetChecked(checked bool) {
	if !n.Checkable {
		return
	}
	n.Checked = checked
}

// Depth returns the number of ancestors between the node and a forest root.
func (n *Node) Depth() int {
	d := 0
	for cur := n.Parent; cur != nil && cur.Name != ""; cur = cur.Parent {
		d++
	}
	return d
}

// Tree is a forest of display nodes hung off a synthetic unnamed root.
type Tree struct {
	root *Node
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{root: &Node{}}
}

// Roots returns the top-level nodes in insertion order.
func (t *Tree) Roots() []*Node {
	return t.root.Children
}

// Empty reports whether the tree holds no nodes.
func (t *Tree) Empty() bool {
	return len(t.root.Children) == 0
}

// Insert walks the given path components from the synthetic root, creating
// nodes as needed. Empty components are skipped without creating a node.
// The node for the final non-empty component is marked checkable.
func (t *Tree) Insert(segments []string) {
	last := -1
	for i, s := range segments {
		if s != "" {
			last = i
		}
	}
	node := t.root
	for i, s := range segments {
		if s == "" {
			continue
		}
		c := node.child(s)
		if c == nil {
			c = node.addChild(s)
		}
		if i == last {
			c.Checkable = true
		}
		node = c
	}
}

// Walk visits every node depth-first in insertion order.
func (t *Tree) Walk(fn func(*Node)) {
	var visit func(*Node)
	visit = func(n *Node) {
		if n.Name != "" {
			fn(n)
		}
		for _, c := range n.Children {
			visit(c)
		}
	}
	visit(t.root)
}

// CheckedNodes returns every checked node in traversal order.
func (t *Tree) CheckedNodes() []*Node {
	var checked []*Node
	t.Walk(func(n *Node) {
		if n.Checked {
			checked = append(checked, n)
		}
	})
	return checked
}

// Package picker implements the interactive dataset selection tree: matched
// paths truncated to the configured depth, rendered as a checkable tree with
// editable labels per node.
package picker

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/photocat/gcsel/pkg/pathtree"
)

// Outcome is the terminal user action of one picker run.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeAccepted
	OutcomeCancelled // user wants a fresh directory prompt
	OutcomeQuit      // user abandoned the flow entirely
)

// displayNode is a single visible line in the tree view.
type displayNode struct {
	node  *pathtree.Node
	depth int
}

// Model is the bubbletea model for the dataset picker.
type Model struct {
	tree *pathtree.Tree
	root string

	nodes        []displayNode
	cursor       int
	scrollOffset int
	width        int
	height       int
	collapsed    map[string]bool

	editing    bool
	labelInput textinput.Model

	keys          KeyMap
	help          help.Model
	statusMessage string
	outcome       Outcome
}

// New creates a picker over a populated display tree. root is the common
// root directory the tree was truncated against.
func New(tree *pathtree.Tree, root string) Model {
	ti := textinput.New()
	ti.Placeholder = "Data label..."
	ti.CharLimit = 120
	ti.Width = 40

	m := Model{
		tree:       tree,
		root:       root,
		collapsed:  make(map[string]bool),
		labelInput: ti,
		keys:       keys,
		help:       help.New(),
	}
	m.rebuildNodes()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Outcome reports how the picker run ended.
func (m Model) Outcome() Outcome {
	return m.outcome
}

// nodeID returns a stable identifier for fold tracking.
func (m Model) nodeID(n *pathtree.Node) string {
	return pathtree.Reconstruct(n, m.root)
}

// rebuildNodes flattens the tree into visible lines, skipping the children
// of collapsed branches.
func (m *Model) rebuildNodes() {
	m.nodes = m.nodes[:0]
	var visit func(n *pathtree.Node, depth int)
	visit = func(n *pathtree.Node, depth int) {
		m.nodes = append(m.nodes, displayNode{node: n, depth: depth})
		if m.collapsed[m.nodeID(n)] {
			return
		}
		for _, c := range n.Children {
			visit(c, depth+1)
		}
	}
	for _, r := range m.tree.Roots() {
		visit(r, 0)
	}
	if m.cursor >= len(m.nodes) {
		m.cursor = len(m.nodes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// currentNode returns the node under the cursor, or nil for an empty tree.
func (m Model) currentNode() *pathtree.Node {
	if m.cursor < 0 || m.cursor >= len(m.nodes) {
		return nil
	}
	return m.nodes[m.cursor].node
}

func (m Model) viewportHeight() int {
	// Header, blank line, footer, and help take up fixed rows.
	h := m.height - 6
	if h < 1 {
		h = 10
	}
	return h
}

// clampScroll keeps the cursor inside the visible window.
func (m *Model) clampScroll() {
	vh := m.viewportHeight()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+vh {
		m.scrollOffset = m.cursor - vh + 1
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

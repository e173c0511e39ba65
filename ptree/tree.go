package ptree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// --- Nodes -----------------------------------------------------------------

// Node is a labeled tree node. For an inner node the label is the
// constituent label, for a leaf it is the terminal text.
// A node exclusively owns its children.
type Node struct {
	label    string
	children []*Node
}

// Leaf creates a node without children.
func Leaf(label string) *Node {
	return &Node{label: label}
}

// NewNode creates a node with a label and children, in order.
func NewNode(label string, children ...*Node) *Node {
	n := &Node{label: label}
	if len(children) > 0 {
		n.children = make([]*Node, len(children))
		copy(n.children, children)
	}
	return n
}

// Label returns the label of a node.
func (n *Node) Label() string {
	if n == nil {
		return ""
	}
	return n.label
}

// IsLeaf is true for nodes without children.
func (n *Node) IsLeaf() bool {
	return n == nil || len(n.children) == 0
}

// ChildCount returns the number of children of n.
func (n *Node) ChildCount() int {
	if n == nil {
		return 0
	}
	return len(n.children)
}

// Child returns the i-th child of n, or nil.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children returns the children of n, in order. The slice is a copy.
func (n *Node) Children() []*Node {
	if n.IsLeaf() {
		return nil
	}
	c := make([]*Node, len(n.children))
	copy(c, n.children)
	return c
}

// Equal compares two nodes structurally: labels have to be equal, and
// children have to be equal pairwise, in order.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.label != other.label || len(n.children) != len(other.children) {
		return false
	}
	for i, ch := range n.children {
		if !ch.Equal(other.children[i]) {
			return false
		}
	}
	return true
}

// Walk visits n and all of its descendents in pre-order. f receives every
// node together with its depth, starting with 0 for n. If f returns false,
// the children of a node are skipped.
func (n *Node) Walk(f func(node *Node, depth int) bool) {
	n.walk(f, 0)
}

func (n *Node) walk(f func(*Node, int) bool, depth int) {
	if n == nil || !f(n, depth) {
		return
	}
	for _, ch := range n.children {
		ch.walk(f, depth+1)
	}
}

// Size returns the number of nodes in the tree rooted at n.
func (n *Node) Size() int {
	cnt := 0
	n.Walk(func(*Node, int) bool {
		cnt++
		return true
	})
	return cnt
}

// Leaves returns the labels of all leaves below n, left to right.
func (n *Node) Leaves() []string {
	var leaves []string
	n.Walk(func(node *Node, _ int) bool {
		if node.IsLeaf() {
			leaves = append(leaves, node.label)
		}
		return true
	})
	return leaves
}

// Depth returns the length of the longest path from n to a leaf.
func (n *Node) Depth() int {
	max := 0
	n.Walk(func(_ *Node, d int) bool {
		if d > max {
			max = d
		}
		return true
	})
	return max
}

// String returns the canonical bracket notation of a node. A leaf is
// written as its bare label, every other node as
//
//     (label child₁ child₂ … childₙ)
//
func (n *Node) String() string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if len(n.children) == 0 {
		b.WriteString(n.label)
		return
	}
	b.WriteByte('(')
	b.WriteString(n.label)
	for _, ch := range n.children {
		b.WriteByte(' ')
		ch.write(b)
	}
	b.WriteByte(')')
}

// GoString is used by fmt's %#v verb.
func (n *Node) GoString() string {
	return n.String()
}

// IndentedString returns a multi-line representation of n, with one node per
// line, indented by depth.
func (n *Node) IndentedString() string {
	var b strings.Builder
	n.Walk(func(node *Node, d int) bool {
		b.WriteString(strings.Repeat("  ", d))
		b.WriteString(node.label)
		b.WriteByte('\n')
		return true
	})
	return b.String()
}

// --- Trees -----------------------------------------------------------------

// Tree is the result of parsing one line of bracket notation.
type Tree struct {
	root *Node
}

// NewTree wraps a root node into a tree.
func NewTree(root *Node) *Tree {
	return &Tree{root: root}
}

// Root returns the root node of t.
func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// Equal compares two trees structurally.
func (t *Tree) Equal(other *Tree) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.root.Equal(other.root)
}

// String returns the canonical bracket notation of t.
func (t *Tree) String() string {
	return t.Root().String()
}

// GoString is used by fmt's %#v verb.
func (t *Tree) GoString() string {
	return t.String()
}

// Dump writes an indented representation of t to the tracer, with a given
// trace level.
func (t *Tree) Dump(level tracing.TraceLevel) {
	trace := tracer().Errorf
	switch level {
	case tracing.LevelDebug:
		trace = tracer().Debugf
	case tracing.LevelInfo:
		trace = tracer().Infof
	}
	trace("tree %s", t.String())
	for _, line := range strings.Split(strings.TrimRight(t.Root().IndentedString(), "\n"), "\n") {
		trace("  %s", line)
	}
}

package ptree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEqualNil(t *testing.T) {
	var t1, t2 *Tree
	if !t1.Equal(t2) {
		t.Errorf("expected nil trees to be equal")
	}
	if t1.Equal(MustParse("a")) || MustParse("a").Equal(t1) {
		t.Errorf("expected nil tree to differ from a tree")
	}
	if NewTree(Leaf("a")).Equal(NewTree(nil)) {
		t.Errorf("expected tree without root to differ from a leaf")
	}
}

func TestEqualLabels(t *testing.T) {
	if MustParse("(a b)").Equal(MustParse("(a c)")) {
		t.Errorf("expected leaf labels to matter")
	}
	if MustParse("(a b)").Equal(MustParse("(x b)")) {
		t.Errorf("expected inner labels to matter")
	}
	if MustParse("(a b)").Equal(MustParse("(a b c)")) {
		t.Errorf("expected child count to matter")
	}
	if MustParse("(a (b c))").Equal(MustParse("(a b c)")) {
		t.Errorf("expected nesting to matter")
	}
}

func TestSerialize(t *testing.T) {
	tree := NewTree(NewNode("S",
		NewNode("NP", Leaf("the"), Leaf("dog")),
		NewNode("VP", Leaf("barks"))))
	if s := tree.String(); s != "(S (NP the dog) (VP barks))" {
		t.Errorf("unexpected serialization %q", s)
	}
	if s := NewTree(Leaf("x")).String(); s != "x" {
		t.Errorf("expected leaf to serialize to bare label, is %q", s)
	}
}

func TestMeasures(t *testing.T) {
	root := MustParse("(S (NP (DT the) (NN dog)) (VP barks))").Root()
	if root.Size() != 8 {
		t.Errorf("expected 8 nodes, have %d", root.Size())
	}
	if root.Depth() != 3 {
		t.Errorf("expected depth 3, have %d", root.Depth())
	}
	if diff := cmp.Diff([]string{"the", "dog", "barks"}, root.Leaves()); diff != "" {
		t.Errorf("leaves mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	root := MustParse("(a (b c d) (e f))").Root()
	var visited []string
	root.Walk(func(node *Node, depth int) bool {
		visited = append(visited, node.Label())
		return node.Label() != "b"
	})
	if diff := cmp.Diff([]string{"a", "b", "e", "f"}, visited); diff != "" {
		t.Errorf("walk mismatch (-want +got):\n%s", diff)
	}
}

func TestChildrenIsACopy(t *testing.T) {
	root := MustParse("(a b c)").Root()
	children := root.Children()
	children[0] = Leaf("x")
	if root.Child(0).Label() != "b" {
		t.Errorf("expected node to be unaffected by changes to Children()")
	}
	if Leaf("x").Children() != nil {
		t.Errorf("expected leaf to have no children")
	}
}

func TestStructure(t *testing.T) {
	tree := MustParse("(a (b c))")
	want := NewNode("a", NewNode("b", Leaf("c")))
	if diff := cmp.Diff(want, tree.Root(), cmp.AllowUnexported(Node{})); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestIndentedString(t *testing.T) {
	s := MustParse("(a (b c) d)").Root().IndentedString()
	want := "a\n  b\n    c\n  d\n"
	if s != want {
		t.Errorf("expected\n%s\nhave\n%s", want, s)
	}
}

func TestDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalb.ptree")
	defer teardown()
	//
	tracer().SetTraceLevel(tracing.LevelDebug)
	MustParse("(S (NP the dog) (VP barks))").Dump(tracing.LevelDebug)
}

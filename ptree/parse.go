package ptree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
	"unicode"

	"github.com/npillmayer/evalb/scanner"
)

// Parse parses one line of bracket notation and returns the tree it
// represents. Malformed input results in an error of type *MalformedTreeError.
//
// A leading run of opening parentheses wraps the root node, as in the
// Penn Treebank's
//
//     ( (S (NP-SBJ …) (VP …)) )
//
// The wrapping parentheses are absorbed by the root node.
func Parse(line string) (*Tree, error) {
	if err := validate(line); err != nil {
		tracer().Debugf("rejecting %q: %v", line, err)
		return nil, err
	}
	tree, b := build(line)
	if b.empty {
		return nil, malformed(line, b.emptyAt, "node without a label")
	}
	rest := b.tok.Rest()
	if i := strings.IndexFunc(rest, notClosing); i >= 0 {
		pos := b.tok.Offset() + uint64(i)
		return nil, malformed(line, pos, "%q follows after root node is closed", rest[i:])
	}
	return tree, nil
}

func notClosing(r rune) bool {
	return r != ')' && !unicode.IsSpace(r)
}

// ParseLenient builds a tree from a line of input without checking it for
// well-formedness. It never fails: input without any label results in a root
// node with an empty label, unbalanced parentheses in nodes attached at an
// unintended level, and input following the close of the root node is
// ignored.
func ParseLenient(line string) *Tree {
	tree, _ := build(line)
	return tree
}

// MustParse is like Parse, but panics if line is malformed.
func MustParse(line string) *Tree {
	tree, err := Parse(line)
	if err != nil {
		panic(err)
	}
	return tree
}

func build(line string) (*Tree, *builder) {
	b := &builder{tok: scanner.NewBracketTokenizer(line)}
	root := b.node(b.tok.Offset())
	return &Tree{root: root}, b
}

// --- Tree builder ----------------------------------------------------------

// builder constructs nodes by recursive descent. The tokenizer is the cursor
// shared by all levels of recursion.
type builder struct {
	tok     *scanner.BracketTokenizer
	depth   int    // current recursion depth, for tracing
	empty   bool   // a node without a label has been built
	emptyAt uint64 // start of the first node built without a label
}

// node builds one node, which starts at byte position at. The tokenizer is
// positioned either at the start of the node's representation or behind the
// opening parenthesis of a child.
// An opening parenthesis met before the node has a label belongs to the node
// itself; after the label it opens a child. Bare labels following the node's
// label become leaf children. A closing parenthesis ends the node.
func (b *builder) node(at uint64) *Node {
	var label string
	var children []*Node
	for {
		r, ok := b.tok.Peek()
		if !ok {
			break
		}
		if r == ')' {
			b.tok.NextToken()
			break
		}
		switch {
		case unicode.IsSpace(r):
			b.tok.NextToken()
		case r == '(':
			open := b.tok.NextToken()
			if label != "" {
				b.depth++
				children = append(children, b.node(open.Span().From()))
				b.depth--
			}
		default:
			token := b.tok.NextToken()
			if label == "" {
				label = token.Lexeme()
			} else {
				children = append(children, Leaf(token.Lexeme()))
			}
		}
	}
	if label == "" && !b.empty {
		b.empty, b.emptyAt = true, at
	}
	tracer().Debugf("%*s[%d] node %q with %d children", b.depth*2, "", b.depth, label, len(children))
	return &Node{label: label, children: children}
}

/*
Package ptree builds labeled trees from bracket notation.

Bracket notation is the textual form of constituency parse trees, as
produced by treebanks and parsers:

    (S (NP the dog) (VP barks))

A node is written as an opening parenthesis, its label, its children and a
closing parenthesis. Children are either nodes of their own or bare labels,
which become leaf nodes. A line consisting of a bare label is a tree of a
single leaf.

Parse checks the input for well-formedness before building a tree and
reports malformed input as an error. ParseLenient builds a best-effort tree
for any input, as a line-oriented evaluation tool of the past did.

Whitespace separates labels; it is any rune for which unicode.IsSpace is
true, including non-breaking and ideographic spaces. Input has to be valid
UTF-8. Parse rejects invalid byte sequences, while ParseLenient replaces each
of them by U+FFFD, so the original bytes are not recoverable from its trees.

Trees are immutable. They may be compared for structural equality, and
String returns their canonical bracket notation:

    t, err := ptree.Parse("(S (NP  the dog)\t(VP barks))")
    …
    fmt.Println(t)   // (S (NP the dog) (VP barks))

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ptree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'evalb.ptree'
func tracer() tracing.Trace {
	return tracing.Select("evalb.ptree")
}

/*
Command evalb compares a file of gold trees with a file of test trees,
line by line. Trees are written in bracket notation, one tree per line:

    (S (NP (DT the) (NN dog)) (VP (VBZ barks)))

Usage:

    evalb [-d] [-p param_file] [-e max_errors] [-j workers] gold_file test_file
    evalb fmt [file]
    evalb repl

If the files differ in their number of lines, evalb reports which file has
excess lines and exits with status 1, without looking at any tree. Other
failures result in exit status 2.

evalb fmt prints every line of a file in canonical bracket notation.
evalb repl starts an interactive session, where every line entered is parsed
and displayed as a tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'evalb.cmd'
func tracer() tracing.Trace {
	return tracing.Select("evalb.cmd")
}

// tracerKeys are the trace keys of all packages, used to set a global trace level.
var tracerKeys = []string{
	"evalb.cmd",
	"evalb.config",
	"evalb.corpus",
	"evalb.ptree",
	"evalb.scanner",
	"evalb.score",
}

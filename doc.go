/*
Package evalb is a toolbox for reading and comparing labeled trees in
bracket notation, as used for constituency parse trees in computational
linguistics:

    (S (NP the dog) (VP barks))

Package structure is as follows:

■ scanner: Package scanner tokenizes bracket notation. Sub-package lexmach
adapts lexmachine as a DFA lexer for the same notation.

■ ptree: Package ptree builds trees from bracket notation, compares them
and writes them back in canonical form.

■ score: Package score defines the interface for comparing a gold tree with
a test tree, together with a summary of a whole evaluation run.

■ corpus: Package corpus reads gold and test files in lock step and
evaluates them line by line.

■ config: Package config holds the parameters of an evaluation run.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package evalb

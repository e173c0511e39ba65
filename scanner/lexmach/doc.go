/*
Package lexmach provides an adapter to use the lexmachine scanner generator for
bracket notation.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Lexmachine has to be initialized by providing literals and regular expressions.
Package lexmach is very opinionated on how to do the setup of lexmachine.
Clients who need more liberty in how to create the scanner should use their
own wrapper code to fit lexmachine into the scanner.Tokenizer interface.

	var literals []string       // The tokens representing literal strings
	var tokenIds map[string]int // A map from the token names to their int IDs

	init := func(lexer *lexmachine.Lexer) {
		// initialize lexmachine with all the necessary regular expressions
		//
		// lexmach.Skip      is a pre-defined action which ignores the scanned match
		// lexmach.MakeToken is a pre-defined action which wraps a scanned match into a
		//                   lexmachine token
	}

Having that, clients use `NewLMAdapter` to wrap lexmachine into a scanner.Tokenizer.
NewLMAdapter will return an error if compiling the DFA failed.

	LM, err := NewLMAdapter(init, literals, tokenIds)
	if err != nil {
		// do error handling
	}

BracketLexer returns an adapter readily set up for bracket notation. The
DFA is compiled once and shared; scanners are instantiated for each concrete
input sequence and implement the scanner.Tokenizer interface.

	LM, err := BracketLexer()
	…
	scan, err := LM.Scanner("(S (NP the dog) (VP barks))")
	if err != nil {
		// do error handling
	}

On the parser side tokens are read until EOF.

	for … {
		token := scan.NextToken()
		if token.TokType() != scanner.EOF {
			…
		}
	}

The DFA separates tokens at the same whitespace as the rune-based
scanner.BracketTokenizer, i.e. at runes for which unicode.IsSpace is true.
Input which is not valid UTF-8 is not matched by any rule and is reported to
the scanner's error handler.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach

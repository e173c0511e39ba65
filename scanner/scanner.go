/*
Package scanner defines an interface for scanners of bracket notation and
provides the tokenizer used by the tree builder of package ptree.

Bracket notation knows three kinds of tokens: opening and closing
parentheses, which are always tokens of their own, and labels, which are
maximal runs of characters that are neither whitespace nor parentheses.
Whitespace separates tokens and is never part of one.

An adapter for lexmachine, living in sub-package `lexmach`, tokenizes the
same notation with a DFA.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"

	"github.com/npillmayer/evalb"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'evalb.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("evalb.scanner")
}

// Token categories for bracket notation. Parentheses use their rune value
// as token type.
const (
	EOF    evalb.TokType = -1
	Space  evalb.TokType = 0
	Label  evalb.TokType = 1
	LParen evalb.TokType = '('
	RParen evalb.TokType = ')'
)

// TokTypeString returns a printable name for a token category.
func TokTypeString(t evalb.TokType) string {
	switch t {
	case EOF:
		return "EOF"
	case Space:
		return "Space"
	case Label:
		return "Label"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	}
	return fmt.Sprintf("TokType(%d)", int(t))
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() evalb.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the bracket
// tokenizer as well as the LexMachine scanner.
type DefaultToken struct {
	kind   evalb.TokType
	lexeme string
	span   evalb.Span
}

var _ evalb.Token = DefaultToken{}

func MakeDefaultToken(typ evalb.TokType, lexeme string, span evalb.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() evalb.TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() evalb.Span {
	return t.span
}

func (t DefaultToken) String() string {
	if t.kind == Label {
		return fmt.Sprintf("%q%s", t.lexeme, t.span)
	}
	return TokTypeString(t.kind) + t.span.String()
}

// IsParen is a predicate for the two runes with a meaning of their own in
// bracket notation.
func IsParen(r rune) bool {
	return r == '(' || r == ')'
}

package ptree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/evalb"
	"github.com/npillmayer/evalb/scanner"
	"github.com/npillmayer/evalb/scanner/lexmach"
)

// ErrMalformedTree is matched by all errors reporting malformed bracket
// notation.
var ErrMalformedTree = errors.New("malformed tree")

// MalformedTreeError reports input which does not represent a tree.
type MalformedTreeError struct {
	Input  string // the line of input
	Offset uint64 // byte position where the problem has been detected
	Reason string
}

func malformed(input string, offset uint64, format string, args ...interface{}) *MalformedTreeError {
	return &MalformedTreeError{
		Input:  input,
		Offset: offset,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (e *MalformedTreeError) Error() string {
	return fmt.Sprintf("malformed tree at byte %d: %s", e.Offset, e.Reason)
}

// Unwrap makes errors.Is(err, ErrMalformedTree) work.
func (e *MalformedTreeError) Unwrap() error {
	return ErrMalformedTree
}

// validate checks the token sequence of a line:
//
//  - the line has to be valid UTF-8;
//  - there has to be at least one token;
//  - parentheses have to be balanced;
//  - every opening parenthesis is followed by a label, except within the
//    run of opening parentheses the line starts with;
//  - after the root node is closed, only closing parentheses may follow.
//
// A line starting with a label has no parentheses of its own; it is closed
// by the end of input only.
func validate(line string) error {
	if pos := invalidUTF8(line); pos >= 0 {
		return malformed(line, uint64(pos), "invalid UTF-8 encoding")
	}
	lm, err := lexmach.BracketLexer()
	if err != nil {
		return fmt.Errorf("cannot create lexer: %w", err)
	}
	scan, err := lm.Scanner(line)
	if err != nil {
		return fmt.Errorf("cannot scan input: %w", err)
	}
	var scanErr error
	scan.SetErrorHandler(func(e error) {
		if scanErr == nil {
			scanErr = e
		}
	})
	var prev evalb.Token
	depth, wrap, count := 0, 0, 0
	leading, closed := true, false
	for token := scan.NextToken(); token.TokType() != scanner.EOF; token = scan.NextToken() {
		if scanErr != nil {
			return malformed(line, token.Span().From(), "cannot tokenize: %v", scanErr)
		}
		count++
		pos := token.Span().From()
		if closed && token.TokType() != scanner.RParen {
			return malformed(line, pos, "%q follows after root node is closed", token.Lexeme())
		}
		switch token.TokType() {
		case scanner.LParen:
			if leading {
				wrap++
			} else if prev.TokType() == scanner.LParen {
				return malformed(line, pos, "node without a label")
			}
			depth++
		case scanner.RParen:
			if prev != nil && prev.TokType() == scanner.LParen {
				return malformed(line, pos, "node without a label")
			}
			leading = false
			depth--
			if depth < 0 {
				return malformed(line, pos, "unbalanced parentheses: ')' without matching '('")
			}
			if depth < wrap {
				closed = true
			}
		default:
			leading = false
		}
		prev = token
	}
	if scanErr != nil {
		return malformed(line, uint64(len(line)), "cannot tokenize: %v", scanErr)
	}
	if count == 0 {
		return malformed(line, 0, "empty input")
	}
	if depth > 0 {
		return malformed(line, uint64(len(line)), "unbalanced parentheses: %d '(' not closed", depth)
	}
	return nil
}

// invalidUTF8 returns the byte position of the first invalid UTF-8 sequence
// in s, or -1.
func invalidUTF8(s string) int {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return i
			}
		}
	}
	return -1
}

package scanner

import (
	"io"
	"strings"
	"unicode"

	"github.com/npillmayer/evalb"
)

// BracketTokenizer reads tokens of bracket notation from one line of input.
// It has no state other than its position in the input, which makes it
// usable as a shared cursor for a recursive descent: a parser peeks at the
// next rune and asks the tokenizer for a token whenever it decides to
// consume one.
//
// Whitespace following a token is consumed together with the token. A read
// which starts on whitespace consumes the whitespace run only and returns a
// token of type Space with an empty lexeme.
type BracketTokenizer struct {
	input  string
	cursor *runeCursor
	Error  func(error) // error handler
}

var _ Tokenizer = (*BracketTokenizer)(nil)

// NewBracketTokenizer creates a tokenizer for a line of bracket notation.
func NewBracketTokenizer(input string) *BracketTokenizer {
	return &BracketTokenizer{
		input:  input,
		cursor: newRuneCursor(strings.NewReader(input)),
		Error:  logError,
	}
}

// SetErrorHandler sets an error handler for the scanner.
func (t *BracketTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// Peek returns the next unread rune without consuming it. It returns false
// if the input is exhausted.
func (t *BracketTokenizer) Peek() (rune, bool) {
	r, err := t.cursor.lookahead()
	if err != nil {
		return r, false
	}
	return r, true
}

// Done is true if all of the input has been consumed.
func (t *BracketTokenizer) Done() bool {
	_, ok := t.Peek()
	return !ok
}

// Offset returns the byte position of the next unread rune.
func (t *BracketTokenizer) Offset() uint64 {
	return t.cursor.offset
}

// Rest returns the part of the input which has not been consumed yet.
func (t *BracketTokenizer) Rest() string {
	return t.input[t.cursor.offset:]
}

// NextToken is part of the Tokenizer interface.
//
// Clients should peek before reading: at the end of input NextToken returns
// a token of type EOF.
func (t *BracketTokenizer) NextToken() evalb.Token {
	c0, err := t.cursor.lookahead()
	if err != nil {
		if err != io.EOF {
			t.Error(err)
		}
		return MakeDefaultToken(EOF, "", evalb.Span{t.cursor.offset, t.cursor.offset})
	}
	t.cursor.ResetOutput()
	start := t.cursor.offset
	t.cursor.match(c0)
	var kind evalb.TokType
	switch {
	case IsParen(c0):
		kind = evalb.TokType(c0)
	case unicode.IsSpace(c0):
		kind = Space
	default:
		kind = Label
		t.readLabel()
	}
	end := t.cursor.offset
	if kind != Label {
		end = start + 1
	}
	t.skipSpace()
	lexeme := strings.TrimSpace(t.cursor.OutputString())
	if kind == Space {
		end = t.cursor.offset
	}
	token := MakeDefaultToken(kind, lexeme, evalb.Span{start, end})
	tracer().Debugf("token %s", token)
	return token
}

// readLabel extends a label token up to the next whitespace or parenthesis.
// Neither of them is consumed.
func (t *BracketTokenizer) readLabel() {
	for {
		r, err := t.cursor.lookahead()
		if err != nil || unicode.IsSpace(r) || IsParen(r) {
			return
		}
		t.cursor.match(r)
	}
}

// skipSpace consumes a run of whitespace.
func (t *BracketTokenizer) skipSpace() {
	for {
		r, err := t.cursor.lookahead()
		if err != nil || !unicode.IsSpace(r) {
			return
		}
		t.cursor.skip()
	}
}

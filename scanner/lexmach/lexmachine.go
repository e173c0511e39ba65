package lexmach

import (
	"strings"
	"sync"

	"github.com/npillmayer/evalb"
	"github.com/npillmayer/evalb/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'evalb.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("evalb.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('(', ')', …) and a map for translating token strings to their values.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// --- Bracket notation ------------------------------------------------------

var literals = []string{"(", ")"}

var tokenIds = map[string]int{
	"(":     int(scanner.LParen),
	")":     int(scanner.RParen),
	"LABEL": int(scanner.Label),
}

// The DFA works on bytes. Whitespace is what unicode.IsSpace accepts, spelled
// out as UTF-8 byte sequences: ASCII whitespace, U+0085, U+00A0, U+1680,
// U+2000–U+200A, U+2028, U+2029, U+202F, U+205F and U+3000.
const spaceClass = "([ \t\n\v\f\r]" +
	"|\xc2[\x85\xa0]" +
	"|\xe1\x9a\x80" +
	"|\xe2\x80[\x80-\x8a\xa8\xa9\xaf]" +
	"|\xe2\x81\x9f" +
	"|\xe3\x80\x80)"

// A label consists of well-formed UTF-8 sequences of anything but whitespace
// and parentheses. Lead bytes 0xc2, 0xe1, 0xe2 and 0xe3 start whitespace
// sequences as well, so their continuations are enumerated.
const labelClass = "([\x00-\x08\x0e-\x1f!-'*-\x7f]" +
	"|\xc2[\x80-\x84\x86-\x9f\xa1-\xbf]" +
	"|[\xc3-\xdf][\x80-\xbf]" +
	"|\xe1([\x80-\x99\x9b-\xbf][\x80-\xbf]|\x9a[\x81-\xbf])" +
	"|\xe2([\x82-\xbf][\x80-\xbf]|\x80[\x8b-\xa7\xaa-\xae\xb0-\xbf]|\x81[\x80-\x9e\xa0-\xbf])" +
	"|\xe3([\x81-\xbf][\x80-\xbf]|\x80[\x81-\xbf])" +
	"|[\xe0\xe4-\xef][\x80-\xbf][\x80-\xbf]" +
	"|[\xf0-\xf4][\x80-\xbf][\x80-\xbf][\x80-\xbf])"

var bracketLexer *LMAdapter
var bracketErr error
var compileOnce sync.Once // monitors one-time compilation of the DFA

// BracketLexer returns a lexmachine adapter for bracket notation. The DFA is
// compiled on first use.
func BracketLexer() (*LMAdapter, error) {
	compileOnce.Do(func() {
		tracer().Infof("Creating lexer for bracket notation")
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(spaceClass+`+`), Skip)
			lexer.Add([]byte(labelClass+`+`), MakeToken("LABEL", tokenIds["LABEL"]))
		}
		bracketLexer, bracketErr = NewLMAdapter(init, literals, tokenIds)
	})
	return bracketLexer, bracketErr
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{s, logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface.
//
// Input lexmachine cannot match is reported to the error handler and skipped.
func (lms *LMScanner) NextToken() evalb.Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		pos := uint64(lms.scanner.TC)
		return scanner.MakeDefaultToken(scanner.EOF, "", evalb.Span{pos, pos})
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	return scanner.MakeDefaultToken(
		evalb.TokType(token.Type),
		string(token.Lexeme),
		evalb.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

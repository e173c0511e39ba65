package lexmach

import (
	"testing"

	"github.com/npillmayer/evalb/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"a",
	"(a b)",
	"(S (NP the dog) (VP barks))",
	"  (a\t  b   c )  ",
	"(-a- (-b- -c-))",
	"x(y)z",
}

var TokenCounts = []int{1, 4, 12, 5, 7, 5}

func TestBracketLexer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalb.scanner")
	defer teardown()
	//
	LM, err := BracketLexer()
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		sc.SetErrorHandler(func(e error) {
			t.Error(e)
		})
		token := sc.NextToken()
		count := 0
		for token.TokType() != scanner.EOF {
			t.Logf(" %6s | %15s | @%5d", scanner.TokTypeString(token.TokType()), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
		}
		if count != TokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, TokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestBracketLexerAgreesWithTokenizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalb.scanner")
	defer teardown()
	//
	LM, err := BracketLexer()
	if err != nil {
		t.Fatal(err)
	}
	input := "(ROOT (S (NP-SBJ (DT the) (NN dog)) (VP (VBZ barks)) (. .)))"
	sc, _ := LM.Scanner(input)
	bt := scanner.NewBracketTokenizer(input)
	for {
		lm := sc.NextToken()
		bracket := bt.NextToken()
		for bracket.TokType() == scanner.Space {
			bracket = bt.NextToken()
		}
		if lm.TokType() != bracket.TokType() || lm.Lexeme() != bracket.Lexeme() {
			t.Fatalf("lexers disagree: %v vs %v", lm, bracket)
		}
		if lm.TokType() == scanner.EOF {
			break
		}
		if lm.Span() != bracket.Span() {
			t.Errorf("spans differ for %q: %v vs %v", lm.Lexeme(), lm.Span(), bracket.Span())
		}
	}
}

func TestCustomAdapter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalb.scanner")
	defer teardown()
	//
	ids := map[string]int{"[": 10, "]": 11, "WORD": 12}
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`( |\t)+`), Skip)
		lexer.Add([]byte(`([a-z]|[A-Z])+`), MakeToken("WORD", ids["WORD"]))
	}
	LM, err := NewLMAdapter(init, []string{"[", "]"}, ids)
	if err != nil {
		t.Fatal(err)
	}
	sc, err := LM.Scanner("[a [b c]]")
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	for token := sc.NextToken(); token.TokType() != scanner.EOF; token = sc.NextToken() {
		count++
	}
	if count != 7 { // [ a [ b c ] ]
		t.Errorf("expected 7 tokens, have %d", count)
	}
}

func TestUnicodeWhitespace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalb.scanner")
	defer teardown()
	//
	LM, err := BracketLexer()
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		input  string
		labels []string
	}{
		{"a\tb", []string{"a", "b"}},
		{"a\u0085b\vc", []string{"a", "b", "c"}},
		{"a\u00a0b\u1680c\u2000d\u200ae\u2028f", []string{"a", "b", "c", "d", "e", "f"}},
		{"a\u2029b\u202fc\u205fd\u3000e", []string{"a", "b", "c", "d", "e"}},
		{"x\u200by", []string{"x\u200by"}}, // zero width space is no whitespace
		{"\u0084\u00a1\u1681\u200b\u2030\u2060\u3001", []string{"\u0084\u00a1\u1681\u200b\u2030\u2060\u3001"}},
		{"Straße 日本語 \U0001F600", []string{"Straße", "日本語", "\U0001F600"}},
	} {
		sc, _ := LM.Scanner(test.input)
		sc.SetErrorHandler(func(e error) {
			t.Errorf("unexpected error for %q: %v", test.input, e)
		})
		var labels []string
		for token := sc.NextToken(); token.TokType() != scanner.EOF; token = sc.NextToken() {
			labels = append(labels, token.Lexeme())
		}
		if len(labels) != len(test.labels) {
			t.Errorf("expected labels %q for %q, have %q", test.labels, test.input, labels)
			continue
		}
		for i := range labels {
			if labels[i] != test.labels[i] {
				t.Errorf("expected labels %q for %q, have %q", test.labels, test.input, labels)
				break
			}
		}
	}
}

func TestWhitespaceAgreesWithTokenizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalb.scanner")
	defer teardown()
	//
	LM, err := BracketLexer()
	if err != nil {
		t.Fatal(err)
	}
	input := "(S (NP\u3000the dog)\u0085(VP\u00a0x\u200by barks)\u2009)"
	sc, _ := LM.Scanner(input)
	bt := scanner.NewBracketTokenizer(input)
	for {
		lm := sc.NextToken()
		bracket := bt.NextToken()
		for bracket.TokType() == scanner.Space {
			bracket = bt.NextToken()
		}
		if lm.TokType() != bracket.TokType() || lm.Lexeme() != bracket.Lexeme() {
			t.Fatalf("lexers disagree: %v vs %v", lm, bracket)
		}
		if lm.TokType() == scanner.EOF {
			break
		}
		if lm.Span() != bracket.Span() {
			t.Errorf("spans differ for %q: %v vs %v", lm.Lexeme(), lm.Span(), bracket.Span())
		}
	}
}

func TestInvalidUTF8(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalb.scanner")
	defer teardown()
	//
	LM, err := BracketLexer()
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner("(a b\xff c)")
	reported := 0
	sc.SetErrorHandler(func(e error) {
		reported++
	})
	count := 0
	for token := sc.NextToken(); token.TokType() != scanner.EOF; token = sc.NextToken() {
		count++
	}
	if reported != 1 {
		t.Errorf("expected invalid byte to be reported once, reported %d times", reported)
	}
	if count != 5 {
		t.Errorf("expected the rest of the input to be scanned, have %d tokens", count)
	}
}


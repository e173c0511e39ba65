package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/evalb/ptree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pterm/pterm"
)

func writeFile(t *testing.T, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestLineCountMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalb.cmd")
	defer teardown()
	//
	gold := writeFile(t, "gold.txt", "(S (NP x) (VP y))")
	test := writeFile(t, "test.txt", "(S (NP x) (VP y))", "(S (NP x) (VP y)")
	code, stdout, stderr := run(gold, test)
	if code != exitMismatch {
		t.Errorf("expected exit code %d, have %d", exitMismatch, code)
	}
	if !strings.Contains(stderr, test+" has excess lines") {
		t.Errorf("expected diagnostic naming the test file, have %q", stderr)
	}
	if stdout != "" {
		t.Errorf("expected no report, have %q", stdout)
	}
}

func TestCompare(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalb.cmd")
	defer teardown()
	//
	gold := writeFile(t, "gold.txt", "(S (NP x) (VP y))", "(S (NP a) (VP b))")
	test := writeFile(t, "test.txt", "(S  (NP x)  (VP y))", "(S (VP a b))")
	code, stdout, stderr := run("-d", gold, test)
	if code != exitOK {
		t.Fatalf("expected success, have exit code %d: %s", code, stderr)
	}
	for _, s := range []string{"number of sentences", "exact match", "50.00 %", "match", "differ", "NP"} {
		if !strings.Contains(stdout, s) {
			t.Errorf("expected report to contain %q:\n%s", s, stdout)
		}
	}
}

func TestTooManyErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalb.cmd")
	defer teardown()
	//
	gold := writeFile(t, "gold.txt", "(S x", "(S y", "(S z)")
	test := writeFile(t, "test.txt", "(S x)", "(S y)", "(S z)")
	if code, _, stderr := run("-e", "1", gold, test); code != exitFailure {
		t.Errorf("expected exit code %d, have %d: %s", exitFailure, code, stderr)
	}
	if code, _, stderr := run("-e", "2", gold, test); code != exitOK {
		t.Errorf("expected success with 2 errors allowed, have %d: %s", code, stderr)
	}
	params := writeFile(t, "evalb.prm", "max_errors = 0", "lenient = true", "workers = 2")
	if code, _, stderr := run("-p", params, gold, test); code != exitOK {
		t.Errorf("expected lenient run to succeed, have %d: %s", code, stderr)
	}
}

func TestUsageErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalb.cmd")
	defer teardown()
	//
	if code, _, _ := run("only-one-file"); code != exitFailure {
		t.Errorf("expected missing argument to fail, have %d", code)
	}
	if code, _, _ := run("no-such-gold", "no-such-test"); code != exitFailure {
		t.Errorf("expected missing files to fail, have %d", code)
	}
	gold := writeFile(t, "gold.txt", "a")
	if code, _, _ := run("-j", "0", gold, gold); code != exitFailure {
		t.Errorf("expected invalid worker count to fail, have %d", code)
	}
}

func TestFmt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalb.cmd")
	defer teardown()
	//
	in := writeFile(t, "trees.txt", "(S  (NP\tx)   (VP y) )", "( (A b) )", "-a-")
	code, stdout, stderr := run("fmt", in)
	if code != exitOK {
		t.Fatalf("expected success, have %d: %s", code, stderr)
	}
	if stdout != "(S (NP x) (VP y))\n(A b)\n-a-\n" {
		t.Errorf("unexpected canonical form:\n%s", stdout)
	}
	bad := writeFile(t, "bad.txt", "(a b)", "(a b")
	code, stdout, stderr = run("fmt", bad)
	if code != exitFailure {
		t.Errorf("expected malformed input to fail, have %d", code)
	}
	if !strings.Contains(stderr, "bad.txt:2:") || !strings.HasSuffix(stdout, "(a b\n") {
		t.Errorf("expected malformed line to be reported and copied, have %q / %q", stderr, stdout)
	}
}

func TestCanonicalize(t *testing.T) {
	var out, errOut bytes.Buffer
	err := canonicalize(strings.NewReader("(a b) c\n"), "stdin", &out, &errOut, true)
	if err != nil || out.String() != "(a b)\n" {
		t.Errorf("expected lenient canonical form, have %q, %v", out.String(), err)
	}
}

func TestLeveledList(t *testing.T) {
	ll := leveledList(ptree.MustParse("(a (b c) d)"))
	if len(ll) != 4 || ll[2].Text != "c" || ll[2].Level != 2 || ll[3].Level != 1 {
		t.Errorf("unexpected leveled list %v", ll)
	}
}

type scriptedLines []string

func (s *scriptedLines) Readline() (string, error) {
	if len(*s) == 0 {
		return "", io.EOF
	}
	line := (*s)[0]
	*s = (*s)[1:]
	return line, nil
}

func TestREPL(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalb.cmd")
	defer teardown()
	//
	var out bytes.Buffer
	pterm.SetDefaultOutput(&out)
	defer pterm.SetDefaultOutput(os.Stdout)
	lines := scriptedLines{"(a  b)", "", "(a b)", "(a c)", "(a"}
	intp := &Intp{repl: &lines}
	intp.REPL()
	for _, s := range []string{"(a b)", "equal to previous tree", "differs from previous tree",
		"malformed tree", "Good bye!"} {
		if !strings.Contains(out.String(), s) {
			t.Errorf("expected REPL output to contain %q:\n%s", s, out.String())
		}
	}
}

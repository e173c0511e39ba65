/*
Package corpus reads a gold file and a test file in lock step and evaluates
them line by line. Line n of the test file holds the system output for the
sentence in line n of the gold file, so both files must have the same
number of lines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'evalb.corpus'
func tracer() tracing.Trace {
	return tracing.Select("evalb.corpus")
}

// maxLineLength is the longest line a corpus file may contain.
const maxLineLength = 16 * 1024 * 1024

// ErrLineCount is matched by errors reporting gold and test files of
// different length.
var ErrLineCount = errors.New("line count mismatch")

// LineCountError reports that one of the input files has more lines than the other.
type LineCountError struct {
	Excess string // name of the file with excess lines
	Other  string // name of the shorter file
	Line   int    // first excess line
}

func (e *LineCountError) Error() string {
	return fmt.Sprintf("%s has excess lines, starting at line %d (%s has %d lines)",
		e.Excess, e.Line, e.Other, e.Line-1)
}

// Unwrap makes errors.Is(err, ErrLineCount) work.
func (e *LineCountError) Unwrap() error {
	return ErrLineCount
}

// Pair is a gold line together with the corresponding test line.
type Pair struct {
	Line int // line number, starting at 1
	Gold string
	Test string
}

// ReadPairs reads gold and test input line by line. If one input has lines
// left after the other one is exhausted, ReadPairs returns a *LineCountError
// naming the input with excess lines. No line is parsed.
func ReadPairs(goldName string, gold io.Reader, testName string, test io.Reader) ([]Pair, error) {
	gs, ts := LineScanner(gold), LineScanner(test)
	var pairs []Pair
	for line := 1; ; line++ {
		g, t := gs.Scan(), ts.Scan()
		if !g || !t {
			if err := firstError(goldName, gs.Err(), testName, ts.Err()); err != nil {
				return nil, err
			}
			if g {
				return nil, &LineCountError{Excess: goldName, Other: testName, Line: line}
			} else if t {
				return nil, &LineCountError{Excess: testName, Other: goldName, Line: line}
			}
			break
		}
		pairs = append(pairs, Pair{Line: line, Gold: gs.Text(), Test: ts.Text()})
	}
	tracer().Infof("read %d line pairs from %s and %s", len(pairs), goldName, testName)
	return pairs, nil
}

// LineScanner returns a scanner splitting r into lines of up to
// maxLineLength bytes.
func LineScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	return s
}

func firstError(goldName string, goldErr error, testName string, testErr error) error {
	if goldErr != nil {
		return fmt.Errorf("cannot read %s: %w", goldName, goldErr)
	}
	if testErr != nil {
		return fmt.Errorf("cannot read %s: %w", testName, testErr)
	}
	return nil
}

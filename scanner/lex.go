package scanner

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// --- Rune cursor -----------------------------------------------------------

// runeCursor reads runes from an input with one rune of lookahead. It keeps
// track of the byte offset and collects matched runes into an output buffer.
type runeCursor struct {
	isEof   bool
	next    rune
	hasNext bool
	nextLen int
	offset  uint64 // as bytes index
	reader  io.RuneReader
	writer  strings.Builder
}

func newRuneCursor(r io.RuneReader) *runeCursor {
	return &runeCursor{
		reader: r,
	}
}

// lookahead returns the next rune without consuming it.
func (rc *runeCursor) lookahead() (r rune, err error) {
	if rc == nil || rc.isEof {
		return utf8.RuneError, io.EOF
	}
	if rc.hasNext {
		return rc.next, nil
	}
	var sz int
	r, sz, err = rc.reader.ReadRune()
	if err == io.EOF {
		rc.isEof = true
		return utf8.RuneError, io.EOF
	} else if err != nil {
		return utf8.RuneError, fmt.Errorf("scanner cannot read input (%w)", err)
	}
	rc.next, rc.nextLen, rc.hasNext = r, sz, true
	return
}

// match consumes the lookahead rune and appends it to the output.
func (rc *runeCursor) match(r rune) {
	rc.writer.WriteRune(r)
	rc.skip()
}

// skip consumes the lookahead rune without appending it to the output.
func (rc *runeCursor) skip() {
	if rc == nil || !rc.hasNext {
		panic("no lookahead to consume")
	}
	rc.offset += uint64(rc.nextLen)
	rc.hasNext = false
}

func (rc *runeCursor) OutputString() string {
	return rc.writer.String()
}

func (rc *runeCursor) ResetOutput() {
	if rc == nil {
		return
	}
	rc.writer.Reset()
}

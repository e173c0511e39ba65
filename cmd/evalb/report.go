package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/evalb/score"
	"github.com/pterm/pterm"
)

// report writes the results of an evaluation run. Per-sentence lines are
// written in debug mode only.
type report struct {
	out   io.Writer
	debug bool
	err   error // first write error
}

func (r *report) print(s string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.out, s)
}

func (r *report) header(gold, test string) {
	if !r.debug {
		return
	}
	r.print(pterm.Info.Sprintln(fmt.Sprintf("gold: %s, test: %s", gold, test)))
	r.print(fmt.Sprintf("%6s  %-8s %6s %6s %6s %6s\n", "Sent.", "Status", "Gold", "Test", "Words", "Words"))
	r.print(fmt.Sprintf("%6s  %-8s %6s %6s %6s %6s\n", "ID", "", "Nodes", "Nodes", "Gold", "Test"))
	r.print(strings.Repeat("=", 46) + "\n")
}

func (r *report) line(result score.Result) {
	if !r.debug {
		return
	}
	if result.Skipped() {
		r.print(fmt.Sprintf("%6d  %-8s %v\n", result.Line, "skip", result.Err))
		return
	}
	m := result.Metrics
	status := "differ"
	if m.Match {
		status = "match"
	} else if !m.YieldMatch {
		status = "words"
	}
	r.print(fmt.Sprintf("%6d  %-8s %6d %6d %6d %6d\n", result.Line, status,
		m.GoldNodes, m.TestNodes, m.GoldLeaves, m.TestLeaves))
}

func (r *report) summary(s *score.Summary) {
	if r.debug {
		r.print(strings.Repeat("=", 46) + "\n")
	}
	r.print(pterm.Info.Sprintln(fmt.Sprintf("number of sentences      = %6d", s.Sentences)))
	r.print(pterm.Info.Sprintln(fmt.Sprintf("number of error lines    = %6d", s.Errors)))
	r.print(pterm.Info.Sprintln(fmt.Sprintf("number of scored lines   = %6d", s.Scored())))
	r.print(pterm.Info.Sprintln(fmt.Sprintf("exact match              = %6.2f %%", 100*s.MatchRate())))
	r.print(pterm.Info.Sprintln(fmt.Sprintf("word mismatches          = %6d", s.YieldMismatches)))
	if s.Errors > 0 {
		r.print(pterm.Warning.Sprintln(fmt.Sprintf("%d line(s) skipped because of malformed trees", s.Errors)))
	}
	if !r.debug {
		return
	}
	r.print(fmt.Sprintf("\n%-12s %8s %8s\n", "Label", "Gold", "Test"))
	for _, lc := range s.Labels() {
		r.print(fmt.Sprintf("%-12s %8d %8d\n", lc.Label, lc.Gold, lc.Test))
	}
}

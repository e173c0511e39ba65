/*
Package score compares gold trees with test trees.

A Scorer receives a pair of trees for the same sentence and returns metrics
for the pair. Bracket scoring (labeled precision, recall and crossing
brackets) is not part of this package; it is intended to be plugged in as
another Scorer. The default scorer, ExactMatch, checks for structural
identity and counts nodes and leaves.

A Summary collects the results of all sentences of an evaluation run.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package score

import (
	"github.com/npillmayer/evalb/ptree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'evalb.score'
func tracer() tracing.Trace {
	return tracing.Select("evalb.score")
}

// Metrics is the result of comparing a gold tree with a test tree.
type Metrics struct {
	Match      bool // trees are structurally equal
	YieldMatch bool // trees have the same leaves, in order
	GoldNodes  int
	TestNodes  int
	GoldLeaves int
	TestLeaves int
}

// Scorer compares a gold tree with a test tree for the same sentence.
// Implementations must be safe for concurrent use.
type Scorer interface {
	Score(gold, test *ptree.Tree) Metrics
}

// ScorerFunc adapts a function to the Scorer interface.
type ScorerFunc func(gold, test *ptree.Tree) Metrics

// Score calls f(gold, test).
func (f ScorerFunc) Score(gold, test *ptree.Tree) Metrics {
	return f(gold, test)
}

// ExactMatch is the default scorer. It reports structural equality of trees
// and equality of their yields.
var ExactMatch Scorer = ScorerFunc(exactMatch)

func exactMatch(gold, test *ptree.Tree) Metrics {
	g, t := gold.Root(), test.Root()
	gleaves, tleaves := g.Leaves(), t.Leaves()
	m := Metrics{
		Match:      gold.Equal(test),
		YieldMatch: equalStrings(gleaves, tleaves),
		GoldNodes:  g.Size(),
		TestNodes:  t.Size(),
		GoldLeaves: len(gleaves),
		TestLeaves: len(tleaves),
	}
	tracer().Debugf("exact match: %v, yield match: %v", m.Match, m.YieldMatch)
	return m
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

package score

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/evalb/ptree"
)

// Result is the outcome of evaluating one line pair.
type Result struct {
	Line    int         // line number, starting at 1
	Gold    *ptree.Tree // nil if the gold line is malformed
	Test    *ptree.Tree // nil if the test line is malformed
	Metrics Metrics
	Err     error // non-nil if one of the lines could not be parsed
}

// Skipped is true if the line pair has not been scored.
func (r Result) Skipped() bool {
	return r.Err != nil
}

// LabelCount counts the occurences of a constituent label in gold and test trees.
type LabelCount struct {
	Label string
	Gold  int
	Test  int
}

// Summary aggregates the results of an evaluation run.
type Summary struct {
	Sentences       int // all line pairs
	Errors          int // line pairs skipped because of malformed trees
	Matches         int // structurally equal pairs
	YieldMismatches int // pairs with differing leaves
	GoldNodes       int
	TestNodes       int
	labels          *treemap.Map // label → *LabelCount, sorted by label
}

// NewSummary creates an empty summary.
func NewSummary() *Summary {
	return &Summary{
		labels: treemap.NewWithStringComparator(),
	}
}

// Add adds the result for a line pair to the summary.
func (s *Summary) Add(r Result) {
	s.Sentences++
	if r.Skipped() {
		s.Errors++
		return
	}
	if r.Metrics.Match {
		s.Matches++
	}
	if !r.Metrics.YieldMatch {
		s.YieldMismatches++
	}
	s.GoldNodes += r.Metrics.GoldNodes
	s.TestNodes += r.Metrics.TestNodes
	s.countLabels(r.Gold, func(lc *LabelCount) { lc.Gold++ })
	s.countLabels(r.Test, func(lc *LabelCount) { lc.Test++ })
}

// countLabels counts the labels of inner nodes.
func (s *Summary) countLabels(tree *ptree.Tree, inc func(*LabelCount)) {
	tree.Root().Walk(func(node *ptree.Node, _ int) bool {
		if node.IsLeaf() {
			return false
		}
		var lc *LabelCount
		if v, found := s.labels.Get(node.Label()); found {
			lc = v.(*LabelCount)
		} else {
			lc = &LabelCount{Label: node.Label()}
			s.labels.Put(node.Label(), lc)
		}
		inc(lc)
		return true
	})
}

// Scored returns the number of line pairs which have been scored.
func (s *Summary) Scored() int {
	return s.Sentences - s.Errors
}

// MatchRate returns the fraction of scored line pairs with equal trees.
func (s *Summary) MatchRate() float64 {
	if s.Scored() == 0 {
		return 0
	}
	return float64(s.Matches) / float64(s.Scored())
}

// Labels returns the constituent label inventory of gold and test trees,
// sorted by label.
func (s *Summary) Labels() []LabelCount {
	counts := make([]LabelCount, 0, s.labels.Size())
	it := s.labels.Iterator()
	for it.Next() {
		counts = append(counts, *it.Value().(*LabelCount))
	}
	return counts
}

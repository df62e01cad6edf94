package match

import (
	"sort"
)

// DefaultMinScore is the similarity a name needs to be suggested.
const DefaultMinScore = 0.5

// Candidate is a known property name scored against a requested one.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is sorted by score descending, then by name.
type CandidateList []Candidate

// Rank scores every known name against want and returns them best first.
// Exact normalized matches score 1.
func Rank(want string, known []string) CandidateList {
	out := make(CandidateList, 0, len(known))
	for _, name := range known {
		out = append(out, Candidate{Name: name, Score: NameSimilarity(want, name)})
	}

	sort.Sort(out)

	return out
}

// Suggest returns up to n names scoring at least DefaultMinScore.
func Suggest(want string, known []string, n int) []string {
	var out []string
	for _, c := range Rank(want, known).AboveThreshold(DefaultMinScore).Top(n) {
		out = append(out, c.Name)
	}

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the first n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil when empty.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold keeps candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var out CandidateList
	for _, cand := range c {
		if cand.Score >= threshold {
			out = append(out, cand)
		}
	}

	return out
}

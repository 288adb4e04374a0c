// Package badge holds the achievement rules as a declarative table:
// each rule is a pure predicate over a learner's progress, evaluated
// uniformly after every submission. Badges are monotonic — once a label
// is earned it is never revoked.
package badge

// Progress is the read-only view a rule judges. LatestPercentage is the
// score of the submission that triggered the evaluation.
type Progress struct {
	HistoryLength    int
	LatestPercentage int
	CorrectTotal     int
	WrongTotal       int
}

// Rule pairs a badge label with the predicate that earns it.
type Rule struct {
	Label     string
	Satisfied func(Progress) bool
}

// Rules is the fixed rule set, evaluated in order.
var Rules = []Rule{
	{
		Label:     "First Quiz Completed",
		Satisfied: func(p Progress) bool { return p.HistoryLength == 1 },
	},
	{
		Label:     "High Scorer",
		Satisfied: func(p Progress) bool { return p.LatestPercentage >= 80 },
	},
	{
		Label:     "Consistent Learner",
		Satisfied: func(p Progress) bool { return p.HistoryLength >= 5 },
	},
}

// Evaluate returns the labels of rules satisfied by p that are not
// already in earned, preserving rule order.
func Evaluate(p Progress, earned []string) []string {
	have := make(map[string]struct{}, len(earned))
	for _, label := range earned {
		have[label] = struct{}{}
	}

	var fresh []string
	for _, r := range Rules {
		if _, ok := have[r.Label]; ok {
			continue
		}
		if r.Satisfied(p) {
			fresh = append(fresh, r.Label)
		}
	}
	return fresh
}

// Package quiz holds the quiz resolution pipeline core: question types,
// prompt construction, and the cascade parser that recovers structured
// questions from free-form model output. The package is pure — no HTTP,
// no database — so every piece is unit-testable against fixed text.
package quiz

import (
	"strings"
	"time"
)

const (
	// OptionCount is the fixed number of choices every question carries
	// after normalization.
	OptionCount = 4

	// PlaceholderOption fills missing option slots.
	PlaceholderOption = "N/A"

	// DefaultTopic labels questions whose topic the model did not supply.
	DefaultTopic = "General"
)

// Question is one multiple-choice question recovered from model output.
// CorrectIndex is nil when no parsing stage could determine the answer.
type Question struct {
	Text         string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex *int     `json:"correct_index,omitempty"`
	Topic        string   `json:"topic"`
}

// Normalize enforces the structural invariants: exactly OptionCount
// options (padded or truncated), CorrectIndex valid or nil, topic never
// empty. Safe to call on any parser output.
func (q *Question) Normalize() {
	q.Text = strings.TrimSpace(q.Text)

	opts := make([]string, 0, OptionCount)
	for _, o := range q.Options {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		opts = append(opts, o)
	}
	if len(opts) > OptionCount {
		opts = opts[:OptionCount]
	}
	for len(opts) < OptionCount {
		opts = append(opts, PlaceholderOption)
	}
	q.Options = opts

	if q.CorrectIndex != nil && (*q.CorrectIndex < 0 || *q.CorrectIndex >= OptionCount) {
		q.CorrectIndex = nil
	}

	q.Topic = strings.TrimSpace(q.Topic)
	if q.Topic == "" {
		q.Topic = DefaultTopic
	}
}

// CorrectOption returns the recorded correct option text, or "" when the
// correct answer is unknown.
func (q Question) CorrectOption() string {
	if q.CorrectIndex == nil {
		return ""
	}
	return q.Options[*q.CorrectIndex]
}

// Quiz is one generated quiz held in session state. RawText keeps the
// oracle output it was derived from, also when parsing succeeded.
type Quiz struct {
	Topic     string     `json:"topic"`
	Questions []Question `json:"questions"`
	RawText   string     `json:"raw_text"`
	CreatedAt time.Time  `json:"created_at"`
}

// AnswerSet maps question index to the learner's answer text. Built
// incrementally while the learner works through the quiz.
type AnswerSet map[int]string

// Verdict is the local grading outcome for a single question.
type Verdict int

const (
	// VerdictIncorrect covers wrong and missing answers alike.
	VerdictIncorrect Verdict = iota
	VerdictCorrect
	// VerdictUnknown means the quiz carries no correct answer for the
	// question, so local comparison cannot decide.
	VerdictUnknown
)

// Judge compares a learner answer against the question's recorded
// correct option: case-insensitive, whitespace-trimmed. An answer that
// is a bare option letter (A-D) is resolved to the option it labels.
func (q Question) Judge(answer string) Verdict {
	if q.CorrectIndex == nil {
		return VerdictUnknown
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return VerdictIncorrect
	}
	if idx, ok := letterIndex(answer); ok {
		if idx == *q.CorrectIndex {
			return VerdictCorrect
		}
		return VerdictIncorrect
	}
	if strings.EqualFold(answer, strings.TrimSpace(q.CorrectOption())) {
		return VerdictCorrect
	}
	return VerdictIncorrect
}

// letterIndex maps a single option letter A-D (any case) to its index.
func letterIndex(s string) (int, bool) {
	if len(s) != 1 {
		return 0, false
	}
	c := s[0]
	switch {
	case c >= 'A' && c < 'A'+OptionCount:
		return int(c - 'A'), true
	case c >= 'a' && c < 'a'+OptionCount:
		return int(c - 'a'), true
	}
	return 0, false
}

// GradeResult is the immutable outcome of one submission.
type GradeResult struct {
	Score       int      `json:"score"`
	Total       int      `json:"total"`
	Percentage  int      `json:"percentage"`
	WeakTopics  []string `json:"weak_topics"`
	Remediation string   `json:"remediation,omitempty"`
}

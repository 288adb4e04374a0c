package quiz

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// The oracle promises nothing about its output shape, so parsing is an
// ordered cascade of strategies, strict to permissive. The first stage
// that recovers at least one well-formed question wins; exhaustion means
// the caller gets zero questions and keeps the raw text for inspection.

type stage struct {
	name string
	run  func(string) []Question
}

var stages = []stage{
	{"json", parseJSON},
	{"embedded-json", parseEmbeddedJSON},
	{"lines", parseLines},
	{"blocks", parseBlocks},
}

// Parse runs the cascade over raw oracle text and returns the recovered
// questions, normalized and in source order. A nil result means every
// stage failed; Parse never returns an error and never panics on any
// input.
func Parse(raw string) []Question {
	text := stripFences(raw)
	for _, s := range stages {
		qs := s.run(text)
		if len(qs) == 0 {
			continue
		}
		for i := range qs {
			qs[i].Normalize()
		}
		log.Debug().Str("stage", s.name).Int("questions", len(qs)).Msg("Recovered questions from oracle response")
		return qs
	}
	log.Warn().Int("raw_len", len(raw)).Msg("No parser stage recovered questions from oracle response")
	return nil
}

var fenceRe = regexp.MustCompile("(?m)^\\s*```[a-zA-Z]*\\s*$")

// stripFences drops markdown code-fence lines so fenced JSON decodes as
// if it were bare.
func stripFences(s string) string {
	return strings.TrimSpace(fenceRe.ReplaceAllString(s, ""))
}

// rawQuestion accepts the field-name variants the oracle has been seen
// to use, normalized into Question by toQuestion.
type rawQuestion struct {
	Question      string          `json:"question"`
	Prompt        string          `json:"prompt"`
	Text          string          `json:"text"`
	Options       []string        `json:"options"`
	Choices       []string        `json:"choices"`
	Correct       json.RawMessage `json:"correct"`
	Answer        json.RawMessage `json:"answer"`
	CorrectIndex  json.RawMessage `json:"correct_index"`
	CorrectAnswer json.RawMessage `json:"correct_answer"`
	Topic         string          `json:"topic"`
	Subject       string          `json:"subject"`
}

func (r rawQuestion) toQuestion() Question {
	text := r.Question
	if text == "" {
		text = r.Prompt
	}
	if text == "" {
		text = r.Text
	}

	opts := r.Options
	if len(opts) == 0 {
		opts = r.Choices
	}

	topic := r.Topic
	if topic == "" {
		topic = r.Subject
	}

	q := Question{Text: text, Options: opts, Topic: topic}
	for _, m := range []json.RawMessage{r.Correct, r.Answer, r.CorrectIndex, r.CorrectAnswer} {
		if idx := decodeCorrect(m, opts); idx != nil {
			q.CorrectIndex = idx
			break
		}
	}
	return q
}

// decodeCorrect interprets a "correct answer" JSON value: a number is a
// 0-based index, a letter A-D is converted to its index, and any other
// string is matched against the option texts.
func decodeCorrect(raw json.RawMessage, options []string) *int {
	if len(raw) == 0 {
		return nil
	}

	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return &n
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	s = strings.TrimSpace(s)
	if idx, ok := letterIndex(s); ok {
		return &idx
	}
	if parsed, err := strconv.Atoi(s); err == nil {
		return &parsed
	}
	for i, opt := range options {
		if strings.EqualFold(strings.TrimSpace(opt), s) {
			idx := i
			return &idx
		}
	}
	return nil
}

// parseJSON decodes the whole text as a question array, accepting both a
// bare array and a {"questions": [...]} wrapper.
func parseJSON(text string) []Question {
	var raws []rawQuestion
	if err := json.Unmarshal([]byte(text), &raws); err != nil {
		var wrapper struct {
			Questions []rawQuestion `json:"questions"`
		}
		if err := json.Unmarshal([]byte(text), &wrapper); err != nil {
			return nil
		}
		raws = wrapper.Questions
	}

	questions := make([]Question, 0, len(raws))
	for _, r := range raws {
		q := r.toQuestion()
		if strings.TrimSpace(q.Text) == "" {
			continue
		}
		questions = append(questions, q)
	}
	return questions
}

// parseEmbeddedJSON rescues a JSON array the oracle wrapped in prose: it
// takes the first balanced bracketed substring and retries the strict
// decode on that alone.
func parseEmbeddedJSON(text string) []Question {
	sub, ok := firstBracketedList(text)
	if !ok {
		return nil
	}
	return parseJSON(sub)
}

// firstBracketedList returns the first balanced [...] substring,
// ignoring brackets inside string literals.
func firstBracketedList(text string) (string, bool) {
	start := strings.IndexByte(text, '[')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

var (
	// "Q1:", "Question 2)", "q3." — separator optional after the Q form.
	qNumRe = regexp.MustCompile(`(?i)^q(?:uestion)?\s*\d+\s*[\.\):\-]?\s*(.*)$`)
	// "1. ...", "2) ..." — separator required so a bare number does not
	// swallow ordinary prose.
	numRe = regexp.MustCompile(`^\d+\s*[\.\)]\s*(.+)$`)
	// "A. text", "B) text", "(c) text", "d: text"
	optionRe = regexp.MustCompile(`^\(?([A-Da-d])[\.\):]\s*(.+)$`)
	// "Answer: B", "Correct answer - 2", "Answer: (c)"
	answerRe = regexp.MustCompile(`(?i)^(?:answer|correct(?:\s*answer)?)\s*[:\-]?\s*\(?([A-Da-d0-9])\)?`)
)

// markerIndex resolves an answer-marker token: letters map directly,
// digits are taken as 1-based positions (the common prose convention),
// with 0 accepted as "first option".
func markerIndex(token string) *int {
	if idx, ok := letterIndex(token); ok {
		return &idx
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return nil
	}
	switch {
	case n >= 1 && n <= OptionCount:
		n--
		return &n
	case n == 0:
		return &n
	}
	return nil
}

// heuristicKeep decides whether a question assembled by the text stages
// is trustworthy enough to emit. Requiring real options prevents the
// line heuristics from fabricating a quiz out of prose that merely
// contains a question mark.
func heuristicKeep(q Question) bool {
	return strings.TrimSpace(q.Text) != "" && len(q.Options) >= 2
}

// parseLines groups the response line by line: question-number patterns
// (or a trailing "?") open a new question, option labels collect
// options, answer markers set the correct index, and anything else is a
// continuation of the nearest text so no content is dropped mid-block.
func parseLines(text string) []Question {
	var questions []Question
	var cur *Question

	flush := func() {
		if cur != nil && heuristicKeep(*cur) {
			questions = append(questions, *cur)
		}
		cur = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := answerRe.FindStringSubmatch(line); m != nil {
			if cur != nil {
				if idx := markerIndex(m[1]); idx != nil {
					cur.CorrectIndex = idx
				}
			}
			continue
		}
		if m := optionRe.FindStringSubmatch(line); m != nil && cur != nil {
			cur.Options = append(cur.Options, m[2])
			continue
		}
		if m := qNumRe.FindStringSubmatch(line); m != nil {
			flush()
			cur = &Question{Text: strings.TrimSpace(m[1])}
			continue
		}
		if m := numRe.FindStringSubmatch(line); m != nil {
			flush()
			cur = &Question{Text: strings.TrimSpace(m[1])}
			continue
		}
		if strings.HasSuffix(line, "?") && (cur == nil || len(cur.Options) > 0) {
			flush()
			cur = &Question{Text: line}
			continue
		}

		// Continuation line: belongs to the latest option if options
		// have started, otherwise to the question text.
		if cur == nil {
			continue
		}
		if len(cur.Options) > 0 {
			cur.Options[len(cur.Options)-1] += " " + line
		} else if cur.Text == "" {
			cur.Text = line
		} else {
			cur.Text += " " + line
		}
	}
	flush()
	return questions
}

// parseBlocks is the last-resort text stage: blank-line-delimited blocks
// with at least five lines are read as question + four options, with the
// rest of the block scanned for an answer marker.
func parseBlocks(text string) []Question {
	var questions []Question
	for _, block := range regexp.MustCompile(`\n\s*\n`).Split(text, -1) {
		var lines []string
		for _, l := range strings.Split(block, "\n") {
			if l = strings.TrimSpace(l); l != "" {
				lines = append(lines, l)
			}
		}
		if len(lines) < 5 {
			continue
		}

		q := Question{Text: lines[0]}
		for _, l := range lines[1:5] {
			if m := optionRe.FindStringSubmatch(l); m != nil {
				q.Options = append(q.Options, m[2])
			} else {
				q.Options = append(q.Options, l)
			}
		}
		for _, l := range lines[5:] {
			if m := answerRe.FindStringSubmatch(l); m != nil {
				if idx := markerIndex(m[1]); idx != nil {
					q.CorrectIndex = idx
				}
				break
			}
		}
		if heuristicKeep(q) {
			questions = append(questions, q)
		}
	}
	return questions
}

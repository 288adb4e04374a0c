package quiz

import (
	"fmt"
	"strings"

	"github.com/mvtien/studybuddy/internal/apperr"
)

const (
	// DefaultQuestionCount is used when the caller does not ask for a
	// specific quiz length.
	DefaultQuestionCount = 5

	// MaxQuestionCount caps a single generation request.
	MaxQuestionCount = 20
)

// BuildQuizPrompt builds the generation prompt for a quiz on the given
// topic or lecture transcript. Exactly one of topic/transcript must be
// non-empty after trimming; otherwise apperr.ErrInvalidInput is returned
// and no oracle call should be made.
//
// The prompt asks for a JSON array with known field names and, in the
// same breath, for a numbered plain-text layout should the model refuse
// structured output. The parser cascade consumes either shape.
func BuildQuizPrompt(topic, transcript string, count int) (string, error) {
	topic = strings.TrimSpace(topic)
	transcript = strings.TrimSpace(transcript)
	if topic == "" && transcript == "" {
		return "", apperr.Wrapf(apperr.ErrInvalidInput, "quiz generation needs a topic or a transcript")
	}

	if count <= 0 {
		count = DefaultQuestionCount
	}
	if count > MaxQuestionCount {
		count = MaxQuestionCount
	}

	var sb strings.Builder
	if transcript != "" {
		sb.WriteString(fmt.Sprintf("Generate %d multiple choice questions based on the following lecture transcript.\n\n", count))
		sb.WriteString("Transcript:\n---\n")
		sb.WriteString(transcript)
		sb.WriteString("\n---\n\n")
	} else {
		sb.WriteString(fmt.Sprintf("Generate %d multiple choice questions about: %s\n\n", count, topic))
	}

	sb.WriteString("Requirements:\n")
	sb.WriteString("- Each question must have exactly 4 options.\n")
	sb.WriteString("- Incorrect options should be plausible but clearly wrong.\n")
	sb.WriteString("- Tag each question with a short topic label.\n\n")

	sb.WriteString("Respond with a JSON array only, one object per question, using exactly these fields:\n")
	sb.WriteString(`[{"question": "...", "options": ["...", "...", "...", "..."], "correct": 0, "topic": "..."}]` + "\n")
	sb.WriteString("\"correct\" is the 0-based index of the right option.\n\n")

	sb.WriteString("If you cannot produce JSON, fall back to numbered questions, ")
	sb.WriteString("options labelled A) to D), and a line \"Answer: <letter>\" after each question.\n")

	return sb.String(), nil
}

// BuildJudgePrompt asks the oracle to decide whether a learner answer is
// correct for a question whose answer key the parser could not recover.
func BuildJudgePrompt(q Question, answer string) (string, error) {
	if strings.TrimSpace(q.Text) == "" {
		return "", apperr.Wrapf(apperr.ErrInvalidInput, "cannot judge an empty question")
	}

	var sb strings.Builder
	sb.WriteString("You are grading one multiple choice answer.\n\n")
	sb.WriteString("Question: ")
	sb.WriteString(q.Text)
	sb.WriteString("\nOptions:\n")
	for i, opt := range q.Options {
		sb.WriteString(fmt.Sprintf("%c) %s\n", 'A'+i, opt))
	}
	sb.WriteString("\nLearner's answer: ")
	sb.WriteString(strings.TrimSpace(answer))
	sb.WriteString("\n\nReply with the single word CORRECT or INCORRECT.\n")
	return sb.String(), nil
}

// BuildRemediationPrompt asks for study tips covering the learner's weak
// topics after a graded submission.
func BuildRemediationPrompt(topics []string) (string, error) {
	cleaned := make([]string, 0, len(topics))
	for _, t := range topics {
		if t = strings.TrimSpace(t); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	if len(cleaned) == 0 {
		return "", apperr.Wrapf(apperr.ErrInvalidInput, "no weak topics to remediate")
	}
	return fmt.Sprintf(
		"Provide actionable study tips for the following weak topics: %s.\nKeep the advice short and concrete, a few sentences per topic.",
		strings.Join(cleaned, ", "),
	), nil
}

// BuildNotesPrompt asks for concise study notes over a lecture transcript.
func BuildNotesPrompt(transcript string) (string, error) {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return "", apperr.Wrapf(apperr.ErrInvalidInput, "transcript is empty")
	}
	var sb strings.Builder
	sb.WriteString("Summarize the following lecture transcript into clear, well-organized study notes. ")
	sb.WriteString("Use short bullet points grouped under headings.\n\nTranscript:\n---\n")
	sb.WriteString(transcript)
	sb.WriteString("\n---\n")
	return sb.String(), nil
}

// BuildExplainPrompt asks the oracle to explain a concept or answer a
// free-form study question.
func BuildExplainPrompt(question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", apperr.Wrapf(apperr.ErrInvalidInput, "study question is empty")
	}
	return fmt.Sprintf(
		"You are a patient study tutor. Explain the following clearly, with a small example where it helps:\n\n%s",
		question,
	), nil
}

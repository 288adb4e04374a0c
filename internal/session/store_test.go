package session_test

import (
	"errors"
	"testing"

	"github.com/mvtien/studybuddy/internal/apperr"
	"github.com/mvtien/studybuddy/internal/quiz"
	"github.com/mvtien/studybuddy/internal/session"
)

func sampleQuiz() *quiz.Quiz {
	return &quiz.Quiz{
		Topic: "Chemistry",
		Questions: []quiz.Question{
			{Text: "q1", Options: []string{"a", "b", "c", "d"}},
			{Text: "q2", Options: []string{"a", "b", "c", "d"}},
		},
	}
}

func TestStoreQuizLifecycle(t *testing.T) {
	store := session.NewStore()

	if _, ok := store.Quiz("sid"); ok {
		t.Fatal("expected no quiz in a fresh session")
	}

	store.SetQuiz("sid", sampleQuiz())
	qz, ok := store.Quiz("sid")
	if !ok {
		t.Fatal("expected quiz after SetQuiz")
	}
	if qz.Topic != "Chemistry" {
		t.Errorf("unexpected quiz topic %q", qz.Topic)
	}

	store.Clear("sid")
	if _, ok := store.Quiz("sid"); ok {
		t.Error("expected no quiz after Clear")
	}
}

func TestStoreRecordAnswer(t *testing.T) {
	store := session.NewStore()

	err := store.RecordAnswer("sid", 0, "a")
	if !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without a quiz, got %v", err)
	}

	store.SetQuiz("sid", sampleQuiz())

	if err := store.RecordAnswer("sid", 0, "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.RecordAnswer("sid", 2, "a"); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for out-of-range index, got %v", err)
	}
	if err := store.RecordAnswer("sid", -1, "a"); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for negative index, got %v", err)
	}

	// Recording again overwrites the previous answer.
	if err := store.RecordAnswer("sid", 0, "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answers := store.Answers("sid"); answers[0] != "b" {
		t.Errorf("expected overwritten answer %q, got %q", "b", answers[0])
	}
}

func TestStoreAnswersReturnsCopy(t *testing.T) {
	store := session.NewStore()
	store.SetQuiz("sid", sampleQuiz())
	if err := store.RecordAnswer("sid", 0, "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	answers := store.Answers("sid")
	answers[0] = "mutated"

	if fresh := store.Answers("sid"); fresh[0] != "a" {
		t.Errorf("store state leaked through the returned map: %q", fresh[0])
	}
}

func TestStoreSetQuizResetsAnswers(t *testing.T) {
	store := session.NewStore()
	store.SetQuiz("sid", sampleQuiz())
	if err := store.RecordAnswer("sid", 0, "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store.SetQuiz("sid", sampleQuiz())
	if answers := store.Answers("sid"); len(answers) != 0 {
		t.Errorf("expected answers reset by a new quiz, got %v", answers)
	}
}

func TestStoreClearAnswersKeepsQuiz(t *testing.T) {
	store := session.NewStore()
	store.SetQuiz("sid", sampleQuiz())
	if err := store.RecordAnswer("sid", 1, "c"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store.ClearAnswers("sid")

	if answers := store.Answers("sid"); len(answers) != 0 {
		t.Errorf("expected empty answers, got %v", answers)
	}
	if _, ok := store.Quiz("sid"); !ok {
		t.Error("expected quiz to survive ClearAnswers")
	}
}

func TestStoreSessionsAreIsolated(t *testing.T) {
	store := session.NewStore()
	store.SetQuiz("alpha", sampleQuiz())

	if _, ok := store.Quiz("beta"); ok {
		t.Error("session beta should not see session alpha's quiz")
	}
	if err := store.RecordAnswer("beta", 0, "a"); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for session without quiz, got %v", err)
	}
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mvtien/studybuddy/internal/apperr"
	"github.com/mvtien/studybuddy/internal/dto"
	"github.com/mvtien/studybuddy/internal/quiz"
	"github.com/mvtien/studybuddy/internal/service"
	"github.com/mvtien/studybuddy/internal/session"
)

const quizJSON = `[
	{"question":"What is H2O?","options":["Salt","Water","Oxygen","Gold"],"correct":1,"topic":"Chemistry"},
	{"question":"2+2?","options":["3","4","5","6"],"correct":1,"topic":"Arithmetic"}
]`

func TestGenerateParsesOracleOutput(t *testing.T) {
	oracle := &stubOracle{reply: quizJSON}
	sessions := session.NewStore()
	svc := service.NewQuizService(oracle, sessions)

	resp, err := svc.Generate(context.Background(), "sid", dto.GenerateQuizRequest{Topic: "Science", Count: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !resp.Parsed {
		t.Fatal("expected a parsed quiz")
	}
	if resp.Topic != "Science" {
		t.Errorf("unexpected topic %q", resp.Topic)
	}
	if len(resp.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(resp.Questions))
	}
	for i, q := range resp.Questions {
		if q.Index != i {
			t.Errorf("question %d carries index %d", i, q.Index)
		}
	}
	if resp.Questions[0].Text != "What is H2O?" {
		t.Errorf("unexpected first question: %q", resp.Questions[0].Text)
	}
	if resp.RawText != "" {
		t.Errorf("raw text should not be exposed on success, got %q", resp.RawText)
	}

	if _, ok := sessions.Quiz("sid"); !ok {
		t.Error("expected the quiz stored in the session")
	}
}

func TestGenerateUnparseableOutput(t *testing.T) {
	raw := "I was not able to put together a quiz right now."
	oracle := &stubOracle{reply: raw}
	sessions := session.NewStore()
	svc := service.NewQuizService(oracle, sessions)

	// An earlier quiz must not survive a failed generation.
	installQuiz(t, sessions, "sid", []quiz.Question{keyedQuestion("old", "History", 0)}, nil)

	resp, err := svc.Generate(context.Background(), "sid", dto.GenerateQuizRequest{Topic: "Science"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Parsed {
		t.Error("expected parsed=false for unstructured output")
	}
	if len(resp.Questions) != 0 {
		t.Errorf("expected no questions, got %d", len(resp.Questions))
	}
	if resp.RawText != raw {
		t.Errorf("expected the raw oracle text on the response, got %q", resp.RawText)
	}

	if _, ok := sessions.Quiz("sid"); ok {
		t.Error("expected the previous session quiz discarded")
	}
}

func TestGenerateRequiresTopicOrTranscript(t *testing.T) {
	oracle := &stubOracle{}
	svc := service.NewQuizService(oracle, session.NewStore())

	_, err := svc.Generate(context.Background(), "sid", dto.GenerateQuizRequest{})
	if !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(oracle.prompts) != 0 {
		t.Errorf("expected no oracle call on invalid input, got %d", len(oracle.prompts))
	}
}

func TestGenerateOracleFailure(t *testing.T) {
	oracle := &stubOracle{err: apperr.Wrapf(apperr.ErrOracleUnavailable, "timeout")}
	svc := service.NewQuizService(oracle, session.NewStore())

	_, err := svc.Generate(context.Background(), "sid", dto.GenerateQuizRequest{Topic: "Science"})
	if !errors.Is(err, apperr.ErrOracleUnavailable) {
		t.Fatalf("expected ErrOracleUnavailable, got %v", err)
	}
}

func TestGenerateTranscriptTopicLabel(t *testing.T) {
	oracle := &stubOracle{reply: quizJSON}
	svc := service.NewQuizService(oracle, session.NewStore())

	resp, err := svc.Generate(context.Background(), "sid", dto.GenerateQuizRequest{Transcript: "cells divide by mitosis"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Topic != service.TranscriptTopic {
		t.Errorf("expected topic %q for transcript quizzes, got %q", service.TranscriptTopic, resp.Topic)
	}
}

func TestCurrentWithoutQuiz(t *testing.T) {
	svc := service.NewQuizService(&stubOracle{}, session.NewStore())

	_, err := svc.Current("sid")
	if !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCurrentReturnsStoredQuiz(t *testing.T) {
	oracle := &stubOracle{reply: quizJSON}
	sessions := session.NewStore()
	svc := service.NewQuizService(oracle, sessions)

	if _, err := svc.Generate(context.Background(), "sid", dto.GenerateQuizRequest{Topic: "Science"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := svc.Current("sid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Questions) != 2 || resp.Topic != "Science" {
		t.Errorf("unexpected current quiz: %+v", resp)
	}
}

func TestRecordAnswerValidation(t *testing.T) {
	oracle := &stubOracle{reply: quizJSON}
	sessions := session.NewStore()
	svc := service.NewQuizService(oracle, sessions)

	if _, err := svc.Generate(context.Background(), "sid", dto.GenerateQuizRequest{Topic: "Science"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	zero := 0
	if err := svc.RecordAnswer("sid", dto.RecordAnswerRequest{QuestionIndex: nil, Answer: "Water"}); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for missing index, got %v", err)
	}
	if err := svc.RecordAnswer("sid", dto.RecordAnswerRequest{QuestionIndex: &zero, Answer: "  "}); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for blank answer, got %v", err)
	}
	if err := svc.RecordAnswer("sid", dto.RecordAnswerRequest{QuestionIndex: &zero, Answer: "Water"}); err != nil {
		t.Errorf("unexpected error for a valid answer: %v", err)
	}
	if answers := sessions.Answers("sid"); answers[0] != "Water" {
		t.Errorf("expected recorded answer, got %v", answers)
	}
}

func TestClearDropsSessionQuiz(t *testing.T) {
	oracle := &stubOracle{reply: quizJSON}
	sessions := session.NewStore()
	svc := service.NewQuizService(oracle, sessions)

	if _, err := svc.Generate(context.Background(), "sid", dto.GenerateQuizRequest{Topic: "Science"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	svc.Clear("sid")
	if _, ok := sessions.Quiz("sid"); ok {
		t.Error("expected no quiz after Clear")
	}
}

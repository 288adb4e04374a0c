package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mvtien/studybuddy/internal/apperr"
	"github.com/mvtien/studybuddy/internal/service"
)

func TestExplain(t *testing.T) {
	oracle := &stubOracle{reply: "The sky scatters blue light."}
	svc := service.NewStudyService(oracle)

	answer, err := svc.Explain(context.Background(), "Why is the sky blue?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "The sky scatters blue light." {
		t.Errorf("unexpected answer: %q", answer)
	}
	if len(oracle.prompts) != 1 || !strings.Contains(oracle.prompts[0], "Why is the sky blue?") {
		t.Errorf("unexpected prompt: %v", oracle.prompts)
	}
}

func TestExplainRequiresQuestion(t *testing.T) {
	oracle := &stubOracle{}
	svc := service.NewStudyService(oracle)

	_, err := svc.Explain(context.Background(), "  ")
	if !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(oracle.prompts) != 0 {
		t.Errorf("expected no oracle call, got %d", len(oracle.prompts))
	}
}

func TestExplainOracleFailure(t *testing.T) {
	oracle := &stubOracle{err: apperr.Wrapf(apperr.ErrOracleUnavailable, "timeout")}
	svc := service.NewStudyService(oracle)

	_, err := svc.Explain(context.Background(), "Why?")
	if !errors.Is(err, apperr.ErrOracleUnavailable) {
		t.Fatalf("expected ErrOracleUnavailable, got %v", err)
	}
}

func TestTranscriptNotes(t *testing.T) {
	oracle := &stubOracle{reply: "- Mitosis has four phases"}
	svc := service.NewStudyService(oracle)

	notes, err := svc.TranscriptNotes(context.Background(), "cells divide by mitosis")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if notes != "- Mitosis has four phases" {
		t.Errorf("unexpected notes: %q", notes)
	}
	if len(oracle.prompts) != 1 || !strings.Contains(oracle.prompts[0], "cells divide by mitosis") {
		t.Errorf("unexpected prompt: %v", oracle.prompts)
	}
}

func TestTranscriptNotesRequiresTranscript(t *testing.T) {
	svc := service.NewStudyService(&stubOracle{})

	_, err := svc.TranscriptNotes(context.Background(), "")
	if !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

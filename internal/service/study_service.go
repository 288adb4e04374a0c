package service

import (
	"context"

	"github.com/mvtien/studybuddy/internal/oracle"
	"github.com/mvtien/studybuddy/internal/quiz"
	"github.com/rs/zerolog/log"
)

// StudyService covers the tutor features outside the quiz pipeline:
// free-form explanations and transcript summarization. Both are single
// oracle calls whose output goes back to the learner verbatim.
type StudyService interface {
	Explain(ctx context.Context, question string) (string, error)
	TranscriptNotes(ctx context.Context, transcript string) (string, error)
}

type studyService struct {
	oracle oracle.Oracle
}

func NewStudyService(o oracle.Oracle) StudyService {
	return &studyService{oracle: o}
}

func (s *studyService) Explain(ctx context.Context, question string) (string, error) {
	prompt, err := quiz.BuildExplainPrompt(question)
	if err != nil {
		return "", err
	}
	answer, err := s.oracle.Generate(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Msg("Explain oracle call failed")
		return "", err
	}
	return answer, nil
}

func (s *studyService) TranscriptNotes(ctx context.Context, transcript string) (string, error) {
	prompt, err := quiz.BuildNotesPrompt(transcript)
	if err != nil {
		return "", err
	}
	notes, err := s.oracle.Generate(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Msg("Notes oracle call failed")
		return "", err
	}
	return notes, nil
}

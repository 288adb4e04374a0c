package service

import (
	"context"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/mvtien/studybuddy/internal/apperr"
	"github.com/mvtien/studybuddy/internal/dto"
	"github.com/mvtien/studybuddy/internal/oracle"
	"github.com/mvtien/studybuddy/internal/quiz"
	"github.com/mvtien/studybuddy/internal/session"
	"github.com/rs/zerolog/log"
)

// QuizService drives the generation half of the pipeline: prompt, one
// oracle call, cascade parse, session storage.
type QuizService interface {
	Generate(ctx context.Context, sessionID string, req dto.GenerateQuizRequest) (*dto.QuizResponse, error)
	Current(sessionID string) (*dto.QuizResponse, error)
	RecordAnswer(sessionID string, req dto.RecordAnswerRequest) error
	Clear(sessionID string)
}

type quizService struct {
	oracle   oracle.Oracle
	sessions *session.Store
}

func NewQuizService(o oracle.Oracle, sessions *session.Store) QuizService {
	return &quizService{oracle: o, sessions: sessions}
}

// TranscriptTopic labels quizzes generated from a lecture transcript,
// which has no topic string of its own.
const TranscriptTopic = "Lecture Notes"

func (s *quizService) Generate(ctx context.Context, sessionID string, req dto.GenerateQuizRequest) (*dto.QuizResponse, error) {
	prompt, err := quiz.BuildQuizPrompt(req.Topic, req.Transcript, req.Count)
	if err != nil {
		return nil, err
	}

	raw, err := s.oracle.Generate(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("Quiz generation oracle call failed")
		return nil, err
	}

	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		topic = TranscriptTopic
	}

	questions := quiz.Parse(raw)
	if len(questions) == 0 {
		// Whole cascade failed. The previous quiz is discarded and the
		// raw text goes back to the caller for manual inspection.
		s.sessions.Clear(sessionID)
		log.Warn().Str("topic", topic).Msg("Oracle response yielded no structured questions")
		return &dto.QuizResponse{
			Topic:     topic,
			Questions: []dto.QuestionDTO{},
			Parsed:    false,
			RawText:   raw,
			CreatedAt: time.Now(),
		}, nil
	}

	qz := &quiz.Quiz{
		Topic:     topic,
		Questions: questions,
		RawText:   raw,
		CreatedAt: time.Now(),
	}
	s.sessions.SetQuiz(sessionID, qz)

	log.Info().Str("topic", topic).Int("questions", len(questions)).Msg("Quiz generated")
	return quizToResponse(qz), nil
}

func (s *quizService) Current(sessionID string) (*dto.QuizResponse, error) {
	qz, ok := s.sessions.Quiz(sessionID)
	if !ok {
		return nil, apperr.Wrapf(apperr.ErrInvalidInput, "no active quiz for this session")
	}
	return quizToResponse(qz), nil
}

func (s *quizService) RecordAnswer(sessionID string, req dto.RecordAnswerRequest) error {
	if req.QuestionIndex == nil || strings.TrimSpace(req.Answer) == "" {
		return apperr.Wrapf(apperr.ErrInvalidInput, "question index and answer are required")
	}
	return s.sessions.RecordAnswer(sessionID, *req.QuestionIndex, req.Answer)
}

func (s *quizService) Clear(sessionID string) {
	s.sessions.Clear(sessionID)
}

func quizToResponse(qz *quiz.Quiz) *dto.QuizResponse {
	resp := &dto.QuizResponse{
		Topic:     qz.Topic,
		Parsed:    true,
		CreatedAt: qz.CreatedAt,
		Questions: make([]dto.QuestionDTO, len(qz.Questions)),
	}
	for i, q := range qz.Questions {
		var qDTO dto.QuestionDTO
		if err := copier.Copy(&qDTO, &q); err != nil {
			log.Warn().Err(err).Int("index", i).Msg("Failed to map question to DTO")
		}
		qDTO.Index = i
		resp.Questions[i] = qDTO
	}
	return resp
}

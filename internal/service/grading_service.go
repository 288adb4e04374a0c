package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/mvtien/studybuddy/internal/apperr"
	"github.com/mvtien/studybuddy/internal/badge"
	"github.com/mvtien/studybuddy/internal/dto"
	"github.com/mvtien/studybuddy/internal/model"
	"github.com/mvtien/studybuddy/internal/oracle"
	"github.com/mvtien/studybuddy/internal/quiz"
	"github.com/mvtien/studybuddy/internal/repository"
	"github.com/mvtien/studybuddy/internal/session"
	"github.com/rs/zerolog/log"
)

// GradingService turns the session's quiz plus collected answers into a
// grade, remediation tips, and a persisted progress update. Scoring is
// local and always completes; the oracle is consulted only to judge
// questions without an answer key and to write remediation tips, and a
// failure on either of those paths never blocks the score.
type GradingService interface {
	Submit(ctx context.Context, sessionID string, req dto.SubmitQuizRequest) (*dto.GradeResultResponse, error)
}

type gradingService struct {
	oracle       oracle.Oracle
	sessions     *session.Store
	progressRepo repository.ProgressRepository
}

func NewGradingService(o oracle.Oracle, sessions *session.Store, progressRepo repository.ProgressRepository) GradingService {
	return &gradingService{oracle: o, sessions: sessions, progressRepo: progressRepo}
}

func (s *gradingService) Submit(ctx context.Context, sessionID string, req dto.SubmitQuizRequest) (*dto.GradeResultResponse, error) {
	learnerID := strings.TrimSpace(req.LearnerID)
	if learnerID == "" {
		return nil, apperr.Wrapf(apperr.ErrInvalidInput, "learner id is required")
	}

	qz, ok := s.sessions.Quiz(sessionID)
	if !ok {
		return nil, apperr.Wrapf(apperr.ErrInvalidInput, "no active quiz to submit")
	}
	answers := s.sessions.Answers(sessionID)

	result := s.grade(ctx, qz, answers)

	resp := &dto.GradeResultResponse{
		Score:      result.Score,
		Total:      result.Total,
		Percentage: result.Percentage,
		WeakTopics: result.WeakTopics,
	}

	// Remediation is enrichment: one oracle call over the weak-topic
	// set, attached verbatim when it succeeds.
	if len(result.WeakTopics) > 0 {
		if tips, err := s.remediate(ctx, result.WeakTopics); err == nil {
			resp.Remediation = tips
			resp.RemediationAvailable = true
		} else {
			log.Warn().Err(err).Strs("topics", result.WeakTopics).Msg("Remediation tips unavailable, submission continues")
		}
	}

	s.applyProgress(qz, result, learnerID, resp)

	// The quiz stays in the session for a possible resubmission; the
	// answer sheet starts over.
	s.sessions.ClearAnswers(sessionID)

	log.Info().Str("learnerID", learnerID).Int("score", result.Score).Int("total", result.Total).Msg("Quiz submitted and graded")
	return resp, nil
}

// grade computes the local verdict for every question. A question with
// no recorded answer counts as incorrect and stays in the denominator;
// a question with no answer key is judged by one oracle call, and
// counts as incorrect when that call fails.
func (s *gradingService) grade(ctx context.Context, qz *quiz.Quiz, answers quiz.AnswerSet) quiz.GradeResult {
	correct := 0
	var weakTopics []string
	seen := make(map[string]struct{})

	for i, q := range qz.Questions {
		answer := answers[i]
		verdict := q.Judge(answer)
		if verdict == quiz.VerdictUnknown {
			verdict = s.judgeWithOracle(ctx, q, answer)
		}

		if verdict == quiz.VerdictCorrect {
			correct++
			continue
		}
		if _, dup := seen[q.Topic]; !dup {
			seen[q.Topic] = struct{}{}
			weakTopics = append(weakTopics, q.Topic)
		}
	}

	total := len(qz.Questions)
	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(correct) / float64(total) * 100))
	}
	return quiz.GradeResult{
		Score:      correct,
		Total:      total,
		Percentage: percentage,
		WeakTopics: weakTopics,
	}
}

// judgeWithOracle resolves a question without an answer key: at most one
// oracle call per question per submission, no retry. Empty answers and
// failed calls are incorrect.
func (s *gradingService) judgeWithOracle(ctx context.Context, q quiz.Question, answer string) quiz.Verdict {
	if strings.TrimSpace(answer) == "" {
		return quiz.VerdictIncorrect
	}
	prompt, err := quiz.BuildJudgePrompt(q, answer)
	if err != nil {
		return quiz.VerdictIncorrect
	}
	raw, err := s.oracle.Generate(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Str("question", q.Text).Msg("Judgment oracle call failed, counting answer as incorrect")
		return quiz.VerdictIncorrect
	}

	fields := strings.Fields(strings.ToUpper(raw))
	if len(fields) > 0 && strings.Trim(fields[0], ".,!") == "CORRECT" {
		return quiz.VerdictCorrect
	}
	return quiz.VerdictIncorrect
}

func (s *gradingService) remediate(ctx context.Context, topics []string) (string, error) {
	prompt, err := quiz.BuildRemediationPrompt(topics)
	if err != nil {
		return "", err
	}
	return s.oracle.Generate(ctx, prompt)
}

// applyProgress folds the grade into the learner's aggregate: one new
// history entry (append-only), updated totals, badge recomputation, a
// quiz archive row, then a whole-aggregate write. A failed write does
// not void the grade — it surfaces as a warning on the response.
func (s *gradingService) applyProgress(qz *quiz.Quiz, result quiz.GradeResult, learnerID string, resp *dto.GradeResultResponse) {
	now := time.Now()

	progress, err := s.progressRepo.Load(learnerID)
	if err != nil {
		// Load degrades internally; an error here is unexpected but the
		// grade must survive it.
		log.Error().Err(err).Str("learnerID", learnerID).Msg("Progress load failed")
		progress = &model.LearnerProgress{LearnerID: learnerID, Summary: model.ProgressSummary{LearnerID: learnerID}}
	}

	progress.History = append(progress.History, model.ScoreEntry{
		Percentage: result.Percentage,
		TakenAt:    now,
	})
	progress.Summary.CorrectTotal += result.Score
	progress.Summary.WrongTotal += result.Total - result.Score

	fresh := badge.Evaluate(badge.Progress{
		HistoryLength:    len(progress.History),
		LatestPercentage: result.Percentage,
		CorrectTotal:     progress.Summary.CorrectTotal,
		WrongTotal:       progress.Summary.WrongTotal,
	}, progress.BadgeLabels())
	for _, label := range fresh {
		progress.Badges = append(progress.Badges, model.BadgeAward{Label: label, AwardedAt: now})
	}
	resp.NewBadges = fresh
	resp.Badges = progress.BadgeLabels()

	if err := s.progressRepo.Save(progress); err != nil {
		resp.PersistenceWarning = "your score could not be saved to your progress history"
		return
	}

	if err := s.progressRepo.ArchiveQuiz(&model.QuizArchive{
		LearnerID: learnerID,
		Topic:     qz.Topic,
		Score:     result.Score,
		Total:     result.Total,
		TakenAt:   now,
	}); err != nil {
		resp.PersistenceWarning = "your score was saved but the quiz could not be archived"
	}
}

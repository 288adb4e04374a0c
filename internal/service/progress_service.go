package service

import (
	"strings"

	"github.com/jinzhu/copier"
	"github.com/mvtien/studybuddy/internal/apperr"
	"github.com/mvtien/studybuddy/internal/dto"
	"github.com/mvtien/studybuddy/internal/repository"
	"github.com/rs/zerolog/log"
)

// ProgressService serves the dashboard data and the explicit reset.
type ProgressService interface {
	Overview(learnerID string) (*dto.ProgressResponse, error)
	Reset(learnerID string) error
}

type progressService struct {
	progressRepo repository.ProgressRepository
}

func NewProgressService(progressRepo repository.ProgressRepository) ProgressService {
	return &progressService{progressRepo: progressRepo}
}

func (s *progressService) Overview(learnerID string) (*dto.ProgressResponse, error) {
	learnerID = strings.TrimSpace(learnerID)
	if learnerID == "" {
		return nil, apperr.Wrapf(apperr.ErrInvalidInput, "learner id is required")
	}

	progress, err := s.progressRepo.Load(learnerID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProgressResponse{
		LearnerID:    learnerID,
		CorrectTotal: progress.Summary.CorrectTotal,
		WrongTotal:   progress.Summary.WrongTotal,
		History:      make([]dto.ScoreEntryDTO, 0, len(progress.History)),
		Badges:       make([]dto.BadgeDTO, 0, len(progress.Badges)),
		Archives:     []dto.QuizArchiveDTO{},
	}
	if err := copier.Copy(&resp.History, &progress.History); err != nil {
		log.Warn().Err(err).Msg("Failed to map score history to DTO")
	}
	if err := copier.Copy(&resp.Badges, &progress.Badges); err != nil {
		log.Warn().Err(err).Msg("Failed to map badges to DTO")
	}

	archives, err := s.progressRepo.Archives(learnerID)
	if err != nil {
		// Archives enrich the dashboard; history and badges are already
		// in hand, so serve what we have.
		log.Warn().Err(err).Str("learnerID", learnerID).Msg("Quiz archives unreadable")
	} else if err := copier.Copy(&resp.Archives, &archives); err != nil {
		log.Warn().Err(err).Msg("Failed to map archives to DTO")
	}

	return resp, nil
}

func (s *progressService) Reset(learnerID string) error {
	learnerID = strings.TrimSpace(learnerID)
	if learnerID == "" {
		return apperr.Wrapf(apperr.ErrInvalidInput, "learner id is required")
	}
	return s.progressRepo.Reset(learnerID)
}

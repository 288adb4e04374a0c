package repository

import (
	"errors"

	"github.com/mvtien/studybuddy/internal/apperr"
	"github.com/mvtien/studybuddy/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ProgressRepository is the progress store contract from the pipeline's
// point of view: load a learner's whole aggregate, write it back whole.
// Reads never fail the caller — a missing or unreadable record degrades
// to a fresh empty aggregate with a logged warning. Writes do fail the
// caller, because a silently lost score is worse than a visible error.
type ProgressRepository interface {
	Load(learnerID string) (*model.LearnerProgress, error)
	Save(progress *model.LearnerProgress) error
	ArchiveQuiz(archive *model.QuizArchive) error
	Archives(learnerID string) ([]model.QuizArchive, error)
	Reset(learnerID string) error
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Load(learnerID string) (*model.LearnerProgress, error) {
	progress := &model.LearnerProgress{
		LearnerID: learnerID,
		Summary:   model.ProgressSummary{LearnerID: learnerID},
	}

	err := r.db.Where("learner_id = ?", learnerID).First(&progress.Summary).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Warn().Err(err).Str("learnerID", learnerID).Msg("Progress summary unreadable, starting from an empty record")
		progress.Summary = model.ProgressSummary{LearnerID: learnerID}
		return progress, nil
	}

	if err := r.db.Where("learner_id = ?", learnerID).Order("taken_at asc, id asc").Find(&progress.History).Error; err != nil {
		log.Warn().Err(err).Str("learnerID", learnerID).Msg("Score history unreadable, starting from an empty record")
		return &model.LearnerProgress{LearnerID: learnerID, Summary: model.ProgressSummary{LearnerID: learnerID}}, nil
	}

	if err := r.db.Where("learner_id = ?", learnerID).Order("awarded_at asc, id asc").Find(&progress.Badges).Error; err != nil {
		log.Warn().Err(err).Str("learnerID", learnerID).Msg("Badges unreadable, starting from an empty record")
		return &model.LearnerProgress{LearnerID: learnerID, Summary: model.ProgressSummary{LearnerID: learnerID}}, nil
	}

	return progress, nil
}

func (r *progressRepository) Save(progress *model.LearnerProgress) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		summary := &progress.Summary
		summary.LearnerID = progress.LearnerID

		if summary.ID == 0 {
			var existing model.ProgressSummary
			err := tx.Where("learner_id = ?", progress.LearnerID).First(&existing).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Create(summary).Error; err != nil {
					return err
				}
			case err != nil:
				return err
			default:
				existing.CorrectTotal = summary.CorrectTotal
				existing.WrongTotal = summary.WrongTotal
				if err := tx.Save(&existing).Error; err != nil {
					return err
				}
				*summary = existing
			}
		} else if err := tx.Save(summary).Error; err != nil {
			return err
		}

		// History is append-only: only entries the engine just added
		// (no primary key yet) are written.
		for i := range progress.History {
			if progress.History[i].ID != 0 {
				continue
			}
			progress.History[i].LearnerID = progress.LearnerID
			if err := tx.Create(&progress.History[i]).Error; err != nil {
				return err
			}
		}

		for i := range progress.Badges {
			if progress.Badges[i].ID != 0 {
				continue
			}
			progress.Badges[i].LearnerID = progress.LearnerID
			if err := tx.Create(&progress.Badges[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("learnerID", progress.LearnerID).Msg("Failed to persist learner progress")
		return apperr.Wrap(apperr.ErrPersistence, err)
	}
	return nil
}

func (r *progressRepository) ArchiveQuiz(archive *model.QuizArchive) error {
	if err := r.db.Create(archive).Error; err != nil {
		log.Error().Err(err).Str("learnerID", archive.LearnerID).Msg("Failed to archive quiz")
		return apperr.Wrap(apperr.ErrPersistence, err)
	}
	return nil
}

func (r *progressRepository) Archives(learnerID string) ([]model.QuizArchive, error) {
	var archives []model.QuizArchive
	if err := r.db.Where("learner_id = ?", learnerID).Order("taken_at desc, id desc").Find(&archives).Error; err != nil {
		return nil, apperr.Wrap(apperr.ErrPersistence, err)
	}
	return archives, nil
}

func (r *progressRepository) Reset(learnerID string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("learner_id = ?", learnerID).Delete(&model.ScoreEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("learner_id = ?", learnerID).Delete(&model.BadgeAward{}).Error; err != nil {
			return err
		}
		if err := tx.Where("learner_id = ?", learnerID).Delete(&model.QuizArchive{}).Error; err != nil {
			return err
		}
		return tx.Where("learner_id = ?", learnerID).Delete(&model.ProgressSummary{}).Error
	})
	if err != nil {
		log.Error().Err(err).Str("learnerID", learnerID).Msg("Failed to reset learner progress")
		return apperr.Wrap(apperr.ErrPersistence, err)
	}
	return nil
}

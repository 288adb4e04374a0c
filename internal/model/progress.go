package model

import (
	"time"
)

// ScoreEntry is one point in a learner's longitudinal history. Rows are
// append-only: a resubmission adds a new entry, never rewrites an old one.
type ScoreEntry struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	LearnerID  string    `json:"learner_id" gorm:"not null;index"`
	Percentage int       `json:"percentage" gorm:"not null"`
	TakenAt    time.Time `json:"taken_at" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}

// ProgressSummary keeps one row of running totals per learner.
type ProgressSummary struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	LearnerID    string    `json:"learner_id" gorm:"not null;uniqueIndex"`
	CorrectTotal int       `json:"correct_total" gorm:"not null;default:0"`
	WrongTotal   int       `json:"wrong_total" gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BadgeAward records an earned badge. The unique index makes awards
// idempotent; a badge is never awarded twice and never removed outside
// an explicit progress reset.
type BadgeAward struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	LearnerID string    `json:"learner_id" gorm:"not null;uniqueIndex:idx_learner_badge"`
	Label     string    `json:"label" gorm:"not null;uniqueIndex:idx_learner_badge"`
	AwardedAt time.Time `json:"awarded_at" gorm:"not null"`
}

// QuizArchive is the long-term trace of a graded quiz: topic, score and
// timestamp only. Question-level detail stays ephemeral in the session.
type QuizArchive struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	LearnerID string    `json:"learner_id" gorm:"not null;index"`
	Topic     string    `json:"topic" gorm:"not null"`
	Score     int       `json:"score" gorm:"not null"`
	Total     int       `json:"total" gorm:"not null"`
	TakenAt   time.Time `json:"taken_at" gorm:"not null"`
}

// LearnerProgress is the in-memory aggregate the grading engine mutates:
// read fully, updated, written back in its entirety. Last write wins when
// two sessions race; the store takes no lock.
type LearnerProgress struct {
	LearnerID string          `json:"learner_id"`
	Summary   ProgressSummary `json:"summary"`
	History   []ScoreEntry    `json:"history"`
	Badges    []BadgeAward    `json:"badges"`
}

// BadgeLabels returns the earned badge labels in award order.
func (p *LearnerProgress) BadgeLabels() []string {
	labels := make([]string, 0, len(p.Badges))
	for _, b := range p.Badges {
		labels = append(labels, b.Label)
	}
	return labels
}

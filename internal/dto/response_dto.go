package dto

import "time"

// QuestionDTO is one question as shown to the learner. The correct
// index is deliberately withheld until grading.
type QuestionDTO struct {
	Index   int      `json:"index"`
	Text    string   `json:"question"`
	Options []string `json:"options"`
	Topic   string   `json:"topic"`
}

// QuizResponse is the outcome of a generation request. Parsed=false
// means the whole parser cascade failed; RawText then carries the
// oracle output for manual inspection.
type QuizResponse struct {
	Topic     string        `json:"topic"`
	Questions []QuestionDTO `json:"questions"`
	Parsed    bool          `json:"parsed"`
	RawText   string        `json:"raw_text,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// GradeResultResponse is the outcome of one submission.
// PersistenceWarning is set when the score could not be written to the
// progress store — the grade itself is still valid.
type GradeResultResponse struct {
	Score                int      `json:"score"`
	Total                int      `json:"total"`
	Percentage           int      `json:"percentage"`
	WeakTopics           []string `json:"weak_topics"`
	Remediation          string   `json:"remediation,omitempty"`
	RemediationAvailable bool     `json:"remediation_available"`
	NewBadges            []string `json:"new_badges"`
	Badges               []string `json:"badges"`
	PersistenceWarning   string   `json:"persistence_warning,omitempty"`
}

type ScoreEntryDTO struct {
	Percentage int       `json:"percentage"`
	TakenAt    time.Time `json:"taken_at"`
}

type BadgeDTO struct {
	Label     string    `json:"label"`
	AwardedAt time.Time `json:"awarded_at"`
}

type QuizArchiveDTO struct {
	Topic   string    `json:"topic"`
	Score   int       `json:"score"`
	Total   int       `json:"total"`
	TakenAt time.Time `json:"taken_at"`
}

// ProgressResponse is the dashboard payload: history series, running
// totals, badges and archived quizzes.
type ProgressResponse struct {
	LearnerID    string           `json:"learner_id"`
	History      []ScoreEntryDTO  `json:"history"`
	CorrectTotal int              `json:"correct_total"`
	WrongTotal   int              `json:"wrong_total"`
	Badges       []BadgeDTO       `json:"badges"`
	Archives     []QuizArchiveDTO `json:"archives"`
}

type AskResponse struct {
	Answer string `json:"answer"`
}

type NotesResponse struct {
	Notes string `json:"notes"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

package dto

// GenerateQuizRequest starts a new quiz generation. Exactly one of
// Topic/Transcript should carry text; the service rejects an empty pair.
type GenerateQuizRequest struct {
	Topic      string `json:"topic"`
	Transcript string `json:"transcript"`
	Count      int    `json:"count" binding:"omitempty,min=1,max=20"`
}

// RecordAnswerRequest stores one answer for the session's current quiz.
// QuestionIndex is a pointer so index 0 survives required-validation.
type RecordAnswerRequest struct {
	QuestionIndex *int   `json:"question_index" binding:"required"`
	Answer        string `json:"answer" binding:"required"`
}

// SubmitQuizRequest grades the session's current quiz for a learner.
type SubmitQuizRequest struct {
	LearnerID string `json:"learner_id" binding:"required"`
}

// AskRequest is a free-form study question for the tutor endpoint.
type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

// NotesRequest summarizes a lecture transcript into study notes.
type NotesRequest struct {
	Transcript string `json:"transcript" binding:"required"`
}

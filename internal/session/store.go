// Package session replaces the ad hoc per-page state keys of a browser
// session with one explicit State per session: the quiz being taken and
// the answers collected so far. Lifecycle follows the pipeline events —
// a new generation replaces the quiz and drops the answers, submit
// clears the answers, an explicit clear drops everything.
package session

import (
	"sync"

	"github.com/mvtien/studybuddy/internal/apperr"
	"github.com/mvtien/studybuddy/internal/quiz"
)

// State is one session's transient pipeline state.
type State struct {
	Quiz    *quiz.Quiz
	Answers quiz.AnswerSet
}

// Store keeps session state in memory, keyed by session ID. A session
// serves one user interaction at a time, but distinct sessions hit the
// map concurrently, hence the lock.
type Store struct {
	mu     sync.RWMutex
	states map[string]*State
}

func NewStore() *Store {
	return &Store{states: make(map[string]*State)}
}

// SetQuiz installs a freshly generated quiz, discarding the previous
// quiz and any collected answers.
func (s *Store) SetQuiz(sessionID string, qz *quiz.Quiz) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[sessionID] = &State{Quiz: qz, Answers: make(quiz.AnswerSet)}
}

// Quiz returns the session's current quiz, if any.
func (s *Store) Quiz(sessionID string) (*quiz.Quiz, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.states[sessionID]
	if !ok || st.Quiz == nil {
		return nil, false
	}
	return st.Quiz, true
}

// RecordAnswer stores the learner's answer for one question of the
// session's current quiz.
func (s *Store) RecordAnswer(sessionID string, index int, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[sessionID]
	if !ok || st.Quiz == nil {
		return apperr.Wrapf(apperr.ErrInvalidInput, "no active quiz for this session")
	}
	if index < 0 || index >= len(st.Quiz.Questions) {
		return apperr.Wrapf(apperr.ErrInvalidInput, "question index %d out of range", index)
	}
	st.Answers[index] = answer
	return nil
}

// Answers returns a copy of the session's collected answers.
func (s *Store) Answers(sessionID string) quiz.AnswerSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.states[sessionID]
	if !ok {
		return quiz.AnswerSet{}
	}
	out := make(quiz.AnswerSet, len(st.Answers))
	for k, v := range st.Answers {
		out[k] = v
	}
	return out
}

// ClearAnswers drops the collected answers but keeps the quiz, so a
// resubmission starts from a blank answer sheet.
func (s *Store) ClearAnswers(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.states[sessionID]; ok {
		st.Answers = make(quiz.AnswerSet)
	}
}

// Clear drops the session's quiz and answers entirely.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, sessionID)
}

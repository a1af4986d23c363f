package quiz

import (
	"errors"
	"sync"

	"github.com/dmitrijs2005/realverse/internal/common"
)

// Session is one person taking a quiz. It owns the answers and the last
// result; Reset discards both. Nothing in a session is persisted.
type Session struct {
	def Definition

	mu      sync.Mutex
	answers Answers
	result  *Result
}

func NewSession(def Definition) *Session {
	return &Session{def: def, answers: NewAnswers(len(def.Questions))}
}

// Definition returns the quiz being taken.
func (s *Session) Definition() Definition {
	return s.def
}

// Choose records option for question. Changing an answer clears a previous result.
func (s *Session) Choose(question, option int) error {
	if question < 0 || question >= len(s.def.Questions) {
		return &OutOfRangeError{Question: question, Index: option, Options: -1}
	}
	if n := len(s.def.Questions[question].Options); option < 0 || option >= n {
		return &OutOfRangeError{Question: question, Index: option, Options: n}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers[question] = option
	s.result = nil
	return nil
}

// Answers returns a copy of the current answers.
func (s *Session) Answers() Answers {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(Answers(nil), s.answers...)
}

// Submit scores the current answers. An unmatched total is still kept as the
// session result.
func (s *Session) Submit() (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score(s.answers)
}

// SubmitAnswers scores answers and adopts them as the session answers, so
// the user can fix them when scoring fails. Positions beyond the quiz are
// dropped from the session; missing ones become Unanswered.
func (s *Session) SubmitAnswers(answers Answers) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.answers = NewAnswers(len(s.def.Questions))
	copy(s.answers, answers)
	return s.score(answers)
}

// Result returns the last successful (or unmatched) result.
func (s *Session) Result() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

// Reset clears answers and result.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers = NewAnswers(len(s.def.Questions))
	s.result = nil
}

func (s *Session) score(answers Answers) (Result, error) {
	res, err := Score(s.def, answers)
	if err == nil || errors.Is(err, common.ErrUnmatched) {
		s.result = &res
	} else {
		s.result = nil
	}
	return res, err
}


package screening

import (
	"errors"
	"fmt"
	"time"

	"dmless/internal/domain/job"

	"github.com/google/uuid"
)

// Stage is the session's position in the candidate journey. Transitions are
// only legal along:
//
//	loading -> info -> quiz -> {knocked_out | upload} -> submitted
//	loading -> not_found
//
// knocked_out, submitted and not_found are absorbing.
type Stage string

const (
	StageLoading    Stage = "loading"
	StageNotFound   Stage = "not_found"
	StageInfo       Stage = "info"
	StageQuiz       Stage = "quiz"
	StageKnockedOut Stage = "knocked_out"
	StageUpload     Stage = "upload"
	StageSubmitted  Stage = "submitted"
)

// Unanswered marks a quiz slot the candidate has not selected yet.
const Unanswered = -1

var (
	ErrInvalidTransition  = errors.New("invalid stage transition")
	ErrQuestionOutOfRange = errors.New("question index out of range")
	ErrOptionOutOfRange   = errors.New("option index out of range")
	ErrIncompleteAnswers  = errors.New("every question must be answered")
)

// Session is one candidate's transient attempt at a job's quiz and
// application. It is never shared between candidates and never reused.
// ID doubles as the idempotency token passed to the persistence layer, so
// retried terminal submissions cannot duplicate records.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Stage     Stage     `json:"stage"`
	Job       *job.Job  `json:"job,omitempty"`
	Answers   []int     `json:"answers,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func New() *Session {
	return &Session{
		ID:        uuid.New(),
		Stage:     StageLoading,
		CreatedAt: time.Now().UTC(),
	}
}

// AttachJob completes the load: the job exists, answers are initialized to
// all-unanswered with one slot per quiz question, and the candidate sees the
// job info.
func (s *Session) AttachJob(j job.Job) error {
	if s.Stage != StageLoading {
		return transitionErr(s.Stage, StageInfo)
	}

	answers := make([]int, len(j.Quiz))
	for i := range answers {
		answers[i] = Unanswered
	}

	s.Job = &j
	s.Answers = answers
	s.Stage = StageInfo
	return nil
}

// MarkNotFound absorbs the session when the slug does not resolve. A fetch
// failure routes here as well; no retry stage exists.
func (s *Session) MarkNotFound() error {
	if s.Stage != StageLoading {
		return transitionErr(s.Stage, StageNotFound)
	}
	s.Stage = StageNotFound
	return nil
}

// Begin moves from the job info screen into the quiz.
func (s *Session) Begin() error {
	if s.Stage != StageInfo {
		return transitionErr(s.Stage, StageQuiz)
	}
	s.Stage = StageQuiz
	return nil
}

// Answer records the candidate's selection for one question. The stage does
// not change; re-answering a question overwrites the previous choice.
func (s *Session) Answer(question, option int) error {
	if s.Stage != StageQuiz {
		return transitionErr(s.Stage, StageQuiz)
	}
	if question < 0 || question >= len(s.Answers) {
		return ErrQuestionOutOfRange
	}
	if option < 0 || option >= job.OptionCount {
		return ErrOptionOutOfRange
	}
	s.Answers[question] = option
	return nil
}

// Complete reports whether every quiz slot has a selection.
func (s *Session) Complete() bool {
	for _, a := range s.Answers {
		if a == Unanswered {
			return false
		}
	}
	return true
}

// Score evaluates the strict all-correct rule. It is only meaningful in the
// quiz stage with a complete answer sheet; it does not advance the stage, so
// the caller can persist the knocked-out record before committing the
// transition.
func (s *Session) Score() (bool, error) {
	if s.Stage != StageQuiz {
		return false, transitionErr(s.Stage, StageQuiz)
	}
	if !s.Complete() {
		return false, ErrIncompleteAnswers
	}
	for i, q := range s.Job.Quiz {
		if s.Answers[i] != q.CorrectOption {
			return false, nil
		}
	}
	return true, nil
}

// FinishKnockedOut commits the failed-quiz outcome after the terminal record
// has been written.
func (s *Session) FinishKnockedOut() error {
	if s.Stage != StageQuiz || !s.Complete() {
		return transitionErr(s.Stage, StageKnockedOut)
	}
	s.Stage = StageKnockedOut
	return nil
}

// AdvanceToUpload moves a fully correct submission into resume collection.
// No record is written at this point; the candidate may still walk away.
func (s *Session) AdvanceToUpload() error {
	if s.Stage != StageQuiz {
		return transitionErr(s.Stage, StageUpload)
	}
	allCorrect, err := s.Score()
	if err != nil {
		return err
	}
	if !allCorrect {
		return transitionErr(s.Stage, StageUpload)
	}
	s.Stage = StageUpload
	return nil
}

// FinishSubmitted commits the shortlisted outcome after the resume upload and
// record insert both succeeded.
func (s *Session) FinishSubmitted() error {
	if s.Stage != StageUpload {
		return transitionErr(s.Stage, StageSubmitted)
	}
	s.Stage = StageSubmitted
	return nil
}

// Terminal reports whether no further transitions are possible.
func (s *Session) Terminal() bool {
	switch s.Stage {
	case StageKnockedOut, StageSubmitted, StageNotFound:
		return true
	}
	return false
}

// AnswerSnapshot returns a copy of the answer sheet for persistence so the
// stored record cannot alias the live session.
func (s *Session) AnswerSnapshot() []int {
	out := make([]int, len(s.Answers))
	copy(out, s.Answers)
	return out
}

func transitionErr(from, to Stage) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

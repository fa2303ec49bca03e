package screening

import (
	"errors"
	"testing"
	"time"

	"dmless/internal/domain/job"

	"github.com/google/uuid"
)

func twoQuestionJob() job.Job {
	return job.Job{
		ID:          uuid.New(),
		RecruiterID: uuid.New(),
		Role:        "Backend Engineer",
		Slug:        "backend-engineer-abc",
		Quiz: []job.Question{
			{Text: "q1", Options: []string{"a", "b", "c", "d"}, CorrectOption: 0},
			{Text: "q2", Options: []string{"a", "b", "c", "d"}, CorrectOption: 1},
		},
		CreatedAt: time.Now().UTC(),
	}
}

func sessionInQuiz(t *testing.T) *Session {
	t.Helper()
	s := New()
	if err := s.AttachJob(twoQuestionJob()); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if err := s.Begin(); err != nil {
		t.Fatalf("begin: %v", err)
	}
	return s
}

func TestNew_StartsLoadingWithToken(t *testing.T) {
	s := New()
	if s.Stage != StageLoading {
		t.Fatalf("expected loading, got %s", s.Stage)
	}
	if s.ID == uuid.Nil {
		t.Fatalf("expected idempotency token to be set")
	}
}

func TestAttachJob_InitializesAnswers(t *testing.T) {
	s := New()
	if err := s.AttachJob(twoQuestionJob()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Stage != StageInfo {
		t.Fatalf("expected info, got %s", s.Stage)
	}
	if len(s.Answers) != 2 {
		t.Fatalf("expected 2 answer slots, got %d", len(s.Answers))
	}
	for i, a := range s.Answers {
		if a != Unanswered {
			t.Fatalf("slot %d not initialized unanswered: %d", i, a)
		}
	}
}

func TestMarkNotFound_OnlyFromLoading(t *testing.T) {
	s := New()
	if err := s.MarkNotFound(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Stage != StageNotFound || !s.Terminal() {
		t.Fatalf("expected terminal not_found, got %s", s.Stage)
	}

	s2 := sessionInQuiz(t)
	if err := s2.MarkNotFound(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestAnswer_Guards(t *testing.T) {
	s := sessionInQuiz(t)

	if err := s.Answer(0, 3); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Answers[0] != 3 {
		t.Fatalf("answer not recorded")
	}
	// re-answering overwrites
	if err := s.Answer(0, 1); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Answers[0] != 1 {
		t.Fatalf("answer not overwritten")
	}
	if s.Stage != StageQuiz {
		t.Fatalf("answering must not change the stage")
	}

	if err := s.Answer(2, 0); !errors.Is(err, ErrQuestionOutOfRange) {
		t.Fatalf("expected ErrQuestionOutOfRange, got %v", err)
	}
	if err := s.Answer(0, 4); !errors.Is(err, ErrOptionOutOfRange) {
		t.Fatalf("expected ErrOptionOutOfRange, got %v", err)
	}
	if err := s.Answer(0, -1); !errors.Is(err, ErrOptionOutOfRange) {
		t.Fatalf("expected ErrOptionOutOfRange, got %v", err)
	}
}

func TestScore_RequiresCompleteSheet(t *testing.T) {
	s := sessionInQuiz(t)
	_ = s.Answer(0, 0)

	if _, err := s.Score(); !errors.Is(err, ErrIncompleteAnswers) {
		t.Fatalf("expected ErrIncompleteAnswers, got %v", err)
	}
	if s.Stage != StageQuiz {
		t.Fatalf("rejected submit must not change the stage")
	}
}

func TestScore_AllCorrect(t *testing.T) {
	s := sessionInQuiz(t)
	_ = s.Answer(0, 0)
	_ = s.Answer(1, 1)

	allCorrect, err := s.Score()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !allCorrect {
		t.Fatalf("expected all correct")
	}
	if err := s.AdvanceToUpload(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Stage != StageUpload {
		t.Fatalf("expected upload, got %s", s.Stage)
	}
}

func TestScore_AnyIncorrect(t *testing.T) {
	s := sessionInQuiz(t)
	_ = s.Answer(0, 0)
	_ = s.Answer(1, 0)

	allCorrect, err := s.Score()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if allCorrect {
		t.Fatalf("expected failed scoring")
	}
	// scoring alone must not move the stage; the record write happens first
	if s.Stage != StageQuiz {
		t.Fatalf("expected quiz, got %s", s.Stage)
	}
	if err := s.AdvanceToUpload(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("failed quiz must not reach upload, got %v", err)
	}
	if err := s.FinishKnockedOut(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !s.Terminal() {
		t.Fatalf("knocked_out must be terminal")
	}
}

func TestFinishSubmitted_OnlyFromUpload(t *testing.T) {
	s := sessionInQuiz(t)
	if err := s.FinishSubmitted(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	_ = s.Answer(0, 0)
	_ = s.Answer(1, 1)
	if err := s.AdvanceToUpload(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := s.FinishSubmitted(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Stage != StageSubmitted || !s.Terminal() {
		t.Fatalf("expected terminal submitted, got %s", s.Stage)
	}
}

func TestTerminalStages_RejectEverything(t *testing.T) {
	s := sessionInQuiz(t)
	_ = s.Answer(0, 0)
	_ = s.Answer(1, 0)
	_ = s.FinishKnockedOut()

	if err := s.Begin(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if err := s.Answer(0, 1); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if _, err := s.Score(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if err := s.FinishSubmitted(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestAnswerSnapshot_Copies(t *testing.T) {
	s := sessionInQuiz(t)
	_ = s.Answer(0, 2)
	snap := s.AnswerSnapshot()
	snap[0] = 3
	if s.Answers[0] != 2 {
		t.Fatalf("snapshot must not alias session answers")
	}
}

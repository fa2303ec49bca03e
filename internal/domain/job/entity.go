package job

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OptionCount is the fixed number of choices per screening question.
const OptionCount = 4

var (
	ErrEmptyRole          = errors.New("job role is required")
	ErrEmptyDescription   = errors.New("job description is required")
	ErrEmptyQuiz          = errors.New("quiz must have at least one question")
	ErrEmptyQuestion      = errors.New("question text is required")
	ErrBadOptionCount     = errors.New("question must have exactly 4 options")
	ErrEmptyOption        = errors.New("every option must be non-empty")
	ErrDuplicateOption    = errors.New("options must be distinct")
	ErrBadCorrectOption   = errors.New("correct option index out of range")
)

// Question is one multiple-choice screening question. CorrectOption is the
// index into Options and must never leave the recruiter-facing boundary.
type Question struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
}

// Job is a recruiter-authored posting with a fixed screening quiz. The quiz
// is immutable once the job is published.
type Job struct {
	ID          uuid.UUID
	RecruiterID uuid.UUID
	Role        string
	Description string
	Slug        string
	Quiz        []Question
	CreatedAt   time.Time
}

// New validates the authoring input and builds a publishable Job with a
// freshly derived slug. The quiz is copied so later mutation of the caller's
// slice cannot reach the published job.
func New(recruiterID uuid.UUID, role, description string, quiz []Question, now time.Time) (Job, error) {
	role = strings.TrimSpace(role)
	description = strings.TrimSpace(description)

	if role == "" {
		return Job{}, ErrEmptyRole
	}
	if description == "" {
		return Job{}, ErrEmptyDescription
	}
	if len(quiz) == 0 {
		return Job{}, ErrEmptyQuiz
	}

	copied := make([]Question, 0, len(quiz))
	for _, q := range quiz {
		nq, err := normalizeQuestion(q)
		if err != nil {
			return Job{}, err
		}
		copied = append(copied, nq)
	}

	return Job{
		ID:          uuid.New(),
		RecruiterID: recruiterID,
		Role:        role,
		Description: description,
		Slug:        Slugify(role, now),
		Quiz:        copied,
		CreatedAt:   now.UTC(),
	}, nil
}

func normalizeQuestion(q Question) (Question, error) {
	text := strings.TrimSpace(q.Text)
	if text == "" {
		return Question{}, ErrEmptyQuestion
	}
	if len(q.Options) != OptionCount {
		return Question{}, ErrBadOptionCount
	}

	opts := make([]string, 0, OptionCount)
	seen := make(map[string]bool, OptionCount)
	for _, o := range q.Options {
		o = strings.TrimSpace(o)
		if o == "" {
			return Question{}, ErrEmptyOption
		}
		if seen[o] {
			return Question{}, ErrDuplicateOption
		}
		seen[o] = true
		opts = append(opts, o)
	}

	if q.CorrectOption < 0 || q.CorrectOption >= OptionCount {
		return Question{}, ErrBadCorrectOption
	}

	return Question{Text: text, Options: opts, CorrectOption: q.CorrectOption}, nil
}

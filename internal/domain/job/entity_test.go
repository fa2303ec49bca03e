package job

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func validQuiz() []Question {
	return []Question{
		{Text: "What does SQL stand for?", Options: []string{"a", "b", "c", "d"}, CorrectOption: 1},
		{Text: "Which is a Go keyword?", Options: []string{"fun", "func", "def", "fn"}, CorrectOption: 1},
	}
}

func TestNew_Valid(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	j, err := New(uuid.New(), "  Backend Engineer ", "Build APIs", validQuiz(), now)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if j.Role != "Backend Engineer" {
		t.Fatalf("role not trimmed: %q", j.Role)
	}
	if !strings.HasPrefix(j.Slug, "backend-engineer-") {
		t.Fatalf("unexpected slug: %q", j.Slug)
	}
	if len(j.Quiz) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(j.Quiz))
	}
}

func TestNew_Validation(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name string
		role string
		desc string
		quiz []Question
		want error
	}{
		{"empty role", "", "d", validQuiz(), ErrEmptyRole},
		{"empty description", "r", " ", validQuiz(), ErrEmptyDescription},
		{"empty quiz", "r", "d", nil, ErrEmptyQuiz},
		{"empty question", "r", "d", []Question{{Text: " ", Options: []string{"a", "b", "c", "d"}}}, ErrEmptyQuestion},
		{"wrong option count", "r", "d", []Question{{Text: "q", Options: []string{"a", "b"}}}, ErrBadOptionCount},
		{"empty option", "r", "d", []Question{{Text: "q", Options: []string{"a", "b", "", "d"}}}, ErrEmptyOption},
		{"duplicate option", "r", "d", []Question{{Text: "q", Options: []string{"a", "a", "c", "d"}}}, ErrDuplicateOption},
		{"correct out of range", "r", "d", []Question{{Text: "q", Options: []string{"a", "b", "c", "d"}, CorrectOption: 4}}, ErrBadCorrectOption},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(uuid.New(), tc.role, tc.desc, tc.quiz, now)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	suffix := "loyw3v28" // 1700000000000 in base 36

	got := Slugify("Frontend Developer Intern!", now)
	want := "frontend-developer-intern-" + suffix
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}

	if got := Slugify("???", now); got != suffix {
		t.Fatalf("symbol-only role should fall back to suffix, got %q", got)
	}
}

package dto

import "dmless/internal/domain/screening"

// QuestionView is the quiz question as the candidate sees it. The correct
// option never leaves the server.
type QuestionView struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// JobView is the public job info shown on the apply page.
type JobView struct {
	Role        string         `json:"role"`
	Description string         `json:"description"`
	Questions   []QuestionView `json:"questions"`
}

// SessionResponse is the candidate's view of their screening session after
// every operation: the token to resume with, the current stage, and the
// answers selected so far.
type SessionResponse struct {
	Token   string   `json:"token"`
	Stage   string   `json:"stage"`
	Job     *JobView `json:"job,omitempty"`
	Answers []int    `json:"answers,omitempty"`
}

func NewSessionResponse(s *screening.Session) SessionResponse {
	resp := SessionResponse{
		Token:   s.ID.String(),
		Stage:   string(s.Stage),
		Answers: s.AnswerSnapshot(),
	}

	if s.Job != nil {
		view := JobView{
			Role:        s.Job.Role,
			Description: s.Job.Description,
			Questions:   make([]QuestionView, 0, len(s.Job.Quiz)),
		}
		for _, q := range s.Job.Quiz {
			view.Questions = append(view.Questions, QuestionView{Text: q.Text, Options: q.Options})
		}
		resp.Job = &view
	}

	return resp
}

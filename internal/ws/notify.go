package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"dmless/internal/domain/candidate"
)

// CandidateRecordedEvent is pushed to the owning recruiter whenever a
// candidate reaches a terminal status on one of their jobs.
type CandidateRecordedEvent struct {
	Type      string `json:"type"`
	JobID     string `json:"job_id"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Notifier adapts the hub to the screening flow's notification port.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) CandidateRecorded(recruiterID, jobID uuid.UUID, status candidate.Status) {
	if n == nil || n.hub == nil {
		return
	}

	evt := CandidateRecordedEvent{
		Type:      "candidate_recorded",
		JobID:     jobID.String(),
		Status:    string(status),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Send(recruiterID, b)
}

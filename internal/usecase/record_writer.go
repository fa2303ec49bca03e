package usecase

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"dmless/internal/domain/candidate"

	"github.com/google/uuid"
)

// Resume is an uploaded resume blob with its client-declared metadata. The
// content type check is by declaration only; no sniffing.
type Resume struct {
	Filename    string
	ContentType string
	Data        []byte
}

// RecordWriter persists the terminal outcome of one screening session. Both
// operations are fire-once per session: the session id is the idempotency key
// and the candidate repository deduplicates on it.
type RecordWriter interface {
	WriteKnockedOut(ctx context.Context, jobID, sessionID uuid.UUID, answers []int) (uuid.UUID, error)
	WriteShortlisted(ctx context.Context, jobID, sessionID uuid.UUID, applicant candidate.Identity, answers []int, resume Resume) (uuid.UUID, error)
}

type recordWriter struct {
	records candidate.Repository
	resumes ResumeStore

	now func() time.Time
}

func NewRecordWriter(records candidate.Repository, resumes ResumeStore) RecordWriter {
	return &recordWriter{records: records, resumes: resumes, now: time.Now}
}

// WriteKnockedOut stores the failed-quiz record. No identity was ever
// collected, so the record carries none.
func (w *recordWriter) WriteKnockedOut(ctx context.Context, jobID, sessionID uuid.UUID, answers []int) (uuid.UUID, error) {
	return w.records.Insert(ctx, candidate.Record{
		JobID:     jobID,
		SessionID: sessionID,
		Status:    candidate.StatusKnockedOut,
		Answers:   answers,
		CreatedAt: w.now().UTC(),
	})
}

// WriteShortlisted uploads the resume first, then inserts the record pointing
// at the stored location. If the insert fails after a successful upload the
// blob is left orphaned; a retry re-uploads under a fresh timestamp and the
// idempotent insert still yields a single record.
func (w *recordWriter) WriteShortlisted(ctx context.Context, jobID, sessionID uuid.UUID, applicant candidate.Identity, answers []int, resume Resume) (uuid.UUID, error) {
	dst := resumePath(jobID, resume.Filename, w.now())
	location, err := w.resumes.Save(ctx, dst, resume.Data)
	if err != nil {
		return uuid.Nil, fmt.Errorf("resume upload: %w", err)
	}

	return w.records.Insert(ctx, candidate.Record{
		JobID:          jobID,
		SessionID:      sessionID,
		Identity:       &applicant,
		Status:         candidate.StatusShortlisted,
		Answers:        answers,
		ResumeLocation: location,
		CreatedAt:      w.now().UTC(),
	})
}

// resumePath namespaces the blob by job and timestamp so candidates reusing
// a filename cannot collide.
func resumePath(jobID uuid.UUID, filename string, now time.Time) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "resume.pdf"
	}
	return fmt.Sprintf("jobs/%s/%d-%s", jobID, now.UnixMilli(), name)
}

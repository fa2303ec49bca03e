package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"dmless/internal/domain/candidate"
	"dmless/internal/domain/job"
	"dmless/internal/domain/screening"

	"github.com/google/uuid"
)

var (
	ErrSubmissionInFlight  = errors.New("submission already in progress")
	ErrApplicantIncomplete = errors.New("name and email are required")
	ErrResumeMissing       = errors.New("resume file is required")
	ErrResumeNotPDF        = errors.New("resume must be a PDF file")
)

const resumeContentType = "application/pdf"

// ApplicantInput is the identity + resume form a passing candidate submits.
type ApplicantInput struct {
	Name   string
	Email  string
	Resume Resume
}

// ScreeningUsecase drives one candidate's journey through the quiz and
// application. Every call loads the session, applies exactly one transition
// and saves it back; validation failures leave the stored session untouched.
type ScreeningUsecase interface {
	StartSession(ctx context.Context, slug string) (*screening.Session, error)
	BeginQuiz(ctx context.Context, sessionID uuid.UUID) (*screening.Session, error)
	AnswerQuestion(ctx context.Context, sessionID uuid.UUID, question, option int) (*screening.Session, error)
	SubmitQuiz(ctx context.Context, sessionID uuid.UUID) (*screening.Session, error)
	SubmitResume(ctx context.Context, sessionID uuid.UUID, in ApplicantInput) (*screening.Session, error)
}

type Screening struct {
	jobs     job.Repository
	sessions screening.Store
	writer   RecordWriter
	cache    Cache
	notifier FunnelNotifier
	logger   *log.Logger

	sessionTTL time.Duration
}

func NewScreeningUsecase(
	jobs job.Repository,
	sessions screening.Store,
	writer RecordWriter,
	cache Cache,
	notifier FunnelNotifier,
	logger *log.Logger,
	sessionTTL time.Duration,
) *Screening {
	if sessionTTL <= 0 {
		sessionTTL = time.Hour
	}
	return &Screening{
		jobs:       jobs,
		sessions:   sessions,
		writer:     writer,
		cache:      cache,
		notifier:   notifier,
		logger:     logger,
		sessionTTL: sessionTTL,
	}
}

// StartSession resolves the apply link and opens a fresh session. An unknown
// slug, and deliberately also a fetch failure, yield an absorbing not_found
// session that is never stored.
func (u *Screening) StartSession(ctx context.Context, slug string) (*screening.Session, error) {
	sess := screening.New()

	j, err := u.jobs.GetBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		if !errors.Is(err, job.ErrNotFound) && u.logger != nil {
			u.logger.Printf("[Screening] job fetch failed, treating as not found | slug=%s err=%v", slug, err)
		}
		_ = sess.MarkNotFound()
		return sess, nil
	}

	if err := sess.AttachJob(j); err != nil {
		return nil, ErrInternal
	}
	if err := u.sessions.Save(ctx, sess, u.sessionTTL); err != nil {
		return nil, ErrInternal
	}
	return sess, nil
}

func (u *Screening) BeginQuiz(ctx context.Context, sessionID uuid.UUID) (*screening.Session, error) {
	sess, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := sess.Begin(); err != nil {
		return nil, err
	}
	if err := u.sessions.Save(ctx, sess, u.sessionTTL); err != nil {
		return nil, ErrInternal
	}
	return sess, nil
}

func (u *Screening) AnswerQuestion(ctx context.Context, sessionID uuid.UUID, question, option int) (*screening.Session, error) {
	sess, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := sess.Answer(question, option); err != nil {
		return nil, err
	}
	if err := u.sessions.Save(ctx, sess, u.sessionTTL); err != nil {
		return nil, ErrInternal
	}
	return sess, nil
}

// SubmitQuiz scores a complete answer sheet. All correct advances to resume
// collection with no record written; any incorrect writes the knocked-out
// record first and only then commits the terminal stage, so a failed write
// leaves the candidate in quiz and free to retry.
func (u *Screening) SubmitQuiz(ctx context.Context, sessionID uuid.UUID) (*screening.Session, error) {
	sess, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	release, err := u.acquireSubmitLock(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer release()

	allCorrect, err := sess.Score()
	if err != nil {
		return nil, err
	}

	if allCorrect {
		if err := sess.AdvanceToUpload(); err != nil {
			return nil, ErrInternal
		}
		if err := u.sessions.Save(ctx, sess, u.sessionTTL); err != nil {
			return nil, ErrInternal
		}
		return sess, nil
	}

	recordID, err := u.writer.WriteKnockedOut(ctx, sess.Job.ID, sess.ID, sess.AnswerSnapshot())
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Screening] knocked-out record write failed | session=%s err=%v", sess.ID, err)
		}
		return nil, ErrInternal
	}

	if err := sess.FinishKnockedOut(); err != nil {
		return nil, ErrInternal
	}
	if err := u.sessions.Save(ctx, sess, u.sessionTTL); err != nil {
		// the record is durable; the stale session only costs a retried
		// submit, which the idempotent insert absorbs
		if u.logger != nil {
			u.logger.Printf("[Screening] session save failed after knockout | session=%s err=%v", sess.ID, err)
		}
	}

	u.recordWritten(ctx, sess.Job, recordID, candidate.StatusKnockedOut)
	return sess, nil
}

// SubmitResume validates the applicant form, uploads the resume and persists
// the shortlisted record. Validation failures keep the session in upload.
func (u *Screening) SubmitResume(ctx context.Context, sessionID uuid.UUID, in ApplicantInput) (*screening.Session, error) {
	sess, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Stage != screening.StageUpload {
		return nil, fmt.Errorf("%w: %s -> %s", screening.ErrInvalidTransition, sess.Stage, screening.StageSubmitted)
	}

	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		return nil, ErrApplicantIncomplete
	}
	if len(in.Resume.Data) == 0 {
		return nil, ErrResumeMissing
	}
	if in.Resume.ContentType != resumeContentType {
		return nil, ErrResumeNotPDF
	}

	release, err := u.acquireSubmitLock(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer release()

	applicant := candidate.Identity{Name: name, Email: email}
	recordID, err := u.writer.WriteShortlisted(ctx, sess.Job.ID, sess.ID, applicant, sess.AnswerSnapshot(), in.Resume)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Screening] shortlisted record write failed | session=%s err=%v", sess.ID, err)
		}
		return nil, ErrInternal
	}

	if err := sess.FinishSubmitted(); err != nil {
		return nil, ErrInternal
	}
	if err := u.sessions.Save(ctx, sess, u.sessionTTL); err != nil {
		if u.logger != nil {
			u.logger.Printf("[Screening] session save failed after submit | session=%s err=%v", sess.ID, err)
		}
	}

	u.recordWritten(ctx, sess.Job, recordID, candidate.StatusShortlisted)
	return sess, nil
}

func (u *Screening) load(ctx context.Context, sessionID uuid.UUID) (*screening.Session, error) {
	sess, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, screening.ErrSessionNotFound) {
			return nil, err
		}
		return nil, ErrInternal
	}
	return sess, nil
}

// acquireSubmitLock guards a session's terminal write against rapid repeated
// clicks. The lock is advisory: if the cache cannot take it the idempotent
// insert is still the hard guarantee.
func (u *Screening) acquireSubmitLock(ctx context.Context, sessionID uuid.UUID) (func(), error) {
	if u.cache == nil {
		return func() {}, nil
	}

	key := "screening:submit:" + sessionID.String()
	ok, err := u.cache.SetIfNotExists(ctx, key, "1", 30*time.Second)
	if err == nil && !ok {
		return nil, ErrSubmissionInFlight
	}
	return func() { _ = u.cache.Delete(ctx, key) }, nil
}

func (u *Screening) recordWritten(ctx context.Context, j *job.Job, recordID uuid.UUID, status candidate.Status) {
	if u.logger != nil {
		u.logger.Printf("[Screening] candidate recorded | job=%s record=%s status=%s", j.ID, recordID, status)
	}
	if u.cache != nil {
		_ = u.cache.Delete(ctx, dashboardStatsKey(j.RecruiterID))
	}
	if u.notifier != nil {
		u.notifier.CandidateRecorded(j.RecruiterID, j.ID, status)
	}
}

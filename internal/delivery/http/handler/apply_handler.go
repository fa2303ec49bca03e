package handler

import (
	"errors"
	"io"
	"mime/multipart"

	"dmless/internal/delivery/http/dto"
	"dmless/internal/delivery/http/middleware"
	"dmless/internal/domain/screening"
	"dmless/internal/pkg/response"
	"dmless/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// ApplyHandler is the public, unauthenticated candidate surface: resolving
// an apply link and walking one session through quiz and resume upload.
type ApplyHandler struct {
	uc usecase.ScreeningUsecase
}

func NewApplyHandler(uc usecase.ScreeningUsecase) *ApplyHandler {
	return &ApplyHandler{uc: uc}
}

func (h *ApplyHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/apply/:slug", h.Open)

	sessions := r.Group("/sessions/:token")
	sessions.Post("/start", h.Start)
	sessions.Put("/answers", h.Answer)
	sessions.Post("/submit", h.Submit)
	sessions.Post("/resume", h.Resume)
}

// Open resolves the apply link. An unknown slug still returns a session so
// the client can render the not-found state, but with a 404 status.
func (h *ApplyHandler) Open(c fiber.Ctx) error {
	sess, err := h.uc.StartSession(c.Context(), c.Params("slug"))
	if err != nil {
		return mapScreeningError(err)
	}

	body := dto.NewSessionResponse(sess)
	if sess.Stage == screening.StageNotFound {
		return response.Error(c, fiber.StatusNotFound, "Job not found", body)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, body)
}

func (h *ApplyHandler) Start(c fiber.Ctx) error {
	id, err := sessionToken(c)
	if err != nil {
		return err
	}

	sess, err := h.uc.BeginQuiz(c.Context(), id)
	if err != nil {
		return mapScreeningError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSessionResponse(sess))
}

type answerRequest struct {
	Question int `json:"question"`
	Option   int `json:"option"`
}

func (h *ApplyHandler) Answer(c fiber.Ctx) error {
	id, err := sessionToken(c)
	if err != nil {
		return err
	}

	var req answerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	sess, err := h.uc.AnswerQuestion(c.Context(), id, req.Question, req.Option)
	if err != nil {
		return mapScreeningError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSessionResponse(sess))
}

func (h *ApplyHandler) Submit(c fiber.Ctx) error {
	id, err := sessionToken(c)
	if err != nil {
		return err
	}

	sess, err := h.uc.SubmitQuiz(c.Context(), id)
	if err != nil {
		return mapScreeningError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSessionResponse(sess))
}

// Resume accepts the shortlisted candidate's multipart form: name, email and
// the resume file.
func (h *ApplyHandler) Resume(c fiber.Ctx) error {
	id, err := sessionToken(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		fileHeader = nil
	}
	resume, err := readResume(fileHeader)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	sess, err := h.uc.SubmitResume(c.Context(), id, usecase.ApplicantInput{
		Name:   c.FormValue("name"),
		Email:  c.FormValue("email"),
		Resume: resume,
	})
	if err != nil {
		return mapScreeningError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSessionResponse(sess))
}

func sessionToken(c fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("token"))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusNotFound, "Session not found", nil, err)
	}
	return id, nil
}

func readResume(fh *multipart.FileHeader) (usecase.Resume, error) {
	if fh == nil {
		return usecase.Resume{}, nil
	}

	f, err := fh.Open()
	if err != nil {
		return usecase.Resume{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return usecase.Resume{}, err
	}

	return usecase.Resume{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func mapScreeningError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, screening.ErrSessionNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Session not found", nil, err)
	case errors.Is(err, screening.ErrInvalidTransition):
		return middleware.NewAppError(fiber.StatusConflict, "Action not allowed in the current stage", nil, err)
	case errors.Is(err, screening.ErrQuestionOutOfRange),
		errors.Is(err, screening.ErrOptionOutOfRange):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, screening.ErrIncompleteAnswers):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Every question must be answered", nil, err)
	case errors.Is(err, usecase.ErrApplicantIncomplete):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Name and email are required", nil, err)
	case errors.Is(err, usecase.ErrResumeMissing):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Resume file is required", nil, err)
	case errors.Is(err, usecase.ErrResumeNotPDF):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Resume must be a PDF file", nil, err)
	case errors.Is(err, usecase.ErrSubmissionInFlight):
		return middleware.NewAppError(fiber.StatusConflict, "Submission already in progress", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

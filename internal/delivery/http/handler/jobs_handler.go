package handler

import (
	"errors"

	"dmless/internal/delivery/http/dto"
	"dmless/internal/delivery/http/middleware"
	"dmless/internal/domain/job"
	"dmless/internal/pkg/response"
	"dmless/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobsHandler struct {
	jobs      usecase.JobsUsecase
	dashboard usecase.DashboardUsecase
}

func NewJobsHandler(jobs usecase.JobsUsecase, dashboard usecase.DashboardUsecase) *JobsHandler {
	return &JobsHandler{jobs: jobs, dashboard: dashboard}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/", h.List)
}

type createJobRequest struct {
	Role        string         `json:"role"`
	Description string         `json:"description"`
	Quiz        []job.Question `json:"quiz"`
}

func (h *JobsHandler) Create(c fiber.Ctx) error {
	recruiterID, err := recruiterFromLocals(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.jobs.Create(c.Context(), recruiterID, usecase.CreateJobInput{
		Role:        req.Role,
		Description: req.Description,
		Quiz:        req.Quiz,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, err.Error(), nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewJobResponse(j))
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	recruiterID, err := recruiterFromLocals(c)
	if err != nil {
		return err
	}

	jobs, err := h.dashboard.Jobs(c.Context(), recruiterID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListResponse(jobs))
}

// recruiterFromLocals reads the recruiter id the auth middleware stored.
func recruiterFromLocals(c fiber.Ctx) (uuid.UUID, error) {
	id, ok := c.Locals(middleware.CtxRecruiterIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return id, nil
}

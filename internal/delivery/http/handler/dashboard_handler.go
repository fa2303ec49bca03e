package handler

import (
	"dmless/internal/delivery/http/middleware"
	"dmless/internal/pkg/response"
	"dmless/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type DashboardHandler struct {
	uc usecase.DashboardUsecase
}

func NewDashboardHandler(uc usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/stats", h.Stats)
}

func (h *DashboardHandler) Stats(c fiber.Ctx) error {
	recruiterID, err := recruiterFromLocals(c)
	if err != nil {
		return err
	}

	stats, err := h.uc.Stats(c.Context(), recruiterID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, stats)
}

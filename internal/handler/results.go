package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Dharmub376/Digital-Chunab/internal/middleware"
	"github.com/Dharmub376/Digital-Chunab/internal/service"
)

type ResultsHandler struct {
	svc *service.ResultsService
}

func NewResultsHandler(svc *service.ResultsService) *ResultsHandler {
	return &ResultsHandler{svc: svc}
}

// Results handles GET /api/admin/results
func (h *ResultsHandler) Results(c fiber.Ctx) error {
	results, cached, err := h.svc.Results(c.Context())
	if err != nil {
		middleware.Logger.Error().Err(err).Msg("results tally failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	if cached {
		Metrics.CacheHits.Inc()
	} else {
		Metrics.CacheMisses.Inc()
	}

	return c.JSON(fiber.Map{"success": true, "data": results})
}

package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Dharmub376/Digital-Chunab/internal/middleware"
	"github.com/Dharmub376/Digital-Chunab/internal/model"
	"github.com/Dharmub376/Digital-Chunab/internal/service"
)

type VotingHandler struct {
	svc *service.VotingService
}

func NewVotingHandler(svc *service.VotingService) *VotingHandler {
	return &VotingHandler{svc: svc}
}

// Cast handles POST /api/voting/vote
func (h *VotingHandler) Cast(c fiber.Ctx) error {
	var req model.VoteRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if msg := middleware.ValidateStruct(req); msg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, msg)
	}

	student := middleware.PrincipalFrom(c)
	receipt, err := h.svc.Cast(c.Context(), student.ID, req, c.IP())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPositionUnavailable),
			errors.Is(err, service.ErrVotingClosed),
			errors.Is(err, service.ErrInvalidCandidate),
			errors.Is(err, service.ErrAlreadyVoted):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		middleware.Logger.Error().Err(err).Msg("vote cast failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	Metrics.VotesTotal.WithLabelValues(receipt.Position).Inc()

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Vote cast successfully",
		"data":    receipt,
	})
}

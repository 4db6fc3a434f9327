package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Dharmub376/Digital-Chunab/internal/middleware"
	"github.com/Dharmub376/Digital-Chunab/internal/service"
)

type StudentHandler struct {
	svc *service.StudentService
}

func NewStudentHandler(svc *service.StudentService) *StudentHandler {
	return &StudentHandler{svc: svc}
}

// Positions handles GET /api/student/positions
func (h *StudentHandler) Positions(c fiber.Ctx) error {
	student := middleware.PrincipalFrom(c)
	positions, err := h.svc.OpenPositions(c.Context(), student.ID)
	if err != nil {
		middleware.Logger.Error().Err(err).Msg("list open positions failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}
	return c.JSON(fiber.Map{"success": true, "data": positions})
}

// Dashboard handles GET /api/student/dashboard
func (h *StudentHandler) Dashboard(c fiber.Ctx) error {
	student := middleware.PrincipalFrom(c)
	dashboard, err := h.svc.Dashboard(c.Context(), student.ID)
	if err != nil {
		middleware.Logger.Error().Err(err).Msg("student dashboard failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}
	return c.JSON(fiber.Map{"success": true, "data": dashboard})
}

// Profile handles GET /api/student/profile
func (h *StudentHandler) Profile(c fiber.Ctx) error {
	student := middleware.PrincipalFrom(c)
	profile, err := h.svc.Profile(c.Context(), student.ID)
	if err != nil {
		middleware.Logger.Error().Err(err).Msg("student profile failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}
	return c.JSON(fiber.Map{"success": true, "data": profile})
}

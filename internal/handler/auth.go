package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Dharmub376/Digital-Chunab/internal/middleware"
	"github.com/Dharmub376/Digital-Chunab/internal/model"
	"github.com/Dharmub376/Digital-Chunab/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req model.LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if msg := middleware.ValidateStruct(req); msg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, msg)
	}

	resp, err := h.svc.Login(c.Context(), req, c.IP())
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		middleware.Logger.Error().Err(err).Msg("login failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	Metrics.LoginsTotal.WithLabelValues(resp.User.Role).Inc()

	return c.JSON(resp)
}

package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/Dharmub376/Digital-Chunab/internal/middleware"
	"github.com/Dharmub376/Digital-Chunab/internal/model"
	"github.com/Dharmub376/Digital-Chunab/internal/repository"
	"github.com/Dharmub376/Digital-Chunab/internal/service"
)

type AdminHandler struct {
	svc *service.AdminService
}

func NewAdminHandler(svc *service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// Dashboard handles GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(c fiber.Ctx) error {
	dashboard, err := h.svc.Dashboard(c.Context())
	if err != nil {
		middleware.Logger.Error().Err(err).Msg("admin dashboard failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}
	return c.JSON(fiber.Map{"success": true, "data": dashboard})
}

// ListStudents handles GET /api/admin/students
func (h *AdminHandler) ListStudents(c fiber.Ctx) error {
	page, limit := middleware.ValidatePagination(c.Query("page"), c.Query("limit"))
	search := middleware.ValidateSearch(c.Query("search"))

	list, err := h.svc.ListStudents(c.Context(), search, page, limit)
	if err != nil {
		middleware.Logger.Error().Err(err).Msg("list students failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}
	return c.JSON(fiber.Map{"success": true, "data": list})
}

// CreateStudent handles POST /api/admin/students
func (h *AdminHandler) CreateStudent(c fiber.Ctx) error {
	var req model.CreateStudentRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if msg := middleware.ValidateStruct(req); msg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, msg)
	}

	admin := middleware.PrincipalFrom(c)
	student, err := h.svc.CreateStudent(c.Context(), admin.ID, req, c.IP())
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Student already exists")
		}
		middleware.Logger.Error().Err(err).Msg("create student failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Student created successfully",
		"data":    student,
	})
}

// UpdateStudent handles PUT /api/admin/students/:id
func (h *AdminHandler) UpdateStudent(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateUUID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	var req model.UpdateStudentRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if msg := middleware.ValidateStruct(req); msg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, msg)
	}

	admin := middleware.PrincipalFrom(c)
	student, err := h.svc.UpdateStudent(c.Context(), admin.ID, id, req, c.IP())
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Student not found")
		case errors.Is(err, repository.ErrDuplicate):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Student already exists")
		}
		middleware.Logger.Error().Err(err).Msg("update student failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student updated successfully",
		"data":    student,
	})
}

// DeleteStudent handles DELETE /api/admin/students/:id
func (h *AdminHandler) DeleteStudent(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateUUID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	admin := middleware.PrincipalFrom(c)
	if err := h.svc.DeleteStudent(c.Context(), admin.ID, id, c.IP()); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Student not found")
		}
		middleware.Logger.Error().Err(err).Msg("delete student failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student deleted successfully",
	})
}

// ListPositions handles GET /api/admin/positions
func (h *AdminHandler) ListPositions(c fiber.Ctx) error {
	positions, err := h.svc.ListPositions(c.Context())
	if err != nil {
		middleware.Logger.Error().Err(err).Msg("list positions failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}
	return c.JSON(fiber.Map{"success": true, "data": positions})
}

// CreatePosition handles POST /api/admin/positions
func (h *AdminHandler) CreatePosition(c fiber.Ctx) error {
	req, errMsg := bindPositionRequest(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	admin := middleware.PrincipalFrom(c)
	position, err := h.svc.CreatePosition(c.Context(), admin.ID, req, c.IP())
	if err != nil {
		middleware.Logger.Error().Err(err).Msg("create position failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Position created successfully",
		"data":    position,
	})
}

// UpdatePosition handles PUT /api/admin/positions/:id
func (h *AdminHandler) UpdatePosition(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateUUID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	req, errMsg := bindPositionRequest(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	admin := middleware.PrincipalFrom(c)
	position, err := h.svc.UpdatePosition(c.Context(), admin.ID, id, req, c.IP())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Position not found")
		}
		middleware.Logger.Error().Err(err).Msg("update position failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Position updated successfully",
		"data":    position,
	})
}

// DeletePosition handles DELETE /api/admin/positions/:id
func (h *AdminHandler) DeletePosition(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateUUID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	admin := middleware.PrincipalFrom(c)
	if err := h.svc.DeletePosition(c.Context(), admin.ID, id, c.IP()); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Position not found")
		}
		middleware.Logger.Error().Err(err).Msg("delete position failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Position deleted successfully",
	})
}

// ListCandidates handles GET /api/admin/candidates
func (h *AdminHandler) ListCandidates(c fiber.Ctx) error {
	candidates, err := h.svc.ListCandidates(c.Context())
	if err != nil {
		middleware.Logger.Error().Err(err).Msg("list candidates failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}
	return c.JSON(fiber.Map{"success": true, "data": candidates})
}

// CreateCandidate handles POST /api/admin/candidates
func (h *AdminHandler) CreateCandidate(c fiber.Ctx) error {
	var req model.CandidateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if msg := middleware.ValidateStruct(req); msg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, msg)
	}

	admin := middleware.PrincipalFrom(c)
	candidate, err := h.svc.CreateCandidate(c.Context(), admin.ID, req, c.IP())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Position not found")
		}
		middleware.Logger.Error().Err(err).Msg("create candidate failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Candidate created successfully",
		"data":    candidate,
	})
}

// UpdateCandidate handles PUT /api/admin/candidates/:id
func (h *AdminHandler) UpdateCandidate(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateUUID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	var req model.CandidateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if msg := middleware.ValidateStruct(req); msg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, msg)
	}

	admin := middleware.PrincipalFrom(c)
	candidate, err := h.svc.UpdateCandidate(c.Context(), admin.ID, id, req, c.IP())
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Candidate not found")
		case errors.Is(err, service.ErrCandidateLocked):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		middleware.Logger.Error().Err(err).Msg("update candidate failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Candidate updated successfully",
		"data":    candidate,
	})
}

// DeleteCandidate handles DELETE /api/admin/candidates/:id
func (h *AdminHandler) DeleteCandidate(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateUUID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, errMsg)
	}

	admin := middleware.PrincipalFrom(c)
	if err := h.svc.DeleteCandidate(c.Context(), admin.ID, id, c.IP()); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Candidate not found")
		}
		middleware.Logger.Error().Err(err).Msg("delete candidate failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Candidate deleted successfully",
	})
}

// Activity handles GET /api/admin/activity
func (h *AdminHandler) Activity(c fiber.Ctx) error {
	page, limit := middleware.ValidatePagination(c.Query("page"), c.Query("limit"))
	list, err := h.svc.ActivityLog(c.Context(), page, limit)
	if err != nil {
		middleware.Logger.Error().Err(err).Msg("activity log failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}
	return c.JSON(fiber.Map{"success": true, "data": list})
}

// bindPositionRequest parses and validates a position body, including the
// start<=end window invariant.
func bindPositionRequest(c fiber.Ctx) (model.PositionRequest, string) {
	var req model.PositionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return req, "Invalid request body"
	}
	if msg := middleware.ValidateStruct(req); msg != "" {
		return req, msg
	}
	if req.EndTime.Before(req.StartTime) {
		return req, "Position end time must not be before start time"
	}
	return req, ""
}

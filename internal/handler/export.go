package handler

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/Dharmub376/Digital-Chunab/internal/middleware"
	"github.com/Dharmub376/Digital-Chunab/internal/service"
)

type ExportHandler struct {
	svc *service.ResultsService
}

func NewExportHandler(svc *service.ResultsService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// ResultsCSV handles GET /api/admin/results/export/csv
// Streams the current tally as a CSV download.
func (h *ExportHandler) ResultsCSV(c fiber.Ctx) error {
	results, _, err := h.svc.Results(c.Context())
	if err != nil {
		middleware.Logger.Error().Err(err).Msg("results export failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	var buf bytes.Buffer
	if err := service.WriteCSV(&buf, results); err != nil {
		middleware.Logger.Error().Err(err).Msg("results csv encode failed")
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	filename := fmt.Sprintf("results-%s.csv", time.Now().Format("20060102-150405"))
	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", "attachment; filename="+filename)
	return c.Send(buf.Bytes())
}

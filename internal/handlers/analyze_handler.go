package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"alfredoptarigan/ats-screener/internal/logger"
	"alfredoptarigan/ats-screener/internal/models"
	"alfredoptarigan/ats-screener/internal/services"
)

type AnalyzeHandler struct {
	pool     services.AnalysisPool
	uploads  services.UploadService
	accounts services.AccountService
}

func NewAnalyzeHandler(
	pool services.AnalysisPool,
	uploads services.UploadService,
	accounts services.AccountService,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		pool:     pool,
		uploads:  uploads,
		accounts: accounts,
	}
}

// HandleAnalyze handles POST /analyze. Nothing is persisted.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	report, _, err := h.analyze(c)
	if err != nil {
		return err
	}

	return c.JSON(models.AnalyzeResponse{
		ScoreReport: report,
		Message:     "Resume analyzed successfully!",
	})
}

// HandleDashboardAnalyze handles POST /dashboard/analyze and appends the
// result to the caller's history.
func (h *AnalyzeHandler) HandleDashboardAnalyze(c *fiber.Ctx) error {
	userID := CurrentUserID(c)

	report, jobDesc, err := h.analyze(c)
	if err != nil {
		return err
	}

	if _, err := h.accounts.RecordAnalysis(c.UserContext(), userID, report, jobDesc); err != nil {
		logger.Error(c.UserContext(), "❌ Failed to save analysis history", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save analysis history")
	}

	return c.JSON(models.AnalyzeResponse{
		ScoreReport: report,
		Message:     "Resume analyzed and saved to your history!",
	})
}

func (h *AnalyzeHandler) analyze(c *fiber.Ctx) (*models.ScoreReport, string, error) {
	file, err := c.FormFile("resume")
	if err != nil {
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "No file uploaded")
	}

	data, err := h.uploads.ReadResume(file)
	switch {
	case errors.Is(err, services.ErrUnsupportedFileType):
		return nil, "", fiber.NewError(fiber.StatusBadRequest, "Only PDF or DOCX resumes are accepted")
	case errors.Is(err, services.ErrFileTooLarge):
		return nil, "", fiber.NewError(
			fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("Resume file too large. Max size: %d bytes", h.uploads.MaxFileSize()),
		)
	case err != nil:
		return nil, "", fiber.NewError(fiber.StatusInternalServerError, "Failed to read uploaded file")
	}

	jobDesc := utils.CopyString(c.FormValue("job_desc"))

	report, err := h.pool.Submit(c.UserContext(), services.AnalysisInput{
		Filename:       file.Filename,
		Data:           data,
		JobDescription: jobDesc,
	})
	switch {
	case errors.Is(err, services.ErrPoolStopped):
		return nil, "", fiber.NewError(fiber.StatusServiceUnavailable, "Server is shutting down")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, "", fiber.NewError(fiber.StatusRequestTimeout, "Analysis cancelled")
	case err != nil:
		return nil, "", fiber.NewError(fiber.StatusInternalServerError, "Failed to analyze resume")
	}

	return report, jobDesc, nil
}

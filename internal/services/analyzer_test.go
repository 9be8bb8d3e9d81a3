package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/ats-screener/internal/services"
	"alfredoptarigan/ats-screener/internal/services/servicestest"
)

func TestAnalyzer_AnalyzeText(t *testing.T) {
	ctx := context.Background()

	t.Run("empty resume", func(t *testing.T) {
		a := services.NewAnalyzer(services.DefaultPipelineConfig(), services.NewTextExtractor())
		report := a.AnalyzeText(ctx, "", "")

		assert.Equal(t, 0.0, report.ATSScore)
		require.NotNil(t, report.JobMatch)
		assert.Equal(t, 0.0, *report.JobMatch)
		assert.Len(t, report.Suggestions, services.DefaultSuggestionCap)
		assert.Len(t, report.Scores, len(services.DefaultJobRoles))
	})

	t.Run("empty resume with the maximum cap", func(t *testing.T) {
		cfg := services.DefaultPipelineConfig()
		cfg.SuggestionCap = services.MaxSuggestions

		report := services.NewAnalyzer(cfg, services.NewTextExtractor()).AnalyzeText(ctx, "", "")
		assert.Len(t, report.Suggestions, services.MaxSuggestions)
	})

	t.Run("features switched off", func(t *testing.T) {
		cfg := services.DefaultPipelineConfig()
		cfg.IncludeJobMatch = false
		cfg.IncludeRoleClassification = false
		cfg.SuggestionCap = 0

		report := services.NewAnalyzer(cfg, services.NewTextExtractor()).
			AnalyzeText(ctx, "python developer", "python developer")

		assert.Nil(t, report.JobMatch)
		assert.Nil(t, report.Scores)
		assert.Empty(t, report.BestRole)
		assert.Empty(t, report.Suggestions)
		assert.Equal(t, report.ATSScore, report.HistoryScore())
	})

	t.Run("scores against the job description", func(t *testing.T) {
		a := services.NewAnalyzer(services.DefaultPipelineConfig(), services.NewTextExtractor())
		report := a.AnalyzeText(ctx,
			"i built a machine learning project using python, flask, sql, and pushed it to github.",
			"Python developer with Flask and SQL")

		assert.Equal(t, 38.89, report.ATSScore)
		require.NotNil(t, report.JobMatch)
		assert.Greater(t, *report.JobMatch, 0.0)
		assert.Equal(t, *report.JobMatch, report.HistoryScore())
		assert.NotEmpty(t, report.BestRole)
	})
}

func TestAnalyzer_Analyze(t *testing.T) {
	ctx := context.Background()
	a := services.NewAnalyzer(services.DefaultPipelineConfig(), services.NewTextExtractor())

	t.Run("readable pdf", func(t *testing.T) {
		report := a.Analyze(ctx, services.AnalysisInput{
			Filename:       "resume.pdf",
			Data:           servicestest.MinimalPDF("Python SQL GitHub project"),
			JobDescription: "python sql",
		})

		assert.False(t, report.Unreadable)
		assert.Greater(t, report.ATSScore, 0.0)
		require.NotNil(t, report.JobMatch)
		assert.Greater(t, *report.JobMatch, 0.0)
	})

	t.Run("corrupt file degrades instead of failing", func(t *testing.T) {
		report := a.Analyze(ctx, services.AnalysisInput{
			Filename:       "resume.pdf",
			Data:           []byte("%PDF-1.4 broken"),
			JobDescription: "python sql",
		})

		assert.True(t, report.Unreadable)
		assert.Equal(t, 0.0, report.ATSScore)
		require.NotNil(t, report.JobMatch)
		assert.Equal(t, 0.0, *report.JobMatch)
		assert.Len(t, report.Suggestions, services.DefaultSuggestionCap)
	})
}

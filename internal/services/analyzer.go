package services

import (
	"context"

	"go.uber.org/zap"

	"alfredoptarigan/ats-screener/internal/logger"
	"alfredoptarigan/ats-screener/internal/metrics"
	"alfredoptarigan/ats-screener/internal/models"
)

type AnalysisInput struct {
	Filename       string
	Data           []byte
	JobDescription string
}

// Analyzer runs extraction, keyword scoring, similarity scoring and
// suggestion generation for one résumé. It holds no per-call state and is
// safe for concurrent use.
type Analyzer interface {
	Analyze(ctx context.Context, input AnalysisInput) *models.ScoreReport
	AnalyzeText(ctx context.Context, text ResumeText, jobDescription string) *models.ScoreReport
}

type analyzer struct {
	cfg        PipelineConfig
	extractor  TextExtractor
	similarity *SimilarityScorer
}

func NewAnalyzer(cfg PipelineConfig, extractor TextExtractor) Analyzer {
	return &analyzer{
		cfg:        cfg,
		extractor:  extractor,
		similarity: NewSimilarityScorer(cfg.EmptyReference, cfg.DefaultReference),
	}
}

func (a *analyzer) Analyze(ctx context.Context, input AnalysisInput) *models.ScoreReport {
	extraction := a.extractor.Extract(ctx, input.Filename, input.Data)

	report := a.AnalyzeText(ctx, extraction.Text, input.JobDescription)
	report.Unreadable = extraction.Unreadable()

	outcome := metrics.OutcomeOK
	if report.Unreadable {
		outcome = metrics.OutcomeUnreadable
	}
	metrics.Analyses.WithLabelValues(outcome).Inc()
	metrics.ATSScore.Observe(report.ATSScore)
	if report.JobMatch != nil {
		metrics.JobMatchScore.Observe(*report.JobMatch)
	}

	return report
}

func (a *analyzer) AnalyzeText(ctx context.Context, text ResumeText, jobDescription string) *models.ScoreReport {
	report := &models.ScoreReport{
		ATSScore:    ScoreATS(text, a.cfg.Keywords),
		Suggestions: Suggest(text, a.cfg.SuggestionCap),
	}

	if a.cfg.IncludeJobMatch {
		match := a.similarity.Match(text, jobDescription)
		report.JobMatch = &match
	}

	if a.cfg.IncludeRoleClassification {
		report.Scores, report.BestRole = a.similarity.Classify(text, a.cfg.Roles)
	}

	logger.Debug(ctx, "📊 Résumé scored",
		zap.Float64("ats_score", report.ATSScore),
		zap.String("best_role", report.BestRole),
		zap.Int("suggestions", len(report.Suggestions)),
	)

	return report
}

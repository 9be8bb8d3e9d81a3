package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/ats-screener/internal/config"
	"alfredoptarigan/ats-screener/internal/logger"
	"alfredoptarigan/ats-screener/internal/models"
	"alfredoptarigan/ats-screener/internal/services"
)

type scoredFile struct {
	Path   string              `json:"path"`
	Report *models.ScoreReport `json:"report"`
}

// scoreCommand runs the scoring pipeline on local files without the API or
// the database.
func scoreCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <file>...",
		Short: "Score local PDF or DOCX resumes and print JSON reports",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			jobDesc, _ := cmd.Flags().GetString("job")

			pipeline, err := cfg.ScoringPipeline()
			if err != nil {
				return fmt.Errorf("invalid pipeline configuration: %w", err)
			}
			analyzer := services.NewAnalyzer(pipeline, services.NewTextExtractor())

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			failCount := 0
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					logger.Error(ctx, "❌ Failed to read file", zap.String("path", path), zap.Error(err))
					failCount++
					continue
				}

				report := analyzer.Analyze(ctx, services.AnalysisInput{
					Filename:       filepath.Base(path),
					Data:           data,
					JobDescription: jobDesc,
				})
				if err := enc.Encode(scoredFile{Path: path, Report: report}); err != nil {
					return fmt.Errorf("failed to write report: %w", err)
				}
			}

			if failCount > 0 {
				return fmt.Errorf("%d of %d files could not be read", failCount, len(args))
			}
			return nil
		},
	}

	cmd.Flags().String("job", "", "job description to match against")

	return cmd
}

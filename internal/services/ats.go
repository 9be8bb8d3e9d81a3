package services

import "math"

// ScoreATS is the percentage of keywords found in text by plain substring
// containment, rounded to 2 decimals. keywords must be non-empty; see
// PipelineConfig.Validate.
func ScoreATS(text ResumeText, keywords KeywordSet) float64 {
	matches := keywords.CountIn(string(text))
	return round2(float64(matches) / float64(keywords.Len()) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

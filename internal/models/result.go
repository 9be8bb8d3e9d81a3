package models

// ScoreReport is the outcome of one analysis. JobMatch is nil when job
// matching is disabled; Scores and BestRole are empty when role
// classification is disabled.
type ScoreReport struct {
	ATSScore    float64            `json:"ats_score"`
	JobMatch    *float64           `json:"job_match,omitempty"`
	Scores      map[string]float64 `json:"scores,omitempty"`
	BestRole    string             `json:"best_role,omitempty"`
	Suggestions []string           `json:"suggestions"`
	Unreadable  bool               `json:"unreadable,omitempty"`
}

// HistoryScore is the numeric value persisted for a report: the job match
// when present, the ATS score otherwise.
func (r *ScoreReport) HistoryScore() float64 {
	if r.JobMatch != nil {
		return *r.JobMatch
	}
	return r.ATSScore
}

type AnalyzeResponse struct {
	*ScoreReport
	Message string `json:"message,omitempty"`
}

type SignupRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type DashboardResponse struct {
	UserName string         `json:"user_name"`
	Scores   []HistoryEntry `json:"scores"`
	AvgScore float64        `json:"avg_score"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

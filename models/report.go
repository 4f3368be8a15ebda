package models

import "time"

// RiskLevel is the binary screening classification derived from the total
// score and the referral threshold.
type RiskLevel string

const (
	RiskLevelLow  RiskLevel = "low"
	RiskLevelHigh RiskLevel = "high"
)

// ScoreResult is the output of the scoring engine over a set of answers.
type ScoreResult struct {
	TotalScore        int       `json:"total_score"`
	MaxScore          int       `json:"max_score"`
	Threshold         int       `json:"threshold"`
	RecommendReferral bool      `json:"recommend_referral"`
	RiskLevel         RiskLevel `json:"risk_level"`
}

// ReportAnswer is one row of the per-question report breakdown: the
// bilingual question text, what was selected, and whether it scored.
type ReportAnswer struct {
	QuestionNumber int          `json:"question_number"`
	QuestionTextEN string       `json:"question_text_en"`
	QuestionTextAR string       `json:"question_text_ar"`
	SelectedOption AnswerOption `json:"selected_option"`
	OptionLabel    string       `json:"option_label"`
	ScoredPoint    bool         `json:"scored_point"`
	AnsweredAt     time.Time    `json:"answered_at"`
}

// Report is the assembled screening report for a session.
type Report struct {
	SessionToken      string         `json:"session_token"`
	ChildName         string         `json:"child_name"`
	ChildAgeMonths    int            `json:"child_age_months"`
	ParentName        string         `json:"parent_name,omitempty"`
	Language          Language       `json:"language"`
	TotalScore        int            `json:"total_score"`
	MaxScore          int            `json:"max_score"`
	RecommendReferral bool           `json:"recommend_referral"`
	RiskLevel         RiskLevel      `json:"risk_level"`
	Answers           []ReportAnswer `json:"answers"`
	Recommendations   []string       `json:"recommendations"`
	CompletedAt       *time.Time     `json:"completed_at,omitempty"`

	// Draft marks a best-effort report assembled from an incomplete
	// session. The authoritative report always has it false.
	Draft             bool `json:"draft,omitempty"`
	AnsweredQuestions int  `json:"answered_questions"`
}

package services

import (
	"github.com/MostafaKhidr/QCHAT/catalog"
	"github.com/MostafaKhidr/QCHAT/models"
)

// ReferralThreshold is the fixed Q-CHAT-10 cutoff: a total score above it
// classifies the screening as high risk and recommends referral.
const ReferralThreshold = 3

// ScoreService computes the total score and risk classification for a set
// of recorded answers.
type ScoreService interface {
	ComputeScore(answers []models.Answer) models.ScoreResult
}

type scoreService struct {
	catalog *catalog.Catalog
}

// NewScoreService creates a ScoreService backed by the question catalog.
func NewScoreService(cat *catalog.Catalog) ScoreService {
	return &scoreService{catalog: cat}
}

// ComputeScore sums one concern point per answer whose option falls in its
// question's scoring set. Unanswered questions contribute nothing. The
// function is pure: it is the single scoring path for both live previews
// and the authoritative persisted score, so the two can never diverge.
// Note the stored ScoredPoint flag on each answer is ignored here; the
// catalog is the source of truth for the scoring rule.
func (s *scoreService) ComputeScore(answers []models.Answer) models.ScoreResult {
	score := 0
	for _, answer := range answers {
		if s.catalog.ScoresPoint(answer.QuestionNumber, answer.SelectedOption) {
			score++
		}
	}

	risk := models.RiskLevelLow
	referral := score > ReferralThreshold
	if referral {
		risk = models.RiskLevelHigh
	}

	return models.ScoreResult{
		TotalScore:        score,
		MaxScore:          s.catalog.Size(),
		Threshold:         ReferralThreshold,
		RecommendReferral: referral,
		RiskLevel:         risk,
	}
}

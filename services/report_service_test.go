package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MostafaKhidr/QCHAT/catalog"
	"github.com/MostafaKhidr/QCHAT/models"
)

func newTestReportService(repo *fakeSessionRepository) (SessionService, ReportService) {
	cat := catalog.New()
	scorer := NewScoreService(cat)
	return NewSessionService(repo, cat, scorer), NewReportService(repo, cat, scorer)
}

func completeSession(t *testing.T, service SessionService, options map[int]models.AnswerOption) *models.Session {
	t.Helper()
	session, err := service.CreateSession(validProfile())
	assert.NoError(t, err)
	for n := 1; n <= models.TotalQuestions; n++ {
		option, exists := options[n]
		if !exists {
			option = models.OptionA
		}
		_, err := service.SubmitAnswer(session.Token, n, option)
		assert.NoError(t, err)
	}
	stored, err := service.GetSession(session.Token)
	assert.NoError(t, err)
	return stored
}

func TestReportService_Assemble(t *testing.T) {
	t.Run("Completed low-risk session gets a full report", func(t *testing.T) {
		repo := newFakeSessionRepository()
		sessions, reports := newTestReportService(repo)

		session := completeSession(t, sessions, map[int]models.AnswerOption{10: models.OptionE})

		report, err := reports.Assemble(session.Token)
		assert.NoError(t, err)
		assert.Equal(t, session.Token, report.SessionToken)
		assert.Equal(t, 0, report.TotalScore)
		assert.Equal(t, models.TotalQuestions, report.MaxScore)
		assert.Equal(t, models.RiskLevelLow, report.RiskLevel)
		assert.False(t, report.RecommendReferral)
		assert.False(t, report.Draft)
		assert.NotNil(t, report.CompletedAt)
		assert.Len(t, report.Answers, models.TotalQuestions)
		assert.NotEmpty(t, report.Recommendations)

		for _, row := range report.Answers {
			assert.NotEmpty(t, row.QuestionTextEN)
			assert.NotEmpty(t, row.QuestionTextAR)
			assert.NotEmpty(t, row.OptionLabel)
			assert.False(t, row.ScoredPoint)
		}
	})

	t.Run("High-risk session recommends referral", func(t *testing.T) {
		repo := newFakeSessionRepository()
		sessions, reports := newTestReportService(repo)

		options := map[int]models.AnswerOption{}
		for n := 1; n <= 9; n++ {
			options[n] = models.OptionE
		}
		options[10] = models.OptionA
		session := completeSession(t, sessions, options)

		report, err := reports.Assemble(session.Token)
		assert.NoError(t, err)
		assert.Equal(t, 10, report.TotalScore)
		assert.Equal(t, models.RiskLevelHigh, report.RiskLevel)
		assert.True(t, report.RecommendReferral)
		for _, row := range report.Answers {
			assert.True(t, row.ScoredPoint)
		}
	})

	t.Run("Incomplete session is a state error", func(t *testing.T) {
		repo := newFakeSessionRepository()
		sessions, reports := newTestReportService(repo)

		session, err := sessions.CreateSession(validProfile())
		assert.NoError(t, err)
		for n := 1; n <= 4; n++ {
			_, err := sessions.SubmitAnswer(session.Token, n, models.OptionA)
			assert.NoError(t, err)
		}

		_, err = reports.Assemble(session.Token)
		assert.Error(t, err)
		assert.True(t, models.IsKind(err, models.ErrorKindState))
	})

	t.Run("Unknown token is not found", func(t *testing.T) {
		repo := newFakeSessionRepository()
		_, reports := newTestReportService(repo)

		_, err := reports.Assemble("missing-token")
		assert.Error(t, err)
		assert.True(t, models.IsKind(err, models.ErrorKindNotFound))
	})

	t.Run("Arabic sessions get Arabic recommendations", func(t *testing.T) {
		repo := newFakeSessionRepository()
		cat := catalog.New()
		scorer := NewScoreService(cat)
		sessions := NewSessionService(repo, cat, scorer)
		reports := NewReportService(repo, cat, scorer)

		profile := validProfile()
		profile.Language = models.LanguageAR
		session, err := sessions.CreateSession(profile)
		assert.NoError(t, err)
		for n := 1; n <= models.TotalQuestions; n++ {
			_, err := sessions.SubmitAnswer(session.Token, n, models.OptionA)
			assert.NoError(t, err)
		}

		report, err := reports.Assemble(session.Token)
		assert.NoError(t, err)
		assert.Equal(t, cat.Recommendations(models.LanguageAR, report.RiskLevel), report.Recommendations)
		// Q10 answered A scores under reversed scoring.
		assert.Equal(t, 1, report.TotalScore)
	})
}

func TestReportService_AssembleDraft(t *testing.T) {
	t.Run("In-progress session gets a draft preview", func(t *testing.T) {
		repo := newFakeSessionRepository()
		sessions, reports := newTestReportService(repo)

		session, err := sessions.CreateSession(validProfile())
		assert.NoError(t, err)
		_, err = sessions.SubmitAnswer(session.Token, 1, models.OptionE)
		assert.NoError(t, err)
		_, err = sessions.SubmitAnswer(session.Token, 2, models.OptionD)
		assert.NoError(t, err)

		report, err := reports.AssembleDraft(session.Token)
		assert.NoError(t, err)
		assert.True(t, report.Draft)
		assert.Nil(t, report.CompletedAt)
		assert.Equal(t, 2, report.AnsweredQuestions)
		assert.Equal(t, 2, report.TotalScore)
		assert.Len(t, report.Answers, 2)
	})

	t.Run("Draft of a completed session matches the final report", func(t *testing.T) {
		repo := newFakeSessionRepository()
		sessions, reports := newTestReportService(repo)

		session := completeSession(t, sessions, map[int]models.AnswerOption{10: models.OptionE})

		draft, err := reports.AssembleDraft(session.Token)
		assert.NoError(t, err)
		final, err := reports.Assemble(session.Token)
		assert.NoError(t, err)

		assert.False(t, draft.Draft)
		assert.Equal(t, final.TotalScore, draft.TotalScore)
		assert.Equal(t, final.RiskLevel, draft.RiskLevel)
	})
}

package services

import (
	"log"

	"github.com/MostafaKhidr/QCHAT/catalog"
	"github.com/MostafaKhidr/QCHAT/models"
	"github.com/MostafaKhidr/QCHAT/repository"
)

// ReportService assembles the screening report from a stored session, the
// question catalog, and the scoring engine.
type ReportService interface {
	// Assemble builds the authoritative report. It fails with a state
	// error unless the session is completed.
	Assemble(token string) (*models.Report, error)
	// AssembleDraft builds a best-effort preview over whatever answers
	// exist so far. Draft reports are marked as such and never carry a
	// completion timestamp unless the session is actually completed.
	AssembleDraft(token string) (*models.Report, error)
}

type reportService struct {
	repo    repository.SessionRepository
	catalog *catalog.Catalog
	scorer  ScoreService
}

// NewReportService creates a ReportService.
func NewReportService(repo repository.SessionRepository, cat *catalog.Catalog, scorer ScoreService) ReportService {
	return &reportService{repo: repo, catalog: cat, scorer: scorer}
}

func (s *reportService) Assemble(token string) (*models.Report, error) {
	session, err := s.repo.GetByToken(token)
	if err != nil {
		return nil, err
	}
	if session.Status != models.SessionStatusCompleted {
		log.Printf("INFO: [ReportService] Refused report for session %s with status %s.", token, session.Status)
		return nil, models.NewStateError("session is not completed yet")
	}
	return s.build(session, false), nil
}

func (s *reportService) AssembleDraft(token string) (*models.Report, error) {
	session, err := s.repo.GetByToken(token)
	if err != nil {
		return nil, err
	}
	report := s.build(session, session.Status != models.SessionStatusCompleted)
	return report, nil
}

func (s *reportService) build(session *models.Session, draft bool) *models.Report {
	result := s.scorer.ComputeScore(session.Answers)

	rows := make([]models.ReportAnswer, 0, len(session.Answers))
	for _, answer := range session.Answers {
		row := models.ReportAnswer{
			QuestionNumber: answer.QuestionNumber,
			SelectedOption: answer.SelectedOption,
			OptionLabel:    answer.OptionLabel,
			ScoredPoint:    s.catalog.ScoresPoint(answer.QuestionNumber, answer.SelectedOption),
			AnsweredAt:     answer.AnsweredAt,
		}
		if question, err := s.catalog.Get(answer.QuestionNumber); err == nil {
			row.QuestionTextEN = question.TextEN
			row.QuestionTextAR = question.TextAR
		}
		rows = append(rows, row)
	}

	report := &models.Report{
		SessionToken:      session.Token,
		ChildName:         session.ChildName,
		ChildAgeMonths:    session.ChildAgeMonths,
		ParentName:        session.ParentName,
		Language:          session.Language,
		TotalScore:        result.TotalScore,
		MaxScore:          result.MaxScore,
		RecommendReferral: result.RecommendReferral,
		RiskLevel:         result.RiskLevel,
		Answers:           rows,
		Recommendations:   s.catalog.Recommendations(session.Language, result.RiskLevel),
		CompletedAt:       session.CompletedAt,
		Draft:             draft,
		AnsweredQuestions: len(session.Answers),
	}

	log.Printf("INFO: [ReportService] Assembled %s report for session %s: score=%d/%d, risk=%s",
		reportKind(draft), session.Token, report.TotalScore, report.MaxScore, report.RiskLevel)
	return report
}

func reportKind(draft bool) string {
	if draft {
		return "draft"
	}
	return "final"
}

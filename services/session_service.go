package services

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/MostafaKhidr/QCHAT/catalog"
	"github.com/MostafaKhidr/QCHAT/models"
	"github.com/MostafaKhidr/QCHAT/repository"
	"github.com/MostafaKhidr/QCHAT/utils"
)

// SubmitAnswerResult is the outcome of recording one answer.
type SubmitAnswerResult struct {
	Accepted           bool `json:"accepted"`
	NextQuestionNumber *int `json:"next_question_number"`
	IsComplete         bool `json:"is_complete"`
	CurrentScore       int  `json:"current_score"`
}

// SessionService drives the session lifecycle: creation, answer recording
// with upsert semantics, completion detection, and the abandonment sweep.
type SessionService interface {
	CreateSession(profile models.ChildProfile) (*models.Session, error)
	GetSession(token string) (*models.Session, error)
	SubmitAnswer(token string, questionNumber int, option models.AnswerOption) (*SubmitAnswerResult, error)
	AbandonStale(maxAge time.Duration) (int, error)
}

type sessionService struct {
	repo    repository.SessionRepository
	catalog *catalog.Catalog
	scorer  ScoreService
}

// NewSessionService creates a SessionService.
func NewSessionService(repo repository.SessionRepository, cat *catalog.Catalog, scorer ScoreService) SessionService {
	return &sessionService{repo: repo, catalog: cat, scorer: scorer}
}

// CreateSession validates the child profile, generates an unguessable
// token, and persists the initial CREATED record.
func (s *sessionService) CreateSession(profile models.ChildProfile) (*models.Session, error) {
	if err := validateProfile(&profile); err != nil {
		log.Printf("WARN: [SessionService] Rejected session creation: %v", err)
		return nil, err
	}

	token, err := utils.GenerateSessionToken()
	if err != nil {
		log.Printf("ERROR: [SessionService] Failed to generate session token: %v", err)
		return nil, models.NewPersistenceError("failed to generate session token", err)
	}

	now := time.Now().UTC()
	session := &models.Session{
		Token:           token,
		ChildName:       profile.ChildName,
		ChildAgeMonths:  profile.ChildAgeMonths,
		ParentName:      profile.ParentName,
		Language:        profile.Language,
		Status:          models.SessionStatusCreated,
		CurrentQuestion: 1,
		Answers:         make([]models.Answer, 0),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(session); err != nil {
		return nil, err
	}

	log.Printf("INFO: [SessionService] Created session %s (child age %d months, language %s).", token, profile.ChildAgeMonths, profile.Language)
	return session, nil
}

// GetSession loads the session stored under token.
func (s *sessionService) GetSession(token string) (*models.Session, error) {
	return s.repo.GetByToken(token)
}

// SubmitAnswer validates and upserts one answer, advances the cursor,
// detects completion, and recomputes the running score. Re-submitting the
// same (question, option) pair any number of times is idempotent, so
// client-side retry on timeout is always safe.
func (s *sessionService) SubmitAnswer(token string, questionNumber int, option models.AnswerOption) (*SubmitAnswerResult, error) {
	// Input validation happens before any session load so an invalid
	// request can never touch stored state.
	if questionNumber < 1 || questionNumber > s.catalog.Size() {
		return nil, models.NewValidationError("question number must be between 1 and %d", s.catalog.Size())
	}
	if !option.IsValid() {
		return nil, models.NewValidationError("selected option must be one of A-E")
	}

	session, err := s.repo.Update(token, func(session *models.Session) error {
		existing := session.AnswerFor(questionNumber)
		if session.Status == models.SessionStatusCompleted && existing == nil {
			// A finished session only accepts corrective edits to
			// answers it already holds, never brand-new questions.
			return models.NewStateError("session is completed; question %d was never answered and cannot be added", questionNumber)
		}
		if session.Status == models.SessionStatusAbandoned {
			return models.NewStateError("session has been abandoned")
		}

		answer := models.Answer{
			QuestionNumber: questionNumber,
			SelectedOption: option,
			OptionLabel:    s.catalog.OptionLabel(questionNumber, option, session.Language),
			ScoredPoint:    s.catalog.ScoresPoint(questionNumber, option),
			AnsweredAt:     time.Now().UTC(),
		}

		if existing != nil {
			*existing = answer
		} else {
			session.Answers = append(session.Answers, answer)
			sort.Slice(session.Answers, func(i, j int) bool {
				return session.Answers[i].QuestionNumber < session.Answers[j].QuestionNumber
			})
		}

		if session.Status != models.SessionStatusCompleted {
			if questionNumber == s.catalog.Size() {
				// First time the final question is recorded; the
				// completion stamp is never touched by later edits.
				now := time.Now().UTC()
				session.Status = models.SessionStatusCompleted
				session.CompletedAt = &now
			} else {
				session.Status = models.SessionStatusInProgress
			}
		}

		session.RecomputeCursor()
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &SubmitAnswerResult{
		Accepted:     true,
		IsComplete:   session.Status == models.SessionStatusCompleted,
		CurrentScore: s.scorer.ComputeScore(session.Answers).TotalScore,
	}
	if !result.IsComplete {
		next := session.CurrentQuestion
		if next > s.catalog.Size() {
			next = s.catalog.Size()
		}
		result.NextQuestionNumber = &next
	}

	log.Printf("INFO: [SessionService] Recorded answer for session %s: question=%d, option=%s, score=%d, complete=%t",
		token, questionNumber, option, result.CurrentScore, result.IsComplete)
	return result, nil
}

// AbandonStale marks unfinished sessions whose last activity is older
// than maxAge as abandoned. It is invoked explicitly (at startup), never
// from a background timer. Returns the number of sessions transitioned.
func (s *sessionService) AbandonStale(maxAge time.Duration) (int, error) {
	tokens, err := s.repo.ListTokens()
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().UTC().Add(-maxAge)
	abandoned := 0
	for _, token := range tokens {
		_, err := s.repo.Update(token, func(session *models.Session) error {
			if session.Status != models.SessionStatusCreated && session.Status != models.SessionStatusInProgress {
				return errSkipAbandon
			}
			last := session.UpdatedAt
			if last.IsZero() {
				last = session.CreatedAt
			}
			if last.After(cutoff) {
				return errSkipAbandon
			}
			session.Status = models.SessionStatusAbandoned
			return nil
		})
		if err != nil {
			if err == errSkipAbandon {
				continue
			}
			log.Printf("WARN: [SessionService] Abandonment sweep failed for session %s: %v", token, err)
			continue
		}
		abandoned++
	}

	if abandoned > 0 {
		log.Printf("INFO: [SessionService] Abandonment sweep marked %d stale session(s).", abandoned)
	}
	return abandoned, nil
}

// errSkipAbandon aborts an abandonment update without persisting.
var errSkipAbandon = fmt.Errorf("session not stale")

func validateProfile(profile *models.ChildProfile) error {
	profile.ChildName = strings.TrimSpace(profile.ChildName)
	profile.ParentName = strings.TrimSpace(profile.ParentName)

	if profile.ChildName == "" {
		return models.NewValidationError("child name is required")
	}
	if len(profile.ChildName) > models.MaxNameLength {
		return models.NewValidationError("child name must be at most %d characters", models.MaxNameLength)
	}
	if len(profile.ParentName) > models.MaxNameLength {
		return models.NewValidationError("parent name must be at most %d characters", models.MaxNameLength)
	}
	if profile.ChildAgeMonths < models.MinChildAgeMonths || profile.ChildAgeMonths > models.MaxChildAgeMonths {
		return models.NewValidationError("child age must be between %d and %d months", models.MinChildAgeMonths, models.MaxChildAgeMonths)
	}
	if profile.Language == "" {
		profile.Language = models.LanguageEN
	}
	if !profile.Language.IsValid() {
		return models.NewValidationError("language must be \"en\" or \"ar\"")
	}
	return nil
}

package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MostafaKhidr/QCHAT/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// A named shared in-memory database keeps all pooled connections of
	// one test on the same store while isolating tests from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	assert.NoError(t, Migrate(db))
	return db
}

func testSession(token string) *models.Session {
	now := time.Now().UTC()
	return &models.Session{
		Token:           token,
		ChildName:       "Omar",
		ChildAgeMonths:  22,
		ParentName:      "Sara",
		Language:        models.LanguageEN,
		Status:          models.SessionStatusCreated,
		CurrentQuestion: 1,
		Answers:         []models.Answer{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestSessionRepository_CreateAndGet(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))

	session := testSession("token-roundtrip")
	assert.NoError(t, repo.Create(session))

	loaded, err := repo.GetByToken("token-roundtrip")
	assert.NoError(t, err)
	assert.Equal(t, session.Token, loaded.Token)
	assert.Equal(t, session.ChildName, loaded.ChildName)
	assert.Equal(t, session.ChildAgeMonths, loaded.ChildAgeMonths)
	assert.Equal(t, models.SessionStatusCreated, loaded.Status)
	assert.Equal(t, 1, loaded.CurrentQuestion)
	assert.Empty(t, loaded.Answers)
	assert.Nil(t, loaded.CompletedAt)
}

func TestSessionRepository_GetByToken_NotFound(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))

	_, err := repo.GetByToken("no-such-token")
	assert.Error(t, err)
	assert.True(t, models.IsKind(err, models.ErrorKindNotFound))
}

func TestSessionRepository_Create_EmptyToken(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))

	err := repo.Create(testSession(""))
	assert.Error(t, err)
	assert.True(t, models.IsKind(err, models.ErrorKindValidation))
}

func TestSessionRepository_Update(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	assert.NoError(t, repo.Create(testSession("token-update")))

	t.Run("Mutations are persisted with the full answer list", func(t *testing.T) {
		answeredAt := time.Now().UTC()
		updated, err := repo.Update("token-update", func(session *models.Session) error {
			session.Status = models.SessionStatusInProgress
			session.CurrentQuestion = 2
			session.Answers = append(session.Answers, models.Answer{
				QuestionNumber: 1,
				SelectedOption: models.OptionC,
				OptionLabel:    "Sometimes",
				ScoredPoint:    true,
				AnsweredAt:     answeredAt,
			})
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, models.SessionStatusInProgress, updated.Status)

		loaded, err := repo.GetByToken("token-update")
		assert.NoError(t, err)
		assert.Equal(t, 2, loaded.CurrentQuestion)
		assert.Len(t, loaded.Answers, 1)
		assert.Equal(t, models.OptionC, loaded.Answers[0].SelectedOption)
		assert.True(t, loaded.Answers[0].ScoredPoint)
	})

	t.Run("A failed mutator leaves the record untouched", func(t *testing.T) {
		before, err := repo.GetByToken("token-update")
		assert.NoError(t, err)

		_, err = repo.Update("token-update", func(session *models.Session) error {
			session.Status = models.SessionStatusCompleted
			return models.NewStateError("rejected")
		})
		assert.Error(t, err)
		assert.True(t, models.IsKind(err, models.ErrorKindState))

		after, err := repo.GetByToken("token-update")
		assert.NoError(t, err)
		assert.Equal(t, before.Status, after.Status)
	})

	t.Run("Unknown token fails with not found", func(t *testing.T) {
		_, err := repo.Update("no-such-token", func(session *models.Session) error { return nil })
		assert.Error(t, err)
		assert.True(t, models.IsKind(err, models.ErrorKindNotFound))
	})
}

func TestSessionRepository_Update_ConcurrentSameToken(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	assert.NoError(t, repo.Create(testSession("token-concurrent")))

	// Ten goroutines each upsert a distinct question. The per-token lock
	// must serialize the read-modify-write cycles so no upsert is lost.
	var wg sync.WaitGroup
	for n := 1; n <= 10; n++ {
		wg.Add(1)
		go func(questionNumber int) {
			defer wg.Done()
			_, err := repo.Update("token-concurrent", func(session *models.Session) error {
				session.Answers = append(session.Answers, models.Answer{
					QuestionNumber: questionNumber,
					SelectedOption: models.OptionA,
					AnsweredAt:     time.Now().UTC(),
				})
				return nil
			})
			assert.NoError(t, err)
		}(n)
	}
	wg.Wait()

	loaded, err := repo.GetByToken("token-concurrent")
	assert.NoError(t, err)
	assert.Len(t, loaded.Answers, 10)

	seen := make(map[int]bool)
	for _, answer := range loaded.Answers {
		seen[answer.QuestionNumber] = true
	}
	assert.Len(t, seen, 10)
}

func TestSessionRepository_ListTokens(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))

	tokens, err := repo.ListTokens()
	assert.NoError(t, err)
	assert.Empty(t, tokens)

	assert.NoError(t, repo.Create(testSession("token-a")))
	assert.NoError(t, repo.Create(testSession("token-b")))

	tokens, err = repo.ListTokens()
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"token-a", "token-b"}, tokens)
}

func TestSessionRepository_CompletedAtRoundtrip(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	assert.NoError(t, repo.Create(testSession("token-completed")))

	completedAt := time.Now().UTC().Truncate(time.Second)
	_, err := repo.Update("token-completed", func(session *models.Session) error {
		session.Status = models.SessionStatusCompleted
		session.CompletedAt = &completedAt
		return nil
	})
	assert.NoError(t, err)

	loaded, err := repo.GetByToken("token-completed")
	assert.NoError(t, err)
	assert.Equal(t, models.SessionStatusCompleted, loaded.Status)
	if assert.NotNil(t, loaded.CompletedAt) {
		assert.True(t, loaded.CompletedAt.Equal(completedAt))
	}
}

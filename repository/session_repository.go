package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/MostafaKhidr/QCHAT/models"
)

// SessionRepository is the durable keyed store of screening sessions. One
// self-contained record per token; exact-token lookup is the only query
// the engine needs (plus token listing for the abandonment sweep).
type SessionRepository interface {
	Create(session *models.Session) error
	GetByToken(token string) (*models.Session, error)
	// Update loads the current record for token, applies mutate, and
	// persists the result. The read-modify-write cycle is atomic with
	// respect to concurrent updates on the same token.
	Update(token string, mutate func(*models.Session) error) (*models.Session, error)
	ListTokens() ([]string, error)
}

// sessionRecord is the persisted row. The full answer list is stored as a
// JSON column so every record is self-contained, inspectable, and can be
// backed up or restored independently of the serving process.
type sessionRecord struct {
	Token           string         `gorm:"primaryKey;size:64"`
	ChildName       string         `gorm:"size:255;not null"`
	ChildAgeMonths  int            `gorm:"not null"`
	ParentName      string         `gorm:"size:255"`
	Language        string         `gorm:"size:8;not null"`
	Status          string         `gorm:"size:16;index;not null"`
	CurrentQuestion int            `gorm:"not null"`
	Answers         datatypes.JSON `gorm:"type:json"`
	Version         int64          `gorm:"not null;default:1"`
	CreatedAt       time.Time
	CompletedAt     *time.Time
	UpdatedAt       time.Time
}

// TableName keeps the table name stable regardless of struct renames.
func (sessionRecord) TableName() string { return "sessions" }

type sessionRepository struct {
	db *gorm.DB

	// Advisory per-token locks serializing in-process read-modify-write
	// cycles. The version column guards against writers outside this
	// process sharing the same database file.
	muLocks    sync.Mutex
	tokenLocks map[string]*sync.Mutex
}

// NewSessionRepository creates a GORM-backed SessionRepository.
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{
		db:         db,
		tokenLocks: make(map[string]*sync.Mutex),
	}
}

func (r *sessionRepository) lockFor(token string) *sync.Mutex {
	r.muLocks.Lock()
	defer r.muLocks.Unlock()
	lock, exists := r.tokenLocks[token]
	if !exists {
		lock = &sync.Mutex{}
		r.tokenLocks[token] = lock
	}
	return lock
}

// Create persists the initial record for a freshly created session.
func (r *sessionRepository) Create(session *models.Session) error {
	if session.Token == "" {
		return models.NewValidationError("session token cannot be empty")
	}

	record, err := toRecord(session)
	if err != nil {
		return models.NewPersistenceError("failed to encode session record", err)
	}

	if err := r.db.Create(record).Error; err != nil {
		log.Printf("ERROR: [SessionRepository] Failed to create session record for token %s: %v", session.Token, err)
		return models.NewPersistenceError("failed to persist new session", err)
	}
	log.Printf("INFO: [SessionRepository] Created session record: token=%s, status=%s", session.Token, session.Status)
	return nil
}

// GetByToken loads the session stored under token.
func (r *sessionRepository) GetByToken(token string) (*models.Session, error) {
	record, err := r.fetch(token)
	if err != nil {
		return nil, err
	}
	return toSession(record)
}

// Update applies mutate to the current record under the token's advisory
// lock and persists the result with an optimistic version check. A version
// collision (a concurrent writer outside this process) is retried once and
// then surfaced as a conflict.
func (r *sessionRepository) Update(token string, mutate func(*models.Session) error) (*models.Session, error) {
	lock := r.lockFor(token)
	lock.Lock()
	defer lock.Unlock()

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		record, err := r.fetch(token)
		if err != nil {
			return nil, err
		}

		session, err := toSession(record)
		if err != nil {
			return nil, err
		}

		if err := mutate(session); err != nil {
			return nil, err
		}

		updated, err := toRecord(session)
		if err != nil {
			return nil, models.NewPersistenceError("failed to encode session record", err)
		}
		updated.Version = record.Version + 1
		updated.CreatedAt = record.CreatedAt

		result := r.db.Model(&sessionRecord{}).
			Where("token = ? AND version = ?", token, record.Version).
			Updates(map[string]interface{}{
				"child_name":       updated.ChildName,
				"child_age_months": updated.ChildAgeMonths,
				"parent_name":      updated.ParentName,
				"language":         updated.Language,
				"status":           updated.Status,
				"current_question": updated.CurrentQuestion,
				"answers":          updated.Answers,
				"completed_at":     updated.CompletedAt,
				"version":          updated.Version,
			})
		if result.Error != nil {
			log.Printf("ERROR: [SessionRepository] Failed to persist update for token %s: %v", token, result.Error)
			return nil, models.NewPersistenceError("failed to persist session update", result.Error)
		}
		if result.RowsAffected == 0 {
			lastErr = fmt.Errorf("version check failed for token %s (expected version %d)", token, record.Version)
			log.Printf("WARN: [SessionRepository] Optimistic concurrency collision on token %s (attempt %d), retrying.", token, attempt+1)
			continue
		}

		session.UpdatedAt = time.Now().UTC()
		log.Printf("INFO: [SessionRepository] Updated session record: token=%s, status=%s, answers=%d", token, session.Status, len(session.Answers))
		return session, nil
	}

	log.Printf("ERROR: [SessionRepository] Giving up on token %s after conflicting concurrent updates: %v", token, lastErr)
	return nil, models.NewConflictError("session was modified concurrently, please retry", lastErr)
}

// ListTokens returns the tokens of every stored session.
func (r *sessionRepository) ListTokens() ([]string, error) {
	var tokens []string
	if err := r.db.Model(&sessionRecord{}).Pluck("token", &tokens).Error; err != nil {
		log.Printf("ERROR: [SessionRepository] Failed to list session tokens: %v", err)
		return nil, models.NewPersistenceError("failed to list sessions", err)
	}
	return tokens, nil
}

func (r *sessionRepository) fetch(token string) (*sessionRecord, error) {
	var record sessionRecord
	err := r.db.First(&record, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("session not found")
		}
		log.Printf("ERROR: [SessionRepository] Failed to fetch session for token %s: %v", token, err)
		return nil, models.NewPersistenceError("failed to load session", err)
	}
	return &record, nil
}

func toRecord(session *models.Session) (*sessionRecord, error) {
	answersJSON, err := json.Marshal(session.Answers)
	if err != nil {
		return nil, err
	}
	return &sessionRecord{
		Token:           session.Token,
		ChildName:       session.ChildName,
		ChildAgeMonths:  session.ChildAgeMonths,
		ParentName:      session.ParentName,
		Language:        string(session.Language),
		Status:          string(session.Status),
		CurrentQuestion: session.CurrentQuestion,
		Answers:         datatypes.JSON(answersJSON),
		CreatedAt:       session.CreatedAt,
		CompletedAt:     session.CompletedAt,
	}, nil
}

func toSession(record *sessionRecord) (*models.Session, error) {
	answers := make([]models.Answer, 0)
	if len(record.Answers) > 0 {
		if err := json.Unmarshal(record.Answers, &answers); err != nil {
			log.Printf("ERROR: [SessionRepository] Corrupt answers column for token %s: %v", record.Token, err)
			return nil, models.NewPersistenceError("failed to decode stored answers", err)
		}
	}
	return &models.Session{
		Token:           record.Token,
		ChildName:       record.ChildName,
		ChildAgeMonths:  record.ChildAgeMonths,
		ParentName:      record.ParentName,
		Language:        models.Language(record.Language),
		Status:          models.SessionStatus(record.Status),
		CurrentQuestion: record.CurrentQuestion,
		Answers:         answers,
		CreatedAt:       record.CreatedAt,
		CompletedAt:     record.CompletedAt,
		UpdatedAt:       record.UpdatedAt,
	}, nil
}

// Migrate creates or updates the sessions table schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&sessionRecord{})
}

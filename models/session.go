package models

import (
	"time"
)

// TotalQuestions is the number of questions in the Q-CHAT-10 instrument.
const TotalQuestions = 10

// Valid child age range for the instrument, in months.
const (
	MinChildAgeMonths = 18
	MaxChildAgeMonths = 24
)

// MaxNameLength bounds child and parent names.
const MaxNameLength = 255

// SessionStatus defines the lifecycle state of a screening session.
type SessionStatus string

const (
	SessionStatusCreated    SessionStatus = "created"     // Session exists, no answers recorded yet
	SessionStatusInProgress SessionStatus = "in_progress" // At least one answer recorded
	SessionStatusCompleted  SessionStatus = "completed"   // Question 10 has been answered
	SessionStatusAbandoned  SessionStatus = "abandoned"   // Expired without completion
)

// Answer is a parent's recorded answer to one question. A session holds at
// most one Answer per question number; re-submitting the same question
// replaces the prior record (upsert).
type Answer struct {
	QuestionNumber int          `json:"question_number"`
	SelectedOption AnswerOption `json:"selected_option"`
	OptionLabel    string       `json:"option_label"`
	ScoredPoint    bool         `json:"scored_point"`
	AnsweredAt     time.Time    `json:"answered_at"`
}

// ChildProfile carries the child details captured at session creation.
type ChildProfile struct {
	ChildName      string   `json:"child_name"`
	ChildAgeMonths int      `json:"child_age_months"`
	ParentName     string   `json:"parent_name,omitempty"`
	Language       Language `json:"language"`
}

// Session is one screening attempt, keyed by its opaque token. It is the
// sole unit of persistence and concurrency control; question definitions
// are shared and never mutated per session.
type Session struct {
	Token           string        `json:"session_token"`
	ChildName       string        `json:"child_name"`
	ChildAgeMonths  int           `json:"child_age_months"`
	ParentName      string        `json:"parent_name,omitempty"`
	Language        Language      `json:"language"`
	Status          SessionStatus `json:"status"`
	CurrentQuestion int           `json:"current_question"` // Lowest unanswered question number, TotalQuestions+1 when full
	Answers         []Answer      `json:"answers"`
	CreatedAt       time.Time     `json:"created_at"`
	CompletedAt     *time.Time    `json:"completed_at,omitempty"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// AnswerFor returns the recorded answer for questionNumber, or nil.
func (s *Session) AnswerFor(questionNumber int) *Answer {
	for i := range s.Answers {
		if s.Answers[i].QuestionNumber == questionNumber {
			return &s.Answers[i]
		}
	}
	return nil
}

// RecomputeCursor sets CurrentQuestion to the lowest unanswered question
// number, or TotalQuestions+1 when every question has an answer.
func (s *Session) RecomputeCursor() {
	answered := make(map[int]bool, len(s.Answers))
	for _, ans := range s.Answers {
		answered[ans.QuestionNumber] = true
	}
	for n := 1; n <= TotalQuestions; n++ {
		if !answered[n] {
			s.CurrentQuestion = n
			return
		}
	}
	s.CurrentQuestion = TotalQuestions + 1
}

// Package catalog holds the static Q-CHAT-10 question registry: the ten
// ordered bilingual questions, their five ordinal options, and the
// per-question concern-point sets used by the scoring engine.
package catalog

import (
	"log"
	"sort"

	"github.com/MostafaKhidr/QCHAT/models"
)

// Catalog is the immutable question registry, built once at process start
// and shared read-only by all sessions.
type Catalog struct {
	questions []models.QuestionDefinition
	byNumber  map[int]*models.QuestionDefinition
}

// New builds the catalog from the default Q-CHAT-10 question set.
func New() *Catalog {
	defined := defaultQuestions()

	sort.Slice(defined, func(i, j int) bool {
		return defined[i].QuestionNumber < defined[j].QuestionNumber
	})

	byNumber := make(map[int]*models.QuestionDefinition, len(defined))
	for i := range defined {
		byNumber[defined[i].QuestionNumber] = &defined[i]
	}

	log.Printf("INFO: [Catalog] Loaded %d question definitions.", len(defined))
	return &Catalog{questions: defined, byNumber: byNumber}
}

// Size returns the number of questions in the instrument.
func (c *Catalog) Size() int {
	return len(c.questions)
}

// Get returns the definition of the given question number. Unknown numbers
// are a NotFound failure.
func (c *Catalog) Get(questionNumber int) (*models.QuestionDefinition, error) {
	question, exists := c.byNumber[questionNumber]
	if !exists {
		return nil, models.NewNotFoundError("question number %d is out of range (1-%d)", questionNumber, len(c.questions))
	}
	return question, nil
}

// All returns the questions in instrument order. Callers must not mutate
// the returned slice.
func (c *Catalog) All() []models.QuestionDefinition {
	return c.questions
}

// ScoresPoint reports whether selecting option on questionNumber
// contributes a concern point. Unknown question numbers never score.
func (c *Catalog) ScoresPoint(questionNumber int, option models.AnswerOption) bool {
	question, exists := c.byNumber[questionNumber]
	if !exists {
		return false
	}
	return question.ScoresPoint(option)
}

// OptionLabel returns the language-selected label for an option of the
// given question, or "" when either is unknown.
func (c *Catalog) OptionLabel(questionNumber int, option models.AnswerOption, lang models.Language) string {
	question, exists := c.byNumber[questionNumber]
	if !exists {
		return ""
	}
	return question.OptionLabel(option, lang)
}

// Recommendations returns the canned advice strings for the given
// language and risk level. Unknown languages fall back to English.
func (c *Catalog) Recommendations(lang models.Language, risk models.RiskLevel) []string {
	byRisk, exists := recommendations[lang]
	if !exists {
		byRisk = recommendations[models.LanguageEN]
	}
	return byRisk[risk]
}

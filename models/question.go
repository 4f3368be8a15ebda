package models

// AnswerOption is one of the five ordinal answer values (A through E)
// a parent can pick for any Q-CHAT question.
type AnswerOption string

const (
	OptionA AnswerOption = "A"
	OptionB AnswerOption = "B"
	OptionC AnswerOption = "C"
	OptionD AnswerOption = "D"
	OptionE AnswerOption = "E"
)

// AllAnswerOptions lists the valid options in ordinal order.
var AllAnswerOptions = []AnswerOption{OptionA, OptionB, OptionC, OptionD, OptionE}

// IsValid reports whether o is one of A-E.
func (o AnswerOption) IsValid() bool {
	switch o {
	case OptionA, OptionB, OptionC, OptionD, OptionE:
		return true
	}
	return false
}

// Language selects which text strings are served to the client.
type Language string

const (
	LanguageEN Language = "en"
	LanguageAR Language = "ar"
)

// IsValid reports whether l is a supported language.
func (l Language) IsValid() bool {
	return l == LanguageEN || l == LanguageAR
}

// QuestionOption is a single selectable option of a question, with its
// label in both supported languages.
type QuestionOption struct {
	Value   AnswerOption `json:"value"`
	LabelEN string       `json:"label_en"`
	LabelAR string       `json:"label_ar"`
}

// QuestionDefinition is one Q-CHAT-10 question. Definitions are immutable,
// loaded once at process start and shared read-only by all sessions.
//
// ScoringOptions is the subset of the five options that contribute one
// concern point for this question. For questions 1-9 that is {C, D, E};
// question 10 is reverse-scored and carries {A, B, C}. Keeping the set on
// the definition makes the reversal a data property of the catalog rather
// than a branch in the scoring engine.
type QuestionDefinition struct {
	QuestionNumber int              `json:"question_number"`
	TextEN         string           `json:"text_en"`
	TextAR         string           `json:"text_ar"`
	Options        []QuestionOption `json:"options"`
	ScoringOptions []AnswerOption   `json:"scoring_options"`
	VideoPositive  string           `json:"video_positive,omitempty"`
	VideoNegative  string           `json:"video_negative,omitempty"`
}

// Text returns the question prompt in the requested language.
func (q *QuestionDefinition) Text(lang Language) string {
	if lang == LanguageAR {
		return q.TextAR
	}
	return q.TextEN
}

// OptionLabel returns the label of the given option in the requested
// language, or "" if the option is unknown.
func (q *QuestionDefinition) OptionLabel(option AnswerOption, lang Language) string {
	for _, opt := range q.Options {
		if opt.Value == option {
			if lang == LanguageAR {
				return opt.LabelAR
			}
			return opt.LabelEN
		}
	}
	return ""
}

// ScoresPoint reports whether selecting option on this question
// contributes a concern point.
func (q *QuestionDefinition) ScoresPoint(option AnswerOption) bool {
	for _, scoring := range q.ScoringOptions {
		if scoring == option {
			return true
		}
	}
	return false
}

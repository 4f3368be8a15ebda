package api

import (
	"strconv"
	"time"

	"github.com/MostafaKhidr/QCHAT/models"
)

// CreateSessionRequest is the payload for starting a new session.
type CreateSessionRequest struct {
	ChildName      string `json:"child_name"`
	ChildAgeMonths int    `json:"child_age_months"`
	ParentName     string `json:"parent_name"`
	Language       string `json:"language"`
}

// CreateSessionResponse echoes the essentials of a freshly created session.
type CreateSessionResponse struct {
	SessionToken   string    `json:"session_token"`
	ChildName      string    `json:"child_name"`
	ChildAgeMonths int       `json:"child_age_months"`
	CreatedAt      time.Time `json:"created_at"`
}

// SubmitAnswerRequest is the payload for recording one answer.
type SubmitAnswerRequest struct {
	QuestionNumber int    `json:"question_number"`
	SelectedOption string `json:"selected_option"`
}

// SessionResponse is the client view of a stored session.
type SessionResponse struct {
	SessionToken    string               `json:"session_token"`
	ChildName       string               `json:"child_name"`
	ChildAgeMonths  int                  `json:"child_age_months"`
	ParentName      string               `json:"parent_name,omitempty"`
	Language        models.Language      `json:"language"`
	Status          models.SessionStatus `json:"status"`
	CurrentQuestion int                  `json:"current_question"`
	TotalQuestions  int                  `json:"total_questions"`
	Answers         []models.Answer      `json:"answers"`
	CreatedAt       time.Time            `json:"created_at"`
	CompletedAt     *time.Time           `json:"completed_at,omitempty"`
}

func newSessionResponse(session *models.Session, totalQuestions int) SessionResponse {
	// The internal cursor sits at N+1 once every question is answered;
	// clients always see a valid question number.
	current := session.CurrentQuestion
	if current > totalQuestions {
		current = totalQuestions
	}
	return SessionResponse{
		SessionToken:    session.Token,
		ChildName:       session.ChildName,
		ChildAgeMonths:  session.ChildAgeMonths,
		ParentName:      session.ParentName,
		Language:        session.Language,
		Status:          session.Status,
		CurrentQuestion: current,
		TotalQuestions:  totalQuestions,
		Answers:         session.Answers,
		CreatedAt:       session.CreatedAt,
		CompletedAt:     session.CompletedAt,
	}
}

// QuestionViewOption is one selectable option in the session's language.
type QuestionViewOption struct {
	Value models.AnswerOption `json:"value"`
	Label string              `json:"label"`
}

// QuestionView is the language-filtered rendering of one question.
type QuestionView struct {
	QuestionNumber int                  `json:"question_number"`
	Text           string               `json:"text"`
	Options        []QuestionViewOption `json:"options"`
	VideoPositive  string               `json:"video_positive,omitempty"`
	VideoNegative  string               `json:"video_negative,omitempty"`
}

func newQuestionView(question *models.QuestionDefinition, lang models.Language) QuestionView {
	options := make([]QuestionViewOption, 0, len(question.Options))
	for _, opt := range question.Options {
		options = append(options, QuestionViewOption{
			Value: opt.Value,
			Label: question.OptionLabel(opt.Value, lang),
		})
	}
	return QuestionView{
		QuestionNumber: question.QuestionNumber,
		Text:           question.Text(lang),
		Options:        options,
		VideoPositive:  question.VideoPositive,
		VideoNegative:  question.VideoNegative,
	}
}

func parseQuestionNumber(raw string) (int, error) {
	number, err := strconv.Atoi(raw)
	if err != nil {
		return 0, models.NewValidationError("question number must be an integer")
	}
	return number, nil
}

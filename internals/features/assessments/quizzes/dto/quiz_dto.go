package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"talenthub_backend/internals/features/assessments/quizzes/model"
)

// ============================
// Response DTOs
// ============================

type QuizDTO struct {
	ID              string    `json:"id"`
	OpportunityID   string    `json:"opportunity_id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	PassingScore    int       `json:"passing_score"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// QuestionDTO is the recruiter/review view, correct answer included.
type QuestionDTO struct {
	ID            string          `json:"id"`
	QuizID        string          `json:"quiz_id"`
	QuestionText  string          `json:"question_text"`
	Options       json.RawMessage `json:"options"`
	CorrectAnswer string          `json:"correct_answer"`
	Points        int             `json:"points"`
	Order         int             `json:"order"`
}

// CandidateQuestionDTO strips correct answer and points before submission.
type CandidateQuestionDTO struct {
	ID           string          `json:"id"`
	QuizID       string          `json:"quiz_id"`
	QuestionText string          `json:"question_text"`
	Options      json.RawMessage `json:"options"`
	Order        int             `json:"order"`
}

// ============================
// Request DTOs
// ============================

type QuestionOption struct {
	Label string `json:"label" validate:"required"`
	Value string `json:"value" validate:"required"`
}

type CreateQuestionRequest struct {
	QuestionText  string           `json:"question_text" validate:"required,min=5"`
	Options       []QuestionOption `json:"options" validate:"required,min=2,dive"`
	CorrectAnswer string           `json:"correct_answer" validate:"required"`
	Points        *int             `json:"points" validate:"omitempty,min=1"`
}

type CreateQuizRequest struct {
	OpportunityID   string                  `json:"opportunity_id" validate:"required,uuid"`
	Title           string                  `json:"title" validate:"required,min=5,max=150"`
	Description     *string                 `json:"description"`
	DurationMinutes int                     `json:"duration_minutes" validate:"required,min=1"`
	PassingScore    int                     `json:"passing_score" validate:"min=0,max=100"`
	Questions       []CreateQuestionRequest `json:"questions" validate:"required,min=1,dive"`
}

// questions are not mutated here; only quiz-level fields
type UpdateQuizRequest struct {
	Title           *string `json:"title" validate:"omitempty,min=5,max=150"`
	Description     *string `json:"description"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,min=1"`
	PassingScore    *int    `json:"passing_score" validate:"omitempty,min=0,max=100"`
	IsActive        *bool   `json:"is_active"`
}

// ============================
// Converters
// ============================

func ToQuizDTO(m model.Quiz) QuizDTO {
	return QuizDTO{
		ID:              m.ID.String(),
		OpportunityID:   m.OpportunityID.String(),
		Title:           m.Title,
		Description:     m.Description,
		DurationMinutes: m.DurationMinutes,
		PassingScore:    m.PassingScore,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func ToQuestionDTO(m model.QuizQuestion) QuestionDTO {
	return QuestionDTO{
		ID:            m.ID.String(),
		QuizID:        m.QuizID.String(),
		QuestionText:  m.QuestionText,
		Options:       json.RawMessage(m.Options),
		CorrectAnswer: m.CorrectAnswer,
		Points:        m.Points,
		Order:         m.Order,
	}
}

func ToQuestionDTOs(ms []model.QuizQuestion) []QuestionDTO {
	out := make([]QuestionDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToQuestionDTO(m))
	}
	return out
}

func ToCandidateQuestionDTO(m model.QuizQuestion) CandidateQuestionDTO {
	return CandidateQuestionDTO{
		ID:           m.ID.String(),
		QuizID:       m.QuizID.String(),
		QuestionText: m.QuestionText,
		Options:      json.RawMessage(m.Options),
		Order:        m.Order,
	}
}

func ToCandidateQuestionDTOs(ms []model.QuizQuestion) []CandidateQuestionDTO {
	out := make([]CandidateQuestionDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToCandidateQuestionDTO(m))
	}
	return out
}

// OptionsToJSON marshals the submitted option list for the jsonb column.
func OptionsToJSON(options []QuestionOption) (datatypes.JSON, error) {
	raw, err := json.Marshal(options)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

package dto

import (
	"time"

	"talenthub_backend/internals/features/assessments/attempts/model"
)

// ============================
// Response DTOs
// ============================

type AttemptDTO struct {
	ID             string     `json:"id"`
	QuizID         string     `json:"quiz_id"`
	CandidateID    string     `json:"candidate_id"`
	Score          *int       `json:"score,omitempty"`
	Passed         *bool      `json:"passed,omitempty"`
	TabSwitchCount int        `json:"tab_switch_count"`
	SubmittedAt    *time.Time `json:"submitted_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type AnswerDTO struct {
	ID             string `json:"id"`
	AttemptID      string `json:"attempt_id"`
	QuestionID     string `json:"question_id"`
	SelectedAnswer string `json:"selected_answer"`
	IsCorrect      bool   `json:"is_correct"`
}

// ============================
// Request DTOs
// ============================

type SubmittedAnswer struct {
	QuestionID     string `json:"question_id" validate:"required,uuid"`
	SelectedAnswer string `json:"selected_answer" validate:"required"`
}

type SubmitAttemptRequest struct {
	Answers        []SubmittedAnswer `json:"answers" validate:"omitempty,dive"`
	TabSwitchCount *int              `json:"tab_switch_count" validate:"omitempty,min=0"`
}

// ============================
// Converters
// ============================

func ToAttemptDTO(m model.QuizAttempt) AttemptDTO {
	return AttemptDTO{
		ID:             m.ID.String(),
		QuizID:         m.QuizID.String(),
		CandidateID:    m.CandidateID.String(),
		Score:          m.Score,
		Passed:         m.Passed,
		TabSwitchCount: m.TabSwitchCount,
		SubmittedAt:    m.SubmittedAt,
		CreatedAt:      m.CreatedAt,
	}
}

func ToAnswerDTO(m model.QuizAnswer) AnswerDTO {
	return AnswerDTO{
		ID:             m.ID.String(),
		AttemptID:      m.AttemptID.String(),
		QuestionID:     m.QuestionID.String(),
		SelectedAnswer: m.SelectedAnswer,
		IsCorrect:      m.IsCorrect,
	}
}

func ToAnswerDTOs(ms []model.QuizAnswer) []AnswerDTO {
	out := make([]AnswerDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToAnswerDTO(m))
	}
	return out
}

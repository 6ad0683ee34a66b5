package model

import (
	"time"

	"github.com/google/uuid"
)

type QuizAttempt struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	// at most one attempt per candidate per quiz; the database settles the race
	QuizID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_quiz_attempts_quiz_candidate" json:"quiz_id"`
	CandidateID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_quiz_attempts_quiz_candidate;index:idx_quiz_attempts_candidate" json:"candidate_id"`

	Score  *int  `json:"score,omitempty"`
	Passed *bool `json:"passed,omitempty"`

	TabSwitchCount int `gorm:"not null;default:0;column:tab_switch_count" json:"tab_switch_count"`

	// immutable once set; resubmission is rejected
	SubmittedAt *time.Time `gorm:"column:submitted_at" json:"submitted_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (QuizAttempt) TableName() string { return "quiz_attempts" }

type QuizAnswer struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AttemptID  uuid.UUID `gorm:"type:uuid;not null;index:idx_quiz_answers_attempt" json:"attempt_id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null" json:"question_id"`

	SelectedAnswer string `gorm:"size:255;not null;column:selected_answer" json:"selected_answer"`

	// graded against the question's correct answer at submission time; the
	// question may change afterwards, this record does not
	IsCorrect bool `gorm:"not null;column:is_correct" json:"is_correct"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (QuizAnswer) TableName() string { return "quiz_answers" }

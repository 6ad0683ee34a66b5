package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Quiz struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	// one quiz per opportunity; the database settles the race
	OpportunityID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_quizzes_opportunity_id" json:"opportunity_id"`

	Title           string  `gorm:"size:150;not null" json:"title"`
	Description     *string `gorm:"type:text" json:"description,omitempty"`
	DurationMinutes int     `gorm:"not null;column:duration_minutes" json:"duration_minutes"`
	PassingScore    int     `gorm:"not null;column:passing_score" json:"passing_score"`
	IsActive        bool    `gorm:"not null;default:true;column:is_active" json:"is_active"`

	Questions []QuizQuestion `gorm:"foreignKey:QuizID" json:"questions,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (Quiz) TableName() string { return "quizzes" }

type QuizQuestion struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	QuizID uuid.UUID `gorm:"type:uuid;not null;index:idx_quiz_questions_quiz" json:"quiz_id"`

	QuestionText string `gorm:"type:text;not null;column:question_text" json:"question_text"`

	// ordered list of {label, value}
	Options datatypes.JSON `gorm:"type:jsonb;not null" json:"options"`

	// never exposed to candidates before submission
	CorrectAnswer string `gorm:"size:255;not null;column:correct_answer" json:"correct_answer"`

	Points int `gorm:"not null;default:1" json:"points"`

	// zero-based creation index, drives presentation order
	Order int `gorm:"not null;column:question_order" json:"order"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (QuizQuestion) TableName() string { return "quiz_questions" }

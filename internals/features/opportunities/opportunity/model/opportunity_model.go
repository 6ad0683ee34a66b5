package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type OpportunityStatus string

const (
	StatusDraft     OpportunityStatus = "draft"
	StatusPublished OpportunityStatus = "published"
	StatusClosed    OpportunityStatus = "closed"
	StatusArchived  OpportunityStatus = "archived"
)

type OpportunityType string

const (
	TypeInternship OpportunityType = "internship"
	TypeFellowship OpportunityType = "fellowship"
	TypeVolunteer  OpportunityType = "volunteer"
)

type OpportunityMode string

const (
	ModeRemote OpportunityMode = "remote"
	ModeOnsite OpportunityMode = "onsite"
	ModeHybrid OpportunityMode = "hybrid"
)

type Opportunity struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string            `gorm:"size:150;not null" json:"title"`
	Description string            `gorm:"type:text;not null" json:"description"`
	Type        OpportunityType   `gorm:"type:varchar(20);not null;index:idx_opportunities_type" json:"type"`
	Mode        OpportunityMode   `gorm:"type:varchar(20);not null;index:idx_opportunities_mode" json:"mode"`
	Location    *string           `gorm:"size:100" json:"location,omitempty"`
	Category    string            `gorm:"size:50;not null;index:idx_opportunities_category" json:"category"`
	Skills      pq.StringArray    `gorm:"type:text[]" json:"skills"`
	Stipend     *float64          `json:"stipend,omitempty"`
	Duration    *string           `gorm:"size:50" json:"duration,omitempty"`
	Deadline    time.Time         `gorm:"not null;index:idx_opportunities_deadline" json:"deadline"`
	Positions   int               `gorm:"not null" json:"positions"`
	Status      OpportunityStatus `gorm:"type:varchar(16);not null;default:'draft';index:idx_opportunities_status" json:"status"`

	RecruiterID uuid.UUID `gorm:"type:uuid;not null;index:idx_opportunities_recruiter" json:"recruiter_id"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (Opportunity) TableName() string { return "opportunities" }

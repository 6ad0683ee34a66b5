package model

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "pending"
	StatusReviewing   ApplicationStatus = "reviewing"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusAccepted    ApplicationStatus = "accepted"
	StatusRejected    ApplicationStatus = "rejected"
	StatusWithdrawn   ApplicationStatus = "withdrawn"
)

type Application struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	// one application per (opportunity, candidate); the database settles the race
	OpportunityID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_applications_opportunity_candidate" json:"opportunity_id"`
	CandidateID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_applications_opportunity_candidate;index:idx_applications_candidate" json:"candidate_id"`

	CoverLetter *string `gorm:"size:2000;column:cover_letter" json:"cover_letter,omitempty"`
	ResumeURL   *string `gorm:"size:255;column:resume_url" json:"resume_url,omitempty"`

	Status ApplicationStatus `gorm:"type:varchar(16);not null;default:'pending';index:idx_applications_status" json:"status"`

	AppliedAt time.Time `gorm:"autoCreateTime;column:applied_at" json:"applied_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (Application) TableName() string { return "applications" }

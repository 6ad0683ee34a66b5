package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type UserProfile struct {
	// PK
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	// FK & Unique
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_user_profiles_user_id" json:"user_id"`

	FullName  *string        `gorm:"size:100;column:full_name" json:"full_name,omitempty"`
	Headline  *string        `gorm:"size:150;column:headline" json:"headline,omitempty"`
	Bio       *string        `gorm:"size:500;column:bio" json:"bio,omitempty"`
	Location  *string        `gorm:"size:100;column:location" json:"location,omitempty"`
	Phone     *string        `gorm:"size:20;column:phone" json:"phone,omitempty"`
	ResumeURL *string        `gorm:"size:255;column:resume_url" json:"resume_url,omitempty"`
	Skills    pq.StringArray `gorm:"type:text[];column:skills" json:"skills,omitempty"`

	IsBanned bool `gorm:"not null;default:false;column:is_banned" json:"is_banned"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (UserProfile) TableName() string { return "user_profiles" }

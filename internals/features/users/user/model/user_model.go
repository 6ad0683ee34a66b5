package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserName string    `gorm:"size:50;not null;uniqueIndex:uq_users_user_name" json:"user_name"`
	Email    string    `gorm:"size:255;not null;uniqueIndex:uq_users_email" json:"email"`

	// candidate | recruiter | admin
	Role string `gorm:"type:varchar(20);not null;index:idx_users_role" json:"role"`

	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }

package dto

import (
	"time"

	"talenthub_backend/internals/features/users/user/model"
)

// ============================
// Response DTOs
// ============================

// ProfileDTO is the owner's view: everything except the internal PK.
type ProfileDTO struct {
	UserID    string     `json:"user_id"`
	UserName  string     `json:"user_name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	FullName  *string    `json:"full_name,omitempty"`
	Headline  *string    `json:"headline,omitempty"`
	Bio       *string    `json:"bio,omitempty"`
	Location  *string    `json:"location,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	ResumeURL *string    `json:"resume_url,omitempty"`
	Skills    []string   `json:"skills,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// PublicProfileDTO hides email, phone, resume URL and ban status.
type PublicProfileDTO struct {
	UserID   string   `json:"user_id"`
	UserName string   `json:"user_name"`
	Role     string   `json:"role"`
	FullName *string  `json:"full_name,omitempty"`
	Headline *string  `json:"headline,omitempty"`
	Bio      *string  `json:"bio,omitempty"`
	Location *string  `json:"location,omitempty"`
	Skills   []string `json:"skills,omitempty"`
}

// ============================
// Update Request DTO
// ============================
type UpdateProfileRequest struct {
	FullName  *string  `json:"full_name" validate:"omitempty,max=100"`
	Headline  *string  `json:"headline" validate:"omitempty,max=150"`
	Bio       *string  `json:"bio" validate:"omitempty,max=500"`
	Location  *string  `json:"location" validate:"omitempty,max=100"`
	Phone     *string  `json:"phone" validate:"omitempty,max=20"`
	ResumeURL *string  `json:"resume_url" validate:"omitempty,url,max=255"`
	Skills    []string `json:"skills" validate:"omitempty,dive,min=1,max=50"`
}

// ============================
// Converters
// ============================

func ToProfileDTO(u model.User, p *model.UserProfile) ProfileDTO {
	out := ProfileDTO{
		UserID:   u.ID.String(),
		UserName: u.UserName,
		Email:    u.Email,
		Role:     u.Role,
	}
	if p != nil {
		out.FullName = p.FullName
		out.Headline = p.Headline
		out.Bio = p.Bio
		out.Location = p.Location
		out.Phone = p.Phone
		out.ResumeURL = p.ResumeURL
		out.Skills = p.Skills
		updatedAt := p.UpdatedAt
		out.UpdatedAt = &updatedAt
	}
	return out
}

func ToPublicProfileDTO(u model.User, p *model.UserProfile) PublicProfileDTO {
	out := PublicProfileDTO{
		UserID:   u.ID.String(),
		UserName: u.UserName,
		Role:     u.Role,
	}
	if p != nil {
		out.FullName = p.FullName
		out.Headline = p.Headline
		out.Bio = p.Bio
		out.Location = p.Location
		out.Skills = p.Skills
	}
	return out
}

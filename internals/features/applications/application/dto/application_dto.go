package dto

import (
	"time"

	"talenthub_backend/internals/features/applications/application/model"
)

// ============================
// Response DTO
// ============================
type ApplicationDTO struct {
	ID            string    `json:"id"`
	OpportunityID string    `json:"opportunity_id"`
	CandidateID   string    `json:"candidate_id"`
	CoverLetter   *string   `json:"cover_letter,omitempty"`
	ResumeURL     *string   `json:"resume_url,omitempty"`
	Status        string    `json:"status"`
	AppliedAt     time.Time `json:"applied_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ============================
// Request DTOs
// ============================

// CandidateID is never client-supplied; it always comes from the token.
type CreateApplicationRequest struct {
	OpportunityID string  `json:"opportunity_id" validate:"required,uuid"`
	CoverLetter   *string `json:"cover_letter" validate:"omitempty,min=1,max=2000"`
	ResumeURL     *string `json:"resume_url" validate:"omitempty,url"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reviewing shortlisted accepted rejected withdrawn"`
}

// ============================
// Converters
// ============================
func ToApplicationDTO(m model.Application) ApplicationDTO {
	return ApplicationDTO{
		ID:            m.ID.String(),
		OpportunityID: m.OpportunityID.String(),
		CandidateID:   m.CandidateID.String(),
		CoverLetter:   m.CoverLetter,
		ResumeURL:     m.ResumeURL,
		Status:        string(m.Status),
		AppliedAt:     m.AppliedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToApplicationDTOs(ms []model.Application) []ApplicationDTO {
	out := make([]ApplicationDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToApplicationDTO(m))
	}
	return out
}

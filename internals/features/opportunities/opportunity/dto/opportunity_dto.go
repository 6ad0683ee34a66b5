package dto

import (
	"time"

	"talenthub_backend/internals/features/opportunities/opportunity/model"
)

// ============================
// Response DTO
// ============================
type OpportunityDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Mode        string    `json:"mode"`
	Location    *string   `json:"location,omitempty"`
	Category    string    `json:"category"`
	Skills      []string  `json:"skills"`
	Stipend     *float64  `json:"stipend,omitempty"`
	Duration    *string   `json:"duration,omitempty"`
	Deadline    time.Time `json:"deadline"`
	Positions   int       `json:"positions"`
	Status      string    `json:"status"`
	RecruiterID string    `json:"recruiter_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ============================
// Request DTOs
// ============================
type CreateOpportunityRequest struct {
	Title       string    `json:"title" validate:"required,min=5,max=150"`
	Description string    `json:"description" validate:"required,min=20"`
	Type        string    `json:"type" validate:"required,oneof=internship fellowship volunteer"`
	Mode        string    `json:"mode" validate:"required,oneof=remote onsite hybrid"`
	Location    *string   `json:"location" validate:"omitempty,max=100"`
	Category    string    `json:"category" validate:"required,max=50"`
	Skills      []string  `json:"skills" validate:"required,min=1,dive,min=1,max=50"`
	Stipend     *float64  `json:"stipend" validate:"omitempty,gt=0"`
	Duration    *string   `json:"duration" validate:"omitempty,max=50"`
	Deadline    time.Time `json:"deadline" validate:"required"`
	Positions   int       `json:"positions" validate:"required,min=1,max=100"`
}

type UpdateOpportunityRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=5,max=150"`
	Description *string    `json:"description" validate:"omitempty,min=20"`
	Type        *string    `json:"type" validate:"omitempty,oneof=internship fellowship volunteer"`
	Mode        *string    `json:"mode" validate:"omitempty,oneof=remote onsite hybrid"`
	Location    *string    `json:"location" validate:"omitempty,max=100"`
	Category    *string    `json:"category" validate:"omitempty,max=50"`
	Skills      []string   `json:"skills" validate:"omitempty,min=1,dive,min=1,max=50"`
	Stipend     *float64   `json:"stipend" validate:"omitempty,gt=0"`
	Duration    *string    `json:"duration" validate:"omitempty,max=50"`
	Deadline    *time.Time `json:"deadline"`
	Positions   *int       `json:"positions" validate:"omitempty,min=1,max=100"`
}

type UpdateOpportunityStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft published closed archived"`
}

// ============================
// Converters
// ============================
func ToOpportunityDTO(m model.Opportunity) OpportunityDTO {
	return OpportunityDTO{
		ID:          m.ID.String(),
		Title:       m.Title,
		Description: m.Description,
		Type:        string(m.Type),
		Mode:        string(m.Mode),
		Location:    m.Location,
		Category:    m.Category,
		Skills:      m.Skills,
		Stipend:     m.Stipend,
		Duration:    m.Duration,
		Deadline:    m.Deadline,
		Positions:   m.Positions,
		Status:      string(m.Status),
		RecruiterID: m.RecruiterID.String(),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToOpportunityDTOs(ms []model.Opportunity) []OpportunityDTO {
	out := make([]OpportunityDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToOpportunityDTO(m))
	}
	return out
}

package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"talenthub_backend/internals/features/opportunities/opportunity/dto"
	"talenthub_backend/internals/features/opportunities/opportunity/model"
	helper "talenthub_backend/internals/helpers"
)

type OpportunityController struct {
	DB *gorm.DB
}

func NewOpportunityController(db *gorm.DB) *OpportunityController {
	return &OpportunityController{DB: db}
}

var validate = validator.New()

// =============================
// Create (recruiter) — always starts as draft
// =============================
func (ctrl *OpportunityController) CreateOpportunity(c *fiber.Ctx) error {
	recruiterID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var body dto.CreateOpportunityRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if !body.Deadline.After(time.Now()) {
		return fiber.NewError(fiber.StatusBadRequest, "Deadline must be in the future")
	}

	opp := model.Opportunity{
		Title:       body.Title,
		Description: body.Description,
		Type:        model.OpportunityType(body.Type),
		Mode:        model.OpportunityMode(body.Mode),
		Location:    body.Location,
		Category:    body.Category,
		Skills:      body.Skills,
		Stipend:     body.Stipend,
		Duration:    body.Duration,
		Deadline:    body.Deadline,
		Positions:   body.Positions,
		Status:      model.StatusDraft,
		RecruiterID: recruiterID,
	}

	if err := ctrl.DB.Create(&opp).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create opportunity")
	}

	return helper.JsonCreated(c, "Opportunity created", dto.ToOpportunityDTO(opp))
}

// =============================
// Get by ID (public) — denial is always NotFound
// =============================
func (ctrl *OpportunityController) GetOpportunityByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id", "Opportunity not found")
	if err != nil {
		return err
	}

	var opp model.Opportunity
	if err := ctrl.DB.First(&opp, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Opportunity not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch opportunity")
	}

	if !VisibleTo(opp, helper.GetOptionalUserUUID(c)) {
		return fiber.NewError(fiber.StatusNotFound, "Opportunity not found")
	}

	return helper.JsonOK(c, "", dto.ToOpportunityDTO(opp))
}

// =============================
// Update (recruiter/owner) — partial, only defined fields are written
// =============================
func (ctrl *OpportunityController) UpdateOpportunity(c *fiber.Ctx) error {
	recruiterID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var body dto.UpdateOpportunityRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	opp, err := ctrl.loadOwned(c, recruiterID, "You do not have permission to update this opportunity")
	if err != nil {
		return err
	}

	applyOpportunityUpdate(opp, body)
	opp.UpdatedAt = time.Now()

	if err := ctrl.DB.Save(opp).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update opportunity")
	}

	return helper.JsonUpdated(c, "Opportunity updated", dto.ToOpportunityDTO(*opp))
}

// =============================
// Update status (recruiter/owner) — no transition table, any to any
// =============================
func (ctrl *OpportunityController) UpdateOpportunityStatus(c *fiber.Ctx) error {
	recruiterID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var body dto.UpdateOpportunityStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	opp, err := ctrl.loadOwned(c, recruiterID, "You do not have permission to update this opportunity")
	if err != nil {
		return err
	}

	opp.Status = model.OpportunityStatus(body.Status)
	opp.UpdatedAt = time.Now()

	if err := ctrl.DB.Save(opp).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update opportunity status")
	}

	return helper.JsonUpdated(c, "Opportunity status updated", dto.ToOpportunityDTO(*opp))
}

// =============================
// Delete (recruiter/owner) — soft delete: archive, idempotent
// =============================
func (ctrl *OpportunityController) DeleteOpportunity(c *fiber.Ctx) error {
	recruiterID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	opp, err := ctrl.loadOwned(c, recruiterID, "You do not have permission to delete this opportunity")
	if err != nil {
		return err
	}

	opp.Status = model.StatusArchived
	opp.UpdatedAt = time.Now()

	if err := ctrl.DB.Save(opp).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to archive opportunity")
	}

	return helper.JsonUpdated(c, "Opportunity archived", dto.ToOpportunityDTO(*opp))
}

func (ctrl *OpportunityController) loadOwned(c *fiber.Ctx, recruiterID uuid.UUID, forbiddenMsg string) (*model.Opportunity, error) {
	id, err := helper.ParseUUIDParam(c, "id", "Opportunity not found")
	if err != nil {
		return nil, err
	}

	var opp model.Opportunity
	if err := ctrl.DB.First(&opp, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Opportunity not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch opportunity")
	}
	if opp.RecruiterID != recruiterID {
		return nil, fiber.NewError(fiber.StatusForbidden, forbiddenMsg)
	}
	return &opp, nil
}

func applyOpportunityUpdate(opp *model.Opportunity, body dto.UpdateOpportunityRequest) {
	if body.Title != nil {
		opp.Title = *body.Title
	}
	if body.Description != nil {
		opp.Description = *body.Description
	}
	if body.Type != nil {
		opp.Type = model.OpportunityType(*body.Type)
	}
	if body.Mode != nil {
		opp.Mode = model.OpportunityMode(*body.Mode)
	}
	if body.Location != nil {
		opp.Location = body.Location
	}
	if body.Category != nil {
		opp.Category = *body.Category
	}
	if body.Skills != nil {
		opp.Skills = body.Skills
	}
	if body.Stipend != nil {
		opp.Stipend = body.Stipend
	}
	if body.Duration != nil {
		opp.Duration = body.Duration
	}
	if body.Deadline != nil {
		opp.Deadline = *body.Deadline
	}
	if body.Positions != nil {
		opp.Positions = *body.Positions
	}
}

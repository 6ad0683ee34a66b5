package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"talenthub_backend/internals/constants"
	"talenthub_backend/internals/features/applications/application/dto"
	"talenthub_backend/internals/features/applications/application/model"
	oppModel "talenthub_backend/internals/features/opportunities/opportunity/model"
	helper "talenthub_backend/internals/helpers"
)

type ApplicationController struct {
	DB *gorm.DB
}

func NewApplicationController(db *gorm.DB) *ApplicationController {
	return &ApplicationController{DB: db}
}

var validate = validator.New()

// =============================
// Create (candidate) — opportunity must be published, one per candidate
// =============================
func (ctrl *ApplicationController) CreateApplication(c *fiber.Ctx) error {
	candidateID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var body dto.CreateApplicationRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var opp oppModel.Opportunity
	if err := ctrl.DB.First(&opp, "id = ?", body.OpportunityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Opportunity not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch opportunity")
	}
	if opp.Status != oppModel.StatusPublished {
		return fiber.NewError(fiber.StatusBadRequest, "This opportunity is not accepting applications")
	}

	var existing model.Application
	err = ctrl.DB.First(&existing, "opportunity_id = ? AND candidate_id = ?", opp.ID, candidateID).Error
	if err == nil {
		return fiber.NewError(fiber.StatusBadRequest, "You have already applied to this opportunity")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing application")
	}

	app := model.Application{
		OpportunityID: opp.ID,
		CandidateID:   candidateID,
		CoverLetter:   body.CoverLetter,
		ResumeURL:     body.ResumeURL,
		Status:        model.StatusPending,
	}

	if err := ctrl.DB.Create(&app).Error; err != nil {
		// concurrent duplicate settles here, same outcome as the pre-check
		if helper.IsUniqueViolation(err, "uq_applications_opportunity_candidate") {
			return fiber.NewError(fiber.StatusBadRequest, "You have already applied to this opportunity")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create application")
	}

	return helper.JsonCreated(c, "Application submitted", dto.ToApplicationDTO(app))
}

// =============================
// Get by ID (authenticated) — unlike opportunities, denial here is Forbidden:
// application records do not hide their existence from authenticated users
// =============================
func (ctrl *ApplicationController) GetApplicationByID(c *fiber.Ctx) error {
	principalID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	role, err := helper.GetUserRole(c)
	if err != nil {
		return err
	}

	appID, err := helper.ParseUUIDParam(c, "id", "Application not found")
	if err != nil {
		return err
	}

	var app model.Application
	if err := ctrl.DB.First(&app, "id = ?", appID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Application not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch application")
	}

	switch role {
	case constants.RoleCandidate:
		if app.CandidateID != principalID {
			return fiber.NewError(fiber.StatusForbidden, "You do not have permission to view this application")
		}
	case constants.RoleRecruiter:
		owns, err := ctrl.recruiterOwnsOpportunity(app.OpportunityID, principalID)
		if err != nil {
			return err
		}
		if !owns {
			return fiber.NewError(fiber.StatusForbidden, "You do not have permission to view this application")
		}
	case constants.RoleAdmin:
		// admins may view any application
	default:
		return fiber.NewError(fiber.StatusForbidden, "You do not have permission to view this application")
	}

	return helper.JsonOK(c, "", dto.ToApplicationDTO(app))
}

// =============================
// List own applications (candidate)
// =============================
func (ctrl *ApplicationController) ListApplicationsByCandidate(c *fiber.Ctx) error {
	candidateID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 50, helper.MaxLimit)

	query := ctrl.DB.Model(&model.Application{}).Where("candidate_id = ?", candidateID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	return ctrl.renderApplicationList(c, query, paging)
}

// =============================
// List by opportunity (recruiter/owner)
// =============================
func (ctrl *ApplicationController) ListApplicationsByOpportunity(c *fiber.Ctx) error {
	recruiterID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	oppID, err := helper.ParseUUIDParam(c, "opportunity_id", "Opportunity not found")
	if err != nil {
		return err
	}

	var opp oppModel.Opportunity
	if err := ctrl.DB.First(&opp, "id = ?", oppID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Opportunity not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch opportunity")
	}
	if opp.RecruiterID != recruiterID {
		return fiber.NewError(fiber.StatusForbidden, "You do not have permission to view applications for this opportunity")
	}

	paging := helper.ResolvePaging(c, 50, helper.MaxLimit)

	query := ctrl.DB.Model(&model.Application{}).Where("opportunity_id = ?", opp.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	return ctrl.renderApplicationList(c, query, paging)
}

// =============================
// Update status (recruiter/owner) — any status to any status
// =============================
func (ctrl *ApplicationController) UpdateApplicationStatus(c *fiber.Ctx) error {
	recruiterID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var body dto.UpdateApplicationStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	appID, err := helper.ParseUUIDParam(c, "id", "Application not found")
	if err != nil {
		return err
	}

	var app model.Application
	if err := ctrl.DB.First(&app, "id = ?", appID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Application not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch application")
	}

	owns, err := ctrl.recruiterOwnsOpportunity(app.OpportunityID, recruiterID)
	if err != nil {
		return err
	}
	if !owns {
		return fiber.NewError(fiber.StatusForbidden, "You do not have permission to update this application")
	}

	app.Status = model.ApplicationStatus(body.Status)
	app.UpdatedAt = time.Now()

	if err := ctrl.DB.Save(&app).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update application status")
	}

	return helper.JsonUpdated(c, "Application status updated", dto.ToApplicationDTO(app))
}

// =============================
// Withdraw (candidate/owner) — the constrained state machine
// =============================
func (ctrl *ApplicationController) WithdrawApplication(c *fiber.Ctx) error {
	candidateID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	appID, err := helper.ParseUUIDParam(c, "id", "Application not found")
	if err != nil {
		return err
	}

	var app model.Application
	if err := ctrl.DB.First(&app, "id = ?", appID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Application not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch application")
	}

	if app.CandidateID != candidateID {
		return fiber.NewError(fiber.StatusForbidden, "You do not have permission to withdraw this application")
	}

	if err := CheckWithdrawal(app.Status); err != nil {
		return err
	}

	app.Status = model.StatusWithdrawn
	app.UpdatedAt = time.Now()

	if err := ctrl.DB.Save(&app).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to withdraw application")
	}

	return helper.JsonUpdated(c, "Application withdrawn", dto.ToApplicationDTO(app))
}

func (ctrl *ApplicationController) recruiterOwnsOpportunity(opportunityID, recruiterID uuid.UUID) (bool, error) {
	var opp oppModel.Opportunity
	if err := ctrl.DB.Select("id", "recruiter_id").First(&opp, "id = ?", opportunityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch opportunity")
	}
	return opp.RecruiterID == recruiterID, nil
}

func (ctrl *ApplicationController) renderApplicationList(c *fiber.Ctx, query *gorm.DB, paging helper.Paging) error {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count applications")
	}

	var applications []model.Application
	if err := query.
		Order("applied_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&applications).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch applications")
	}

	items := dto.ToApplicationDTOs(applications)
	return helper.JsonList(c, "",
		fiber.Map{"applications": items, "total": total},
		helper.BuildPagination(total, paging, len(items)),
	)
}

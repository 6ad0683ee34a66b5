package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"talenthub_backend/internals/features/users/user/dto"
	"talenthub_backend/internals/features/users/user/model"
	helper "talenthub_backend/internals/helpers"
)

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

var validate = validator.New()

// =============================
// Get own profile
// =============================
func (ctrl *ProfileController) GetProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var user model.User
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}

	profile, err := ctrl.findProfile(userID)
	if err != nil {
		return err
	}

	return helper.JsonOK(c, "", dto.ToProfileDTO(user, profile))
}

// =============================
// Update own profile (created on first write)
// =============================
func (ctrl *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var body dto.UpdateProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.User
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}

	var profile model.UserProfile
	err = ctrl.DB.First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = model.UserProfile{UserID: userID}
	} else if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch profile")
	}

	applyProfileUpdate(&profile, body)

	if err := ctrl.DB.Save(&profile).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update profile")
	}

	return helper.JsonUpdated(c, "Profile updated", dto.ToProfileDTO(user, &profile))
}

// =============================
// Public profile by user id
// =============================
func (ctrl *ProfileController) GetPublicProfile(c *fiber.Ctx) error {
	userID, err := helper.ParseUUIDParam(c, "user_id", "Profile not found")
	if err != nil {
		return err
	}

	var user model.User
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Profile not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch profile")
	}

	profile, err := ctrl.findProfile(user.ID)
	if err != nil {
		return err
	}

	return helper.JsonOK(c, "", dto.ToPublicProfileDTO(user, profile))
}

func (ctrl *ProfileController) findProfile(userID uuid.UUID) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := ctrl.DB.First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch profile")
	}
	return &profile, nil
}

// applyProfileUpdate writes only the fields present in the request.
func applyProfileUpdate(profile *model.UserProfile, body dto.UpdateProfileRequest) {
	if body.FullName != nil {
		profile.FullName = body.FullName
	}
	if body.Headline != nil {
		profile.Headline = body.Headline
	}
	if body.Bio != nil {
		profile.Bio = body.Bio
	}
	if body.Location != nil {
		profile.Location = body.Location
	}
	if body.Phone != nil {
		profile.Phone = body.Phone
	}
	if body.ResumeURL != nil {
		profile.ResumeURL = body.ResumeURL
	}
	if body.Skills != nil {
		profile.Skills = body.Skills
	}
}

package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"talenthub_backend/internals/constants"
	"talenthub_backend/internals/features/assessments/quizzes/dto"
	"talenthub_backend/internals/features/assessments/quizzes/model"
	oppModel "talenthub_backend/internals/features/opportunities/opportunity/model"
	helper "talenthub_backend/internals/helpers"
)

type QuizController struct {
	DB *gorm.DB
}

func NewQuizController(db *gorm.DB) *QuizController {
	return &QuizController{DB: db}
}

var validate = validator.New()

// =============================
// Create (recruiter/owner) — quiz + questions in one transaction
// =============================
func (ctrl *QuizController) CreateQuiz(c *fiber.Ctx) error {
	recruiterID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var body dto.CreateQuizRequest
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
	if opp.RecruiterID != recruiterID {
		return fiber.NewError(fiber.StatusForbidden, "Not your opportunity")
	}

	var existing model.Quiz
	err = ctrl.DB.First(&existing, "opportunity_id = ?", opp.ID).Error
	if err == nil {
		return fiber.NewError(fiber.StatusConflict, "Quiz already exists for this opportunity")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing quiz")
	}

	quiz := model.Quiz{
		OpportunityID:   opp.ID,
		Title:           body.Title,
		Description:     body.Description,
		DurationMinutes: body.DurationMinutes,
		PassingScore:    body.PassingScore,
		IsActive:        true,
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&quiz).Error; err != nil {
			return err
		}
		questions := make([]model.QuizQuestion, 0, len(body.Questions))
		for i, q := range body.Questions {
			options, err := dto.OptionsToJSON(q.Options)
			if err != nil {
				return err
			}
			points := 1
			if q.Points != nil {
				points = *q.Points
			}
			questions = append(questions, model.QuizQuestion{
				QuizID:        quiz.ID,
				QuestionText:  q.QuestionText,
				Options:       options,
				CorrectAnswer: q.CorrectAnswer,
				Points:        points,
				Order:         i,
			})
		}
		return tx.Create(&questions).Error
	})
	if txErr != nil {
		if helper.IsUniqueViolation(txErr, "uq_quizzes_opportunity_id") {
			return fiber.NewError(fiber.StatusConflict, "Quiz already exists for this opportunity")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create quiz")
	}

	return helper.JsonCreated(c, "Quiz created", dto.ToQuizDTO(quiz))
}

// =============================
// Update (recruiter/owner, transitive through the opportunity)
// =============================
func (ctrl *QuizController) UpdateQuiz(c *fiber.Ctx) error {
	recruiterID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var body dto.UpdateQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	quizID, err := helper.ParseUUIDParam(c, "id", "Quiz not found")
	if err != nil {
		return err
	}

	var quiz model.Quiz
	if err := ctrl.DB.First(&quiz, "id = ?", quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Quiz not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch quiz")
	}

	owns, err := ctrl.quizOwnedBy(quiz, recruiterID)
	if err != nil {
		return err
	}
	if !owns {
		return fiber.NewError(fiber.StatusForbidden, "Not your quiz")
	}

	if body.Title != nil {
		quiz.Title = *body.Title
	}
	if body.Description != nil {
		quiz.Description = body.Description
	}
	if body.DurationMinutes != nil {
		quiz.DurationMinutes = *body.DurationMinutes
	}
	if body.PassingScore != nil {
		quiz.PassingScore = *body.PassingScore
	}
	if body.IsActive != nil {
		quiz.IsActive = *body.IsActive
	}
	quiz.UpdatedAt = time.Now()

	if err := ctrl.DB.Save(&quiz).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update quiz")
	}

	return helper.JsonUpdated(c, "Quiz updated", dto.ToQuizDTO(quiz))
}

// =============================
// Get by opportunity (authenticated) — includes correct answers, so only the
// owning recruiter or an admin gets through
// =============================
func (ctrl *QuizController) GetQuizByOpportunity(c *fiber.Ctx) error {
	principalID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	role, err := helper.GetUserRole(c)
	if err != nil {
		return err
	}

	oppID, err := helper.ParseUUIDParam(c, "opportunity_id", "Quiz not found")
	if err != nil {
		return err
	}

	var quiz model.Quiz
	if err := ctrl.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_order ASC")
		}).
		First(&quiz, "opportunity_id = ?", oppID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Quiz not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch quiz")
	}

	if role != constants.RoleAdmin {
		owns, err := ctrl.quizOwnedBy(quiz, principalID)
		if err != nil {
			return err
		}
		if !owns {
			return fiber.NewError(fiber.StatusForbidden, "Not your quiz")
		}
	}

	return helper.JsonOK(c, "", fiber.Map{
		"quiz":      dto.ToQuizDTO(quiz),
		"questions": dto.ToQuestionDTOs(quiz.Questions),
	})
}

func (ctrl *QuizController) quizOwnedBy(quiz model.Quiz, recruiterID uuid.UUID) (bool, error) {
	var opp oppModel.Opportunity
	if err := ctrl.DB.Select("id", "recruiter_id").First(&opp, "id = ?", quiz.OpportunityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch opportunity")
	}
	return opp.RecruiterID == recruiterID, nil
}

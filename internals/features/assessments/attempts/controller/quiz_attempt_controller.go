package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"talenthub_backend/internals/constants"
	"talenthub_backend/internals/features/assessments/attempts/dto"
	"talenthub_backend/internals/features/assessments/attempts/model"
	quizDto "talenthub_backend/internals/features/assessments/quizzes/dto"
	quizModel "talenthub_backend/internals/features/assessments/quizzes/model"
	oppModel "talenthub_backend/internals/features/opportunities/opportunity/model"
	helper "talenthub_backend/internals/helpers"
)

type QuizAttemptController struct {
	DB *gorm.DB
}

func NewQuizAttemptController(db *gorm.DB) *QuizAttemptController {
	return &QuizAttemptController{DB: db}
}

var validate = validator.New()

// =============================
// Get-for-attempt (candidate) — create or resume; questions come back with
// correct answers and points stripped
// =============================
func (ctrl *QuizAttemptController) GetQuizForAttempt(c *fiber.Ctx) error {
	candidateID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	quizID, err := helper.ParseUUIDParam(c, "quiz_id", "Quiz not found")
	if err != nil {
		return err
	}

	var quiz quizModel.Quiz
	if err := ctrl.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_order ASC")
		}).
		First(&quiz, "id = ?", quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Quiz not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch quiz")
	}
	if !quiz.IsActive {
		return fiber.NewError(fiber.StatusBadRequest, "Quiz is not active")
	}

	attempt, err := ctrl.findOrCreateAttempt(quiz.ID, candidateID)
	if err != nil {
		return err
	}

	return helper.JsonOK(c, "", fiber.Map{
		"quiz":      quizDto.ToQuizDTO(quiz),
		"questions": quizDto.ToCandidateQuestionDTOs(quiz.Questions),
		"attempt":   dto.ToAttemptDTO(*attempt),
	})
}

// =============================
// Submit (candidate/owner) — single shot; the conditional update on
// submitted_at IS NULL settles a double-submission race
// =============================
func (ctrl *QuizAttemptController) SubmitAttempt(c *fiber.Ctx) error {
	candidateID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var body dto.SubmitAttemptRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	attemptID, err := helper.ParseUUIDParam(c, "id", "Attempt not found")
	if err != nil {
		return err
	}

	var attempt model.QuizAttempt
	if err := ctrl.DB.First(&attempt, "id = ?", attemptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Attempt not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attempt")
	}
	if attempt.CandidateID != candidateID {
		return fiber.NewError(fiber.StatusForbidden, "Not your attempt")
	}
	if attempt.SubmittedAt != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Quiz already submitted")
	}

	var quiz quizModel.Quiz
	if err := ctrl.DB.
		Preload("Questions").
		First(&quiz, "id = ?", attempt.QuizID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch quiz")
	}

	result := GradeSubmission(attempt.ID, quiz.Questions, body.Answers, quiz.PassingScore)
	now := time.Now()

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"score":        result.Score,
			"passed":       result.Passed,
			"submitted_at": now,
			"updated_at":   now,
		}
		if body.TabSwitchCount != nil {
			updates["tab_switch_count"] = *body.TabSwitchCount
		}

		res := tx.Model(&model.QuizAttempt{}).
			Where("id = ? AND submitted_at IS NULL", attempt.ID).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Quiz already submitted")
		}

		if len(result.Answers) > 0 {
			if err := tx.Create(&result.Answers).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to submit attempt")
	}

	attempt.Score = &result.Score
	attempt.Passed = &result.Passed
	attempt.SubmittedAt = &now
	if body.TabSwitchCount != nil {
		attempt.TabSwitchCount = *body.TabSwitchCount
	}

	return helper.JsonOK(c, "Attempt submitted", dto.ToAttemptDTO(attempt))
}

// =============================
// Result (authenticated) — exhaustive role switch, fails closed
// =============================
func (ctrl *QuizAttemptController) GetAttemptResult(c *fiber.Ctx) error {
	principalID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	role, err := helper.GetUserRole(c)
	if err != nil {
		return err
	}

	attemptID, err := helper.ParseUUIDParam(c, "id", "Attempt not found")
	if err != nil {
		return err
	}

	var attempt model.QuizAttempt
	if err := ctrl.DB.First(&attempt, "id = ?", attemptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Attempt not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attempt")
	}

	switch role {
	case constants.RoleCandidate:
		if attempt.CandidateID != principalID {
			return fiber.NewError(fiber.StatusForbidden, "You do not have permission to view this attempt")
		}
	case constants.RoleRecruiter:
		owns, err := ctrl.attemptOwnedByRecruiter(attempt, principalID)
		if err != nil {
			return err
		}
		if !owns {
			return fiber.NewError(fiber.StatusForbidden, "You do not have permission to view this attempt")
		}
	case constants.RoleAdmin:
		// admins may view any attempt
	default:
		return fiber.NewError(fiber.StatusForbidden, "You do not have permission to view this attempt")
	}

	var answers []model.QuizAnswer
	if err := ctrl.DB.Find(&answers, "attempt_id = ?", attempt.ID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch answers")
	}

	var questions []quizModel.QuizQuestion
	if err := ctrl.DB.
		Order("question_order ASC").
		Find(&questions, "quiz_id = ?", attempt.QuizID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch questions")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"attempt":   dto.ToAttemptDTO(attempt),
		"answers":   dto.ToAnswerDTOs(answers),
		"questions": quizDto.ToQuestionDTOs(questions),
	})
}

// findOrCreateAttempt reuses the open attempt or creates one; a concurrent
// duplicate insert falls back to re-reading the row the other request won.
func (ctrl *QuizAttemptController) findOrCreateAttempt(quizID, candidateID uuid.UUID) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := ctrl.DB.First(&attempt, "quiz_id = ? AND candidate_id = ?", quizID, candidateID).Error
	if err == nil {
		return &attempt, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attempt")
	}

	attempt = model.QuizAttempt{
		QuizID:         quizID,
		CandidateID:    candidateID,
		TabSwitchCount: 0,
	}
	if err := ctrl.DB.Create(&attempt).Error; err != nil {
		if helper.IsUniqueViolation(err, "uq_quiz_attempts_quiz_candidate") {
			if err := ctrl.DB.First(&attempt, "quiz_id = ? AND candidate_id = ?", quizID, candidateID).Error; err != nil {
				return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch attempt")
			}
			return &attempt, nil
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create attempt")
	}
	return &attempt, nil
}

func (ctrl *QuizAttemptController) attemptOwnedByRecruiter(attempt model.QuizAttempt, recruiterID uuid.UUID) (bool, error) {
	var quiz quizModel.Quiz
	if err := ctrl.DB.Select("id", "opportunity_id").First(&quiz, "id = ?", attempt.QuizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch quiz")
	}
	var opp oppModel.Opportunity
	if err := ctrl.DB.Select("id", "recruiter_id").First(&opp, "id = ?", quiz.OpportunityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch opportunity")
	}
	return opp.RecruiterID == recruiterID, nil
}

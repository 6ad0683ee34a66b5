package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptRoute "talenthub_backend/internals/features/assessments/attempts/route"
	quizRoute "talenthub_backend/internals/features/assessments/quizzes/route"
)

func AssessmentRoutes(user, candidate, recruiter fiber.Router, db *gorm.DB) {
	quizRoute.QuizUserRoutes(user, db)
	quizRoute.QuizRecruiterRoutes(recruiter, db)

	attemptRoute.AttemptUserRoutes(user, db)
	attemptRoute.AttemptCandidateRoutes(candidate, db)
}

package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"talenthub_backend/internals/features/assessments/attempts/controller"
	"talenthub_backend/internals/middlewares"
)

// AttemptUserRoutes: any authenticated role; the controller narrows per role.
func AttemptUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuizAttemptController(db)

	router.Get("/attempts/:id/result", ctrl.GetAttemptResult)
}

// AttemptCandidateRoutes: candidate role required.
func AttemptCandidateRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuizAttemptController(db)

	router.Get("/quizzes/:quiz_id/attempt", ctrl.GetQuizForAttempt)
	router.Post("/attempts/:id/submit", middlewares.SubmitRateLimiter(), ctrl.SubmitAttempt)
}

package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"talenthub_backend/internals/features/assessments/quizzes/controller"
)

// QuizUserRoutes: any authenticated role; the controller narrows further.
func QuizUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuizController(db)

	router.Get("/opportunities/:opportunity_id/quiz", ctrl.GetQuizByOpportunity)
}

// QuizRecruiterRoutes: recruiter role required.
func QuizRecruiterRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuizController(db)

	quizzes := router.Group("/quizzes")
	quizzes.Post("/", ctrl.CreateQuiz)
	quizzes.Put("/:id", ctrl.UpdateQuiz)
}

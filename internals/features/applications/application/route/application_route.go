package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"talenthub_backend/internals/features/applications/application/controller"
)

// ApplicationUserRoutes: any authenticated role.
func ApplicationUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewApplicationController(db)

	router.Get("/applications/:id", ctrl.GetApplicationByID)
}

// ApplicationCandidateRoutes: candidate role required.
func ApplicationCandidateRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewApplicationController(db)

	apps := router.Group("/applications")
	apps.Post("/", ctrl.CreateApplication)
	apps.Get("/", ctrl.ListApplicationsByCandidate)
	apps.Post("/:id/withdraw", ctrl.WithdrawApplication)
}

// ApplicationRecruiterRoutes: recruiter role required.
func ApplicationRecruiterRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewApplicationController(db)

	router.Get("/opportunities/:opportunity_id/applications", ctrl.ListApplicationsByOpportunity)
	router.Patch("/applications/:id/status", ctrl.UpdateApplicationStatus)
}

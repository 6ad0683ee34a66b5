package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"talenthub_backend/internals/features/opportunities/opportunity/controller"
)

// OpportunityPublicRoutes: listing and detail, anonymous allowed.
func OpportunityPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewOpportunityController(db)

	opp := router.Group("/opportunities")
	opp.Get("/", ctrl.ListOpportunities)
	opp.Get("/:id", ctrl.GetOpportunityByID)
}

// OpportunityUserRoutes: any authenticated role.
func OpportunityUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewOpportunityController(db)

	router.Get("/recruiters/:recruiter_id/opportunities", ctrl.ListOpportunitiesByRecruiter)
}

// OpportunityRecruiterRoutes: mutations, recruiter role required.
func OpportunityRecruiterRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewOpportunityController(db)

	opp := router.Group("/opportunities")
	opp.Post("/", ctrl.CreateOpportunity)
	opp.Put("/:id", ctrl.UpdateOpportunity)
	opp.Patch("/:id/status", ctrl.UpdateOpportunityStatus)
	opp.Delete("/:id", ctrl.DeleteOpportunity)
}

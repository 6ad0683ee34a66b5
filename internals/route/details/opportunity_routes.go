package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	opportunityRoute "talenthub_backend/internals/features/opportunities/opportunity/route"
)

func OpportunityRoutes(public, user, recruiter fiber.Router, db *gorm.DB) {
	opportunityRoute.OpportunityPublicRoutes(public, db)
	opportunityRoute.OpportunityUserRoutes(user, db)
	opportunityRoute.OpportunityRecruiterRoutes(recruiter, db)
}

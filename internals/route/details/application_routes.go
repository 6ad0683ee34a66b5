package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	applicationRoute "talenthub_backend/internals/features/applications/application/route"
)

func ApplicationRoutes(user, candidate, recruiter fiber.Router, db *gorm.DB) {
	applicationRoute.ApplicationUserRoutes(user, db)
	applicationRoute.ApplicationCandidateRoutes(candidate, db)
	applicationRoute.ApplicationRecruiterRoutes(recruiter, db)
}

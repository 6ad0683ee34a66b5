// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"talenthub_backend/internals/constants"
	authMiddleware "talenthub_backend/internals/middlewares/auth"
	routeDetails "talenthub_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== GROUPS =====================

	// PUBLIC → JWT optional, anonymous allowed
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public", authMiddleware.OptionalAuthMiddleware(db))

	// AUTHENTICATED, any role
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	// CANDIDATE only
	log.Println("[INFO] Setting up CANDIDATE group...")
	candidate := app.Group("/api/c",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.ErrCandidateOnly, constants.RoleCandidate),
	)

	// RECRUITER only
	log.Println("[INFO] Setting up RECRUITER group...")
	recruiter := app.Group("/api/r",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.ErrRecruiterOnly, constants.RoleRecruiter),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Opportunity routes...")
	routeDetails.OpportunityRoutes(public, user, recruiter, db)

	log.Println("[INFO] Mounting Application routes...")
	routeDetails.ApplicationRoutes(user, candidate, recruiter, db)

	log.Println("[INFO] Mounting Assessment routes...")
	routeDetails.AssessmentRoutes(user, candidate, recruiter, db)

	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserRoutes(public, user, db)
}

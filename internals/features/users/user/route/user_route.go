package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"talenthub_backend/internals/features/users/user/controller"
)

// ProfileUserRoutes mounts the authenticated profile endpoints.
func ProfileUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProfileController(db)

	profile := router.Group("/profile")
	profile.Get("/", ctrl.GetProfile)
	profile.Put("/", ctrl.UpdateProfile)
}

// ProfilePublicRoutes mounts the public profile endpoint.
func ProfilePublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProfileController(db)

	router.Get("/profiles/:user_id", ctrl.GetPublicProfile)
}

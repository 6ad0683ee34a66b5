package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "talenthub_backend/internals/features/users/user/route"
)

func UserRoutes(public, user fiber.Router, db *gorm.DB) {
	userRoute.ProfilePublicRoutes(public, db)
	userRoute.ProfileUserRoutes(user, db)
}

package communityRoutes

import (
	communityController "wellnest/controllers/community"
	"wellnest/middleware"
	communityValidator "wellnest/validators/community"

	"github.com/gofiber/fiber/v2"
)

// SetupCommunityRoutes sets up community group routes
func SetupCommunityRoutes(app *fiber.App) {
	communityGroup := app.Group("/community")

	communityGroup.Get("/groups", middleware.JWTMiddleware, communityController.GetMyGroups)
	communityGroup.Get("/group/:id", middleware.JWTMiddleware, communityValidator.GetGroupDetail(), communityController.GetGroupDetails)
}

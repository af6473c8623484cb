package userRoutes

import (
	"wellnest/controllers/userControllers"
	"wellnest/middleware"
	"wellnest/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up user profile routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userControllers.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, userValidator.UpdateProfile(), userControllers.UpdateProfile)
}

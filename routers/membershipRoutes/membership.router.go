package membershipRoutes

import (
	membershipController "wellnest/controllers/membership"
	"wellnest/middleware"
	membershipValidator "wellnest/validators/membership"

	"github.com/gofiber/fiber/v2"
)

// SetupMembershipRoutes sets up self-service and admin membership routes
func SetupMembershipRoutes(app *fiber.App) {
	userGroup := app.Group("/membership")

	userGroup.Post("/purchase", middleware.JWTMiddleware, membershipValidator.PurchaseMembership(), membershipController.PurchaseMembership)
	userGroup.Get("/me", middleware.JWTMiddleware, membershipController.GetMyMembership)

	adminGroup := app.Group("/admin/membership")

	adminGroup.Put("/:userId", middleware.JWTMiddleware, middleware.RequireAdmin, membershipValidator.AdminUpdateMembership(), membershipController.AdminUpdateMembership)
	adminGroup.Get("/transactions", middleware.JWTMiddleware, middleware.RequireAdmin, membershipController.AdminListTransactions)
}

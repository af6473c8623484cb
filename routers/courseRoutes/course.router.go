package courseRoutes

import (
	courseController "wellnest/controllers/course"
	"wellnest/middleware"
	courseValidator "wellnest/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	userGroup := app.Group("/course")

	// Course listing and details (public published courses)
	userGroup.Get("/list", middleware.JWTMiddleware, courseController.GetAllCourses)
	userGroup.Get("/:id", middleware.JWTMiddleware, courseValidator.GetCourseDetail(), courseController.GetCourseDetails)

	// Course visit tracking (for enrolled users)
	userGroup.Post("/:id/visit", middleware.JWTMiddleware, courseValidator.GetCourseDetail(), courseController.TouchEnrollment)

	// Content completion
	userGroup.Post("/:course_id/content/:content_id/complete", middleware.JWTMiddleware, courseValidator.MarkContentComplete(), courseController.MarkContentComplete)

	// User enrollments
	userEnrollGroup := app.Group("/user")
	userEnrollGroup.Get("/enrollments", middleware.JWTMiddleware, courseController.GetEnrollments)
}

package courseController

import (
	"encoding/json"
	"time"

	"wellnest/database"
	"wellnest/middleware"
	"wellnest/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// GetEnrollments lists the caller's enrollments with pagination
func GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	offset := (page - 1) * limit

	var enrollments []models.Enrollment
	db := database.Database.Db.Model(&models.Enrollment{}).Where("user_id = ? AND is_deleted = ?", userID, false).Preload("Course")

	var total int64
	db.Count(&total)

	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	response := map[string]interface{}{
		"enrollments": enrollments,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", response)
}

// TouchEnrollment records a course visit: bumps the last-access timestamp
// and moves the enrollment out of the ENROLLED state on first access.
func TouchEnrollment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	updates := map[string]interface{}{"last_accessed_at": time.Now()}
	if enrollment.Status == models.EnrollmentStatusEnrolled {
		updates["status"] = models.EnrollmentStatusInProgress
	}

	if err := db.Model(&enrollment).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment updated!", enrollment)
}

// MarkContentComplete records a finished content unit and recomputes
// enrollment progress
func MarkContentComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	contentID := c.Locals("contentID").(int)

	db := database.Database.Db

	var content models.CourseContent
	if err := db.Where("id = ? AND course_id = ? AND is_deleted = ?", contentID, courseID, false).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found in this course!", nil)
	}

	var enrollment models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
	}

	var completed []uint
	if len(enrollment.CompletedContentIDs) > 0 {
		if err := json.Unmarshal(enrollment.CompletedContentIDs, &completed); err != nil {
			completed = nil
		}
	}

	for _, id := range completed {
		if id == uint(contentID) {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Content already completed!", enrollment)
		}
	}
	completed = append(completed, uint(contentID))

	raw, err := json.Marshal(completed)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	var totalContents int64
	db.Model(&models.CourseContent{}).Where("course_id = ? AND is_deleted = ?", courseID, false).Count(&totalContents)

	updates := map[string]interface{}{
		"completed_content_ids": datatypes.JSON(raw),
		"last_accessed_at":      time.Now(),
	}

	if totalContents > 0 {
		progress := float64(len(completed)) / float64(totalContents) * 100
		if progress > 100 {
			progress = 100
		}
		updates["progress"] = progress
		if progress >= 100 {
			updates["status"] = models.EnrollmentStatusCompleted
			updates["completed_at"] = time.Now()
		} else {
			updates["status"] = models.EnrollmentStatusInProgress
		}
	}

	if err := db.Model(&enrollment).Updates(updates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	db.Where("id = ?", enrollment.ID).First(&enrollment)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content marked complete!", enrollment)
}

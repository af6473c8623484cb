package membership

import (
	"errors"
	"log"

	"wellnest/models"

	"gorm.io/gorm"
)

// ProvisionEnrollment idempotently enrolls the user in the course. It
// returns created=false when the user is already enrolled; that is a normal
// outcome, not an error. Course.EnrollmentCount is incremented only by the
// call whose insert was accepted, so concurrent duplicates produce exactly
// one increment.
func (s *Service) ProvisionEnrollment(userID uint, course *models.Course) (bool, error) {
	enrollment := models.Enrollment{
		UserID:   userID,
		CourseID: course.ID,
		Status:   models.EnrollmentStatusEnrolled,
	}

	// Seed the current-item pointer with the course's first content unit.
	var first models.CourseContent
	err := s.db.Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Order("position ASC").First(&first).Error
	switch {
	case err == nil:
		enrollment.CurrentContentID = &first.ID
	case errors.Is(err, gorm.ErrRecordNotFound):
		// course has no content yet; pointer stays null
	default:
		return false, err
	}

	if err := s.db.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the uniqueness race or retried: already enrolled.
			return false, nil
		}
		return false, err
	}

	// Counter is best-effort (no cross-row transaction); the enrollment row
	// itself is the source of truth and RecountCourseEnrollment can repair.
	if err := s.db.Model(&models.Course{}).Where("id = ?", course.ID).
		UpdateColumn("enrollment_count", gorm.Expr("enrollment_count + ?", 1)).Error; err != nil {
		log.Printf("[MEMBERSHIP] enrollment counter increment failed for course %d: %v", course.ID, err)
	}

	return true, nil
}

// RecountCourseEnrollment recomputes the denormalized enrollment counter
// from the enrollment rows, for callers that need a strict count.
func (s *Service) RecountCourseEnrollment(courseID uint) error {
	var count int64
	if err := s.db.Model(&models.Enrollment{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Count(&count).Error; err != nil {
		return err
	}
	return s.db.Model(&models.Course{}).Where("id = ?", courseID).
		UpdateColumn("enrollment_count", count).Error
}

package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Enrollment status values
const (
	EnrollmentStatusEnrolled   = "ENROLLED"
	EnrollmentStatusInProgress = "IN_PROGRESS"
	EnrollmentStatusCompleted  = "COMPLETED"
)

// Enrollment tracks a user's enrollment in a course with progress.
// The unique index on (user_id, course_id) is the arbiter of concurrent
// enrollment attempts: only the insert that wins the race may touch
// Course.EnrollmentCount.
type Enrollment struct {
	gorm.Model
	UserID              uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_user_course"`
	CourseID            uint           `json:"course_id" gorm:"not null;uniqueIndex:idx_user_course"`
	Status              string         `json:"status" gorm:"default:'ENROLLED'"`
	Progress            float64        `json:"progress" gorm:"default:0"` // completion percentage (0-100)
	CompletedAt         *time.Time     `json:"completed_at"`
	CurrentContentID    *uint          `json:"current_content_id"` // seeded with the course's first content unit
	CompletedContentIDs datatypes.JSON `json:"completed_content_ids"`
	LastAccessedAt      *time.Time     `json:"last_accessed_at"`
	IsDeleted           bool           `gorm:"default:false"`

	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Course Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

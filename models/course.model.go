package models

import "gorm.io/gorm"

// Course status values
const (
	CourseStatusDraft    = "DRAFT"
	CourseStatusActive   = "ACTIVE"
	CourseStatusInactive = "INACTIVE"
)

// Content type values
const (
	ContentTypeVideo = "VIDEO"
	ContentTypePDF   = "PDF"
)

// Course represents a learning course
type Course struct {
	gorm.Model
	Title           string `json:"title"`
	Description     string `json:"description"`
	Author          string `json:"author"`
	Duration        int64  `json:"duration" gorm:"default:0"`     // duration in hours
	Status          string `json:"status" gorm:"default:'DRAFT'"` // DRAFT, ACTIVE, INACTIVE
	ThumbnailURL    string `json:"thumbnail_url"`
	IsPublished     bool   `json:"is_published" gorm:"default:false"`
	EnrollmentCount uint   `json:"enrollment_count" gorm:"default:0"` // denormalized, incremented on first enrollment only
	IsDeleted       bool   `gorm:"default:false"`
}

// CourseContent is a single content unit (video or PDF) inside a course
type CourseContent struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	ContentType string `json:"content_type" gorm:"default:'VIDEO'"` // VIDEO, PDF
	URL         string `json:"url"`
	Position    int    `json:"position" gorm:"default:0"` // ordering inside the course
	IsDeleted   bool   `gorm:"default:false"`
}

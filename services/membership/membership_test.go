package membership

import (
	"path/filepath"
	"testing"

	"wellnest/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "wellnest.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.CourseContent{},
		&models.Enrollment{},
		&models.Group{},
		&models.GroupMember{},
		&models.MembershipTransaction{},
	))

	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := models.User{
		Name:     "Test User",
		Email:    email,
		Password: "hashed",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createCourse(t *testing.T, db *gorm.DB, title string, published bool) *models.Course {
	t.Helper()

	course := models.Course{
		Title:       title,
		Status:      models.CourseStatusActive,
		IsPublished: published,
	}
	if !published {
		course.Status = models.CourseStatusDraft
	}
	require.NoError(t, db.Create(&course).Error)
	return &course
}

func createContent(t *testing.T, db *gorm.DB, courseID uint, title string, position int) *models.CourseContent {
	t.Helper()

	content := models.CourseContent{
		CourseID: courseID,
		Title:    title,
		Position: position,
	}
	require.NoError(t, db.Create(&content).Error)
	return &content
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(model).Where(query, args...).Count(&count).Error)
	return count
}

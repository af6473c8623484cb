package membership

import (
	"sync"
	"testing"

	"wellnest/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvisionEnrollmentCreates(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db, DefaultCatalog)
	user := createUser(t, db, "learner@example.com")
	course := createCourse(t, db, "Physical Wellness", true)
	intro := createContent(t, db, course.ID, "Intro", 1)
	createContent(t, db, course.ID, "Week 1", 2)

	created, err := svc.ProvisionEnrollment(user.ID, course)
	require.NoError(t, err)
	assert.True(t, created)

	var enrollment models.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&enrollment).Error)
	assert.Equal(t, models.EnrollmentStatusEnrolled, enrollment.Status)
	assert.Equal(t, float64(0), enrollment.Progress)
	assert.Nil(t, enrollment.CompletedAt)
	require.NotNil(t, enrollment.CurrentContentID)
	assert.Equal(t, intro.ID, *enrollment.CurrentContentID)

	var refreshed models.Course
	require.NoError(t, db.First(&refreshed, course.ID).Error)
	assert.Equal(t, uint(1), refreshed.EnrollmentCount)
}

func TestProvisionEnrollmentWithoutContent(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db, DefaultCatalog)
	user := createUser(t, db, "learner@example.com")
	course := createCourse(t, db, "Physical Wellness", true)

	created, err := svc.ProvisionEnrollment(user.ID, course)
	require.NoError(t, err)
	assert.True(t, created)

	var enrollment models.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&enrollment).Error)
	assert.Nil(t, enrollment.CurrentContentID)
}

func TestProvisionEnrollmentIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db, DefaultCatalog)
	user := createUser(t, db, "learner@example.com")
	course := createCourse(t, db, "Physical Wellness", true)

	created, err := svc.ProvisionEnrollment(user.ID, course)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.ProvisionEnrollment(user.ID, course)
	require.NoError(t, err)
	assert.False(t, created)

	assert.Equal(t, int64(1), countRows(t, db, &models.Enrollment{}, "user_id = ? AND course_id = ?", user.ID, course.ID))

	var refreshed models.Course
	require.NoError(t, db.First(&refreshed, course.ID).Error)
	assert.Equal(t, uint(1), refreshed.EnrollmentCount, "duplicate attempt must not touch the counter")
}

func TestProvisionEnrollmentConcurrentDuplicates(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db, DefaultCatalog)
	user := createUser(t, db, "learner@example.com")
	course := createCourse(t, db, "Physical Wellness", true)

	const attempts = 8
	results := make([]bool, attempts)
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.ProvisionEnrollment(user.ID, course)
		}(i)
	}
	wg.Wait()

	winners := 0
	for i := 0; i < attempts; i++ {
		require.NoError(t, errs[i])
		if results[i] {
			winners++
		}
	}
	assert.Equal(t, 1, winners, "exactly one concurrent attempt may win the insert")

	assert.Equal(t, int64(1), countRows(t, db, &models.Enrollment{}, "user_id = ? AND course_id = ?", user.ID, course.ID))

	var refreshed models.Course
	require.NoError(t, db.First(&refreshed, course.ID).Error)
	assert.Equal(t, uint(1), refreshed.EnrollmentCount)
}

func TestRecountCourseEnrollment(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db, DefaultCatalog)
	course := createCourse(t, db, "Physical Wellness", true)

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		user := createUser(t, db, email)
		_, err := svc.ProvisionEnrollment(user.ID, course)
		require.NoError(t, err)
	}

	// Simulate counter drift.
	require.NoError(t, db.Model(&models.Course{}).Where("id = ?", course.ID).
		UpdateColumn("enrollment_count", 99).Error)

	require.NoError(t, svc.RecountCourseEnrollment(course.ID))

	var refreshed models.Course
	require.NoError(t, db.First(&refreshed, course.ID).Error)
	assert.Equal(t, uint(3), refreshed.EnrollmentCount)
}

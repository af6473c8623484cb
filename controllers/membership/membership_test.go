package membershipController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"wellnest/config"
	"wellnest/database"
	"wellnest/middleware"
	"wellnest/models"
	membershipValidator "wellnest/validators/membership"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.LoadConfig()

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

	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Post("/membership/purchase", middleware.JWTMiddleware, membershipValidator.PurchaseMembership(), PurchaseMembership)
	app.Get("/membership/me", middleware.JWTMiddleware, GetMyMembership)
	app.Put("/admin/membership/:userId", middleware.JWTMiddleware, middleware.RequireAdmin, membershipValidator.AdminUpdateMembership(), AdminUpdateMembership)

	return app
}

func seedUser(t *testing.T, email, role string) (*models.User, string) {
	t.Helper()

	user := models.User{Name: "Test User", Email: email, Role: role, Password: "hashed"}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return &user, token
}

func seedPublishedCourse(t *testing.T, title string) *models.Course {
	t.Helper()

	course := models.Course{Title: title, Status: models.CourseStatusActive, IsPublished: true}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	return &course
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &parsed))

	return resp, parsed
}

func TestPurchaseMembershipEndToEnd(t *testing.T) {
	app := setupTestApp(t)
	user, token := seedUser(t, "learner@example.com", "USER")
	course := seedPublishedCourse(t, "Physical Wellness")

	resp, body := doJSON(t, app, "POST", "/membership/purchase", token, map[string]interface{}{
		"plan":         "bronze",
		"paymentProof": "pay_abc123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["status"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, []interface{}{"Physical Wellness"}, data["enrolledCourses"])

	db := database.Database.Db

	var refreshedUser models.User
	require.NoError(t, db.First(&refreshedUser, user.ID).Error)
	assert.Equal(t, "bronze", refreshedUser.SubscriptionPlan)
	assert.Equal(t, models.SubscriptionStatusActive, refreshedUser.SubscriptionStatus)
	require.NotNil(t, refreshedUser.MembershipExpiresAt)

	var refreshedCourse models.Course
	require.NoError(t, db.First(&refreshedCourse, course.ID).Error)
	assert.Equal(t, uint(1), refreshedCourse.EnrollmentCount)

	var txn models.MembershipTransaction
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&txn).Error)
	assert.Equal(t, "pay_abc123", txn.PaymentRef)
	assert.Equal(t, "bronze", txn.Plan)
}

func TestPurchaseMembershipIsIdempotentOverHTTP(t *testing.T) {
	app := setupTestApp(t)
	user, token := seedUser(t, "learner@example.com", "USER")
	course := seedPublishedCourse(t, "Physical Wellness")

	for i := 0; i < 2; i++ {
		resp, _ := doJSON(t, app, "POST", "/membership/purchase", token, map[string]interface{}{
			"plan":         "bronze",
			"paymentProof": fmt.Sprintf("pay_retry_%d", i),
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	db := database.Database.Db

	var enrollments int64
	db.Model(&models.Enrollment{}).Where("user_id = ?", user.ID).Count(&enrollments)
	assert.Equal(t, int64(1), enrollments)

	var refreshedCourse models.Course
	require.NoError(t, db.First(&refreshedCourse, course.ID).Error)
	assert.Equal(t, uint(1), refreshedCourse.EnrollmentCount)

	var group models.Group
	require.NoError(t, db.Where("course_id = ?", course.ID).First(&group).Error)
	assert.Equal(t, uint(1), group.MemberCount)
}

func TestPurchaseMembershipInvalidPlan(t *testing.T) {
	app := setupTestApp(t)
	_, token := seedUser(t, "learner@example.com", "USER")
	seedPublishedCourse(t, "Physical Wellness")

	resp, body := doJSON(t, app, "POST", "/membership/purchase", token, map[string]interface{}{
		"plan":         "platinum",
		"paymentProof": "pay_abc123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["status"])
}

func TestPurchaseMembershipRequiresAuth(t *testing.T) {
	app := setupTestApp(t)

	resp, _ := doJSON(t, app, "POST", "/membership/purchase", "", map[string]interface{}{
		"plan":         "bronze",
		"paymentProof": "pay_abc123",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminUpdateMembershipGating(t *testing.T) {
	app := setupTestApp(t)
	target, _ := seedUser(t, "learner@example.com", "USER")
	_, adminToken := seedUser(t, "admin@example.com", "ADMIN")
	seedPublishedCourse(t, "Physical Wellness")

	db := database.Database.Db

	// autoEnroll=false: plan fields change, nothing is provisioned.
	resp, _ := doJSON(t, app, "PUT", fmt.Sprintf("/admin/membership/%d", target.ID), adminToken, map[string]interface{}{
		"plan":       "bronze",
		"autoEnroll": false,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var refreshed models.User
	require.NoError(t, db.First(&refreshed, target.ID).Error)
	assert.Equal(t, "bronze", refreshed.SubscriptionPlan)

	var enrollments, members int64
	db.Model(&models.Enrollment{}).Where("user_id = ?", target.ID).Count(&enrollments)
	db.Model(&models.GroupMember{}).Where("user_id = ?", target.ID).Count(&members)
	assert.Equal(t, int64(0), enrollments)
	assert.Equal(t, int64(0), members)

	// autoEnroll=true: exactly one enrollment and one membership appear.
	resp, _ = doJSON(t, app, "PUT", fmt.Sprintf("/admin/membership/%d", target.ID), adminToken, map[string]interface{}{
		"plan":       "bronze",
		"autoEnroll": true,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	db.Model(&models.Enrollment{}).Where("user_id = ?", target.ID).Count(&enrollments)
	db.Model(&models.GroupMember{}).Where("user_id = ?", target.ID).Count(&members)
	assert.Equal(t, int64(1), enrollments)
	assert.Equal(t, int64(1), members)
}

func TestAdminUpdateMembershipForbiddenForUsers(t *testing.T) {
	app := setupTestApp(t)
	target, _ := seedUser(t, "learner@example.com", "USER")
	_, userToken := seedUser(t, "other@example.com", "USER")

	resp, _ := doJSON(t, app, "PUT", fmt.Sprintf("/admin/membership/%d", target.ID), userToken, map[string]interface{}{
		"plan":       "bronze",
		"autoEnroll": true,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

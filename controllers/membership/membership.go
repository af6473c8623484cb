package membershipController

import (
	"errors"
	"time"

	"wellnest/config"
	"wellnest/database"
	"wellnest/middleware"
	"wellnest/models"
	"wellnest/services/membership"
	"wellnest/utils"

	"github.com/gofiber/fiber/v2"
)

// PurchaseMembership is the self-service plan change. The payment proof has
// already been accepted upstream; it is recorded, not verified.
func PurchaseMembership(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	reqData, ok := c.Locals("validatedPurchase").(*struct {
		Plan         string `json:"plan" validate:"required"`
		PaymentProof string `json:"paymentProof" validate:"required"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	svc := membership.NewService(db, membership.DefaultCatalog)

	result, err := svc.Provision(userId, reqData.Plan)
	if err != nil {
		switch {
		case errors.Is(err, membership.ErrInvalidPlan):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid membership plan!", nil)
		case errors.Is(err, membership.ErrNoPublishedCourses):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No published courses available for this plan!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to purchase membership!", nil)
		}
	}

	// Membership validity window; the scheduler expires it later.
	expiresAt := time.Now().AddDate(0, config.AppConfig.MembershipMonths, 0)
	db.Model(&models.User{}).Where("id = ?", userId).Updates(map[string]interface{}{
		"membership_expires_at": expiresAt,
		"reminder_sent":         false,
	})

	utils.RecordMembershipPayment(db, &user, reqData.Plan, reqData.PaymentProof)

	go utils.SendMembershipWelcomeEmail(user.Email, user.Name, reqData.Plan, result.EnrolledCourses)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Membership activated!", result)
}

// GetMyMembership returns the caller's current plan and provisioning state.
func GetMyMembership(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	var enrollmentCount int64
	db.Model(&models.Enrollment{}).Where("user_id = ? AND is_deleted = false", userId).Count(&enrollmentCount)

	var groupCount int64
	db.Model(&models.GroupMember{}).Where("user_id = ? AND is_deleted = false", userId).Count(&groupCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Membership fetched!", fiber.Map{
		"plan":                user.SubscriptionPlan,
		"status":              user.SubscriptionStatus,
		"membershipExpiresAt": user.MembershipExpiresAt,
		"enrollments":         enrollmentCount,
		"communities":         groupCount,
	})
}

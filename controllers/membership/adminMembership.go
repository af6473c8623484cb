package membershipController

import (
	"errors"

	"wellnest/database"
	"wellnest/middleware"
	"wellnest/models"
	"wellnest/services/membership"

	"github.com/gofiber/fiber/v2"
)

// AdminUpdateMembership changes a target user's plan. Provisioning runs only
// when autoEnroll is set; otherwise only the plan fields are updated.
func AdminUpdateMembership(c *fiber.Ctx) error {
	targetUserId, ok := c.Locals("targetUserId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	reqData, ok := c.Locals("validatedAdminUpdate").(*struct {
		Plan       string `json:"plan" validate:"required"`
		AutoEnroll *bool  `json:"autoEnroll" validate:"required"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var target models.User
	if err := db.Where("id = ? AND is_deleted = false", targetUserId).First(&target).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	svc := membership.NewService(db, membership.DefaultCatalog)

	if !*reqData.AutoEnroll {
		if err := svc.UpdatePlan(targetUserId, reqData.Plan); err != nil {
			if errors.Is(err, membership.ErrInvalidPlan) {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid membership plan!", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update membership!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Membership plan updated!", &membership.Result{Plan: reqData.Plan})
	}

	result, err := svc.Provision(targetUserId, reqData.Plan)
	if err != nil {
		switch {
		case errors.Is(err, membership.ErrInvalidPlan):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid membership plan!", nil)
		case errors.Is(err, membership.ErrNoPublishedCourses):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No published courses available for this plan!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update membership!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Membership updated and provisioned!", result)
}

// AdminListTransactions lists membership purchases for the admin dashboard.
func AdminListTransactions(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	offset := (page - 1) * limit

	db := database.Database.Db

	query := db.Model(&models.MembershipTransaction{}).Where("is_deleted = false")

	var total int64
	query.Count(&total)

	var transactions []models.MembershipTransaction
	if err := query.
		Offset(offset).Limit(limit).
		Order("transaction_date DESC").
		Find(&transactions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch transactions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transactions fetched!", fiber.Map{
		"transactions": transactions,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

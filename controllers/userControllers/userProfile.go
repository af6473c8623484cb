package userControllers

import (
	"wellnest/database"
	"wellnest/middleware"
	"wellnest/models"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the caller's profile
func GetProfile(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched!", user)
}

// UpdateProfile updates mutable profile fields
func UpdateProfile(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	reqData, ok := c.Locals("validatedProfileUpdate").(*struct {
		Name         *string `json:"name"`
		Mobile       *string `json:"mobile"`
		ProfileImage *string `json:"profileImage"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Name != nil {
		updates["name"] = *reqData.Name
	}
	if reqData.Mobile != nil {
		updates["mobile"] = *reqData.Mobile
	}
	if reqData.ProfileImage != nil {
		updates["profile_image"] = *reqData.ProfileImage
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(&user).Updates(updates).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
		}
	}

	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated!", user)
}

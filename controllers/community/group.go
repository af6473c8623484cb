package communityController

import (
	"wellnest/database"
	"wellnest/middleware"
	"wellnest/models"

	"github.com/gofiber/fiber/v2"
)

// GetMyGroups lists the community groups the caller belongs to
func GetMyGroups(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	db := database.Database.Db

	var memberships []models.GroupMember
	if err := db.Where("user_id = ? AND is_active = ? AND is_deleted = ?", userId, true, false).
		Preload("Group").Find(&memberships).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch groups!", nil)
	}

	type GroupWithRole struct {
		models.Group
		Role string `json:"role"`
	}

	var response []GroupWithRole
	for _, m := range memberships {
		response = append(response, GroupWithRole{Group: m.Group, Role: m.Role})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Groups fetched!", response)
}

// GetGroupDetails returns one group with its member list. Only members can
// view a group.
func GetGroupDetails(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	groupID := c.Locals("groupID").(int)

	db := database.Database.Db

	var group models.Group
	if err := db.Where("id = ? AND is_deleted = false", groupID).First(&group).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Group not found!", nil)
	}

	if err := db.Where("group_id = ? AND user_id = ? AND is_deleted = false", groupID, userId).
		First(&models.GroupMember{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not a member of this group!", nil)
	}

	var members []models.GroupMember
	if err := db.Where("group_id = ? AND is_deleted = false", groupID).Find(&members).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch members!", nil)
	}

	type MemberWithUser struct {
		models.GroupMember
		UserName string `json:"userName"`
	}

	var memberList []MemberWithUser
	for _, m := range members {
		var memberUser models.User
		db.Select("name").Where("id = ?", m.UserID).First(&memberUser)
		memberList = append(memberList, MemberWithUser{GroupMember: m, UserName: memberUser.Name})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Group fetched!", fiber.Map{
		"group":   group,
		"members": memberList,
	})
}

package communityValidator

import (
	"strconv"
	"strings"

	"wellnest/middleware"

	"github.com/gofiber/fiber/v2"
)

func GetGroupDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		groupIDStr := strings.TrimSpace(c.Params("id"))
		if groupIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Group ID is required!", nil)
		}

		groupID, err := strconv.Atoi(groupIDStr)
		if err != nil || groupID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Group ID!", nil)
		}

		c.Locals("groupID", groupID)
		return c.Next()
	}
}

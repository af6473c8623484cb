package membershipValidator

import (
	"strconv"
	"strings"

	"wellnest/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func PurchaseMembership() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Plan         string `json:"plan" validate:"required"`
			PaymentProof string `json:"paymentProof" validate:"required"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = fieldErr.Field() + " is required!"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Plan = strings.ToLower(strings.TrimSpace(reqData.Plan))

		c.Locals("validatedPurchase", reqData)
		return c.Next()
	}
}

func AdminUpdateMembership() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDStr := strings.TrimSpace(c.Params("userId"))
		if userIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID is required!", nil)
		}

		userID, err := strconv.Atoi(userIDStr)
		if err != nil || userID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}

		reqData := new(struct {
			Plan       string `json:"plan" validate:"required"`
			AutoEnroll *bool  `json:"autoEnroll" validate:"required"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = fieldErr.Field() + " is required!"
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Plan = strings.ToLower(strings.TrimSpace(reqData.Plan))

		c.Locals("targetUserId", uint(userID))
		c.Locals("validatedAdminUpdate", reqData)
		return c.Next()
	}
}

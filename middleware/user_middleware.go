package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "hrms-backend/lib/utils/auth-utils"
	"hrms-backend/models"
	apimodels "hrms-backend/models/api"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if stringSub, ok := sub.(string); ok {
			return stringSub
		}
	}
	return ""
}

func GetEmployeeID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if employee, exist := claims["employee"]; exist {
		if stringID, ok := employee.(string); ok {
			return stringID
		}
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

func AdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserRole(ctx) != models.AdminRole {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not allowed"))
		}
		return ctx.Next()
	}
}

package middleware

import (
	authutils "erp-tools-backend/lib/utils/auth-utils"

	"github.com/gofiber/fiber/v2"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if userID, ok := sub.(string); ok {
			return userID
		}
	}
	return ""
}

func IsSuperuser(ctx *fiber.Ctx) bool {
	claims := authutils.GetClaims(ctx)
	if value, exist := claims["superuser"]; exist {
		if superuser, ok := value.(bool); ok {
			return superuser
		}
	}
	return false
}

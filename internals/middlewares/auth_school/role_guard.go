package middleware

import (
	"github.com/gofiber/fiber/v2"

	userModel "sekolahku_backend/internals/features/school/users/model"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// RequireStaffRole keeps student tokens out of the admin surface. Runs after
// AuthJWT, so the role local is already hydrated; a token without a role
// claim is rejected the same way.
func RequireStaffRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch helperAuth.GetRole(c) {
		case userModel.RoleHeadmaster, userModel.RoleCoordinator, userModel.RoleTeacher:
			return c.Next()
		default:
			return fiber.NewError(fiber.StatusForbidden, "insufficient role")
		}
	}
}

// file: internals/helpers/auth/get_school_id_from_token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ============================================
   Locals Keys (middleware sets these)
   ============================================ */

const (
	LocUserID   = "user_id"   // string UUID
	LocSchoolID = "school_id" // string UUID
	LocRole     = "role"      // string
)

func uuidLocal(c *fiber.Ctx, key string) (uuid.UUID, bool) {
	switch v := c.Locals(key).(type) {
	case uuid.UUID:
		if v != uuid.Nil {
			return v, true
		}
	case string:
		if id, err := uuid.Parse(strings.TrimSpace(v)); err == nil && id != uuid.Nil {
			return id, true
		}
	}
	return uuid.Nil, false
}

// GetSchoolIDFromToken returns the tenant the token is scoped to. Every
// school-owned query must filter on this id, never on a bare record id.
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	if id, ok := uuidLocal(c, LocSchoolID); ok {
		return id, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "school scope missing from token")
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	if id, ok := uuidLocal(c, LocUserID); ok {
		return id, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user id missing from token")
}

// GetRole returns the token role, empty when absent.
func GetRole(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRole).(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

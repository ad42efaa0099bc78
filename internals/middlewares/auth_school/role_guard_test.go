package middleware_test

import (
	"net/http/httptest"
	"testing"

	helperAuth "sekolahku_backend/internals/helpers/auth"
	middleware "sekolahku_backend/internals/middlewares/auth_school"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// guardApp mounts the guard behind a handler that plants the given role the
// way AuthJWT would.
func guardApp(role string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals(helperAuth.LocRole, role)
		}
		return c.Next()
	})
	app.Use(middleware.RequireStaffRole())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app
}

func TestRequireStaffRole(t *testing.T) {
	cases := []struct {
		role string
		want int
	}{
		{"headmaster", fiber.StatusOK},
		{"coordinator", fiber.StatusOK},
		{"teacher", fiber.StatusOK},
		{"student", fiber.StatusForbidden},
		{"", fiber.StatusForbidden},
	}

	for _, tc := range cases {
		resp, err := guardApp(tc.role).Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equalf(t, tc.want, resp.StatusCode, "role %q", tc.role)
	}
}

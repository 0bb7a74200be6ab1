package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoleTestApp(role string, handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/guarded", func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("userRole", role)
		}
		return c.Next()
	}, handler, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestOnlyRolesAllowsMatchingRole(t *testing.T) {
	app := newRoleTestApp("club", OnlyRoles("clubs only", "club"))

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestOnlyRolesRejectsOtherRole(t *testing.T) {
	app := newRoleTestApp("student", OnlyRoles("clubs only", "club"))

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestOnlyRolesMissingRoleIsUnauthorized(t *testing.T) {
	app := newRoleTestApp("", OnlyRoles("clubs only", "club"))

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestOnlyRolesMultipleRoles(t *testing.T) {
	app := newRoleTestApp("admin", OnlyRoles("staff only", "club", "admin"))

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

package auth

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talenthub_backend/internals/constants"
	helper "talenthub_backend/internals/helpers"
)

func newGatedApp(role string, allowed ...string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("userRole", role)
		}
		return c.Next()
	})
	app.Get("/gated", OnlyRoles("", allowed...), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestOnlyRoles_AllowsMatchingRole(t *testing.T) {
	app := newGatedApp(constants.RoleCandidate, constants.RoleCandidate)

	resp, err := app.Test(httptest.NewRequest("GET", "/gated", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestOnlyRoles_RejectsWrongRole(t *testing.T) {
	app := newGatedApp(constants.RoleRecruiter, constants.RoleCandidate)

	resp, err := app.Test(httptest.NewRequest("GET", "/gated", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// gate denials carry the same envelope as controller errors
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out helper.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.False(t, out.Success)
	assert.Equal(t, "FORBIDDEN", out.ErrorCode)
}

func TestOnlyRoles_MissingRoleIsUnauthorized(t *testing.T) {
	app := newGatedApp("", constants.RoleCandidate)

	resp, err := app.Test(httptest.NewRequest("GET", "/gated", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestOnlyRoles_AdminNotImplicitlyAllowed(t *testing.T) {
	// role gates are exact; admin passes only where listed
	app := newGatedApp(constants.RoleAdmin, constants.RoleRecruiter)

	resp, err := app.Test(httptest.NewRequest("GET", "/gated", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

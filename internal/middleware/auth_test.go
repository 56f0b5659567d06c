// auth_test.go
//
// Jobby, a job-board service where admins post jobs and users apply
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of jobby.
// jobby is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// jobby is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with jobby.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/localnerve/jobby/internal/auth"
	"github.com/localnerve/jobby/internal/logging"
	"github.com/localnerve/jobby/internal/middleware"
	"github.com/localnerve/jobby/internal/testutil"
	"github.com/localnerve/jobby/internal/utils"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedApp(guard fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler})
	app.Get("/guarded", guard, func(c *fiber.Ctx) error {
		p, ok := auth.PrincipalFrom(c.UserContext())
		if !ok {
			return c.SendStatus(fiber.StatusTeapot)
		}
		return c.JSON(p)
	})
	return app
}

func get(t *testing.T, app *fiber.App, authorization string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/guarded", nil)
	if authorization != "" {
		req.Header.Set(fiber.HeaderAuthorization, authorization)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

type envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Ok      bool   `json:"ok"`
	Type    string `json:"type"`
	URL     string `json:"url"`
}

func TestAuthAdmin(t *testing.T) {
	tokens := testutil.NewTokens(t)
	app := newGuardedApp(middleware.AuthAdmin(tokens, logging.Discard()))

	adminToken, err := tokens.IssueAdmin("a1")
	require.NoError(t, err)
	userToken, err := tokens.IssueUser("u1")
	require.NoError(t, err)
	// Admin secret, user role
	forged, err := tokens.Issue("u1", auth.RoleUser, auth.DomainAdmin)
	require.NoError(t, err)

	tests := []struct {
		name          string
		authorization string
		status        int
		message       string
	}{
		{"missing header", "", http.StatusUnauthorized, "Invalid or missing token."},
		{"wrong scheme", "Token " + string(adminToken), http.StatusUnauthorized, "Invalid or missing token."},
		{"lowercase scheme", "bearer " + string(adminToken), http.StatusUnauthorized, "Invalid or missing token."},
		{"empty token", "Bearer ", http.StatusUnauthorized, "Invalid or missing token."},
		{"garbage", "Bearer abc.def.ghi", http.StatusUnauthorized, "Invalid or missing token."},
		{"user domain token", "Bearer " + string(userToken), http.StatusUnauthorized, "Invalid or missing token."},
		{"non-admin role", "Bearer " + forged, http.StatusForbidden, "Access denied. Admins only."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := get(t, app, tt.authorization)
			testutil.AssertStatus(t, resp, tt.status)

			var body envelope
			testutil.ParseJSON(t, resp, &body)
			assert.Equal(t, tt.status, body.Status)
			assert.Equal(t, tt.message, body.Message)
			assert.False(t, body.Ok)
			assert.Equal(t, "/guarded", body.URL)
		})
	}

	t.Run("admin token", func(t *testing.T) {
		resp := get(t, app, "Bearer "+string(adminToken))
		testutil.AssertStatus(t, resp, http.StatusOK)

		var p auth.Principal
		testutil.ParseJSON(t, resp, &p)
		assert.Equal(t, auth.Principal{ID: "a1", Role: auth.RoleAdmin}, p)
	})
}

func TestAuthUser(t *testing.T) {
	tokens := testutil.NewTokens(t)
	app := newGuardedApp(middleware.AuthUser(tokens, logging.Discard()))

	userToken, err := tokens.IssueUser("u1")
	require.NoError(t, err)
	adminToken, err := tokens.IssueAdmin("a1")
	require.NoError(t, err)

	resp := get(t, app, "")
	testutil.AssertStatus(t, resp, http.StatusUnauthorized)

	resp = get(t, app, "Bearer "+string(adminToken))
	testutil.AssertStatus(t, resp, http.StatusUnauthorized)

	resp = get(t, app, "Bearer "+string(userToken))
	testutil.AssertStatus(t, resp, http.StatusOK)

	var p auth.Principal
	testutil.ParseJSON(t, resp, &p)
	assert.Equal(t, "u1", p.ID)
}

func TestRejectionIsLogged(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	tokens := testutil.NewTokens(t)

	app := fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler})
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(log))
	app.Get("/guarded", middleware.AuthUser(tokens, log), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp := get(t, app, "Bearer nope")
	testutil.AssertStatus(t, resp, http.StatusUnauthorized)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "request rejected", entry.Message)
	assert.Equal(t, "invalid", entry.Data["reason"])
	assert.NotEmpty(t, entry.Data["requestId"])
	assert.Contains(t, entry.Data, logrus.ErrorKey)
}

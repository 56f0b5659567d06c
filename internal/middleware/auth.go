// auth.go
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

package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/jobby/internal/auth"
	"github.com/localnerve/jobby/internal/logging"
	"github.com/localnerve/jobby/internal/metrics"
	"github.com/localnerve/jobby/internal/types"
	"github.com/sirupsen/logrus"
)

const bearerPrefix = "Bearer "

// AuthAdmin admits requests carrying an admin-domain token whose role is admin
func AuthAdmin(tokens *auth.TokenService, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return reject(c, log, auth.DomainAdmin, "missing", unauthenticated())
		}

		principal, err := tokens.VerifyAdmin(auth.AdminToken(token))
		if err != nil {
			if errors.Is(err, auth.ErrRoleMismatch) {
				return reject(c, log, auth.DomainAdmin, "role",
					types.Fail(types.ErrForbidden, "Access denied. Admins only.", err))
			}
			return reject(c, log, auth.DomainAdmin, "invalid",
				types.Fail(types.ErrUnauthenticated, "Invalid or missing token.", err))
		}

		c.SetUserContext(auth.WithPrincipal(c.UserContext(), principal))
		return c.Next()
	}
}

// AuthUser admits requests carrying a user-domain token
func AuthUser(tokens *auth.TokenService, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return reject(c, log, auth.DomainUser, "missing", unauthenticated())
		}

		principal, err := tokens.VerifyUser(auth.UserToken(token))
		if err != nil {
			return reject(c, log, auth.DomainUser, "invalid",
				types.Fail(types.ErrUnauthenticated, "Invalid or missing token.", err))
		}

		c.SetUserContext(auth.WithPrincipal(c.UserContext(), principal))
		return c.Next()
	}
}

// bearerToken extracts the token after a case-sensitive "Bearer " prefix
func bearerToken(c *fiber.Ctx) (string, bool) {
	token, ok := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), bearerPrefix)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

func unauthenticated() *types.CustomError {
	return types.Fail(types.ErrUnauthenticated, "Invalid or missing token.", nil)
}

func reject(c *fiber.Ctx, log logrus.FieldLogger, guard auth.Domain, reason string, err *types.CustomError) error {
	metrics.AuthRejections.WithLabelValues(string(guard), reason).Inc()

	entry := logging.FromContext(c.UserContext(), log).WithFields(logrus.Fields{
		"guard":  guard,
		"reason": reason,
		"path":   c.Path(),
	})
	if cause := err.Cause(); cause != nil {
		entry = entry.WithError(cause)
	}
	entry.Warn("request rejected")

	return err
}

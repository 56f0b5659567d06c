// common.go
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

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/jobby/internal/auth"
	"github.com/localnerve/jobby/internal/models"
	"github.com/localnerve/jobby/internal/types"
	"github.com/localnerve/jobby/internal/utils"
)

// principalID returns the id bound by the authorization guard. A route
// mounted without a guard has none and is rejected.
func principalID(c *fiber.Ctx) (string, error) {
	principal, ok := auth.PrincipalFrom(c.UserContext())
	if !ok {
		return "", types.Fail(types.ErrUnauthenticated, "Invalid or missing token.", nil)
	}
	return principal.ID, nil
}

// parseBody decodes the JSON request body into out
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return types.Fail(types.ErrValidation, "Invalid request body", err)
	}
	return nil
}

// respondError renders a service failure with the standard envelope
func respondError(c *fiber.Ctx, err error) error {
	return utils.ErrorHandler(c, err)
}

// MessageResponse is a response carrying only a message
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is the signin response
type TokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// JobCreatedResponse is the response to a new job
type JobCreatedResponse struct {
	Message string `json:"message"`
	JobID   string `json:"jobId"`
}

// JobUpdatedResponse is the response to a job update
type JobUpdatedResponse struct {
	Message string      `json:"message"`
	Job     *models.Job `json:"job"`
}

// JobResponse wraps one job
type JobResponse struct {
	Job *models.Job `json:"job"`
}

// JobsResponse wraps a job list
type JobsResponse struct {
	Jobs []models.Job `json:"jobs"`
}

// AppliedResponse is the response to a new application
type AppliedResponse struct {
	Message       string `json:"message"`
	ApplicationID string `json:"applicationId"`
}

// ApplicationsResponse wraps an application list
type ApplicationsResponse struct {
	Applications []models.JobApplication `json:"applications"`
}

// user.go
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
	"github.com/localnerve/jobby/internal/models"
	"github.com/localnerve/jobby/internal/services"
	"github.com/localnerve/jobby/internal/utils"
)

// UserHandler handles the user routes
type UserHandler struct {
	Accounts     *services.AccountService
	Profiles     *services.ProfileService
	Jobs         *services.JobService
	Applications *services.ApplicationService
}

// Signup handles POST /user/signup
// @Summary Create a user account and its profile
// @Tags User
// @Accept json
// @Produce json
// @Param body body services.SignupInput true "Account"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /user/signup [post]
func (h *UserHandler) Signup(c *fiber.Ctx) error {
	var in services.SignupInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}

	if _, err := h.Accounts.SignupUser(c.UserContext(), in); err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, MessageResponse{Message: "You are signed up successfully"}, fiber.StatusOK)
}

// Signin handles POST /user/signin
// @Summary Sign in as a user
// @Tags User
// @Accept json
// @Produce json
// @Param body body services.SigninInput true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /user/signin [post]
func (h *UserHandler) Signin(c *fiber.Ctx) error {
	var in services.SigninInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}

	token, err := h.Accounts.SigninUser(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, TokenResponse{
		Message: "User Signed In Successfully",
		Token:   string(token),
	}, fiber.StatusOK)
}

// GetProfile handles GET /user/profile
// @Summary Get the signed-in user's profile
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Profile
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /user/profile [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := principalID(c)
	if err != nil {
		return respondError(c, err)
	}

	profile, err := h.Profiles.GetProfile(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, profile, fiber.StatusOK)
}

// UpdateProfile handles PUT /user/profile
// @Summary Update the signed-in user's profile
// @Description Only the supplied fields change.
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.ProfileFields true "Fields to change"
// @Success 200 {object} models.Profile
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /user/profile [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := principalID(c)
	if err != nil {
		return respondError(c, err)
	}

	var fields models.ProfileFields
	if err := parseBody(c, &fields); err != nil {
		return respondError(c, err)
	}

	profile, err := h.Profiles.UpdateProfile(c.UserContext(), userID, fields)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, profile, fiber.StatusOK)
}

// ListJobs handles GET /user/jobs
// @Summary List every job
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} JobsResponse
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /user/jobs [get]
func (h *UserHandler) ListJobs(c *fiber.Ctx) error {
	jobs, err := h.Jobs.ListAllJobs(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, JobsResponse{Jobs: jobs}, fiber.StatusOK)
}

// GetJob handles GET /user/jobs/:jobId
// @Summary Get a job and whether the signed-in user applied to it
// @Tags User
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Success 200 {object} services.JobView
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /user/jobs/{jobId} [get]
func (h *UserHandler) GetJob(c *fiber.Ctx) error {
	userID, err := principalID(c)
	if err != nil {
		return respondError(c, err)
	}

	view, err := h.Applications.GetJobForUser(c.UserContext(), userID, c.Params("jobId"))
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, view, fiber.StatusOK)
}

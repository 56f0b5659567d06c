// applications.go
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
	"github.com/localnerve/jobby/internal/services"
	"github.com/localnerve/jobby/internal/utils"
)

// ApplicationHandler handles the job application routes
type ApplicationHandler struct {
	Applications *services.ApplicationService
}

// Apply handles POST /jobApplication/apply
// @Summary Apply to a job
// @Description Stores a snapshot of the job. Applying again creates another application.
// @Tags JobApplication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ApplyInput true "Job to apply to"
// @Success 200 {object} AppliedResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /jobApplication/apply [post]
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	userID, err := principalID(c)
	if err != nil {
		return respondError(c, err)
	}

	var in services.ApplyInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	if err := services.Validate(in); err != nil {
		return respondError(c, err)
	}

	application, err := h.Applications.ApplyToJob(c.UserContext(), userID, in.JobID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, AppliedResponse{
		Message:       "Applied successfully",
		ApplicationID: application.ID,
	}, fiber.StatusOK)
}

// List handles GET /jobApplication/
// @Summary List the signed-in user's applications
// @Tags JobApplication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ApplicationsResponse
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /jobApplication/ [get]
func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	userID, err := principalID(c)
	if err != nil {
		return respondError(c, err)
	}

	applications, err := h.Applications.ListOwnApplications(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, ApplicationsResponse{Applications: applications}, fiber.StatusOK)
}

// Delete handles DELETE /jobApplication/:applicationId
// @Summary Withdraw an application
// @Tags JobApplication
// @Produce json
// @Security BearerAuth
// @Param applicationId path string true "Application ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /jobApplication/{applicationId} [delete]
func (h *ApplicationHandler) Delete(c *fiber.Ctx) error {
	userID, err := principalID(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.Applications.DeleteApplication(c.UserContext(), userID, c.Params("applicationId")); err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, MessageResponse{Message: "JobApplication deleted Successfully"}, fiber.StatusOK)
}

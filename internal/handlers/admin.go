// admin.go
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

// AdminHandler handles the admin routes
type AdminHandler struct {
	Accounts *services.AccountService
	Jobs     *services.JobService
}

// Signup handles POST /admin/signup
// @Summary Create an admin account
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body services.SignupInput true "Account"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/signup [post]
func (h *AdminHandler) Signup(c *fiber.Ctx) error {
	var in services.SignupInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}

	if _, err := h.Accounts.SignupAdmin(c.UserContext(), in); err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, MessageResponse{Message: "You Have Signed Up Successfully"}, fiber.StatusOK)
}

// Signin handles POST /admin/signin
// @Summary Sign in as an admin
// @Tags Admin
// @Accept json
// @Produce json
// @Param body body services.SigninInput true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/signin [post]
func (h *AdminHandler) Signin(c *fiber.Ctx) error {
	var in services.SigninInput
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}

	token, err := h.Accounts.SigninAdmin(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, TokenResponse{
		Message: "Signed In Successfully",
		Token:   string(token),
	}, fiber.StatusOK)
}

// CreateJob handles POST /admin/jobs
// @Summary Post a job
// @Description The job is always owned by the signed-in admin.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.JobFields true "Job"
// @Success 200 {object} JobCreatedResponse
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/jobs [post]
func (h *AdminHandler) CreateJob(c *fiber.Ctx) error {
	adminID, err := principalID(c)
	if err != nil {
		return respondError(c, err)
	}

	var fields models.JobFields
	if err := parseBody(c, &fields); err != nil {
		return respondError(c, err)
	}

	job, err := h.Jobs.CreateJob(c.UserContext(), adminID, fields)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, JobCreatedResponse{
		Message: "Job created successfully",
		JobID:   job.ID,
	}, fiber.StatusOK)
}

// UpdateJob handles PUT /admin/jobs/:jobId
// @Summary Update a job
// @Description Only the supplied fields change.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Param body body models.JobFields true "Fields to change"
// @Success 200 {object} JobUpdatedResponse
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/jobs/{jobId} [put]
func (h *AdminHandler) UpdateJob(c *fiber.Ctx) error {
	var fields models.JobFields
	if err := parseBody(c, &fields); err != nil {
		return respondError(c, err)
	}

	job, err := h.Jobs.UpdateJob(c.UserContext(), c.Params("jobId"), fields)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, JobUpdatedResponse{
		Message: "Job updated successfully",
		Job:     job,
	}, fiber.StatusOK)
}

// DeleteJob handles DELETE /admin/jobs/:jobId
// @Summary Delete a job
// @Description Deletes the job when the signed-in admin created it. Succeeds without deleting anything otherwise.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/jobs/{jobId} [delete]
func (h *AdminHandler) DeleteJob(c *fiber.Ctx) error {
	adminID, err := principalID(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.Jobs.DeleteJob(c.UserContext(), adminID, c.Params("jobId")); err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, MessageResponse{Message: "Job deleted successfully"}, fiber.StatusOK)
}

// ListOwnJobs handles GET /admin/jobs
// @Summary List the signed-in admin's jobs
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} JobsResponse
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/jobs [get]
func (h *AdminHandler) ListOwnJobs(c *fiber.Ctx) error {
	adminID, err := principalID(c)
	if err != nil {
		return respondError(c, err)
	}

	jobs, err := h.Jobs.ListOwnJobs(c.UserContext(), adminID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, JobsResponse{Jobs: jobs}, fiber.StatusOK)
}

// ListAllJobs handles GET /admin/all-jobs
// @Summary List every job
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} JobsResponse
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/all-jobs [get]
func (h *AdminHandler) ListAllJobs(c *fiber.Ctx) error {
	jobs, err := h.Jobs.ListAllJobs(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, JobsResponse{Jobs: jobs}, fiber.StatusOK)
}

// GetJob handles GET /admin/job/:jobId
// @Summary Get a job
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID"
// @Success 200 {object} JobResponse
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /admin/job/{jobId} [get]
func (h *AdminHandler) GetJob(c *fiber.Ctx) error {
	job, err := h.Jobs.GetJob(c.UserContext(), c.Params("jobId"))
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, JobResponse{Job: job}, fiber.StatusOK)
}

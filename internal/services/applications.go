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

package services

import (
	"context"
	"errors"

	"github.com/localnerve/jobby/internal/logging"
	"github.com/localnerve/jobby/internal/metrics"
	"github.com/localnerve/jobby/internal/models"
	"github.com/localnerve/jobby/internal/store"
	"github.com/localnerve/jobby/internal/types"
	"github.com/sirupsen/logrus"
)

// ApplyInput is the request body of an application
type ApplyInput struct {
	JobID string `json:"jobId" validate:"required"`
}

// JobView is a job as seen by one user
type JobView struct {
	Job        *models.Job `json:"job"`
	HasApplied bool        `json:"hasApplied"`
}

// ApplicationService manages a user's job applications
type ApplicationService struct {
	Store store.Store
	Log   logrus.FieldLogger
}

// ApplyToJob records an application by userID with a snapshot of the job as
// it is now. Applying twice creates two applications.
func (s *ApplicationService) ApplyToJob(ctx context.Context, userID, jobID string) (*models.JobApplication, error) {
	job, err := s.Store.FindJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, types.Fail(types.ErrNotFound, "Job not found", err)
		}
		return nil, s.internal(ctx, "Failed to apply for job", err)
	}

	application := &models.JobApplication{
		JobID:       job.ID,
		UserID:      userID,
		JobSnapshot: models.SnapshotOf(job),
	}
	if err := s.Store.CreateApplication(ctx, application); err != nil {
		return nil, s.internal(ctx, "Failed to apply for job", err)
	}

	metrics.Applications.Inc()
	return application, nil
}

// ListOwnApplications lists the applications userID submitted
func (s *ApplicationService) ListOwnApplications(ctx context.Context, userID string) ([]models.JobApplication, error) {
	applications, err := s.Store.FindApplicationsByUser(ctx, userID)
	if err != nil {
		return nil, s.internal(ctx, "Error Fetching Applications", err)
	}
	return applications, nil
}

// DeleteApplication removes an application owned by userID
func (s *ApplicationService) DeleteApplication(ctx context.Context, userID, applicationID string) error {
	application, err := s.Store.FindApplication(ctx, applicationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.Fail(types.ErrNotFound, "Application not found", err)
		}
		return s.internal(ctx, "Error while deleting JobApplication", err)
	}

	if application.UserID != userID {
		logging.FromContext(ctx, s.Log).WithFields(logrus.Fields{
			"applicationId": applicationID,
			"userId":        userID,
		}).Warn("application delete by non-owner")
		return types.Fail(types.ErrForbidden, "Forbidden: not the owner", nil)
	}

	if err := s.Store.DeleteApplication(ctx, applicationID); err != nil {
		return s.internal(ctx, "Error while deleting JobApplication", err)
	}
	return nil
}

// GetJobForUser finds a job and whether userID has applied to it
func (s *ApplicationService) GetJobForUser(ctx context.Context, userID, jobID string) (*JobView, error) {
	job, err := s.Store.FindJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, types.Fail(types.ErrNotFound, "Job not found", err)
		}
		return nil, s.internal(ctx, "Error fetching job details", err)
	}

	applied, err := s.Store.HasApplied(ctx, userID, jobID)
	if err != nil {
		return nil, s.internal(ctx, "Error fetching job details", err)
	}

	return &JobView{Job: job, HasApplied: applied}, nil
}

func (s *ApplicationService) internal(ctx context.Context, msg string, err error) error {
	logging.FromContext(ctx, s.Log).WithError(err).Error(msg)
	return types.Fail(types.ErrInternal, msg, err)
}

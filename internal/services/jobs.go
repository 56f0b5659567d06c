// jobs.go
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
	"github.com/localnerve/jobby/internal/models"
	"github.com/localnerve/jobby/internal/store"
	"github.com/localnerve/jobby/internal/types"
	"github.com/sirupsen/logrus"
)

// JobService manages job postings on behalf of admins
type JobService struct {
	Store store.Store
	Log   logrus.FieldLogger
}

// CreateJob posts a job owned by adminID. The admin must still exist.
func (s *JobService) CreateJob(ctx context.Context, adminID string, fields models.JobFields) (*models.Job, error) {
	if _, err := s.Store.FindAdmin(ctx, adminID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, types.Fail(types.ErrUnauthenticated, "Invalid or missing token.", err)
		}
		return nil, s.internal(ctx, "Error Posting the Job", err)
	}

	job := &models.Job{}
	fields.ApplyTo(job)
	job.CreatorID = adminID

	if err := s.Store.CreateJob(ctx, job); err != nil {
		return nil, s.internal(ctx, "Error Posting the Job", err)
	}
	return job, nil
}

// UpdateJob writes the supplied fields of any job. Ownership is not checked.
// TODO: decide with the security review whether updates should be
// scoped to the creating admin like deletes are.
func (s *JobService) UpdateJob(ctx context.Context, jobID string, fields models.JobFields) (*models.Job, error) {
	job, err := s.Store.UpdateJob(ctx, jobID, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, types.Fail(types.ErrNotFound, "Job not found", err)
		}
		return nil, s.internal(ctx, "Error updating job", err)
	}
	return job, nil
}

// DeleteJob removes the job if adminID created it. A job that is missing or
// owned by another admin is left alone and the call still succeeds.
func (s *JobService) DeleteJob(ctx context.Context, adminID, jobID string) error {
	n, err := s.Store.DeleteJob(ctx, jobID, adminID)
	if err != nil {
		return s.internal(ctx, "Error deleting job", err)
	}
	if n == 0 {
		logging.FromContext(ctx, s.Log).WithFields(logrus.Fields{
			"jobId":   jobID,
			"adminId": adminID,
		}).Debug("delete matched no job")
	}
	return nil
}

// ListOwnJobs lists the jobs adminID created
func (s *JobService) ListOwnJobs(ctx context.Context, adminID string) ([]models.Job, error) {
	jobs, err := s.Store.FindJobs(ctx, store.JobFilter{CreatorID: adminID})
	if err != nil {
		return nil, s.internal(ctx, "Error fetching jobs", err)
	}
	return jobs, nil
}

// ListAllJobs lists every job
func (s *JobService) ListAllJobs(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.Store.FindJobs(ctx, store.JobFilter{})
	if err != nil {
		return nil, s.internal(ctx, "Error fetching jobs", err)
	}
	return jobs, nil
}

// GetJob finds one job
func (s *JobService) GetJob(ctx context.Context, jobID string) (*models.Job, error) {
	job, err := s.Store.FindJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, types.Fail(types.ErrNotFound, "Job not found", err)
		}
		return nil, s.internal(ctx, "Error fetching job", err)
	}
	return job, nil
}

func (s *JobService) internal(ctx context.Context, msg string, err error) error {
	logging.FromContext(ctx, s.Log).WithError(err).Error(msg)
	return types.Fail(types.ErrInternal, msg, err)
}

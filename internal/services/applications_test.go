// applications_test.go
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

package services_test

import (
	"context"
	"testing"

	"github.com/localnerve/jobby/internal/models"
	"github.com/localnerve/jobby/internal/testutil"
	"github.com/localnerve/jobby/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyToJob(t *testing.T) {
	f := newFixture(t, testutil.NewSQLiteStore(t))
	ctx := context.Background()
	adminID := f.admin(t, "boss")
	userID := f.user(t, "ann")
	job := f.job(t, adminID, "Backend")

	application, err := f.applications.ApplyToJob(ctx, userID, job.ID)
	require.NoError(t, err)
	assert.Equal(t, userID, application.UserID)
	assert.Equal(t, job.ID, application.JobID)
	assert.Equal(t, "Backend", application.JobSnapshot.Title)

	// No duplicate check
	_, err = f.applications.ApplyToJob(ctx, userID, job.ID)
	require.NoError(t, err)

	list, err := f.applications.ListOwnApplications(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = f.applications.ApplyToJob(ctx, userID, models.NewID())
	assertKind(t, err, types.ErrNotFound, "Job not found")
}

func TestApplicationKeepsSnapshot(t *testing.T) {
	f := newFixture(t, testutil.NewSQLiteStore(t))
	ctx := context.Background()
	adminID := f.admin(t, "boss")
	userID := f.user(t, "ann")
	job := f.job(t, adminID, "Backend")

	_, err := f.applications.ApplyToJob(ctx, userID, job.ID)
	require.NoError(t, err)

	_, err = f.jobs.UpdateJob(ctx, job.ID, models.JobFields{Title: ptr("Frontend")})
	require.NoError(t, err)
	require.NoError(t, f.jobs.DeleteJob(ctx, adminID, job.ID))

	list, err := f.applications.ListOwnApplications(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Backend", list[0].JobSnapshot.Title)
}

func TestDeleteApplication(t *testing.T) {
	f := newFixture(t, testutil.NewSQLiteStore(t))
	ctx := context.Background()
	adminID := f.admin(t, "boss")
	owner, other := f.user(t, "ann"), f.user(t, "bob")
	job := f.job(t, adminID, "Backend")

	application, err := f.applications.ApplyToJob(ctx, owner, job.ID)
	require.NoError(t, err)

	err = f.applications.DeleteApplication(ctx, other, application.ID)
	assertKind(t, err, types.ErrForbidden, "Forbidden: not the owner")

	require.NoError(t, f.applications.DeleteApplication(ctx, owner, application.ID))

	err = f.applications.DeleteApplication(ctx, owner, application.ID)
	assertKind(t, err, types.ErrNotFound, "Application not found")
}

func TestGetJobForUser(t *testing.T) {
	f := newFixture(t, testutil.NewSQLiteStore(t))
	ctx := context.Background()
	adminID := f.admin(t, "boss")
	applicant, browser := f.user(t, "ann"), f.user(t, "bob")
	job := f.job(t, adminID, "Backend")

	view, err := f.applications.GetJobForUser(ctx, applicant, job.ID)
	require.NoError(t, err)
	assert.False(t, view.HasApplied)

	_, err = f.applications.ApplyToJob(ctx, applicant, job.ID)
	require.NoError(t, err)

	view, err = f.applications.GetJobForUser(ctx, applicant, job.ID)
	require.NoError(t, err)
	assert.True(t, view.HasApplied)
	assert.Equal(t, job.ID, view.Job.ID)

	view, err = f.applications.GetJobForUser(ctx, browser, job.ID)
	require.NoError(t, err)
	assert.False(t, view.HasApplied, "another user's application does not count")

	_, err = f.applications.GetJobForUser(ctx, applicant, models.NewID())
	assertKind(t, err, types.ErrNotFound, "Job not found")
}

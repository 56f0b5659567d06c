// store_test.go
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

package store_test

import (
	"context"
	"testing"

	"github.com/localnerve/jobby/internal/models"
	"github.com/localnerve/jobby/internal/store"
	"github.com/localnerve/jobby/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

// runStoreContract exercises the behavior every Store backend must share
func runStoreContract(t *testing.T, newStore func(t *testing.T) store.Store) {
	t.Run("Admins", func(t *testing.T) { testAdmins(t, newStore(t)) })
	t.Run("UsersAndProfiles", func(t *testing.T) { testUsersAndProfiles(t, newStore(t)) })
	t.Run("Jobs", func(t *testing.T) { testJobs(t, newStore(t)) })
	t.Run("Applications", func(t *testing.T) { testApplications(t, newStore(t)) })
	t.Run("Ping", func(t *testing.T) { assert.NoError(t, newStore(t).Ping(context.Background())) })
}

func testAdmins(t *testing.T, s store.Store) {
	ctx := context.Background()

	admin := &models.Admin{Username: "boss", Name: "Boss", Email: "boss@example.com", PasswordHash: "x"}
	require.NoError(t, s.CreateAdmin(ctx, admin))
	require.NotEmpty(t, admin.ID)

	found, err := s.FindAdmin(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "boss", found.Username)

	found, err = s.FindAdminByUsername(ctx, "boss")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, found.ID)
	assert.Equal(t, "x", found.PasswordHash)

	_, err = s.FindAdminByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.FindAdmin(ctx, models.NewID())
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = s.CreateAdmin(ctx, &models.Admin{Username: "boss", Name: "B", Email: "other@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, store.ErrDuplicateKey)

	err = s.CreateAdmin(ctx, &models.Admin{Username: "other", Name: "B", Email: "boss@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, store.ErrDuplicateKey)
}

func testUsersAndProfiles(t *testing.T, s store.Store) {
	ctx := context.Background()

	user := &models.User{Username: "ann", Name: "Ann", Email: "ann@example.com", PasswordHash: "x"}
	require.NoError(t, s.CreateUser(ctx, user))
	require.NotEmpty(t, user.ID)

	err := s.CreateUser(ctx, &models.User{Username: "ann", Name: "Ann", Email: "ann2@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, store.ErrDuplicateKey)

	require.NoError(t, s.CreateProfile(ctx, &models.Profile{ID: user.ID, Name: "Ann"}))

	profile, err := s.FindProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", profile.Name)
	assert.Empty(t, profile.ShortBio)

	profile, err = s.UpdateProfile(ctx, user.ID, models.ProfileFields{ShortBio: ptr("Gopher")})
	require.NoError(t, err)
	assert.Equal(t, "Gopher", profile.ShortBio)
	assert.Equal(t, "Ann", profile.Name, "unsupplied fields are unchanged")

	profile, err = s.UpdateProfile(ctx, user.ID, models.ProfileFields{})
	require.NoError(t, err)
	assert.Equal(t, "Gopher", profile.ShortBio)

	_, err = s.UpdateProfile(ctx, models.NewID(), models.ProfileFields{Name: ptr("x")})
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.FindProfile(ctx, models.NewID())
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.DeleteUser(ctx, user.ID))
	_, err = s.FindUserByUsername(ctx, "ann")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func testJobs(t *testing.T, s store.Store) {
	ctx := context.Background()
	a1, a2 := models.NewID(), models.NewID()

	newJob := func(title, creator string) *models.Job {
		job := &models.Job{
			Title:           title,
			Rating:          4.5,
			Location:        "Remote",
			EmploymentType:  "Full Time",
			PackagePerAnnum: "12 LPA",
			CreatorID:       creator,
		}
		require.NoError(t, s.CreateJob(ctx, job))
		require.NotEmpty(t, job.ID)
		return job
	}

	first := newJob("first", a1)
	second := newJob("second", a1)
	newJob("third", a2)

	own, err := s.FindJobs(ctx, store.JobFilter{CreatorID: a1})
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, first.ID, own[0].ID)
	assert.Equal(t, second.ID, own[1].ID)

	all, err := s.FindJobs(ctx, store.JobFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := s.FindJobs(ctx, store.JobFilter{CreatorID: models.NewID()})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	rating := types.FlexFloat64(3)
	updated, err := s.UpdateJob(ctx, first.ID, models.JobFields{Title: ptr("renamed"), Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, float64(3), updated.Rating)
	assert.Equal(t, "Remote", updated.Location)
	assert.Equal(t, a1, updated.CreatorID)

	_, err = s.UpdateJob(ctx, models.NewID(), models.JobFields{Title: ptr("x")})
	assert.ErrorIs(t, err, store.ErrNotFound)

	n, err := s.DeleteJob(ctx, first.ID, a2)
	require.NoError(t, err)
	assert.Zero(t, n, "delete by another creator removes nothing")

	n, err = s.DeleteJob(ctx, first.ID, a1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = s.FindJob(ctx, first.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	n, err = s.DeleteJob(ctx, first.ID, a1)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func testApplications(t *testing.T, s store.Store) {
	ctx := context.Background()
	userID, otherID := models.NewID(), models.NewID()

	job := &models.Job{Title: "Backend", Location: "Berlin", CreatorID: models.NewID()}
	require.NoError(t, s.CreateJob(ctx, job))

	application := &models.JobApplication{JobID: job.ID, UserID: userID, JobSnapshot: models.SnapshotOf(job)}
	require.NoError(t, s.CreateApplication(ctx, application))
	require.NotEmpty(t, application.ID)

	// A second application for the same job is allowed
	again := &models.JobApplication{JobID: job.ID, UserID: userID, JobSnapshot: models.SnapshotOf(job)}
	require.NoError(t, s.CreateApplication(ctx, again))

	_, err := s.UpdateJob(ctx, job.ID, models.JobFields{Title: ptr("Frontend")})
	require.NoError(t, err)

	found, err := s.FindApplication(ctx, application.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backend", found.JobSnapshot.Title, "the snapshot does not follow job edits")
	assert.Equal(t, "Berlin", found.JobSnapshot.Location)
	assert.Equal(t, job.ID, found.JobSnapshot.ID)

	applied, err := s.HasApplied(ctx, userID, job.ID)
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = s.HasApplied(ctx, otherID, job.ID)
	require.NoError(t, err)
	assert.False(t, applied)

	list, err := s.FindApplicationsByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, application.ID, list[0].ID)

	list, err = s.FindApplicationsByUser(ctx, otherID)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, s.DeleteApplication(ctx, application.ID))
	_, err = s.FindApplication(ctx, application.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

// services_test.go
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
	"errors"
	"testing"

	"github.com/localnerve/jobby/internal/logging"
	"github.com/localnerve/jobby/internal/models"
	"github.com/localnerve/jobby/internal/services"
	"github.com/localnerve/jobby/internal/store"
	"github.com/localnerve/jobby/internal/testutil"
	"github.com/localnerve/jobby/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingProfiles is a store whose profile writes always fail
type failingProfiles struct {
	store.Store
}

func (failingProfiles) CreateProfile(context.Context, *models.Profile) error {
	return errors.New("profile collection unavailable")
}

type fixture struct {
	store        store.Store
	accounts     *services.AccountService
	jobs         *services.JobService
	applications *services.ApplicationService
	profiles     *services.ProfileService
}

func newFixture(t *testing.T, s store.Store) *fixture {
	t.Helper()
	log := logging.Discard()
	return &fixture{
		store: s,
		accounts: &services.AccountService{
			Store:  s,
			Hasher: testutil.NewHasher(),
			Tokens: testutil.NewTokens(t),
			Log:    log,
		},
		jobs:         &services.JobService{Store: s, Log: log},
		applications: &services.ApplicationService{Store: s, Log: log},
		profiles:     &services.ProfileService{Store: s, Log: log},
	}
}

func signup(username string) services.SignupInput {
	return services.SignupInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "p@ssw0rd",
		Name:     "Name " + username,
	}
}

func ptr[T any](v T) *T {
	return &v
}

func assertKind(t *testing.T, err error, kind error, message string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, kind)

	var custom *types.CustomError
	require.ErrorAs(t, err, &custom)
	if message != "" {
		assert.Equal(t, message, custom.Message)
	}
}

func (f *fixture) admin(t *testing.T, username string) string {
	t.Helper()
	admin, err := f.accounts.SignupAdmin(context.Background(), signup(username))
	require.NoError(t, err)
	return admin.ID
}

func (f *fixture) user(t *testing.T, username string) string {
	t.Helper()
	user, err := f.accounts.SignupUser(context.Background(), signup(username))
	require.NoError(t, err)
	return user.ID
}

func (f *fixture) job(t *testing.T, adminID, title string) *models.Job {
	t.Helper()
	job, err := f.jobs.CreateJob(context.Background(), adminID, models.JobFields{
		Title:    ptr(title),
		Location: ptr("Remote"),
	})
	require.NoError(t, err)
	return job
}

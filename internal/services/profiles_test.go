// profiles_test.go
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

	"github.com/localnerve/jobby/internal/config"
	"github.com/localnerve/jobby/internal/logging"
	"github.com/localnerve/jobby/internal/models"
	"github.com/localnerve/jobby/internal/services"
	"github.com/localnerve/jobby/internal/testutil"
	"github.com/localnerve/jobby/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	f := newFixture(t, testutil.NewSQLiteStore(t))
	ctx := context.Background()
	userID := f.user(t, "ann")

	profile, err := f.profiles.UpdateProfile(ctx, userID, models.ProfileFields{
		ShortBio:        ptr("Gopher"),
		ProfileImageURL: ptr("https://example.com/ann.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Gopher", profile.ShortBio)
	assert.Equal(t, "https://example.com/ann.png", profile.ProfileImageURL)
	assert.Equal(t, "Name ann", profile.Name)

	_, err = f.profiles.UpdateProfile(ctx, models.NewID(), models.ProfileFields{Name: ptr("x")})
	assertKind(t, err, types.ErrNotFound, "Profile not found")

	_, err = f.profiles.GetProfile(ctx, models.NewID())
	assertKind(t, err, types.ErrNotFound, "Profile not found")
}

func TestHealthCheck(t *testing.T) {
	cfg := &config.Config{DBType: "sqlite", DBDatabase: "jobby"}
	log := logging.Discard()

	result := services.HealthCheck(context.Background(), cfg, nil, log)
	assert.Equal(t, "degraded", result.Status)
	assert.False(t, result.DBConnected)
	assert.Equal(t, "Jobby API is running", result.Message)

	s := testutil.NewSQLiteStore(t)
	result = services.HealthCheck(context.Background(), cfg, s, log)
	assert.Equal(t, "ok", result.Status)
	assert.True(t, result.DBConnected)
	assert.Equal(t, "sqlite", result.Details["database_type"])

	require.NoError(t, s.Close(context.Background()))
	result = services.HealthCheck(context.Background(), cfg, s, log)
	assert.Equal(t, "degraded", result.Status)
	assert.NotEmpty(t, result.ErrorMessage)
}

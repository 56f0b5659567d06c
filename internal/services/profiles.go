// profiles.go
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

// ProfileService reads and edits the profile of the signed-in user
type ProfileService struct {
	Store store.Store
	Log   logrus.FieldLogger
}

// GetProfile finds userID's profile
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.Store.FindProfile(ctx, userID)
	if err != nil {
		return nil, s.fail(ctx, "Error fetching profile", err)
	}
	return profile, nil
}

// UpdateProfile writes the supplied fields of userID's profile
func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, fields models.ProfileFields) (*models.Profile, error) {
	profile, err := s.Store.UpdateProfile(ctx, userID, fields)
	if err != nil {
		return nil, s.fail(ctx, "Error updating profile", err)
	}
	return profile, nil
}

func (s *ProfileService) fail(ctx context.Context, msg string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return types.Fail(types.ErrNotFound, "Profile not found", err)
	}
	logging.FromContext(ctx, s.Log).WithError(err).Error(msg)
	return types.Fail(types.ErrInternal, msg, err)
}

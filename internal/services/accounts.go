// accounts.go
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

	"github.com/localnerve/jobby/internal/auth"
	"github.com/localnerve/jobby/internal/logging"
	"github.com/localnerve/jobby/internal/metrics"
	"github.com/localnerve/jobby/internal/models"
	"github.com/localnerve/jobby/internal/store"
	"github.com/localnerve/jobby/internal/types"
	"github.com/sirupsen/logrus"
)

// SignupInput is the request body for both signup paths
type SignupInput struct {
	Username string `json:"username" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,maxbytes=72"`
	Name     string `json:"name" validate:"required,max=255"`
}

// SigninInput is the request body for both signin paths
type SigninInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AccountService creates accounts and exchanges credentials for tokens
type AccountService struct {
	Store  store.Store
	Hasher auth.Hasher
	Tokens *auth.TokenService
	Log    logrus.FieldLogger
}

// SignupAdmin creates an admin account
func (s *AccountService) SignupAdmin(ctx context.Context, in SignupInput) (*models.Admin, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, types.Fail(types.ErrInternal, "Error in signing up admin", err)
	}

	admin := &models.Admin{
		Username:     in.Username,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := s.Store.CreateAdmin(ctx, admin); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, types.Fail(types.ErrConflict, "Username or Email already exists.", err)
		}
		logging.FromContext(ctx, s.Log).WithError(err).Error("admin signup failed")
		return nil, types.Fail(types.ErrInternal, "Error in signing up admin", err)
	}

	metrics.Signups.WithLabelValues(string(auth.RoleAdmin)).Inc()
	return admin, nil
}

// SigninAdmin checks admin credentials and issues an admin-domain token
func (s *AccountService) SigninAdmin(ctx context.Context, in SigninInput) (auth.AdminToken, error) {
	if err := Validate(in); err != nil {
		return "", err
	}

	admin, err := s.Store.FindAdminByUsername(ctx, in.Username)
	if err != nil {
		return "", s.signinFailure(ctx, auth.RoleAdmin, "Error in signing in admin", err)
	}
	if !s.Hasher.Verify(in.Password, admin.PasswordHash) {
		return "", s.signinFailure(ctx, auth.RoleAdmin, "", nil)
	}

	token, err := s.Tokens.IssueAdmin(admin.ID)
	if err != nil {
		return "", s.signinFailure(ctx, auth.RoleAdmin, "Error in signing in admin", err)
	}

	metrics.Signins.WithLabelValues(string(auth.RoleAdmin), "success").Inc()
	return token, nil
}

// SignupUser creates a user account and its profile. When the profile cannot
// be written the user is removed again so no user exists without a profile.
func (s *AccountService) SignupUser(ctx context.Context, in SignupInput) (*models.User, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, types.Fail(types.ErrInternal, "Error in signing up user", err)
	}

	log := logging.FromContext(ctx, s.Log)

	user := &models.User{
		Username:     in.Username,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := s.Store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, types.Fail(types.ErrConflict, "Username or email already exists", err)
		}
		log.WithError(err).Error("user signup failed")
		return nil, types.Fail(types.ErrInternal, "Error in signing up user", err)
	}

	profile := &models.Profile{
		ID:   user.ID,
		Name: in.Name,
	}
	if err := s.Store.CreateProfile(ctx, profile); err != nil {
		log = log.WithFields(logrus.Fields{"userId": user.ID, "profileId": profile.ID})
		log.WithError(err).Error("profile creation failed, removing user")

		// The request may already be cancelled; the compensation must still run.
		if delErr := s.Store.DeleteUser(context.WithoutCancel(ctx), user.ID); delErr != nil {
			log.WithError(delErr).Error("failed to remove user after profile failure")
		}
		return nil, types.Fail(types.ErrInternal, "Error in signing up user", err)
	}

	metrics.Signups.WithLabelValues(string(auth.RoleUser)).Inc()
	return user, nil
}

// SigninUser checks user credentials and issues a user-domain token
func (s *AccountService) SigninUser(ctx context.Context, in SigninInput) (auth.UserToken, error) {
	if err := Validate(in); err != nil {
		return "", err
	}

	user, err := s.Store.FindUserByUsername(ctx, in.Username)
	if err != nil {
		return "", s.signinFailure(ctx, auth.RoleUser, "Error while signing in user", err)
	}
	if !s.Hasher.Verify(in.Password, user.PasswordHash) {
		return "", s.signinFailure(ctx, auth.RoleUser, "", nil)
	}

	token, err := s.Tokens.IssueUser(user.ID)
	if err != nil {
		return "", s.signinFailure(ctx, auth.RoleUser, "Error while signing in user", err)
	}

	metrics.Signins.WithLabelValues(string(auth.RoleUser), "success").Inc()
	return token, nil
}

// signinFailure counts a failed signin. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (s *AccountService) signinFailure(ctx context.Context, role auth.Role, internalMsg string, err error) error {
	if err == nil || errors.Is(err, store.ErrNotFound) {
		metrics.Signins.WithLabelValues(string(role), "invalid").Inc()
		return types.Fail(types.ErrInvalidCredentials, "Invalid Credentials", nil)
	}

	metrics.Signins.WithLabelValues(string(role), "error").Inc()
	logging.FromContext(ctx, s.Log).WithError(err).WithField("role", role).Error("signin failed")
	return types.Fail(types.ErrInternal, internalMsg, err)
}

// store.go
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

// Package store persists admins, users, profiles, jobs and job applications.
//
// Two backends implement Store: MongoStore over a MongoDB database and
// GormStore over any GORM dialect. Both surface missing records as ErrNotFound
// and unique-index violations as ErrDuplicateKey. Every operation is a single
// round trip (or a single transaction) and honors ctx cancellation.
package store

import (
	"context"
	"errors"

	"github.com/localnerve/jobby/internal/models"
)

var (
	// ErrNotFound is returned when no record matches.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when a write violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)

// JobFilter selects jobs. The zero value selects every job.
type JobFilter struct {
	CreatorID string
}

// Store is the persistence contract used by the services.
type Store interface {
	CreateAdmin(ctx context.Context, admin *models.Admin) error
	FindAdmin(ctx context.Context, id string) (*models.Admin, error)
	FindAdminByUsername(ctx context.Context, username string) (*models.Admin, error)

	CreateUser(ctx context.Context, user *models.User) error
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error

	CreateProfile(ctx context.Context, profile *models.Profile) error
	FindProfile(ctx context.Context, id string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, id string, fields models.ProfileFields) (*models.Profile, error)

	CreateJob(ctx context.Context, job *models.Job) error
	FindJob(ctx context.Context, id string) (*models.Job, error)
	FindJobs(ctx context.Context, filter JobFilter) ([]models.Job, error)
	UpdateJob(ctx context.Context, id string, fields models.JobFields) (*models.Job, error)
	// DeleteJob removes the job only if it belongs to creatorID and reports
	// how many records were removed.
	DeleteJob(ctx context.Context, id, creatorID string) (int64, error)

	CreateApplication(ctx context.Context, application *models.JobApplication) error
	FindApplication(ctx context.Context, id string) (*models.JobApplication, error)
	FindApplicationsByUser(ctx context.Context, userID string) ([]models.JobApplication, error)
	HasApplied(ctx context.Context, userID, jobID string) (bool, error)
	DeleteApplication(ctx context.Context, id string) error

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

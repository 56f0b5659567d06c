// gorm.go
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

package store

import (
	"context"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/localnerve/jobby/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/hints"
)

// GormStore implements Store on a relational database through GORM
type GormStore struct {
	DB *gorm.DB
}

// NewGormStore wraps an open GORM connection
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// quiet returns a session bound to ctx that does not log queries
func (s *GormStore) quiet(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx).Session(&gorm.Session{Logger: s.DB.Logger.LogMode(logger.Silent)})
}

// CreateAdmin inserts a new admin
func (s *GormStore) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	return translate(s.DB.WithContext(ctx).Create(admin).Error)
}

// FindAdmin finds an admin by id
func (s *GormStore) FindAdmin(ctx context.Context, id string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.quiet(ctx).Where("id = ?", id).First(&admin).Error; err != nil {
		return nil, translate(err)
	}
	return &admin, nil
}

// FindAdminByUsername finds an admin by username
func (s *GormStore) FindAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.quiet(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, translate(err)
	}
	return &admin, nil
}

// CreateUser inserts a new user
func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	return translate(s.DB.WithContext(ctx).Create(user).Error)
}

// FindUserByUsername finds a user by username
func (s *GormStore) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.quiet(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// DeleteUser removes a user by id
func (s *GormStore) DeleteUser(ctx context.Context, id string) error {
	return translate(s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.User{}).Error)
}

// CreateProfile inserts a profile. The ID must already be set to the user's ID.
func (s *GormStore) CreateProfile(ctx context.Context, profile *models.Profile) error {
	if profile.ID == "" {
		return errors.New("profile id is required")
	}
	return translate(s.DB.WithContext(ctx).Create(profile).Error)
}

// FindProfile finds a profile by id
func (s *GormStore) FindProfile(ctx context.Context, id string) (*models.Profile, error) {
	var profile models.Profile
	if err := s.quiet(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

// UpdateProfile writes the supplied profile fields and returns the result
func (s *GormStore) UpdateProfile(ctx context.Context, id string, fields models.ProfileFields) (*models.Profile, error) {
	var profile models.Profile
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&profile).Error; err != nil {
			return err
		}
		if updates := profileColumns(fields); len(updates) > 0 {
			if err := tx.Model(&profile).Updates(updates).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", id).First(&profile).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

// CreateJob inserts a new job
func (s *GormStore) CreateJob(ctx context.Context, job *models.Job) error {
	return translate(s.DB.WithContext(ctx).Create(job).Error)
}

// FindJob finds a job by id
func (s *GormStore) FindJob(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	if err := s.quiet(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		return nil, translate(err)
	}
	return &job, nil
}

// FindJobs lists jobs in creation order
func (s *GormStore) FindJobs(ctx context.Context, filter JobFilter) ([]models.Job, error) {
	jobs := []models.Job{}
	query := s.quiet(ctx).Clauses(hints.CommentBefore("select", "jobby:find_jobs"))
	if filter.CreatorID != "" {
		query = query.Where("creator_id = ?", filter.CreatorID)
	}
	if err := query.Order("id").Find(&jobs).Error; err != nil {
		return nil, translate(err)
	}
	return jobs, nil
}

// UpdateJob writes the supplied job fields in one UPDATE and returns the result
func (s *GormStore) UpdateJob(ctx context.Context, id string, fields models.JobFields) (*models.Job, error) {
	var job models.Job
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&job).Error; err != nil {
			return err
		}
		if updates := jobColumns(fields); len(updates) > 0 {
			if err := tx.Model(&job).Updates(updates).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", id).First(&job).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &job, nil
}

// DeleteJob deletes a job scoped to its creator
func (s *GormStore) DeleteJob(ctx context.Context, id, creatorID string) (int64, error) {
	result := s.DB.WithContext(ctx).Where("id = ? AND creator_id = ?", id, creatorID).Delete(&models.Job{})
	if result.Error != nil {
		return 0, translate(result.Error)
	}
	return result.RowsAffected, nil
}

// CreateApplication inserts a new job application
func (s *GormStore) CreateApplication(ctx context.Context, application *models.JobApplication) error {
	return translate(s.DB.WithContext(ctx).Create(application).Error)
}

// FindApplication finds a job application by id
func (s *GormStore) FindApplication(ctx context.Context, id string) (*models.JobApplication, error) {
	var application models.JobApplication
	if err := s.quiet(ctx).Where("id = ?", id).First(&application).Error; err != nil {
		return nil, translate(err)
	}
	return &application, nil
}

// FindApplicationsByUser lists a user's applications in creation order
func (s *GormStore) FindApplicationsByUser(ctx context.Context, userID string) ([]models.JobApplication, error) {
	applications := []models.JobApplication{}
	err := s.quiet(ctx).
		Clauses(hints.CommentBefore("select", "jobby:find_applications_by_user")).
		Where("user_id = ?", userID).
		Order("id").
		Find(&applications).Error
	if err != nil {
		return nil, translate(err)
	}
	return applications, nil
}

// HasApplied reports whether any application matches (userID, jobID)
func (s *GormStore) HasApplied(ctx context.Context, userID, jobID string) (bool, error) {
	var count int64
	err := s.quiet(ctx).Model(&models.JobApplication{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

// DeleteApplication removes a job application by id
func (s *GormStore) DeleteApplication(ctx context.Context, id string) error {
	return translate(s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.JobApplication{}).Error)
}

// Ping checks the database connection
func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the database connection
func (s *GormStore) Close(_ context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func jobColumns(f models.JobFields) map[string]interface{} {
	updates := map[string]interface{}{}
	if f.Title != nil {
		updates["title"] = *f.Title
	}
	if f.Rating != nil {
		updates["rating"] = f.Rating.Float64()
	}
	if f.CompanyLogoURL != nil {
		updates["company_logo_url"] = *f.CompanyLogoURL
	}
	if f.Location != nil {
		updates["location"] = *f.Location
	}
	if f.JobDescription != nil {
		updates["job_description"] = *f.JobDescription
	}
	if f.EmploymentType != nil {
		updates["employment_type"] = *f.EmploymentType
	}
	if f.PackagePerAnnum != nil {
		updates["package_per_annum"] = f.PackagePerAnnum.String()
	}
	return updates
}

func profileColumns(f models.ProfileFields) map[string]interface{} {
	updates := map[string]interface{}{}
	if f.ProfileImageURL != nil {
		updates["profile_image_url"] = *f.ProfileImageURL
	}
	if f.Name != nil {
		updates["name"] = *f.Name
	}
	if f.ShortBio != nil {
		updates["short_bio"] = *f.ShortBio
	}
	return updates
}

// translate maps driver errors onto the store sentinels
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case isDuplicateKey(err):
		return errors.Join(ErrDuplicateKey, err)
	default:
		return err
	}
}

// isDuplicateKey recognizes unique violations across the supported dialects
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}

	// sqlite and sqlserver drivers only expose the message
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Cannot insert duplicate key") ||
		strings.Contains(msg, "Violation of UNIQUE KEY constraint")
}

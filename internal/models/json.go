// json.go
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

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// JobSnapshot is a point-in-time copy of a Job embedded in a JobApplication.
// SQL backends store it as a JSON column, the document store as a subdocument.
type JobSnapshot struct {
	ID              string    `bson:"_id" json:"id"`
	Title           string    `bson:"title" json:"title"`
	Rating          float64   `bson:"rating" json:"rating"`
	CompanyLogoURL  string    `bson:"companyLogoUrl" json:"companyLogoUrl"`
	Location        string    `bson:"location" json:"location"`
	JobDescription  string    `bson:"jobDescription" json:"jobDescription"`
	EmploymentType  string    `bson:"employmentType" json:"employmentType"`
	PackagePerAnnum string    `bson:"packagePerAnnum" json:"packagePerAnnum"`
	CreatorID       string    `bson:"creatorId" json:"creatorId"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// SnapshotOf copies the current state of job.
func SnapshotOf(job *Job) JobSnapshot {
	return JobSnapshot{
		ID:              job.ID,
		Title:           job.Title,
		Rating:          job.Rating,
		CompanyLogoURL:  job.CompanyLogoURL,
		Location:        job.Location,
		JobDescription:  job.JobDescription,
		EmploymentType:  job.EmploymentType,
		PackagePerAnnum: job.PackagePerAnnum,
		CreatorID:       job.CreatorID,
		CreatedAt:       job.CreatedAt,
		UpdatedAt:       job.UpdatedAt,
	}
}

// Value encodes the snapshot as JSON for SQL drivers
func (s JobSnapshot) Value() (driver.Value, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw).Value()
}

// Scan decodes a JSON column into the snapshot
func (s *JobSnapshot) Scan(value interface{}) error {
	var raw datatypes.JSON
	if err := raw.Scan(value); err != nil {
		return fmt.Errorf("failed to scan job snapshot: %w", err)
	}
	if len(raw) == 0 {
		*s = JobSnapshot{}
		return nil
	}
	*s = JobSnapshot{}
	return json.Unmarshal(raw, s)
}

// GormDBDataType ensures the correct data type is used for each database driver.
// MSSQL does not support the 'json' data type.
func (JobSnapshot) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "JSON"
	case "postgres":
		return "JSONB"
	case "sqlserver", "mssql":
		return "NVARCHAR(MAX)"
	case "sqlite":
		return "JSON"
	}
	return "TEXT"
}

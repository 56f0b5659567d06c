// job.go
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
	"time"

	"github.com/localnerve/jobby/internal/types"
	"gorm.io/gorm"
)

// Job is a posting owned by the admin named in CreatorID.
type Job struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)" bson:"_id" json:"id"`
	Title           string    `gorm:"size:255" bson:"title" json:"title"`
	Rating          float64   `bson:"rating" json:"rating"`
	CompanyLogoURL  string    `gorm:"size:2048" bson:"companyLogoUrl" json:"companyLogoUrl"`
	Location        string    `gorm:"size:255" bson:"location" json:"location"`
	JobDescription  string    `gorm:"type:text" bson:"jobDescription" json:"jobDescription"`
	EmploymentType  string    `gorm:"size:64" bson:"employmentType" json:"employmentType"`
	PackagePerAnnum string    `gorm:"size:64" bson:"packagePerAnnum" json:"packagePerAnnum"`
	CreatorID       string    `gorm:"type:varchar(36);not null;index" bson:"creatorId" json:"creatorId"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// JobFields is the client-editable part of a Job. Nil fields are not supplied.
// It has no creator field; the creator is always the authenticated admin.
type JobFields struct {
	Title           *string            `json:"title"`
	Rating          *types.FlexFloat64 `json:"rating"`
	CompanyLogoURL  *string            `json:"companyLogoUrl"`
	Location        *string            `json:"location"`
	JobDescription  *string            `json:"jobDescription"`
	EmploymentType  *string            `json:"employmentType"`
	PackagePerAnnum *types.FlexString  `json:"packagePerAnnum"`
}

// Empty reports whether no field was supplied.
func (f JobFields) Empty() bool {
	return f.Title == nil && f.Rating == nil && f.CompanyLogoURL == nil && f.Location == nil &&
		f.JobDescription == nil && f.EmploymentType == nil && f.PackagePerAnnum == nil
}

// ApplyTo copies the supplied fields onto job.
func (f JobFields) ApplyTo(job *Job) {
	if f.Title != nil {
		job.Title = *f.Title
	}
	if f.Rating != nil {
		job.Rating = f.Rating.Float64()
	}
	if f.CompanyLogoURL != nil {
		job.CompanyLogoURL = *f.CompanyLogoURL
	}
	if f.Location != nil {
		job.Location = *f.Location
	}
	if f.JobDescription != nil {
		job.JobDescription = *f.JobDescription
	}
	if f.EmploymentType != nil {
		job.EmploymentType = *f.EmploymentType
	}
	if f.PackagePerAnnum != nil {
		job.PackagePerAnnum = f.PackagePerAnnum.String()
	}
}

// BeforeCreate assigns an ID to a new job
func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = NewID()
	}
	return nil
}

// TableName overrides the table name for Job
func (Job) TableName() string {
	return "jobs"
}

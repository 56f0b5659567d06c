// application.go
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

	"gorm.io/gorm"
)

// JobApplication records that a user applied to a job.
// JobSnapshot is the job as it was when the application was made, so the
// record stays readable after the job is edited or deleted.
type JobApplication struct {
	ID          string      `gorm:"primaryKey;type:varchar(36)" bson:"_id" json:"id"`
	JobID       string      `gorm:"type:varchar(36);not null;index:idx_application_user_job,priority:2" bson:"jobId" json:"jobId"`
	UserID      string      `gorm:"type:varchar(36);not null;index:idx_application_user_job,priority:1" bson:"userId" json:"userId"`
	JobSnapshot JobSnapshot `bson:"jobSnapshot" json:"jobSnapshot"`
	CreatedAt   time.Time   `bson:"createdAt" json:"createdAt"`
}

// BeforeCreate assigns an ID to a new application
func (a *JobApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = NewID()
	}
	return nil
}

// TableName overrides the table name for JobApplication
func (JobApplication) TableName() string {
	return "job_applications"
}

// account.go
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

// Admin is an administrator account. Admins own the jobs they post.
type Admin struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" bson:"_id" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:255;not null" bson:"username" json:"username"`
	Name         string    `gorm:"size:255;not null" bson:"name" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" bson:"email" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// User is an end-user account. Every User has exactly one Profile with the same ID.
type User struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" bson:"_id" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:255;not null" bson:"username" json:"username"`
	Name         string    `gorm:"size:255;not null" bson:"name" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" bson:"email" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Profile is the public face of a User. Its ID is the owning User's ID.
type Profile struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)" bson:"_id" json:"-"`
	ProfileImageURL string    `gorm:"size:2048" bson:"profileImageUrl" json:"profileImageUrl"`
	Name            string    `gorm:"size:255" bson:"name" json:"name"`
	ShortBio        string    `gorm:"type:text" bson:"shortBio" json:"shortBio"`
	CreatedAt       time.Time `bson:"createdAt" json:"-"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"-"`
}

// ProfileFields is a partial profile update. Nil fields are left unchanged.
type ProfileFields struct {
	ProfileImageURL *string `json:"profileImageUrl"`
	Name            *string `json:"name"`
	ShortBio        *string `json:"shortBio"`
}

// Empty reports whether the update carries no fields.
func (f ProfileFields) Empty() bool {
	return f.ProfileImageURL == nil && f.Name == nil && f.ShortBio == nil
}

// BeforeCreate assigns an ID to a new admin
func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = NewID()
	}
	return nil
}

// BeforeCreate assigns an ID to a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = NewID()
	}
	return nil
}

// TableName overrides the table name for Admin
func (Admin) TableName() string {
	return "admins"
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}

// TableName overrides the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}

// mongo.go
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
	"time"

	"github.com/localnerve/jobby/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names
const (
	collAdmins       = "admins"
	collUsers        = "users"
	collProfiles     = "profiles"
	collJobs         = "jobs"
	collApplications = "jobapplications"
)

// MongoStore implements Store on a MongoDB database
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
	now    func() time.Time
}

// NewMongoStore wraps a connected client and the database to use
func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{
		client: client,
		db:     client.Database(database),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// EnsureIndexes creates the unique and lookup indexes. It is idempotent.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	unique := func(key string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.D{{Key: key, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
	}

	for _, coll := range []string{collAdmins, collUsers} {
		if _, err := s.db.Collection(coll).Indexes().CreateMany(ctx, []mongo.IndexModel{
			unique("username"),
			unique("email"),
		}); err != nil {
			return err
		}
	}

	if _, err := s.db.Collection(collJobs).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "creatorId", Value: 1}},
	}); err != nil {
		return err
	}

	_, err := s.db.Collection(collApplications).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "jobId", Value: 1}},
	})
	return err
}

// CreateAdmin inserts a new admin
func (s *MongoStore) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	if admin.ID == "" {
		admin.ID = models.NewID()
	}
	admin.CreatedAt = s.now()
	admin.UpdatedAt = admin.CreatedAt
	_, err := s.db.Collection(collAdmins).InsertOne(ctx, admin)
	return translateMongo(err)
}

// FindAdmin finds an admin by id
func (s *MongoStore) FindAdmin(ctx context.Context, id string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.findOne(ctx, collAdmins, bson.M{"_id": id}, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// FindAdminByUsername finds an admin by username
func (s *MongoStore) FindAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.findOne(ctx, collAdmins, bson.M{"username": username}, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// CreateUser inserts a new user
func (s *MongoStore) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = models.NewID()
	}
	user.CreatedAt = s.now()
	user.UpdatedAt = user.CreatedAt
	_, err := s.db.Collection(collUsers).InsertOne(ctx, user)
	return translateMongo(err)
}

// FindUserByUsername finds a user by username
func (s *MongoStore) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.findOne(ctx, collUsers, bson.M{"username": username}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user by id
func (s *MongoStore) DeleteUser(ctx context.Context, id string) error {
	_, err := s.db.Collection(collUsers).DeleteOne(ctx, bson.M{"_id": id})
	return translateMongo(err)
}

// CreateProfile inserts a profile. The ID must already be set to the user's ID.
func (s *MongoStore) CreateProfile(ctx context.Context, profile *models.Profile) error {
	if profile.ID == "" {
		return errors.New("profile id is required")
	}
	profile.CreatedAt = s.now()
	profile.UpdatedAt = profile.CreatedAt
	_, err := s.db.Collection(collProfiles).InsertOne(ctx, profile)
	return translateMongo(err)
}

// FindProfile finds a profile by id
func (s *MongoStore) FindProfile(ctx context.Context, id string) (*models.Profile, error) {
	var profile models.Profile
	if err := s.findOne(ctx, collProfiles, bson.M{"_id": id}, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile sets the supplied profile fields and returns the result
func (s *MongoStore) UpdateProfile(ctx context.Context, id string, fields models.ProfileFields) (*models.Profile, error) {
	set := bson.M{"updatedAt": s.now()}
	if fields.ProfileImageURL != nil {
		set["profileImageUrl"] = *fields.ProfileImageURL
	}
	if fields.Name != nil {
		set["name"] = *fields.Name
	}
	if fields.ShortBio != nil {
		set["shortBio"] = *fields.ShortBio
	}

	var profile models.Profile
	if err := s.findOneAndSet(ctx, collProfiles, id, set, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// CreateJob inserts a new job
func (s *MongoStore) CreateJob(ctx context.Context, job *models.Job) error {
	if job.ID == "" {
		job.ID = models.NewID()
	}
	job.CreatedAt = s.now()
	job.UpdatedAt = job.CreatedAt
	_, err := s.db.Collection(collJobs).InsertOne(ctx, job)
	return translateMongo(err)
}

// FindJob finds a job by id
func (s *MongoStore) FindJob(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	if err := s.findOne(ctx, collJobs, bson.M{"_id": id}, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// FindJobs lists jobs in creation order
func (s *MongoStore) FindJobs(ctx context.Context, filter JobFilter) ([]models.Job, error) {
	query := bson.M{}
	if filter.CreatorID != "" {
		query["creatorId"] = filter.CreatorID
	}

	jobs := []models.Job{}
	if err := s.findMany(ctx, collJobs, query, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// UpdateJob sets the supplied job fields atomically and returns the result
func (s *MongoStore) UpdateJob(ctx context.Context, id string, fields models.JobFields) (*models.Job, error) {
	set := bson.M{"updatedAt": s.now()}
	if fields.Title != nil {
		set["title"] = *fields.Title
	}
	if fields.Rating != nil {
		set["rating"] = fields.Rating.Float64()
	}
	if fields.CompanyLogoURL != nil {
		set["companyLogoUrl"] = *fields.CompanyLogoURL
	}
	if fields.Location != nil {
		set["location"] = *fields.Location
	}
	if fields.JobDescription != nil {
		set["jobDescription"] = *fields.JobDescription
	}
	if fields.EmploymentType != nil {
		set["employmentType"] = *fields.EmploymentType
	}
	if fields.PackagePerAnnum != nil {
		set["packagePerAnnum"] = fields.PackagePerAnnum.String()
	}

	var job models.Job
	if err := s.findOneAndSet(ctx, collJobs, id, set, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// DeleteJob deletes a job scoped to its creator
func (s *MongoStore) DeleteJob(ctx context.Context, id, creatorID string) (int64, error) {
	res, err := s.db.Collection(collJobs).DeleteOne(ctx, bson.M{"_id": id, "creatorId": creatorID})
	if err != nil {
		return 0, translateMongo(err)
	}
	return res.DeletedCount, nil
}

// CreateApplication inserts a new job application
func (s *MongoStore) CreateApplication(ctx context.Context, application *models.JobApplication) error {
	if application.ID == "" {
		application.ID = models.NewID()
	}
	application.CreatedAt = s.now()
	_, err := s.db.Collection(collApplications).InsertOne(ctx, application)
	return translateMongo(err)
}

// FindApplication finds a job application by id
func (s *MongoStore) FindApplication(ctx context.Context, id string) (*models.JobApplication, error) {
	var application models.JobApplication
	if err := s.findOne(ctx, collApplications, bson.M{"_id": id}, &application); err != nil {
		return nil, err
	}
	return &application, nil
}

// FindApplicationsByUser lists a user's applications in creation order
func (s *MongoStore) FindApplicationsByUser(ctx context.Context, userID string) ([]models.JobApplication, error) {
	applications := []models.JobApplication{}
	if err := s.findMany(ctx, collApplications, bson.M{"userId": userID}, &applications); err != nil {
		return nil, err
	}
	return applications, nil
}

// HasApplied reports whether any application matches (userID, jobID)
func (s *MongoStore) HasApplied(ctx context.Context, userID, jobID string) (bool, error) {
	count, err := s.db.Collection(collApplications).CountDocuments(ctx,
		bson.M{"userId": userID, "jobId": jobID},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, translateMongo(err)
	}
	return count > 0, nil
}

// DeleteApplication removes a job application by id
func (s *MongoStore) DeleteApplication(ctx context.Context, id string) error {
	_, err := s.db.Collection(collApplications).DeleteOne(ctx, bson.M{"_id": id})
	return translateMongo(err)
}

// Ping checks the primary is reachable
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) findOne(ctx context.Context, coll string, filter bson.M, out interface{}) error {
	return translateMongo(s.db.Collection(coll).FindOne(ctx, filter).Decode(out))
}

func (s *MongoStore) findMany(ctx context.Context, coll string, filter bson.M, out interface{}) error {
	// UUIDv7 ids sort by creation time
	cursor, err := s.db.Collection(coll).Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return translateMongo(err)
	}
	return translateMongo(cursor.All(ctx, out))
}

func (s *MongoStore) findOneAndSet(ctx context.Context, coll, id string, set bson.M, out interface{}) error {
	res := s.db.Collection(coll).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	return translateMongo(res.Decode(out))
}

// translateMongo maps driver errors onto the store sentinels
func translateMongo(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return errors.Join(ErrDuplicateKey, err)
	default:
		return err
	}
}

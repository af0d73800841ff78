package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devconnector/api/internal/core/domain"
	"github.com/devconnector/api/internal/core/ports"
)

const profilesCollection = "profiles"

// ProfileRepository implements ports.ProfileRepository using MongoDB.
type ProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{coll: db.Collection(profilesCollection)}
}

// Upsert writes only the supplied fields with a sparse $set document and
// creates the profile with the owner set when absent. Social links use
// dotted paths so unset links survive an update.
func (r *ProfileRepository) Upsert(ctx context.Context, userID string, fields ports.ProfileFields) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	setIfPresent := func(key, val string) {
		if val != "" {
			set[key] = val
		}
	}
	setIfPresent("company", fields.Company)
	setIfPresent("website", fields.Website)
	setIfPresent("location", fields.Location)
	setIfPresent("status", fields.Status)
	setIfPresent("bio", fields.Bio)
	setIfPresent("github_username", fields.GithubUsername)
	setIfPresent("social.youtube", fields.Youtube)
	setIfPresent("social.twitter", fields.Twitter)
	setIfPresent("social.facebook", fields.Facebook)
	setIfPresent("social.linkedin", fields.Linkedin)
	setIfPresent("social.instagram", fields.Instagram)
	if fields.Skills != nil {
		set["skills"] = fields.Skills
	}

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID().Hex(),
			"user":       userID,
			"experience": []domain.Experience{},
			"education":  []domain.Education{},
			"created_at": time.Now().UTC(),
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var profile domain.Profile
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"user": userID}, update, opts).Decode(&profile); err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}
	return &profile, nil
}

func (r *ProfileRepository) FindByUser(ctx context.Context, userID string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var profile domain.Profile
	if err := r.coll.FindOne(ctx, bson.M{"user": userID}).Decode(&profile); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return &profile, nil
}

func (r *ProfileRepository) FindAll(ctx context.Context) ([]*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer cur.Close(ctx)

	profiles := []*domain.Profile{}
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	return profiles, nil
}

// Save replaces the stored experience and education sequences. The write is
// not versioned; concurrent saves to the same profile are last-write-wins.
func (r *ProfileRepository) Save(ctx context.Context, profile *domain.Profile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"experience": profile.Experience,
		"education":  profile.Education,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": profile.ID}, update)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepository) DeleteByUser(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"user": userID})
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

// EnsureIndexes creates the unique owner index enforcing one profile per user.
func (r *ProfileRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

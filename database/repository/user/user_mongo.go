package userRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courtside/database"
	"courtside/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo() UserRepository {
	coll := database.Collection("users")
	repo := &MongoUserRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoUserRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "uid", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoUserRepo) GetByUID(uid string) (*models.UserProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.UserProfile
	if err := r.coll.FindOne(ctx, bson.M{"uid": uid}).Decode(&profile); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user profile %s: %w", uid, err)
	}
	return &profile, nil
}

func (r *MongoUserRepo) GetAll() ([]models.UserProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "displayName", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query user profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.UserProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode user profiles: %w", err)
	}
	return profiles, nil
}

func (r *MongoUserRepo) Create(profile models.UserProfile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, profile); err != nil {
		return fmt.Errorf("failed to insert user profile: %w", err)
	}
	return nil
}

func (r *MongoUserRepo) UpdateFields(uid string, set map[string]any, unset []string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc := bson.M{}
	if len(set) > 0 {
		updateDoc["$set"] = set
	}
	if len(unset) > 0 {
		unsetDoc := bson.M{}
		for _, field := range unset {
			unsetDoc[field] = ""
		}
		updateDoc["$unset"] = unsetDoc
	}
	if len(updateDoc) == 0 {
		return fmt.Errorf("no updatable fields provided")
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"uid": uid}, updateDoc)
	if err != nil {
		return fmt.Errorf("failed to update user profile %s: %w", uid, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

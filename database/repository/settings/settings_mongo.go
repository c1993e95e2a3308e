package settingsRepo

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

// Singleton document ids, mirroring the documents the web client reads.
const (
	announcementDocID = "main"
	appSettingsDocID  = "default"
)

// MongoSettingsRepo implements SettingsRepository using MongoDB.
type MongoSettingsRepo struct {
	announcements *mongo.Collection
	appSettings   *mongo.Collection
}

// NewMongoSettingsRepo creates a new instance of SettingsRepository using MongoDB.
func NewMongoSettingsRepo() SettingsRepository {
	return &MongoSettingsRepo{
		announcements: database.Collection("announcements"),
		appSettings:   database.Collection("appSettings"),
	}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSettingsRepo) GetAnnouncement() (*models.Announcement, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var a models.Announcement
	if err := r.announcements.FindOne(ctx, bson.M{"_id": announcementDocID}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch announcement: %w", err)
	}
	return &a, nil
}

func (r *MongoSettingsRepo) UpsertAnnouncement(set map[string]any, unset []string) error {
	return upsertDoc(r.announcements, announcementDocID, set, unset)
}

func (r *MongoSettingsRepo) GetAppSettings() (*models.AppSettings, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var s models.AppSettings
	if err := r.appSettings.FindOne(ctx, bson.M{"_id": appSettingsDocID}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch app settings: %w", err)
	}
	return &s, nil
}

func (r *MongoSettingsRepo) UpsertAppSettings(set map[string]any, unset []string) error {
	return upsertDoc(r.appSettings, appSettingsDocID, set, unset)
}

// upsertDoc merges fields into a singleton document, creating it on first write.
func upsertDoc(coll *mongo.Collection, docID string, set map[string]any, unset []string) error {
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

	opts := options.Update().SetUpsert(true)
	if _, err := coll.UpdateOne(ctx, bson.M{"_id": docID}, updateDoc, opts); err != nil {
		return fmt.Errorf("failed to upsert %s document: %w", docID, err)
	}
	return nil
}

package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courtside/database"
	"courtside/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}

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
// Note: there is deliberately no uniqueness constraint on the interval;
// conflict checking is a read-then-validate step in the service layer.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "startTime", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "opponentUserId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// filterQuery translates a BookingFilter into a Mongo query document.
func filterQuery(base bson.M, filter models.BookingFilter) bson.M {
	if filter.From != nil {
		base["startTime"] = bson.M{"$gte": *filter.From}
	}
	if filter.To != nil {
		base["endTime"] = bson.M{"$lte": *filter.To}
	}
	if filter.Status != nil {
		base["status"] = *filter.Status
	}
	return base
}

func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var b models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &b, nil
}

func (r *MongoBookingRepo) List(filter models.BookingFilter) ([]models.Booking, error) {
	return r.find(filterQuery(bson.M{}, filter))
}

func (r *MongoBookingRepo) ListByUser(userID string, filter models.BookingFilter) ([]models.Booking, error) {
	return r.find(filterQuery(bson.M{"userId": userID}, filter))
}

// ListInvolving combines creator and opponent matches, deduplicated by id.
func (r *MongoBookingRepo) ListInvolving(userID string, filter models.BookingFilter) ([]models.Booking, error) {
	query := filterQuery(bson.M{}, filter)
	query["$or"] = bson.A{
		bson.M{"userId": userID},
		bson.M{"opponentUserId": userID},
	}
	return r.find(query)
}

func (r *MongoBookingRepo) ListBookedBetween(from, to time.Time) ([]models.Booking, error) {
	// Interval intersection over half-open ranges: startTime < to && endTime > from.
	query := bson.M{
		"status":    models.BookingStatusBooked,
		"startTime": bson.M{"$lt": to},
		"endTime":   bson.M{"$gt": from},
	}
	return r.find(query)
}

func (r *MongoBookingRepo) find(query bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) Create(candidate models.BookingCreate) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	b := models.Booking{
		ID:        uuid.New().String(),
		UserID:    candidate.UserID,
		StartTime: candidate.StartTime,
		EndTime:   candidate.EndTime,
		Status:    models.BookingStatusBooked,
		CreatedAt: time.Now().UTC(),
	}
	// Only persist a non-blank opponent; absent means "no opponent".
	if candidate.OpponentUserID != "" {
		b.OpponentUserID = candidate.OpponentUserID
	}

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}
	return &b, nil
}

func (r *MongoBookingRepo) Update(id string, update models.BookingUpdate) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	setFields := bson.M{}
	unsetFields := bson.M{}

	if update.Status != nil {
		setFields["status"] = *update.Status
	}
	if update.OpponentUserID != nil {
		if *update.OpponentUserID == "" {
			// Empty string is the explicit "remove opponent" sentinel.
			unsetFields["opponentUserId"] = ""
		} else {
			setFields["opponentUserId"] = *update.OpponentUserID
		}
	}

	updateDoc := bson.M{}
	if len(setFields) > 0 {
		updateDoc["$set"] = setFields
	}
	if len(unsetFields) > 0 {
		updateDoc["$unset"] = unsetFields
	}
	if len(updateDoc) == 0 {
		return fmt.Errorf("no updatable fields provided")
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, updateDoc)
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoBookingRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete booking %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

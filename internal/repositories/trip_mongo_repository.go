package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tripwise/internal/models/trip_models"
)

// TripMongoRepository stores one document per trip, keyed by the trip ID.
type TripMongoRepository struct {
	coll *mongo.Collection
}

func NewTripMongoRepository(db *mongo.Database) *TripMongoRepository {
	return &TripMongoRepository{coll: db.Collection(tripsCollection)}
}

// EnsureIndexes creates the owner listing index.
func (r *TripMongoRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create trip indexes: %w", err)
	}
	return nil
}

func (r *TripMongoRepository) Save(ctx context.Context, trip trip_models.SavedTrip) (string, error) {
	if trip.ID == "" {
		trip.ID = uuid.NewString()
	}
	if trip.CreatedAt.IsZero() {
		trip.CreatedAt = time.Now().UTC()
	}

	if _, err := r.coll.InsertOne(ctx, trip); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return trip.ID, nil
		}
		return "", fmt.Errorf("failed to insert trip: %w", err)
	}
	return trip.ID, nil
}

func (r *TripMongoRepository) ListByOwner(ctx context.Context, ownerID string) ([]trip_models.SavedTrip, error) {
	filter := bson.M{}
	if ownerID != "" {
		filter["ownerId"] = ownerID
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer cursor.Close(ctx)

	trips := make([]trip_models.SavedTrip, 0)
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, fmt.Errorf("failed to decode trips: %w", err)
	}
	return trips, nil
}

func (r *TripMongoRepository) GetByID(ctx context.Context, id string) (*trip_models.SavedTrip, error) {
	var trip trip_models.SavedTrip
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&trip)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch trip %s: %w", id, err)
	}
	return &trip, nil
}

func (r *TripMongoRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete trip %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}

package repositories

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tripwise/internal/models/trip_models"
)

const tripsCollection = "trips"

type tripFirestoreRepository struct {
	client *firestore.Client
}

func NewTripFirestoreRepository(client *firestore.Client) TripRepository {
	return &tripFirestoreRepository{client: client}
}

func (r *tripFirestoreRepository) Save(ctx context.Context, trip trip_models.SavedTrip) (string, error) {
	col := r.client.Collection(tripsCollection)

	var doc *firestore.DocumentRef
	if trip.ID == "" {
		doc = col.NewDoc()
	} else {
		doc = col.Doc(trip.ID)
	}

	// Create fails on an existing document, which is what makes retries idempotent.
	if _, err := doc.Create(ctx, trip); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return doc.ID, nil
		}
		return "", err
	}
	return doc.ID, nil
}

// ListByOwner sorts in process so the query needs no composite index.
func (r *tripFirestoreRepository) ListByOwner(ctx context.Context, ownerID string) ([]trip_models.SavedTrip, error) {
	q := r.client.Collection(tripsCollection).Query
	if ownerID != "" {
		q = q.Where("ownerId", "==", ownerID)
	}

	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	trips := make([]trip_models.SavedTrip, 0, len(snaps))
	for _, snap := range snaps {
		var t trip_models.SavedTrip
		if err := snap.DataTo(&t); err != nil {
			return nil, err
		}
		t.ID = snap.Ref.ID
		trips = append(trips, t)
	}
	sortNewestFirst(trips)
	return trips, nil
}

func (r *tripFirestoreRepository) GetByID(ctx context.Context, id string) (*trip_models.SavedTrip, error) {
	snap, err := r.client.Collection(tripsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var t trip_models.SavedTrip
	if err := snap.DataTo(&t); err != nil {
		return nil, err
	}
	t.ID = snap.Ref.ID
	return &t, nil
}

func (r *tripFirestoreRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	_, err := r.client.Collection(tripsCollection).Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

package repositories

import (
	"context"
	"sort"

	"tripwise/internal/models/trip_models"
)

// TripRepository persists saved trips. Implementations must be safe for
// concurrent use. GetByID returns nil, nil when the trip does not exist.
// Save is idempotent on ID: saving a trip whose ID already exists leaves the
// stored record untouched and returns that ID.
type TripRepository interface {
	Save(ctx context.Context, trip trip_models.SavedTrip) (string, error)
	ListByOwner(ctx context.Context, ownerID string) ([]trip_models.SavedTrip, error)
	GetByID(ctx context.Context, id string) (*trip_models.SavedTrip, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

// sortNewestFirst orders by CreatedAt descending, falling back to ID for a stable order.
func sortNewestFirst(trips []trip_models.SavedTrip) {
	sort.SliceStable(trips, func(i, j int) bool {
		if !trips[i].CreatedAt.Equal(trips[j].CreatedAt) {
			return trips[i].CreatedAt.After(trips[j].CreatedAt)
		}
		return trips[i].ID > trips[j].ID
	})
}

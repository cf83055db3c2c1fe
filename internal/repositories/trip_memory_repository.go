package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"tripwise/internal/models/trip_models"
)

type memoryTrip struct {
	trip trip_models.SavedTrip
	seq  uint64
}

// TripMemoryRepository keeps trips in process memory. Data is lost on restart.
type TripMemoryRepository struct {
	mu    sync.RWMutex
	trips map[string]memoryTrip
	seq   uint64
	now   func() time.Time
}

func NewTripMemoryRepository() *TripMemoryRepository {
	return NewTripMemoryRepositoryWithClock(time.Now)
}

func NewTripMemoryRepositoryWithClock(now func() time.Time) *TripMemoryRepository {
	return &TripMemoryRepository{
		trips: make(map[string]memoryTrip),
		now:   now,
	}
}

func (r *TripMemoryRepository) Save(ctx context.Context, trip trip_models.SavedTrip) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if trip.ID == "" {
		trip.ID = uuid.NewString()
	}
	if existing, ok := r.trips[trip.ID]; ok {
		return existing.trip.ID, nil
	}
	if trip.CreatedAt.IsZero() {
		trip.CreatedAt = r.now().UTC()
	}

	r.seq++
	r.trips[trip.ID] = memoryTrip{trip: trip.Clone(), seq: r.seq}
	return trip.ID, nil
}

func (r *TripMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]trip_models.SavedTrip, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	entries := make([]memoryTrip, 0, len(r.trips))
	for _, e := range r.trips {
		if ownerID == "" || e.trip.OwnerID == ownerID {
			entries = append(entries, e)
		}
	}
	r.mu.RUnlock()

	// Insertion order breaks CreatedAt ties so equal timestamps still list newest first.
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.trip.CreatedAt.Equal(b.trip.CreatedAt) {
			return a.trip.CreatedAt.After(b.trip.CreatedAt)
		}
		return a.seq > b.seq
	})

	out := make([]trip_models.SavedTrip, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.trip.Clone())
	}
	return out, nil
}

func (r *TripMemoryRepository) GetByID(ctx context.Context, id string) (*trip_models.SavedTrip, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.trips[id]
	if !ok {
		return nil, nil
	}
	trip := e.trip.Clone()
	return &trip, nil
}

func (r *TripMemoryRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trips[id]; !ok {
		return false, nil
	}
	delete(r.trips, id)
	return true, nil
}

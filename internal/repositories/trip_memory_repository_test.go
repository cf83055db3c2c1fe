package repositories_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripwise/internal/models/trip_models"
	"tripwise/internal/repositories"
)

var _ repositories.TripRepository = (*repositories.TripMemoryRepository)(nil)

func sampleTrip(owner, name string) trip_models.SavedTrip {
	return trip_models.SavedTrip{
		OwnerID:     owner,
		Name:        name,
		Destination: "Lisbon",
		Request: trip_models.TripRequest{
			Destination: "Lisbon",
			Duration:    "3 days",
			Budget:      "moderate",
			Interests:   []string{"food", "history"},
		},
		Itinerary: trip_models.TripItinerary{
			Summary: "Three days in Lisbon",
			Days: []trip_models.Day{{
				Day:   1,
				Title: "Alfama",
				Activities: []trip_models.Activity{{
					Time:        "09:00",
					Title:       "Castle",
					Description: "Castelo de S. Jorge",
					MapLink:     "https://www.google.com/maps/search/?api=1&query=Castelo+de+S.+Jorge",
				}},
			}},
			Tips: []string{"Wear good shoes"},
		},
	}
}

// fixedClock returns the same instant for every save.
func fixedClock() func() time.Time {
	at := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestTripMemoryRepository_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewTripMemoryRepository()

	in := sampleTrip("user-1", "Lisbon weekend")
	id, err := repo.Save(ctx, in)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)
	assert.False(t, got.CreatedAt.IsZero())

	want := in
	want.ID = id
	want.CreatedAt = got.CreatedAt
	if diff := cmp.Diff(want, *got); diff != "" {
		t.Errorf("stored trip mismatch (-want +got):\n%s", diff)
	}
}

func TestTripMemoryRepository_GetMissing(t *testing.T) {
	repo := repositories.NewTripMemoryRepository()

	got, err := repo.GetByID(context.Background(), "nope")

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTripMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewTripMemoryRepository()

	in := sampleTrip("user-1", "Lisbon")
	id, err := repo.Save(ctx, in)
	require.NoError(t, err)

	in.Request.Interests[0] = "mutated"
	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	got.Itinerary.Days[0].Title = "mutated"

	again, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "food", again.Request.Interests[0])
	assert.Equal(t, "Alfama", again.Itinerary.Days[0].Title)
}

func TestTripMemoryRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	// Identical timestamps: insertion order must still decide.
	repo := repositories.NewTripMemoryRepositoryWithClock(fixedClock())

	first, err := repo.Save(ctx, sampleTrip("user-1", "first"))
	require.NoError(t, err)
	_, err = repo.Save(ctx, sampleTrip("user-2", "other owner"))
	require.NoError(t, err)
	second, err := repo.Save(ctx, sampleTrip("user-1", "second"))
	require.NoError(t, err)

	trips, err := repo.ListByOwner(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, second, trips[0].ID)
	assert.Equal(t, first, trips[1].ID)

	all, err := repo.ListByOwner(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "second", all[0].Name)
}

func TestTripMemoryRepository_ListByCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewTripMemoryRepository()

	older := sampleTrip("user-1", "older")
	older.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := sampleTrip("user-1", "newer")
	newer.CreatedAt = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	_, err := repo.Save(ctx, newer)
	require.NoError(t, err)
	_, err = repo.Save(ctx, older)
	require.NoError(t, err)

	trips, err := repo.ListByOwner(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, "newer", trips[0].Name)
	assert.Equal(t, "older", trips[1].Name)
}

func TestTripMemoryRepository_ListEmptyIsNotNil(t *testing.T) {
	trips, err := repositories.NewTripMemoryRepository().ListByOwner(context.Background(), "ghost")

	require.NoError(t, err)
	assert.NotNil(t, trips)
	assert.Empty(t, trips)
}

func TestTripMemoryRepository_SaveIsIdempotentOnID(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewTripMemoryRepository()

	trip := sampleTrip("user-1", "original")
	trip.ID = trip_models.DeriveTripID("user-1", "req-1")

	id1, err := repo.Save(ctx, trip)
	require.NoError(t, err)

	trip.Name = "replayed"
	id2, err := repo.Save(ctx, trip)
	require.NoError(t, err)

	assert.Equal(t, id1, id2)
	got, err := repo.GetByID(ctx, id1)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Name)

	trips, err := repo.ListByOwner(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, trips, 1)
}

func TestTripMemoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewTripMemoryRepository()

	id, err := repo.Save(ctx, sampleTrip("user-1", "gone soon"))
	require.NoError(t, err)

	deleted, err := repo.DeleteByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)

	deleted, err = repo.DeleteByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestTripMemoryRepository_ConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewTripMemoryRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Save(ctx, sampleTrip("user-1", "concurrent"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	trips, err := repo.ListByOwner(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, trips, 50)
}

func TestTripMemoryRepository_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repositories.NewTripMemoryRepository().Save(ctx, sampleTrip("user-1", "x"))

	require.ErrorIs(t, err, context.Canceled)
}

package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripwise/internal/models/db_models"
	"tripwise/internal/models/trip_models"
	"tripwise/pkg/utils"
)

type tripGormRepository struct {
	db *gorm.DB
}

func NewTripGormRepository(db *gorm.DB) TripRepository {
	return &tripGormRepository{db: db}
}

func (r *tripGormRepository) Save(ctx context.Context, trip trip_models.SavedTrip) (string, error) {
	row, err := toTripRow(trip)
	if err != nil {
		return "", err
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&row)
	if res.Error != nil {
		return "", res.Error
	}
	return row.ID.String(), nil
}

func (r *tripGormRepository) ListByOwner(ctx context.Context, ownerID string) ([]trip_models.SavedTrip, error) {
	var rows []db_models.Trip
	q := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC")
	if ownerID != "" {
		q = q.Where("owner_id = ?", ownerID)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	trips := make([]trip_models.SavedTrip, 0, len(rows))
	for i := range rows {
		t, err := fromTripRow(&rows[i])
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, nil
}

func (r *tripGormRepository) GetByID(ctx context.Context, id string) (*trip_models.SavedTrip, error) {
	tripID, err := uuid.Parse(id)
	if err != nil {
		// Not a key this table could hold.
		return nil, nil
	}

	var row db_models.Trip
	err = r.db.WithContext(ctx).Where("id = ?", tripID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	t, err := fromTripRow(&row)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tripGormRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	tripID, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	res := r.db.WithContext(ctx).Where("id = ?", tripID).Delete(&db_models.Trip{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func toTripRow(trip trip_models.SavedTrip) (db_models.Trip, error) {
	var row db_models.Trip

	if trip.ID != "" {
		id, err := uuid.Parse(trip.ID)
		if err != nil {
			return row, fmt.Errorf("invalid trip id %q: %w", trip.ID, err)
		}
		row.ID = id
	}
	if !trip.CreatedAt.IsZero() {
		row.CreatedAt = trip.CreatedAt.UnixMilli()
	}

	request, err := json.Marshal(trip.Request)
	if err != nil {
		return row, fmt.Errorf("encode trip request: %w", err)
	}
	itinerary, err := json.Marshal(trip.Itinerary)
	if err != nil {
		return row, fmt.Errorf("encode itinerary: %w", err)
	}

	row.OwnerID = trip.OwnerID
	row.Name = trip.Name
	row.Destination = trip.Destination
	row.RequestID = trip.RequestID
	row.Interests = pq.StringArray(trip.Request.Interests)
	row.Request = datatypes.JSON(request)
	row.Itinerary = datatypes.JSON(itinerary)
	return row, nil
}

func fromTripRow(row *db_models.Trip) (trip_models.SavedTrip, error) {
	trip := trip_models.SavedTrip{
		ID:          row.ID.String(),
		OwnerID:     row.OwnerID,
		Name:        row.Name,
		Destination: row.Destination,
		RequestID:   row.RequestID,
		CreatedAt:   utils.FromUnixMillis(row.CreatedAt),
	}
	if err := json.Unmarshal(row.Request, &trip.Request); err != nil {
		return trip, fmt.Errorf("decode trip %s request: %w", trip.ID, err)
	}
	if err := json.Unmarshal(row.Itinerary, &trip.Itinerary); err != nil {
		return trip, fmt.Errorf("decode trip %s itinerary: %w", trip.ID, err)
	}
	return trip, nil
}

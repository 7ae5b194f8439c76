package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mapsplanner/internal/models/db_models"
)

type MarkerRepository interface {
	InsertBatch(ctx context.Context, markers []db_models.Marker) ([]db_models.Marker, error)
	Update(ctx context.Context, marker *db_models.Marker) error
	Delete(ctx context.Context, marker *db_models.Marker) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Marker, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]db_models.Marker, error)
}

type markerRepository struct {
	db *gorm.DB
}

func NewMarkerRepository(db *gorm.DB) MarkerRepository {
	return &markerRepository{db: db}
}

func (m *markerRepository) InsertBatch(ctx context.Context, markers []db_models.Marker) ([]db_models.Marker, error) {
	if len(markers) == 0 {
		return markers, nil
	}
	if err := m.db.WithContext(ctx).Create(&markers).Error; err != nil {
		return nil, err
	}
	return markers, nil
}

func (m *markerRepository) Update(ctx context.Context, marker *db_models.Marker) error {
	return m.db.WithContext(ctx).Save(marker).Error
}

func (m *markerRepository) Delete(ctx context.Context, marker *db_models.Marker) error {
	return m.db.WithContext(ctx).Delete(marker).Error
}

// FindByID loads the marker together with its owning trip, so callers can
// apply the trip's access scope.
func (m *markerRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Marker, error) {
	var marker db_models.Marker
	err := m.db.WithContext(ctx).
		Preload("Trip").
		First(&marker, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &marker, nil
}

func (m *markerRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]db_models.Marker, error) {
	var markers []db_models.Marker
	err := m.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("created_at ASC").
		Find(&markers).Error
	if err != nil {
		return nil, err
	}
	return markers, nil
}

package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mapsplanner/internal/models/db_models"
)

// TripListFilter narrows the scoped trip listing. Name and Description are
// partial, case-insensitive matches; Search spans both fields.
type TripListFilter struct {
	Name         string
	Description  string
	Search       string
	CreatedStart *time.Time
	CreatedEnd   *time.Time
}

type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.Trip) error
	Update(ctx context.Context, trip *db_models.Trip) error
	Delete(ctx context.Context, trip *db_models.Trip) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Trip, error)
	FindByIDWithMarkers(ctx context.Context, id uuid.UUID) (*db_models.Trip, error)
	ListScoped(ctx context.Context, user *db_models.User, impersonate string, page int, filter TripListFilter) ([]db_models.Trip, error)
	IDsOwnedBy(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (t *tripRepository) Insert(ctx context.Context, trip *db_models.Trip) error {
	return t.db.WithContext(ctx).Create(trip).Error
}

func (t *tripRepository) Update(ctx context.Context, trip *db_models.Trip) error {
	return t.db.WithContext(ctx).Save(trip).Error
}

func (t *tripRepository) Delete(ctx context.Context, trip *db_models.Trip) error {
	return t.db.WithContext(ctx).Delete(trip).Error
}

func (t *tripRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := t.db.WithContext(ctx).First(&trip, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (t *tripRepository) FindByIDWithMarkers(ctx context.Context, id uuid.UUID) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := t.db.WithContext(ctx).
		Preload("Markers", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&trip, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (t *tripRepository) ListScoped(
	ctx context.Context,
	user *db_models.User,
	impersonate string,
	page int,
	filter TripListFilter,
) ([]db_models.Trip, error) {

	query := t.db.WithContext(ctx).
		Scopes(
			OwnerScope(user, impersonate),
			CreatedBetween(filter.CreatedStart, filter.CreatedEnd),
			OrderDesc("created_at"),
			Paginate(page),
		)

	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Name+"%")
	}
	if filter.Description != "" {
		query = query.Where("LOWER(description) LIKE LOWER(?)", "%"+filter.Description+"%")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}

	var trips []db_models.Trip
	if err := query.Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func (t *tripRepository) IDsOwnedBy(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := t.db.WithContext(ctx).
		Model(&db_models.Trip{}).
		Where("user_id = ?", userID).
		Pluck("id", &ids).Error
	return ids, err
}

package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mapsplanner/internal/models/db_models"
)

type UserRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	Update(ctx context.Context, user *db_models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	CountTrips(ctx context.Context, userID uuid.UUID) (int64, error)
	CountMarkers(ctx context.Context, userID uuid.UUID) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (u *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return u.db.WithContext(ctx).Create(user).Error
}

func (u *userRepository) Update(ctx context.Context, user *db_models.User) error {
	return u.db.WithContext(ctx).Save(user).Error
}

func (u *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (u *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (u *userRepository) CountTrips(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	err := u.db.WithContext(ctx).
		Model(&db_models.Trip{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

func (u *userRepository) CountMarkers(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	err := u.db.WithContext(ctx).
		Model(&db_models.Marker{}).
		Joins("JOIN trips ON trips.id = markers.trip_id").
		Where("trips.user_id = ?", userID).
		Count(&total).Error
	return total, err
}

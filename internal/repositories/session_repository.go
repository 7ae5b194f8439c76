package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"mapsplanner/internal/models/db_models"
)

type SessionRepository interface {
	Insert(ctx context.Context, session *db_models.Session) error
	FindByToken(ctx context.Context, token string) (*db_models.Session, error)
	DeleteByToken(ctx context.Context, token string) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (s *sessionRepository) Insert(ctx context.Context, session *db_models.Session) error {
	return s.db.WithContext(ctx).Create(session).Error
}

func (s *sessionRepository) FindByToken(ctx context.Context, token string) (*db_models.Session, error) {
	var session db_models.Session
	err := s.db.WithContext(ctx).
		Preload("User").
		First(&session, "token = ?", token).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &session, nil
}

// DeleteByToken is idempotent; deleting an unknown token is not an error.
func (s *sessionRepository) DeleteByToken(ctx context.Context, token string) error {
	return s.db.WithContext(ctx).
		Delete(&db_models.Session{}, "token = ?", token).Error
}

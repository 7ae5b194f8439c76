package services

import (
	"context"

	"mapsplanner/internal/models/db_models"
	"mapsplanner/internal/repositories"
	"mapsplanner/pkg/utils"
)

type SessionServiceInterface interface {
	CreateSession(ctx context.Context, user *db_models.User) (*db_models.Session, error)
	ResolveSession(ctx context.Context, token string) (*db_models.Session, error)
	DestroySession(ctx context.Context, token string) error
}

type SessionService struct {
	sessionRepo repositories.SessionRepository
}

func NewSessionService(sessionRepo repositories.SessionRepository) SessionServiceInterface {
	return &SessionService{
		sessionRepo: sessionRepo,
	}
}

// CreateSession issues a fresh opaque token bound to the user. The session
// lives until DestroySession; there is no expiry.
func (s *SessionService) CreateSession(ctx context.Context, user *db_models.User) (*db_models.Session, error) {
	token, err := utils.GenerateSecureToken(utils.DefaultTokenLength)
	if err != nil {
		return nil, err
	}

	session := &db_models.Session{
		Token:  token,
		UserID: user.ID,
	}

	if err := s.sessionRepo.Insert(ctx, session); err != nil {
		return nil, utils.ErrDatabaseError
	}

	session.User = *user
	return session, nil
}

// ResolveSession returns nil for an unknown token.
func (s *SessionService) ResolveSession(ctx context.Context, token string) (*db_models.Session, error) {
	session, err := s.sessionRepo.FindByToken(ctx, token)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return session, nil
}

func (s *SessionService) DestroySession(ctx context.Context, token string) error {
	if err := s.sessionRepo.DeleteByToken(ctx, token); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

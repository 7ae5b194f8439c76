package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mapsplanner/internal/models/db_models"
	"mapsplanner/internal/models/response_models"
	"mapsplanner/internal/repositories"
	"mapsplanner/pkg/utils"
)

type UserServiceInterface interface {
	GetUserDetails(ctx context.Context, requester *db_models.User, targetID uuid.UUID) (*response_models.UserDetailsResponse, error)
	UpdateUser(ctx context.Context, requester *db_models.User, targetID uuid.UUID, patch db_models.UserPatch) (*response_models.UserResponse, error)
}

type UserService struct {
	userRepo     repositories.UserRepository
	auditService AuditServiceInterface
}

func NewUserService(userRepo repositories.UserRepository, auditService AuditServiceInterface) UserServiceInterface {
	return &UserService{
		userRepo:     userRepo,
		auditService: auditService,
	}
}

// GetUserDetails answers 404 semantics for both "no such user" and "not
// yours to see"; the two are indistinguishable on purpose.
func (u *UserService) GetUserDetails(ctx context.Context, requester *db_models.User, targetID uuid.UUID) (*response_models.UserDetailsResponse, error) {
	if !requester.CanAccess(targetID) {
		return nil, utils.ErrUserNotFound
	}

	user, err := u.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	totalTrips, err := u.userRepo.CountTrips(ctx, user.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	totalMarkers, err := u.userRepo.CountMarkers(ctx, user.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.UserDetailsResponse{
		UserResponse: response_models.ToUserResponse(user),
		RegisterDate: time.Unix(user.CreatedAt, 0).UTC(),
		BirthDate:    user.BirthDate,
		TotalTrips:   totalTrips,
		TotalMarkers: totalMarkers,
	}, nil
}

func (u *UserService) UpdateUser(ctx context.Context, requester *db_models.User, targetID uuid.UUID, patch db_models.UserPatch) (*response_models.UserResponse, error) {
	if !requester.CanAccess(targetID) {
		return nil, utils.ErrUserNotFound
	}

	user, err := u.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	changes := user.Diff(patch)
	user.Apply(patch)

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if _, err := u.auditService.Log(ctx, requester, db_models.ActionModification,
		db_models.UserTarget(user.ID), changes, nil); err != nil {
		return nil, err
	}

	response := response_models.ToUserResponse(user)
	return &response, nil
}

package services

import (
	"context"

	"github.com/google/uuid"

	"mapsplanner/internal/models/db_models"
	"mapsplanner/internal/models/request_models"
	"mapsplanner/internal/models/response_models"
	"mapsplanner/internal/repositories"
	"mapsplanner/pkg/utils"
)

type TripServiceInterface interface {
	ListTrips(ctx context.Context, user *db_models.User, impersonate string, page int, filter request_models.TripListFilter) ([]response_models.TripResponse, error)
	CreateTrip(ctx context.Context, user *db_models.User, req request_models.CreateTripRequest) (*response_models.TripResponse, error)
	GetTripDetails(ctx context.Context, user *db_models.User, tripID uuid.UUID) (*response_models.TripDetailsResponse, error)
	UpdateTrip(ctx context.Context, user *db_models.User, tripID uuid.UUID, patch db_models.TripPatch) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, user *db_models.User, tripID uuid.UUID) error
}

type TripService struct {
	tripRepo     repositories.TripRepository
	auditService AuditServiceInterface
}

func NewTripService(tripRepo repositories.TripRepository, auditService AuditServiceInterface) TripServiceInterface {
	return &TripService{
		tripRepo:     tripRepo,
		auditService: auditService,
	}
}

func (t *TripService) ListTrips(
	ctx context.Context,
	user *db_models.User,
	impersonate string,
	page int,
	filter request_models.TripListFilter,
) ([]response_models.TripResponse, error) {

	repoFilter := repositories.TripListFilter{
		Name:        filter.Name,
		Description: filter.Description,
		Search:      filter.Search,
	}

	if filter.CreationDate != "" {
		start, end, err := utils.ParseDateRange(filter.CreationDate)
		if err != nil {
			return nil, err
		}
		repoFilter.CreatedStart = start
		repoFilter.CreatedEnd = end
	}

	trips, err := t.tripRepo.ListScoped(ctx, user, impersonate, page, repoFilter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		responses = append(responses, response_models.ToTripResponse(&trips[i]))
	}
	return responses, nil
}

func (t *TripService) CreateTrip(ctx context.Context, user *db_models.User, req request_models.CreateTripRequest) (*response_models.TripResponse, error) {
	trip := &db_models.Trip{
		UserID:      user.ID,
		Name:        req.Name,
		Description: req.Description,
		Picture:     req.Picture,
	}

	if err := t.tripRepo.Insert(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if _, err := t.auditService.Log(ctx, user, db_models.ActionCreation,
		db_models.TripTarget(trip.ID), nil, nil); err != nil {
		return nil, err
	}

	response := response_models.ToTripResponse(trip)
	return &response, nil
}

func (t *TripService) GetTripDetails(ctx context.Context, user *db_models.User, tripID uuid.UUID) (*response_models.TripDetailsResponse, error) {
	trip, err := t.tripRepo.FindByIDWithMarkers(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil || !user.CanAccess(trip.UserID) {
		return nil, utils.ErrTripNotFound
	}

	response := response_models.ToTripDetailsResponse(trip)
	return &response, nil
}

func (t *TripService) UpdateTrip(ctx context.Context, user *db_models.User, tripID uuid.UUID, patch db_models.TripPatch) (*response_models.TripResponse, error) {
	trip, err := t.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil || !user.CanAccess(trip.UserID) {
		return nil, utils.ErrTripNotFound
	}

	changes := trip.Diff(patch)
	trip.Apply(patch)

	if err := t.tripRepo.Update(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if _, err := t.auditService.Log(ctx, user, db_models.ActionModification,
		db_models.TripTarget(trip.ID), changes, nil); err != nil {
		return nil, err
	}

	response := response_models.ToTripResponse(trip)
	return &response, nil
}

func (t *TripService) DeleteTrip(ctx context.Context, user *db_models.User, tripID uuid.UUID) error {
	trip, err := t.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil || !user.CanAccess(trip.UserID) {
		return utils.ErrTripNotFound
	}

	if err := t.tripRepo.Delete(ctx, trip); err != nil {
		return utils.ErrDatabaseError
	}

	if _, err := t.auditService.Log(ctx, user, db_models.ActionDeletion,
		db_models.TripTarget(trip.ID), nil, nil); err != nil {
		return err
	}

	return nil
}

package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"mapsplanner/internal/models/db_models"
	"mapsplanner/internal/models/request_models"
	"mapsplanner/internal/models/response_models"
	"mapsplanner/internal/repositories"
	"mapsplanner/pkg/utils"
)

type AuditServiceInterface interface {
	Log(ctx context.Context,
		user *db_models.User,
		action db_models.EAuditAction,
		target *db_models.AuditTarget,
		changes map[string]db_models.FieldChange,
		fields map[string]any) (*db_models.AuditLog, error)

	List(ctx context.Context, user *db_models.User, impersonate string, page int, filter request_models.AuditListFilter) ([]response_models.AuditLogResponse, error)

	// ResolveTarget fetches the entity an entry refers to, or nil when the
	// kind is unknown or the row no longer exists.
	ResolveTarget(ctx context.Context, entry *db_models.AuditLog) (any, error)
}

type AuditService struct {
	auditRepo  repositories.AuditRepository
	userRepo   repositories.UserRepository
	tripRepo   repositories.TripRepository
	markerRepo repositories.MarkerRepository
}

func NewAuditService(
	auditRepo repositories.AuditRepository,
	userRepo repositories.UserRepository,
	tripRepo repositories.TripRepository,
	markerRepo repositories.MarkerRepository,
) AuditServiceInterface {
	return &AuditService{
		auditRepo:  auditRepo,
		userRepo:   userRepo,
		tripRepo:   tripRepo,
		markerRepo: markerRepo,
	}
}

// Log persists the entry synchronously. A failed write is returned to the
// caller, never swallowed.
func (a *AuditService) Log(
	ctx context.Context,
	user *db_models.User,
	action db_models.EAuditAction,
	target *db_models.AuditTarget,
	changes map[string]db_models.FieldChange,
	fields map[string]any,
) (*db_models.AuditLog, error) {

	extra, err := db_models.EncodeAuditExtra(db_models.AuditExtra{
		Target:  target,
		Changes: changes,
		Fields:  fields,
	})
	if err != nil {
		return nil, err
	}

	entry := &db_models.AuditLog{
		Action: action,
		UserID: user.ID,
		Extra:  extra,
	}

	if err := a.auditRepo.Insert(ctx, entry); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return entry, nil
}

func (a *AuditService) List(
	ctx context.Context,
	user *db_models.User,
	impersonate string,
	page int,
	filter request_models.AuditListFilter,
) ([]response_models.AuditLogResponse, error) {

	repoFilter := repositories.AuditListFilter{
		TargetID: filter.TargetID,
	}

	if filter.Action != 0 {
		action := db_models.EAuditAction(filter.Action)
		if action < db_models.ActionCreation || action > db_models.ActionExternalQuery {
			return nil, utils.ErrInvalidInput
		}
		repoFilter.Action = &action
	}

	if filter.TargetModel != "" {
		model := db_models.EAuditTarget(filter.TargetModel)
		switch model {
		case db_models.TargetUser, db_models.TargetTrip, db_models.TargetMarker:
			repoFilter.TargetModel = model
		default:
			return nil, utils.ErrInvalidInput
		}
	}

	if filter.CreationDate != "" {
		start, end, err := utils.ParseDateRange(filter.CreationDate)
		if err != nil {
			return nil, err
		}
		repoFilter.CreatedStart = start
		repoFilter.CreatedEnd = end
	}

	entries, err := a.auditRepo.ListScoped(ctx, user, impersonate, page, repoFilter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.AuditLogResponse, 0, len(entries))
	for i := range entries {
		resp := response_models.ToAuditLogResponse(&entries[i])
		resp.TargetEntity = a.renderTarget(ctx, &entries[i])
		responses = append(responses, resp)
	}
	return responses, nil
}

// renderTarget resolves an entry's target for display. Deleted targets and
// lookup failures render as null rather than failing the whole listing.
func (a *AuditService) renderTarget(ctx context.Context, entry *db_models.AuditLog) any {
	entity, err := a.ResolveTarget(ctx, entry)
	if err != nil {
		log.Printf("Failed to resolve audit target for entry %s: %v", entry.ID, err)
		return nil
	}

	switch target := entity.(type) {
	case *db_models.User:
		return response_models.ToUserResponse(target)
	case *db_models.Trip:
		return response_models.ToTripResponse(target)
	case *db_models.Marker:
		return response_models.ToMarkerResponse(target)
	default:
		return nil
	}
}

func (a *AuditService) ResolveTarget(ctx context.Context, entry *db_models.AuditLog) (any, error) {
	extra, err := entry.DecodeExtra()
	if err != nil || extra.Target == nil || extra.Target.ID == uuid.Nil {
		return nil, nil
	}

	switch extra.Target.Model {
	case db_models.TargetUser:
		user, err := a.userRepo.FindByID(ctx, extra.Target.ID)
		if err != nil || user == nil {
			return nil, err
		}
		return user, nil
	case db_models.TargetTrip:
		trip, err := a.tripRepo.FindByID(ctx, extra.Target.ID)
		if err != nil || trip == nil {
			return nil, err
		}
		return trip, nil
	case db_models.TargetMarker:
		marker, err := a.markerRepo.FindByID(ctx, extra.Target.ID)
		if err != nil || marker == nil {
			return nil, err
		}
		return marker, nil
	default:
		return nil, nil
	}
}

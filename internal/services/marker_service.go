package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"mapsplanner/internal/models/db_models"
	"mapsplanner/internal/models/request_models"
	"mapsplanner/internal/models/response_models"
	"mapsplanner/internal/repositories"
	"mapsplanner/pkg/utils"
)

type MarkerServiceInterface interface {
	GetMarker(ctx context.Context, user *db_models.User, markerID uuid.UUID) (*response_models.MarkerResponse, error)
	ListTripMarkers(ctx context.Context, user *db_models.User, tripID uuid.UUID) ([]response_models.MarkerResponse, error)
	CreateMarkers(ctx context.Context, user *db_models.User, reqs []request_models.CreateMarkerRequest) ([]response_models.MarkerResponse, error)
	UpdateMarker(ctx context.Context, user *db_models.User, markerID uuid.UUID, patch db_models.MarkerPatch) (*response_models.MarkerResponse, error)
	DeleteMarker(ctx context.Context, user *db_models.User, markerID uuid.UUID) error
	GenerateMarkers(ctx context.Context, user *db_models.User, tripID uuid.UUID, categories []db_models.EMarkerCategory) ([]response_models.MarkerResponse, error)
	Geocoding(ctx context.Context, user *db_models.User, query string, exact bool) (json.RawMessage, error)
}

type MarkerService struct {
	markerRepo   repositories.MarkerRepository
	tripRepo     repositories.TripRepository
	auditService AuditServiceInterface
	suggestions  utils.SuggestionClient
	geocoder     utils.GeocodingClient
}

func NewMarkerService(
	markerRepo repositories.MarkerRepository,
	tripRepo repositories.TripRepository,
	auditService AuditServiceInterface,
	suggestions utils.SuggestionClient,
	geocoder utils.GeocodingClient,
) MarkerServiceInterface {
	return &MarkerService{
		markerRepo:   markerRepo,
		tripRepo:     tripRepo,
		auditService: auditService,
		suggestions:  suggestions,
		geocoder:     geocoder,
	}
}

func (m *MarkerService) GetMarker(ctx context.Context, user *db_models.User, markerID uuid.UUID) (*response_models.MarkerResponse, error) {
	marker, err := m.findAccessible(ctx, user, markerID)
	if err != nil {
		return nil, err
	}

	response := response_models.ToMarkerResponse(marker)
	return &response, nil
}

func (m *MarkerService) ListTripMarkers(ctx context.Context, user *db_models.User, tripID uuid.UUID) ([]response_models.MarkerResponse, error) {
	trip, err := m.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil || !user.CanAccess(trip.UserID) {
		return nil, utils.ErrTripNotFound
	}

	markers, err := m.markerRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.MarkerResponse, 0, len(markers))
	for i := range markers {
		responses = append(responses, response_models.ToMarkerResponse(&markers[i]))
	}
	return responses, nil
}

// CreateMarkers stores the requested markers, silently dropping requests
// against trips the caller does not own.
func (m *MarkerService) CreateMarkers(ctx context.Context, user *db_models.User, reqs []request_models.CreateMarkerRequest) ([]response_models.MarkerResponse, error) {
	for _, req := range reqs {
		if !req.Category.IsValid() {
			return nil, utils.ErrInvalidCategory
		}
	}

	allowedIDs, err := m.tripRepo.IDsOwnedBy(ctx, user.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	allowed := make(map[uuid.UUID]bool, len(allowedIDs))
	for _, id := range allowedIDs {
		allowed[id] = true
	}

	markers := make([]db_models.Marker, 0, len(reqs))
	for _, req := range reqs {
		if !allowed[req.TripID] {
			continue
		}
		markers = append(markers, db_models.Marker{
			TripID:      req.TripID,
			Category:    req.Category,
			Title:       req.Title,
			Description: req.Description,
			Latitude:    req.Latitude,
			Longitude:   req.Longitude,
		})
	}

	markers, err = m.markerRepo.InsertBatch(ctx, markers)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.MarkerResponse, 0, len(markers))
	for i := range markers {
		if _, err := m.auditService.Log(ctx, user, db_models.ActionCreation,
			db_models.MarkerTarget(markers[i].ID), nil, nil); err != nil {
			return nil, err
		}
		responses = append(responses, response_models.ToMarkerResponse(&markers[i]))
	}
	return responses, nil
}

func (m *MarkerService) UpdateMarker(ctx context.Context, user *db_models.User, markerID uuid.UUID, patch db_models.MarkerPatch) (*response_models.MarkerResponse, error) {
	if patch.Category != nil && !patch.Category.IsValid() {
		return nil, utils.ErrInvalidCategory
	}

	marker, err := m.findAccessible(ctx, user, markerID)
	if err != nil {
		return nil, err
	}

	changes := marker.Diff(patch)
	marker.Apply(patch)

	if err := m.markerRepo.Update(ctx, marker); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if _, err := m.auditService.Log(ctx, user, db_models.ActionModification,
		db_models.MarkerTarget(marker.ID), changes, nil); err != nil {
		return nil, err
	}

	response := response_models.ToMarkerResponse(marker)
	return &response, nil
}

func (m *MarkerService) DeleteMarker(ctx context.Context, user *db_models.User, markerID uuid.UUID) error {
	marker, err := m.findAccessible(ctx, user, markerID)
	if err != nil {
		return err
	}

	if err := m.markerRepo.Delete(ctx, marker); err != nil {
		return utils.ErrDatabaseError
	}

	if _, err := m.auditService.Log(ctx, user, db_models.ActionDeletion,
		db_models.MarkerTarget(marker.ID), nil, nil); err != nil {
		return err
	}

	return nil
}

// markerSuggestion is the shape each provider response row must parse into.
type markerSuggestion struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

func suggestionPrompt(area string, category db_models.EMarkerCategory) string {
	return fmt.Sprintf(
		"Give me the best %s in %s in flat json array format with fields title, "+
			"description, latitude and longitude.",
		category.PromptLabel(), area)
}

// GenerateMarkers asks the AI provider for one suggestion batch per
// category and stores the results as markers on the trip. A provider or
// parse failure is recorded on the audit entry and the call still returns
// whatever was created (usually nothing); only the audit write itself may
// fail the request.
func (m *MarkerService) GenerateMarkers(
	ctx context.Context,
	user *db_models.User,
	tripID uuid.UUID,
	categories []db_models.EMarkerCategory,
) ([]response_models.MarkerResponse, error) {

	for _, category := range categories {
		if !category.IsValid() {
			return nil, utils.ErrInvalidCategory
		}
	}

	trip, err := m.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil || !user.CanAccess(trip.UserID) {
		return nil, utils.ErrTripNotFound
	}

	prompts := make([]string, 0, len(categories))
	for _, category := range categories {
		prompts = append(prompts, suggestionPrompt(trip.Name, category))
	}

	start := time.Now()
	markers, genErr := m.generate(ctx, trip, categories, prompts)
	elapsed := time.Since(start)

	fields := map[string]any{"query_time": elapsed.Seconds()}
	if genErr != nil {
		log.Printf("Failed to generate markers: %v", genErr)
		fields["error"] = genErr.Error()
	}

	if _, err := m.auditService.Log(ctx, user, db_models.ActionExternalQuery,
		db_models.TripTarget(trip.ID), nil, fields); err != nil {
		return nil, err
	}

	responses := make([]response_models.MarkerResponse, 0, len(markers))
	for i := range markers {
		responses = append(responses, response_models.ToMarkerResponse(&markers[i]))
	}
	return responses, nil
}

func (m *MarkerService) generate(
	ctx context.Context,
	trip *db_models.Trip,
	categories []db_models.EMarkerCategory,
	prompts []string,
) ([]db_models.Marker, error) {

	responses, err := m.suggestions.Query(ctx, prompts)
	if err != nil {
		return nil, err
	}
	if len(responses) != len(prompts) {
		return nil, fmt.Errorf("expected %d responses, got %d", len(prompts), len(responses))
	}

	var markers []db_models.Marker
	for idx, response := range responses {
		var suggestions []markerSuggestion
		if err := json.Unmarshal([]byte(response), &suggestions); err != nil {
			return nil, err
		}
		for _, suggestion := range suggestions {
			markers = append(markers, db_models.Marker{
				TripID:      trip.ID,
				Category:    categories[idx],
				Title:       suggestion.Title,
				Description: suggestion.Description,
				Latitude:    suggestion.Latitude,
				Longitude:   suggestion.Longitude,
			})
		}
	}

	return m.markerRepo.InsertBatch(ctx, markers)
}

func (m *MarkerService) Geocoding(ctx context.Context, user *db_models.User, query string, exact bool) (json.RawMessage, error) {
	if query == "" {
		return nil, utils.ErrInvalidInput
	}

	start := time.Now()
	result, geoErr := m.geocoder.Geocoding(ctx, query, exact)
	elapsed := time.Since(start)

	fields := map[string]any{"query_time": elapsed.Seconds(), "query": query}
	if geoErr != nil {
		fields["error"] = geoErr.Error()
	}

	if _, err := m.auditService.Log(ctx, user, db_models.ActionExternalQuery,
		nil, nil, fields); err != nil {
		return nil, err
	}

	if geoErr != nil {
		return nil, utils.ErrGeocodingFailed
	}
	return result, nil
}

// findAccessible resolves a marker through its owning trip's access scope.
// Missing and forbidden both come back as not-found.
func (m *MarkerService) findAccessible(ctx context.Context, user *db_models.User, markerID uuid.UUID) (*db_models.Marker, error) {
	marker, err := m.markerRepo.FindByID(ctx, markerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if marker == nil || !user.CanAccess(marker.Trip.UserID) {
		return nil, utils.ErrMarkerNotFound
	}
	return marker, nil
}

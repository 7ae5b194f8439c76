package response_models

import (
	"time"

	"github.com/google/uuid"

	"mapsplanner/internal/models/db_models"
)

// TripResponse is the flat card used in list views; it never carries the
// foreign-key object graph.
type TripResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Picture      *string   `json:"picture"`
	CreationDate time.Time `json:"creation_date"`
	UserID       uuid.UUID `json:"user_id"`
}

type TripDetailsResponse struct {
	TripResponse
	Markers []MarkerResponse `json:"markers"`
}

func ToTripResponse(trip *db_models.Trip) TripResponse {
	return TripResponse{
		ID:           trip.ID,
		Name:         trip.Name,
		Description:  trip.Description,
		Picture:      trip.Picture,
		CreationDate: time.Unix(trip.CreatedAt, 0).UTC(),
		UserID:       trip.UserID,
	}
}

func ToTripDetailsResponse(trip *db_models.Trip) TripDetailsResponse {
	markers := make([]MarkerResponse, 0, len(trip.Markers))
	for i := range trip.Markers {
		markers = append(markers, ToMarkerResponse(&trip.Markers[i]))
	}
	return TripDetailsResponse{
		TripResponse: ToTripResponse(trip),
		Markers:      markers,
	}
}

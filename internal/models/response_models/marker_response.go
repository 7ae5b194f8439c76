package response_models

import (
	"github.com/google/uuid"

	"mapsplanner/internal/models/db_models"
)

type MarkerResponse struct {
	ID          uuid.UUID                 `json:"id"`
	TripID      uuid.UUID                 `json:"trip_id"`
	Category    db_models.EMarkerCategory `json:"category"`
	Title       string                    `json:"title"`
	Description string                    `json:"description"`
	Latitude    float64                   `json:"latitude"`
	Longitude   float64                   `json:"longitude"`
}

func ToMarkerResponse(marker *db_models.Marker) MarkerResponse {
	return MarkerResponse{
		ID:          marker.ID,
		TripID:      marker.TripID,
		Category:    marker.Category,
		Title:       marker.Title,
		Description: marker.Description,
		Latitude:    marker.Latitude,
		Longitude:   marker.Longitude,
	}
}

package request_models

import (
	"github.com/google/uuid"

	"mapsplanner/internal/models/db_models"
)

type CreateMarkerRequest struct {
	TripID      uuid.UUID                 `json:"trip_id" binding:"required"`
	Category    db_models.EMarkerCategory `json:"category"`
	Title       string                    `json:"title" binding:"required"`
	Description string                    `json:"description"`
	Latitude    float64                   `json:"latitude"`
	Longitude   float64                   `json:"longitude"`
}

type GenerateMarkersRequest struct {
	Categories []db_models.EMarkerCategory `json:"categories" binding:"required,min=1"`
}

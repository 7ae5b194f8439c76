package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mapsplanner/internal/models/db_models"
	"mapsplanner/internal/models/request_models"
	"mapsplanner/internal/services"
	"mapsplanner/pkg/middleware"
	"mapsplanner/pkg/utils"
)

type TripsController struct {
	tripService services.TripServiceInterface
}

func NewTripsController(tripService services.TripServiceInterface) *TripsController {
	return &TripsController{
		tripService: tripService,
	}
}

// ListTrips godoc
// @Summary List trips
// @Description Paginated trips visible to the caller, newest first. Administrators may impersonate another user or "all"
// @Tags Trips
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param impersonate_user_id query string false "User ID or the literal all (administrators only)"
// @Param name query string false "Partial name filter"
// @Param search query string false "Free-text filter over name and description"
// @Param creation_date query string false "Date range start...end, RFC3339 or epoch seconds"
// @Success 200 {array} response_models.TripResponse
// @Router /trips [get]
func (t *TripsController) ListTrips(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	var filter request_models.TripListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trips, err := t.tripService.ListTrips(c.Request.Context(), middleware.CurrentUser(c), impersonation(c), page, filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// CreateTrip godoc
// @Summary Create a trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip payload"
// @Success 201 {object} response_models.TripResponse
// @Failure 400 {object} utils.APIResponse
// @Router /trips [post]
func (t *TripsController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondStatus(c, http.StatusCreated, trip, "Trip created successfully")
}

// GetTrip godoc
// @Summary Get trip details
// @Description Trip card plus its markers; 404 covers both missing and not visible
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} response_models.TripDetailsResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{id} [get]
func (t *TripsController) GetTrip(c *gin.Context) {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "Trip not found.")
		return
	}

	trip, err := t.tripService.GetTripDetails(c.Request.Context(), middleware.CurrentUser(c), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip details fetched successfully")
}

// UpdateTrip godoc
// @Summary Partially update a trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body db_models.TripPatch true "Sparse update payload"
// @Success 200 {object} response_models.TripResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{id} [patch]
func (t *TripsController) UpdateTrip(c *gin.Context) {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "Trip not found.")
		return
	}

	var patch db_models.TripPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.UpdateTrip(c.Request.Context(), middleware.CurrentUser(c), tripID, patch)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip updated successfully")
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Tags Trips
// @Param id path string true "Trip ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{id} [delete]
func (t *TripsController) DeleteTrip(c *gin.Context) {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "Trip not found.")
		return
	}

	if err := t.tripService.DeleteTrip(c.Request.Context(), middleware.CurrentUser(c), tripID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

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

type MarkersController struct {
	markerService services.MarkerServiceInterface
}

func NewMarkersController(markerService services.MarkerServiceInterface) *MarkersController {
	return &MarkersController{
		markerService: markerService,
	}
}

// ListMarkers godoc
// @Summary List markers of a trip
// @Tags Markers
// @Produce json
// @Param trip_id query string true "Trip ID"
// @Success 200 {array} response_models.MarkerResponse
// @Failure 404 {object} utils.APIResponse
// @Router /markers [get]
func (m *MarkersController) ListMarkers(c *gin.Context) {
	tripID, err := uuid.Parse(c.Query("trip_id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "Trip not found.")
		return
	}

	markers, err := m.markerService.ListTripMarkers(c.Request.Context(), middleware.CurrentUser(c), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, markers, "Markers fetched successfully")
}

// CreateMarkers godoc
// @Summary Create markers
// @Description Accepts a batch and persists only those whose trips the caller can write to
// @Tags Markers
// @Accept json
// @Produce json
// @Param request body []request_models.CreateMarkerRequest true "Marker payloads"
// @Success 201 {array} response_models.MarkerResponse
// @Failure 400 {object} utils.APIResponse
// @Router /markers [post]
func (m *MarkersController) CreateMarkers(c *gin.Context) {
	var reqs []request_models.CreateMarkerRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	markers, err := m.markerService.CreateMarkers(c.Request.Context(), middleware.CurrentUser(c), reqs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondStatus(c, http.StatusCreated, markers, "Markers created successfully")
}

// GetMarker godoc
// @Summary Get a marker
// @Tags Markers
// @Produce json
// @Param id path string true "Marker ID"
// @Success 200 {object} response_models.MarkerResponse
// @Failure 404 {object} utils.APIResponse
// @Router /markers/{id} [get]
func (m *MarkersController) GetMarker(c *gin.Context) {
	markerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "Marker not found.")
		return
	}

	marker, err := m.markerService.GetMarker(c.Request.Context(), middleware.CurrentUser(c), markerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, marker, "Marker fetched successfully")
}

// UpdateMarker godoc
// @Summary Partially update a marker
// @Tags Markers
// @Accept json
// @Produce json
// @Param id path string true "Marker ID"
// @Param request body db_models.MarkerPatch true "Sparse update payload"
// @Success 200 {object} response_models.MarkerResponse
// @Failure 404 {object} utils.APIResponse
// @Router /markers/{id} [patch]
func (m *MarkersController) UpdateMarker(c *gin.Context) {
	markerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "Marker not found.")
		return
	}

	var patch db_models.MarkerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	marker, err := m.markerService.UpdateMarker(c.Request.Context(), middleware.CurrentUser(c), markerID, patch)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, marker, "Marker updated successfully")
}

// DeleteMarker godoc
// @Summary Delete a marker
// @Tags Markers
// @Param id path string true "Marker ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /markers/{id} [delete]
func (m *MarkersController) DeleteMarker(c *gin.Context) {
	markerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "Marker not found.")
		return
	}

	if err := m.markerService.DeleteMarker(c.Request.Context(), middleware.CurrentUser(c), markerID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GenerateMarkers godoc
// @Summary Generate marker suggestions for a trip
// @Description Asks the configured AI provider for places matching the requested categories. Provider failures degrade to an empty result
// @Tags Markers
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.GenerateMarkersRequest true "Categories to suggest"
// @Success 200 {array} response_models.MarkerResponse
// @Failure 404 {object} utils.APIResponse
// @Router /markers/{id}/generate-markers [post]
func (m *MarkersController) GenerateMarkers(c *gin.Context) {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "Trip not found.")
		return
	}

	var req request_models.GenerateMarkersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	markers, err := m.markerService.GenerateMarkers(c.Request.Context(), middleware.CurrentUser(c), tripID, req.Categories)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, markers, "Markers generated successfully")
}

// Geocoding godoc
// @Summary Forward geocoding lookup
// @Tags Markers
// @Produce json
// @Param query query string true "Place name or address"
// @Param exact query bool false "Restrict to exact matches"
// @Success 200 {object} json.RawMessage
// @Failure 502 {object} utils.APIResponse
// @Router /markers/geocoding [get]
func (m *MarkersController) Geocoding(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	exact := c.Query("exact") == "true"

	result, err := m.markerService.Geocoding(c.Request.Context(), middleware.CurrentUser(c), query, exact)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Geocoding fetched successfully")
}

package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mapsplanner/internal/models/db_models"
	"mapsplanner/internal/repositories"
	"mapsplanner/internal/services"
	"mapsplanner/pkg/middleware"
	"mapsplanner/pkg/utils"
)

type fakeSuggestionClient struct {
	responses []string
	err       error
}

func (f *fakeSuggestionClient) Query(context.Context, []string) ([]string, error) {
	return f.responses, f.err
}

type fakeGeocodingClient struct {
	result json.RawMessage
	err    error
}

func (f *fakeGeocodingClient) Geocoding(context.Context, string, bool) (json.RawMessage, error) {
	return f.result, f.err
}

type testServer struct {
	engine      *gin.Engine
	db          *gorm.DB
	sessions    services.SessionServiceInterface
	suggestions *fakeSuggestionClient
	geocoder    *fakeGeocodingClient
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&db_models.User{},
		&db_models.Session{},
		&db_models.Trip{},
		&db_models.Marker{},
		&db_models.AuditLog{},
	))

	userRepo := repositories.NewUserRepository(db)
	tripRepo := repositories.NewTripRepository(db)
	markerRepo := repositories.NewMarkerRepository(db)
	auditRepo := repositories.NewAuditRepository(db)

	sessionService := services.NewSessionService(repositories.NewSessionRepository(db))
	auditService := services.NewAuditService(auditRepo, userRepo, tripRepo, markerRepo)
	userService := services.NewUserService(userRepo, auditService)
	tripService := services.NewTripService(tripRepo, auditService)

	suggestions := &fakeSuggestionClient{}
	geocoder := &fakeGeocodingClient{}
	markerService := services.NewMarkerService(markerRepo, tripRepo, auditService, suggestions, geocoder)

	engine := gin.New()
	engine.Use(middleware.TraceIDMiddleware())

	api := engine.Group("/api")
	authenticated := api.Group("")
	authenticated.Use(middleware.SessionAuthMiddleware(sessionService))

	usersController := NewUsersController(userService)
	usersGroup := authenticated.Group("/users")
	usersGroup.GET("/current", usersController.CurrentUser)
	usersGroup.GET("/:id", usersController.UserDetails)
	usersGroup.PATCH("/:id", usersController.UpdateUser)

	tripsController := NewTripsController(tripService)
	tripsGroup := authenticated.Group("/trips")
	tripsGroup.GET("", tripsController.ListTrips)
	tripsGroup.POST("", tripsController.CreateTrip)
	tripsGroup.GET("/:id", tripsController.GetTrip)
	tripsGroup.PATCH("/:id", tripsController.UpdateTrip)
	tripsGroup.DELETE("/:id", tripsController.DeleteTrip)

	markersController := NewMarkersController(markerService)
	markersGroup := authenticated.Group("/markers")
	markersGroup.GET("", markersController.ListMarkers)
	markersGroup.POST("", markersController.CreateMarkers)
	markersGroup.GET("/geocoding", markersController.Geocoding)
	markersGroup.GET("/:id", markersController.GetMarker)
	markersGroup.PATCH("/:id", markersController.UpdateMarker)
	markersGroup.DELETE("/:id", markersController.DeleteMarker)
	markersGroup.POST("/:id/generate-markers", markersController.GenerateMarkers)

	auditController := NewAuditController(auditService)
	authenticated.GET("/audit", auditController.ListAuditLogs)

	return &testServer{
		engine:      engine,
		db:          db,
		sessions:    sessionService,
		suggestions: suggestions,
		geocoder:    geocoder,
	}
}

func (s *testServer) createUser(t *testing.T, admin bool) *db_models.User {
	t.Helper()

	user := &db_models.User{
		FirstName:       "Test",
		LastName:        "User",
		Email:           fmt.Sprintf("%s@example.com", uuid.NewString()[:8]),
		IsActive:        true,
		IsAdministrator: admin,
	}
	require.NoError(t, s.db.Create(user).Error)
	return user
}

func (s *testServer) login(t *testing.T, user *db_models.User) string {
	t.Helper()

	session, err := s.sessions.CreateSession(context.Background(), user)
	require.NoError(t, err)
	return session.Token
}

func (s *testServer) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
	}

	recorder := httptest.NewRecorder()
	s.engine.ServeHTTP(recorder, req)
	return recorder
}

// decodeData unmarshals the data field of the response envelope into out.
func decodeData(t *testing.T, recorder *httptest.ResponseRecorder, out any) utils.APIResponse {
	t.Helper()

	var envelope struct {
		Status  string          `json:"status"`
		Code    int             `json:"code"`
		Message string          `json:"message"`
		TraceID string          `json:"trace_id"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

	if out != nil && len(envelope.Data) > 0 {
		require.NoError(t, json.Unmarshal(envelope.Data, out))
	}

	return utils.APIResponse{
		Status:  envelope.Status,
		Code:    envelope.Code,
		Message: envelope.Message,
		TraceID: envelope.TraceID,
	}
}

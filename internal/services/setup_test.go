package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mapsplanner/internal/models/db_models"
	"mapsplanner/internal/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&db_models.User{},
		&db_models.Session{},
		&db_models.Trip{},
		&db_models.Marker{},
		&db_models.AuditLog{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, admin bool) *db_models.User {
	t.Helper()

	user := &db_models.User{
		FirstName:       "Test",
		LastName:        "User",
		Email:           fmt.Sprintf("%s@example.com", uuid.NewString()[:8]),
		IsActive:        true,
		IsAdministrator: admin,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedTrip(t *testing.T, db *gorm.DB, owner *db_models.User, name string) *db_models.Trip {
	t.Helper()

	trip := &db_models.Trip{UserID: owner.ID, Name: name}
	require.NoError(t, db.Create(trip).Error)
	return trip
}

func newAuditService(db *gorm.DB) AuditServiceInterface {
	return NewAuditService(
		repositories.NewAuditRepository(db),
		repositories.NewUserRepository(db),
		repositories.NewTripRepository(db),
		repositories.NewMarkerRepository(db),
	)
}

func newMarkerService(db *gorm.DB, suggestions *fakeSuggestionClient, geocoder *fakeGeocodingClient) MarkerServiceInterface {
	if suggestions == nil {
		suggestions = &fakeSuggestionClient{}
	}
	if geocoder == nil {
		geocoder = &fakeGeocodingClient{}
	}
	return NewMarkerService(
		repositories.NewMarkerRepository(db),
		repositories.NewTripRepository(db),
		newAuditService(db),
		suggestions,
		geocoder,
	)
}

// auditEntries reads back everything written to the audit table.
func auditEntries(t *testing.T, db *gorm.DB) []db_models.AuditLog {
	t.Helper()

	var entries []db_models.AuditLog
	require.NoError(t, db.Order("created_at ASC").Find(&entries).Error)
	return entries
}

type fakeSuggestionClient struct {
	responses []string
	err       error
	prompts   []string
}

func (f *fakeSuggestionClient) Query(_ context.Context, prompts []string) ([]string, error) {
	f.prompts = prompts
	if f.err != nil {
		return nil, f.err
	}
	return f.responses, nil
}

type fakeGeocodingClient struct {
	result json.RawMessage
	err    error
	query  string
}

func (f *fakeGeocodingClient) Geocoding(_ context.Context, query string, _ bool) (json.RawMessage, error) {
	f.query = query
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

var errProviderDown = errors.New("provider unavailable")

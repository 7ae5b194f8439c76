package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapsplanner/internal/models/response_models"
)

func TestTripsRequireAuthentication(t *testing.T) {
	server := newTestServer(t)

	recorder := server.request(t, http.MethodGet, "/api/trips", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	envelope := decodeData(t, recorder, nil)
	assert.Equal(t, "error", envelope.Status)
	assert.Equal(t, "Not Authenticated.", envelope.Message)
}

func TestTripCRUDOverHTTP(t *testing.T) {
	server := newTestServer(t)
	user := server.createUser(t, false)
	token := server.login(t, user)

	// create
	recorder := server.request(t, http.MethodPost, "/api/trips", token, map[string]any{
		"name":        "Weekend trip",
		"description": "Two days away",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created response_models.TripResponse
	decodeData(t, recorder, &created)
	assert.Equal(t, "Weekend trip", created.Name)
	assert.Equal(t, user.ID, created.UserID)

	// read back with details
	recorder = server.request(t, http.MethodGet, "/api/trips/"+created.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var details response_models.TripDetailsResponse
	decodeData(t, recorder, &details)
	assert.Equal(t, "Weekend trip", details.Name)
	assert.Empty(t, details.Markers)

	// patch a single field
	recorder = server.request(t, http.MethodPatch, "/api/trips/"+created.ID.String(), token, map[string]any{
		"description": "Three days away",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var patched response_models.TripResponse
	decodeData(t, recorder, &patched)
	assert.Equal(t, "Weekend trip", patched.Name)
	assert.Equal(t, "Three days away", patched.Description)

	// delete
	recorder = server.request(t, http.MethodDelete, "/api/trips/"+created.ID.String(), token, nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = server.request(t, http.MethodGet, "/api/trips/"+created.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestTripForeignAccessMasksAsNotFound(t *testing.T) {
	server := newTestServer(t)
	owner := server.createUser(t, false)
	stranger := server.createUser(t, false)

	ownerToken := server.login(t, owner)
	recorder := server.request(t, http.MethodPost, "/api/trips", ownerToken, map[string]any{"name": "secret"})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created response_models.TripResponse
	decodeData(t, recorder, &created)

	strangerToken := server.login(t, stranger)
	recorder = server.request(t, http.MethodGet, "/api/trips/"+created.ID.String(), strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = server.request(t, http.MethodDelete, "/api/trips/"+created.ID.String(), strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestTripListingPaginationAndImpersonation(t *testing.T) {
	server := newTestServer(t)
	alice := server.createUser(t, false)
	admin := server.createUser(t, true)

	aliceToken := server.login(t, alice)
	for i := 0; i < 3; i++ {
		recorder := server.request(t, http.MethodPost, "/api/trips", aliceToken, map[string]any{
			"name": fmt.Sprintf("trip %d", i),
		})
		require.Equal(t, http.StatusCreated, recorder.Code)
	}

	// admins see nothing of Alice's without impersonating
	adminToken := server.login(t, admin)
	recorder := server.request(t, http.MethodGet, "/api/trips", adminToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var trips []response_models.TripResponse
	decodeData(t, recorder, &trips)
	assert.Empty(t, trips)

	recorder = server.request(t, http.MethodGet, "/api/trips?impersonate_user_id="+alice.ID.String(), adminToken, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	trips = nil
	decodeData(t, recorder, &trips)
	assert.Len(t, trips, 3)

	// bad page number is rejected up front
	recorder = server.request(t, http.MethodGet, "/api/trips?page=0", aliceToken, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestTripCreateValidation(t *testing.T) {
	server := newTestServer(t)
	user := server.createUser(t, false)
	token := server.login(t, user)

	recorder := server.request(t, http.MethodPost, "/api/trips", token, map[string]any{
		"description": "nameless",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestResponseEnvelopeCarriesTraceID(t *testing.T) {
	server := newTestServer(t)
	user := server.createUser(t, false)
	token := server.login(t, user)

	recorder := server.request(t, http.MethodGet, "/api/trips", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	envelope := decodeData(t, recorder, nil)
	assert.Equal(t, "success", envelope.Status)
	assert.NotEmpty(t, envelope.TraceID)
	assert.Equal(t, envelope.TraceID, recorder.Header().Get("X-Trace-ID"))
}

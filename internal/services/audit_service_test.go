package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapsplanner/internal/models/db_models"
	"mapsplanner/internal/models/request_models"
	"mapsplanner/internal/models/response_models"
	"mapsplanner/internal/repositories"
	"mapsplanner/pkg/utils"
)

func TestAuditLogPersistsEntry(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, false)
	trip := seedTrip(t, db, user, "audited")

	service := newAuditService(db)

	entry, err := service.Log(context.Background(), user, db_models.ActionCreation,
		db_models.TripTarget(trip.ID),
		map[string]db_models.FieldChange{"name": {Before: nil, After: "audited"}},
		map[string]any{"note": "first"})
	require.NoError(t, err)
	require.NotNil(t, entry)

	stored := auditEntries(t, db)
	require.Len(t, stored, 1)
	assert.Equal(t, user.ID, stored[0].UserID)

	extra, err := stored[0].DecodeExtra()
	require.NoError(t, err)
	assert.Equal(t, trip.ID, extra.Target.ID)
	assert.Equal(t, "audited", extra.Changes["name"].After)
	assert.Equal(t, "first", extra.Fields["note"])
}

func TestAuditListValidation(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, false)
	service := newAuditService(db)
	ctx := context.Background()

	_, err := service.List(ctx, user, "", 1, request_models.AuditListFilter{Action: 99})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = service.List(ctx, user, "", 1, request_models.AuditListFilter{TargetModel: "spaceship"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = service.List(ctx, user, "", 1, request_models.AuditListFilter{CreationDate: "garbage"})
	assert.ErrorIs(t, err, utils.ErrInvalidDateRange)
}

func TestAuditListScopingAndTargetRendering(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, true)
	alice := seedUser(t, db, false)
	trip := seedTrip(t, db, alice, "watched")

	service := newAuditService(db)
	ctx := context.Background()

	_, err := service.Log(ctx, alice, db_models.ActionCreation, db_models.TripTarget(trip.ID), nil, nil)
	require.NoError(t, err)
	_, err = service.Log(ctx, admin, db_models.ActionModification, db_models.UserTarget(alice.ID), nil, nil)
	require.NoError(t, err)

	// Alice sees only her own entry, with the trip rendered inline
	entries, err := service.List(ctx, alice, "", 1, request_models.AuditListFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, db_models.ActionCreation, entries[0].Action)

	rendered, ok := entries[0].TargetEntity.(response_models.TripResponse)
	require.True(t, ok, "trip target renders as a trip response")
	assert.Equal(t, "watched", rendered.Name)

	// the admin can lift the scope
	entries, err = service.List(ctx, admin, repositories.ImpersonateAll, 1, request_models.AuditListFilter{})
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestAuditListDeletedTargetRendersNull(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, false)
	trip := seedTrip(t, db, user, "doomed")

	service := newAuditService(db)
	ctx := context.Background()

	_, err := service.Log(ctx, user, db_models.ActionDeletion, db_models.TripTarget(trip.ID), nil, nil)
	require.NoError(t, err)
	require.NoError(t, db.Delete(trip).Error)

	entries, err := service.List(ctx, user, "", 1, request_models.AuditListFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// the reference survives, the entity does not
	assert.Equal(t, trip.ID, entries[0].Target.ID)
	assert.Nil(t, entries[0].TargetEntity)
}

func TestResolveTarget(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, false)
	trip := seedTrip(t, db, user, "resolvable")

	service := newAuditService(db)
	ctx := context.Background()

	entry, err := service.Log(ctx, user, db_models.ActionCreation, db_models.TripTarget(trip.ID), nil, nil)
	require.NoError(t, err)

	resolved, err := service.ResolveTarget(ctx, entry)
	require.NoError(t, err)
	resolvedTrip, ok := resolved.(*db_models.Trip)
	require.True(t, ok)
	assert.Equal(t, trip.ID, resolvedTrip.ID)

	// entries without a target resolve to nothing
	entry, err = service.Log(ctx, user, db_models.ActionExternalQuery, nil, nil, map[string]any{"query": "x"})
	require.NoError(t, err)

	resolved, err = service.ResolveTarget(ctx, entry)
	require.NoError(t, err)
	assert.Nil(t, resolved)
}

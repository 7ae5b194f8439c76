package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mapsplanner/internal/models/db_models"
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

func TestOwnerScopePinsNonAdministrators(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, false)
	other := seedUser(t, db, false)
	seedTrip(t, db, owner, "mine")
	seedTrip(t, db, other, "theirs")

	repo := NewTripRepository(db)

	trips, err := repo.ListScoped(context.Background(), owner, "", 1, TripListFilter{})
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "mine", trips[0].Name)

	// impersonation attempts by regular users are ignored
	trips, err = repo.ListScoped(context.Background(), owner, other.ID.String(), 1, TripListFilter{})
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "mine", trips[0].Name)
}

func TestOwnerScopeAdministratorImpersonation(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, true)
	alice := seedUser(t, db, false)
	bob := seedUser(t, db, false)
	seedTrip(t, db, admin, "admin trip")
	seedTrip(t, db, alice, "alice trip")
	seedTrip(t, db, bob, "bob trip")

	repo := NewTripRepository(db)

	// no impersonation: admins see their own rows like anyone else
	trips, err := repo.ListScoped(context.Background(), admin, "", 1, TripListFilter{})
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "admin trip", trips[0].Name)

	// a specific user
	trips, err = repo.ListScoped(context.Background(), admin, alice.ID.String(), 1, TripListFilter{})
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "alice trip", trips[0].Name)

	// the literal "all" lifts the filter
	trips, err = repo.ListScoped(context.Background(), admin, ImpersonateAll, 1, TripListFilter{})
	require.NoError(t, err)
	assert.Len(t, trips, 3)
}

func TestPaginateWindowSize(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, false)
	for i := 0; i < PageSize+3; i++ {
		seedTrip(t, db, owner, fmt.Sprintf("trip %02d", i))
	}

	repo := NewTripRepository(db)

	first, err := repo.ListScoped(context.Background(), owner, "", 1, TripListFilter{})
	require.NoError(t, err)
	assert.Len(t, first, PageSize)

	second, err := repo.ListScoped(context.Background(), owner, "", 2, TripListFilter{})
	require.NoError(t, err)
	assert.Len(t, second, 3)

	empty, err := repo.ListScoped(context.Background(), owner, "", 3, TripListFilter{})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTripListFilters(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, false)

	summer := &db_models.Trip{UserID: owner.ID, Name: "Summer in Lisbon", Description: "coastal walks"}
	winter := &db_models.Trip{UserID: owner.ID, Name: "Winter retreat", Description: "alpine skiing"}
	require.NoError(t, db.Create(summer).Error)
	require.NoError(t, db.Create(winter).Error)

	repo := NewTripRepository(db)

	trips, err := repo.ListScoped(context.Background(), owner, "", 1, TripListFilter{Name: "summer"})
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "Summer in Lisbon", trips[0].Name)

	trips, err = repo.ListScoped(context.Background(), owner, "", 1, TripListFilter{Search: "SKIING"})
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "Winter retreat", trips[0].Name)

	trips, err = repo.ListScoped(context.Background(), owner, "", 1, TripListFilter{Search: "nowhere"})
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestCreatedBetween(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, false)

	old := seedTrip(t, db, owner, "old")
	recent := seedTrip(t, db, owner, "recent")

	// push one row into the past; hooks stamp rows with now on create
	require.NoError(t, db.Model(old).UpdateColumn("created_at", time.Now().Add(-48*time.Hour).Unix()).Error)

	repo := NewTripRepository(db)

	cutoff := time.Now().Add(-24 * time.Hour)
	trips, err := repo.ListScoped(context.Background(), owner, "", 1, TripListFilter{CreatedStart: &cutoff})
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, recent.ID, trips[0].ID)

	trips, err = repo.ListScoped(context.Background(), owner, "", 1, TripListFilter{CreatedEnd: &cutoff})
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, old.ID, trips[0].ID)
}

func TestIDsOwnedBy(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, false)
	other := seedUser(t, db, false)
	mine := seedTrip(t, db, owner, "mine")
	seedTrip(t, db, other, "theirs")

	repo := NewTripRepository(db)

	ids, err := repo.IDsOwnedBy(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, mine.ID, ids[0])
}

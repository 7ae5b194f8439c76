package db_models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanAccess(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name     string
		user     User
		expected bool
	}{
		{
			name:     "owner can access own entity",
			user:     User{BaseModel: BaseModel{ID: ownerID}, IsActive: true},
			expected: true,
		},
		{
			name:     "stranger cannot access",
			user:     User{BaseModel: BaseModel{ID: uuid.New()}, IsActive: true},
			expected: false,
		},
		{
			name:     "administrator can access anything",
			user:     User{BaseModel: BaseModel{ID: uuid.New()}, IsActive: true, IsAdministrator: true},
			expected: true,
		},
		{
			name:     "inactive owner is denied",
			user:     User{BaseModel: BaseModel{ID: ownerID}, IsActive: false},
			expected: false,
		},
		{
			name:     "inactive administrator is denied",
			user:     User{BaseModel: BaseModel{ID: uuid.New()}, IsActive: false, IsAdministrator: true},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.user.CanAccess(ownerID))
		})
	}
}

func TestUserDiffOnlyReportsActualChanges(t *testing.T) {
	user := User{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}

	sameFirst := "Ada"
	newLast := "Byron"
	patch := UserPatch{FirstName: &sameFirst, LastName: &newLast}

	changes := user.Diff(patch)

	assert.Len(t, changes, 1)
	assert.Equal(t, "Lovelace", changes["last_name"].Before)
	assert.Equal(t, "Byron", changes["last_name"].After)
}

func TestUserDiffNilFieldsIgnored(t *testing.T) {
	user := User{FirstName: "Ada", Email: "ada@example.com"}
	assert.Empty(t, user.Diff(UserPatch{}))
}

func TestUserDiffBirthDate(t *testing.T) {
	born := time.Date(1815, 12, 10, 0, 0, 0, 0, time.UTC)

	user := User{}
	changes := user.Diff(UserPatch{BirthDate: &born})
	assert.Contains(t, changes, "birth_date")

	user.BirthDate = &born
	assert.Empty(t, user.Diff(UserPatch{BirthDate: &born}))
}

func TestUserApply(t *testing.T) {
	user := User{FirstName: "Ada", LastName: "Lovelace"}

	newFirst := "Augusta"
	gender := GenderFemale
	user.Apply(UserPatch{FirstName: &newFirst, Gender: &gender})

	assert.Equal(t, "Augusta", user.FirstName)
	assert.Equal(t, "Lovelace", user.LastName)
	assert.Equal(t, GenderFemale, *user.Gender)
}

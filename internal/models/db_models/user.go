package db_models

import (
	"time"

	"github.com/google/uuid"
)

type EGender int

const (
	GenderMale   EGender = 1
	GenderFemale EGender = 2
)

type User struct {
	BaseModel
	FirstName       string
	LastName        string
	Email           string `gorm:"index"`
	ProfilePicture  string
	Gender          *EGender
	BirthDate       *time.Time
	IsActive        bool
	IsAdministrator bool `gorm:"default:false"`

	Sessions  []Session  `gorm:"foreignKey:UserID"`
	Trips     []Trip     `gorm:"foreignKey:UserID"`
	AuditLogs []AuditLog `gorm:"foreignKey:UserID"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// CanAccess is the single ownership policy: an entity owned by ownerID is
// visible to its owner and to any administrator, active users only.
func (u *User) CanAccess(ownerID uuid.UUID) bool {
	return u.IsActive && (u.ID == ownerID || u.IsAdministrator)
}

// UserPatch carries a sparse update; nil fields are left untouched.
type UserPatch struct {
	FirstName      *string    `json:"first_name"`
	LastName       *string    `json:"last_name"`
	Email          *string    `json:"email"`
	ProfilePicture *string    `json:"profile_picture"`
	BirthDate      *time.Time `json:"birth_date"`
	Gender         *EGender   `json:"gender"`
}

// Diff reports the fields the patch would actually change.
func (u *User) Diff(p UserPatch) map[string]FieldChange {
	changes := map[string]FieldChange{}
	if p.FirstName != nil && *p.FirstName != u.FirstName {
		changes["first_name"] = FieldChange{Before: u.FirstName, After: *p.FirstName}
	}
	if p.LastName != nil && *p.LastName != u.LastName {
		changes["last_name"] = FieldChange{Before: u.LastName, After: *p.LastName}
	}
	if p.Email != nil && *p.Email != u.Email {
		changes["email"] = FieldChange{Before: u.Email, After: *p.Email}
	}
	if p.ProfilePicture != nil && *p.ProfilePicture != u.ProfilePicture {
		changes["profile_picture"] = FieldChange{Before: u.ProfilePicture, After: *p.ProfilePicture}
	}
	if p.BirthDate != nil && (u.BirthDate == nil || !u.BirthDate.Equal(*p.BirthDate)) {
		changes["birth_date"] = FieldChange{Before: u.BirthDate, After: *p.BirthDate}
	}
	if p.Gender != nil && (u.Gender == nil || *u.Gender != *p.Gender) {
		changes["gender"] = FieldChange{Before: u.Gender, After: *p.Gender}
	}
	return changes
}

// Apply assigns every supplied field unconditionally.
func (u *User) Apply(p UserPatch) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.ProfilePicture != nil {
		u.ProfilePicture = *p.ProfilePicture
	}
	if p.BirthDate != nil {
		u.BirthDate = p.BirthDate
	}
	if p.Gender != nil {
		u.Gender = p.Gender
	}
}

package response_models

import (
	"time"

	"github.com/google/uuid"

	"mapsplanner/internal/models/db_models"
)

type UserResponse struct {
	ID              uuid.UUID          `json:"id"`
	FirstName       string             `json:"first_name"`
	LastName        string             `json:"last_name"`
	FullName        string             `json:"full_name"`
	Email           string             `json:"email"`
	ProfilePicture  string             `json:"profile_picture"`
	IsActive        bool               `json:"is_active"`
	IsAdministrator bool               `json:"is_administrator"`
	Gender          *db_models.EGender `json:"gender,omitempty"`
}

type UserDetailsResponse struct {
	UserResponse
	RegisterDate time.Time  `json:"register_date"`
	BirthDate    *time.Time `json:"birth_date"`
	TotalTrips   int64      `json:"total_trips"`
	TotalMarkers int64      `json:"total_markers"`
}

func ToUserResponse(user *db_models.User) UserResponse {
	return UserResponse{
		ID:              user.ID,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		FullName:        user.FullName(),
		Email:           user.Email,
		ProfilePicture:  user.ProfilePicture,
		IsActive:        user.IsActive,
		IsAdministrator: user.IsAdministrator,
		Gender:          user.Gender,
	}
}

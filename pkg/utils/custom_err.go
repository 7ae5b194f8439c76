package utils

import "errors"

var (
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrUserNotFound         = errors.New("user not found")
	ErrTripNotFound         = errors.New("trip not found")
	ErrMarkerNotFound       = errors.New("marker not found")
	ErrInvalidPage          = errors.New("invalid page parameter")
	ErrInvalidDateRange     = errors.New("invalid date range parameter")
	ErrInvalidCategory      = errors.New("invalid marker category")
	ErrInvalidInput         = errors.New("invalid input")
	ErrDatabaseError        = errors.New("database error")
	ErrGeocodingFailed      = errors.New("geocoding query failed")
)

package request_models

type CreateTripRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Picture     *string `json:"picture"`
}

// TripListFilter collects the query-string filters of the trip list endpoint.
type TripListFilter struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Search      string `form:"search"`
	// "start...end", each side RFC3339 or epoch seconds, either side empty.
	CreationDate string `form:"creation_date"`
}

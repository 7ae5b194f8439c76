package db_models

import "github.com/google/uuid"

type EMarkerCategory int

const (
	CategoryNature EMarkerCategory = iota
	CategoryShopping
	CategoryRestaurants
	CategoryParks
	CategoryBeach
	CategoryPublicTransportation
)

func (c EMarkerCategory) IsValid() bool {
	return c >= CategoryNature && c <= CategoryPublicTransportation
}

// PromptLabel is the human-readable phrase used when asking the AI
// provider for suggestions of this category.
func (c EMarkerCategory) PromptLabel() string {
	switch c {
	case CategoryNature:
		return "nature sites"
	case CategoryShopping:
		return "shopping centers"
	case CategoryRestaurants:
		return "restaurants"
	case CategoryParks:
		return "city parks"
	case CategoryBeach:
		return "sea beaches"
	case CategoryPublicTransportation:
		return "Central Transportation Stations"
	default:
		return "places"
	}
}

type Marker struct {
	BaseModel
	TripID      uuid.UUID `gorm:"type:uuid;index"`
	Category    EMarkerCategory
	Title       string
	Description string
	Latitude    float64
	Longitude   float64

	Trip Trip `gorm:"foreignKey:TripID"`
}

type MarkerPatch struct {
	Category    *EMarkerCategory `json:"category"`
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Latitude    *float64         `json:"latitude"`
	Longitude   *float64         `json:"longitude"`
}

func (m *Marker) Diff(p MarkerPatch) map[string]FieldChange {
	changes := map[string]FieldChange{}
	if p.Category != nil && *p.Category != m.Category {
		changes["category"] = FieldChange{Before: m.Category, After: *p.Category}
	}
	if p.Title != nil && *p.Title != m.Title {
		changes["title"] = FieldChange{Before: m.Title, After: *p.Title}
	}
	if p.Description != nil && *p.Description != m.Description {
		changes["description"] = FieldChange{Before: m.Description, After: *p.Description}
	}
	if p.Latitude != nil && *p.Latitude != m.Latitude {
		changes["latitude"] = FieldChange{Before: m.Latitude, After: *p.Latitude}
	}
	if p.Longitude != nil && *p.Longitude != m.Longitude {
		changes["longitude"] = FieldChange{Before: m.Longitude, After: *p.Longitude}
	}
	return changes
}

func (m *Marker) Apply(p MarkerPatch) {
	if p.Category != nil {
		m.Category = *p.Category
	}
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Latitude != nil {
		m.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		m.Longitude = *p.Longitude
	}
}

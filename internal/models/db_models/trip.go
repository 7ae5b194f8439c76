package db_models

import "github.com/google/uuid"

type Trip struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Description string
	Picture     *string

	Markers []Marker `gorm:"foreignKey:TripID"`
	User    User     `gorm:"foreignKey:UserID"`
}

type TripPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Picture     *string `json:"picture"`
}

func (t *Trip) Diff(p TripPatch) map[string]FieldChange {
	changes := map[string]FieldChange{}
	if p.Name != nil && *p.Name != t.Name {
		changes["name"] = FieldChange{Before: t.Name, After: *p.Name}
	}
	if p.Description != nil && *p.Description != t.Description {
		changes["description"] = FieldChange{Before: t.Description, After: *p.Description}
	}
	if p.Picture != nil && (t.Picture == nil || *t.Picture != *p.Picture) {
		changes["picture"] = FieldChange{Before: t.Picture, After: *p.Picture}
	}
	return changes
}

func (t *Trip) Apply(p TripPatch) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Picture != nil {
		t.Picture = p.Picture
	}
}

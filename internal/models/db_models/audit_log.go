package db_models

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type EAuditAction int

const (
	ActionCreation EAuditAction = iota + 1
	ActionModification
	ActionDeletion
	ActionExternalQuery
)

// EAuditTarget is a closed set of entity kinds an audit entry may reference.
// One audit table covers heterogeneous targets without a union of foreign keys.
type EAuditTarget string

const (
	TargetUser   EAuditTarget = "user"
	TargetTrip   EAuditTarget = "trip"
	TargetMarker EAuditTarget = "marker"
)

type AuditTarget struct {
	Model EAuditTarget `json:"model"`
	ID    uuid.UUID    `json:"id"`
}

func UserTarget(id uuid.UUID) *AuditTarget {
	return &AuditTarget{Model: TargetUser, ID: id}
}

func TripTarget(id uuid.UUID) *AuditTarget {
	return &AuditTarget{Model: TargetTrip, ID: id}
}

func MarkerTarget(id uuid.UUID) *AuditTarget {
	return &AuditTarget{Model: TargetMarker, ID: id}
}

type FieldChange struct {
	Before any `json:"before"`
	After  any `json:"after"`
}

// AuditExtra is the structured payload stored in the audit JSON column.
type AuditExtra struct {
	Target  *AuditTarget           `json:"target,omitempty"`
	Changes map[string]FieldChange `json:"changes,omitempty"`
	Fields  map[string]any         `json:"fields,omitempty"`
}

// AuditLog records notable actions made on the system. Entries are
// append-only; nothing updates or deletes them.
type AuditLog struct {
	BaseModel
	Action EAuditAction `gorm:"index"`
	UserID uuid.UUID    `gorm:"type:uuid;index"`
	Extra  datatypes.JSON

	User User `gorm:"foreignKey:UserID"`
}

func EncodeAuditExtra(extra AuditExtra) (datatypes.JSON, error) {
	raw, err := json.Marshal(extra)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func (a *AuditLog) DecodeExtra() (AuditExtra, error) {
	var extra AuditExtra
	if len(a.Extra) == 0 {
		return extra, nil
	}
	err := json.Unmarshal(a.Extra, &extra)
	return extra, err
}

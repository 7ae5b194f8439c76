package response_models

import (
	"log"
	"time"

	"github.com/google/uuid"

	"mapsplanner/internal/models/db_models"
)

type AuditLogResponse struct {
	ID           uuid.UUID                        `json:"id"`
	CreationDate time.Time                        `json:"creation_date"`
	Action       db_models.EAuditAction           `json:"action"`
	UserID       uuid.UUID                        `json:"user_id"`
	Target       *db_models.AuditTarget           `json:"target,omitempty"`
	TargetEntity any                              `json:"target_entity,omitempty"`
	Changes      map[string]db_models.FieldChange `json:"changes,omitempty"`
	Fields       map[string]any                   `json:"fields,omitempty"`
}

func ToAuditLogResponse(entry *db_models.AuditLog) AuditLogResponse {
	extra, err := entry.DecodeExtra()
	if err != nil {
		log.Printf("Undecodable audit extra for entry %s: %v", entry.ID, err)
	}

	return AuditLogResponse{
		ID:           entry.ID,
		CreationDate: time.Unix(entry.CreatedAt, 0).UTC(),
		Action:       entry.Action,
		UserID:       entry.UserID,
		Target:       extra.Target,
		Changes:      extra.Changes,
		Fields:       extra.Fields,
	}
}

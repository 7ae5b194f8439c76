package db_models

import "github.com/google/uuid"

// Session is a server-side bearer token. Deleting the row revokes access
// immediately, so there is no soft delete and no expiry here.
type Session struct {
	Token     string    `gorm:"primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt int64     `gorm:"autoCreateTime"`

	User User `gorm:"foreignKey:UserID"`
}

func (s Session) IsAnonymous() bool {
	return s.UserID == uuid.Nil
}

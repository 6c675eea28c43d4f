// Package model holds the GORM persistence models, kept separate from the
// pure domain entities.
package model

import (
	"time"

	"github.com/google/uuid"
)

// PhysiotherapistModel mirrors the 'physiotherapists' table. The unique
// index on email is the authoritative enforcement of email uniqueness;
// application-level pre-checks are a fast path only.
type PhysiotherapistModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name           string    `gorm:"type:varchar(50);not null"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone          string    `gorm:"type:varchar(30);not null"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"`
	Crefito        string    `gorm:"type:varchar(50);not null"`
	Description    string    `gorm:"type:text;not null"`
	ProfilePicture string    `gorm:"type:varchar(512);not null;default:'https://ibb.co/27mgpNMx'"`
	Specialties    []string  `gorm:"serializer:json;type:jsonb"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PhysiotherapistModel) TableName() string {
	return "physiotherapists"
}

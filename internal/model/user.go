package model

import (
	"time"

	"github.com/google/uuid"
)

// User is an operator account: dispatchers record calls, medics record usage,
// admins manage the catalog.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	FullName     string    `gorm:"not null"`
	Role         string    `gorm:"not null;default:'dispatcher'"` // dispatcher | medic | admin
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

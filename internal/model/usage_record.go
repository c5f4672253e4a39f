package model

import (
	"time"

	"github.com/google/uuid"
)

// UsageRecord is one immutable consumption event: a quantity of an item used
// on a call. Records are append-only — created once, never updated or deleted
// by normal flow. Item.Quantity deltas are derived from these records through
// the atomic consume path, never recomputed from the ledger.
type UsageRecord struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ItemID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CallID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity int       `gorm:"not null"` // consumed amount, > 0
	Notes    *string
	UsedAt   time.Time `gorm:"not null"`

	Item *Item `gorm:"foreignKey:ItemID"`
}

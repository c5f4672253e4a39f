package model

import (
	"time"

	"github.com/google/uuid"
)

// Kit is a named, call-type-specific recommended bundle of items.
// Kits are created at seed time or by administrative action and are never
// auto-mutated by consumption. A call type resolves to at most one kit.
type Kit struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"index:idx_kits_name_call_type,unique;not null"`
	CallType    string    `gorm:"index:idx_kits_name_call_type,unique;index;not null"`
	Description *string
	Items       []KitItem `gorm:"foreignKey:KitID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// KitItem is a value object embedded in a Kit: one recommended item with its
// suggested quantity. It has no independent lifecycle.
type KitItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	KitID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemID   uuid.UUID `gorm:"type:uuid;not null"`
	Quantity int       `gorm:"not null"` // recommended amount, > 0
	Required bool      `gorm:"not null;default:true"`
}

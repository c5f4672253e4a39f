package model

import (
	"time"

	"github.com/google/uuid"
)

// Item is a trackable consumable/equipment unit with a running stock quantity.
// Quantity is a materialized running total maintained through the atomic
// adjust primitive — it never goes negative; operations that would drive it
// below zero fail instead of clamping.
type Item struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"index:idx_items_name_category,unique;not null"`
	Description string
	Category    string `gorm:"index:idx_items_name_category,unique;not null"` // references Category.Name
	Unit        string `gorm:"not null"`                                      // шт, пара, ампула, упаковка, мл, флакон…
	Quantity    int    `gorm:"not null;default:0"`
	MinQuantity int    `gorm:"column:minimum_quantity;not null;default:0"` // advisory low-stock threshold
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsLowStock reports whether the item has fallen to or below its threshold.
func (i Item) IsLowStock() bool { return i.Quantity <= i.MinQuantity }

package model

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies inventory items. Categories come from a fixed set
// seeded at startup; they are immutable once created and never deleted
// in normal operation.
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Description *string
	CreatedAt   time.Time
}

// CategoryNames is the fixed enumerated set of inventory categories.
var CategoryNames = []string{
	"Медикаменты",
	"Перевязочные материалы",
	"Инструменты",
	"Оборудование",
	"Расходные материалы",
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// Call statuses as shown to dispatchers.
const (
	CallStatusAccepted  = "Принят"
	CallStatusEnRoute   = "В пути"
	CallStatusOnScene   = "На месте"
	CallStatusCompleted = "Завершённый"
)

// Call is an emergency-dispatch record. The inventory core references calls
// from usage records and kit lookups but does not own their lifecycle.
type Call struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FIO         string    `gorm:"not null"`
	Age         int       `gorm:"not null"`
	Address     string    `gorm:"not null"`
	Type        string    `gorm:"not null"` // call type, e.g. "Красный поток"
	Priority    string    `gorm:"not null"` // green | yellow | red
	Date        string    `gorm:"not null"` // dispatch date/time as entered
	Comment     *string
	Status      string `gorm:"not null;default:'Принят'"`
	CompletedAt *time.Time
	UsageRefs   []CallUsageRef `gorm:"foreignKey:CallID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CallUsageRef is the lightweight usage annotation appended onto a call after
// a successful consume. Advisory only — the usage ledger is authoritative.
type CallUsageRef struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CallID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemID    uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null"`
	Notes     *string
	CreatedAt time.Time
}

package repository

import (
	"context"

	"github.com/gobro228/ambulance-site/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsageRepository is the append-only ledger of consumption events.
// There is deliberately no update or delete: records are written once.
type UsageRepository interface {
	Create(ctx context.Context, rec *model.UsageRecord) error
	// CreateTx appends inside an open transaction — used by the consume path
	// so the ledger row and the stock decrement commit as one unit.
	CreateTx(tx *gorm.DB, rec *model.UsageRecord) error
	ListByCall(ctx context.Context, callID uuid.UUID) ([]model.UsageRecord, error)
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]model.UsageRecord, error)
}

type usageRepo struct{ db *gorm.DB }

func NewUsageRepository(db *gorm.DB) UsageRepository { return &usageRepo{db: db} }

func (r *usageRepo) Create(ctx context.Context, rec *model.UsageRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *usageRepo) CreateTx(tx *gorm.DB, rec *model.UsageRecord) error {
	return tx.Create(rec).Error
}

func (r *usageRepo) ListByCall(ctx context.Context, callID uuid.UUID) ([]model.UsageRecord, error) {
	var recs []model.UsageRecord
	err := r.db.WithContext(ctx).
		Preload("Item").
		Where("call_id = ?", callID).
		Order("used_at ASC").
		Find(&recs).Error
	return recs, err
}

func (r *usageRepo) ListByItem(ctx context.Context, itemID uuid.UUID) ([]model.UsageRecord, error) {
	var recs []model.UsageRecord
	err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("used_at ASC").
		Find(&recs).Error
	return recs, err
}

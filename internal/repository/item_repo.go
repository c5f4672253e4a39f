package repository

import (
	"context"
	"errors"

	"github.com/gobro228/ambulance-site/internal/apierror"
	"github.com/gobro228/ambulance-site/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemRepository defines the data access contract for catalog items.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via in-memory stubs.
type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error)
	FindByNameAndCategory(ctx context.Context, name, category string) (*model.Item, error)
	FindByName(ctx context.Context, name string) (*model.Item, error)
	List(ctx context.Context, category string) ([]model.Item, error)
	ListLowStock(ctx context.Context) ([]model.Item, error)
	Update(ctx context.Context, item *model.Item) error

	// AdjustQuantity atomically applies quantity += delta with a conditional
	// update keyed on non-negativity. A losing concurrent caller observes
	// InsufficientStock, never a negative result.
	AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) error
	// AdjustQuantityTx is the same primitive inside an open transaction.
	AdjustQuantityTx(tx *gorm.DB, id uuid.UUID, delta int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type itemRepo struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) ItemRepository { return &itemRepo{db: db} }

func (r *itemRepo) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.E(apierror.NotFound, "item %s not found", id)
		}
		return nil, apierror.Wrap(apierror.DependencyFailure, err, "item lookup failed")
	}
	return &item, nil
}

func (r *itemRepo) FindByNameAndCategory(ctx context.Context, name, category string) (*model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).Where("name = ? AND category = ?", name, category).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.E(apierror.NotFound, "item %q (%s) not found", name, category)
		}
		return nil, apierror.Wrap(apierror.DependencyFailure, err, "item lookup failed")
	}
	return &item, nil
}

func (r *itemRepo) FindByName(ctx context.Context, name string) (*model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.E(apierror.NotFound, "item %q not found", name)
		}
		return nil, apierror.Wrap(apierror.DependencyFailure, err, "item lookup failed")
	}
	return &item, nil
}

func (r *itemRepo) List(ctx context.Context, category string) ([]model.Item, error) {
	q := r.db.WithContext(ctx).Model(&model.Item{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var items []model.Item
	err := q.Order("created_at ASC").Find(&items).Error
	return items, err
}

func (r *itemRepo) ListLowStock(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Where("quantity <= minimum_quantity").
		Order("quantity ASC").
		Find(&items).Error
	return items, err
}

func (r *itemRepo) Update(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepo) AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) error {
	return r.adjust(r.db.WithContext(ctx), id, delta)
}

func (r *itemRepo) AdjustQuantityTx(tx *gorm.DB, id uuid.UUID, delta int) error {
	return r.adjust(tx, id, delta)
}

// adjust is the single mutation primitive for item quantities: a conditional
// UPDATE that only fires when the resulting quantity stays non-negative.
// Zero rows affected means either an insufficient balance or a missing item —
// a follow-up read disambiguates.
func (r *itemRepo) adjust(db *gorm.DB, id uuid.UUID, delta int) error {
	res := db.Model(&model.Item{}).
		Where("id = ? AND quantity + ? >= 0", id, delta).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if res.Error != nil {
		return apierror.Wrap(apierror.DependencyFailure, res.Error, "stock adjustment failed")
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var item model.Item
	if err := db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.E(apierror.NotFound, "item %s not found", id)
		}
		return apierror.Wrap(apierror.DependencyFailure, err, "stock adjustment failed")
	}
	return apierror.E(apierror.InsufficientStock,
		"insufficient stock for %q: requested %d, available %d", item.Name, -delta, item.Quantity)
}

func (r *itemRepo) DB() *gorm.DB { return r.db }

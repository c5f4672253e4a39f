package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gobro228/ambulance-site/internal/apierror"
	"github.com/gobro228/ambulance-site/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CallRepository is the call collaborator consumed by the inventory core:
// usage annotations are appended onto calls, and the backfill utility asks
// for calls that have none. Call CRUD itself is the dispatch surface.
type CallRepository interface {
	Create(ctx context.Context, call *model.Call) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Call, error)
	List(ctx context.Context) ([]model.Call, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, completedAt *time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error

	AppendUsageRef(ctx context.Context, ref *model.CallUsageRef) error
	ListWithoutUsageRefs(ctx context.Context) ([]model.Call, error)
}

type callRepo struct{ db *gorm.DB }

func NewCallRepository(db *gorm.DB) CallRepository { return &callRepo{db: db} }

func (r *callRepo) Create(ctx context.Context, call *model.Call) error {
	return r.db.WithContext(ctx).Create(call).Error
}

func (r *callRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Call, error) {
	var call model.Call
	err := r.db.WithContext(ctx).Preload("UsageRefs").First(&call, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.E(apierror.NotFound, "call %s not found", id)
		}
		return nil, apierror.Wrap(apierror.DependencyFailure, err, "call lookup failed")
	}
	return &call, nil
}

func (r *callRepo) List(ctx context.Context) ([]model.Call, error) {
	var calls []model.Call
	err := r.db.WithContext(ctx).Preload("UsageRefs").Order("created_at DESC").Find(&calls).Error
	return calls, err
}

func (r *callRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string, completedAt *time.Time) error {
	updates := map[string]interface{}{"status": status}
	if completedAt != nil {
		updates["completed_at"] = completedAt
	}
	res := r.db.WithContext(ctx).Model(&model.Call{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return apierror.Wrap(apierror.DependencyFailure, res.Error, "call status update failed")
	}
	if res.RowsAffected == 0 {
		return apierror.E(apierror.NotFound, "call %s not found", id)
	}
	return nil
}

func (r *callRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Call{}, "id = ?", id)
	if res.Error != nil {
		return apierror.Wrap(apierror.DependencyFailure, res.Error, "call delete failed")
	}
	if res.RowsAffected == 0 {
		return apierror.E(apierror.NotFound, "call %s not found", id)
	}
	return nil
}

func (r *callRepo) AppendUsageRef(ctx context.Context, ref *model.CallUsageRef) error {
	// The parent call must exist; annotations are never orphaned.
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Call{}).
		Where("id = ?", ref.CallID).Count(&count).Error; err != nil {
		return apierror.Wrap(apierror.DependencyFailure, err, "call lookup failed")
	}
	if count == 0 {
		return apierror.E(apierror.NotFound, "call %s not found", ref.CallID)
	}
	return r.db.WithContext(ctx).Create(ref).Error
}

func (r *callRepo) ListWithoutUsageRefs(ctx context.Context) ([]model.Call, error) {
	var calls []model.Call
	err := r.db.WithContext(ctx).
		Where("NOT EXISTS (SELECT 1 FROM call_usage_refs WHERE call_usage_refs.call_id = calls.id)").
		Order("created_at ASC").
		Find(&calls).Error
	return calls, err
}

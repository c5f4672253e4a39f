package repository

import (
	"context"
	"errors"

	"github.com/gobro228/ambulance-site/internal/apierror"
	"github.com/gobro228/ambulance-site/internal/model"

	"gorm.io/gorm"
)

// KitRepository stores the preset kit definitions. Kits change only through
// seeding or administrative action, never through consumption.
type KitRepository interface {
	Create(ctx context.Context, kit *model.Kit) error
	FindByNameAndCallType(ctx context.Context, name, callType string) (*model.Kit, error)
	// FindByCallType returns gorm.ErrRecordNotFound untouched when no kit
	// matches — callers treat absence as "no recommended kit", not a failure.
	FindByCallType(ctx context.Context, callType string) (*model.Kit, error)
	List(ctx context.Context) ([]model.Kit, error)
}

type kitRepo struct{ db *gorm.DB }

func NewKitRepository(db *gorm.DB) KitRepository { return &kitRepo{db: db} }

func (r *kitRepo) Create(ctx context.Context, kit *model.Kit) error {
	return r.db.WithContext(ctx).Create(kit).Error
}

func (r *kitRepo) FindByNameAndCallType(ctx context.Context, name, callType string) (*model.Kit, error) {
	var kit model.Kit
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("name = ? AND call_type = ?", name, callType).
		First(&kit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.E(apierror.NotFound, "kit %q (%s) not found", name, callType)
		}
		return nil, apierror.Wrap(apierror.DependencyFailure, err, "kit lookup failed")
	}
	return &kit, nil
}

func (r *kitRepo) FindByCallType(ctx context.Context, callType string) (*model.Kit, error) {
	var kit model.Kit
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("call_type = ?", callType).
		First(&kit).Error
	if err != nil {
		return nil, err
	}
	return &kit, nil
}

func (r *kitRepo) List(ctx context.Context) ([]model.Kit, error) {
	var kits []model.Kit
	err := r.db.WithContext(ctx).Preload("Items").Order("created_at ASC").Find(&kits).Error
	return kits, err
}

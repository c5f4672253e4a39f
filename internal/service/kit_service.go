package service

import (
	"context"
	"errors"

	"github.com/gobro228/ambulance-site/internal/apierror"
	"github.com/gobro228/ambulance-site/internal/dto"
	"github.com/gobro228/ambulance-site/internal/model"
	"github.com/gobro228/ambulance-site/internal/repository"
	"github.com/gobro228/ambulance-site/internal/seed"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// KitService exposes the preset kit registry. Kits are read-only at request
// time; mutation happens only through seeding.
type KitService interface {
	// GetByCallType returns the kit for a call type with each entry enriched
	// with live name/unit/available from the catalog. Absence is a sentinel
	// (Found=false), not an error.
	GetByCallType(ctx context.Context, callType string) (*dto.KitLookupResponse, error)
	ListKits(ctx context.Context) ([]dto.KitResponse, error)
	// SeedDefaultKits upserts the fixture kits keyed by (name, call type),
	// resolving item references by name and skipping unresolved ones.
	SeedDefaultKits(ctx context.Context, fixtures []seed.KitFixture) error
}

type kitService struct {
	kits  repository.KitRepository
	items repository.ItemRepository
}

func NewKitService(kits repository.KitRepository, items repository.ItemRepository) KitService {
	return &kitService{kits: kits, items: items}
}

func (s *kitService) GetByCallType(ctx context.Context, callType string) (*dto.KitLookupResponse, error) {
	kit, err := s.kits.FindByCallType(ctx, callType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.KitLookupResponse{Found: false}, nil
		}
		return nil, apierror.Wrap(apierror.DependencyFailure, err, "kit lookup failed")
	}
	resp := s.enrich(ctx, kit)
	return &dto.KitLookupResponse{Found: true, Kit: resp}, nil
}

func (s *kitService) ListKits(ctx context.Context) ([]dto.KitResponse, error) {
	kits, err := s.kits.List(ctx)
	if err != nil {
		return nil, apierror.Wrap(apierror.DependencyFailure, err, "failed to list kits")
	}
	resp := make([]dto.KitResponse, 0, len(kits))
	for i := range kits {
		resp = append(resp, *s.enrich(ctx, &kits[i]))
	}
	return resp, nil
}

// enrich performs the read-time join: every kit entry picks up the item's
// current name, unit and available quantity. Nothing here is persisted, so
// availability always reflects live stock.
func (s *kitService) enrich(ctx context.Context, kit *model.Kit) *dto.KitResponse {
	resp := &dto.KitResponse{
		ID:          kit.ID.String(),
		Name:        kit.Name,
		CallType:    kit.CallType,
		Description: kit.Description,
		Items:       make([]dto.KitItemResponse, 0, len(kit.Items)),
	}
	for _, ki := range kit.Items {
		entry := dto.KitItemResponse{
			ItemID:   ki.ItemID.String(),
			Quantity: ki.Quantity,
			Required: ki.Required,
		}
		if item, err := s.items.FindByID(ctx, ki.ItemID); err == nil {
			entry.Name = item.Name
			entry.Unit = item.Unit
			entry.Available = item.Quantity
		} else {
			log.Warn().Str("item_id", ki.ItemID.String()).Str("kit", kit.Name).
				Msg("kit references missing item")
		}
		resp.Items = append(resp.Items, entry)
	}
	return resp
}

func (s *kitService) SeedDefaultKits(ctx context.Context, fixtures []seed.KitFixture) error {
	for _, fx := range fixtures {
		if _, err := s.kits.FindByNameAndCallType(ctx, fx.Name, fx.CallType); err == nil {
			// already seeded — idempotent no-op
			log.Debug().Str("kit", fx.Name).Msg("seed: kit already present, skipping")
			continue
		} else if !apierror.IsKind(err, apierror.NotFound) {
			return err
		}

		kit := &model.Kit{
			Name:     fx.Name,
			CallType: fx.CallType,
		}
		if fx.Description != "" {
			descr := fx.Description
			kit.Description = &descr
		}
		for _, ki := range fx.Items {
			item, err := s.items.FindByName(ctx, ki.ItemName)
			if err != nil {
				// Unresolved references are skipped, not fatal: the rest of
				// the kit is still worth having.
				log.Warn().Str("kit", fx.Name).Str("item", ki.ItemName).
					Msg("seed: kit item not found in catalog, skipping")
				continue
			}
			kit.Items = append(kit.Items, model.KitItem{
				ItemID:   item.ID,
				Quantity: ki.Quantity,
				Required: ki.Required,
			})
		}
		if err := s.kits.Create(ctx, kit); err != nil {
			return apierror.Wrap(apierror.DependencyFailure, err, "failed to seed kit %q", fx.Name)
		}
		log.Info().Str("kit", fx.Name).Str("call_type", fx.CallType).
			Int("items", len(kit.Items)).Msg("seed: kit created")
	}
	return nil
}

package service

import (
	"context"
	"time"

	"github.com/gobro228/ambulance-site/internal/apierror"
	"github.com/gobro228/ambulance-site/internal/dto"
	"github.com/gobro228/ambulance-site/internal/model"
	"github.com/gobro228/ambulance-site/internal/repository"

	"github.com/google/uuid"
)

// CatalogService manages item definitions and category reads. Quantity
// mutations go through StockService — the catalog only handles definition
// CRUD and snapshot reads.
type CatalogService interface {
	CreateItem(ctx context.Context, req dto.CreateItemRequest) (*dto.ItemResponse, error)
	GetItem(ctx context.Context, id uuid.UUID) (*dto.ItemResponse, error)
	UpdateItem(ctx context.Context, id uuid.UUID, req dto.UpdateItemRequest) (*dto.ItemResponse, error)
	ListItems(ctx context.Context, filter dto.ItemFilter) ([]dto.ItemResponse, error)
	ListLowStock(ctx context.Context) ([]dto.ItemResponse, error)
	ListCategories(ctx context.Context) ([]dto.CategoryResponse, error)
}

type catalogService struct {
	items      repository.ItemRepository
	categories repository.CategoryRepository
}

func NewCatalogService(items repository.ItemRepository, categories repository.CategoryRepository) CatalogService {
	return &catalogService{items: items, categories: categories}
}

func mapItem(i model.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:          i.ID.String(),
		Name:        i.Name,
		Description: i.Description,
		Category:    i.Category,
		Unit:        i.Unit,
		Quantity:    i.Quantity,
		MinQuantity: i.MinQuantity,
		LowStock:    i.IsLowStock(),
		CreatedAt:   i.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   i.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func (s *catalogService) CreateItem(ctx context.Context, req dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if _, err := s.categories.FindByName(ctx, req.Category); err != nil {
		if apierror.IsKind(err, apierror.NotFound) {
			return nil, apierror.E(apierror.InvalidArgument, "unknown category %q", req.Category)
		}
		return nil, err
	}
	if existing, err := s.items.FindByNameAndCategory(ctx, req.Name, req.Category); err == nil && existing != nil {
		return nil, apierror.E(apierror.Duplicate,
			"item %q already exists in category %q", req.Name, req.Category)
	} else if err != nil && !apierror.IsKind(err, apierror.NotFound) {
		return nil, err
	}

	item := &model.Item{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Unit:        req.Unit,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, apierror.Wrap(apierror.DependencyFailure, err, "failed to create item %q", req.Name)
	}
	resp := mapItem(*item)
	return &resp, nil
}

func (s *catalogService) GetItem(ctx context.Context, id uuid.UUID) (*dto.ItemResponse, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapItem(*item)
	return &resp, nil
}

// UpdateItem merges only the supplied fields; updated_at is refreshed by the
// store on every save.
func (s *catalogService) UpdateItem(ctx context.Context, id uuid.UUID, req dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Category != nil {
		if _, err := s.categories.FindByName(ctx, *req.Category); err != nil {
			return nil, apierror.E(apierror.InvalidArgument, "unknown category %q", *req.Category)
		}
		item.Category = *req.Category
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return nil, apierror.E(apierror.InvalidArgument, "quantity must not be negative")
		}
		item.Quantity = *req.Quantity
	}
	if req.MinQuantity != nil {
		if *req.MinQuantity < 0 {
			return nil, apierror.E(apierror.InvalidArgument, "minimum_quantity must not be negative")
		}
		item.MinQuantity = *req.MinQuantity
	}
	if err := s.items.Update(ctx, item); err != nil {
		return nil, apierror.Wrap(apierror.DependencyFailure, err, "failed to update item %s", id)
	}
	resp := mapItem(*item)
	return &resp, nil
}

func (s *catalogService) ListItems(ctx context.Context, filter dto.ItemFilter) ([]dto.ItemResponse, error) {
	items, err := s.items.List(ctx, filter.Category)
	if err != nil {
		return nil, apierror.Wrap(apierror.DependencyFailure, err, "failed to list items")
	}
	resp := make([]dto.ItemResponse, 0, len(items))
	for _, i := range items {
		resp = append(resp, mapItem(i))
	}
	return resp, nil
}

func (s *catalogService) ListLowStock(ctx context.Context) ([]dto.ItemResponse, error) {
	items, err := s.items.ListLowStock(ctx)
	if err != nil {
		return nil, apierror.Wrap(apierror.DependencyFailure, err, "failed to list low-stock items")
	}
	resp := make([]dto.ItemResponse, 0, len(items))
	for _, i := range items {
		resp = append(resp, mapItem(i))
	}
	return resp, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, apierror.Wrap(apierror.DependencyFailure, err, "failed to list categories")
	}
	resp := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		resp = append(resp, dto.CategoryResponse{
			ID:          c.ID.String(),
			Name:        c.Name,
			Description: c.Description,
			CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return resp, nil
}

package service

import (
	"context"
	"sync"
	"time"

	"github.com/gobro228/ambulance-site/internal/apierror"
	"github.com/gobro228/ambulance-site/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── In-memory ItemRepository stub ────────────────────────────────────────────

type stubItemRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*model.Item
	order []uuid.UUID // insertion order, keeps List deterministic
}

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{items: make(map[uuid.UUID]*model.Item)}
}

func (r *stubItemRepo) Create(_ context.Context, item *model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.CreatedAt = time.Now().UTC()
	r.items[item.ID] = item
	r.order = append(r.order, item.ID)
	return nil
}

func (r *stubItemRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, apierror.E(apierror.NotFound, "item %s not found", id)
	}
	cp := *item
	return &cp, nil
}

func (r *stubItemRepo) FindByNameAndCategory(_ context.Context, name, category string) (*model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.Name == name && item.Category == category {
			cp := *item
			return &cp, nil
		}
	}
	return nil, apierror.E(apierror.NotFound, "item %q not found in category %q", name, category)
}

func (r *stubItemRepo) FindByName(_ context.Context, name string) (*model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.Name == name {
			cp := *item
			return &cp, nil
		}
	}
	return nil, apierror.E(apierror.NotFound, "item %q not found", name)
}

func (r *stubItemRepo) List(_ context.Context, category string) ([]model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []model.Item
	for _, id := range r.order {
		item := r.items[id]
		if category != "" && item.Category != category {
			continue
		}
		result = append(result, *item)
	}
	return result, nil
}

func (r *stubItemRepo) ListLowStock(_ context.Context) ([]model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []model.Item
	for _, id := range r.order {
		if item := r.items[id]; item.IsLowStock() {
			result = append(result, *item)
		}
	}
	return result, nil
}

func (r *stubItemRepo) Update(_ context.Context, item *model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return apierror.E(apierror.NotFound, "item %s not found", item.ID)
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

// adjust mirrors the conditional-update semantics of the real repository:
// the check and the write happen under one lock, so concurrent callers
// cannot drive the quantity negative.
func (r *stubItemRepo) adjust(id uuid.UUID, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return apierror.E(apierror.NotFound, "item %s not found", id)
	}
	if item.Quantity+delta < 0 {
		return apierror.E(apierror.InsufficientStock,
			"insufficient stock for %q: requested %d, available %d", item.Name, -delta, item.Quantity)
	}
	item.Quantity += delta
	return nil
}

func (r *stubItemRepo) AdjustQuantity(_ context.Context, id uuid.UUID, delta int) error {
	return r.adjust(id, delta)
}

func (r *stubItemRepo) AdjustQuantityTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	return r.adjust(id, delta)
}

func (r *stubItemRepo) DB() *gorm.DB { return nil }

// ── In-memory CategoryRepository stub ────────────────────────────────────────

type stubCategoryRepo struct {
	mu         sync.Mutex
	categories []*model.Category
}

func newStubCategoryRepo() *stubCategoryRepo { return &stubCategoryRepo{} }

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categories = append(r.categories, c)
	return nil
}

func (r *stubCategoryRepo) List(_ context.Context) ([]model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		result = append(result, *c)
	}
	return result, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, apierror.E(apierror.NotFound, "category %q not found", name)
}

// ── In-memory UsageRepository stub ───────────────────────────────────────────

type stubUsageRepo struct {
	mu      sync.Mutex
	records []model.UsageRecord
}

func newStubUsageRepo() *stubUsageRepo { return &stubUsageRepo{} }

func (r *stubUsageRepo) Create(_ context.Context, rec *model.UsageRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	r.records = append(r.records, *rec)
	return nil
}

func (r *stubUsageRepo) CreateTx(_ *gorm.DB, rec *model.UsageRecord) error {
	return r.Create(context.Background(), rec)
}

func (r *stubUsageRepo) ListByCall(_ context.Context, callID uuid.UUID) ([]model.UsageRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []model.UsageRecord
	for _, rec := range r.records {
		if rec.CallID == callID {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (r *stubUsageRepo) ListByItem(_ context.Context, itemID uuid.UUID) ([]model.UsageRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []model.UsageRecord
	for _, rec := range r.records {
		if rec.ItemID == itemID {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (r *stubUsageRepo) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// ── In-memory CallRepository stub ────────────────────────────────────────────

type stubCallRepo struct {
	mu    sync.Mutex
	calls map[uuid.UUID]*model.Call
	refs  []model.CallUsageRef

	failAppend bool // simulate annotation outage
}

func newStubCallRepo() *stubCallRepo {
	return &stubCallRepo{calls: make(map[uuid.UUID]*model.Call)}
}

func (r *stubCallRepo) Create(_ context.Context, call *model.Call) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if call.ID == uuid.Nil {
		call.ID = uuid.New()
	}
	if call.Status == "" {
		call.Status = model.CallStatusAccepted
	}
	if call.CreatedAt.IsZero() {
		call.CreatedAt = time.Now().UTC()
	}
	r.calls[call.ID] = call
	return nil
}

func (r *stubCallRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Call, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	call, ok := r.calls[id]
	if !ok {
		return nil, apierror.E(apierror.NotFound, "call %s not found", id)
	}
	cp := *call
	return &cp, nil
}

func (r *stubCallRepo) List(_ context.Context) ([]model.Call, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []model.Call
	for _, call := range r.calls {
		result = append(result, *call)
	}
	return result, nil
}

func (r *stubCallRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string, completedAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	call, ok := r.calls[id]
	if !ok {
		return apierror.E(apierror.NotFound, "call %s not found", id)
	}
	call.Status = status
	call.CompletedAt = completedAt
	return nil
}

func (r *stubCallRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.calls[id]; !ok {
		return apierror.E(apierror.NotFound, "call %s not found", id)
	}
	delete(r.calls, id)
	return nil
}

func (r *stubCallRepo) AppendUsageRef(_ context.Context, ref *model.CallUsageRef) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAppend {
		return apierror.E(apierror.DependencyFailure, "annotation store unavailable")
	}
	if _, ok := r.calls[ref.CallID]; !ok {
		return apierror.E(apierror.NotFound, "call %s not found", ref.CallID)
	}
	r.refs = append(r.refs, *ref)
	return nil
}

func (r *stubCallRepo) ListWithoutUsageRefs(_ context.Context) ([]model.Call, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	annotated := make(map[uuid.UUID]bool)
	for _, ref := range r.refs {
		annotated[ref.CallID] = true
	}
	var result []model.Call
	for _, call := range r.calls {
		if !annotated[call.ID] {
			result = append(result, *call)
		}
	}
	return result, nil
}

// ── In-memory KitRepository stub ─────────────────────────────────────────────

type stubKitRepo struct {
	mu   sync.Mutex
	kits []*model.Kit
}

func newStubKitRepo() *stubKitRepo { return &stubKitRepo{} }

func (r *stubKitRepo) Create(_ context.Context, kit *model.Kit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if kit.ID == uuid.Nil {
		kit.ID = uuid.New()
	}
	r.kits = append(r.kits, kit)
	return nil
}

func (r *stubKitRepo) FindByNameAndCallType(_ context.Context, name, callType string) (*model.Kit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, kit := range r.kits {
		if kit.Name == name && kit.CallType == callType {
			cp := *kit
			return &cp, nil
		}
	}
	return nil, apierror.E(apierror.NotFound, "kit %q not found", name)
}

func (r *stubKitRepo) FindByCallType(_ context.Context, callType string) (*model.Kit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, kit := range r.kits {
		if kit.CallType == callType {
			cp := *kit
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubKitRepo) List(_ context.Context) ([]model.Kit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]model.Kit, 0, len(r.kits))
	for _, kit := range r.kits {
		result = append(result, *kit)
	}
	return result, nil
}

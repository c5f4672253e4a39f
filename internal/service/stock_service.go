package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/gobro228/ambulance-site/internal/apierror"
	"github.com/gobro228/ambulance-site/internal/dto"
	"github.com/gobro228/ambulance-site/internal/model"
	"github.com/gobro228/ambulance-site/internal/repository"
	"github.com/gobro228/ambulance-site/internal/seed"
	"github.com/gobro228/ambulance-site/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// StockService is the orchestration layer over the catalog, the kit registry
// and the usage ledger. It owns the invariant that every successful consume
// appends exactly one ledger record and subtracts the same quantity from the
// item, as one logical unit of work.
type StockService interface {
	Consume(ctx context.Context, req dto.RecordUsageRequest) (*dto.UsageRecordResponse, error)
	Replenish(ctx context.Context, itemID uuid.UUID, amount int) (*dto.ItemResponse, error)
	ListUsage(ctx context.Context, filter dto.UsageFilter) ([]dto.UsageRecordResponse, error)

	// SeedCatalogAndKits loads the fixed categories, items and kits. Safe to
	// re-run any number of times: present rows are skipped, never duplicated.
	SeedCatalogAndKits(ctx context.Context, items []seed.ItemFixture, kits []seed.KitFixture) error

	// BackfillUsage synthesizes historical usage for calls that have no usage
	// annotation yet. One-shot migration utility, not steady-state API.
	BackfillUsage(ctx context.Context) error
}

type stockService struct {
	items      repository.ItemRepository
	categories repository.CategoryRepository
	usage      repository.UsageRepository
	calls      repository.CallRepository
	kits       KitService
	dispatcher *worker.Dispatcher
	rng        *rand.Rand
}

// NewStockService wires the stock controller. dispatcher may be nil (no
// alerting); rng is injected so the backfill is deterministic under test.
func NewStockService(
	items repository.ItemRepository,
	categories repository.CategoryRepository,
	usage repository.UsageRepository,
	calls repository.CallRepository,
	kits KitService,
	dispatcher *worker.Dispatcher,
	rng *rand.Rand,
) StockService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &stockService{
		items:      items,
		categories: categories,
		usage:      usage,
		calls:      calls,
		kits:       kits,
		dispatcher: dispatcher,
		rng:        rng,
	}
}

// runTx executes fn inside a GORM transaction when db is available, or calls
// fn(nil) directly when db is nil (unit test mode with stub repositories).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Consume ──────────────────────────────────────────────────────────────────
// The decrement and the ledger append commit as one transaction; the
// conditional decrement runs first, so a losing concurrent caller aborts
// before any ledger row exists. The call-side annotation happens after
// commit and is advisory: its failure never rolls back stock.

func (s *stockService) Consume(ctx context.Context, req dto.RecordUsageRequest) (*dto.UsageRecordResponse, error) {
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return nil, apierror.E(apierror.InvalidArgument, "invalid item_id %q", req.ItemID)
	}
	callID, err := uuid.Parse(req.CallID)
	if err != nil {
		return nil, apierror.E(apierror.InvalidArgument, "invalid call_id %q", req.CallID)
	}
	if req.Quantity <= 0 {
		return nil, apierror.E(apierror.InvalidArgument, "quantity must be positive, got %d", req.Quantity)
	}

	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.Quantity < req.Quantity {
		return nil, apierror.E(apierror.InsufficientStock,
			"insufficient stock for %q: requested %d, available %d (short by %d)",
			item.Name, req.Quantity, item.Quantity, req.Quantity-item.Quantity)
	}

	rec := &model.UsageRecord{
		ItemID:   itemID,
		CallID:   callID,
		Quantity: req.Quantity,
		Notes:    req.Notes,
		UsedAt:   time.Now().UTC(),
	}
	txErr := runTx(ctx, s.items.DB(), func(tx *gorm.DB) error {
		if err := s.items.AdjustQuantityTx(tx, itemID, -req.Quantity); err != nil {
			return err
		}
		return s.usage.CreateTx(tx, rec)
	})
	if txErr != nil {
		return nil, txErr
	}

	// Best-effort call annotation: log and continue on failure — the ledger
	// and the stock are already consistent.
	ref := &model.CallUsageRef{CallID: callID, ItemID: itemID, Quantity: req.Quantity, Notes: req.Notes}
	if err := s.calls.AppendUsageRef(ctx, ref); err != nil {
		log.Warn().Err(err).Str("call_id", callID.String()).Str("item_id", itemID.String()).
			Msg("consume: call annotation failed, usage recorded anyway")
	}

	s.maybeAlertLowStock(ctx, itemID, item.Name)

	resp := mapUsage(*rec)
	resp.ItemName = item.Name
	return &resp, nil
}

func (s *stockService) Replenish(ctx context.Context, itemID uuid.UUID, amount int) (*dto.ItemResponse, error) {
	if amount <= 0 {
		return nil, apierror.E(apierror.InvalidArgument, "replenish amount must be positive, got %d", amount)
	}
	if err := s.items.AdjustQuantity(ctx, itemID, amount); err != nil {
		return nil, err
	}
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	log.Info().Str("item", item.Name).Int("amount", amount).Int("quantity", item.Quantity).
		Msg("stock replenished")
	resp := mapItem(*item)
	return &resp, nil
}

func (s *stockService) ListUsage(ctx context.Context, filter dto.UsageFilter) ([]dto.UsageRecordResponse, error) {
	var recs []model.UsageRecord
	var err error
	switch {
	case filter.CallID != "":
		callID, perr := uuid.Parse(filter.CallID)
		if perr != nil {
			return nil, apierror.E(apierror.InvalidArgument, "invalid call_id %q", filter.CallID)
		}
		recs, err = s.usage.ListByCall(ctx, callID)
	case filter.ItemID != "":
		itemID, perr := uuid.Parse(filter.ItemID)
		if perr != nil {
			return nil, apierror.E(apierror.InvalidArgument, "invalid item_id %q", filter.ItemID)
		}
		recs, err = s.usage.ListByItem(ctx, itemID)
	default:
		return nil, apierror.E(apierror.InvalidArgument, "either call_id or item_id is required")
	}
	if err != nil {
		return nil, apierror.Wrap(apierror.DependencyFailure, err, "failed to list usage records")
	}
	resp := make([]dto.UsageRecordResponse, 0, len(recs))
	for _, rec := range recs {
		r := mapUsage(rec)
		if rec.Item != nil {
			r.ItemName = rec.Item.Name
		}
		resp = append(resp, r)
	}
	return resp, nil
}

func mapUsage(rec model.UsageRecord) dto.UsageRecordResponse {
	return dto.UsageRecordResponse{
		ID:       rec.ID.String(),
		ItemID:   rec.ItemID.String(),
		CallID:   rec.CallID.String(),
		Quantity: rec.Quantity,
		Notes:    rec.Notes,
		UsedAt:   rec.UsedAt.UTC().Format(time.RFC3339),
	}
}

// maybeAlertLowStock enqueues a low-stock alert when the item has crossed its
// threshold. Notification only — nothing is reordered automatically.
func (s *stockService) maybeAlertLowStock(ctx context.Context, itemID uuid.UUID, name string) {
	if s.dispatcher == nil {
		return
	}
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil || !item.IsLowStock() {
		return
	}
	payload := worker.StockAlertPayload{
		ItemID:      item.ID.String(),
		Name:        item.Name,
		Quantity:    item.Quantity,
		MinQuantity: item.MinQuantity,
	}
	if err := s.dispatcher.EnqueueStockAlert(ctx, payload); err != nil {
		log.Warn().Err(err).Str("item", name).Msg("failed to enqueue low-stock alert")
	}
}

// ── Seeding ──────────────────────────────────────────────────────────────────

func (s *stockService) SeedCatalogAndKits(ctx context.Context, items []seed.ItemFixture, kits []seed.KitFixture) error {
	for _, name := range model.CategoryNames {
		if _, err := s.categories.FindByName(ctx, name); err == nil {
			continue
		} else if !apierror.IsKind(err, apierror.NotFound) {
			return err
		}
		if err := s.categories.Create(ctx, &model.Category{Name: name}); err != nil {
			// Benign duplicate when two processes race the seed.
			log.Warn().Err(err).Str("category", name).Msg("seed: category insert skipped")
			continue
		}
		log.Info().Str("category", name).Msg("seed: category created")
	}

	for _, fx := range items {
		if _, err := s.items.FindByNameAndCategory(ctx, fx.Name, fx.Category); err == nil {
			log.Debug().Str("item", fx.Name).Msg("seed: item already present, skipping")
			continue
		} else if !apierror.IsKind(err, apierror.NotFound) {
			return err
		}
		item := &model.Item{
			Name:        fx.Name,
			Description: fx.Description,
			Category:    fx.Category,
			Unit:        fx.Unit,
			Quantity:    seed.DefaultQuantity,
			MinQuantity: seed.DefaultMinQuantity,
		}
		if err := s.items.Create(ctx, item); err != nil {
			log.Warn().Err(err).Str("item", fx.Name).Msg("seed: item insert skipped")
			continue
		}
		log.Info().Str("item", fx.Name).Str("category", fx.Category).Msg("seed: item created")
	}

	return s.kits.SeedDefaultKits(ctx, kits)
}

// ── Backfill ─────────────────────────────────────────────────────────────────
// For every call lacking usage annotations, synthesize 1–3 random item picks
// with quantities 1–5 and run the consume sequence for each. A pick whose
// quantity would exceed availability is skipped, never failed: the backfill
// shares the non-negative stock invariant with the live consume path.

func (s *stockService) BackfillUsage(ctx context.Context) error {
	calls, err := s.calls.ListWithoutUsageRefs(ctx)
	if err != nil {
		return apierror.Wrap(apierror.DependencyFailure, err, "backfill: failed to list calls")
	}
	if len(calls) == 0 {
		log.Info().Msg("backfill: no calls without usage records")
		return nil
	}
	pool, err := s.items.List(ctx, "")
	if err != nil {
		return apierror.Wrap(apierror.DependencyFailure, err, "backfill: failed to list items")
	}
	if len(pool) == 0 {
		log.Warn().Msg("backfill: empty catalog, nothing to synthesize")
		return nil
	}

	var written, skipped int
	for _, call := range calls {
		picks := s.rng.Intn(3) + 1
		if picks > len(pool) {
			picks = len(pool)
		}
		for _, idx := range s.rng.Perm(len(pool))[:picks] {
			item := pool[idx]
			qty := s.rng.Intn(5) + 1

			rec := &model.UsageRecord{
				ItemID:   item.ID,
				CallID:   call.ID,
				Quantity: qty,
				UsedAt:   call.CreatedAt,
			}
			txErr := runTx(ctx, s.items.DB(), func(tx *gorm.DB) error {
				if err := s.items.AdjustQuantityTx(tx, item.ID, -qty); err != nil {
					return err
				}
				return s.usage.CreateTx(tx, rec)
			})
			if txErr != nil {
				if apierror.IsKind(txErr, apierror.InsufficientStock) {
					skipped++
					continue
				}
				return txErr
			}

			ref := &model.CallUsageRef{CallID: call.ID, ItemID: item.ID, Quantity: qty}
			if err := s.calls.AppendUsageRef(ctx, ref); err != nil {
				log.Warn().Err(err).Str("call_id", call.ID.String()).
					Msg("backfill: call annotation failed")
			}
			written++
		}
	}
	log.Info().Int("calls", len(calls)).Int("records", written).Int("skipped", skipped).
		Msg("backfill: completed")
	return nil
}

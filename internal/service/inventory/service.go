package inventory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/mbodj/frigo/internal/domain/models"
)

// Repository is the persistence surface the store depends on.
type Repository interface {
	LoadItems(ctx context.Context) ([]models.Item, error)
	SaveItems(ctx context.Context, items []models.Item) error
}

// Store describes the item operations the HTTP layer and the scheduler may
// perform. All mutations funnel through it so persistence and in-memory state
// stay consistent.
type Store interface {
	Load(ctx context.Context) ([]models.Item, error)
	Upsert(ctx context.Context, item models.Item) ([]models.Item, error)
	AdjustQuantity(ctx context.Context, id string, delta int) ([]models.Item, error)
	SetExpiration(ctx context.Context, id, exp string) ([]models.Item, error)
}

// Service is the single source of truth for the item collection. A mutex
// serializes overlapping mutations so they apply in the order initiated and
// the final merged state is what gets persisted.
type Service struct {
	repo   Repository
	logger *zap.Logger

	mu    sync.Mutex
	items []models.Item
}

// NewService wires a new inventory store instance.
func NewService(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// Load refreshes the snapshot from storage and returns it. On a read failure
// the previous snapshot is left untouched and returned alongside a wrapped
// ErrStorageRead, so a broken read degrades instead of wiping state.
func (s *Service) Load(ctx context.Context) ([]models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repo.LoadItems(ctx)
	if err != nil {
		s.logger.Error("load failed, keeping previous snapshot", zap.Error(err))
		return cloneItems(s.items), fmt.Errorf("%w: %v", models.ErrStorageRead, err)
	}

	s.items = items
	return cloneItems(s.items), nil
}

// Upsert inserts or replaces an item by barcode. An existing entry is
// replaced at the same position; a new one is appended. The item is
// re-validated even though the add flow validates before calling.
func (s *Service) Upsert(ctx context.Context, item models.Item) ([]models.Item, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	item.ID = strings.TrimSpace(item.ID)
	item.Name = strings.TrimSpace(item.Name)
	item.Amount = strings.TrimSpace(item.Amount)

	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneItems(s.items)
	replaced := false
	for i := range next {
		if next[i].ID == item.ID {
			next[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		next = append(next, item)
	}

	return s.commit(ctx, next)
}

// AdjustQuantity shifts an item's quantity by delta, clamping at zero. An
// unknown id is a no-op returning the current snapshot.
func (s *Service) AdjustQuantity(ctx context.Context, id string, delta int) ([]models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneItems(s.items)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		qty := next[i].Qty + delta
		if qty < 0 {
			qty = 0
		}
		next[i].Qty = qty
		return s.commit(ctx, next)
	}

	s.logger.Debug("quantity adjustment for unknown item ignored", zap.String("id", id))
	return next, nil
}

// SetExpiration replaces an item's expiration date. An unknown id is a no-op
// returning the current snapshot.
func (s *Service) SetExpiration(ctx context.Context, id, exp string) ([]models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneItems(s.items)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		next[i].Exp = exp
		return s.commit(ctx, next)
	}

	s.logger.Debug("expiration update for unknown item ignored", zap.String("id", id))
	return next, nil
}

// commit swaps in the new snapshot and persists it. Persistence is
// best-effort: on a write failure the snapshot keeps the mutation for the
// current session and the caller receives the updated collection together
// with a wrapped ErrStorageWrite.
func (s *Service) commit(ctx context.Context, next []models.Item) ([]models.Item, error) {
	s.items = next

	if err := s.repo.SaveItems(ctx, next); err != nil {
		s.logger.Error("persist failed, in-memory snapshot kept", zap.Error(err))
		return cloneItems(next), fmt.Errorf("%w: %v", models.ErrStorageWrite, err)
	}

	return cloneItems(next), nil
}

// cloneItems copies the snapshot so callers never share the internal slice.
func cloneItems(items []models.Item) []models.Item {
	out := make([]models.Item, len(items))
	copy(out, items)
	return out
}

package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mbodj/frigo/internal/domain/models"
	repo "github.com/mbodj/frigo/internal/repository/sheets"
	"github.com/mbodj/frigo/pkg/dates"
)

// ItemSource is the read-only view of the item store the digest needs.
type ItemSource interface {
	Load(ctx context.Context) ([]models.Item, error)
}

// Service builds the daily expiry digest and the optional spreadsheet export.
type Service struct {
	store       ItemSource
	sheet       repo.Repository
	exportRange string
	logger      *zap.Logger
	now         func() time.Time
}

// NewService wires a new reporting service instance. The sheet repository may
// be nil when the export is disabled.
func NewService(store ItemSource, sheet repo.Repository, exportRange string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:       store,
		sheet:       sheet,
		exportRange: exportRange,
		logger:      logger,
		now:         time.Now,
	}
}

// BuildExpiryDigest classifies every item and formats a short French summary
// of expired and expiring-soon products. Items with unknown expirations are
// only counted, never guessed at.
func (s *Service) BuildExpiryDigest(ctx context.Context) (string, error) {
	items, err := s.store.Load(ctx)
	if err != nil {
		if len(items) == 0 {
			return "", fmt.Errorf("load items for digest: %w", err)
		}
		s.logger.Warn("digest built from last known snapshot", zap.Error(err))
	}

	today := s.now()
	var expired, soon []models.Item
	unknown := 0

	for _, it := range items {
		switch models.ClassifyFreshness(it.Exp, today) {
		case models.FreshnessExpired:
			expired = append(expired, it)
		case models.FreshnessSoon:
			soon = append(soon, it)
		case models.FreshnessUnknown:
			unknown++
		}
	}

	day := dates.ToISODate(today)
	if len(expired) == 0 && len(soon) == 0 {
		return fmt.Sprintf("Frigo (%s): rien à signaler.", day), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Frigo — à surveiller (%s)\n", day)

	if len(expired) > 0 {
		fmt.Fprintf(&b, "Périmés (%d):\n", len(expired))
		for _, it := range expired {
			writeDigestLine(&b, it)
		}
	}
	if len(soon) > 0 {
		fmt.Fprintf(&b, "Bientôt périmés (%d):\n", len(soon))
		for _, it := range soon {
			writeDigestLine(&b, it)
		}
	}
	if unknown > 0 {
		fmt.Fprintf(&b, "Sans date de péremption: %d article(s)\n", unknown)
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

// ExportSnapshot appends one dated row per item to the configured sheet
// range. A nil sheet repository makes this a no-op.
func (s *Service) ExportSnapshot(ctx context.Context) error {
	if s.sheet == nil {
		return nil
	}

	items, err := s.store.Load(ctx)
	if err != nil {
		if len(items) == 0 {
			return fmt.Errorf("load items for export: %w", err)
		}
		s.logger.Warn("export uses last known snapshot", zap.Error(err))
	}

	day := dates.ToISODate(s.now())
	for _, it := range items {
		values := []interface{}{day, it.ID, it.Name, it.Qty, it.Amount, it.Exp}
		if err := s.sheet.AppendRow(ctx, s.exportRange, values); err != nil {
			return fmt.Errorf("export snapshot row for %s: %w", it.ID, err)
		}
	}

	s.logger.Info("inventory snapshot exported", zap.Int("items", len(items)))
	return nil
}

func writeDigestLine(b *strings.Builder, it models.Item) {
	if it.Amount != "" {
		fmt.Fprintf(b, "- %s (%s, exp %s)\n", it.Name, it.Amount, it.Exp)
		return
	}
	fmt.Fprintf(b, "- %s (exp %s)\n", it.Name, it.Exp)
}

package importer

import (
	"context"
	"log/slog"
	"time"

	"squad_catalog/domain"
)

// Importer replaces the stored catalog with the contents of an export file.
// It keeps no state between imports; concurrent imports are last-writer-wins.
type Importer struct {
	store  domain.CatalogStore
	logger *slog.Logger
}

// New constructs an Importer writing to store. A nil logger uses slog.Default().
func New(store domain.CatalogStore, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{store: store, logger: logger}
}

// Import parses raw, normalizes it and replaces the whole catalog in one write.
// Errors are *domain.ImportError of kind ParseFailure or PersistenceFailure;
// nothing is written on a parse failure.
func (im *Importer) Import(ctx context.Context, raw []byte) (domain.ImportSummary, error) {
	start := time.Now()

	rows, err := ParseRows(raw)
	if err != nil {
		im.logger.Error("catalog parse failed", "error", err)
		return domain.ImportSummary{}, err
	}

	products := Build(rows)
	summary := Summarize(products)

	if err := im.store.ReplaceCatalog(ctx, products); err != nil {
		im.logger.Error("catalog replace failed", "products", summary.ProductCount, "error", err)
		return domain.ImportSummary{}, domain.NewPersistenceFailure(err)
	}

	im.logger.Info(
		"catalog imported",
		"rows", len(rows),
		"products", summary.ProductCount,
		"variants", summary.VariantCount,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return summary, nil
}

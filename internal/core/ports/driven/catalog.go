package driven

import (
	"context"

	"github.com/custodia-labs/hdcat/internal/core/domain"
)

// CatalogSource loads the dataset collection from somewhere outside the core.
type CatalogSource interface {
	// Load returns every dataset in storage order.
	Load(ctx context.Context) ([]domain.Dataset, error)

	// Location describes where the catalog comes from (path, URL or "embedded").
	Location() string
}

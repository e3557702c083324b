package ports

import (
	"context"

	"github.com/bnema/prefbot/internal/domain"
)

type CatalogRepository interface {
	Load(ctx context.Context) (*domain.Catalog, error)
}

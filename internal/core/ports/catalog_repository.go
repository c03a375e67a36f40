package ports

import (
	"context"

	"github.com/solucion-eventos/quotation-api/internal/core/domain"
)

// ListFilter carries the optional catalog list filters.
type ListFilter struct {
	Category    string // empty = all categories
	Search      string // optional: accent-insensitive partial match on name or description
	InStockOnly bool   // when true, products with zero stock are excluded
}

// CatalogRepository is read-only access to the fixed product list. There are
// no side effects and no failure modes beyond not-found.
type CatalogRepository interface {
	// FindByID retrieves a product by id, returning domain.ErrProductNotFound
	// when the id is unknown.
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// List returns the products matching filter, in catalog order.
	List(ctx context.Context, filter ListFilter) ([]domain.Product, error)
}

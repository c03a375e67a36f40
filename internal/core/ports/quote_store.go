package ports

import (
	"context"

	"github.com/solucion-eventos/quotation-api/internal/core/domain"
)

// QuoteStore holds in-flight quote sessions. Implementations own session
// expiry: Get must treat an expired quote as absent.
type QuoteStore interface {
	Create(ctx context.Context, q *domain.Quote) error
	// Get retrieves a quote by id, returning domain.ErrQuoteNotFound when the
	// id is unknown or the session has expired.
	Get(ctx context.Context, id string) (*domain.Quote, error)
	Save(ctx context.Context, q *domain.Quote) error
	Delete(ctx context.Context, id string) error
}

package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/solucion-eventos/quotation-api/internal/core/domain"
)

// AddItemInput carries one add-to-cart command. Quantity is clamped to
// [1, stock] at the handler layer; the service re-validates the cumulative
// quantity against stock.
type AddItemInput struct {
	QuoteID   string
	ProductID string
	Quantity  int
}

// ClientInput is the customer contact snapshot as submitted.
type ClientInput struct {
	Name       string
	Phone      string
	Email      string
	NationalID string
}

// ClientValidation is the outcome of validating a client snapshot.
// Errors maps field name (name, phone, email, ci) to a display message;
// it is empty when Valid.
type ClientValidation struct {
	Valid  bool
	Errors map[string]string
}

// CartLineView is one cart line as exposed to callers.
type CartLineView struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// QuoteDetail is the full quote session view.
type QuoteDetail struct {
	ID        string
	Lines     []CartLineView
	Total     decimal.Decimal
	Client    ClientInput
	Valid     ClientValidation
	CreatedAt time.Time
	ExpiresAt time.Time
}

// DocumentResult is a rendered, downloadable quote document.
type DocumentResult struct {
	Filename string
	Content  []byte
}

// QuoteService defines the use-case operations of the quote builder.
type QuoteService interface {
	CreateQuote(ctx context.Context) (*QuoteDetail, error)
	GetQuote(ctx context.Context, quoteID string) (*QuoteDetail, error)
	AddItem(ctx context.Context, input AddItemInput) (*QuoteDetail, error)
	RemoveItem(ctx context.Context, quoteID, productID string) (*QuoteDetail, error)
	// SetClient stores the snapshot unconditionally and reports its validity:
	// editing is never blocked, only the terminal actions are.
	SetClient(ctx context.Context, quoteID string, client ClientInput) (*ClientValidation, error)
	// GenerateDocument renders the downloadable PDF. It fails with
	// domain.ErrEmptyCart or *domain.ValidationError when the preconditions
	// do not hold.
	GenerateDocument(ctx context.Context, quoteID string, mode domain.DocumentMode) (*DocumentResult, error)
	// MessageLink builds the prefilled WhatsApp deep link under the same
	// preconditions as GenerateDocument.
	MessageLink(ctx context.Context, quoteID string) (string, error)
}

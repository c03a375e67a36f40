package ports

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/solucion-eventos/quotation-api/internal/core/domain"
)

// QuoteDocument is the complete description handed to a DocumentRenderer.
// Terms fields parameterise the mode-dependent legal note.
type QuoteDocument struct {
	Mode     domain.DocumentMode
	Company  domain.Company
	Client   domain.ClientInfo
	Lines    []domain.CartLine
	Total    decimal.Decimal
	IssuedAt time.Time

	// Quote terms: how long the estimate stays valid.
	ValidityDays int
	// Reservation terms: required deposit and free-cancellation window.
	DepositPercent    int
	CancellationHours int
}

// DocumentRenderer lays a QuoteDocument out into a downloadable artifact.
type DocumentRenderer interface {
	Render(doc QuoteDocument) ([]byte, error)
}

// CodeGenerator renders a scannable code image (PNG) for the given content.
// Failures are tolerated by callers: a missing code degrades the document,
// it never blocks it.
type CodeGenerator interface {
	Generate(content string, size int) ([]byte, error)
}

// MessageLinkBuilder serialises a quote into a messaging-app deep link.
type MessageLinkBuilder interface {
	Build(company domain.Company, client domain.ClientInfo, lines []domain.CartLine, total decimal.Decimal) string
}

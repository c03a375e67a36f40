package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/solucion-eventos/quotation-api/internal/api/metrics"
	"github.com/solucion-eventos/quotation-api/internal/core/domain"
	"github.com/solucion-eventos/quotation-api/internal/core/ports"
)

// QuoteSettings carries the business parameters of the quote builder.
type QuoteSettings struct {
	// SessionTTL is how long an untouched quote session stays alive.
	SessionTTL time.Duration
	// ValidityDays bounds how long a quote's prices are honoured.
	ValidityDays int
	// DepositPercent and CancellationHours parameterise the reservation terms.
	DepositPercent    int
	CancellationHours int
}

// QuoteService implements ports.QuoteService: it accumulates a cart against
// the fixed catalog, validates the customer snapshot, and emits the two
// external-facing artifacts (PDF document and WhatsApp deep link).
type QuoteService struct {
	catalog   ports.CatalogRepository
	store     ports.QuoteStore
	validator *ClientValidator
	renderer  ports.DocumentRenderer
	links     ports.MessageLinkBuilder
	company   domain.Company
	settings  QuoteSettings
	logger    zerolog.Logger
}

func NewQuoteService(
	catalog ports.CatalogRepository,
	store ports.QuoteStore,
	validator *ClientValidator,
	renderer ports.DocumentRenderer,
	links ports.MessageLinkBuilder,
	company domain.Company,
	settings QuoteSettings,
	logger zerolog.Logger,
) *QuoteService {
	return &QuoteService{
		catalog:   catalog,
		store:     store,
		validator: validator,
		renderer:  renderer,
		links:     links,
		company:   company,
		settings:  settings,
		logger:    logger,
	}
}

// CreateQuote opens a new empty quote session.
func (s *QuoteService) CreateQuote(ctx context.Context) (*ports.QuoteDetail, error) {
	now := time.Now().UTC()
	quote := &domain.Quote{
		ID:        generateQuoteID(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.settings.SessionTTL),
	}
	if err := s.store.Create(ctx, quote); err != nil {
		s.logger.Error().Err(err).Msg("failed to create quote session")
		return nil, err
	}

	metrics.QuotesCreatedTotal.Inc()
	s.logger.Info().Str("quote_id", quote.ID).Msg("quote session created")
	return s.detail(quote), nil
}

// GetQuote returns the current session view.
func (s *QuoteService) GetQuote(ctx context.Context, quoteID string) (*ports.QuoteDetail, error) {
	quote, err := s.store.Get(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	return s.detail(quote), nil
}

// AddItem inserts or increments a cart line. The cart rejects the addition
// with domain.ErrInsufficientStock when the cumulative quantity would exceed
// the product's declared stock, leaving the cart unchanged.
func (s *QuoteService) AddItem(ctx context.Context, input ports.AddItemInput) (*ports.QuoteDetail, error) {
	quote, err := s.store.Get(ctx, input.QuoteID)
	if err != nil {
		return nil, err
	}

	product, err := s.catalog.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	if err := quote.Cart.AddItem(*product, input.Quantity); err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			metrics.StockRejectionsTotal.WithLabelValues(product.ID).Inc()
			s.logger.Warn().
				Str("quote_id", quote.ID).
				Str("product_id", product.ID).
				Int("requested", input.Quantity).
				Int("stock", product.Stock).
				Msg("addition rejected: insufficient stock")
		}
		return nil, err
	}

	if err := s.store.Save(ctx, quote); err != nil {
		return nil, err
	}

	metrics.ItemsAddedTotal.WithLabelValues(product.ID).Inc()
	s.logger.Info().
		Str("quote_id", quote.ID).
		Str("product_id", product.ID).
		Int("quantity", input.Quantity).
		Msg("item added to quote")
	return s.detail(quote), nil
}

// RemoveItem deletes a cart line. Removing an absent product is a no-op.
func (s *QuoteService) RemoveItem(ctx context.Context, quoteID, productID string) (*ports.QuoteDetail, error) {
	quote, err := s.store.Get(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	quote.Cart.RemoveItem(productID)
	if err := s.store.Save(ctx, quote); err != nil {
		return nil, err
	}
	return s.detail(quote), nil
}

// SetClient stores the contact snapshot unconditionally and reports its
// validity. Invalid fields never block editing, only the terminal actions.
func (s *QuoteService) SetClient(ctx context.Context, quoteID string, client ports.ClientInput) (*ports.ClientValidation, error) {
	quote, err := s.store.Get(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	quote.Client = domain.ClientInfo{
		Name:       strings.TrimSpace(client.Name),
		Phone:      strings.TrimSpace(client.Phone),
		Email:      strings.TrimSpace(client.Email),
		NationalID: strings.TrimSpace(client.NationalID),
	}
	if err := s.store.Save(ctx, quote); err != nil {
		return nil, err
	}

	res := s.validator.Validate(quote.Client)
	return &res, nil
}

// GenerateDocument renders the downloadable PDF for the session. The cart
// must be non-empty and the client snapshot valid.
func (s *QuoteService) GenerateDocument(ctx context.Context, quoteID string, mode domain.DocumentMode) (*ports.DocumentResult, error) {
	quote, err := s.ready(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	content, err := s.renderer.Render(ports.QuoteDocument{
		Mode:              mode,
		Company:           s.company,
		Client:            quote.Client,
		Lines:             quote.Cart.Lines(),
		Total:             quote.Cart.Total(),
		IssuedAt:          time.Now().UTC(),
		ValidityDays:      s.settings.ValidityDays,
		DepositPercent:    s.settings.DepositPercent,
		CancellationHours: s.settings.CancellationHours,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("quote_id", quoteID).Msg("document rendering failed")
		return nil, fmt.Errorf("render document: %w", err)
	}

	metrics.DocumentsGeneratedTotal.WithLabelValues(string(mode)).Inc()
	metrics.DocumentGenerationDuration.WithLabelValues(string(mode)).Observe(time.Since(start).Seconds())
	s.logger.Info().
		Str("quote_id", quoteID).
		Str("mode", string(mode)).
		Int("lines", quote.Cart.Len()).
		Msg("document generated")

	return &ports.DocumentResult{
		Filename: DocumentFilename(mode, quote.Client),
		Content:  content,
	}, nil
}

// MessageLink builds the prefilled WhatsApp deep link for the session, under
// the same preconditions as GenerateDocument.
func (s *QuoteService) MessageLink(ctx context.Context, quoteID string) (string, error) {
	quote, err := s.ready(ctx, quoteID)
	if err != nil {
		return "", err
	}

	url := s.links.Build(s.company, quote.Client, quote.Cart.Lines(), quote.Cart.Total())
	metrics.MessageLinksTotal.Inc()
	s.logger.Info().Str("quote_id", quoteID).Msg("message link generated")
	return url, nil
}

// ready loads the session and enforces the emitter preconditions:
// non-empty cart and valid client snapshot.
func (s *QuoteService) ready(ctx context.Context, quoteID string) (*domain.Quote, error) {
	quote, err := s.store.Get(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote.Cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}
	if err := s.validator.Err(quote.Client); err != nil {
		return nil, err
	}
	return quote, nil
}

func (s *QuoteService) detail(q *domain.Quote) *ports.QuoteDetail {
	lines := q.Cart.Lines()
	views := make([]ports.CartLineView, 0, len(lines))
	for _, l := range lines {
		views = append(views, ports.CartLineView{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			LineTotal: l.LineTotal(),
		})
	}
	return &ports.QuoteDetail{
		ID:    q.ID,
		Lines: views,
		Total: q.Cart.Total(),
		Client: ports.ClientInput{
			Name:       q.Client.Name,
			Phone:      q.Client.Phone,
			Email:      q.Client.Email,
			NationalID: q.Client.NationalID,
		},
		Valid:     s.validator.Validate(q.Client),
		CreatedAt: q.CreatedAt,
		ExpiresAt: q.ExpiresAt,
	}
}

// DocumentFilename builds the deterministic download name:
// <cotizacion|reserva>_<clientName>_<clientPhone>.pdf, spaces → underscores.
// An empty client name falls back to "cliente".
func DocumentFilename(mode domain.DocumentMode, client domain.ClientInfo) string {
	name := strings.TrimSpace(client.Name)
	if name == "" {
		name = "cliente"
	}
	name = strings.Join(strings.Fields(name), "_")
	return fmt.Sprintf("%s_%s_%s.pdf", mode.FilePrefix(), name, client.Phone)
}

// generateQuoteID returns a unique session id in the format Q-XXXXXXXXXXXX.
func generateQuoteID() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("Q-%012X", time.Now().UnixNano()&0xFFFFFFFFFFFF)
	}
	return fmt.Sprintf("Q-%012X", b)
}

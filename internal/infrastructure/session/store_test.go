package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/solucion-eventos/quotation-api/internal/core/domain"
)

func newTestQuote(id string, expires time.Time) *domain.Quote {
	return &domain.Quote{
		ID:        id,
		CreatedAt: time.Now().UTC(),
		ExpiresAt: expires,
	}
}

func TestStore_CreateGetSaveDelete(t *testing.T) {
	s := NewStore(zerolog.Nop())
	ctx := context.Background()
	q := newTestQuote("Q-1", time.Now().Add(time.Hour))

	if err := s.Create(ctx, q); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := s.Get(ctx, "Q-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != "Q-1" {
		t.Fatalf("got id %q", got.ID)
	}

	// Mutating the returned copy must not affect the stored quote.
	if err := got.Cart.AddItem(domain.Product{ID: "sillas", UnitPrice: decimal.NewFromInt(3), Stock: 10}, 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	fresh, _ := s.Get(ctx, "Q-1")
	if !fresh.Cart.IsEmpty() {
		t.Fatal("store must hand out clones, not shared state")
	}

	// Save persists the mutation.
	if err := s.Save(ctx, got); err != nil {
		t.Fatalf("Save: %v", err)
	}
	fresh, _ = s.Get(ctx, "Q-1")
	if fresh.Cart.Quantity("sillas") != 2 {
		t.Fatalf("saved quote lost its cart: %+v", fresh.Cart.Lines())
	}

	if err := s.Delete(ctx, "Q-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, "Q-1"); !errors.Is(err, domain.ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound after delete, got %v", err)
	}
}

func TestStore_SaveUnknownQuote(t *testing.T) {
	s := NewStore(zerolog.Nop())
	err := s.Save(context.Background(), newTestQuote("Q-NEW", time.Now().Add(time.Hour)))
	if !errors.Is(err, domain.ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound, got %v", err)
	}
}

func TestStore_GetExpired(t *testing.T) {
	s := NewStore(zerolog.Nop())
	ctx := context.Background()

	now := time.Now()
	s.now = func() time.Time { return now }

	if err := s.Create(ctx, newTestQuote("Q-OLD", now.Add(time.Minute))); err != nil {
		t.Fatalf("Create: %v", err)
	}

	s.now = func() time.Time { return now.Add(2 * time.Minute) }
	if _, err := s.Get(ctx, "Q-OLD"); !errors.Is(err, domain.ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound for an expired session, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatal("expired entry must be removed on access")
	}
}

func TestStore_Sweep(t *testing.T) {
	s := NewStore(zerolog.Nop())
	ctx := context.Background()

	now := time.Now()
	s.now = func() time.Time { return now }

	_ = s.Create(ctx, newTestQuote("Q-A", now.Add(time.Minute)))
	_ = s.Create(ctx, newTestQuote("Q-B", now.Add(time.Hour)))

	s.now = func() time.Time { return now.Add(30 * time.Minute) }
	s.sweep()

	if s.Len() != 1 {
		t.Fatalf("expected one surviving session, got %d", s.Len())
	}
	if _, err := s.Get(ctx, "Q-B"); err != nil {
		t.Fatalf("live session swept: %v", err)
	}
}

package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func chairProduct() Product {
	return Product{
		ID:        "sillas",
		Name:      "Sillas de Madera",
		Category:  CategorySillas,
		UnitPrice: decimal.NewFromInt(3),
		Stock:     120,
	}
}

func clothProduct() Product {
	return Product{
		ID:        "mantel-blanco",
		Name:      "Mantel Blanco Algodón",
		Category:  CategoryManteles,
		UnitPrice: decimal.RequireFromString("3.5"),
		Stock:     60,
	}
}

func TestCart_AddItem_AccumulatesQuantity(t *testing.T) {
	var cart Cart
	p := chairProduct()

	if err := cart.AddItem(p, 5); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if got := cart.Total(); !got.Equal(decimal.NewFromInt(15)) {
		t.Fatalf("total after first add = %s, want 15", got)
	}

	if err := cart.AddItem(p, 3); err != nil {
		t.Fatalf("second add: %v", err)
	}
	if cart.Len() != 1 {
		t.Fatalf("expected a single line per product, got %d", cart.Len())
	}
	if got := cart.Quantity(p.ID); got != 8 {
		t.Fatalf("quantity = %d, want 8", got)
	}
	if got := cart.Total(); !got.Equal(decimal.NewFromInt(24)) {
		t.Fatalf("total after second add = %s, want 24", got)
	}
}

func TestCart_AddItem_InsufficientStock(t *testing.T) {
	var cart Cart
	p := chairProduct()

	if err := cart.AddItem(p, 8); err != nil {
		t.Fatalf("setup add: %v", err)
	}

	err := cart.AddItem(p, 200)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	// Rejected addition must leave the cart unchanged.
	if got := cart.Quantity(p.ID); got != 8 {
		t.Fatalf("quantity after rejection = %d, want 8", got)
	}
	if got := cart.Total(); !got.Equal(decimal.NewFromInt(24)) {
		t.Fatalf("total after rejection = %s, want 24", got)
	}
}

func TestCart_AddItem_ExactStockBoundary(t *testing.T) {
	var cart Cart
	p := Product{ID: "carpa-3x3", Name: "Carpa 3x3", UnitPrice: decimal.NewFromInt(65), Stock: 2}

	if err := cart.AddItem(p, 2); err != nil {
		t.Fatalf("adding exactly the stock must succeed: %v", err)
	}
	if err := cart.AddItem(p, 1); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock past the boundary, got %v", err)
	}
}

func TestCart_AddItem_InvalidQuantity(t *testing.T) {
	var cart Cart
	if err := cart.AddItem(chairProduct(), 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if !cart.IsEmpty() {
		t.Fatal("cart must stay empty after a rejected add")
	}
}

func TestCart_RemoveItem_Idempotent(t *testing.T) {
	var cart Cart
	p := chairProduct()
	if err := cart.AddItem(p, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	before := cart.Total()

	cart.RemoveItem("no-such-product")
	if cart.Len() != 1 || !cart.Total().Equal(before) {
		t.Fatal("removing an absent product must be a no-op")
	}

	cart.RemoveItem(p.ID)
	cart.RemoveItem(p.ID)
	if !cart.IsEmpty() || !cart.Total().Equal(decimal.Zero) {
		t.Fatal("cart must be empty after removal")
	}
}

func TestCart_Total_NoRoundingDrift(t *testing.T) {
	var cart Cart
	cloth := clothProduct()

	// Repeated add/remove cycles of a fractional price must never drift.
	for i := 0; i < 50; i++ {
		if err := cart.AddItem(cloth, 1); err != nil {
			t.Fatalf("add cycle %d: %v", i, err)
		}
		cart.RemoveItem(cloth.ID)
	}
	if !cart.Total().Equal(decimal.Zero) {
		t.Fatalf("total drifted to %s", cart.Total())
	}

	if err := cart.AddItem(cloth, 3); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := cart.Total(); !got.Equal(decimal.RequireFromString("10.5")) {
		t.Fatalf("total = %s, want 10.5", got)
	}
}

func TestCart_Lines_PreservesInsertionOrderAndIsACopy(t *testing.T) {
	var cart Cart
	if err := cart.AddItem(chairProduct(), 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := cart.AddItem(clothProduct(), 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	lines := cart.Lines()
	if lines[0].ProductID != "sillas" || lines[1].ProductID != "mantel-blanco" {
		t.Fatalf("unexpected order: %+v", lines)
	}

	lines[0].Quantity = 99
	if cart.Quantity("sillas") != 1 {
		t.Fatal("mutating the returned slice must not affect the cart")
	}
}

package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Category groups rental products for filtering and display.
type Category string

const (
	CategoryCarpas   Category = "carpas"
	CategoryMesas    Category = "mesas"
	CategorySillas   Category = "sillas"
	CategoryManteles Category = "manteles"
)

var ErrProductNotFound = errors.New("product not found")
var ErrInsufficientStock = errors.New("insufficient stock")
var ErrInvalidQuantity = errors.New("quantity must be at least 1")
var ErrEmptyCart = errors.New("cart is empty")
var ErrQuoteNotFound = errors.New("quote not found")
var ErrUnknownMode = errors.New("unknown document mode")

// Product is a rentable catalog item. Products are defined once at build time
// and never mutated at runtime; Stock is a declared availability count used for
// input clamping and low-stock display, not a live inventory ledger.
type Product struct {
	ID          string          `json:"id"`
	Slug        string          `json:"slug"`
	Name        string          `json:"name"`
	Category    Category        `json:"category"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Stock       int             `json:"stock"`
	Description string          `json:"description"`
	Images      []string        `json:"images"`
	Features    []string        `json:"features"`
}

// InStock reports whether the product can be added to a cart at all.
func (p Product) InStock() bool {
	return p.Stock > 0
}

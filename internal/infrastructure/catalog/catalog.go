// Package catalog provides the static, build-time product list behind the
// ports.CatalogRepository contract. Products are defined once and never
// mutated; every read hands out a copy.
package catalog

import (
	"context"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/solucion-eventos/quotation-api/internal/core/domain"
	"github.com/solucion-eventos/quotation-api/internal/core/ports"
)

var products = []domain.Product{
	{
		ID:          "carpa-2x2",
		Slug:        "carpa-2x2",
		Name:        "Carpa 2x2 con laterales",
		Category:    domain.CategoryCarpas,
		UnitPrice:   decimal.NewFromInt(50),
		Stock:       10,
		Description: "Carpa resistente ideal para eventos medianos.",
		Images:      []string{"https://mcusercontent.com/7c7389f78fa075b10d8a4618a/images/d0cd9984-f3b7-54e1-5b24-b0bdf619c722.jpg"},
		Features:    []string{"Estructura reforzada", "Lona impermeable", "Instalación incluida"},
	},
	{
		ID:          "carpa-3x3",
		Slug:        "carpa-3x3",
		Name:        "Carpa 3x3 con laterales",
		Category:    domain.CategoryCarpas,
		UnitPrice:   decimal.NewFromInt(65),
		Stock:       2,
		Description: "Amplia y elegante para eventos grandes.",
		Images:      []string{"https://res.cloudinary.com/dpyrrgou3/image/upload/v1763588019/6e0f90130562d8_iporle.jpg"},
		Features:    []string{"Columnas metálicas", "Resistencia al viento", "Montaje profesional"},
	},
	{
		ID:          "carpa-3x4",
		Slug:        "carpa-3x4",
		Name:        "Carpa 3x4",
		Category:    domain.CategoryCarpas,
		UnitPrice:   decimal.NewFromInt(120),
		Stock:       5,
		Description: "Amplia y elegante para eventos grandes.",
		Images:      []string{"https://res.cloudinary.com/dpyrrgou3/image/upload/v1763588019/6e0f90130562d8_iporle.jpg"},
		Features:    []string{"Columnas metálicas", "Resistencia al viento", "Montaje profesional"},
	},
	{
		ID:          "mesa-75x75",
		Slug:        "mesa-75x75",
		Name:        "Mesa de 75x 75cm",
		Category:    domain.CategoryMesas,
		UnitPrice:   decimal.NewFromInt(8),
		Stock:       50,
		Description: "Mesa de madera para banquetes.",
		Images:      []string{"https://mcusercontent.com/7c7389f78fa075b10d8a4618a/images/d0cd9984-f3b7-54e1-5b24-b0bdf619c722.jpg"},
		Features:    []string{"Acabado pulido", "Diámetro 1.5m"},
	},
	{
		ID:          "sillas",
		Slug:        "sillas",
		Name:        "Sillas de Madera",
		Category:    domain.CategorySillas,
		UnitPrice:   decimal.NewFromInt(3),
		Stock:       120,
		Description: "Silla elegante para eventos.",
		Images:      []string{"https://mcusercontent.com/7c7389f78fa075b10d8a4618a/images/d0cd9984-f3b7-54e1-5b24-b0bdf619c722.jpg"},
		Features:    []string{"Respaldo cómodo", "Material resistente"},
	},
	{
		ID:          "mantel-blanco",
		Slug:        "mantel-blanco-algodon",
		Name:        "Mantel Blanco Algodón",
		Category:    domain.CategoryManteles,
		UnitPrice:   decimal.RequireFromString("3.5"),
		Stock:       60,
		Description: "Mantel blanco premium.",
		Images:      []string{"https://mcusercontent.com/7c7389f78fa075b10d8a4618a/images/d0cd9984-f3b7-54e1-5b24-b0bdf619c722.jpg"},
		Features:    []string{"Fácil lavado", "Textura suave"},
	},
}

// Repository implements ports.CatalogRepository over the static list.
type Repository struct {
	products []domain.Product
}

func NewRepository() *Repository {
	return &Repository{products: products}
}

func (r *Repository) FindByID(_ context.Context, id string) (*domain.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *Repository) List(_ context.Context, filter ports.ListFilter) ([]domain.Product, error) {
	search := fold(filter.Search)
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.Category != "" && string(p.Category) != filter.Category {
			continue
		}
		if filter.InStockOnly && !p.InStock() {
			continue
		}
		if search != "" &&
			!strings.Contains(fold(p.Name), search) &&
			!strings.Contains(fold(p.Description), search) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// folder strips diacritics so "algodon" matches "Algodón".
var folder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func fold(s string) string {
	folded, _, err := transform.String(folder, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return folded
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/solucion-eventos/quotation-api/internal/core/domain"
	"github.com/solucion-eventos/quotation-api/internal/core/ports"
)

// CatalogHandler exposes the read-only product catalog.
type CatalogHandler struct {
	catalog ports.CatalogRepository
}

func NewCatalogHandler(catalog ports.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type productResponse struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	UnitPrice   string   `json:"unit_price"`
	Stock       int      `json:"stock"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Features    []string `json:"features"`
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Slug:        p.Slug,
		Name:        p.Name,
		Category:    string(p.Category),
		UnitPrice:   p.UnitPrice.String(),
		Stock:       p.Stock,
		Description: p.Description,
		Images:      p.Images,
		Features:    p.Features,
	}
}

// List handles GET /v1/products.
//
// @Summary      List catalog products
// @Tags         catalog
// @Produce      json
// @Param        category  query     string  false  "Filter by category"
// @Param        search    query     string  false  "Accent-insensitive text search on name and description"
// @Param        in_stock  query     bool    false  "Only products with positive stock"
// @Success      200       {array}   productResponse
// @Router       /v1/products [get]
func (h *CatalogHandler) List(c echo.Context) error {
	filter := ports.ListFilter{
		Category:    c.QueryParam("category"),
		Search:      c.QueryParam("search"),
		InStockOnly: c.QueryParam("in_stock") == "true",
	}

	products, err := h.catalog.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /v1/products/:product_id.
//
// @Summary      Get a product by id
// @Tags         catalog
// @Produce      json
// @Param        product_id  path      string  true  "Product id"
// @Success      200         {object}  productResponse
// @Failure      404         {object}  map[string]string
// @Router       /v1/products/{product_id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	p, err := h.catalog.FindByID(c.Request().Context(), c.Param("product_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(*p))
}

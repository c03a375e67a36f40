package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/solucion-eventos/quotation-api/internal/api/handler"
	"github.com/solucion-eventos/quotation-api/internal/api/middleware"
	"github.com/solucion-eventos/quotation-api/internal/core/domain"
	"github.com/solucion-eventos/quotation-api/internal/core/ports"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	quotes ports.QuoteService,
	catalog ports.CatalogRepository,
	company domain.Company,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(middleware.Metrics)

	// --- Handlers ---
	quoteHandler := handler.NewQuoteHandler(quotes)
	catalogHandler := handler.NewCatalogHandler(catalog)
	companyHandler := handler.NewCompanyHandler(company)
	healthHandler := handler.NewHealthHandler()

	// --- Quote builder ---
	e.POST("/v1/quotes", quoteHandler.Create)
	e.GET("/v1/quotes/:quote_id", quoteHandler.Get)
	e.POST("/v1/quotes/:quote_id/items", quoteHandler.AddItem)
	e.DELETE("/v1/quotes/:quote_id/items/:product_id", quoteHandler.RemoveItem)
	e.PUT("/v1/quotes/:quote_id/client", quoteHandler.SetClient)
	e.GET("/v1/quotes/:quote_id/document", quoteHandler.Document)
	e.GET("/v1/quotes/:quote_id/whatsapp", quoteHandler.MessageLink)

	// --- Catalog & company metadata ---
	e.GET("/v1/products", catalogHandler.List)
	e.GET("/v1/products/:product_id", catalogHandler.Get)
	e.GET("/v1/company", companyHandler.Get)

	// --- Observability ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/solucion-eventos/quotation-api/internal/core/domain"
	"github.com/solucion-eventos/quotation-api/internal/core/ports"
)

// QuoteHandler handles HTTP requests for the quote builder.
type QuoteHandler struct {
	service ports.QuoteService
}

func NewQuoteHandler(service ports.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// Create handles POST /v1/quotes.
//
// @Summary      Open a new quote session
// @Tags         quotes
// @Produce      json
// @Success      201  {object}  quoteResponse
// @Router       /v1/quotes [post]
func (h *QuoteHandler) Create(c echo.Context) error {
	detail, err := h.service.CreateQuote(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toQuoteResponse(detail))
}

// Get handles GET /v1/quotes/:quote_id.
//
// @Summary      Get the current quote session
// @Tags         quotes
// @Produce      json
// @Param        quote_id  path      string  true  "Quote session id"
// @Success      200       {object}  quoteResponse
// @Failure      404       {object}  map[string]string
// @Router       /v1/quotes/{quote_id} [get]
func (h *QuoteHandler) Get(c echo.Context) error {
	detail, err := h.service.GetQuote(c.Request().Context(), c.Param("quote_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toQuoteResponse(detail))
}

// AddItem handles POST /v1/quotes/:quote_id/items.
//
// @Summary      Add a product to the cart
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        quote_id  path      string          true  "Quote session id"
// @Param        body      body      addItemRequest  true  "Product and quantity"
// @Success      200       {object}  quoteResponse
// @Failure      404       {object}  map[string]string
// @Failure      422       {object}  map[string]string
// @Router       /v1/quotes/{quote_id}/items [post]
func (h *QuoteHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.AddItem(c.Request().Context(), ports.AddItemInput{
		QuoteID:   c.Param("quote_id"),
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toQuoteResponse(detail))
}

// RemoveItem handles DELETE /v1/quotes/:quote_id/items/:product_id.
// Removing a product that is not in the cart succeeds and leaves the cart
// unchanged.
//
// @Summary      Remove a product from the cart
// @Tags         quotes
// @Produce      json
// @Param        quote_id    path      string  true  "Quote session id"
// @Param        product_id  path      string  true  "Product id"
// @Success      200         {object}  quoteResponse
// @Failure      404         {object}  map[string]string
// @Router       /v1/quotes/{quote_id}/items/{product_id} [delete]
func (h *QuoteHandler) RemoveItem(c echo.Context) error {
	detail, err := h.service.RemoveItem(c.Request().Context(), c.Param("quote_id"), c.Param("product_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toQuoteResponse(detail))
}

// SetClient handles PUT /v1/quotes/:quote_id/client.
//
// @Summary      Store the client contact snapshot and report its validity
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        quote_id  path      string         true  "Quote session id"
// @Param        body      body      clientRequest  true  "Client contact data"
// @Success      200       {object}  clientValidationResponse
// @Failure      404       {object}  map[string]string
// @Router       /v1/quotes/{quote_id}/client [put]
func (h *QuoteHandler) SetClient(c echo.Context) error {
	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	res, err := h.service.SetClient(c.Request().Context(), c.Param("quote_id"), ports.ClientInput{
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		NationalID: req.CI,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toValidationResponse(*res))
}

// Document handles GET /v1/quotes/:quote_id/document?mode=quote|reservation.
// It streams the rendered PDF as an attachment.
//
// @Summary      Download the quote or reservation PDF
// @Tags         quotes
// @Produce      application/pdf
// @Param        quote_id  path      string  true   "Quote session id"
// @Param        mode      query     string  false  "quote (default) or reservation"
// @Success      200       {file}    binary
// @Failure      404       {object}  map[string]string
// @Failure      422       {object}  map[string]string
// @Router       /v1/quotes/{quote_id}/document [get]
func (h *QuoteHandler) Document(c echo.Context) error {
	mode, err := domain.ParseDocumentMode(c.QueryParam("mode"))
	if err != nil {
		return err
	}

	doc, err := h.service.GenerateDocument(c.Request().Context(), c.Param("quote_id"), mode)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.Filename))
	return c.Blob(http.StatusOK, "application/pdf", doc.Content)
}

// MessageLink handles GET /v1/quotes/:quote_id/whatsapp. The link is opened
// by the frontend in a new browsing context; the API never calls it.
//
// @Summary      Build the prefilled WhatsApp deep link
// @Tags         quotes
// @Produce      json
// @Param        quote_id  path      string  true  "Quote session id"
// @Success      200       {object}  messageLinkResponse
// @Failure      404       {object}  map[string]string
// @Failure      422       {object}  map[string]string
// @Router       /v1/quotes/{quote_id}/whatsapp [get]
func (h *QuoteHandler) MessageLink(c echo.Context) error {
	url, err := h.service.MessageLink(c.Request().Context(), c.Param("quote_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageLinkResponse{URL: url})
}

package handler

// addItemRequest is the body of POST /v1/quotes/:id/items. Quantity is
// bounded below here; the service clamps it against the cumulative stock.
type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// clientRequest is the body of PUT /v1/quotes/:id/client. No field is
// validated at the binding layer: the snapshot is always stored and the
// schema-level outcome reported back, so editing is never blocked.
type clientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	CI    string `json:"ci"`
}

type clientValidationResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

type cartLineResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

type clientResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
	CI    string `json:"ci,omitempty"`
}

type quoteResponse struct {
	QuoteID     string                   `json:"quote_id"`
	Lines       []cartLineResponse       `json:"lines"`
	Total       string                   `json:"total"`
	Client      clientResponse           `json:"client"`
	ClientValid clientValidationResponse `json:"client_validation"`
	CreatedAt   string                   `json:"created_at"`
	ExpiresAt   string                   `json:"expires_at"`
}

type messageLinkResponse struct {
	URL string `json:"url"`
}

package handler

import (
	"time"

	"github.com/solucion-eventos/quotation-api/internal/core/ports"
)

// toQuoteResponse maps a service-level QuoteDetail to the wire shape.
// Decimal amounts are serialised as strings to avoid float drift on the wire.
func toQuoteResponse(d *ports.QuoteDetail) quoteResponse {
	lines := make([]cartLineResponse, 0, len(d.Lines))
	for _, l := range d.Lines {
		lines = append(lines, cartLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.String(),
			LineTotal: l.LineTotal.String(),
		})
	}
	return quoteResponse{
		QuoteID: d.ID,
		Lines:   lines,
		Total:   d.Total.String(),
		Client: clientResponse{
			Name:  d.Client.Name,
			Phone: d.Client.Phone,
			Email: d.Client.Email,
			CI:    d.Client.NationalID,
		},
		ClientValid: toValidationResponse(d.Valid),
		CreatedAt:   d.CreatedAt.Format(time.RFC3339),
		ExpiresAt:   d.ExpiresAt.Format(time.RFC3339),
	}
}

func toValidationResponse(v ports.ClientValidation) clientValidationResponse {
	errs := v.Errors
	if errs == nil {
		errs = map[string]string{}
	}
	return clientValidationResponse{Valid: v.Valid, Errors: errs}
}

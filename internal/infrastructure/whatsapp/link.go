// Package whatsapp builds the prefilled wa.me deep link for a quote. It is a
// pure serializer: the link is opened by the frontend, never by this service.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/solucion-eventos/quotation-api/internal/core/domain"
)

// LinkBuilder implements ports.MessageLinkBuilder.
type LinkBuilder struct{}

func NewLinkBuilder() LinkBuilder {
	return LinkBuilder{}
}

// Build serialises the client snapshot and cart into a single URL-encoded
// message and composes https://wa.me/<digits>?text=<message> with the
// company's contact number.
func (LinkBuilder) Build(company domain.Company, client domain.ClientInfo, lines []domain.CartLine, total decimal.Decimal) string {
	var b strings.Builder
	b.WriteString("Hola, quisiera cotizar lo siguiente:\n\n")
	b.WriteString(fmt.Sprintf("*Cliente:* %s\n", client.Name))
	if client.NationalID != "" {
		b.WriteString(fmt.Sprintf("*CI:* %s\n", client.NationalID))
	}
	b.WriteString(fmt.Sprintf("*Teléfono:* %s\n", orFallback(client.Phone, "Sin teléfono")))
	b.WriteString(fmt.Sprintf("*Email:* %s\n", orFallback(client.Email, "Sin email")))

	b.WriteString("\n*Detalle:*\n")
	for _, l := range lines {
		b.WriteString(fmt.Sprintf("- %s (%d x %s) = %s\n",
			l.Name, l.Quantity, domain.FormatBs(l.UnitPrice), domain.FormatBs(l.LineTotal())))
	}

	b.WriteString(fmt.Sprintf("\n*Total Estimado:* %s\n", domain.FormatBs(total)))
	b.WriteString("\nQuedo atento a su confirmación.")

	return fmt.Sprintf("https://wa.me/%s?text=%s", company.PhoneDigits(), url.QueryEscape(b.String()))
}

func orFallback(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

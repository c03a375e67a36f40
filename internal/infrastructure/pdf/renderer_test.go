package pdf

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/solucion-eventos/quotation-api/internal/core/domain"
	"github.com/solucion-eventos/quotation-api/internal/core/ports"
)

type failingCodes struct{}

func (failingCodes) Generate(content string, size int) ([]byte, error) {
	return nil, errors.New("encoder unavailable")
}

func testDocument(mode domain.DocumentMode) ports.QuoteDocument {
	return ports.QuoteDocument{
		Mode: mode,
		Company: domain.Company{
			Name:       "Soluciones para Eventos",
			Tagline:    "Carpas y Más",
			Phone:      "+59176259553",
			Email:      "contacto@solucioneseventos.bo",
			Website:    "solucioneseventos.bo",
			BrandColor: "#1044A3",
		},
		Client: domain.ClientInfo{
			Name:       "Juan Perez",
			Phone:      "77712345",
			Email:      "juan@email.com",
			NationalID: "123456 LP",
		},
		Lines: []domain.CartLine{
			{ProductID: "sillas", Name: "Sillas de Madera", Quantity: 8, UnitPrice: decimal.NewFromInt(3)},
			{ProductID: "mantel-blanco", Name: "Mantel Blanco Algodón", Quantity: 2, UnitPrice: decimal.RequireFromString("3.5")},
		},
		Total:             decimal.NewFromInt(31),
		IssuedAt:          time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC),
		ValidityDays:      7,
		DepositPercent:    50,
		CancellationHours: 48,
	}
}

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer(NewQRGenerator(), zerolog.Nop())

	for _, mode := range []domain.DocumentMode{domain.ModeQuote, domain.ModeReservation} {
		t.Run(string(mode), func(t *testing.T) {
			out, err := r.Render(testDocument(mode))
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if !bytes.HasPrefix(out, []byte("%PDF")) {
				t.Fatalf("output is not a PDF, starts with %q", out[:min(8, len(out))])
			}
		})
	}
}

func TestRenderer_Render_SurvivesCodeFailure(t *testing.T) {
	r := NewRenderer(failingCodes{}, zerolog.Nop())

	out, err := r.Render(testDocument(domain.ModeReservation))
	if err != nil {
		t.Fatalf("a failed scannable code must not fail the document: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("degraded document is not a PDF")
	}
}

func TestRenderer_Render_EmptyOptionalClientFields(t *testing.T) {
	r := NewRenderer(NewQRGenerator(), zerolog.Nop())

	doc := testDocument(domain.ModeQuote)
	doc.Client.Email = ""
	doc.Client.NationalID = ""

	out, err := r.Render(doc)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty output")
	}
}

func TestHexToRGB(t *testing.T) {
	red, green, blue := hexToRGB("#1044A3")
	if red != 16 || green != 68 || blue != 163 {
		t.Fatalf("got %d,%d,%d", red, green, blue)
	}

	red, green, blue = hexToRGB("not-a-color")
	if red != 16 || green != 68 || blue != 163 {
		t.Fatalf("fallback got %d,%d,%d", red, green, blue)
	}
}

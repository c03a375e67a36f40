package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/solucion-eventos/quotation-api/internal/core/domain"
)

func testCompany() domain.Company {
	return domain.Company{Name: "Soluciones para Eventos", Phone: "+59176259553"}
}

func testLines() []domain.CartLine {
	return []domain.CartLine{
		{ProductID: "sillas", Name: "Sillas de Madera", Quantity: 8, UnitPrice: decimal.NewFromInt(3)},
		{ProductID: "mantel-blanco", Name: "Mantel Blanco Algodón", Quantity: 2, UnitPrice: decimal.RequireFromString("3.5")},
	}
}

func decodeText(t *testing.T, link string) string {
	t.Helper()
	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("invalid url %q: %v", link, err)
	}
	return u.Query().Get("text")
}

func TestLinkBuilder_Build(t *testing.T) {
	b := NewLinkBuilder()
	client := domain.ClientInfo{Name: "Juan Perez", Phone: "77712345", Email: "juan@email.com", NationalID: "123456 LP"}
	total := decimal.NewFromInt(31)

	link := b.Build(testCompany(), client, testLines(), total)

	if !strings.HasPrefix(link, "https://wa.me/59176259553?text=") {
		t.Fatalf("unexpected link prefix: %q", link)
	}

	text := decodeText(t, link)
	for _, want := range []string{
		"Hola, quisiera cotizar lo siguiente:",
		"*Cliente:* Juan Perez",
		"*CI:* 123456 LP",
		"*Teléfono:* 77712345",
		"*Email:* juan@email.com",
		"*Detalle:*",
		"- Sillas de Madera (8 x Bs 3,0) = Bs 24,0",
		"- Mantel Blanco Algodón (2 x Bs 3,5) = Bs 7,0",
		"*Total Estimado:* Bs 31,0",
		"Quedo atento a su confirmación.",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("message missing %q\nmessage: %s", want, text)
		}
	}
}

func TestLinkBuilder_Build_OptionalFields(t *testing.T) {
	b := NewLinkBuilder()
	client := domain.ClientInfo{Name: "Juan Perez", Phone: "77712345"}

	text := decodeText(t, b.Build(testCompany(), client, testLines(), decimal.NewFromInt(31)))

	if strings.Contains(text, "*CI:*") {
		t.Error("CI line must be omitted when the id is empty")
	}
	if !strings.Contains(text, "*Email:* Sin email") {
		t.Error("empty email must fall back to 'Sin email'")
	}
}

func TestLinkBuilder_Build_IsPure(t *testing.T) {
	b := NewLinkBuilder()
	client := domain.ClientInfo{Name: "Juan Perez", Phone: "77712345"}
	lines := testLines()
	total := decimal.NewFromInt(31)

	first := b.Build(testCompany(), client, lines, total)
	second := b.Build(testCompany(), client, lines, total)
	if first != second {
		t.Fatal("builder must be deterministic for the same inputs")
	}
}

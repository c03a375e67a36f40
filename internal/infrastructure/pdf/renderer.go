// Package pdf renders quote and reservation documents with go-pdf/fpdf,
// following the site's printable layout: branded header, client box,
// itemized table, total box, mode-dependent terms, diagonal watermark, and
// a footer with the La Paz timestamp and page numbers.
package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/solucion-eventos/quotation-api/internal/api/metrics"
	"github.com/solucion-eventos/quotation-api/internal/core/domain"
	"github.com/solucion-eventos/quotation-api/internal/core/ports"
)

const (
	pageMargin = 15.0
	qrSizePx   = 256
	qrSizeMM   = 28.0
)

// laPaz is the business timezone for the footer timestamp.
var laPaz = func() *time.Location {
	loc, err := time.LoadLocation("America/La_Paz")
	if err != nil {
		return time.FixedZone("-04", -4*60*60)
	}
	return loc
}()

// Renderer implements ports.DocumentRenderer.
type Renderer struct {
	codes ports.CodeGenerator
	log   zerolog.Logger
}

func NewRenderer(codes ports.CodeGenerator, log zerolog.Logger) *Renderer {
	return &Renderer{codes: codes, log: log}
}

// Render lays doc out into a single A4 PDF. The only tolerated sub-failure
// is scannable-code generation: a failed code is logged and omitted, the
// document is still produced.
func (r *Renderer) Render(doc ports.QuoteDocument) ([]byte, error) {
	p := fpdf.New("P", "mm", "A4", "")
	tr := p.UnicodeTranslatorFromDescriptor("")
	red, green, blue := hexToRGB(doc.Company.BrandColor)

	p.SetTitle(tr(doc.Mode.Title()+" - "+doc.Company.Name), true)
	p.SetMargins(pageMargin, pageMargin, pageMargin)
	p.SetAutoPageBreak(true, 25)
	p.AliasNbPages("")
	p.SetFooterFunc(func() {
		p.SetY(-15)
		p.SetFont("Helvetica", "I", 8)
		p.SetTextColor(85, 85, 85)
		stamp := doc.IssuedAt.In(laPaz).Format("02/01/2006 15:04")
		p.CellFormat(90, 6, tr("Fecha y hora: "+stamp), "", 0, "L", false, 0, "")
		p.CellFormat(90, 6, tr(fmt.Sprintf("Página %d de {nb}", p.PageNo())), "", 0, "R", false, 0, "")
	})
	p.AddPage()

	r.watermark(p, tr, doc.Mode)
	r.header(p, tr, doc.Company, red, green, blue)
	r.clientSection(p, tr, doc.Client)
	r.itemsTable(p, tr, doc.Lines, red, green, blue)
	r.totalBox(p, tr, doc.Total, red, green, blue)
	r.termsBox(p, tr, doc, red, green, blue)
	if doc.Mode == domain.ModeReservation {
		r.scannableCode(p, tr, doc.Company)
	}

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

// watermark draws the diagonal mode text under the page content.
func (r *Renderer) watermark(p *fpdf.Fpdf, tr func(string) string, mode domain.DocumentMode) {
	p.SetFont("Helvetica", "B", 52)
	p.SetTextColor(232, 232, 232)
	p.TransformBegin()
	p.TransformRotate(45, 105, 148)
	p.Text(30, 160, tr(mode.Watermark()))
	p.TransformEnd()
	p.SetTextColor(0, 0, 0)
}

func (r *Renderer) header(p *fpdf.Fpdf, tr func(string) string, company domain.Company, red, green, blue int) {
	p.SetFillColor(red, green, blue)
	p.Rect(0, 0, 210, 4, "F")

	p.SetY(10)
	p.SetFont("Helvetica", "B", 16)
	p.SetTextColor(red, green, blue)
	p.CellFormat(0, 8, tr(company.Name), "", 1, "L", false, 0, "")

	p.SetFont("Helvetica", "I", 10)
	p.SetTextColor(90, 90, 90)
	p.CellFormat(0, 5, tr(company.Tagline), "", 1, "L", false, 0, "")

	p.SetFont("Helvetica", "", 9)
	p.SetTextColor(60, 60, 60)
	p.CellFormat(0, 5, tr("Tel: "+company.Phone), "", 1, "L", false, 0, "")
	p.CellFormat(0, 5, company.Email, "", 1, "L", false, 0, "")
	p.CellFormat(0, 5, company.WebsiteURL(), "", 1, "L", false, 0, "")

	if len(company.Social) > 0 {
		parts := make([]string, 0, len(company.Social))
		for _, s := range company.Social {
			parts = append(parts, s.Network+": "+s.URL)
		}
		p.SetFont("Helvetica", "", 8)
		p.SetTextColor(120, 120, 120)
		p.CellFormat(0, 5, tr(strings.Join(parts, "   ")), "", 1, "L", false, 0, "")
	}

	p.Ln(4)
	p.SetDrawColor(red, green, blue)
	p.SetLineWidth(0.4)
	p.Line(pageMargin, p.GetY(), 210-pageMargin, p.GetY())
	p.Ln(5)
}

func (r *Renderer) clientSection(p *fpdf.Fpdf, tr func(string) string, client domain.ClientInfo) {
	p.SetFont("Helvetica", "B", 11)
	p.SetTextColor(0, 0, 0)
	p.CellFormat(0, 7, tr("Datos del Cliente"), "", 1, "L", false, 0, "")

	p.SetFillColor(247, 247, 247)
	p.SetFont("Helvetica", "", 10)
	p.CellFormat(0, 6, tr("Nombre: "+client.Name), "", 1, "L", true, 0, "")
	if client.NationalID != "" {
		p.CellFormat(0, 6, tr("CI: "+client.NationalID), "", 1, "L", true, 0, "")
	}
	p.CellFormat(0, 6, tr("Teléfono: (+591) "+client.Phone), "", 1, "L", true, 0, "")
	if client.Email != "" {
		p.CellFormat(0, 6, "Email: "+client.Email, "", 1, "L", true, 0, "")
	}
	p.Ln(6)
}

func (r *Renderer) itemsTable(p *fpdf.Fpdf, tr func(string) string, lines []domain.CartLine, red, green, blue int) {
	p.SetFont("Helvetica", "B", 11)
	p.CellFormat(0, 7, tr("Detalle de Productos"), "", 1, "L", false, 0, "")

	const (
		colProduct = 85.0
		colQty     = 25.0
		colPrice   = 35.0
		colTotal   = 35.0
	)

	p.SetFillColor(red, green, blue)
	p.SetTextColor(255, 255, 255)
	p.SetFont("Helvetica", "B", 10)
	p.CellFormat(colProduct, 7, tr("Producto"), "1", 0, "L", true, 0, "")
	p.CellFormat(colQty, 7, tr("Cantidad"), "1", 0, "C", true, 0, "")
	p.CellFormat(colPrice, 7, tr("Precio"), "1", 0, "R", true, 0, "")
	p.CellFormat(colTotal, 7, "Total", "1", 1, "R", true, 0, "")

	p.SetTextColor(0, 0, 0)
	p.SetFont("Helvetica", "", 10)
	for i, l := range lines {
		fill := i%2 == 1
		p.SetFillColor(245, 245, 245)
		p.CellFormat(colProduct, 7, tr(l.Name), "1", 0, "L", fill, 0, "")
		p.CellFormat(colQty, 7, fmt.Sprintf("%d", l.Quantity), "1", 0, "C", fill, 0, "")
		p.CellFormat(colPrice, 7, tr(domain.FormatBs(l.UnitPrice)), "1", 0, "R", fill, 0, "")
		p.CellFormat(colTotal, 7, tr(domain.FormatBs(l.LineTotal())), "1", 1, "R", fill, 0, "")
	}
	p.Ln(4)
}

func (r *Renderer) totalBox(p *fpdf.Fpdf, tr func(string) string, total decimal.Decimal, red, green, blue int) {
	p.SetFont("Helvetica", "B", 12)
	p.SetFillColor(red, green, blue)
	p.SetTextColor(255, 255, 255)
	p.CellFormat(145, 9, tr("Importe Total"), "", 0, "R", true, 0, "")
	p.CellFormat(35, 9, tr(domain.FormatBs(total)), "", 1, "R", true, 0, "")
	p.SetTextColor(0, 0, 0)
	p.Ln(8)
}

func (r *Renderer) termsBox(p *fpdf.Fpdf, tr func(string) string, doc ports.QuoteDocument, red, green, blue int) {
	p.SetFillColor(247, 247, 247)
	p.SetDrawColor(red, green, blue)
	p.SetLineWidth(0.8)
	startY := p.GetY()
	p.Line(pageMargin, startY, pageMargin, startY+34)
	p.SetX(pageMargin + 2)

	p.SetFont("Helvetica", "", 9)
	p.SetTextColor(68, 68, 68)
	switch doc.Mode {
	case domain.ModeReservation:
		p.MultiCell(0, 5, tr(fmt.Sprintf(
			"Términos y Condiciones: esta reserva queda confirmada con un anticipo del %d%% del importe total. "+
				"La cancelación sin costo es posible hasta %d horas antes del evento; pasado ese plazo el anticipo no es reembolsable.",
			doc.DepositPercent, doc.CancellationHours)), "", "L", false)
	default:
		p.MultiCell(0, 5, tr(fmt.Sprintf(
			"Nota: los precios de esta cotización son estimados y tienen una validez de %d días. "+
				"El stock no queda reservado hasta confirmar la reserva.",
			doc.ValidityDays)), "", "L", false)
	}

	p.Ln(1)
	p.SetX(pageMargin + 2)
	p.MultiCell(0, 5, tr(
		"Contamos con servicio de transporte con un costo adicional, el cual varía "+
			"según la cantidad solicitada y la ubicación exacta de entrega."), "", "L", false)

	p.Ln(2)
	p.SetFont("Helvetica", "I", 9)
	p.SetTextColor(51, 51, 51)
	p.CellFormat(0, 5, tr("Gracias por confiar en nosotros. Para reservas o confirmaciones, estaremos encantados de atenderle."), "", 1, "C", false, 0, "")
}

// scannableCode embeds a QR linking to the company's web presence. Failure
// is logged and counted; the document ships without the code.
func (r *Renderer) scannableCode(p *fpdf.Fpdf, tr func(string) string, company domain.Company) {
	png, err := r.codes.Generate(company.WebsiteURL(), qrSizePx)
	if err != nil {
		metrics.CodeFailuresTotal.Inc()
		r.log.Warn().Err(err).Msg("qr generation failed, document degraded")
		return
	}

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("reservation-qr", opts, bytes.NewReader(png))
	x := 210 - pageMargin - qrSizeMM
	p.ImageOptions("reservation-qr", x, p.GetY()+4, qrSizeMM, qrSizeMM, false, opts, 0, "")

	p.SetY(p.GetY() + 4 + qrSizeMM)
	p.SetX(x)
	p.SetFont("Helvetica", "", 7)
	p.SetTextColor(120, 120, 120)
	p.CellFormat(qrSizeMM, 4, tr("Verifique en nuestra web"), "", 1, "C", false, 0, "")
}

// hexToRGB parses a #RRGGBB brand color, defaulting to the site blue.
func hexToRGB(hex string) (int, int, int) {
	var red, green, blue int
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &red, &green, &blue); err != nil {
		return 16, 68, 163
	}
	return red, green, blue
}

package domain

import "fmt"

// DocumentMode selects between the two document variants: a non-binding cost
// estimate and a confirmed reservation with terms and a verification code.
type DocumentMode string

const (
	ModeQuote       DocumentMode = "quote"
	ModeReservation DocumentMode = "reservation"
)

// ParseDocumentMode maps a query-level mode string to a DocumentMode.
// The empty string defaults to ModeQuote.
func ParseDocumentMode(s string) (DocumentMode, error) {
	switch s {
	case "", string(ModeQuote):
		return ModeQuote, nil
	case string(ModeReservation):
		return ModeReservation, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// FilePrefix returns the filename prefix for generated documents.
func (m DocumentMode) FilePrefix() string {
	if m == ModeReservation {
		return "reserva"
	}
	return "cotizacion"
}

// Watermark returns the diagonal watermark text printed across the page.
func (m DocumentMode) Watermark() string {
	if m == ModeReservation {
		return "RESERVA CONFIRMADA"
	}
	return "COTIZACIÓN"
}

// Title returns the document heading.
func (m DocumentMode) Title() string {
	if m == ModeReservation {
		return "Reserva Confirmada"
	}
	return "Cotización"
}

package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// bolivian prints numbers with the es-BO conventions (comma decimals).
var bolivian = message.NewPrinter(language.MustParse("es-BO"))

// FormatBs renders an amount in bolivianos for display, matching the site's
// one-decimal convention: FormatBs(3.5) → "Bs 3,5".
func FormatBs(v decimal.Decimal) string {
	f, _ := v.Float64()
	return bolivian.Sprintf("Bs %v", number.Decimal(f,
		number.MinFractionDigits(1),
		number.MaxFractionDigits(1),
	))
}

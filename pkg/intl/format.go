package intl

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatNumeric renders x according to the configuration. It is total: every
// finite or non-finite double produces text, never an error. Unknown locales
// fall back to the root locale.
func FormatNumeric(nf *NumberFormat, x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "∞"
	case math.IsInf(x, -1):
		return "-∞"
	}

	opts := []number.Option{
		number.MinFractionDigits(nf.MinFractionDigits),
		number.MaxFractionDigits(nf.MaxFractionDigits),
	}
	if !nf.UseGrouping {
		opts = append(opts, number.NoSeparator())
	}

	printer := message.NewPrinter(language.Make(nf.Locale))
	if nf.Style == StylePercent {
		return printer.Sprint(number.Percent(x, opts...))
	}
	return printer.Sprint(number.Decimal(x, opts...))
}

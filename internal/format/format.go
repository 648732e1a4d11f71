// Package format produces tr-TR display strings. Output is only ever
// shown or exported, never parsed back or compared.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"tekstil-golang/internal/constants"
)

var printer = message.NewPrinter(language.Turkish)

// Number renders with tr-TR grouping and decimal comma. Integral
// values get no fraction digits, everything else exactly two.
func Number(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(0)))
	}
	return printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Currency prefixes Number with the currency symbol, falling back to
// the ISO code for currencies outside the symbol table.
func Currency(v float64, currency string) string {
	sym, ok := constants.CurrencySymbols[currency]
	if !ok {
		return currency + " " + Number(v)
	}
	return sym + Number(v)
}

package money

import (
	"fmt"

	"github.com/govalues/decimal"
)

// ISOProvider is a [Provider] backed by a table of [ISO 4217] currencies.
// Unlike [DefaultProvider], it rejects unknown codes, knows the real number
// of decimal places per currency (0 for the Japanese Yen, 3 for the Omani
// Rial, 2 for most others), and returns each currency's display symbol.
// Quantization uses [RoundHalfEven] (banker's rounding).
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type ISOProvider struct{}

type isoCurrency struct {
	places int
	symbol string
}

var isoLookup = map[string]isoCurrency{
	"AED": {2, "د.إ"},
	"AUD": {2, "A$"},
	"BHD": {3, ".د.ب"},
	"BRL": {2, "R$"},
	"CAD": {2, "CA$"},
	"CHF": {2, "CHF"},
	"CLP": {0, "$"},
	"CNY": {2, "¥"},
	"COP": {2, "$"},
	"CZK": {2, "Kč"},
	"DKK": {2, "kr"},
	"EUR": {2, "€"},
	"GBP": {2, "£"},
	"HKD": {2, "HK$"},
	"HUF": {2, "Ft"},
	"IDR": {2, "Rp"},
	"ILS": {2, "₪"},
	"INR": {2, "₹"},
	"IQD": {3, "ع.د"},
	"ISK": {0, "kr"},
	"JOD": {3, "د.أ"},
	"JPY": {0, "¥"},
	"KRW": {0, "₩"},
	"KWD": {3, "د.ك"},
	"MXN": {2, "$"},
	"MYR": {2, "RM"},
	"NOK": {2, "kr"},
	"NZD": {2, "NZ$"},
	"OMR": {3, "ر.ع."},
	"PHP": {2, "₱"},
	"PLN": {2, "zł"},
	"RUB": {2, "₽"},
	"SAR": {2, "ر.س"},
	"SEK": {2, "kr"},
	"SGD": {2, "S$"},
	"THB": {2, "฿"},
	"TND": {3, "د.ت"},
	"TRY": {2, "₺"},
	"TWD": {2, "NT$"},
	"USD": {2, "$"},
	"VND": {0, "₫"},
	"ZAR": {2, "R"},
}

// DecimalPlaces returns the number of digits after the decimal point required
// to represent the minor unit of the currency, or 2 if the code is unknown.
func (ISOProvider) DecimalPlaces(code string) int {
	if c, ok := isoLookup[code]; ok {
		return c.places
	}
	return 2
}

// Symbol returns the display symbol of the currency, or the code itself if
// the code is unknown.
func (ISOProvider) Symbol(code string) string {
	if c, ok := isoLookup[code]; ok {
		return c.symbol
	}
	return code
}

// Validate returns an error wrapping [ErrInvalidCurrency] if the code is not
// in the ISO 4217 table.
func (ISOProvider) Validate(code string) error {
	if _, ok := isoLookup[code]; !ok {
		return fmt.Errorf("%w: unknown ISO 4217 code %q", ErrInvalidCurrency, code)
	}
	return nil
}

// FormatAmount renders the amount as sign, symbol, then absolute value,
// using the currency's own symbol:
//
//	FormatAmount("EUR", decimal.MustParse("-9.99")) // "-€9.99"
func (p ISOProvider) FormatAmount(code string, amount decimal.Decimal) string {
	return formatWithSymbol(p.Symbol(code), amount)
}

// Rounding returns [RoundHalfEven] for every code.
func (ISOProvider) Rounding(code string) Rounding {
	return RoundHalfEven
}

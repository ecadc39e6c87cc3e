package money

import "github.com/govalues/decimal"

// Provider supplies currency metadata: the number of decimal places,
// the display symbol, the rounding mode, and the display formatting for
// a normalized 3-letter currency code.
// Implement this interface to plug in an external source of currency
// information. [DefaultProvider] and [ISOProvider] are the two reference
// implementations.
//
// All methods receive codes already normalized by [CleanCode], so an
// implementation does not need to handle case or length variations.
type Provider interface {
	// DecimalPlaces returns the number of fractional digits used for
	// quantization and display of the given currency.
	// The result must not be negative.
	DecimalPlaces(code string) int

	// Symbol returns the display glyph of the given currency, such as "$".
	Symbol(code string) string

	// Validate reports whether the given currency code is known to the
	// provider. It is called once at [Currency] construction and must return
	// an error wrapping [ErrInvalidCurrency] to reject a code.
	Validate(code string) error

	// FormatAmount renders an already quantized amount for display.
	// Quantization is the caller's responsibility; FormatAmount renders
	// whatever scale the amount carries.
	FormatAmount(code string, amount decimal.Decimal) string

	// Rounding returns the rounding mode used when quantizing amounts of
	// the given currency.
	Rounding(code string) Rounding
}

// DefaultProvider is a currency-agnostic bootstrap [Provider].
// It fixes 2 decimal places, a "$" symbol, and unconditional validity for
// every code, and rounds away from zero on any truncation ([RoundUp]).
// It is intended as a demo policy rather than a source of real currency data;
// see [ISOProvider] for actual ISO 4217 metadata.
type DefaultProvider struct{}

// DecimalPlaces returns 2 for every code.
func (DefaultProvider) DecimalPlaces(code string) int {
	return 2
}

// Symbol returns "$" for every code.
func (DefaultProvider) Symbol(code string) string {
	return "$"
}

// Validate accepts every code.
func (DefaultProvider) Validate(code string) error {
	return nil
}

// FormatAmount renders the amount as sign, symbol, then absolute value:
//
//	FormatAmount("USD", decimal.MustParse("-1234.123")) // "-$1234.123"
//	FormatAmount("USD", decimal.MustParse("43321.123")) // "$43321.123"
func (p DefaultProvider) FormatAmount(code string, amount decimal.Decimal) string {
	return formatWithSymbol(p.Symbol(code), amount)
}

// Rounding returns [RoundUp] for every code.
func (DefaultProvider) Rounding(code string) Rounding {
	return RoundUp
}

// formatWithSymbol renders sign + symbol + absolute value, the display
// convention shared by the built-in providers.
func formatWithSymbol(symbol string, amount decimal.Decimal) string {
	sign := ""
	if amount.IsNeg() {
		sign = "-"
	}
	return sign + symbol + amount.Abs().String()
}

// defaultProvider is the process-wide provider used by currencies constructed
// without an explicit provider. It is a plain global: the package performs no
// synchronization, so concurrent use of the setters requires external locking.
var defaultProvider Provider = DefaultProvider{}

// DefaultCurrencyProvider returns the process-wide default [Provider].
func DefaultCurrencyProvider() Provider {
	return defaultProvider
}

// SetDefaultCurrencyProvider replaces the process-wide default [Provider].
// The change affects currencies constructed afterwards; currencies already
// constructed keep the provider captured at construction time.
// Passing nil restores the built-in [DefaultProvider].
func SetDefaultCurrencyProvider(p Provider) {
	if p == nil {
		p = DefaultProvider{}
	}
	defaultProvider = p
}

// ResetDefaultCurrencyProvider restores the built-in [DefaultProvider] as the
// process-wide default. It is intended for test isolation:
//
//	old := money.DefaultCurrencyProvider()
//	money.SetDefaultCurrencyProvider(custom)
//	defer money.SetDefaultCurrencyProvider(old)
func ResetDefaultCurrencyProvider() {
	defaultProvider = DefaultProvider{}
}

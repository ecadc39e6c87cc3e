package money

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/govalues/decimal"
)

// Currency identifies a currency by a normalized 3-letter code bound to a
// metadata [Provider]. The provider supplies the number of decimal places,
// the display symbol, the rounding mode, and the display formatting; Currency
// delegates quantization and formatting to it.
//
// Two Currency values are equal if and only if their codes match; the bound
// provider is not part of equality. Compare currencies with [Currency.Equal]
// rather than ==.
//
// The zero value is not a valid currency; construct one with [NewCurrency],
// [NewCurrencyWithProvider], or [MustNewCurrency].
type Currency struct {
	code string
	prov Provider
}

// CleanCode normalizes a currency code: it must be exactly 3 characters long
// and is canonicalized to uppercase.
//
// CleanCode returns an error wrapping [ErrInvalidCurrency] if the code is
// shorter or longer than 3 characters.
func CleanCode(code string) (string, error) {
	if utf8.RuneCountInString(code) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
	}
	return strings.ToUpper(code), nil
}

// NewCurrency constructs a currency from a 3-letter code, binding it to the
// current process-wide default provider.
// See also [NewCurrencyWithProvider] and [SetDefaultCurrencyProvider].
//
// NewCurrency returns an error wrapping [ErrInvalidCurrency] if the code
// fails normalization or is rejected by the provider.
func NewCurrency(code string) (Currency, error) {
	return NewCurrencyWithProvider(code, nil)
}

// NewCurrencyWithProvider constructs a currency from a 3-letter code bound to
// the given provider. A nil provider means the current process-wide default.
// The normalized code is validated by the provider; its rejection is
// propagated unchanged.
func NewCurrencyWithProvider(code string, p Provider) (Currency, error) {
	if p == nil {
		p = DefaultCurrencyProvider()
	}
	cleaned, err := CleanCode(code)
	if err != nil {
		return Currency{}, err
	}
	if err := p.Validate(cleaned); err != nil {
		return Currency{}, err
	}
	return Currency{code: cleaned, prov: p}, nil
}

// MustNewCurrency is like [NewCurrency] but panics if the currency cannot be
// constructed. It simplifies safe initialization of global variables holding
// currencies.
func MustNewCurrency(code string) Currency {
	c, err := NewCurrency(code)
	if err != nil {
		panic(fmt.Sprintf("NewCurrency(%q) failed: %v", code, err))
	}
	return c
}

// Code returns the normalized 3-letter code of the currency.
func (c Currency) Code() string {
	return c.code
}

// Provider returns the metadata provider the currency was bound to at
// construction time.
func (c Currency) Provider() Provider {
	return c.prov
}

// Symbol returns the display symbol of the currency, as supplied by its
// provider.
func (c Currency) Symbol() string {
	return c.prov.Symbol(c.code)
}

// Scale returns the number of digits after the decimal point used for
// quantization and display of the currency, as supplied by its provider.
func (c Currency) Scale() int {
	return c.prov.DecimalPlaces(c.code)
}

// Equal reports whether two currencies have the same normalized code.
// The bound providers are ignored: two currencies with the same code but
// different providers are considered the same currency.
func (c Currency) Equal(other Currency) bool {
	return c.code == other.code
}

// QuantizeAmount rounds the amount to the currency's number of decimal
// places using the rounding mode supplied by its provider.
// The result carries exactly the currency's scale.
// See also method [Currency.QuantizeAmountWith].
//
// QuantizeAmount returns an error if the integer part of the result has more
// than ([decimal.MaxPrec] - [Currency.Scale]) digits.
func (c Currency) QuantizeAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	return c.QuantizeAmountWith(amount, c.prov.Rounding(c.code))
}

// QuantizeAmountWith is like [Currency.QuantizeAmount] but overrides the
// provider's rounding mode with the given one.
func (c Currency) QuantizeAmountWith(amount decimal.Decimal, rounding Rounding) (decimal.Decimal, error) {
	d, err := rounding.quantize(amount, c.Scale())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("quantizing %v %v: %w", c, amount, err)
	}
	return d, nil
}

// FormatAmount quantizes the amount to the currency's scale and renders it
// for display via the currency's provider.
// See also method [Currency.FormatAmountAsIs].
func (c Currency) FormatAmount(amount decimal.Decimal) (string, error) {
	d, err := c.QuantizeAmount(amount)
	if err != nil {
		return "", err
	}
	return c.FormatAmountAsIs(d), nil
}

// FormatAmountAsIs renders the amount for display via the currency's
// provider without quantizing it first. The caller is responsible for
// pre-quantizing; the rendered string shows whatever scale the amount
// carries.
func (c Currency) FormatAmountAsIs(amount decimal.Decimal) string {
	return c.prov.FormatAmount(c.code, amount)
}

// String implements the [fmt.Stringer] interface and returns the normalized
// code of the currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.code
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %s, %v     | USD     | Currency code   |
//	| %q         | "USD"   | Quoted code     |
//	| %c         | $       | Currency symbol |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	var content string
	switch verb {
	case 'c', 'C':
		content = c.Symbol()
	default:
		content = c.Code()
	}

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + len(content) + tquote
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, width)
	pos := width - 1

	// Trailing spaces
	for j := 0; j < tspaces; j++ {
		buf[pos] = ' '
		pos--
	}

	// Closing quote
	for j := 0; j < tquote; j++ {
		buf[pos] = '"'
		pos--
	}

	// Content
	for i := 0; i < len(content); i++ {
		buf[pos] = content[len(content)-i-1]
		pos--
	}

	// Opening quote
	for j := 0; j < lquote; j++ {
		buf[pos] = '"'
		pos--
	}

	// Leading spaces
	for j := 0; j < lspaces; j++ {
		buf[pos] = ' '
		pos--
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Currency="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

package money

import (
	"errors"
	"fmt"
	"testing"

	"github.com/govalues/decimal"
)

// stubProvider is a fixed-response Provider for tests.
type stubProvider struct {
	places   int
	symbol   string
	rounding Rounding
	invalid  bool
}

func (p stubProvider) DecimalPlaces(code string) int {
	return p.places
}

func (p stubProvider) Symbol(code string) string {
	return p.symbol
}

func (p stubProvider) Validate(code string) error {
	if p.invalid {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
	}
	return nil
}

func (p stubProvider) FormatAmount(code string, amount decimal.Decimal) string {
	return formatWithSymbol(p.symbol, amount)
}

func (p stubProvider) Rounding(code string) Rounding {
	return p.rounding
}

func TestCleanCode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			code, want string
		}{
			{"USD", "USD"},
			{"usd", "USD"},
			{"mXn", "MXN"},
			{"yen", "YEN"},
		}
		for _, tt := range tests {
			got, err := CleanCode(tt.code)
			if err != nil {
				t.Errorf("CleanCode(%q) failed: %v", tt.code, err)
				continue
			}
			if got != tt.want {
				t.Errorf("CleanCode(%q) = %q, want %q", tt.code, got, tt.want)
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		once, err := CleanCode("clp")
		if err != nil {
			t.Fatalf("CleanCode(\"clp\") failed: %v", err)
		}
		twice, err := CleanCode(once)
		if err != nil {
			t.Fatalf("CleanCode(%q) failed: %v", once, err)
		}
		if once != twice {
			t.Errorf("CleanCode(CleanCode(\"clp\")) = %q, want %q", twice, once)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"", "C", "CL", "CLPF", "DOLLAR", " usd",
		}
		for _, tt := range tests {
			_, err := CleanCode(tt)
			if err == nil {
				t.Errorf("CleanCode(%q) did not fail", tt)
				continue
			}
			if !errors.Is(err, ErrInvalidCurrency) {
				t.Errorf("CleanCode(%q) = %v, want ErrInvalidCurrency", tt, err)
			}
		}
	})
}

func TestNewCurrency(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c, err := NewCurrency("usd")
		if err != nil {
			t.Fatalf("NewCurrency(\"usd\") failed: %v", err)
		}
		if c.Code() != "USD" {
			t.Errorf("c.Code() = %q, want %q", c.Code(), "USD")
		}
		if _, ok := c.Provider().(DefaultProvider); !ok {
			t.Errorf("c.Provider() = %T, want DefaultProvider", c.Provider())
		}
	})

	t.Run("invalid code", func(t *testing.T) {
		tests := []string{"", "CL", "CLPF"}
		for _, tt := range tests {
			_, err := NewCurrency(tt)
			if !errors.Is(err, ErrInvalidCurrency) {
				t.Errorf("NewCurrency(%q) = %v, want ErrInvalidCurrency", tt, err)
			}
		}
	})

	t.Run("provider rejection", func(t *testing.T) {
		_, err := NewCurrencyWithProvider("USD", stubProvider{invalid: true})
		if !errors.Is(err, ErrInvalidCurrency) {
			t.Errorf("NewCurrencyWithProvider(\"USD\", rejecting) = %v, want ErrInvalidCurrency", err)
		}
	})
}

func TestMustNewCurrency(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustNewCurrency(\"UUUU\") did not panic")
			}
		}()
		MustNewCurrency("UUUU")
	})
}

func TestCurrency_Equal(t *testing.T) {
	tests := []struct {
		a, b Currency
		want bool
	}{
		{MustNewCurrency("YEN"), MustNewCurrency("yen"), true},
		{MustNewCurrency("YEN"), MustNewCurrency("clp"), false},
		{MustNewCurrency("USD"), MustNewCurrency("USD"), true},
	}
	for _, tt := range tests {
		got := tt.a.Equal(tt.b)
		if got != tt.want {
			t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

// Currencies with the same code but different providers are the same currency.
func TestCurrency_Equal_providersIgnored(t *testing.T) {
	a, err := NewCurrencyWithProvider("YEN", stubProvider{places: 0, symbol: "¥"})
	if err != nil {
		t.Fatalf("NewCurrencyWithProvider(\"YEN\", stub) failed: %v", err)
	}
	b, err := NewCurrencyWithProvider("yen", DefaultProvider{})
	if err != nil {
		t.Fatalf("NewCurrencyWithProvider(\"yen\", default) failed: %v", err)
	}
	if !a.Equal(b) {
		t.Errorf("%v.Equal(%v) = false, want true", a, b)
	}
}

func TestCurrency_Symbol(t *testing.T) {
	c, err := NewCurrencyWithProvider("YEN", stubProvider{places: 0, symbol: "¥"})
	if err != nil {
		t.Fatalf("NewCurrencyWithProvider(\"YEN\", stub) failed: %v", err)
	}
	if got := c.Symbol(); got != "¥" {
		t.Errorf("c.Symbol() = %q, want %q", got, "¥")
	}
	if got := MustNewCurrency("USD").Symbol(); got != "$" {
		t.Errorf("c.Symbol() = %q, want %q", got, "$")
	}
}

func TestCurrency_Scale(t *testing.T) {
	tests := []struct {
		prov Provider
		want int
	}{
		{DefaultProvider{}, 2},
		{stubProvider{places: 0}, 0},
		{stubProvider{places: 3}, 3},
	}
	for _, tt := range tests {
		c, err := NewCurrencyWithProvider("USD", tt.prov)
		if err != nil {
			t.Fatalf("NewCurrencyWithProvider(\"USD\", %v) failed: %v", tt.prov, err)
		}
		if got := c.Scale(); got != tt.want {
			t.Errorf("c.Scale() = %v, want %v", got, tt.want)
		}
	}
}

func TestCurrency_QuantizeAmount(t *testing.T) {
	tests := []struct {
		prov          Provider
		amount, want  string
	}{
		// Default policy: round up in magnitude at 2 decimal places.
		{DefaultProvider{}, "4.191", "4.20"},
		{DefaultProvider{}, "-4.191", "-4.20"},
		{DefaultProvider{}, "4.20", "4.20"},
		{DefaultProvider{}, "5", "5.00"},
		// Zero decimal places.
		{stubProvider{places: 0, rounding: RoundUp}, "4.191", "5"},
		// Round toward zero.
		{stubProvider{places: 2, rounding: RoundDown}, "4.201", "4.20"},
		{stubProvider{places: 2, rounding: RoundDown}, "-4.209", "-4.20"},
	}
	for _, tt := range tests {
		c, err := NewCurrencyWithProvider("USD", tt.prov)
		if err != nil {
			t.Fatalf("NewCurrencyWithProvider(\"USD\", %v) failed: %v", tt.prov, err)
		}
		got, err := c.QuantizeAmount(decimal.MustParse(tt.amount))
		if err != nil {
			t.Errorf("c.QuantizeAmount(%q) failed: %v", tt.amount, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("c.QuantizeAmount(%q) = %v, want %v", tt.amount, got, tt.want)
		}
	}
}

func TestCurrency_QuantizeAmountWith(t *testing.T) {
	// The forced mode overrides the provider's rounding.
	c, err := NewCurrencyWithProvider("USD", stubProvider{places: 0, rounding: RoundDown})
	if err != nil {
		t.Fatalf("NewCurrencyWithProvider(\"USD\", stub) failed: %v", err)
	}
	got, err := c.QuantizeAmountWith(decimal.MustParse("4.191"), RoundCeiling)
	if err != nil {
		t.Fatalf("c.QuantizeAmountWith(4.191, RoundCeiling) failed: %v", err)
	}
	if got.String() != "5" {
		t.Errorf("c.QuantizeAmountWith(4.191, RoundCeiling) = %v, want 5", got)
	}
}

func TestCurrency_FormatAmount(t *testing.T) {
	c := MustNewCurrency("USD")

	t.Run("quantizes first", func(t *testing.T) {
		got, err := c.FormatAmount(decimal.MustParse("4.191"))
		if err != nil {
			t.Fatalf("c.FormatAmount(4.191) failed: %v", err)
		}
		if got != "$4.20" {
			t.Errorf("c.FormatAmount(4.191) = %q, want %q", got, "$4.20")
		}
	})

	t.Run("as is", func(t *testing.T) {
		got := c.FormatAmountAsIs(decimal.MustParse("4.191"))
		if got != "$4.191" {
			t.Errorf("c.FormatAmountAsIs(4.191) = %q, want %q", got, "$4.191")
		}
	})
}

func TestCurrency_Format(t *testing.T) {
	usd := MustNewCurrency("USD")
	yen, err := NewCurrencyWithProvider("YEN", stubProvider{places: 0, symbol: "¥"})
	if err != nil {
		t.Fatalf("NewCurrencyWithProvider(\"YEN\", stub) failed: %v", err)
	}
	tests := []struct {
		curr         Currency
		format, want string
	}{
		// %s verb
		{usd, "%s", "USD"},
		{usd, "%5s", "  USD"},
		{usd, "%-5s", "USD  "},
		// %v verb
		{usd, "%v", "USD"},
		// %q verb
		{usd, "%q", "\"USD\""},
		{usd, "%7q", "  \"USD\""},
		// %c verb
		{usd, "%c", "$"},
		{yen, "%c", "¥"},
		// wrong verb
		{usd, "%b", "%!b(money.Currency=USD)"},
	}
	for _, tt := range tests {
		got := fmt.Sprintf(tt.format, tt.curr)
		if got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, tt.curr, got, tt.want)
		}
	}
}

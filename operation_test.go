package money

import (
	"testing"

	"github.com/govalues/decimal"
)

func TestOperator_String(t *testing.T) {
	tests := []struct {
		operator Operator
		want     string
	}{
		{OpInit, "init"},
		{OpAdd, "+"},
		{OpSub, "-"},
		{OpMul, "*"},
		{OpDiv, "/"},
		{Operator(200), "?"},
	}
	for _, tt := range tests {
		if got := tt.operator.String(); got != tt.want {
			t.Errorf("Operator(%d).String() = %q, want %q", uint8(tt.operator), got, tt.want)
		}
	}
}

func TestOperation_String(t *testing.T) {
	a := MustParseMoney("USD", "1")
	b := MustParseMoney("USD", "5")

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("a.Add(b) failed: %v", err)
	}
	ops := sum.Operations()

	tests := []struct {
		op   Operation
		want string
	}{
		{ops[0], "(init USD$6.00)"},
		{ops[1], "(+ USD$1.00 USD$5.00)"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("op.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestOperand(t *testing.T) {
	t.Run("money", func(t *testing.T) {
		m := MustParseMoney("USD", "5")
		o := newMoneyOperand(m)
		if !o.IsMoney() {
			t.Errorf("o.IsMoney() = false, want true")
		}
		snap, ok := o.Money()
		if !ok {
			t.Fatalf("o.Money() not ok")
		}
		if !snap.Equal(m) {
			t.Errorf("o.Money() = %v, want %v", snap, m)
		}
		if _, ok := o.Scalar(); ok {
			t.Errorf("o.Scalar() ok, want not ok")
		}
		if got := o.String(); got != "USD$5.00" {
			t.Errorf("o.String() = %q, want %q", got, "USD$5.00")
		}
	})

	t.Run("scalar", func(t *testing.T) {
		o := newScalarOperand(decimal.MustParse("5.01"))
		if o.IsMoney() {
			t.Errorf("o.IsMoney() = true, want false")
		}
		d, ok := o.Scalar()
		if !ok {
			t.Fatalf("o.Scalar() not ok")
		}
		if d.String() != "5.01" {
			t.Errorf("o.Scalar() = %v, want 5.01", d)
		}
		if _, ok := o.Money(); ok {
			t.Errorf("o.Money() ok, want not ok")
		}
		if got := o.String(); got != "5.01" {
			t.Errorf("o.String() = %q, want %q", got, "5.01")
		}
	})

	t.Run("accessor returns a copy", func(t *testing.T) {
		m := MustParseMoney("USD", "5")
		o := newMoneyOperand(m)
		snap, _ := o.Money()
		if err := snap.AddAmountInPlace(decimal.MustParse("1")); err != nil {
			t.Fatalf("snap.AddAmountInPlace(1) failed: %v", err)
		}
		again, _ := o.Money()
		if again.Amount().String() != "5.00" {
			t.Errorf("recorded operand amount = %v, want 5.00", again.Amount())
		}
	})
}

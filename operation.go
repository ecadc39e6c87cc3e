package money

import (
	"strings"

	"github.com/govalues/decimal"
)

// Operator identifies the kind of an operation recorded in a monetary
// value's history.
type Operator uint8

const (
	// OpInit records direct construction of a monetary value.
	OpInit Operator = iota

	// OpAdd records an addition.
	OpAdd

	// OpSub records a subtraction.
	OpSub

	// OpMul records a multiplication by a scalar.
	OpMul

	// OpDiv records a division by a scalar.
	OpDiv
)

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (o Operator) String() string {
	switch o {
	case OpInit:
		return "init"
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "?"
}

// Operand is a snapshot of an argument to a recorded operation: either a
// monetary value or a scalar decimal. Snapshots are deep copies taken at
// record time, so later mutation of the original operands never alters
// history.
type Operand struct {
	money  *Money // nil for scalar operands
	scalar decimal.Decimal
}

func newMoneyOperand(m *Money) Operand {
	return Operand{money: m.snapshot()}
}

func newScalarOperand(d decimal.Decimal) Operand {
	return Operand{scalar: d}
}

// IsMoney reports whether the operand is a monetary value rather than
// a scalar.
func (o Operand) IsMoney() bool {
	return o.money != nil
}

// Money returns the monetary value the operand snapshots and true, or nil
// and false for a scalar operand. The returned value is a fresh copy;
// mutating it does not affect the recorded history.
func (o Operand) Money() (*Money, bool) {
	if o.money == nil {
		return nil, false
	}
	return o.money.snapshot(), true
}

// Scalar returns the scalar the operand snapshots and true, or a zero
// decimal and false for a monetary operand.
func (o Operand) Scalar() (decimal.Decimal, bool) {
	if o.money != nil {
		return decimal.Decimal{}, false
	}
	return o.scalar, true
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (o Operand) String() string {
	if o.money != nil {
		return o.money.String()
	}
	return o.scalar.String()
}

// Operation is a single record in a monetary value's history: an operator
// and the snapshots of its operands, in order.
type Operation struct {
	operator Operator
	operands []Operand
}

func newOperation(operator Operator, operands ...Operand) Operation {
	return Operation{operator: operator, operands: operands}
}

// Operator returns the kind of the recorded operation.
func (o Operation) Operator() Operator {
	return o.operator
}

// Operands returns a copy of the recorded operand snapshots, in order.
func (o Operation) Operands() []Operand {
	operands := make([]Operand, len(o.operands))
	copy(operands, o.operands)
	return operands
}

// String implements the [fmt.Stringer] interface and renders the operation
// in prefix form:
//
//	(+ USD$1.00 USD$5.00)
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (o Operation) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(o.operator.String())
	for _, operand := range o.operands {
		b.WriteByte(' ')
		b.WriteString(operand.String())
	}
	b.WriteByte(')')
	return b.String()
}

package money

import (
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

var negOne = decimal.MustParse("-1")

// Money represents an amount of money denominated in a currency, together
// with the history of operations that produced it.
//
// The value-returning operators ([Money.Add], [Money.Sub], [Money.Mul],
// [Money.Div], [Money.Neg]) leave the receiver untouched and return a new
// value whose history starts with an initialization record followed by the
// record of the operation. The in-place operators ([Money.AddInPlace],
// [Money.SubInPlace]) mutate the receiver and append to its history.
//
// The amount is stored already quantized to the currency's scale, with one
// deliberate exception: addition and subtraction store the raw sum or
// difference without requantizing it, so the stored amount can temporarily
// carry more fractional digits than the currency's nominal scale. Only
// construction, multiplication, division, and the explicit quantize and
// format calls normalize the scale. [Money.Formatted] renders the amount
// as is.
//
// Money is not safe for concurrent use: the in-place operators and the
// history log mutate shared state.
type Money struct {
	amount decimal.Decimal
	curr   Currency
	ops    []Operation
}

// newMoney creates a money value holding the amount as given, without
// quantizing it, and starts its history with an initialization record.
// The record snapshots the newborn value itself, taken before the history
// is non-empty, so the snapshot carries an empty log.
func newMoney(curr Currency, amount decimal.Decimal) *Money {
	m := &Money{amount: amount, curr: curr}
	m.record(OpInit, newMoneyOperand(m))
	return m
}

// NewMoney constructs a money value from a decimal amount and a currency.
// The amount is quantized to the currency's scale using the rounding mode
// supplied by the currency's provider.
//
// NewMoney returns an error if the amount cannot be quantized.
func NewMoney(curr Currency, amount decimal.Decimal) (*Money, error) {
	d, err := curr.QuantizeAmount(amount)
	if err != nil {
		return nil, err
	}
	return newMoney(curr, d), nil
}

// NewMoneyFromInt64 converts an integer to a money value in the given
// currency. See also [NewMoney].
func NewMoneyFromInt64(curr Currency, amount int64) (*Money, error) {
	d, err := decimal.New(amount, 0)
	if err != nil {
		return nil, fmt.Errorf("converting integer: %w", err)
	}
	return NewMoney(curr, d)
}

// NewMoneyFromFloat64 converts a float to a money value in the given
// currency. The float is converted through its exact decimal representation
// before quantization; no binary floating-point arithmetic is involved.
//
// NewMoneyFromFloat64 returns an error wrapping [ErrInvalidAmount] if the
// float is a special value (NaN or Inf).
func NewMoneyFromFloat64(curr Currency, amount float64) (*Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, fmt.Errorf("%w: special value %v", ErrInvalidAmount, amount)
	}
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	d, err := decimal.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	return NewMoney(curr, d)
}

// ParseMoney converts currency and amount strings to a money value.
// The currency is constructed via [NewCurrency] using the process-wide
// default provider, and its failures are propagated unchanged.
//
// ParseMoney returns an error wrapping [ErrInvalidAmount] if the amount
// string does not represent an exact decimal.
func ParseMoney(curr, amount string) (*Money, error) {
	c, err := NewCurrency(curr)
	if err != nil {
		return nil, err
	}
	d, err := decimal.Parse(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	return NewMoney(c, d)
}

// MustParseMoney is like [ParseMoney] but panics if any of the strings
// cannot be parsed. It simplifies safe initialization of global variables
// holding money values.
func MustParseMoney(curr, amount string) *Money {
	m, err := ParseMoney(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseMoney(%q, %q) failed: %v", curr, amount, err))
	}
	return m
}

// Amount returns the decimal amount of the money value.
func (m *Money) Amount() decimal.Decimal {
	return m.amount
}

// Curr returns the currency of the money value.
func (m *Money) Curr() Currency {
	return m.curr
}

// Operations returns a copy of the money value's history, oldest first.
// A freshly constructed value has a history of length 1 holding a single
// [OpInit] record; every operator appends exactly one record.
func (m *Money) Operations() []Operation {
	ops := make([]Operation, len(m.ops))
	copy(ops, m.ops)
	return ops
}

// snapshot returns a deep copy of the money value: amount, currency, and the
// history as it exists right now. Recorded operands are immutable, so the
// history entries themselves are shared.
func (m *Money) snapshot() *Money {
	ops := make([]Operation, len(m.ops))
	copy(ops, m.ops)
	return &Money{amount: m.amount, curr: m.curr, ops: ops}
}

func (m *Money) record(operator Operator, operands ...Operand) {
	m.ops = append(m.ops, newOperation(operator, operands...))
}

// cleanOperand validates the right-hand side of a binary operation:
// the operand must be non-nil and denominated in the receiver's currency.
func (m *Money) cleanOperand(other *Money) (*Money, error) {
	if other == nil {
		return nil, fmt.Errorf("%w: nil money", ErrInvalidOperand)
	}
	if !m.curr.Equal(other.curr) {
		return nil, fmt.Errorf("%w: %v and %v", ErrCurrencyMismatch, m.curr, other.curr)
	}
	return other, nil
}

// promote converts a scalar to a money value in the receiver's currency,
// quantizing it to the currency's scale.
func (m *Money) promote(e decimal.Decimal) (*Money, error) {
	return NewMoney(m.curr, e)
}

// Add returns a new money value holding the sum of m and the other value.
// The sum is stored without requantization. The result's history records the
// addition with snapshots of both operands.
//
// Add returns an error if:
//   - the operand is nil;
//   - the operands are denominated in different currencies.
func (m *Money) Add(other *Money) (*Money, error) {
	res, err := m.add(other)
	if err != nil {
		return nil, fmt.Errorf("computing [%v + %v]: %w", m, other, err)
	}
	return res, nil
}

func (m *Money) add(other *Money) (*Money, error) {
	o, err := m.cleanOperand(other)
	if err != nil {
		return nil, err
	}
	sum, err := m.amount.Add(o.amount)
	if err != nil {
		return nil, err
	}
	res := newMoney(m.curr, sum)
	res.record(OpAdd, newMoneyOperand(m), newMoneyOperand(o))
	return res, nil
}

// AddAmount returns a new money value holding the sum of m and a scalar.
// The scalar is promoted to a money value in the receiver's currency, which
// quantizes it, before the addition.
func (m *Money) AddAmount(e decimal.Decimal) (*Money, error) {
	o, err := m.promote(e)
	if err != nil {
		return nil, fmt.Errorf("computing [%v + %v]: %w", m, e, err)
	}
	return m.Add(o)
}

// AddInPlace adds the other value to m, mutating m's amount and appending
// an addition record to m's own history. The record snapshots both operands
// before the mutation.
//
// AddInPlace validates the operand before touching the receiver: on error
// the receiver's amount and history are unchanged.
func (m *Money) AddInPlace(other *Money) error {
	o, err := m.cleanOperand(other)
	if err != nil {
		return fmt.Errorf("computing [%v += %v]: %w", m, other, err)
	}
	sum, err := m.amount.Add(o.amount)
	if err != nil {
		return fmt.Errorf("computing [%v += %v]: %w", m, other, err)
	}
	m.record(OpAdd, newMoneyOperand(m), newMoneyOperand(o))
	m.amount = sum
	return nil
}

// AddAmountInPlace is like [Money.AddInPlace] with a scalar operand,
// promoted to the receiver's currency first.
func (m *Money) AddAmountInPlace(e decimal.Decimal) error {
	o, err := m.promote(e)
	if err != nil {
		return fmt.Errorf("computing [%v += %v]: %w", m, e, err)
	}
	return m.AddInPlace(o)
}

// Sub returns a new money value holding the difference of m and the other
// value. The difference is stored without requantization. The result's
// history records the subtraction with snapshots of both operands.
//
// Sub returns an error if:
//   - the operand is nil;
//   - the operands are denominated in different currencies.
func (m *Money) Sub(other *Money) (*Money, error) {
	res, err := m.sub(other)
	if err != nil {
		return nil, fmt.Errorf("computing [%v - %v]: %w", m, other, err)
	}
	return res, nil
}

func (m *Money) sub(other *Money) (*Money, error) {
	o, err := m.cleanOperand(other)
	if err != nil {
		return nil, err
	}
	diff, err := m.amount.Sub(o.amount)
	if err != nil {
		return nil, err
	}
	res := newMoney(m.curr, diff)
	res.record(OpSub, newMoneyOperand(m), newMoneyOperand(o))
	return res, nil
}

// SubAmount returns a new money value holding the difference of m and a
// scalar, promoted to the receiver's currency first.
func (m *Money) SubAmount(e decimal.Decimal) (*Money, error) {
	o, err := m.promote(e)
	if err != nil {
		return nil, fmt.Errorf("computing [%v - %v]: %w", m, e, err)
	}
	return m.Sub(o)
}

// SubFrom returns a new money value holding e - m: the scalar is promoted to
// a money value in the receiver's currency and m is subtracted from it.
// The promoted scalar is the minuend, so the result's history records the
// subtraction with the promoted scalar first:
//
//	m := money.MustParseMoney("USD", "0.80")
//	r, _ := m.SubFrom(decimal.MustParse("5")) // USD$4.20
func (m *Money) SubFrom(e decimal.Decimal) (*Money, error) {
	o, err := m.promote(e)
	if err != nil {
		return nil, fmt.Errorf("computing [%v - %v]: %w", e, m, err)
	}
	return o.Sub(m)
}

// SubInPlace subtracts the other value from m, mutating m's amount and
// appending a subtraction record to m's own history. The record snapshots
// both operands before the mutation.
//
// SubInPlace validates the operand before touching the receiver: on error
// the receiver's amount and history are unchanged.
func (m *Money) SubInPlace(other *Money) error {
	o, err := m.cleanOperand(other)
	if err != nil {
		return fmt.Errorf("computing [%v -= %v]: %w", m, other, err)
	}
	diff, err := m.amount.Sub(o.amount)
	if err != nil {
		return fmt.Errorf("computing [%v -= %v]: %w", m, other, err)
	}
	m.record(OpSub, newMoneyOperand(m), newMoneyOperand(o))
	m.amount = diff
	return nil
}

// SubAmountInPlace is like [Money.SubInPlace] with a scalar operand,
// promoted to the receiver's currency first.
func (m *Money) SubAmountInPlace(e decimal.Decimal) error {
	o, err := m.promote(e)
	if err != nil {
		return fmt.Errorf("computing [%v -= %v]: %w", m, e, err)
	}
	return m.SubInPlace(o)
}

// Mul returns a new money value holding the product of m and a scalar.
// The scalar is quantized to the currency's scale before multiplying, and
// the product is quantized again. The result's history records the
// multiplication with a snapshot of m and the quantized scalar, not the
// raw one.
func (m *Money) Mul(e decimal.Decimal) (*Money, error) {
	res, err := m.mul(e)
	if err != nil {
		return nil, fmt.Errorf("computing [%v * %v]: %w", m, e, err)
	}
	return res, nil
}

func (m *Money) mul(e decimal.Decimal) (*Money, error) {
	cleaned, err := m.curr.QuantizeAmount(e)
	if err != nil {
		return nil, err
	}
	prod, err := m.amount.Mul(cleaned)
	if err != nil {
		return nil, err
	}
	q, err := m.curr.QuantizeAmount(prod)
	if err != nil {
		return nil, err
	}
	res := newMoney(m.curr, q)
	res.record(OpMul, newMoneyOperand(m), newScalarOperand(cleaned))
	return res, nil
}

// Div returns a new money value holding the quotient of m and a scalar
// divisor. The divisor is quantized to the currency's scale before dividing,
// and the quotient is quantized again. The result's history records the
// division with a snapshot of m and the quantized divisor.
//
// Div returns an error wrapping [ErrDivisionByZero] if the divisor is zero
// after quantization.
func (m *Money) Div(e decimal.Decimal) (*Money, error) {
	res, err := m.div(e)
	if err != nil {
		return nil, fmt.Errorf("computing [%v / %v]: %w", m, e, err)
	}
	return res, nil
}

func (m *Money) div(e decimal.Decimal) (*Money, error) {
	cleaned, err := m.curr.QuantizeAmount(e)
	if err != nil {
		return nil, err
	}
	if cleaned.IsZero() {
		return nil, ErrDivisionByZero
	}
	quo, err := m.amount.Quo(cleaned)
	if err != nil {
		return nil, err
	}
	q, err := m.curr.QuantizeAmount(quo)
	if err != nil {
		return nil, err
	}
	res := newMoney(m.curr, q)
	res.record(OpDiv, newMoneyOperand(m), newScalarOperand(cleaned))
	return res, nil
}

// Neg returns a money value with the opposite sign.
// It is defined as multiplication by -1, so the result's history shows a
// multiplication record rather than a dedicated negation operator.
func (m *Money) Neg() (*Money, error) {
	return m.Mul(negOne)
}

// Split returns money values that sum up to exactly m, as equal as possible.
// If m cannot be divided evenly, the remainder is distributed, one smallest
// currency unit at a time, over the first parts of the slice. Each part's
// history records a division by the part count.
//
// Split returns an error if the number of parts is not a positive integer.
func (m *Money) Split(parts int) ([]*Money, error) {
	res, err := m.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", m, parts, err)
	}
	return res, nil
}

func (m *Money) split(parts int) ([]*Money, error) {
	par, err := decimal.New(int64(parts), 0)
	if err != nil {
		return nil, err
	}
	if !par.IsPos() {
		return nil, fmt.Errorf("%w: number of parts must be positive", ErrInvalidOperand)
	}
	scale := m.curr.Scale()

	// Quotient
	quo, err := m.amount.Quo(par)
	if err != nil {
		return nil, err
	}
	quo = quo.Trunc(scale)

	// Remainder
	tot, err := quo.Mul(par)
	if err != nil {
		return nil, err
	}
	rem, err := m.amount.Sub(tot)
	if err != nil {
		return nil, err
	}
	ulp, err := decimal.New(1, scale)
	if err != nil {
		return nil, err
	}
	ulp = ulp.CopySign(rem)

	res := make([]*Money, parts)
	for i := range res {
		v := quo
		// Remainder distribution
		if !rem.IsZero() {
			v, err = v.Add(ulp)
			if err != nil {
				return nil, err
			}
			rem, err = rem.Sub(ulp)
			if err != nil {
				return nil, err
			}
		}
		p := newMoney(m.curr, v.Pad(scale))
		p.record(OpDiv, newMoneyOperand(m), newScalarOperand(par))
		res[i] = p
	}
	return res, nil
}

// Equal reports whether two money values have the same currency code and
// numerically equal amounts. The amounts are compared as exact decimals,
// not as formatted strings, so USD 4.20 and USD 4.2 are equal.
func (m *Money) Equal(other *Money) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.curr.Equal(other.curr) && m.amount.Cmp(other.amount) == 0
}

// Cmp compares money values and returns:
//
//	-1 if m < other
//	 0 if m = other
//	+1 if m > other
//
// Cmp returns an error if the values are denominated in different currencies.
func (m *Money) Cmp(other *Money) (int, error) {
	o, err := m.cleanOperand(other)
	if err != nil {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", m, other, err)
	}
	return m.amount.Cmp(o.amount), nil
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m *Money) Sign() int {
	return m.amount.Sign()
}

// IsZero returns:
//
//	true  if m = 0
//	false otherwise
func (m *Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNeg returns:
//
//	true  if m < 0
//	false otherwise
func (m *Money) IsNeg() bool {
	return m.amount.IsNeg()
}

// IsPos returns:
//
//	true  if m > 0
//	false otherwise
func (m *Money) IsPos() bool {
	return m.amount.IsPos()
}

// Formatted renders the amount for display via the currency's provider,
// without requantizing it. The amount is trusted to already be in a
// presentable state; after a raw addition or subtraction it may show more
// fractional digits than the currency's nominal scale.
func (m *Money) Formatted() string {
	return m.curr.FormatAmountAsIs(m.amount)
}

// String implements the [fmt.Stringer] interface and returns the long
// display form, the currency code followed by the formatted amount:
//
//	USD$6.00
//
// See also method [Money.Formatted] for the short form.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m *Money) String() string {
	if m == nil {
		return "<nil>"
	}
	return m.curr.Code() + m.Formatted()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example    | Description               |
//	| ------ | ---------- | ------------------------- |
//	| %s, %v | USD$6.00   | Code and formatted amount |
//	| %q     | "USD$6.00" | Quoted long form          |
//	| %f     | $6.00      | Formatted amount          |
//	| %c     | USD        | Currency code             |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (m *Money) Format(state fmt.State, verb rune) {
	if m == nil {
		//nolint:errcheck
		state.Write([]byte("<nil>"))
		return
	}

	var content string
	switch verb {
	case 'f', 'F':
		content = m.Formatted()
	case 'c', 'C':
		content = m.curr.Code()
	default:
		content = m.String()
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
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'c', 'C':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Money="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

package money

import "errors"

// Errors returned by the package.
// All errors are surfaced to the caller immediately; nothing is retried
// internally. Use [errors.Is] to discriminate between kinds, as the package
// wraps these sentinels with contextual information.
var (
	// ErrInvalidCurrency indicates that a currency code failed the 3-character
	// normalization check or was rejected by the currency's [Provider].
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrInvalidAmount indicates that an input could not be converted to
	// an exact decimal.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidOperand indicates that an arithmetic operator received an
	// operand that is neither a compatible monetary value nor a usable scalar.
	ErrInvalidOperand = errors.New("invalid operand")

	// ErrCurrencyMismatch indicates a binary operation between monetary values
	// denominated in different currencies. Wrapped errors carry both codes.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrDivisionByZero indicates a division by a scalar that is zero after
	// being quantized to the currency's scale.
	ErrDivisionByZero = errors.New("division by zero")
)

// errAmountOverflow indicates that a decimal coefficient cannot carry enough
// digits to represent an amount at the requested scale.
var errAmountOverflow = errors.New("amount overflow")

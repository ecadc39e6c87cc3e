/*
Package money implements monetary values with exact decimal arithmetic,
currency-compatibility checks, and an audit trail of operations.
It builds on the [decimal] package for exact base-10 arithmetic and combines
it with a [Currency] type whose metadata (decimal places, symbol, rounding
mode, validity, formatting) is supplied by a pluggable [Provider].

# Features

  - Exact decimal amounts end-to-end; no binary floating-point rounding error
  - Pluggable currency metadata via the [Provider] interface, with a
    currency-agnostic bootstrap policy ([DefaultProvider]) and an ISO 4217
    table ([ISOProvider])
  - Arithmetic between monetary values and with scalars, in value-returning
    and in-place forms
  - Quantization to the currency's scale under several rounding modes
  - An append-only operation log on every [Money] value describing how it
    was derived

# Representation

A [Money] pairs a [decimal.Decimal] amount with a [Currency] and owns its
operation log. A [Currency] is a normalized 3-letter code bound to the
[Provider] captured at construction time; two currencies are equal when
their codes match, regardless of providers. Currencies constructed without
an explicit provider use the process-wide default, settable with
[SetDefaultCurrencyProvider].

# Rounding

Quantization rounds an amount to the currency's number of decimal places
under a [Rounding] mode. The default policy, [RoundUp], always rounds away
from zero when truncation would discard a nonzero digit; it is not a
round-half-up scheme. A different mode can be supplied by a provider or
forced per call with [Currency.QuantizeAmountWith].

Addition and subtraction deliberately skip requantization of their results;
see [Money] for the details of this quirk.

# History

Every money value is born with a single initialization record and every
operator appends exactly one [Operation] to the value it returns or mutates.
Recorded operands are deep-copied snapshots, so mutating a value later never
rewrites a history it already appears in. The log exists for auditability
and debugging, not for recomputation.

# Errors

Failures are reported through sentinel errors ([ErrInvalidCurrency],
[ErrInvalidAmount], [ErrInvalidOperand], [ErrCurrencyMismatch],
[ErrDivisionByZero]) wrapped with context; discriminate with [errors.Is].
Constructors with a Must prefix panic instead, simplifying static
initialization.

# Concurrency

Money values and the default-provider slot are not synchronized; concurrent
use requires external locking. Currency values are immutable after
construction and safe to share.

[decimal]: https://pkg.go.dev/github.com/govalues/decimal
*/
package money

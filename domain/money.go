package domain

import (
	"fmt"
	"strings"

	"github.com/authcorp/sharedkernel/errors"
	"github.com/authcorp/sharedkernel/functional"
	"github.com/authcorp/sharedkernel/guard"
)

// Currency represents an ISO 4217 currency code.
type Currency string

// Common currency codes.
const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
	BRL Currency = "BRL"
	CHF Currency = "CHF"
)

// KeyUnsupportedCurrency is reported for a currency without known decimals.
const KeyUnsupportedCurrency errors.Key = "UnsupportedCurrency"

// currencyDecimals maps currencies to their decimal places.
var currencyDecimals = map[Currency]int{
	USD: 2, EUR: 2, GBP: 2, JPY: 0, BRL: 2, CHF: 2,
}

// Money is a non-negative amount in the currency's smallest unit.
type Money struct {
	amount   int64
	currency Currency
}

// NewMoney validates amount and currency.
func NewMoney(amount int64, currency Currency) functional.Result[Money] {
	code := Currency(strings.ToUpper(strings.TrimSpace(string(currency))))
	if code == "" {
		return functional.FailKey[Money](errors.KeyIsNullEmptyOrWhiteSpace)
	}
	if _, ok := currencyDecimals[code]; !ok {
		return functional.FailKey[Money](KeyUnsupportedCurrency)
	}
	if amount < 0 {
		return functional.FailKey[Money](errors.KeyIsLessThanMinimum)
	}
	return functional.Ok(Money{amount: amount, currency: code})
}

// MustMoney creates Money, panicking on invalid input.
func MustMoney(amount int64, currency Currency) Money {
	r := NewMoney(amount, currency)
	if r.IsFailure() {
		panic(errors.New(errors.KindOutOfRange, errors.Key(r.Err()), "amount"))
	}
	return r.Value()
}

// Amount returns the amount in smallest unit.
func (m Money) Amount() int64 { return m.amount }

// Currency returns the currency.
func (m Money) Currency() Currency { return m.currency }

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool { return m.amount == 0 }

// Add adds two Money values of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// Subtract subtracts another Money value of the same currency. The result
// may not be negative.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	if m.amount < other.amount {
		return Money{}, errors.New(errors.KindOutOfRange, errors.KeyCalculatedValueIsNegative, "amount")
	}
	return Money{amount: m.amount - other.amount, currency: m.currency}, nil
}

// Multiply multiplies by a non-negative factor.
func (m Money) Multiply(factor int64) (Money, error) {
	if err := guard.NotNegative(factor, "factor"); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount * factor, currency: m.currency}, nil
}

func (m Money) sameCurrency(other Money) error {
	return guard.NotInvalidOperation(m.currency != other.currency,
		fmt.Sprintf("currency mismatch: %s vs %s", m.currency, other.currency))
}

// Equal checks if two Money values are equal.
func (m Money) Equal(other Money) bool { return m.EqualsCore(other) }

// EqualsCore implements ValueObject.
func (m Money) EqualsCore(other Money) bool {
	return m.currency == other.currency && m.amount == other.amount
}

// HashCore implements ValueObject.
func (m Money) HashCore() uint64 { return HashOf("Money", string(m.currency), m.amount) }

// String returns a human-readable representation.
func (m Money) String() string {
	decimals := currencyDecimals[m.currency]
	if decimals == 0 {
		return fmt.Sprintf("%s %d", m.currency, m.amount)
	}
	divisor := int64(1)
	for i := 0; i < decimals; i++ {
		divisor *= 10
	}
	return fmt.Sprintf("%s %d.%0*d", m.currency, m.amount/divisor, decimals, m.amount%divisor)
}

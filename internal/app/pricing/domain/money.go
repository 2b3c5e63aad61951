package domain

import (
	"fmt"
	"math"
	"math/big"
)

// Money represents a monetary value with precise decimal arithmetic using big.Rat.
// Prices are stored as rational numbers (numerator/denominator) so that discount
// math never accumulates floating-point error before the final rounding step.
type Money struct {
	rat *big.Rat
}

// NewMoney creates a new Money instance from numerator and denominator.
// Example: NewMoney(249900, 100) represents 2499.00.
func NewMoney(numerator, denominator int64) (*Money, error) {
	if denominator == 0 {
		return nil, fmt.Errorf("denominator cannot be zero")
	}

	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// NewMoneyFromFloat creates a Money from a float64 amount.
// Intended for boundary input (JSON payloads, seed data), not for arithmetic.
func NewMoneyFromFloat(amount float64) (*Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, fmt.Errorf("amount must be a finite number, got %v", amount)
	}

	rat := new(big.Rat).SetFloat64(amount)
	if rat == nil {
		return nil, fmt.Errorf("amount %v cannot be represented exactly", amount)
	}
	return &Money{rat: rat}, nil
}

// ZeroMoney returns a Money with value zero.
func ZeroMoney() *Money {
	return &Money{rat: big.NewRat(0, 1)}
}

// Add adds two Money values and returns a new Money instance.
func (m *Money) Add(other *Money) *Money {
	return &Money{rat: new(big.Rat).Add(m.rat, other.rat)}
}

// Subtract subtracts another Money value from this one and returns a new Money instance.
func (m *Money) Subtract(other *Money) *Money {
	return &Money{rat: new(big.Rat).Sub(m.rat, other.rat)}
}

// MultiplyByRat multiplies this Money value by a rational number and returns a new Money instance.
func (m *Money) MultiplyByRat(rat *big.Rat) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, rat)}
}

// MultiplyByInt multiplies this Money value by an integer quantity.
func (m *Money) MultiplyByInt(n int64) *Money {
	return m.MultiplyByRat(big.NewRat(n, 1))
}

// RoundHalfUp rounds the value to 2 decimal places using half-up rounding:
// 17.995 rounds to 18.00, 17.994 rounds to 17.99. The computation is exact,
// performed on the underlying rational (floor(x*100 + 1/2) cents).
// The receiver must be non-negative.
func (m *Money) RoundHalfUp() *Money {
	// floor((200*num + den) / (2*den)) == floor(x*100 + 1/2)
	n := new(big.Int).Mul(m.rat.Num(), big.NewInt(200))
	n.Add(n, m.rat.Denom())
	d := new(big.Int).Mul(m.rat.Denom(), big.NewInt(2))
	cents := new(big.Int).Div(n, d)
	return &Money{rat: new(big.Rat).SetFrac(cents, big.NewInt(100))}
}

// ClampNonNegative returns the value, floored at zero.
func (m *Money) ClampNonNegative() *Money {
	if m.IsNegative() {
		return ZeroMoney()
	}
	return m.Copy()
}

// IsZero returns true if the money value is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative returns true if the money value is negative.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// IsPositive returns true if the money value is positive.
func (m *Money) IsPositive() bool {
	return m.rat.Sign() > 0
}

// LessThan returns true if this Money value is less than another.
func (m *Money) LessThan(other *Money) bool {
	return m.rat.Cmp(other.rat) < 0
}

// GreaterThan returns true if this Money value is greater than another.
func (m *Money) GreaterThan(other *Money) bool {
	return m.rat.Cmp(other.rat) > 0
}

// Equals returns true if this Money value equals another.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Normalize reduces the fraction to lowest terms (200/2 becomes 100/1).
func (m *Money) Normalize() *Money {
	// big.Rat keeps values normalized; Copy makes the contract explicit.
	return m.Copy()
}

// IsSafeForStorage reports whether numerator and denominator both fit in int64.
func (m *Money) IsSafeForStorage() bool {
	return m.rat.Num().IsInt64() && m.rat.Denom().IsInt64()
}

// Numerator returns the numerator, or an error when it exceeds int64 bounds.
func (m *Money) Numerator() (int64, error) {
	if !m.rat.Num().IsInt64() {
		return 0, ErrMoneyOverflow
	}
	return m.rat.Num().Int64(), nil
}

// Denominator returns the denominator, or an error when it exceeds int64 bounds.
func (m *Money) Denominator() (int64, error) {
	if !m.rat.Denom().IsInt64() {
		return 0, ErrMoneyOverflow
	}
	return m.rat.Denom().Int64(), nil
}

// Float64 returns an approximate float64 representation (for display only, not calculations).
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String returns a string representation of the money value.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy creates a deep copy of this Money instance.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}

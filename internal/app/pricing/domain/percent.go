package domain

import (
	"fmt"
	"math"
	"math/big"
)

// ValidatePercent checks that a discount percentage lies in [0, 100].
// Every percent stored in a profile must pass this check before it reaches
// the resolver; out-of-range values indicate an upstream data bug.
func ValidatePercent(percent float64) error {
	if math.IsNaN(percent) || percent < 0 || percent > 100 {
		return fmt.Errorf("%w: got %v", ErrInvalidPercent, percent)
	}
	return nil
}

// percentMultiplier converts a percentage to its fractional multiplier
// as an exact rational (20 -> 1/5).
func percentMultiplier(percent float64) *big.Rat {
	rat := new(big.Rat).SetFloat64(percent)
	if rat == nil {
		return new(big.Rat)
	}
	return rat.Quo(rat, big.NewRat(100, 1))
}

// applyPercentOff returns price reduced by the given percentage.
// Formula: price - (price * percent / 100).
func applyPercentOff(price *Money, percent float64) *Money {
	amount := price.MultiplyByRat(percentMultiplier(percent))
	return price.Subtract(amount)
}

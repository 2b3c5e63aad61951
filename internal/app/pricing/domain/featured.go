package domain

import (
	"time"
)

// DiscountType distinguishes the two kinds of featured-product discounts.
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "PERCENTAGE"
	DiscountTypeFixed      DiscountType = "FIXED"
)

// FeaturedDiscount is a time-boxed promotional discount attached to a single
// product. When applicable it supersedes every account-based rule.
//
// The value object is deliberately lenient at construction: rows come straight
// from storage and an unsound row must degrade to "no promotion", not fail the
// whole pricing request. ApplicableAt performs the defensive checks; Apply
// errors only on a discount type the engine does not know.
type FeaturedDiscount struct {
	active   bool
	dtype    DiscountType
	value    float64
	startsAt *time.Time
	endsAt   *time.Time
}

// NewFeaturedDiscount creates a FeaturedDiscount. A nil startsAt or endsAt
// means the window is unbounded on that side.
func NewFeaturedDiscount(active bool, dtype DiscountType, value float64, startsAt, endsAt *time.Time) *FeaturedDiscount {
	f := &FeaturedDiscount{
		active: active,
		dtype:  dtype,
		value:  value,
	}
	if startsAt != nil {
		t := *startsAt
		f.startsAt = &t
	}
	if endsAt != nil {
		t := *endsAt
		f.endsAt = &t
	}
	return f
}

// Active returns the admin-controlled on/off flag.
func (f *FeaturedDiscount) Active() bool { return f.active }

// Type returns the discount type.
func (f *FeaturedDiscount) Type() DiscountType { return f.dtype }

// Value returns the discount value (a percentage for PERCENTAGE, an absolute
// amount for FIXED).
func (f *FeaturedDiscount) Value() float64 { return f.value }

// StartsAt returns the window start, or nil when unbounded.
func (f *FeaturedDiscount) StartsAt() *time.Time { return f.startsAt }

// EndsAt returns the window end, or nil when unbounded.
func (f *FeaturedDiscount) EndsAt() *time.Time { return f.endsAt }

// InWindowAt checks the time window, inclusive on both ends:
// t == startsAt and t == endsAt are both inside the window.
func (f *FeaturedDiscount) InWindowAt(t time.Time) bool {
	if f.startsAt != nil && t.Before(*f.startsAt) {
		return false
	}
	if f.endsAt != nil && t.After(*f.endsAt) {
		return false
	}
	return true
}

// ApplicableAt reports whether the promotion should fire at the given time.
// An inactive, out-of-window, non-positive or over-100-percent discount is
// not an error; it is simply skipped and resolution falls through to the
// account-based rules.
func (f *FeaturedDiscount) ApplicableAt(now time.Time) bool {
	if !f.active || !f.InWindowAt(now) {
		return false
	}
	if f.value <= 0 {
		return false
	}
	if f.dtype == DiscountTypePercentage && f.value > 100 {
		return false
	}
	return true
}

// Apply computes the promotional price for the given list price, before
// clamping and rounding. It returns ErrUnknownDiscountType for a type the
// engine does not recognize; callers should treat that as a data-integrity
// fault and surface it loudly.
func (f *FeaturedDiscount) Apply(listPrice *Money) (*Money, error) {
	switch f.dtype {
	case DiscountTypePercentage:
		return applyPercentOff(listPrice, f.value), nil
	case DiscountTypeFixed:
		amount, err := NewMoneyFromFloat(f.value)
		if err != nil {
			return nil, err
		}
		return listPrice.Subtract(amount), nil
	default:
		return nil, ErrUnknownDiscountType
	}
}

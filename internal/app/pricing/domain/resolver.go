package domain

import (
	"time"
)

// PricingInput describes one product line to be priced.
type PricingInput struct {
	ListPrice *Money
	// CategoryID is the product's category.
	CategoryID string
	// ManufacturerID is empty when the product has no manufacturer on record,
	// in which case manufacturer-scoped rules cannot match.
	ManufacturerID string
}

// Validate checks the input contract. Callers validate before resolving;
// the resolver itself only guards against a nil price.
func (in PricingInput) Validate() error {
	if in.ListPrice == nil {
		return ErrMissingListPrice
	}
	if in.CategoryID == "" {
		return ErrEmptyCategory
	}
	return nil
}

// Resolver computes the single price actually charged for a product line,
// reconciling the featured-product override with the account-based rule
// cascade. It is a pure function of its inputs: no I/O, no shared mutable
// state, safe for concurrent use.
//
// Resolution order is fixed and must not be reordered:
//
//	featured override > group combo > group manufacturer > group category >
//	personal category > flat account discount > list price
type Resolver struct{}

// NewResolver creates a Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve prices one product line. A nil profile means anonymous or non-B2B:
// only the featured override can discount, otherwise the list price stands.
// A nil featured means no promotion is configured for the product.
//
// The only error paths are a nil list price and an unrecognized featured
// discount type; every other irregularity degrades to the next rule.
func (r *Resolver) Resolve(input PricingInput, profile *DiscountProfile, featured *FeaturedDiscount, now time.Time) (*PriceResolution, error) {
	if input.ListPrice == nil {
		return nil, ErrMissingListPrice
	}
	listPrice := input.ListPrice.Copy()

	// Step 1: promotional override. Exclusive: when it fires, no account rule
	// is consulted, even one with a deeper discount.
	if featured != nil && featured.ApplicableAt(now) {
		price, err := featured.Apply(listPrice)
		if err != nil {
			return nil, err
		}
		percent := 0.0
		if featured.Type() == DiscountTypePercentage {
			percent = featured.Value()
		}
		return finalize(price, listPrice, SourceFeatured, percent, ""), nil
	}

	// Step 2: account-based cascade, most specific tier first.
	if profile != nil {
		groups := profile.Groups()

		if input.ManufacturerID != "" {
			if percent, groupID, ok := resolveGroupTier(groups, func(g *DiscountGroup) (float64, bool) {
				return g.CategoryManufacturerDiscount(input.CategoryID, input.ManufacturerID)
			}); ok {
				return finalize(applyPercentOff(listPrice, percent), listPrice, SourceGroupCategoryManufacturer, percent, groupID), nil
			}

			if percent, groupID, ok := resolveGroupTier(groups, func(g *DiscountGroup) (float64, bool) {
				return g.ManufacturerDiscount(input.ManufacturerID)
			}); ok {
				return finalize(applyPercentOff(listPrice, percent), listPrice, SourceGroupManufacturer, percent, groupID), nil
			}
		}

		if percent, groupID, ok := resolveGroupTier(groups, func(g *DiscountGroup) (float64, bool) {
			return g.CategoryDiscount(input.CategoryID)
		}); ok {
			return finalize(applyPercentOff(listPrice, percent), listPrice, SourceGroupCategory, percent, groupID), nil
		}

		if percent, ok := profile.PersonalCategoryDiscount(input.CategoryID); ok {
			return finalize(applyPercentOff(listPrice, percent), listPrice, SourcePersonalCategory, percent, ""), nil
		}

		if percent := profile.FlatDiscount(); percent > 0 {
			return finalize(applyPercentOff(listPrice, percent), listPrice, SourceFlat, percent, ""), nil
		}
	}

	// Step 3: list price.
	return finalize(listPrice, listPrice, SourceList, 0, ""), nil
}

// resolveGroupTier combines one rule tier across the profile's groups, which
// arrive in priority order. A PRIORITY group that matches ends the scan; a
// PRIORITY group reached after MAX/ADDITIVE groups already matched ends the
// scan without contributing. MAX keeps the largest rule seen, ADDITIVE sums
// rules capped at 100.
func resolveGroupTier(groups []*DiscountGroup, lookup func(*DiscountGroup) (float64, bool)) (percent float64, groupID string, found bool) {
	for _, g := range groups {
		value, ok := lookup(g)
		if !ok {
			continue
		}

		if g.Strategy() == StackingPriority {
			if !found {
				return value, g.ID(), true
			}
			break
		}

		switch g.Strategy() {
		case StackingAdditive:
			if !found {
				groupID = g.ID()
			}
			percent += value
			if percent > 100 {
				percent = 100
			}
		default: // StackingMax
			if !found || value > percent {
				percent = value
				groupID = g.ID()
			}
		}
		found = true
	}
	return percent, groupID, found
}

// finalize clamps, rounds and assembles the resolution. The original price is
// rounded too so both figures are display-ready.
func finalize(price, originalPrice *Money, source PriceSource, percent float64, groupID string) *PriceResolution {
	return &PriceResolution{
		Price:           price.ClampNonNegative().RoundHalfUp(),
		OriginalPrice:   originalPrice.ClampNonNegative().RoundHalfUp(),
		Source:          source,
		DiscountPercent: percent,
		GroupID:         groupID,
	}
}

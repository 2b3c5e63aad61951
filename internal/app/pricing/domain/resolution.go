package domain

// PriceSource identifies the single rule that produced a resolved price.
type PriceSource string

const (
	SourceFeatured                  PriceSource = "FEATURED"
	SourceGroupCategoryManufacturer PriceSource = "GROUP_CATEGORY_MANUFACTURER"
	SourceGroupManufacturer         PriceSource = "GROUP_MANUFACTURER"
	SourceGroupCategory             PriceSource = "GROUP_CATEGORY"
	SourcePersonalCategory          PriceSource = "PERSONAL_CATEGORY"
	SourceFlat                      PriceSource = "FLAT"
	SourceList                      PriceSource = "LIST"
)

// PriceResolution is the outcome of pricing one product line for one customer.
// It is computed per request and never persisted by the engine; callers copy
// OriginalPrice and Source verbatim into order snapshots for auditing.
type PriceResolution struct {
	// Price is the final charged price: clamped to >= 0, rounded half-up
	// to 2 decimals.
	Price *Money

	// OriginalPrice is the undiscounted list price, always carried so callers
	// can render was/now strikethrough pricing uniformly.
	OriginalPrice *Money

	// Source is exactly one tag, never a combination.
	Source PriceSource

	// DiscountPercent is the percentage that produced Price. Zero for LIST
	// pricing and for FIXED featured discounts.
	DiscountPercent float64

	// GroupID identifies the winning discount group when a group rule fired.
	// With MAX stacking it is the group holding the largest rule; with
	// ADDITIVE it is the first contributing group.
	GroupID string
}

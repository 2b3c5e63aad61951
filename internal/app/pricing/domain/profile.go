package domain

import (
	"fmt"
	"sort"
)

// StackingStrategy controls how a single rule tier combines across the groups
// a customer belongs to. Tier precedence (combo over manufacturer over
// category) is fixed and never affected by strategy.
type StackingStrategy string

const (
	// StackingPriority takes the first matching group in priority order. Default.
	StackingPriority StackingStrategy = "PRIORITY"
	// StackingMax takes the largest matching rule across groups.
	StackingMax StackingStrategy = "MAX"
	// StackingAdditive sums matching rules across groups, capped at 100.
	StackingAdditive StackingStrategy = "ADDITIVE"
)

// CategoryManufacturer keys a combo discount rule.
type CategoryManufacturer struct {
	CategoryID     string
	ManufacturerID string
}

// DiscountGroup is a named, prioritized bundle of discount rules assignable
// to multiple business customers. Lower priority value means higher precedence.
// Immutable after construction.
type DiscountGroup struct {
	id       string
	name     string
	priority int64
	strategy StackingStrategy

	categoryDiscounts             map[string]float64
	manufacturerDiscounts         map[string]float64
	categoryManufacturerDiscounts map[CategoryManufacturer]float64
}

// NewDiscountGroup creates a DiscountGroup with validation. Nil rule maps are
// treated as empty: a group with missing rule records is eligible but matches
// nothing. An empty strategy defaults to PRIORITY.
func NewDiscountGroup(
	id, name string,
	priority int64,
	strategy StackingStrategy,
	categoryDiscounts map[string]float64,
	manufacturerDiscounts map[string]float64,
	categoryManufacturerDiscounts map[CategoryManufacturer]float64,
) (*DiscountGroup, error) {
	if id == "" {
		return nil, ErrEmptyGroupID
	}

	switch strategy {
	case "":
		strategy = StackingPriority
	case StackingPriority, StackingMax, StackingAdditive:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStackingStrategy, strategy)
	}

	g := &DiscountGroup{
		id:                            id,
		name:                          name,
		priority:                      priority,
		strategy:                      strategy,
		categoryDiscounts:             make(map[string]float64, len(categoryDiscounts)),
		manufacturerDiscounts:         make(map[string]float64, len(manufacturerDiscounts)),
		categoryManufacturerDiscounts: make(map[CategoryManufacturer]float64, len(categoryManufacturerDiscounts)),
	}

	for categoryID, percent := range categoryDiscounts {
		if err := ValidatePercent(percent); err != nil {
			return nil, fmt.Errorf("group %s category %s: %w", id, categoryID, err)
		}
		g.categoryDiscounts[categoryID] = percent
	}
	for manufacturerID, percent := range manufacturerDiscounts {
		if err := ValidatePercent(percent); err != nil {
			return nil, fmt.Errorf("group %s manufacturer %s: %w", id, manufacturerID, err)
		}
		g.manufacturerDiscounts[manufacturerID] = percent
	}
	for key, percent := range categoryManufacturerDiscounts {
		if err := ValidatePercent(percent); err != nil {
			return nil, fmt.Errorf("group %s combo %s/%s: %w", id, key.CategoryID, key.ManufacturerID, err)
		}
		g.categoryManufacturerDiscounts[key] = percent
	}

	return g, nil
}

// ID returns the group identifier.
func (g *DiscountGroup) ID() string { return g.id }

// Name returns the group display name.
func (g *DiscountGroup) Name() string { return g.name }

// Priority returns the group's precedence rank (lower wins).
func (g *DiscountGroup) Priority() int64 { return g.priority }

// Strategy returns the group's stacking strategy.
func (g *DiscountGroup) Strategy() StackingStrategy { return g.strategy }

// CategoryDiscount looks up the category-only rule for a category.
func (g *DiscountGroup) CategoryDiscount(categoryID string) (float64, bool) {
	percent, ok := g.categoryDiscounts[categoryID]
	return percent, ok
}

// ManufacturerDiscount looks up the manufacturer-only rule for a manufacturer.
func (g *DiscountGroup) ManufacturerDiscount(manufacturerID string) (float64, bool) {
	percent, ok := g.manufacturerDiscounts[manufacturerID]
	return percent, ok
}

// CategoryManufacturerDiscount looks up the combo rule for a category+manufacturer pair.
func (g *DiscountGroup) CategoryManufacturerDiscount(categoryID, manufacturerID string) (float64, bool) {
	percent, ok := g.categoryManufacturerDiscounts[CategoryManufacturer{CategoryID: categoryID, ManufacturerID: manufacturerID}]
	return percent, ok
}

// CategoryDiscounts returns a copy of the category rule map.
func (g *DiscountGroup) CategoryDiscounts() map[string]float64 {
	return copyFloatMap(g.categoryDiscounts)
}

// ManufacturerDiscounts returns a copy of the manufacturer rule map.
func (g *DiscountGroup) ManufacturerDiscounts() map[string]float64 {
	return copyFloatMap(g.manufacturerDiscounts)
}

// CategoryManufacturerDiscounts returns a copy of the combo rule map.
func (g *DiscountGroup) CategoryManufacturerDiscounts() map[CategoryManufacturer]float64 {
	out := make(map[CategoryManufacturer]float64, len(g.categoryManufacturerDiscounts))
	for k, v := range g.categoryManufacturerDiscounts {
		out[k] = v
	}
	return out
}

// DiscountProfile is the resolved, read-only snapshot of one user's applicable
// discount rules. Built once per request and safe to share across every cart
// line resolved within it; the resolver never mutates it.
type DiscountProfile struct {
	userID                    string
	flatDiscount              float64
	personalCategoryDiscounts map[string]float64
	groups                    []*DiscountGroup
}

// NewDiscountProfile creates a DiscountProfile with validation. Groups are
// sorted by priority ascending; the sort is stable, so groups sharing a
// priority keep their given order (first found wins — upstream should prevent
// ties with a unique-priority constraint). A nil personal map is treated as
// empty.
func NewDiscountProfile(
	userID string,
	flatDiscount float64,
	personalCategoryDiscounts map[string]float64,
	groups []*DiscountGroup,
) (*DiscountProfile, error) {
	if err := ValidatePercent(flatDiscount); err != nil {
		return nil, fmt.Errorf("user %s flat discount: %w", userID, err)
	}

	p := &DiscountProfile{
		userID:                    userID,
		flatDiscount:              flatDiscount,
		personalCategoryDiscounts: make(map[string]float64, len(personalCategoryDiscounts)),
		groups:                    make([]*DiscountGroup, len(groups)),
	}

	for categoryID, percent := range personalCategoryDiscounts {
		if err := ValidatePercent(percent); err != nil {
			return nil, fmt.Errorf("user %s category %s: %w", userID, categoryID, err)
		}
		p.personalCategoryDiscounts[categoryID] = percent
	}

	copy(p.groups, groups)
	sort.SliceStable(p.groups, func(i, j int) bool {
		return p.groups[i].priority < p.groups[j].priority
	})

	return p, nil
}

// UserID returns the profile owner's identifier.
func (p *DiscountProfile) UserID() string { return p.userID }

// FlatDiscount returns the account-level default discount percentage (0 if none).
func (p *DiscountProfile) FlatDiscount() float64 { return p.flatDiscount }

// PersonalCategoryDiscount looks up the user-specific discount for a category.
func (p *DiscountProfile) PersonalCategoryDiscount(categoryID string) (float64, bool) {
	percent, ok := p.personalCategoryDiscounts[categoryID]
	return percent, ok
}

// PersonalCategoryDiscounts returns a copy of the personal discount map.
func (p *DiscountProfile) PersonalCategoryDiscounts() map[string]float64 {
	return copyFloatMap(p.personalCategoryDiscounts)
}

// Groups returns the discount groups in priority order. The slice is a copy;
// the groups themselves are immutable.
func (p *DiscountProfile) Groups() []*DiscountGroup {
	out := make([]*DiscountGroup, len(p.groups))
	copy(out, p.groups)
	return out
}

func copyFloatMap(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

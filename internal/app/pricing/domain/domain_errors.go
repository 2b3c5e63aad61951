package domain

import "errors"

// Domain errors as sentinel values
var (
	// Lookup errors
	ErrProductNotFound = errors.New("product not found")

	// Money errors
	ErrMoneyOverflow = errors.New("money value exceeds int64 storage bounds")

	// Pricing input errors
	ErrMissingListPrice = errors.New("pricing input requires a list price")
	ErrEmptyCategory    = errors.New("pricing input requires a category")

	// Discount rule errors
	ErrInvalidPercent          = errors.New("discount percent must be between 0 and 100")
	ErrEmptyGroupID            = errors.New("discount group id cannot be empty")
	ErrUnknownStackingStrategy = errors.New("unknown discount stacking strategy")

	// Featured discount errors
	ErrUnknownDiscountType = errors.New("unknown featured discount type")
)

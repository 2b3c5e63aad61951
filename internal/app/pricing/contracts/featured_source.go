package contracts

import (
	"context"

	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/domain"
)

// FeaturedSource looks up promotional overrides.
type FeaturedSource interface {
	// GetForProduct returns the featured discount configured for a product,
	// or nil (with a nil error) when none exists. At most one override is
	// configured per product at any instant.
	GetForProduct(ctx context.Context, productID string) (*domain.FeaturedDiscount, error)
}

package contracts

import (
	"context"

	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/domain"
)

// ProductPricing carries the product attributes pricing needs.
type ProductPricing struct {
	ProductID string
	Name      string
	ListPrice *domain.Money
	// CategoryID is the product's category.
	CategoryID string
	// ManufacturerID is empty when the product has no manufacturer on record.
	ManufacturerID string
}

// ProductSource fetches product pricing attributes.
type ProductSource interface {
	// GetPricing returns domain.ErrProductNotFound for an unknown product.
	GetPricing(ctx context.Context, productID string) (*ProductPricing, error)
}

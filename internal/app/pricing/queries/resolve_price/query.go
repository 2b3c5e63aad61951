package resolve_price

import (
	"context"

	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/parts-pricing-service/internal/pkg/clock"
)

// Request contains the product to price and the (possibly empty) user it is
// priced for. An empty UserID means anonymous.
type Request struct {
	ProductID string
	UserID    string
}

// Response is the transport-friendly projection of a price resolution.
type Response struct {
	ProductID       string
	Name            string
	Price           float64
	OriginalPrice   float64
	Source          string
	DiscountPercent float64
	GroupID         string
}

// Query handles the single-product price resolution use case.
type Query struct {
	products contracts.ProductSource
	profiles contracts.ProfileSource
	featured contracts.FeaturedSource
	resolver *domain.Resolver
	clock    clock.Clock
}

// NewQuery creates a new resolve price query.
func NewQuery(
	products contracts.ProductSource,
	profiles contracts.ProfileSource,
	featured contracts.FeaturedSource,
	resolver *domain.Resolver,
	clk clock.Clock,
) *Query {
	return &Query{
		products: products,
		profiles: profiles,
		featured: featured,
		resolver: resolver,
		clock:    clk,
	}
}

// Execute loads the product, the user's profile and any featured override,
// then resolves the price.
func (q *Query) Execute(ctx context.Context, req *Request) (*Response, error) {
	product, err := q.products.GetPricing(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	var profile *domain.DiscountProfile
	if req.UserID != "" {
		profile, err = q.profiles.GetProfile(ctx, req.UserID)
		if err != nil {
			return nil, err
		}
	}

	featured, err := q.featured.GetForProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	resolution, err := q.resolver.Resolve(domain.PricingInput{
		ListPrice:      product.ListPrice,
		CategoryID:     product.CategoryID,
		ManufacturerID: product.ManufacturerID,
	}, profile, featured, q.clock.Now())
	if err != nil {
		return nil, err
	}

	return &Response{
		ProductID:       product.ProductID,
		Name:            product.Name,
		Price:           resolution.Price.Float64(),
		OriginalPrice:   resolution.OriginalPrice.Float64(),
		Source:          string(resolution.Source),
		DiscountPercent: resolution.DiscountPercent,
		GroupID:         resolution.GroupID,
	}, nil
}

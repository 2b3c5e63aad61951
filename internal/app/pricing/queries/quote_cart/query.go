package quote_cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/parts-pricing-service/internal/pkg/clock"
)

// ErrInvalidQuantity is returned for a cart line with a quantity below one.
var ErrInvalidQuantity = errors.New("line quantity must be at least 1")

// Line is one cart line to quote.
type Line struct {
	ProductID string
	Quantity  int64
}

// Request contains the cart to quote. An empty UserID means anonymous.
type Request struct {
	UserID string
	Lines  []Line
}

// LineResult is the priced projection of one cart line.
type LineResult struct {
	ProductID         string
	Name              string
	Quantity          int64
	UnitPrice         float64
	OriginalUnitPrice float64
	LineTotal         float64
	Source            string
	DiscountPercent   float64
	GroupID           string
}

// Response contains the priced cart.
type Response struct {
	Lines []LineResult
	Total float64
}

// Query handles the cart quote use case. The user's profile is built once and
// reused for every line, which is the intended caching granularity for a
// pricing request.
type Query struct {
	products contracts.ProductSource
	profiles contracts.ProfileSource
	featured contracts.FeaturedSource
	resolver *domain.Resolver
	clock    clock.Clock
}

// NewQuery creates a new quote cart query.
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

// Execute quotes every line against a single profile snapshot and a single
// evaluation instant, so one cart never mixes promotion windows.
func (q *Query) Execute(ctx context.Context, req *Request) (*Response, error) {
	for _, line := range req.Lines {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("product %s: %w", line.ProductID, ErrInvalidQuantity)
		}
	}

	var profile *domain.DiscountProfile
	if req.UserID != "" {
		var err error
		profile, err = q.profiles.GetProfile(ctx, req.UserID)
		if err != nil {
			return nil, err
		}
	}

	now := q.clock.Now()
	total := domain.ZeroMoney()
	results := make([]LineResult, 0, len(req.Lines))

	for _, line := range req.Lines {
		product, err := q.products.GetPricing(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}

		featured, err := q.featured.GetForProduct(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}

		resolution, err := q.resolver.Resolve(domain.PricingInput{
			ListPrice:      product.ListPrice,
			CategoryID:     product.CategoryID,
			ManufacturerID: product.ManufacturerID,
		}, profile, featured, now)
		if err != nil {
			return nil, err
		}

		// Line total multiplies the already-rounded unit price, so the sum
		// of displayed unit prices always equals the line total.
		lineTotal := resolution.Price.MultiplyByInt(line.Quantity)
		total = total.Add(lineTotal)

		results = append(results, LineResult{
			ProductID:         product.ProductID,
			Name:              product.Name,
			Quantity:          line.Quantity,
			UnitPrice:         resolution.Price.Float64(),
			OriginalUnitPrice: resolution.OriginalPrice.Float64(),
			LineTotal:         lineTotal.Float64(),
			Source:            string(resolution.Source),
			DiscountPercent:   resolution.DiscountPercent,
			GroupID:           resolution.GroupID,
		})
	}

	return &Response{
		Lines: results,
		Total: total.Float64(),
	}, nil
}

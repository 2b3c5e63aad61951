package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/parts-pricing-service/internal/models/m_featured_product"
)

// FeaturedRepo implements FeaturedSource for Spanner. The featured_products
// table is keyed by product id, which enforces the at-most-one-override
// invariant structurally.
type FeaturedRepo struct {
	client *spanner.Client
}

// NewFeaturedRepo creates a new FeaturedRepo.
func NewFeaturedRepo(client *spanner.Client) contracts.FeaturedSource {
	return &FeaturedRepo{client: client}
}

// GetForProduct retrieves the featured discount for a product. A product that
// is featured without discount columns (carousel placement only) yields nil,
// the same as a product that is not featured at all.
func (r *FeaturedRepo) GetForProduct(ctx context.Context, productID string) (*domain.FeaturedDiscount, error) {
	row, err := r.client.Single().ReadRow(ctx, m_featured_product.TableName, spanner.Key{productID}, []string{
		m_featured_product.ProductID,
		m_featured_product.Position,
		m_featured_product.IsDiscountActive,
		m_featured_product.DiscountType,
		m_featured_product.DiscountValue,
		m_featured_product.StartsAt,
		m_featured_product.EndsAt,
		m_featured_product.CreatedAt,
	})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read featured product: %w", err)
	}

	var data m_featured_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse featured product: %w", err)
	}

	if !data.IsDiscountActive || !data.DiscountType.Valid || !data.DiscountValue.Valid {
		return nil, nil
	}

	var startsAt, endsAt *time.Time
	if data.StartsAt.Valid {
		startsAt = &data.StartsAt.Time
	}
	if data.EndsAt.Valid {
		endsAt = &data.EndsAt.Time
	}

	return domain.NewFeaturedDiscount(
		true,
		domain.DiscountType(data.DiscountType.StringVal),
		data.DiscountValue.Float64,
		startsAt,
		endsAt,
	), nil
}

package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/parts-pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/parts-pricing-service/internal/models/m_product"
)

// ProductRepo implements ProductSource for Spanner.
type ProductRepo struct {
	client *spanner.Client
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(client *spanner.Client) contracts.ProductSource {
	return &ProductRepo{client: client}
}

// GetPricing retrieves the pricing attributes for a product.
func (r *ProductRepo) GetPricing(ctx context.Context, productID string) (*contracts.ProductPricing, error) {
	row, err := r.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, []string{
		m_product.ProductID,
		m_product.Name,
		m_product.CategoryID,
		m_product.ManufacturerID,
		m_product.ListPriceNumerator,
		m_product.ListPriceDenominator,
		m_product.CreatedAt,
		m_product.UpdatedAt,
	})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	listPrice, err := domain.NewMoney(data.ListPriceNumerator, data.ListPriceDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid list price for product %s: %w", productID, err)
	}

	manufacturerID := ""
	if data.ManufacturerID.Valid {
		manufacturerID = data.ManufacturerID.StringVal
	}

	return &contracts.ProductPricing{
		ProductID:      data.ProductID,
		Name:           data.Name,
		ListPrice:      listPrice,
		CategoryID:     data.CategoryID,
		ManufacturerID: manufacturerID,
	}, nil
}

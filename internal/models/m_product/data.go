package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the products table.
type Data struct {
	ProductID            string             `spanner:"product_id"`
	Name                 string             `spanner:"name"`
	CategoryID           string             `spanner:"category_id"`
	ManufacturerID       spanner.NullString `spanner:"manufacturer_id"`
	ListPriceNumerator   int64              `spanner:"list_price_numerator"`
	ListPriceDenominator int64              `spanner:"list_price_denominator"`
	CreatedAt            time.Time          `spanner:"created_at"`
	UpdatedAt            time.Time          `spanner:"updated_at"`
}

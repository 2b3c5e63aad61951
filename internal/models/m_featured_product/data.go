package m_featured_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the featured_products table.
type Data struct {
	ProductID        string              `spanner:"product_id"`
	Position         int64               `spanner:"position"`
	IsDiscountActive bool                `spanner:"is_discount_active"`
	DiscountType     spanner.NullString  `spanner:"discount_type"`
	DiscountValue    spanner.NullFloat64 `spanner:"discount_value"`
	StartsAt         spanner.NullTime    `spanner:"starts_at"`
	EndsAt           spanner.NullTime    `spanner:"ends_at"`
	CreatedAt        time.Time           `spanner:"created_at"`
}

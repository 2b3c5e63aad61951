package m_featured_product

// Field name constants for the featured_products table.
// A row marks a product as featured on the storefront; the discount columns
// are optional, so a product can be featured without a promotional price.
const (
	TableName = "featured_products"

	ProductID        = "product_id"
	Position         = "position"
	IsDiscountActive = "is_discount_active"
	DiscountType     = "discount_type"
	DiscountValue    = "discount_value"
	StartsAt         = "starts_at"
	EndsAt           = "ends_at"
	CreatedAt        = "created_at"
)

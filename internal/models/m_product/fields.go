package m_product

// Field name constants for the products table.
// List prices are stored as exact fractions (numerator/denominator).
const (
	TableName = "products"

	ProductID            = "product_id"
	Name                 = "name"
	CategoryID           = "category_id"
	ManufacturerID       = "manufacturer_id"
	ListPriceNumerator   = "list_price_numerator"
	ListPriceDenominator = "list_price_denominator"
	CreatedAt            = "created_at"
	UpdatedAt            = "updated_at"
)

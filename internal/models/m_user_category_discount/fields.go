package m_user_category_discount

// Field name constants for the user_category_discounts table.
// At most one row exists per (user, category) pair; the admin CRUD layer
// enforces this through the primary key.
const (
	TableName = "user_category_discounts"

	UserID          = "user_id"
	CategoryID      = "category_id"
	DiscountPercent = "discount_percent"
)

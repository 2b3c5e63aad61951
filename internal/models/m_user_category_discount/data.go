package m_user_category_discount

// Data represents the database model for the user_category_discounts table.
type Data struct {
	UserID          string  `spanner:"user_id"`
	CategoryID      string  `spanner:"category_id"`
	DiscountPercent float64 `spanner:"discount_percent"`
}

package m_group_category_discount

// Data represents the database model for the group_category_discounts table.
type Data struct {
	GroupID         string  `spanner:"group_id"`
	CategoryID      string  `spanner:"category_id"`
	DiscountPercent float64 `spanner:"discount_percent"`
}

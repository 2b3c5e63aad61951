package m_group_combo_discount

// Data represents the database model for the group_category_manufacturer_discounts table.
type Data struct {
	GroupID         string  `spanner:"group_id"`
	CategoryID      string  `spanner:"category_id"`
	ManufacturerID  string  `spanner:"manufacturer_id"`
	DiscountPercent float64 `spanner:"discount_percent"`
}

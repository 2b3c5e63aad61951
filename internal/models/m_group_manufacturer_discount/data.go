package m_group_manufacturer_discount

// Data represents the database model for the group_manufacturer_discounts table.
type Data struct {
	GroupID         string  `spanner:"group_id"`
	ManufacturerID  string  `spanner:"manufacturer_id"`
	DiscountPercent float64 `spanner:"discount_percent"`
}

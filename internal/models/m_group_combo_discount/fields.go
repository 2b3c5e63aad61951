package m_group_combo_discount

// Field name constants for the group_category_manufacturer_discounts table,
// holding the most specific rule kind: discounts scoped to a category and a
// manufacturer together.
const (
	TableName = "group_category_manufacturer_discounts"

	GroupID         = "group_id"
	CategoryID      = "category_id"
	ManufacturerID  = "manufacturer_id"
	DiscountPercent = "discount_percent"
)

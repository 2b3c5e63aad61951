package m_group_category_discount

// Field name constants for the group_category_discounts table.
const (
	TableName = "group_category_discounts"

	GroupID         = "group_id"
	CategoryID      = "category_id"
	DiscountPercent = "discount_percent"
)
